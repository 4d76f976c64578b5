package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	apperrors "trygo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure(WithDiscard())

	Info("picker session started")
	assert.Contains(t, buf.String(), "picker session started")
	assert.Contains(t, buf.String(), "level=info")
}

func TestDebugLevelGating(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure(WithDiscard())

	SetDebug(false)
	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogWithFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure(WithDiscard())

	LogWithFields(F("shell", "zsh"), F("count", 3)).Info("setup done")

	out := buf.String()
	assert.Contains(t, out, "shell=zsh")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "setup done")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(WithOutput(&buf), WithJSON())
	lg.With(F("theme", "dark")).Info("config loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "config loaded", entry["message"])
	assert.Equal(t, "dark", entry["theme"])
	assert.NotEmpty(t, entry["timestamp"])
}

func TestWithFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trygo.log")
	Configure(WithFile(path))
	defer func() {
		Close()
		Configure(WithDiscard())
	}()

	Info("first run")
	Close()

	Configure(WithFile(path))
	Info("second run")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestLogWithErrorAddsTypedContext(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure(WithDiscard())

	pathErr := apperrors.NewPathError("create failed", "/tmp/tries/x", apperrors.CreateFailed, nil)
	LogWithError(pathErr).Error("resolve failed")
	out := buf.String()
	assert.Contains(t, out, "path=/tmp/tries/x")
	assert.Contains(t, out, "error_kind")

	buf.Reset()
	cfgErr := apperrors.NewConfigError("bad theme", "theme", apperrors.InvalidConfig, nil)
	LogWithError(cfgErr).Error("config rejected")
	assert.Contains(t, buf.String(), "param=theme")
}

func TestLogWithErrorOnPlainError(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure(WithDiscard())

	LogWithError(assert.AnError).Error("plain")
	out := buf.String()
	assert.Contains(t, out, "plain")
	assert.NotContains(t, out, "error_kind")
}
