package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"trygo/internal/config"
	"trygo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "'/work/tries/demo'", shellQuote("/work/tries/demo"))
	assert.Equal(t, "'/work/tries/2026-08-29 demo'", shellQuote("/work/tries/2026-08-29 demo"))
	assert.Equal(t, `'/work/it'\''s here'`, shellQuote("/work/it's here"))
}

func TestEmitCommand(t *testing.T) {
	assert.Equal(t, "cd '/work/tries/demo'", emitCommand("/work/tries/demo", false, "vim"))
	assert.Equal(t, "vim '/work/tries/demo'", emitCommand("/work/tries/demo", true, "vim"))
	// No editor configured: fall back to cd
	assert.Equal(t, "cd '/work/tries/demo'", emitCommand("/work/tries/demo", true, ""))
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())
	t.Setenv(config.EnvPath, "/tmp/from-env")

	cfg, err := loadConfig(rootFlags{path: "/tmp/from-flag"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag", cfg.TriesDir())
}

func TestLoadConfigRejectsBadTheme(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())

	_, err := loadConfig(rootFlags{theme: "neon"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestLoadConfigReadsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\npath: /tmp/custom-tries\n"), 0644))

	cfg, err := loadConfig(rootFlags{configFile: path})
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "/tmp/custom-tries", cfg.TriesDir())
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestThemesCommand(t *testing.T) {
	out, err := runCommand(t, "themes")
	require.NoError(t, err)
	for _, name := range config.ThemeNames() {
		assert.Contains(t, out, name)
	}
}

func TestListCommand(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())
	tries := t.TempDir()
	t.Setenv(config.EnvPath, tries)
	require.NoError(t, os.Mkdir(filepath.Join(tries, "2026-08-29 demo"), 0755))

	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "2026-08-29 demo")
}

func TestListCommandEmptyDirectory(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())
	t.Setenv(config.EnvPath, t.TempDir())

	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no tries in")
}

func TestConfigInitCommand(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())

	out, err := runCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(config.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme")

	_, err = runCommand(t, "config", "init")
	require.Error(t, err)
}

func TestSetupPrintCommand(t *testing.T) {
	out, err := runCommand(t, "setup", "--shell", "zsh", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "trygo()")
	assert.Contains(t, out, "eval")
}

func TestSetupRejectsUnknownShell(t *testing.T) {
	_, err := runCommand(t, "setup", "--shell", "tcsh")
	assert.Error(t, err)
}

func TestConfigCommandShowsEffectiveSettings(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())
	t.Setenv(config.EnvPath, "/tmp/my-tries")

	out, err := runCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/my-tries")
	assert.Contains(t, out, "date prefix: true")
}
