package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChanged(t *testing.T, w *Watcher) bool {
	t.Helper()
	select {
	case <-w.Changed():
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestSignalsOnFolderCreation(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start())

	require.NoError(t, os.Mkdir(filepath.Join(dir, "new-try"), 0755))
	assert.True(t, waitChanged(t, w), "expected a change signal after mkdir")
}

func TestSignalsOnFolderRemoval(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "old-try")
	require.NoError(t, os.Mkdir(sub, 0755))

	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start())

	require.NoError(t, os.Remove(sub))
	assert.True(t, waitChanged(t, w), "expected a change signal after rmdir")
}

func TestCoalescesBurstsIntoOneSignal(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start())

	for i := 0; i < 5; i++ {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "try-"+string(rune('a'+i))), 0755))
	}

	require.True(t, waitChanged(t, w))
	// Drain whatever single pending signal the burst may have left
	select {
	case <-w.Changed():
	case <-time.After(200 * time.Millisecond):
	}
	select {
	case <-w.Changed():
		t.Fatal("more than one signal pending after drain")
	default:
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
}

func TestStartTwiceIsNoop(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Start())
	require.NoError(t, w.Start())
}
