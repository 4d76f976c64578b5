package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirAt(t *testing.T, base, name string, modified time.Time) {
	t.Helper()
	path := filepath.Join(base, name)
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.Chtimes(path, modified, modified))
}

func TestListSortsByModifiedDescending(t *testing.T) {
	base := t.TempDir()
	now := time.Now()
	mkdirAt(t, base, "oldest", now.Add(-3*time.Hour))
	mkdirAt(t, base, "newest", now.Add(-time.Hour))
	mkdirAt(t, base, "middle", now.Add(-2*time.Hour))

	entries := List(base, nil)
	require.Len(t, entries, 3)
	assert.Equal(t, "newest", entries[0].Name)
	assert.Equal(t, "middle", entries[1].Name)
	assert.Equal(t, "oldest", entries[2].Name)
}

func TestListSkipsNonDirectories(t *testing.T) {
	base := t.TempDir()
	mkdirAt(t, base, "realdir", time.Now())
	require.NoError(t, os.WriteFile(filepath.Join(base, "afile.txt"), []byte("x"), 0644))

	entries := List(base, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "realdir", entries[0].Name)
}

func TestListUnreadableBaseIsEmpty(t *testing.T) {
	entries := List("/nonexistent/tries/path", nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListAppliesIgnoreGlobs(t *testing.T) {
	base := t.TempDir()
	mkdirAt(t, base, "keepme", time.Now())
	mkdirAt(t, base, ".hidden", time.Now())
	mkdirAt(t, base, "node_modules", time.Now())

	ignore := []glob.Glob{
		glob.MustCompile(".*"),
		glob.MustCompile("node_modules"),
	}

	entries := List(base, ignore)
	require.Len(t, entries, 1)
	assert.Equal(t, "keepme", entries[0].Name)
}

func TestFolderSizeMBEmpty(t *testing.T) {
	assert.Equal(t, uint64(0), FolderSizeMB(t.TempDir()))
}

func TestFolderSizeMBNonexistent(t *testing.T) {
	assert.Equal(t, uint64(0), FolderSizeMB("/nonexistent/path"))
}

func TestFolderSizeMBCountsNestedFiles(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "a", "b"), 0755))

	// Two 1 MiB files, nested
	payload := make([]byte, 1024*1024)
	require.NoError(t, os.WriteFile(filepath.Join(base, "top.bin"), payload, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a", "b", "deep.bin"), payload, 0644))

	assert.Equal(t, uint64(2), FolderSizeMB(base))
}

func TestGitStateOf(t *testing.T) {
	t.Run("plain_folder", func(t *testing.T) {
		assert.Equal(t, GitNone, GitStateOf(t.TempDir()))
	})

	t.Run("repository", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
		assert.Equal(t, GitRepo, GitStateOf(dir))
	})

	t.Run("worktree", func(t *testing.T) {
		dir := t.TempDir()
		admin := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: "+admin+"\n"), 0644))
		assert.Equal(t, GitWorktree, GitStateOf(dir))
	})

	t.Run("locked_worktree", func(t *testing.T) {
		dir := t.TempDir()
		admin := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(admin, "locked"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: "+admin+"\n"), 0644))
		assert.Equal(t, GitWorktreeLocked, GitStateOf(dir))
	})
}

func TestGitStateString(t *testing.T) {
	assert.Equal(t, "", GitNone.String())
	assert.Equal(t, "git", GitRepo.String())
	assert.Equal(t, "worktree", GitWorktree.String())
	assert.Equal(t, "worktree (locked)", GitWorktreeLocked.String())
}

func TestFreeDiskSpaceMB(t *testing.T) {
	mb, ok := FreeDiskSpaceMB(t.TempDir())
	if !ok {
		t.Skip("statfs not supported on this platform")
	}
	assert.Greater(t, mb, uint64(0))
}
