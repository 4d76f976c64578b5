//go:build unix

package scan

import "golang.org/x/sys/unix"

// FreeDiskSpaceMB returns the free space on the filesystem holding
// path, in megabytes. Returns ok=false when statfs fails.
func FreeDiskSpaceMB(path string) (uint64, bool) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, false
	}
	free := uint64(stat.Bavail) * uint64(stat.Bsize)
	return free / (1024 * 1024), true
}
