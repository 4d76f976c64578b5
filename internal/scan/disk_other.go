//go:build !unix

package scan

// FreeDiskSpaceMB is unsupported on this platform.
func FreeDiskSpaceMB(path string) (uint64, bool) {
	return 0, false
}
