package scan

import (
	"os"
	"path/filepath"
)

// FolderSizeMB returns the total size of all regular files under path,
// in megabytes. Symlinks and special files are not followed. Unreadable
// subdirectories are skipped, not errors.
func FolderSizeMB(path string) uint64 {
	var size uint64

	stack := []string{path}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				continue
			}
			switch {
			case info.IsDir():
				stack = append(stack, filepath.Join(dir, entry.Name()))
			case info.Mode().IsRegular():
				size += uint64(info.Size())
			}
		}
	}

	return size / (1024 * 1024)
}
