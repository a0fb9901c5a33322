//go:build windows

package proc

import "os"

// Windows has no execute permission bit; existence of a regular file at the
// candidate path is treated as sufficient.
func isExecutableMode(info os.FileInfo) bool {
	return !info.IsDir()
}
