//go:build !windows

package proc

import "os"

func isExecutableMode(info os.FileInfo) bool {
	return info.Mode()&0o111 != 0
}
