//go:build windows

package proc

import (
	"os/exec"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// killChild terminates the child directly; Windows has no signal/process
// group equivalent to the POSIX kill(-pgid) used elsewhere.
func killChild(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}
