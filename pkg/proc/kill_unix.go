//go:build !windows

package proc

import (
	"os/exec"
	"syscall"
)

// sysProcAttr puts the child in its own process group so killChild can
// signal the whole group, not just the direct child.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// killChild issues SIGKILL to the child's process group. Sending to -pid
// reaches any grandchildren the child spawned into the same group, not
// just the direct child.
func killChild(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
