package main

import (
	"fmt"
	"strings"

	"github.com/quillrun/procyon/pkg/transport"
)

func printStatusTable(st *transport.ProcessStatus) {
	pid := "-"
	if st.Pid != nil {
		pid = fmt.Sprintf("%d", *st.Pid)
	}
	running := "false"
	if st.Running {
		running = "true"
	}

	nameW := maxInt(4, len(st.Name))
	pidW := maxInt(3, len(pid))
	runW := maxInt(7, len(running))

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+\n", strings.Repeat("-", nameW), strings.Repeat("-", pidW), strings.Repeat("-", runW))
	fmt.Print(sep)
	fmt.Printf("| %s | %s | %s |\n", pad("NAME", nameW), pad("PID", pidW), pad("RUNNING", runW))
	fmt.Print(sep)
	fmt.Printf("| %s | %s | %s |\n", pad(st.Name, nameW), pad(pid, pidW), pad(running, runW))
	fmt.Print(sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
