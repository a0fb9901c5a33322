package proc

import (
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
)

// ChildHandle owns one live child: its OS process, its stdin sink, and the
// bookkeeping the reaper needs to report and sweep it exactly once.
//
// Pump goroutines hold no reference to ChildHandle; they close over the
// process name, their pipe, and the EventSink instead. The reaper holds the
// handle only to wait on its process, mark it exited, and sweep it. Nothing
// the handle owns refers back to those goroutines, so there is no ownership
// cycle to break.
type ChildHandle struct {
	name string
	cmd  *exec.Cmd
	pid  int

	stdinMu sync.Mutex
	stdin   io.WriteCloser

	exitOnce     sync.Once
	exitObserved atomic.Bool
	exitCode     atomic.Pointer[int]

	lastConfig SpawnConfig

	// removed is closed by the registry when this handle is swept, i.e.
	// after the reaper's exit event has been emitted. restart and insert
	// wait on it to serialize with the sweep.
	removed chan struct{}
}

func newChildHandle(name string, cmd *exec.Cmd, stdin io.WriteCloser, cfg SpawnConfig) *ChildHandle {
	pid := 0
	if cmd.Process != nil {
		pid = cmd.Process.Pid
	}
	return &ChildHandle{
		name:       name,
		cmd:        cmd,
		pid:        pid,
		stdin:      stdin,
		lastConfig: cfg.clone(),
		removed:    make(chan struct{}),
	}
}

// Pid returns the OS pid, or nil if none was ever reported.
func (h *ChildHandle) Pid() *int {
	if h.pid == 0 {
		return nil
	}
	return intPtr(h.pid)
}

// Running reports whether exit has not yet been observed for this child.
func (h *ChildHandle) Running() bool {
	return !h.exitObserved.Load()
}

func (h *ChildHandle) info() ProcessInfo {
	return ProcessInfo{Name: h.name, Pid: h.Pid(), Running: h.Running()}
}

// markExited transitions exit_observed false -> true at most once (I3) and
// records the exit code. Only the reaper calls this. Returns true the first
// time it is called for this handle.
func (h *ChildHandle) markExited(code *int) bool {
	first := false
	h.exitOnce.Do(func() {
		first = true
		if code != nil {
			c := *code
			h.exitCode.Store(&c)
		}
		h.exitObserved.Store(true)
	})
	return first
}

// closeStdin drops the write end of stdin so a blocked writer sees a
// broken pipe instead of deadlocking the kill path, and so the child
// observes EOF on its own stdin. Safe to call more than once.
func (h *ChildHandle) closeStdin() {
	h.stdinMu.Lock()
	defer h.stdinMu.Unlock()
	if h.stdin == nil {
		return
	}
	_ = h.stdin.Close()
	h.stdin = nil
}

// writeStdin appends a single record separator iff data does not already
// end with one, then writes to stdin under the per-child write lock so
// concurrent writers cannot interleave and corrupt line framing.
func (h *ChildHandle) writeStdin(data string) error {
	h.stdinMu.Lock()
	defer h.stdinMu.Unlock()
	if h.stdin == nil {
		return io.ErrClosedPipe
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data += "\n"
	}
	_, err := io.WriteString(h.stdin, data)
	return err
}
