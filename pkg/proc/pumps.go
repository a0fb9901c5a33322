package proc

import (
	"bufio"
	"io"
	"strings"
)

const maxLineBuffer = 1 << 20 // 1 MiB, generous headroom over bufio's 64 KiB default

// runPump reads r line by line and emits each complete line (terminator
// stripped) on topic for name. Non-UTF-8 bytes are replaced with the
// Unicode replacement character rather than aborting the pump. The pump
// terminates naturally at EOF or on a read error, which the core treats as
// EOF (§7): it never panics and never reports pump failures to the caller.
func runPump(name string, r io.Reader, topic Topic, sink EventSink) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBuffer)
	for scanner.Scan() {
		line := strings.ToValidUTF8(scanner.Text(), "�")
		sink.Emit(topic, StdioPayload{Name: name, Data: line})
	}
	// scanner.Err() is deliberately ignored: any read error here is
	// equivalent to EOF from the pump's point of view.
}

// runReaper waits for the child to exit, emits exactly one exit event, then
// sweeps the handle from the registry. Spawn runs it only once both stdio
// pumps have returned, so no further stdout/stderr event for name is
// emitted after the exit event that this function produces.
func runReaper(reg *Registry, handle *ChildHandle, sink EventSink) {
	err := handle.cmd.Wait()

	var code *int
	if handle.cmd.ProcessState != nil {
		if ec := handle.cmd.ProcessState.ExitCode(); ec >= 0 {
			code = intPtr(ec)
		}
	}
	_ = err // a non-nil Wait error with no usable exit code surfaces as code == nil

	handle.markExited(code)
	handle.closeStdin()
	sink.Emit(TopicExit, ExitPayload{Name: handle.name, Code: code})
	reg.remove(handle.name, handle)
}
