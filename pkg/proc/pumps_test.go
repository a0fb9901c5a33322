package proc

import (
	"strings"
	"testing"
)

func TestRunPumpEmitsCompleteLines(t *testing.T) {
	sink := &recordingSink{}
	r := strings.NewReader("first\nsecond\nthird")
	runPump("p", r, TopicStdout, sink)

	lines := stdoutLinesFor(sink.snapshot(), "p")
	want := []string{"first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("got %v want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestRunPumpReplacesInvalidUTF8(t *testing.T) {
	sink := &recordingSink{}
	r := strings.NewReader("bad\xff\xfeline\n")
	runPump("p", r, TopicStderr, sink)

	events := sink.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	payload := events[0].payload.(StdioPayload)
	if !strings.Contains(payload.Data, "�") {
		t.Fatalf("expected replacement character in %q", payload.Data)
	}
	if !strings.HasPrefix(payload.Data, "bad") || !strings.HasSuffix(payload.Data, "line") {
		t.Fatalf("expected surrounding valid text preserved, got %q", payload.Data)
	}
}

func TestRunPumpEmptyReaderEmitsNothing(t *testing.T) {
	sink := &recordingSink{}
	runPump("p", strings.NewReader(""), TopicStdout, sink)
	if len(sink.snapshot()) != 0 {
		t.Fatalf("expected no events for empty input")
	}
}
