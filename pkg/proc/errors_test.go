package proc

import (
	"errors"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	e1 := newErr(KindNotFound, "a", nil)
	e2 := newErr(KindNotFound, "b", nil)
	if !errors.Is(e1, e2) {
		t.Fatalf("expected errors with the same kind to match via errors.Is")
	}

	e3 := newErr(KindSpawnFailed, "a", nil)
	if errors.Is(e1, e3) {
		t.Fatalf("expected different kinds not to match")
	}
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	e := newErr(KindSpawnFailed, "x", cause)
	if !errors.Is(e, cause) {
		t.Fatalf("expected errors.Is to reach wrapped cause")
	}
}

func TestKindOfNonCoreError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty kind for foreign error, got %q", got)
	}
}

func TestErrorMessageIncludesNameAndCause(t *testing.T) {
	cause := errors.New("no such file")
	e := newErr(KindRuntimeUnavailable, "bun", cause)
	msg := e.Error()
	if msg == "" {
		t.Fatalf("expected non-empty message")
	}
}
