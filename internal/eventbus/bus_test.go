package eventbus

import (
	"testing"
	"time"

	"github.com/quillrun/procyon/pkg/proc"
)

func recvWithTimeout(t *testing.T, ch <-chan Envelope, d time.Duration) (Envelope, bool) {
	t.Helper()
	select {
	case v, ok := <-ch:
		return v, ok
	case <-time.After(d):
		return Envelope{}, false
	}
}

func assertNoRecv(t *testing.T, ch <-chan Envelope, d time.Duration) {
	t.Helper()
	if v, ok := recvWithTimeout(t, ch, d); ok {
		t.Fatalf("unexpected receive: %+v", v)
	}
}

func TestBusSingleSubscriberReceives(t *testing.T) {
	bus := New()
	defer bus.Close()

	sub, err := bus.Subscribe()
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Close()

	bus.Emit(proc.TopicStdout, proc.StdioPayload{Name: "p", Data: "hello"})

	env, ok := recvWithTimeout(t, sub.C(), 200*time.Millisecond)
	if !ok || env.Topic != proc.TopicStdout {
		t.Fatalf("expected stdout envelope, got ok=%v env=%+v", ok, env)
	}
	payload := env.Payload.(proc.StdioPayload)
	if payload.Data != "hello" {
		t.Fatalf("expected hello, got %q", payload.Data)
	}
}

func TestBusMultipleSubscribersReceiveSameEvent(t *testing.T) {
	bus := New()
	defer bus.Close()

	sub1, _ := bus.Subscribe()
	sub2, _ := bus.Subscribe()
	defer sub1.Close()
	defer sub2.Close()

	bus.Emit(proc.TopicExit, proc.ExitPayload{Name: "p"})

	if _, ok := recvWithTimeout(t, sub1.C(), 200*time.Millisecond); !ok {
		t.Fatalf("sub1 did not receive")
	}
	if _, ok := recvWithTimeout(t, sub2.C(), 200*time.Millisecond); !ok {
		t.Fatalf("sub2 did not receive")
	}
}

func TestBusSlowSubscriberGetsLatestNotOldest(t *testing.T) {
	bus := New()
	defer bus.Close()

	sub, _ := bus.Subscribe()
	defer sub.Close()

	// Pre-fill the buffer to simulate the subscriber being behind.
	sub.ch <- Envelope{Topic: proc.TopicStdout, Payload: proc.StdioPayload{Data: "stale"}}

	bus.Emit(proc.TopicStdout, proc.StdioPayload{Data: "fresh"})
	time.Sleep(10 * time.Millisecond)

	env, ok := recvWithTimeout(t, sub.C(), 200*time.Millisecond)
	if !ok {
		t.Fatalf("expected a delivery")
	}
	if env.Payload.(proc.StdioPayload).Data != "fresh" {
		t.Fatalf("expected the slow subscriber to see the newest value, got %+v", env)
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	defer bus.Close()

	sub, _ := bus.Subscribe()
	sub.Close()

	assertNoRecv(t, sub.C(), 50*time.Millisecond)
}

func TestBusCloseClosesSubscriptions(t *testing.T) {
	bus := New()
	sub, _ := bus.Subscribe()

	bus.Close()

	select {
	case _, ok := <-sub.C():
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("channel never closed after bus.Close")
	}
}
