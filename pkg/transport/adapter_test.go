package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/quillrun/procyon/internal/eventbus"
	_ "github.com/quillrun/procyon/internal/rpcjson"
	"github.com/quillrun/procyon/pkg/proc"
)

func startTestServer(t *testing.T) (ProcCoreClient, func()) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	bus := eventbus.New()
	ctl := proc.NewController(bus)

	gsrv := grpc.NewServer()
	RegisterProcCoreServer(gsrv, NewServer(ctl, bus))
	go gsrv.Serve(lis)

	conn, err := grpc.NewClient(
		lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype("json")),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	client := NewProcCoreClient(conn)
	cleanup := func() {
		_ = conn.Close()
		gsrv.Stop()
		bus.Close()
	}
	return client, cleanup
}

func TestAdapterSpawnGetStatusKill(t *testing.T) {
	client, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	spawnResp, err := client.Spawn(ctx, &SpawnRequest{Name: "w", Command: "/bin/sleep", Args: []string{"5"}})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if !spawnResp.Status.Running {
		t.Fatalf("expected running status")
	}

	statusResp, err := client.GetStatus(ctx, &GetStatusRequest{Name: "w"})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if statusResp.Status.Name != "w" || !statusResp.Status.Running {
		t.Fatalf("unexpected status: %+v", statusResp.Status)
	}

	if _, err := client.Kill(ctx, &KillRequest{Name: "w"}); err != nil {
		t.Fatalf("Kill: %v", err)
	}
}

func TestAdapterGetStatusUnknownIsNotFound(t *testing.T) {
	client, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.GetStatus(ctx, &GetStatusRequest{Name: "nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if code := status.Code(err); code != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", code)
	}
}

func TestAdapterListProcesses(t *testing.T) {
	client, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Spawn(ctx, &SpawnRequest{Name: "a", Command: "/bin/sleep", Args: []string{"5"}}); err != nil {
		t.Fatalf("Spawn a: %v", err)
	}
	if _, err := client.Spawn(ctx, &SpawnRequest{Name: "b", Command: "/bin/sleep", Args: []string{"5"}}); err != nil {
		t.Fatalf("Spawn b: %v", err)
	}

	resp, err := client.ListProcesses(ctx, &ListProcessesRequest{})
	if err != nil {
		t.Fatalf("ListProcesses: %v", err)
	}
	if len(resp.Processes) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(resp.Processes))
	}

	if _, err := client.KillAll(ctx, &KillAllRequest{}); err != nil {
		t.Fatalf("KillAll: %v", err)
	}
}

func TestAdapterStreamLogs(t *testing.T) {
	client, cleanup := startTestServer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.StreamLogs(ctx, &StreamLogsRequest{Name: "echoer"})
	if err != nil {
		t.Fatalf("StreamLogs: %v", err)
	}

	if _, err := client.Spawn(ctx, &SpawnRequest{Name: "echoer", Command: "/bin/sh", Args: []string{"-c", "echo hi"}}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	got := map[string]bool{}
	for len(got) < 2 {
		ev, err := stream.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		got[ev.Topic] = true
	}
	if !got["js-process-stdout"] || !got["js-process-exit"] {
		t.Fatalf("expected both stdout and exit events, got %v", got)
	}
}
