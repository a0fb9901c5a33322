package main

import (
	"context"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	_ "github.com/quillrun/procyon/internal/rpcjson"
	"github.com/quillrun/procyon/pkg/transport"
)

const defaultAddress = "localhost:47051"

// dial connects to procd. Unlike the teacher's mTLS dial, this is plain
// text: the debug/admin surface is reached only from the host process that
// already authorized the caller (§6), never directly from untrusted
// clients.
func dial(ctx context.Context) (transport.ProcCoreClient, func() error, error) {
	addr := os.Getenv("PROCYON_ADDRESS")
	if strings.TrimSpace(addr) == "" {
		addr = defaultAddress
	}

	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype("json")),
	)
	if err != nil {
		return nil, nil, err
	}
	return transport.NewProcCoreClient(conn), conn.Close, nil
}

// grpcCode extracts the gRPC status code from err, or codes.Unknown if err
// did not come from a status-bearing RPC response (e.g. a cobra argument
// error). Used by main to prefix operation failures with the daemon's own
// error kind (see pkg/transport/errors.go's grpcStatus).
func grpcCode(err error) codes.Code {
	st, ok := status.FromError(err)
	if !ok {
		return codes.Unknown
	}
	return st.Code()
}
