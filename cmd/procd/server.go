package main

import (
	"fmt"
	"net"
	"os"
	"strings"

	"google.golang.org/grpc"

	"github.com/quillrun/procyon/internal/eventbus"
	_ "github.com/quillrun/procyon/internal/rpcjson"
	"github.com/quillrun/procyon/pkg/proc"
	"github.com/quillrun/procyon/pkg/transport"
)

const defaultAddress = "localhost:47051"

// defaultShutdownGrace mirrors proc.DefaultShutdownGrace; kept as its own
// constant since main.go should not need to know proc's import path just
// to read one number.
const defaultShutdownGrace = proc.DefaultShutdownGrace

// Server owns the listener, the gRPC server, and the process-supervision
// core it serves. Unlike the teacher's GRPCServer, it carries no TLS
// material: authorization is the host application's job, performed before
// a request ever reaches this process (§6).
type Server struct {
	lis        net.Listener
	s          *grpc.Server
	controller *proc.Controller
	bus        *eventbus.Bus
}

// NewServer builds the process core, its event bus, and a plain-text gRPC
// listener speaking the JSON codec registered by internal/rpcjson.
func NewServer() (*Server, error) {
	addr := os.Getenv("PROCYON_ADDRESS")
	if strings.TrimSpace(addr) == "" {
		addr = defaultAddress
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	bus := eventbus.New()
	controller := proc.NewController(bus)

	gs := grpc.NewServer()
	transport.RegisterProcCoreServer(gs, transport.NewServer(controller, bus))

	return &Server{lis: lis, s: gs, controller: controller, bus: bus}, nil
}

// Serve blocks serving gRPC on the configured listener.
func (srv *Server) Serve() error {
	return srv.s.Serve(srv.lis)
}

// Addr returns the network address the server is bound to.
func (srv *Server) Addr() net.Addr { return srv.lis.Addr() }

// Stop gracefully stops the gRPC server and closes the event bus.
func (srv *Server) Stop() {
	srv.s.GracefulStop()
	srv.bus.Close()
}
