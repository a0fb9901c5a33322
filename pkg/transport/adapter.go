package transport

import (
	"context"
	"io"
	"log"

	"github.com/quillrun/procyon/internal/eventbus"
	"github.com/quillrun/procyon/pkg/proc"
)

var logger = log.New(io.Discard, "transport: ", log.LstdFlags)

// SetLogOutput redirects the package logger.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Server adapts a *proc.Controller and its *eventbus.Bus to ProcCoreServer.
// It holds no state of its own beyond those two references.
type Server struct {
	UnimplementedProcCoreServer
	ctl *proc.Controller
	bus *eventbus.Bus
}

// NewServer wires ctl and bus into a ProcCoreServer implementation.
func NewServer(ctl *proc.Controller, bus *eventbus.Bus) *Server {
	return &Server{ctl: ctl, bus: bus}
}

func (s *Server) Spawn(ctx context.Context, req *SpawnRequest) (*SpawnResponse, error) {
	logger.Printf("Spawn %s", req.Name)
	info, err := s.ctl.Spawn(req.Name, req.toConfig())
	if err != nil {
		return nil, grpcStatus(req.Name, err)
	}
	return &SpawnResponse{Status: statusOf(*info)}, nil
}

func (s *Server) Kill(ctx context.Context, req *KillRequest) (*KillResponse, error) {
	logger.Printf("Kill %s", req.Name)
	if err := s.ctl.Kill(req.Name); err != nil {
		return nil, grpcStatus(req.Name, err)
	}
	return &KillResponse{}, nil
}

func (s *Server) KillAll(ctx context.Context, req *KillAllRequest) (*KillAllResponse, error) {
	logger.Printf("KillAll")
	if err := s.ctl.KillAll(); err != nil {
		return nil, grpcStatus("*", err)
	}
	return &KillAllResponse{}, nil
}

func (s *Server) Restart(ctx context.Context, req *RestartRequest) (*RestartResponse, error) {
	logger.Printf("Restart %s", req.Name)
	var cfg *proc.SpawnConfig
	if req.Config != nil {
		c := req.Config.toConfig()
		cfg = &c
	}
	info, err := s.ctl.Restart(req.Name, cfg)
	if err != nil {
		return nil, grpcStatus(req.Name, err)
	}
	return &RestartResponse{Status: statusOf(*info)}, nil
}

func (s *Server) WriteStdin(ctx context.Context, req *WriteStdinRequest) (*WriteStdinResponse, error) {
	if err := s.ctl.WriteStdin(req.Name, req.Data); err != nil {
		return nil, grpcStatus(req.Name, err)
	}
	return &WriteStdinResponse{}, nil
}

func (s *Server) ListProcesses(ctx context.Context, req *ListProcessesRequest) (*ListProcessesResponse, error) {
	infos := s.ctl.ListProcesses()
	out := make([]*ProcessStatus, 0, len(infos))
	for _, info := range infos {
		out = append(out, statusOf(info))
	}
	return &ListProcessesResponse{Processes: out}, nil
}

func (s *Server) GetStatus(ctx context.Context, req *GetStatusRequest) (*GetStatusResponse, error) {
	info, err := s.ctl.GetStatus(req.Name)
	if err != nil {
		return nil, grpcStatus(req.Name, err)
	}
	return &GetStatusResponse{Status: statusOf(*info)}, nil
}

func (s *Server) SetRuntimePath(ctx context.Context, req *SetRuntimePathRequest) (*SetRuntimePathResponse, error) {
	s.ctl.SetRuntimePath(proc.Runtime(req.Runtime), req.Path)
	return &SetRuntimePathResponse{}, nil
}

func (s *Server) GetRuntimePaths(ctx context.Context, req *GetRuntimePathsRequest) (*GetRuntimePathsResponse, error) {
	return &GetRuntimePathsResponse{Paths: s.ctl.GetRuntimePaths()}, nil
}

func (s *Server) DetectRuntimes(ctx context.Context, req *DetectRuntimesRequest) (*DetectRuntimesResponse, error) {
	infos := s.ctl.DetectRuntimes(ctx)
	out := make([]*RuntimeStatus, 0, len(infos))
	for _, info := range infos {
		out = append(out, &RuntimeStatus{
			Name:      string(info.Name),
			Path:      info.Path,
			Version:   info.Version,
			Available: info.Available,
		})
	}
	return &DetectRuntimesResponse{Runtimes: out}, nil
}
