// Package transport defines the wire messages and gRPC service surface for
// the debug/admin RPC exposed by cmd/procd, and adapts pkg/proc.Controller
// to that surface. Messages are plain JSON-tagged structs carried over the
// rpcjson codec rather than generated protobuf types.
package transport

import "github.com/quillrun/procyon/pkg/proc"

// SpawnRequest mirrors proc.SpawnConfig plus the target name.
type SpawnRequest struct {
	Name    string            `json:"name"`
	Runtime string            `json:"runtime,omitempty"`
	Command string            `json:"command,omitempty"`
	Sidecar string            `json:"sidecar,omitempty"`
	Script  string            `json:"script,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Cwd     string            `json:"cwd,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

func (r *SpawnRequest) toConfig() proc.SpawnConfig {
	return proc.SpawnConfig{
		Runtime: proc.Runtime(r.Runtime),
		Command: r.Command,
		Sidecar: r.Sidecar,
		Script:  r.Script,
		Args:    r.Args,
		Cwd:     r.Cwd,
		Env:     r.Env,
	}
}

// ProcessStatus is the wire shape of proc.ProcessInfo.
type ProcessStatus struct {
	Name    string `json:"name"`
	Pid     *int   `json:"pid,omitempty"`
	Running bool   `json:"running"`
}

func statusOf(info proc.ProcessInfo) *ProcessStatus {
	return &ProcessStatus{Name: info.Name, Pid: info.Pid, Running: info.Running}
}

// SpawnResponse, RestartResponse, GetStatusResponse all carry one status.
type SpawnResponse struct {
	Status *ProcessStatus `json:"status"`
}

type KillRequest struct {
	Name string `json:"name"`
}

type KillResponse struct{}

type KillAllRequest struct{}

type KillAllResponse struct{}

type RestartRequest struct {
	Name   string        `json:"name"`
	Config *SpawnRequest `json:"config,omitempty"`
}

type RestartResponse struct {
	Status *ProcessStatus `json:"status"`
}

type WriteStdinRequest struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

type WriteStdinResponse struct{}

type ListProcessesRequest struct{}

type ListProcessesResponse struct {
	Processes []*ProcessStatus `json:"processes"`
}

type GetStatusRequest struct {
	Name string `json:"name"`
}

type GetStatusResponse struct {
	Status *ProcessStatus `json:"status"`
}

type SetRuntimePathRequest struct {
	Runtime string `json:"runtime"`
	Path    string `json:"path"`
}

type SetRuntimePathResponse struct{}

type GetRuntimePathsRequest struct{}

type GetRuntimePathsResponse struct {
	Paths map[string]string `json:"paths"`
}

// RuntimeStatus is the wire shape of proc.RuntimeInfo.
type RuntimeStatus struct {
	Name      string  `json:"name"`
	Path      *string `json:"path,omitempty"`
	Version   *string `json:"version,omitempty"`
	Available bool    `json:"available"`
}

type DetectRuntimesRequest struct{}

type DetectRuntimesResponse struct {
	Runtimes []*RuntimeStatus `json:"runtimes"`
}

// StreamLogsRequest optionally scopes the stream to one process name; an
// empty name subscribes to every process.
type StreamLogsRequest struct {
	Name string `json:"name,omitempty"`
}

// LogEvent is one delivered stdout/stderr/exit event.
type LogEvent struct {
	Topic string `json:"topic"`
	Name  string `json:"name"`
	Data  string `json:"data,omitempty"`
	Code  *int   `json:"code,omitempty"`
}
