package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName = "procyon.v1.ProcCore"

	ProcCore_Spawn_FullMethodName           = "/" + serviceName + "/Spawn"
	ProcCore_Kill_FullMethodName            = "/" + serviceName + "/Kill"
	ProcCore_KillAll_FullMethodName         = "/" + serviceName + "/KillAll"
	ProcCore_Restart_FullMethodName         = "/" + serviceName + "/Restart"
	ProcCore_WriteStdin_FullMethodName      = "/" + serviceName + "/WriteStdin"
	ProcCore_ListProcesses_FullMethodName   = "/" + serviceName + "/ListProcesses"
	ProcCore_GetStatus_FullMethodName       = "/" + serviceName + "/GetStatus"
	ProcCore_SetRuntimePath_FullMethodName  = "/" + serviceName + "/SetRuntimePath"
	ProcCore_GetRuntimePaths_FullMethodName = "/" + serviceName + "/GetRuntimePaths"
	ProcCore_DetectRuntimes_FullMethodName  = "/" + serviceName + "/DetectRuntimes"
	ProcCore_StreamLogs_FullMethodName      = "/" + serviceName + "/StreamLogs"
)

// ProcCoreServer is the interface Server (adapter.go) implements over
// pkg/proc and cmd/procd registers.
type ProcCoreServer interface {
	Spawn(context.Context, *SpawnRequest) (*SpawnResponse, error)
	Kill(context.Context, *KillRequest) (*KillResponse, error)
	KillAll(context.Context, *KillAllRequest) (*KillAllResponse, error)
	Restart(context.Context, *RestartRequest) (*RestartResponse, error)
	WriteStdin(context.Context, *WriteStdinRequest) (*WriteStdinResponse, error)
	ListProcesses(context.Context, *ListProcessesRequest) (*ListProcessesResponse, error)
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	SetRuntimePath(context.Context, *SetRuntimePathRequest) (*SetRuntimePathResponse, error)
	GetRuntimePaths(context.Context, *GetRuntimePathsRequest) (*GetRuntimePathsResponse, error)
	DetectRuntimes(context.Context, *DetectRuntimesRequest) (*DetectRuntimesResponse, error)
	StreamLogs(*StreamLogsRequest, ProcCore_StreamLogsServer) error
}

// UnimplementedProcCoreServer can be embedded to satisfy ProcCoreServer
// while only overriding the methods a particular build cares about.
type UnimplementedProcCoreServer struct{}

func (UnimplementedProcCoreServer) Spawn(context.Context, *SpawnRequest) (*SpawnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Spawn not implemented")
}
func (UnimplementedProcCoreServer) Kill(context.Context, *KillRequest) (*KillResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Kill not implemented")
}
func (UnimplementedProcCoreServer) KillAll(context.Context, *KillAllRequest) (*KillAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method KillAll not implemented")
}
func (UnimplementedProcCoreServer) Restart(context.Context, *RestartRequest) (*RestartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Restart not implemented")
}
func (UnimplementedProcCoreServer) WriteStdin(context.Context, *WriteStdinRequest) (*WriteStdinResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WriteStdin not implemented")
}
func (UnimplementedProcCoreServer) ListProcesses(context.Context, *ListProcessesRequest) (*ListProcessesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProcesses not implemented")
}
func (UnimplementedProcCoreServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedProcCoreServer) SetRuntimePath(context.Context, *SetRuntimePathRequest) (*SetRuntimePathResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetRuntimePath not implemented")
}
func (UnimplementedProcCoreServer) GetRuntimePaths(context.Context, *GetRuntimePathsRequest) (*GetRuntimePathsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRuntimePaths not implemented")
}
func (UnimplementedProcCoreServer) DetectRuntimes(context.Context, *DetectRuntimesRequest) (*DetectRuntimesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DetectRuntimes not implemented")
}
func (UnimplementedProcCoreServer) StreamLogs(*StreamLogsRequest, ProcCore_StreamLogsServer) error {
	return status.Error(codes.Unimplemented, "method StreamLogs not implemented")
}

// RegisterProcCoreServer registers srv on s under the ProcCore service.
func RegisterProcCoreServer(s grpc.ServiceRegistrar, srv ProcCoreServer) {
	s.RegisterService(&ProcCore_ServiceDesc, srv)
}

func _ProcCore_Spawn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SpawnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).Spawn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_Spawn_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).Spawn(ctx, req.(*SpawnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_Kill_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KillRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).Kill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_Kill_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).Kill(ctx, req.(*KillRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_KillAll_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(KillAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).KillAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_KillAll_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).KillAll(ctx, req.(*KillAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_Restart_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RestartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).Restart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_Restart_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).Restart(ctx, req.(*RestartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_WriteStdin_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(WriteStdinRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).WriteStdin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_WriteStdin_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).WriteStdin(ctx, req.(*WriteStdinRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_ListProcesses_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListProcessesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).ListProcesses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_ListProcesses_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).ListProcesses(ctx, req.(*ListProcessesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_GetStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_GetStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).GetStatus(ctx, req.(*GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_SetRuntimePath_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetRuntimePathRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).SetRuntimePath(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_SetRuntimePath_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).SetRuntimePath(ctx, req.(*SetRuntimePathRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_GetRuntimePaths_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRuntimePathsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).GetRuntimePaths(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_GetRuntimePaths_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).GetRuntimePaths(ctx, req.(*GetRuntimePathsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_DetectRuntimes_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DetectRuntimesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcCoreServer).DetectRuntimes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProcCore_DetectRuntimes_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProcCoreServer).DetectRuntimes(ctx, req.(*DetectRuntimesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcCore_StreamLogs_Handler(srv any, stream grpc.ServerStream) error {
	m := new(StreamLogsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ProcCoreServer).StreamLogs(m, &procCoreStreamLogsServer{stream})
}

// ProcCore_StreamLogsServer is the server-side handle for the StreamLogs
// server-streaming RPC.
type ProcCore_StreamLogsServer interface {
	Send(*LogEvent) error
	grpc.ServerStream
}

type procCoreStreamLogsServer struct {
	grpc.ServerStream
}

func (x *procCoreStreamLogsServer) Send(m *LogEvent) error {
	return x.ServerStream.SendMsg(m)
}

// ProcCore_ServiceDesc is the grpc.ServiceDesc for the ProcCore service, in
// the exact shape protoc-gen-go-grpc emits, but hand-authored against plain
// JSON message structs rather than protobuf-generated ones.
var ProcCore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ProcCoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Spawn", Handler: _ProcCore_Spawn_Handler},
		{MethodName: "Kill", Handler: _ProcCore_Kill_Handler},
		{MethodName: "KillAll", Handler: _ProcCore_KillAll_Handler},
		{MethodName: "Restart", Handler: _ProcCore_Restart_Handler},
		{MethodName: "WriteStdin", Handler: _ProcCore_WriteStdin_Handler},
		{MethodName: "ListProcesses", Handler: _ProcCore_ListProcesses_Handler},
		{MethodName: "GetStatus", Handler: _ProcCore_GetStatus_Handler},
		{MethodName: "SetRuntimePath", Handler: _ProcCore_SetRuntimePath_Handler},
		{MethodName: "GetRuntimePaths", Handler: _ProcCore_GetRuntimePaths_Handler},
		{MethodName: "DetectRuntimes", Handler: _ProcCore_DetectRuntimes_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamLogs",
			Handler:       _ProcCore_StreamLogs_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "procyon/v1/proccore.proto",
}

// ProcCoreClient is the client-side interface for cmd/procctl.
type ProcCoreClient interface {
	Spawn(ctx context.Context, in *SpawnRequest, opts ...grpc.CallOption) (*SpawnResponse, error)
	Kill(ctx context.Context, in *KillRequest, opts ...grpc.CallOption) (*KillResponse, error)
	KillAll(ctx context.Context, in *KillAllRequest, opts ...grpc.CallOption) (*KillAllResponse, error)
	Restart(ctx context.Context, in *RestartRequest, opts ...grpc.CallOption) (*RestartResponse, error)
	WriteStdin(ctx context.Context, in *WriteStdinRequest, opts ...grpc.CallOption) (*WriteStdinResponse, error)
	ListProcesses(ctx context.Context, in *ListProcessesRequest, opts ...grpc.CallOption) (*ListProcessesResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
	SetRuntimePath(ctx context.Context, in *SetRuntimePathRequest, opts ...grpc.CallOption) (*SetRuntimePathResponse, error)
	GetRuntimePaths(ctx context.Context, in *GetRuntimePathsRequest, opts ...grpc.CallOption) (*GetRuntimePathsResponse, error)
	DetectRuntimes(ctx context.Context, in *DetectRuntimesRequest, opts ...grpc.CallOption) (*DetectRuntimesResponse, error)
	StreamLogs(ctx context.Context, in *StreamLogsRequest, opts ...grpc.CallOption) (ProcCore_StreamLogsClient, error)
}

type procCoreClient struct {
	cc grpc.ClientConnInterface
}

// NewProcCoreClient wraps cc for procctl's use. cc must have been dialed
// with the rpcjson content subtype negotiated (grpc.CallContentSubtype).
func NewProcCoreClient(cc grpc.ClientConnInterface) ProcCoreClient {
	return &procCoreClient{cc}
}

func (c *procCoreClient) Spawn(ctx context.Context, in *SpawnRequest, opts ...grpc.CallOption) (*SpawnResponse, error) {
	out := new(SpawnResponse)
	if err := c.cc.Invoke(ctx, ProcCore_Spawn_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) Kill(ctx context.Context, in *KillRequest, opts ...grpc.CallOption) (*KillResponse, error) {
	out := new(KillResponse)
	if err := c.cc.Invoke(ctx, ProcCore_Kill_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) KillAll(ctx context.Context, in *KillAllRequest, opts ...grpc.CallOption) (*KillAllResponse, error) {
	out := new(KillAllResponse)
	if err := c.cc.Invoke(ctx, ProcCore_KillAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) Restart(ctx context.Context, in *RestartRequest, opts ...grpc.CallOption) (*RestartResponse, error) {
	out := new(RestartResponse)
	if err := c.cc.Invoke(ctx, ProcCore_Restart_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) WriteStdin(ctx context.Context, in *WriteStdinRequest, opts ...grpc.CallOption) (*WriteStdinResponse, error) {
	out := new(WriteStdinResponse)
	if err := c.cc.Invoke(ctx, ProcCore_WriteStdin_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) ListProcesses(ctx context.Context, in *ListProcessesRequest, opts ...grpc.CallOption) (*ListProcessesResponse, error) {
	out := new(ListProcessesResponse)
	if err := c.cc.Invoke(ctx, ProcCore_ListProcesses_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	out := new(GetStatusResponse)
	if err := c.cc.Invoke(ctx, ProcCore_GetStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) SetRuntimePath(ctx context.Context, in *SetRuntimePathRequest, opts ...grpc.CallOption) (*SetRuntimePathResponse, error) {
	out := new(SetRuntimePathResponse)
	if err := c.cc.Invoke(ctx, ProcCore_SetRuntimePath_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) GetRuntimePaths(ctx context.Context, in *GetRuntimePathsRequest, opts ...grpc.CallOption) (*GetRuntimePathsResponse, error) {
	out := new(GetRuntimePathsResponse)
	if err := c.cc.Invoke(ctx, ProcCore_GetRuntimePaths_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) DetectRuntimes(ctx context.Context, in *DetectRuntimesRequest, opts ...grpc.CallOption) (*DetectRuntimesResponse, error) {
	out := new(DetectRuntimesResponse)
	if err := c.cc.Invoke(ctx, ProcCore_DetectRuntimes_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *procCoreClient) StreamLogs(ctx context.Context, in *StreamLogsRequest, opts ...grpc.CallOption) (ProcCore_StreamLogsClient, error) {
	stream, err := c.cc.NewStream(ctx, &ProcCore_ServiceDesc.Streams[0], ProcCore_StreamLogs_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &procCoreStreamLogsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ProcCore_StreamLogsClient is the client-side handle for the StreamLogs
// server-streaming RPC.
type ProcCore_StreamLogsClient interface {
	Recv() (*LogEvent, error)
	grpc.ClientStream
}

type procCoreStreamLogsClient struct {
	grpc.ClientStream
}

func (x *procCoreStreamLogsClient) Recv() (*LogEvent, error) {
	m := new(LogEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
