package transport

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quillrun/procyon/pkg/proc"
)

// grpcStatus maps a proc.Error kind to the nearest gRPC status code. A nil
// error maps to nil; a foreign error is not one of the core's own, so it
// maps to Internal.
func grpcStatus(name string, err error) error {
	if err == nil {
		return nil
	}
	switch proc.KindOf(err) {
	case proc.KindAlreadyExists:
		return status.Errorf(codes.AlreadyExists, "%s: %v", name, err)
	case proc.KindNotFound:
		return status.Errorf(codes.NotFound, "%s: %v", name, err)
	case proc.KindNotRunning:
		return status.Errorf(codes.FailedPrecondition, "%s: %v", name, err)
	case proc.KindInvalidConfig:
		return status.Errorf(codes.InvalidArgument, "%s: %v", name, err)
	case proc.KindRuntimeUnavailable:
		return status.Errorf(codes.Unavailable, "%s: %v", name, err)
	case proc.KindSpawnFailed, proc.KindWriteFailed:
		return status.Errorf(codes.Internal, "%s: %v", name, err)
	default:
		return status.Errorf(codes.Internal, "%s: %v", name, err)
	}
}
