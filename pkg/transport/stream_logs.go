package transport

import (
	"github.com/quillrun/procyon/internal/eventbus"
	"github.com/quillrun/procyon/pkg/proc"
)

// StreamLogs fans the shared event bus out to one client, filtering to a
// single process name when req.Name is set. It runs until the client
// disconnects or the bus is closed.
func (s *Server) StreamLogs(req *StreamLogsRequest, stream ProcCore_StreamLogsServer) error {
	sub, err := s.bus.Subscribe()
	if err != nil {
		return grpcStatus("stream", err)
	}
	defer sub.Close()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case env, ok := <-sub.C():
			if !ok {
				return nil
			}
			ev, matched := toLogEvent(env, req.Name)
			if !matched {
				continue
			}
			if err := stream.Send(ev); err != nil {
				return err
			}
		}
	}
}

func toLogEvent(env eventbus.Envelope, filterName string) (*LogEvent, bool) {
	switch p := env.Payload.(type) {
	case proc.StdioPayload:
		if filterName != "" && p.Name != filterName {
			return nil, false
		}
		return &LogEvent{Topic: string(env.Topic), Name: p.Name, Data: p.Data}, true
	case proc.ExitPayload:
		if filterName != "" && p.Name != filterName {
			return nil, false
		}
		return &LogEvent{Topic: string(env.Topic), Name: p.Name, Code: p.Code}, true
	default:
		return nil, false
	}
}
