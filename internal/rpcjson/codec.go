// Package rpcjson registers a grpc-go message codec that encodes requests
// and responses as JSON instead of protobuf wire format. The transport
// package's messages are plain JSON-tagged structs, not generated protobuf
// types, so the codec's Marshal/Unmarshal only ever need encoding/json.
package rpcjson

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// Name is the content-subtype negotiated via grpc.CallContentSubtype and
// grpc.ForceServerCodec; it appears on the wire as "application/grpc+json".
const Name = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

// codec implements encoding.Codec (formerly encoding.CodecV2's plain
// predecessor). It is stateless.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpcjson: marshal: %w", err)
	}
	return b, nil
}

func (codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("rpcjson: unmarshal: %w", err)
	}
	return nil
}

func (codec) Name() string { return Name }
