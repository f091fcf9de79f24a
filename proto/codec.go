// Package proto contains the hand-authored wire bindings for the chatmesh
// RPC surface. See chat.proto for the interface description this package
// implements, and DESIGN.md for why it does not use protoc-generated code.
package proto

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec implements google.golang.org/grpc/encoding.Codec, taking the
// place the default protobuf codec occupies in protoc-generated code. It is
// registered under the same name ("proto") so every client/server stub in
// this package works with the stock grpc.Dial/grpc.NewServer call sites,
// with no per-call codec option required.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "proto"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
