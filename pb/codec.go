package pb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// Codec bridges this package's legacy-shaped messages (Reset/String/
// ProtoMessage plus protobuf struct tags, no generated ProtoReflect) onto
// google.golang.org/grpc's wire codec. grpc's own "proto" codec requires
// the modern proto.Message interface directly; protoadapt.MessageV2Of
// wraps a legacy message into one on demand, deriving its descriptor
// reflectively from the struct tags rather than from compiled-in
// descriptor bytes (the same mechanism that lets pre-APIv2 generated code
// keep working against today's google.golang.org/protobuf).
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	vv, ok := v.(protoadapt.MessageV1)
	if !ok {
		return nil, fmt.Errorf("pb: cannot marshal %T: not a protoadapt.MessageV1", v)
	}
	return proto.Marshal(protoadapt.MessageV2Of(vv))
}

func (Codec) Unmarshal(data []byte, v any) error {
	vv, ok := v.(protoadapt.MessageV1)
	if !ok {
		return fmt.Errorf("pb: cannot unmarshal into %T: not a protoadapt.MessageV1", v)
	}
	return proto.Unmarshal(data, protoadapt.MessageV2Of(vv))
}

func (Codec) Name() string { return "proto" }

func init() {
	// Registering under the "proto" name replaces grpc's built-in codec
	// of the same name, so every call site that doesn't explicitly pick a
	// codec (the common case) gets this bridge automatically.
	encoding.RegisterCodec(Codec{})
}
