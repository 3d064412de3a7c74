package wshub

import (
	"encoding/json"
	"fmt"

	"github.com/coder/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes messages for one client. JSON travels in text frames,
// msgpack in binary frames.
type Codec interface {
	Name() string
	MessageType() websocket.MessageType
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	JSON    Codec = jsonCodec{}
	Msgpack Codec = msgpackCodec{}
)

func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "msgpack":
		return Msgpack, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) MessageType() websocket.MessageType { return websocket.MessageText }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) MessageType() websocket.MessageType { return websocket.MessageBinary }
func (msgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
