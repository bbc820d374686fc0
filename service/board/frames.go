package board

import (
	"encoding/json"

	decode "github.com/ankit-singh26/Whiteboard-Project/tools/decode"
	"github.com/pkg/errors"
)

// Frame types on the realtime channel. join/draw/chat arrive from clients;
// history/draw/chat-message/user-count go back out.
const (
	FrameJoin      = "join"
	FrameDraw      = "draw"
	FrameChat      = "chat"
	FrameHistory   = "history"
	FrameChatMsg   = "chat-message"
	FrameUserCount = "user-count"
)

// Frame is the envelope for every inbound message: a type tag, the room it
// targets and a free-form payload decoded per type.
type Frame struct {
	Type string         `json:"type"`
	Room string         `json:"room,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}

func ParseFrame(raw []byte) (*Frame, error) {
	f := &Frame{}
	if err := json.Unmarshal(raw, f); err != nil {
		return nil, errors.Wrap(err, "unmarshal frame")
	}
	if f.Type == "" {
		return nil, errors.New("frame missing type")
	}
	return f, nil
}

func ExtractDrawPayload(f *Frame) (*DrawingEvent, error) {
	return decode.DecodeMap[DrawingEvent](f.Data)
}

func ExtractChatPayload(f *Frame) (*ChatPayload, error) {
	return decode.DecodeMap[ChatPayload](f.Data)
}

// ---- server frames ----

// serverFrame mirrors Frame but with a typed payload. Data has no omitempty
// so a user-count of 0 still serializes.
type serverFrame struct {
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
	Data any    `json:"data"`
}

func marshalFrame(typ, room string, data any) []byte {
	// these payloads are plain structs and numbers; Marshal cannot fail
	b, _ := json.Marshal(serverFrame{Type: typ, Room: room, Data: data})
	return b
}

func BuildDrawFrame(room string, ev DrawingEvent) []byte {
	return marshalFrame(FrameDraw, room, ev)
}

func BuildChatFrame(room string, p ChatPayload) []byte {
	return marshalFrame(FrameChatMsg, room, p)
}

func BuildUserCountFrame(room string, count int) []byte {
	return marshalFrame(FrameUserCount, room, count)
}

func BuildHistoryFrame(room string, events []DrawingEvent, count int) []byte {
	return marshalFrame(FrameHistory, room, HistoryPayload{Events: events, Count: count})
}
