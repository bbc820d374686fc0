package board_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ankit-singh26/Whiteboard-Project/service/board"
	"github.com/ankit-singh26/Whiteboard-Project/service/board/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsFrame is what a client would see on the wire.
type wsFrame struct {
	Type string          `json:"type"`
	Room string          `json:"room"`
	Data json.RawMessage `json:"data"`
}

func newTestRelay() *board.Relay {
	relay := board.NewRelay(board.NewRegistry())
	relay.Disp().Register(handlers.NewJoinHandler())
	relay.Disp().Register(handlers.NewDrawHandler())
	relay.Disp().Register(handlers.NewChatHandler())
	return relay
}

// connect registers a client with no websocket; tests read its Send queue.
func connect(relay *board.Relay, id string) *board.Client {
	c := board.NewClient(id, nil, 64)
	relay.Register(c)
	return c
}

func dispatch(t *testing.T, relay *board.Relay, c *board.Client, typ, room string, data map[string]any) {
	t.Helper()
	f := &board.Frame{Type: typ, Room: room, Data: data}
	require.NoError(t, relay.Disp().Dispatch(&board.Context{R: relay}, f, c))
}

func recvFrame(t *testing.T, c *board.Client) wsFrame {
	t.Helper()
	select {
	case raw := <-c.Send:
		var f wsFrame
		require.NoError(t, json.Unmarshal(raw, &f))
		return f
	case <-time.After(2 * time.Second):
		t.Fatalf("no frame delivered to conn %s", c.ConnID)
		return wsFrame{}
	}
}

func recvHistory(t *testing.T, c *board.Client) board.HistoryPayload {
	t.Helper()
	f := recvFrame(t, c)
	require.Equal(t, board.FrameHistory, f.Type)
	var p board.HistoryPayload
	require.NoError(t, json.Unmarshal(f.Data, &p))
	return p
}

func recvUserCount(t *testing.T, c *board.Client) int {
	t.Helper()
	f := recvFrame(t, c)
	require.Equal(t, board.FrameUserCount, f.Type)
	var n int
	require.NoError(t, json.Unmarshal(f.Data, &n))
	return n
}

func strokeData(x float64) map[string]any {
	return map[string]any{
		"tool": "pen", "color": "#000000", "lineWidth": 4,
		"x0": x, "y0": 0.1, "x1": x + 0.05, "y1": 0.2,
	}
}

func TestRelay_JoinDrawClearScenario(t *testing.T) {
	relay := newTestRelay()

	// A joins an empty room: private history reply, then the count broadcast
	a := connect(relay, "A")
	dispatch(t, relay, a, board.FrameJoin, "abc", nil)

	hist := recvHistory(t, a)
	assert.Empty(t, hist.Events)
	assert.Equal(t, 1, hist.Count)
	assert.Equal(t, 1, recvUserCount(t, a))

	// A draws S1
	dispatch(t, relay, a, board.FrameDraw, "abc", strokeData(0.1))

	// B joins: sees S1 in history, count 2; A gets the count broadcast
	b := connect(relay, "B")
	dispatch(t, relay, b, board.FrameJoin, "abc", nil)

	histB := recvHistory(t, b)
	require.Len(t, histB.Events, 1)
	assert.Equal(t, "pen", histB.Events[0].Tool)
	assert.Equal(t, 2, histB.Count)
	assert.Equal(t, 2, recvUserCount(t, b))
	assert.Equal(t, 2, recvUserCount(t, a))

	// B clears: both sides get the clear echo, sender included
	dispatch(t, relay, b, board.FrameDraw, "abc", map[string]any{"clear": true})

	for _, c := range []*board.Client{a, b} {
		f := recvFrame(t, c)
		require.Equal(t, board.FrameDraw, f.Type)
		var ev board.DrawingEvent
		require.NoError(t, json.Unmarshal(f.Data, &ev))
		assert.True(t, ev.Clear)
	}

	// C joins after the clear: empty history, count 3
	c := connect(relay, "C")
	dispatch(t, relay, c, board.FrameJoin, "abc", nil)

	histC := recvHistory(t, c)
	assert.Empty(t, histC.Events)
	assert.Equal(t, 3, histC.Count)
}

func TestRelay_StrokeExcludesSender(t *testing.T) {
	relay := newTestRelay()

	a := connect(relay, "A")
	b := connect(relay, "B")
	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	recvHistory(t, a)
	recvUserCount(t, a)
	dispatch(t, relay, b, board.FrameJoin, "r1", nil)
	recvHistory(t, b)
	recvUserCount(t, b)
	recvUserCount(t, a)

	dispatch(t, relay, a, board.FrameDraw, "r1", strokeData(0.3))

	// B receives the stroke
	f := recvFrame(t, b)
	require.Equal(t, board.FrameDraw, f.Type)
	var ev board.DrawingEvent
	require.NoError(t, json.Unmarshal(f.Data, &ev))
	assert.InDelta(t, 0.3, ev.X0, 1e-9)

	// A must not: the next frame A sees is the chat marker sent afterwards,
	// proving the stroke was never queued to the sender
	dispatch(t, relay, b, board.FrameChat, "r1", map[string]any{"username": "bob", "message": "marker"})
	assert.Equal(t, board.FrameChatMsg, recvFrame(t, a).Type)
}

func TestRelay_ChatEchoesToSender(t *testing.T) {
	relay := newTestRelay()

	a := connect(relay, "A")
	b := connect(relay, "B")
	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	recvHistory(t, a)
	recvUserCount(t, a)
	dispatch(t, relay, b, board.FrameJoin, "r1", nil)
	recvHistory(t, b)
	recvUserCount(t, b)
	recvUserCount(t, a)

	dispatch(t, relay, a, board.FrameChat, "r1", map[string]any{"username": "alice", "message": "hi"})

	for _, c := range []*board.Client{a, b} {
		f := recvFrame(t, c)
		require.Equal(t, board.FrameChatMsg, f.Type)
		var p board.ChatPayload
		require.NoError(t, json.Unmarshal(f.Data, &p))
		assert.Equal(t, "alice", p.Username)
		assert.Equal(t, "hi", p.Message)
	}
}

func TestRelay_DisconnectRecountsEveryRoom(t *testing.T) {
	relay := newTestRelay()

	a := connect(relay, "A")
	b := connect(relay, "B")

	// B is in two rooms at once
	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	recvHistory(t, a)
	recvUserCount(t, a)
	dispatch(t, relay, b, board.FrameJoin, "r1", nil)
	recvHistory(t, b)
	recvUserCount(t, b)
	recvUserCount(t, a)
	dispatch(t, relay, b, board.FrameJoin, "r2", nil)
	recvHistory(t, b)
	recvUserCount(t, b)

	relay.Disconnect(b)

	assert.Equal(t, 1, recvUserCount(t, a), "r1 recounted for the survivor")
	assert.Equal(t, 1, relay.Registry().ParticipantCount("r1"))
	assert.Equal(t, 0, relay.Registry().ParticipantCount("r2"))
}

func TestRelay_DisconnectIsIdempotent(t *testing.T) {
	relay := newTestRelay()

	a := connect(relay, "A")
	b := connect(relay, "B")
	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	recvHistory(t, a)
	recvUserCount(t, a)
	dispatch(t, relay, b, board.FrameJoin, "r1", nil)
	recvHistory(t, b)
	recvUserCount(t, b)
	recvUserCount(t, a)

	relay.Disconnect(b)
	relay.Disconnect(b) // double fire

	assert.Equal(t, 1, recvUserCount(t, a))
	assert.Equal(t, 1, relay.Registry().ParticipantCount("r1"))

	// a marker proves the second disconnect broadcast nothing extra
	dispatch(t, relay, a, board.FrameChat, "r1", map[string]any{"username": "alice", "message": "marker"})
	assert.Equal(t, board.FrameChatMsg, recvFrame(t, a).Type)
}

func TestRelay_DoubleJoinKeepsCountAccurate(t *testing.T) {
	relay := newTestRelay()

	a := connect(relay, "A")
	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	recvHistory(t, a)
	recvUserCount(t, a)

	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	hist := recvHistory(t, a)

	assert.Equal(t, 1, hist.Count, "re-join must not double count")
	assert.Equal(t, 1, relay.Registry().ParticipantCount("r1"))
}

func TestRelay_DrawIntoUnjoinedRoom(t *testing.T) {
	relay := newTestRelay()

	// a draw racing ahead of any join silently creates the room
	a := connect(relay, "A")
	dispatch(t, relay, a, board.FrameDraw, "fresh", strokeData(0.5))

	b := connect(relay, "B")
	dispatch(t, relay, b, board.FrameJoin, "fresh", nil)

	hist := recvHistory(t, b)
	require.Len(t, hist.Events, 1)
	assert.Equal(t, 1, hist.Count, "drawer never joined, so it is not counted")
}

func TestRelay_HistorySnapshotOrder(t *testing.T) {
	relay := newTestRelay()

	a := connect(relay, "A")
	dispatch(t, relay, a, board.FrameJoin, "r1", nil)
	recvHistory(t, a)
	recvUserCount(t, a)

	for i := 0; i < 5; i++ {
		dispatch(t, relay, a, board.FrameDraw, "r1", strokeData(float64(i)/10))
	}

	b := connect(relay, "B")
	dispatch(t, relay, b, board.FrameJoin, "r1", nil)

	hist := recvHistory(t, b)
	require.Len(t, hist.Events, 5)
	for i, ev := range hist.Events {
		assert.InDelta(t, float64(i)/10, ev.X0, 1e-9, "replay order equals append order")
	}
}
