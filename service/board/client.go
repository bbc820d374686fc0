package board

import (
	"sync"
	"time"

	"github.com/ankit-singh26/Whiteboard-Project/logger"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const writeDeadline = 5 * time.Second

// Client represents one realtime session. A client may be in any number of
// rooms at once; membership lives in the registry, not here.
type Client struct {
	ConnID string          // unique connection ID (snowflake)
	WS     *websocket.Conn // nil in tests; Send is then read directly
	Send   chan []byte     // outbound queue, drained by a single writer goroutine

	done      chan struct{}
	closeOnce sync.Once
}

// NewClient creates a client for a freshly upgraded connection.
func NewClient(connID string, ws *websocket.Conn, sendQueueSize int) *Client {
	return &Client{
		ConnID: connID,
		WS:     ws,
		Send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// Close stops the writer goroutine. Safe to call more than once. The Send
// channel is never closed: fan-out may still hold a reference to this
// client, and a send into a buffered channel nobody drains is harmless.
func (c *Client) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Done is closed when the client is shut down.
func (c *Client) Done() <-chan struct{} { return c.done }

// WritePump is the single writer for the websocket: all frames funnel
// through Send so concurrent broadcasts never interleave writes.
func (c *Client) WritePump() {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.Send:
			if err := writeText(c.WS, data); err != nil {
				logger.Debugf("[ws] write conn=%s err=%v", c.ConnID, err)
				return
			}
		}
	}
}

func writeText(conn *websocket.Conn, data []byte) error {
	if conn == nil {
		return errors.New("nil conn")
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func closeQuiet(c *websocket.Conn) {
	if c != nil {
		_ = c.Close()
	}
}
