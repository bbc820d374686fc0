package board

import (
	"net"
	"net/http"
	"time"

	"github.com/ankit-singh26/Whiteboard-Project/logger"
	"github.com/ankit-singh26/Whiteboard-Project/tools/ids"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	readLimit    = 1 << 20 // 1MB
	readDeadline = 60 * time.Second
	pingEvery    = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS upgrades the request and runs the connection's read loop until
// the peer goes away. One goroutine reads, one writes (WritePump), and a
// third keeps pings flowing; cleanup always runs on the way out.
func (r *Relay) HandleWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Infof("[ws] upgrade error: %v", err)
		return
	}
	defer closeQuiet(ws)

	client := NewClient(ids.GenerateString(), ws, sendQueueSize)
	r.Register(client)
	go client.WritePump()
	go pingLoop(ws, client.Done())

	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(readDeadline))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readDeadline))
	})

	logger.Infof("[ws] connected conn=%s remote=%s", client.ConnID, ws.RemoteAddr())

	for {
		mt, data, rerr := ws.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[ws] peer closed conn=%s err=%v", client.ConnID, rerr)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[ws] read timeout conn=%s err=%v", client.ConnID, rerr)
			} else {
				logger.Infof("[ws] read err conn=%s err=%v", client.ConnID, rerr)
			}
			break
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		frame, perr := ParseFrame(data)
		if perr != nil {
			sample := data
			if len(sample) > 256 {
				sample = sample[:256]
			}
			logger.Infof("[ws] bad frame conn=%s err=%v sample=%q", client.ConnID, perr, sample)
			continue
		}

		h := r.disp.GetHandler(frame.Type)
		if h == nil {
			continue
		}
		if herr := h.Handle(&Context{R: r}, frame, client); herr != nil {
			logger.Infof("[ws] handler type=%s conn=%s err=%v", frame.Type, client.ConnID, herr)
		}
	}

	r.Disconnect(client)
}

func pingLoop(ws *websocket.Conn, done <-chan struct{}) {
	t := time.NewTicker(pingEvery)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			_ = ws.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeDeadline))
		}
	}
}
