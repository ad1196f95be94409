package simws

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

// client is one simulator page. The page only receives; inbound messages are
// drained to service pings and detect closes.
type client struct {
	id     string
	conn   *websocket.Conn
	send   chan frameMessage
	hub    *hub
	logger *slog.Logger
}

func newClient(id string, conn *websocket.Conn, h *hub, logger *slog.Logger) *client {
	return &client{
		id:     id,
		conn:   conn,
		send:   make(chan frameMessage, sendBufferSize),
		hub:    h,
		logger: logger,
	}
}

// TrySend queues a frame without blocking. False means the buffer is full.
func (c *client) TrySend(msg frameMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn(c.logger, "simulator client closed unexpectedly", logging.FieldRequestID, c.id, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
