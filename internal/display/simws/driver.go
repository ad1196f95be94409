package simws

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
)

// Driver streams display frames to browser simulator pages over WebSocket.
// Each Render call PNG-encodes the frame and fans it out to every page.
type Driver struct {
	width    int
	height   int
	hub      *hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
	cancel   context.CancelFunc
}

// New starts the fan-out hub and returns the driver. Close stops the hub.
func New(width, height int, logger *slog.Logger) *Driver {
	ctx, cancel := context.WithCancel(context.Background())
	h := newHub(logger)
	go h.Run(ctx)

	return &Driver{
		width:  width,
		height: height,
		hub:    h,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The simulator page may be served from a different origin
			// during development.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		cancel: cancel,
	}
}

func (d *Driver) Size() (int, int) {
	return d.width, d.height
}

// Render encodes the frame and broadcasts it. No connected page is not an
// error; the frame is simply kept as the greeting for the next page.
func (d *Driver) Render(frame *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return err
	}
	d.hub.Broadcast(frameMessage{
		Type:      "frame",
		Width:     d.width,
		Height:    d.height,
		Data:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (d *Driver) Close() error {
	d.cancel()
	return nil
}

// ClientCount reports how many simulator pages are connected.
func (d *Driver) ClientCount() int {
	return d.hub.ClientCount()
}

// Handler upgrades an HTTP request to the frame stream.
func (d *Driver) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := d.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Warn(d.logger, "websocket upgrade failed", "error", err)
			return
		}
		c := newClient(uuid.NewString(), conn, d.hub, d.logger)
		if !d.hub.Register(c) {
			// Hub already stopped; refuse the stream instead of holding
			// a connection nobody will feed.
			conn.Close()
			return
		}
		go c.writePump()
		go c.readPump()
	})
}
