package simws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
)

const broadcastBufferSize = 64

// frameMessage is one display frame on the wire: PNG pixels, base64-encoded.
type frameMessage struct {
	Type      string    `json:"type"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// hub fans frames out to every connected simulator page. Clients register
// and unregister through channels owned by the Run loop.
type hub struct {
	logger *slog.Logger

	clients   map[*client]bool
	clientsMu sync.RWMutex

	broadcast  chan frameMessage
	register   chan *client
	unregister chan *client
	done       chan struct{}

	frameMu   sync.Mutex
	lastFrame frameMessage
	haveFrame bool
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		logger:     logger,
		clients:    make(map[*client]bool),
		broadcast:  make(chan frameMessage, broadcastBufferSize),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

func (h *hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case msg := <-h.broadcast:
			h.broadcastFrame(msg)
		}
	}
}

// Register hands the client to the Run loop. False means the hub has shut
// down and the caller owns the connection.
func (h *hub) Register(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *hub) Unregister(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues a frame without blocking the render loop. A full buffer
// means the hub is behind; the frame is dropped and the next one catches up.
func (h *hub) Broadcast(msg frameMessage) {
	select {
	case h.broadcast <- msg:
	default:
		logging.Warn(h.logger, "frame broadcast buffer full, dropping frame")
	}
}

func (h *hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *hub) registerClient(c *client) {
	h.clientsMu.Lock()
	h.clients[c] = true
	total := len(h.clients)
	h.clientsMu.Unlock()

	// New pages get the current frame right away instead of a blank panel.
	h.frameMu.Lock()
	if h.haveFrame {
		c.TrySend(h.lastFrame)
	}
	h.frameMu.Unlock()

	logging.Info(h.logger, "simulator client connected", logging.FieldRequestID, c.id, logging.FieldCount, total)
}

func (h *hub) unregisterClient(c *client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		logging.Info(h.logger, "simulator client disconnected", logging.FieldRequestID, c.id, logging.FieldCount, len(h.clients))
	}
}

func (h *hub) broadcastFrame(msg frameMessage) {
	h.frameMu.Lock()
	h.lastFrame = msg
	h.haveFrame = true
	h.frameMu.Unlock()

	h.clientsMu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.TrySend(msg) {
			// Buffer full means the page stopped consuming; drop it.
			logging.Warn(h.logger, "simulator client too slow, disconnecting", logging.FieldRequestID, c.id)
			go h.Unregister(c)
		}
	}
}

func (h *hub) shutdown() {
	// Unblocks Register and Unregister callers; the Run loop no longer
	// receives after this point.
	close(h.done)

	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}
