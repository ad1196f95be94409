package httpapi

import (
	"encoding/json"
	"image"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/loop"
)

// DisplayState is the read side of the display pipeline used by handlers.
// *manager.Manager is the production implementation.
type DisplayState interface {
	CurrentLeague() domain.LeagueID
	Live() bool
	LastUpdate() time.Time
	GameCount() int
	Preview() *image.RGBA
	DisplayDuration(frameInterval time.Duration) time.Duration
}

// Handler wires HTTP routes to the display pipeline.
type Handler struct {
	state         DisplayState
	statusFn      func() loop.Status
	agesFn        func() map[domain.LeagueID]time.Duration
	frameInterval time.Duration
	logger        *slog.Logger
}

// NewHandler constructs a Handler. statusFn may be nil when no loop runs,
// in which case readiness always reports ready. agesFn may be nil when no
// cache backs the pipeline.
func NewHandler(state DisplayState, statusFn func() loop.Status, agesFn func() map[domain.LeagueID]time.Duration, frameInterval time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		state:         state,
		statusFn:      statusFn,
		agesFn:        agesFn,
		frameInterval: frameInterval,
		logger:        logger,
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether frames are reaching the display.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":               "unready",
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type statusResponse struct {
	CurrentLeague string             `json:"current_league,omitempty"`
	Live          bool               `json:"live"`
	Games         int                `json:"games"`
	LastUpdate    time.Time          `json:"last_update"`
	ScrollSeconds float64            `json:"scroll_seconds"`
	CacheAges     map[string]float64 `json:"cache_age_seconds,omitempty"`
}

// Status reports what the display is currently showing.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		CurrentLeague: string(h.state.CurrentLeague()),
		Live:          h.state.Live(),
		Games:         h.state.GameCount(),
		LastUpdate:    h.state.LastUpdate(),
		ScrollSeconds: h.state.DisplayDuration(h.frameInterval).Seconds(),
	}
	if h.agesFn != nil {
		ages := h.agesFn()
		if len(ages) > 0 {
			resp.CacheAges = make(map[string]float64, len(ages))
			for league, age := range ages {
				resp.CacheAges[string(league)] = age.Seconds()
			}
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Preview serves the current display frame as a PNG without disturbing the
// scroll position.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, h.state.Preview()); err != nil && h.logger != nil {
		h.logger.Error("failed to encode preview", "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
