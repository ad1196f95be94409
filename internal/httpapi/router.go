package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
)

// NewRouter registers the API routes. ws, when non-nil, is mounted at /ws
// outside the logging middleware so the connection can be hijacked;
// metricsHandler, when non-nil, is mounted at /metrics.
func NewRouter(handler *Handler, ws, metricsHandler http.Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return LoggingMiddleware(logger, recorder, next)
		})
		r.Get("/healthz", handler.Health)
		r.Get("/readyz", handler.Ready)
		r.Get("/status", handler.Status)
		r.Get("/preview.png", handler.Preview)
	})

	if ws != nil {
		r.Handle("/ws", ws)
	}
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	return r
}
