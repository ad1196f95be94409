package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/config"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/display"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/display/simws"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/fetch"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/httpapi"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/loop"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/manager"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/render"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/rotate"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/snapshots"
)

var metricsSetup = metrics.Setup

// Server owns the display pipeline and the operational HTTP listeners.
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder

	manager *manager.Manager
	loop    *loop.Loop
	driver  display.Driver

	opsServer     listener
	metricsServer listener
	metricsStop   func(context.Context) error
}

// New wires the full pipeline from configuration: provider, cache, rotation,
// renderer, ticker, display driver, frame loop and HTTP surface.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsHandler, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	provider := buildProvider(cfg, logger, recorder)
	fetcher := fetch.New(fetch.Options{
		Provider: provider,
		TTL:      cfg.Data.CacheTTL,
		Logger:   logger,
		Metrics:  recorder,
		Store:    snapshots.NewStore(cfg.Snapshots.Dir),
	})

	renderer := render.New(cfg.Display.Height, recorder)
	ticker := display.NewTicker(cfg.Display.Width, cfg.Display.Height, cfg.DisplayOptions.ScrollSpeed)
	mgr := manager.New(manager.Options{
		Source:         fetcher,
		Rotator:        rotate.New(cfg.Leagues, recorder),
		Renderer:       renderer,
		Ticker:         ticker,
		Metrics:        recorder,
		Logger:         logger,
		UpdateInterval: cfg.Data.UpdateInterval,
		ViewWidth:      cfg.Display.Width,
	})

	driver, wsHandler := buildDriver(cfg, logger)
	frameLoop := loop.New(mgr, driver, logger, recorder, effectiveFPS(cfg.DisplayOptions))

	handler := httpapi.NewHandler(mgr, frameLoop.Status, fetcher.CacheAges, frameLoop.FrameInterval(), logger)
	router := httpapi.NewRouter(handler, wsHandler, metricsHandler, logger, recorder)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: recorder,
		manager: mgr,
		loop:    frameLoop,
		driver:  driver,
		opsServer: stdListener{srv: &http.Server{
			Addr:         ":" + cfg.HTTP.Port,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		}},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// buildDriver picks the display sink. The simulator driver also exposes its
// WebSocket handler for the router.
func buildDriver(cfg config.Config, logger *slog.Logger) (display.Driver, http.Handler) {
	switch cfg.Display.Driver {
	case "null":
		return display.NewNullDriver(cfg.Display.Width, cfg.Display.Height), nil
	default:
		d := simws.New(cfg.Display.Width, cfg.Display.Height, logger)
		return d, d.Handler()
	}
}

// effectiveFPS caps the frame rate at the configured scroll delay, so a
// 0.02s delay yields at most 50 frames per second regardless of target_fps.
func effectiveFPS(opts config.DisplayOptions) int {
	fps := opts.TargetFPS
	if opts.ScrollDelay > 0 {
		if scrollFPS := int(1.0 / opts.ScrollDelay); scrollFPS > 0 && scrollFPS < fps {
			fps = scrollFPS
		}
	}
	return fps
}

// Run starts the frame loop and HTTP servers, then waits for context
// cancellation to shut down gracefully. A disabled ticker keeps the HTTP
// surface up but never draws.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.cfg.Enabled {
		s.loop.Start(ctx)
	} else if s.logger != nil {
		s.logger.Info("ticker disabled, frame loop not started")
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.opsServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.loop.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop frame loop", "error", err)
	}
	if err := s.driver.Close(); err != nil && s.logger != nil {
		s.logger.Warn("display driver close failed", "error", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.opsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, listener, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil, nil
	}

	var metricsSrv listener
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdListener{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}
	return rec, handler, metricsSrv, shutdown
}

func launchServer(name string, srv listener, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.opsServer.Handler()
}

// Manager exposes the display manager (useful for tests).
func (s *Server) Manager() *manager.Manager {
	return s.manager
}
