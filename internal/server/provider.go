package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/config"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/providers"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/providers/espn"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/providers/fixture"
)

const providerTimeout = 10 * time.Second

// buildProvider assembles the configured scoreboard provider with its
// decorators. The network-backed provider sits behind a circuit breaker so a
// struggling upstream is left alone; the fixture provider needs neither.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.ScoreboardProvider {
	var provider providers.ScoreboardProvider
	switch cfg.Provider {
	case "fixture":
		provider = fixture.New()
	default:
		provider = espn.NewClient(espn.Config{
			MaxGames:   cfg.Data.MaxGamesPerLeague,
			HTTPClient: &http.Client{Timeout: providerTimeout},
		})
		provider = providers.NewBreakerProvider(provider, logger, providers.BreakerConfig{})
	}

	name := providers.Name(provider)
	logging.Info(logger, "provider configured", logging.FieldProvider, name)
	return providers.NewLoggingProvider(provider, name, logger, recorder)
}
