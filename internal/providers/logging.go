package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
)

// loggingProvider wraps a ScoreboardProvider with structured logging and
// provider call metrics.
type loggingProvider struct {
	inner   ScoreboardProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewLoggingProvider decorates the given provider with call logging and metrics.
func NewLoggingProvider(inner ScoreboardProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScoreboardProvider {
	if name == "" {
		name = Name(inner)
	}
	return &loggingProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *loggingProvider) Name() string {
	return p.name
}

func (p *loggingProvider) FetchScoreboard(ctx context.Context, league domain.LeagueID) ([]domain.GameSnapshot, error) {
	start := time.Now()
	games, err := p.inner.FetchScoreboard(ctx, league)
	elapsed := time.Since(start)

	p.metrics.RecordProviderAttempt(p.name, elapsed, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
		}
		logging.Warn(logger, "scoreboard fetch failed",
			slog.String(logging.FieldProvider, p.name),
			slog.String(logging.FieldLeague, string(league)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			"error", err,
		)
		return nil, err
	}

	logging.Info(logger, "scoreboard fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.String(logging.FieldLeague, string(league)),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return games, nil
}
