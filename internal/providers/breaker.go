package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
)

const (
	defaultBreakerFailures = 3
	defaultBreakerTimeout  = 2 * time.Minute
)

// breakerProvider wraps a ScoreboardProvider with a circuit breaker so a
// failing upstream is not hammered every refresh cycle. There is no retry
// inside a cycle; the breaker only decides whether the next cycle may try.
type breakerProvider struct {
	inner ScoreboardProvider
	cb    *gobreaker.CircuitBreaker
}

// BreakerConfig tunes the circuit breaker decorator.
type BreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// NewBreakerProvider decorates the given provider with a circuit breaker.
func NewBreakerProvider(inner ScoreboardProvider, logger *slog.Logger, cfg BreakerConfig) ScoreboardProvider {
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}
	timeout := cfg.OpenTimeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        Name(inner),
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn(logger, "provider circuit breaker state changed",
				slog.String(logging.FieldProvider, name),
				slog.String("from_state", from.String()),
				slog.String("to_state", to.String()),
			)
		},
	})

	return &breakerProvider{inner: inner, cb: cb}
}

func (p *breakerProvider) Name() string {
	return Name(p.inner)
}

func (p *breakerProvider) FetchScoreboard(ctx context.Context, league domain.LeagueID) ([]domain.GameSnapshot, error) {
	result, err := p.cb.Execute(func() (any, error) {
		return p.inner.FetchScoreboard(ctx, league)
	})
	if err != nil {
		return nil, err
	}
	games, _ := result.([]domain.GameSnapshot)
	return games, nil
}
