package providers

import (
	"context"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

// ScoreboardProvider defines how upstream scoreboard data is fetched and
// normalized. Implementations return every game on the league's board for
// the current day; callers filter for live status.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, league domain.LeagueID) ([]domain.GameSnapshot, error)
}

// Name returns the provider's self-reported name when it exposes one.
func Name(p ScoreboardProvider) string {
	if named, ok := p.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "unknown"
}
