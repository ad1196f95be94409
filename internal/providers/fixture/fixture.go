package fixture

import (
	"context"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

// Provider returns a static scoreboard useful for local development and the
// browser simulator when no network (or no live game) is available.
type Provider struct {
	// Leagues limits which leagues report games; nil means all fixtures.
	Leagues map[domain.LeagueID]bool
}

// New creates a fixture provider serving every built-in game.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchScoreboard returns a deterministic set of example games for the league.
func (p *Provider) FetchScoreboard(ctx context.Context, league domain.LeagueID) ([]domain.GameSnapshot, error) {
	_ = ctx
	if p.Leagues != nil && !p.Leagues[league] {
		return []domain.GameSnapshot{}, nil
	}

	switch league {
	case domain.LeagueNFL:
		return []domain.GameSnapshot{
			{
				ID:        "fixture-nfl-1",
				League:    domain.LeagueNFL,
				HomeAbbr:  "BUF",
				AwayAbbr:  "KC",
				HomeScore: 17,
				AwayScore: 21,
				Period:    4,
				Clock:     "5:23",
				Detail:    "Q4 5:23",
				Status:    domain.StatusLive,
				AwayLeaders: domain.NewFootballLeaders([]domain.FootballLine{
					{Role: domain.RoleQB, Player: "Mahomes", Yards: 245, TDs: 3},
					{Role: domain.RoleWR, Player: "Kelce", Yards: 89, TDs: 1},
				}),
				HomeLeaders: domain.NewFootballLeaders([]domain.FootballLine{
					{Role: domain.RoleQB, Player: "Allen", Yards: 198, TDs: 2},
					{Role: domain.RoleRB, Player: "Cook", Yards: 61, TDs: 0},
				}),
			},
		}, nil
	case domain.LeagueNBA:
		return []domain.GameSnapshot{
			{
				ID:        "fixture-nba-1",
				League:    domain.LeagueNBA,
				HomeAbbr:  "BOS",
				AwayAbbr:  "LAL",
				HomeScore: 88,
				AwayScore: 92,
				Period:    3,
				Clock:     "4:10",
				Detail:    "3rd 4:10",
				Status:    domain.StatusLive,
				HomeLeaders: domain.NewBasketballLeaders(domain.BasketballLeaders{
					Player: "J. Tatum", Points: 27, Rebounds: 9, Assists: 5,
				}),
				AwayLeaders: domain.NewBasketballLeaders(domain.BasketballLeaders{
					Player: "L. James", Points: 31, Rebounds: 7, Assists: 8,
				}),
			},
		}, nil
	default:
		return []domain.GameSnapshot{}, nil
	}
}
