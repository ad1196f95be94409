package espn

import (
	"strconv"
	"strings"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

// mapEvent converts one scoreboard event into a domain snapshot. Events
// without two identifiable competitors are skipped rather than failing the
// whole scoreboard.
func mapEvent(event eventResponse, league domain.LeagueID) (domain.GameSnapshot, bool) {
	if len(event.Competitions) == 0 {
		return domain.GameSnapshot{}, false
	}
	competitors := event.Competitions[0].Competitors
	if len(competitors) < 2 {
		return domain.GameSnapshot{}, false
	}

	home, homeOK := findCompetitor(competitors, "home")
	away, awayOK := findCompetitor(competitors, "away")
	if !homeOK || !awayOK {
		return domain.GameSnapshot{}, false
	}

	snap := domain.GameSnapshot{
		ID:        event.ID,
		League:    league,
		HomeAbbr:  teamAbbr(home, "HOME"),
		AwayAbbr:  teamAbbr(away, "AWAY"),
		HomeScore: parseScore(home.Score),
		AwayScore: parseScore(away.Score),
		Period:    event.Status.Period,
		Clock:     event.Status.DisplayClock,
		Detail:    event.Status.Type.ShortDetail,
		Status:    mapStatus(event.Status.Type.State),
	}

	switch league.Sport() {
	case domain.SportBasketball:
		snap.HomeLeaders = extractBasketballLeaders(home)
		snap.AwayLeaders = extractBasketballLeaders(away)
	case domain.SportFootball:
		snap.HomeLeaders = extractFootballLeaders(home)
		snap.AwayLeaders = extractFootballLeaders(away)
	}

	return snap, true
}

func findCompetitor(competitors []competitorResponse, side string) (competitorResponse, bool) {
	for _, c := range competitors {
		if c.HomeAway == side {
			return c, true
		}
	}
	return competitorResponse{}, false
}

func teamAbbr(c competitorResponse, fallback string) string {
	if abbr := strings.TrimSpace(c.Team.Abbreviation); abbr != "" {
		return abbr
	}
	return fallback
}

func parseScore(raw string) int {
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return score
}

func mapStatus(state string) domain.GameStatus {
	switch strings.ToLower(state) {
	case "in":
		return domain.StatusLive
	case "pre":
		return domain.StatusPregame
	default:
		return domain.StatusFinal
	}
}

// extractBasketballLeaders finds the team leader per tracked category in the
// athletes stat block. The leader line carries the top scorer's name with
// the team-leading points, rebounds and assists.
func extractBasketballLeaders(c competitorResponse) *domain.Leaders {
	block, ok := findBlock(c.Statistics, blockAthletes)
	if !ok || len(block.Athletes) == 0 {
		return nil
	}

	type leader struct {
		name  string
		value int
	}
	best := func(idx int) leader {
		var top leader
		for _, entry := range block.Athletes {
			if idx >= len(entry.Stats) {
				continue
			}
			value, err := strconv.Atoi(strings.TrimSpace(entry.Stats[idx]))
			if err != nil || value <= top.value {
				continue
			}
			top = leader{name: athleteName(entry.Athlete), value: value}
		}
		return top
	}

	points := best(idxPoints)
	if points.name == "" {
		return nil
	}
	return domain.NewBasketballLeaders(domain.BasketballLeaders{
		Player:   points.name,
		Points:   points.value,
		Rebounds: best(idxRebounds).value,
		Assists:  best(idxAssists).value,
	})
}

// extractFootballLeaders pulls the top passer, receiver and rusher. Each
// category block lists athletes best-first, so the first entry wins.
func extractFootballLeaders(c competitorResponse) *domain.Leaders {
	categories := []struct {
		block    string
		role     domain.FootballRole
		yardsIdx int
		tdsIdx   int
	}{
		{blockPassing, domain.RoleQB, idxPassYards, idxPassTDs},
		{blockReceiving, domain.RoleWR, idxRecvYards, idxRecvTDs},
		{blockRushing, domain.RoleRB, idxRushYards, idxRushTDs},
	}

	var lines []domain.FootballLine
	for _, cat := range categories {
		block, ok := findBlock(c.Statistics, cat.block)
		if !ok || len(block.Athletes) == 0 {
			continue
		}
		top := block.Athletes[0]
		if len(top.Stats) < 4 {
			continue
		}
		yards, yErr := strconv.Atoi(strings.TrimSpace(top.Stats[cat.yardsIdx]))
		tds, tErr := strconv.Atoi(strings.TrimSpace(top.Stats[cat.tdsIdx]))
		if yErr != nil || tErr != nil {
			continue
		}
		lines = append(lines, domain.FootballLine{
			Role:   cat.role,
			Player: domain.AbbreviateName(top.Athlete.DisplayName),
			Yards:  yards,
			TDs:    tds,
		})
	}

	return domain.NewFootballLeaders(lines)
}

func findBlock(blocks []statisticBlock, name string) (statisticBlock, bool) {
	for _, b := range blocks {
		if b.Name == name {
			return b, true
		}
	}
	return statisticBlock{}, false
}

func athleteName(info athleteInfo) string {
	if info.ShortName != "" {
		return info.ShortName
	}
	if info.DisplayName != "" {
		return info.DisplayName
	}
	return "Unknown"
}
