package espn

import (
	"testing"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

func basketballCompetitor(abbr string, athletes []athleteEntry) competitorResponse {
	return competitorResponse{
		HomeAway: "home",
		Score:    "0",
		Team:     teamResponse{Abbreviation: abbr},
		Statistics: []statisticBlock{
			{Name: blockAthletes, Athletes: athletes},
		},
	}
}

func statLine(points, rebounds, assists string) []string {
	stats := make([]string, 16)
	stats[idxRebounds] = rebounds
	stats[idxAssists] = assists
	stats[idxPoints] = points
	return stats
}

func TestExtractBasketballLeaders(t *testing.T) {
	comp := basketballCompetitor("LAL", []athleteEntry{
		{Athlete: athleteInfo{ShortName: "L. James"}, Stats: statLine("24", "8", "7")},
		{Athlete: athleteInfo{ShortName: "A. Davis"}, Stats: statLine("18", "12", "3")},
	})

	leaders := extractBasketballLeaders(comp)
	if leaders == nil || leaders.Basketball == nil {
		t.Fatal("expected basketball leaders")
	}
	got := leaders.Basketball
	if got.Player != "L. James" {
		t.Errorf("player: got %q", got.Player)
	}
	if got.Points != 24 {
		t.Errorf("points: got %d", got.Points)
	}
	if got.Rebounds != 12 {
		t.Errorf("rebounds: got %d (davis leads the board)", got.Rebounds)
	}
	if got.Assists != 7 {
		t.Errorf("assists: got %d", got.Assists)
	}
}

func TestExtractBasketballLeadersMissingBlock(t *testing.T) {
	comp := competitorResponse{Team: teamResponse{Abbreviation: "BOS"}}
	if leaders := extractBasketballLeaders(comp); leaders != nil {
		t.Fatalf("expected nil leaders, got %+v", leaders)
	}

	// Athletes present but nobody has scored yet.
	empty := basketballCompetitor("BOS", []athleteEntry{
		{Athlete: athleteInfo{ShortName: "J. Tatum"}, Stats: statLine("0", "0", "0")},
	})
	if leaders := extractBasketballLeaders(empty); leaders != nil {
		t.Fatalf("expected nil leaders for scoreless team, got %+v", leaders)
	}
}

func TestExtractBasketballLeadersSkipsMalformedStats(t *testing.T) {
	comp := basketballCompetitor("LAL", []athleteEntry{
		{Athlete: athleteInfo{ShortName: "Short"}, Stats: []string{"1", "2"}},
		{Athlete: athleteInfo{ShortName: "Bad"}, Stats: statLine("not-a-number", "x", "y")},
		{Athlete: athleteInfo{ShortName: "Good"}, Stats: statLine("11", "5", "2")},
	})

	leaders := extractBasketballLeaders(comp)
	if leaders == nil || leaders.Basketball.Player != "Good" {
		t.Fatalf("expected Good as leader, got %+v", leaders)
	}
}

func TestExtractFootballLeaders(t *testing.T) {
	comp := competitorResponse{
		Team: teamResponse{Abbreviation: "KC"},
		Statistics: []statisticBlock{
			{Name: blockPassing, Athletes: []athleteEntry{
				{Athlete: athleteInfo{DisplayName: "Patrick Mahomes"}, Stats: []string{"24/31", "0", "245", "3"}},
			}},
			{Name: blockRushing, Athletes: []athleteEntry{
				{Athlete: athleteInfo{DisplayName: "Isiah Pacheco"}, Stats: []string{"14", "67", "4.8", "1"}},
			}},
		},
	}

	leaders := extractFootballLeaders(comp)
	if leaders == nil || len(leaders.Football) != 2 {
		t.Fatalf("expected 2 football lines, got %+v", leaders)
	}

	qb := leaders.Football[0]
	if qb.Role != domain.RoleQB || qb.Player != "Mahomes" || qb.Yards != 245 || qb.TDs != 3 {
		t.Errorf("qb line: %+v", qb)
	}
	rb := leaders.Football[1]
	if rb.Role != domain.RoleRB || rb.Player != "Pacheco" || rb.Yards != 67 || rb.TDs != 1 {
		t.Errorf("rb line: %+v", rb)
	}
}

func TestExtractFootballLeadersEmptyStats(t *testing.T) {
	comp := competitorResponse{Team: teamResponse{Abbreviation: "BUF"}}
	if leaders := extractFootballLeaders(comp); leaders != nil {
		t.Fatalf("expected nil leaders, got %+v", leaders)
	}
}

func TestMapStatus(t *testing.T) {
	cases := map[string]domain.GameStatus{
		"in":   domain.StatusLive,
		"IN":   domain.StatusLive,
		"pre":  domain.StatusPregame,
		"post": domain.StatusFinal,
		"":     domain.StatusFinal,
	}
	for state, want := range cases {
		if got := mapStatus(state); got != want {
			t.Errorf("mapStatus(%q) = %s, want %s", state, got, want)
		}
	}
}

func TestMapEvent(t *testing.T) {
	event := eventResponse{
		ID: "401547",
		Competitions: []competitionResponse{{
			Competitors: []competitorResponse{
				{HomeAway: "away", Score: "21", Team: teamResponse{Abbreviation: "KC"}},
				{HomeAway: "home", Score: "17", Team: teamResponse{Abbreviation: "BUF"}},
			},
		}},
		Status: statusResponse{
			Period:       4,
			DisplayClock: "5:23",
			Type:         statusTypeResponse{State: "in", ShortDetail: "Q4 5:23"},
		},
	}

	snap, ok := mapEvent(event, domain.LeagueNFL)
	if !ok {
		t.Fatal("expected event to map")
	}
	if snap.AwayAbbr != "KC" || snap.HomeAbbr != "BUF" {
		t.Errorf("teams: %s @ %s", snap.AwayAbbr, snap.HomeAbbr)
	}
	if snap.AwayScore != 21 || snap.HomeScore != 17 {
		t.Errorf("score: %d-%d", snap.AwayScore, snap.HomeScore)
	}
	if !snap.Live() || snap.Detail != "Q4 5:23" {
		t.Errorf("status: %+v", snap)
	}
}

func TestMapEventSkipsIncomplete(t *testing.T) {
	if _, ok := mapEvent(eventResponse{ID: "x"}, domain.LeagueNBA); ok {
		t.Fatal("event without competitions should not map")
	}

	oneSided := eventResponse{
		ID: "y",
		Competitions: []competitionResponse{{
			Competitors: []competitorResponse{{HomeAway: "home"}},
		}},
	}
	if _, ok := mapEvent(oneSided, domain.LeagueNBA); ok {
		t.Fatal("event with one competitor should not map")
	}
}
