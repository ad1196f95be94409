package domain

import "testing"

func TestLeagueSportAndPath(t *testing.T) {
	cases := []struct {
		league LeagueID
		sport  Sport
		path   string
	}{
		{LeagueNBA, SportBasketball, "basketball/nba"},
		{LeagueNFL, SportFootball, "football/nfl"},
		{LeagueNCAAM, SportBasketball, "basketball/mens-college-basketball"},
		{LeagueNCAAF, SportFootball, "football/college-football"},
	}

	for _, tc := range cases {
		if !tc.league.Known() {
			t.Fatalf("expected %s to be known", tc.league)
		}
		if got := tc.league.Sport(); got != tc.sport {
			t.Errorf("%s sport: got %s want %s", tc.league, got, tc.sport)
		}
		if got := tc.league.SportPath(); got != tc.path {
			t.Errorf("%s path: got %s want %s", tc.league, got, tc.path)
		}
	}

	if LeagueID("mlb").Known() {
		t.Fatal("unexpected league should not be known")
	}
}

func TestAbbreviateName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Patrick Mahomes", "Mahomes"},
		{"Josh Allen", "Allen"},
		{"Giannis Antetokounmpo", "G. Antetokounmpo"},
		{"LeBron James", "James"},
		{"Neymar", "Neymar"},
		{"Supercalifragilistic", "Supercalif"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := AbbreviateName(tc.in); got != tc.want {
			t.Errorf("AbbreviateName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTopFootballLine(t *testing.T) {
	leaders := NewFootballLeaders([]FootballLine{
		{Role: RoleWR, Player: "Kelce", Yards: 89, TDs: 1},
		{Role: RoleQB, Player: "Mahomes", Yards: 245, TDs: 3},
	})

	line, ok := leaders.TopFootballLine()
	if !ok {
		t.Fatal("expected a top line")
	}
	if line.Role != RoleQB || line.Player != "Mahomes" {
		t.Fatalf("expected QB Mahomes, got %+v", line)
	}

	var nilLeaders *Leaders
	if _, ok := nilLeaders.TopFootballLine(); ok {
		t.Fatal("nil leaders should have no top line")
	}

	hoops := NewBasketballLeaders(BasketballLeaders{Player: "James", Points: 24, Rebounds: 8, Assists: 7})
	if _, ok := hoops.TopFootballLine(); ok {
		t.Fatal("basketball leaders should have no football line")
	}
}

func TestGameSnapshotLive(t *testing.T) {
	g := GameSnapshot{Status: StatusLive}
	if !g.Live() {
		t.Fatal("expected live")
	}
	for _, s := range []GameStatus{StatusPregame, StatusFinal} {
		if (GameSnapshot{Status: s}).Live() {
			t.Fatalf("status %s should not be live", s)
		}
	}
}
