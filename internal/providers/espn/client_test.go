package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/providers"
)

type stubDoer struct {
	resp *http.Response
	err  error
	last *http.Request
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.last = req
	return s.resp, s.err
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const liveEventJSON = `{
	"events": [{
		"id": "401",
		"competitions": [{
			"competitors": [
				{"homeAway": "home", "score": "102", "team": {"abbreviation": "BOS"}},
				{"homeAway": "away", "score": "99", "team": {"abbreviation": "LAL"}}
			]
		}],
		"status": {"period": 3, "displayClock": "4:10", "type": {"state": "in", "shortDetail": "3rd 4:10"}}
	}]
}`

func TestFetchScoreboardParsesGames(t *testing.T) {
	doer := &stubDoer{resp: jsonResponse(http.StatusOK, liveEventJSON)}
	client := NewClient(Config{})
	client.httpClient = doer

	games, err := client.FetchScoreboard(context.Background(), domain.LeagueNBA)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if g.HomeAbbr != "BOS" || g.AwayAbbr != "LAL" || g.HomeScore != 102 {
		t.Fatalf("unexpected game: %+v", g)
	}
	if g.League != domain.LeagueNBA || !g.Live() {
		t.Fatalf("league/status: %+v", g)
	}

	wantURL := "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/scoreboard"
	if doer.last.URL.String() != wantURL {
		t.Fatalf("url: got %s", doer.last.URL)
	}
	if ua := doer.last.Header.Get("User-Agent"); ua == "" {
		t.Fatal("expected user agent header")
	}
}

func TestFetchScoreboardUnknownLeague(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.FetchScoreboard(context.Background(), domain.LeagueID("mlb")); err == nil {
		t.Fatal("expected error for unknown league")
	}
}

func TestFetchScoreboardRateLimited(t *testing.T) {
	resp := jsonResponse(http.StatusTooManyRequests, "")
	resp.Header.Set("Retry-After", "30")
	client := NewClient(Config{})
	client.httpClient = &stubDoer{resp: resp}

	_, err := client.FetchScoreboard(context.Background(), domain.LeagueNFL)
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Fatalf("retry-after: got %v", rl.RetryAfter)
	}
}

func TestFetchScoreboardUpstreamError(t *testing.T) {
	client := NewClient(Config{})
	client.httpClient = &stubDoer{resp: jsonResponse(http.StatusBadGateway, "upstream broken")}

	_, err := client.FetchScoreboard(context.Background(), domain.LeagueNBA)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchScoreboardNetworkError(t *testing.T) {
	client := NewClient(Config{})
	client.httpClient = &stubDoer{err: fmt.Errorf("connection refused")}

	if _, err := client.FetchScoreboard(context.Background(), domain.LeagueNBA); err == nil {
		t.Fatal("expected network error")
	}
}

func TestFetchScoreboardCapsGames(t *testing.T) {
	var events []string
	for i := 0; i < 5; i++ {
		events = append(events, fmt.Sprintf(`{
			"id": "%d",
			"competitions": [{
				"competitors": [
					{"homeAway": "home", "team": {"abbreviation": "H%d"}},
					{"homeAway": "away", "team": {"abbreviation": "A%d"}}
				]
			}],
			"status": {"type": {"state": "in"}}
		}`, i, i, i))
	}
	body := `{"events": [` + strings.Join(events, ",") + `]}`

	client := NewClient(Config{MaxGames: 2})
	client.httpClient = &stubDoer{resp: jsonResponse(http.StatusOK, body)}

	games, err := client.FetchScoreboard(context.Background(), domain.LeagueNBA)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected cap at 2 games, got %d", len(games))
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := map[string]time.Duration{
		"30":  30 * time.Second,
		"":    0,
		"-1":  0,
		"abc": 0,
	}
	for raw, want := range cases {
		if got := parseRetryAfter(raw); got != want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", raw, got, want)
		}
	}
}
