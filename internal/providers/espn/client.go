package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/providers"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	MaxGames   int
}

// Client fetches scoreboards from ESPN's public site API and maps them to
// domain snapshots. There is no retry: a failed call surfaces the error and
// the next refresh cycle tries again.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	maxGames   int
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		maxGames:   resolveMaxGames(cfg.MaxGames),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchScoreboard retrieves the league's current scoreboard.
func (c *Client) FetchScoreboard(ctx context.Context, league domain.LeagueID) ([]domain.GameSnapshot, error) {
	if !league.Known() {
		return nil, fmt.Errorf("espn: unknown league %q", league)
	}

	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, league.SportPath())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("espn: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("espn: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("espn: decode scoreboard: %w", err)
	}

	games := make([]domain.GameSnapshot, 0, len(payload.Events))
	for _, event := range payload.Events {
		if len(games) >= c.maxGames {
			break
		}
		if snap, ok := mapEvent(event, league); ok {
			games = append(games, snap)
		}
	}
	return games, nil
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
