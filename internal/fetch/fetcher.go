package fetch

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/providers"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/snapshots"
)

const defaultTTL = 60 * time.Second

type cachedScoreboard struct {
	games     []domain.GameSnapshot
	fetchedAt time.Time
}

// Fetcher front-ends a scoreboard provider with a per-league TTL cache.
// Callers poll as often as they like; the upstream is only hit when the
// cached scoreboard has aged past the TTL.
type Fetcher struct {
	provider providers.ScoreboardProvider
	ttl      time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	store    *snapshots.Store
	now      func() time.Time

	mu    sync.Mutex
	cache map[domain.LeagueID]cachedScoreboard
}

// Options configures a Fetcher. Provider is required; everything else has a
// usable zero value.
type Options struct {
	Provider providers.ScoreboardProvider
	TTL      time.Duration
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	// Store, when set, persists each successful fetch and seeds the cache
	// on startup so a restart does not blank the display.
	Store *snapshots.Store
	Now   func() time.Time
}

// New constructs a Fetcher and warms its cache from the snapshot store.
func New(opts Options) *Fetcher {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	f := &Fetcher{
		provider: opts.Provider,
		ttl:      ttl,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		store:    opts.Store,
		now:      now,
		cache:    make(map[domain.LeagueID]cachedScoreboard),
	}
	f.warmStart()
	return f
}

func (f *Fetcher) warmStart() {
	if f.store == nil {
		return
	}
	for _, league := range domain.AllLeagues {
		snap, err := f.store.Load(league)
		if err != nil {
			if !os.IsNotExist(err) {
				logging.Warn(f.logger, "snapshot load failed", logging.FieldLeague, string(league), "error", err)
			}
			continue
		}
		f.cache[league] = cachedScoreboard{games: snap.Games, fetchedAt: snap.FetchedAt}
	}
}

// LiveGames returns the live games for a league, hitting the provider only
// when the cache has expired. Fetch failures are logged and reported as an
// empty scoreboard; the ticker keeps scrolling whatever else it has.
func (f *Fetcher) LiveGames(ctx context.Context, league domain.LeagueID) []domain.GameSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	if entry, ok := f.cache[league]; ok && now.Sub(entry.fetchedAt) < f.ttl {
		f.metrics.RecordCacheHit(string(league))
		logging.Debug(f.logger, "scoreboard served from cache",
			logging.FieldLeague, string(league),
			logging.FieldDurationMS, now.Sub(entry.fetchedAt).Milliseconds(),
		)
		return filterLive(entry.games)
	}
	f.metrics.RecordCacheMiss(string(league))

	games, err := f.provider.FetchScoreboard(ctx, league)
	if err != nil {
		logging.Warn(f.logger, "scoreboard fetch failed",
			logging.FieldProvider, providers.Name(f.provider),
			logging.FieldLeague, string(league),
			"error", err,
		)
		return []domain.GameSnapshot{}
	}

	f.cache[league] = cachedScoreboard{games: games, fetchedAt: now}
	f.persist(domain.ScoreboardSnapshot{League: league, FetchedAt: now, Games: games})
	return filterLive(games)
}

func (f *Fetcher) persist(snap domain.ScoreboardSnapshot) {
	if f.store == nil {
		return
	}
	if err := f.store.Write(snap); err != nil {
		logging.Warn(f.logger, "snapshot write failed", logging.FieldLeague, string(snap.League), "error", err)
	}
}

// CacheAges reports how old each cached scoreboard is.
func (f *Fetcher) CacheAges() map[domain.LeagueID]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	ages := make(map[domain.LeagueID]time.Duration, len(f.cache))
	for league, entry := range f.cache {
		ages[league] = now.Sub(entry.fetchedAt)
	}
	return ages
}

// Invalidate drops every cached scoreboard. The next LiveGames call per
// league goes back to the provider.
func (f *Fetcher) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = make(map[domain.LeagueID]cachedScoreboard)
}

func filterLive(games []domain.GameSnapshot) []domain.GameSnapshot {
	live := make([]domain.GameSnapshot, 0, len(games))
	for _, g := range games {
		if g.Live() {
			live = append(live, g)
		}
	}
	return live
}
