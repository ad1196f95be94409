package manager

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/display"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/render"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/rotate"
)

const defaultUpdateInterval = 60 * time.Second

// GamesSource produces the live games for a league. The TTL-cached fetcher
// is the production implementation.
type GamesSource interface {
	LiveGames(ctx context.Context, league domain.LeagueID) []domain.GameSnapshot
}

// Manager decides what the display shows: it rotates through leagues, pulls
// their live games, and hands rendered cards to the scroll ticker. One league
// is on screen at a time; leagues with nothing live are skipped.
type Manager struct {
	source   GamesSource
	rotator  *rotate.Rotator
	renderer *render.Renderer
	ticker   *display.Ticker
	metrics  *metrics.Recorder
	logger   *slog.Logger

	updateInterval time.Duration
	viewWidth      int
	now            func() time.Time

	mu         sync.Mutex
	current    domain.LeagueID
	lastUpdate time.Time
	hasContent bool
	gameCount  int
}

// Options wires a Manager. Source, Rotator, Renderer and Ticker are required.
type Options struct {
	Source         GamesSource
	Rotator        *rotate.Rotator
	Renderer       *render.Renderer
	Ticker         *display.Ticker
	Metrics        *metrics.Recorder
	Logger         *slog.Logger
	UpdateInterval time.Duration
	ViewWidth      int
	Now            func() time.Time
}

func New(opts Options) *Manager {
	interval := opts.UpdateInterval
	if interval <= 0 {
		interval = defaultUpdateInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		source:         opts.Source,
		rotator:        opts.Rotator,
		renderer:       opts.Renderer,
		ticker:         opts.Ticker,
		metrics:        opts.Metrics,
		logger:         opts.Logger,
		updateInterval: interval,
		viewWidth:      opts.ViewWidth,
		now:            now,
	}
}

// Update advances to the next league when the current one is done: the
// update interval has elapsed and the strip has scrolled through at least
// once. Until then it is a no-op, so the frame loop can call it every tick.
func (m *Manager) Update(ctx context.Context) {
	m.mu.Lock()
	if m.hasContent {
		if m.now().Sub(m.lastUpdate) < m.updateInterval || !m.ticker.Complete() {
			m.mu.Unlock()
			return
		}
	}
	m.mu.Unlock()
	m.ForceUpdate(ctx)
}

// ForceUpdate runs one update cycle immediately, regardless of interval.
// The league under the cursor is tried first and keeps the display while it
// has live games; the cursor advances only past empty leagues. With nothing
// live anywhere, the idle placeholder goes up instead.
func (m *Manager) ForceUpdate(ctx context.Context) {
	start := m.now()

	for range m.rotator.Leagues() {
		league, ok := m.rotator.Current()
		if !ok {
			break
		}
		games := m.source.LiveGames(ctx, league)
		if len(games) > 0 {
			m.ticker.SetCards(m.renderer.Cards(games))
			m.finish(league, start, len(games))
			return
		}
		m.rotator.Advance()
	}

	m.ticker.SetStatic(m.renderer.Placeholder(m.viewWidth))
	m.finish("", start, 0)
}

func (m *Manager) finish(league domain.LeagueID, start time.Time, games int) {
	now := m.now()

	m.mu.Lock()
	m.current = league
	m.lastUpdate = now
	m.hasContent = true
	m.gameCount = games
	m.mu.Unlock()

	m.metrics.RecordUpdateCycle(now.Sub(start), nil)
	if league != "" {
		logging.Info(m.logger, "showing league", logging.FieldLeague, string(league), logging.FieldCount, games)
	} else {
		logging.Info(m.logger, "no live games, showing placeholder")
	}
}

// Frame produces the next display frame and advances the scroll.
func (m *Manager) Frame() *image.RGBA {
	return m.ticker.Frame()
}

// Preview returns the current frame without advancing the scroll.
func (m *Manager) Preview() *image.RGBA {
	return m.ticker.Peek()
}

// CurrentLeague reports the league on screen, or "" for the placeholder.
func (m *Manager) CurrentLeague() domain.LeagueID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// LastUpdate reports when the display content last changed.
func (m *Manager) LastUpdate() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastUpdate
}

// GameCount reports how many games are on the current strip.
func (m *Manager) GameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gameCount
}

// Live reports whether live games are on screen rather than the placeholder.
func (m *Manager) Live() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != ""
}

// DisplayDuration reports how long one full scroll of the current strip
// takes at the given frame interval.
func (m *Manager) DisplayDuration(frameInterval time.Duration) time.Duration {
	return m.ticker.Duration(frameInterval)
}
