package rotate

import (
	"sort"
	"sync"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
)

// Rotator cycles through the enabled leagues in priority order. The cursor
// stays on the current league while it has live games; Advance moves on and
// wraps around when it does not.
type Rotator struct {
	metrics *metrics.Recorder

	mu     sync.Mutex
	order  []domain.LeagueID
	cursor int
}

// New builds a rotator from the configured league set.
func New(leagues map[domain.LeagueID]domain.LeagueConfig, recorder *metrics.Recorder) *Rotator {
	r := &Rotator{metrics: recorder}
	r.SetLeagues(leagues)
	return r
}

// SetLeagues replaces the league set and resets the cursor, so the next call
// to Next starts from the highest-priority enabled league.
func (r *Rotator) SetLeagues(leagues map[domain.LeagueID]domain.LeagueConfig) {
	order := sortedEnabled(leagues)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = order
	r.cursor = 0
}

// Current returns the league under the cursor without moving it. The second
// return is false when no league is enabled.
func (r *Rotator) Current() (domain.LeagueID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.order) == 0 {
		return "", false
	}
	return r.order[r.cursor], true
}

// Advance moves the cursor to the next enabled league, wrapping around. With
// fewer than two leagues the cursor stays put.
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.order) < 2 {
		return
	}
	from := r.order[r.cursor]
	r.cursor = (r.cursor + 1) % len(r.order)
	r.metrics.RecordRotation(string(from), string(r.order[r.cursor]))
}

// Leagues returns the rotation order.
func (r *Rotator) Leagues() []domain.LeagueID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LeagueID, len(r.order))
	copy(out, r.order)
	return out
}

// sortedEnabled filters to enabled leagues and orders them by ascending
// priority. Ties keep the canonical league order.
func sortedEnabled(leagues map[domain.LeagueID]domain.LeagueConfig) []domain.LeagueID {
	order := make([]domain.LeagueID, 0, len(leagues))
	for _, id := range domain.AllLeagues {
		if cfg, ok := leagues[id]; ok && cfg.Enabled {
			order = append(order, id)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return leagues[order[i]].Priority < leagues[order[j]].Priority
	})
	return order
}
