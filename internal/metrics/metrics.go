package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// the display pipeline. It is intentionally simple so it can be swapped for
// a real backend later.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	cache    map[string]*cacheStats
	rotation int
	frames   int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		cache: make(map[string]*cacheStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordCacheHit counts a cache hit for the league.
func (r *Recorder) RecordCacheHit(league string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureCache(league).hits++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(league, true)
	}
}

// RecordCacheMiss counts a cache miss for the league.
func (r *Recorder) RecordCacheMiss(league string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureCache(league).misses++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(league, false)
	}
}

// RecordRotation counts one rotation cursor advance.
func (r *Recorder) RecordRotation(from, to string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rotation++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRotation(from, to)
	}
}

// RecordUpdateCycle tracks one manager update pass.
func (r *Recorder) RecordUpdateCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordUpdate(duration, err)
}

// RecordRender tracks the latency of one card-render pass.
func (r *Recorder) RecordRender(duration time.Duration, cards int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRender(duration, cards)
}

// RecordFrame counts one frame pushed to the display driver.
func (r *Recorder) RecordFrame() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.frames++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFrame()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureStats(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// CacheSnapshot reports hit/miss totals for a league.
func (r *Recorder) CacheSnapshot(league string) (hits, misses int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.ensureCache(league)
	return c.hits, c.misses
}

// Rotations returns the total recorded cursor advances.
func (r *Recorder) Rotations() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotation
}

// Frames returns the total frames recorded.
func (r *Recorder) Frames() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(league string) *cacheStats {
	c, ok := r.cache[league]
	if !ok {
		c = &cacheStats{}
		r.cache[league] = c
	}
	return c
}
