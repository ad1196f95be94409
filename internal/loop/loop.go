package loop

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/display"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
)

const defaultTargetFPS = 120

// FrameSource produces frames for the display. Update is called every tick
// and gates itself; Frame always returns the next frame to show.
type FrameSource interface {
	Update(ctx context.Context)
	Frame() *image.RGBA
}

// Loop drives the display at the target frame rate: each tick runs one
// update pass and pushes one frame to the driver.
type Loop struct {
	source  FrameSource
	driver  display.Driver
	logger  *slog.Logger
	metrics *metrics.Recorder

	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the frame loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastFrame           time.Time
	LastSuccess         time.Time
}

// IsReady reports whether frames are reaching the display.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Loop running at targetFPS frames per second.
func New(source FrameSource, driver display.Driver, logger *slog.Logger, recorder *metrics.Recorder, targetFPS int) *Loop {
	if targetFPS <= 0 {
		targetFPS = defaultTargetFPS
	}
	return &Loop{
		source:   source,
		driver:   driver,
		logger:   logger,
		metrics:  recorder,
		interval: time.Second / time.Duration(targetFPS),
		done:     make(chan struct{}),
	}
}

// FrameInterval reports the tick period derived from the target frame rate.
func (l *Loop) FrameInterval() time.Duration {
	return l.interval
}

// Start begins the frame loop until the context is cancelled or Stop is
// called. Calling Start twice is a no-op.
func (l *Loop) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	l.startMu.Unlock()

	l.ticker = time.NewTicker(l.interval)

	go func() {
		logging.Info(l.logger, "frame loop started", logging.FieldDurationMS, l.interval.Milliseconds())
		l.frameOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				l.stopTicker()
				logging.Info(l.logger, "frame loop stopped")
				return
			case <-l.done:
				l.stopTicker()
				logging.Info(l.logger, "frame loop stopped")
				return
			case <-l.ticker.C:
				l.frameOnce(ctx)
			}
		}
	}()
}

// Stop halts the frame loop.
func (l *Loop) Stop(_ context.Context) error {
	l.stopOnce.Do(func() {
		close(l.done)
		l.stopTicker()
	})
	return nil
}

func (l *Loop) frameOnce(ctx context.Context) {
	at := time.Now()
	l.source.Update(ctx)

	if err := l.driver.Render(l.source.Frame()); err != nil {
		logging.Error(l.logger, "frame render failed", err)
		l.recordFailure(err, at)
		return
	}
	l.metrics.RecordFrame()
	l.recordSuccess(at)
}

func (l *Loop) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
}

func (l *Loop) recordSuccess(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures = 0
	l.status.LastError = ""
	l.status.LastFrame = at
	l.status.LastSuccess = at
}

func (l *Loop) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures++
	if err != nil {
		l.status.LastError = err.Error()
	}
	l.status.LastFrame = at
}

// Status returns a snapshot of the loop's recent health.
func (l *Loop) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}
