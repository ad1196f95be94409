package display

import (
	"image"
	"image/draw"
	"math"
	"sync"
	"time"
)

// ScrollGap is the blank space between consecutive cards, and between the
// last card and the first as the strip wraps.
const ScrollGap = 32

// Ticker owns the scrolling state of the display: a horizontal strip of game
// cards that slides across a fixed-size viewport. A static image (the idle
// placeholder) can be shown instead, in which case nothing moves.
type Ticker struct {
	viewWidth  int
	viewHeight int
	speed      float64

	mu      sync.Mutex
	strip   *image.RGBA
	static  *image.RGBA
	offset  float64
	wrapped bool
}

// NewTicker sizes the viewport and sets the scroll speed in pixels per frame.
func NewTicker(viewWidth, viewHeight int, speed float64) *Ticker {
	if speed <= 0 {
		speed = 1
	}
	return &Ticker{viewWidth: viewWidth, viewHeight: viewHeight, speed: speed}
}

// SetCards composes a new scroll strip from the cards and restarts the
// scroll at the left edge.
func (t *Ticker) SetCards(cards []*image.RGBA) {
	stripWidth := 0
	for _, c := range cards {
		stripWidth += c.Bounds().Dx() + ScrollGap
	}

	strip := image.NewRGBA(image.Rect(0, 0, stripWidth, t.viewHeight))
	x := 0
	for _, c := range cards {
		b := c.Bounds()
		draw.Draw(strip, image.Rect(x, 0, x+b.Dx(), b.Dy()), c, b.Min, draw.Src)
		x += b.Dx() + ScrollGap
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.strip = strip
	t.static = nil
	t.offset = 0
	t.wrapped = false
}

// SetStatic shows a fixed image instead of a scrolling strip.
func (t *Ticker) SetStatic(img *image.RGBA) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.static = img
	t.strip = nil
	t.offset = 0
	t.wrapped = false
}

// Frame produces the next viewport frame and advances the scroll. With no
// content set, it returns a blank frame.
func (t *Ticker) Frame() *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.composeLocked()
	if t.static == nil && t.strip != nil {
		stripWidth := t.strip.Bounds().Dx()
		if stripWidth > 0 {
			t.offset += t.speed
			if t.offset >= float64(stripWidth) {
				t.offset -= float64(stripWidth)
				t.wrapped = true
			}
		}
	}
	return out
}

// Peek renders the current viewport without advancing the scroll.
func (t *Ticker) Peek() *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.composeLocked()
}

func (t *Ticker) composeLocked() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, t.viewWidth, t.viewHeight))

	if t.static != nil {
		b := t.static.Bounds()
		draw.Draw(out, b.Sub(b.Min), t.static, b.Min, draw.Src)
		return out
	}
	if t.strip == nil || t.strip.Bounds().Dx() == 0 {
		return out
	}

	stripWidth := t.strip.Bounds().Dx()
	start := int(math.Floor(t.offset))
	for x := 0; x < t.viewWidth; x++ {
		src := (start + x) % stripWidth
		for y := 0; y < t.viewHeight; y++ {
			out.Set(x, y, t.strip.At(src, y))
		}
	}
	return out
}

// Complete reports whether the strip has scrolled through at least once
// since the last SetCards or Reset. Static content is always complete.
func (t *Ticker) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.static != nil {
		return true
	}
	if t.strip == nil {
		return true
	}
	return t.wrapped
}

// Reset rewinds the scroll to the left edge.
func (t *Ticker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = 0
	t.wrapped = false
}

// Duration reports how long one full scroll pass takes at the given frame
// interval. Static content has no scroll time.
func (t *Ticker) Duration(frameInterval time.Duration) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.strip == nil || t.static != nil {
		return 0
	}
	frames := float64(t.strip.Bounds().Dx()) / t.speed
	return time.Duration(frames * float64(frameInterval))
}
