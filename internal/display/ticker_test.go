package display

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func solidCard(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFrameScrollsLeft(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	tk := NewTicker(8, 4, 1)
	tk.SetCards([]*image.RGBA{solidCard(16, 4, red)})

	first := tk.Frame()
	if first.RGBAAt(0, 0) != red {
		t.Fatal("first frame should start inside the card")
	}

	// After 16 more frames the card has scrolled past and the gap shows.
	var frame *image.RGBA
	for i := 0; i < 16; i++ {
		frame = tk.Frame()
	}
	if frame.RGBAAt(0, 0) == red {
		t.Fatal("expected the gap at the left edge after scrolling past the card")
	}
}

func TestCompleteAfterFullPass(t *testing.T) {
	tk := NewTicker(8, 4, 4)
	tk.SetCards([]*image.RGBA{solidCard(16, 4, color.RGBA{A: 255})})

	// Strip is 16 + 32 gap = 48px, at 4px per frame 12 frames wrap it.
	for i := 0; i < 11; i++ {
		tk.Frame()
		if tk.Complete() {
			t.Fatalf("complete too early at frame %d", i)
		}
	}
	tk.Frame()
	if !tk.Complete() {
		t.Fatal("expected a complete pass after wrapping")
	}

	tk.Reset()
	if tk.Complete() {
		t.Fatal("reset should clear the completed flag")
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	tk := NewTicker(8, 4, 1)
	tk.SetCards([]*image.RGBA{solidCard(16, 4, red)})

	tk.Frame()
	peek := tk.Peek()
	next := tk.Frame()

	// Peek shows the same scroll position the next Frame renders from.
	for x := 0; x < 8; x++ {
		if peek.RGBAAt(x, 0) != next.RGBAAt(x, 0) {
			t.Fatalf("peek diverged from frame at x=%d", x)
		}
	}
}

func TestStaticContent(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tk := NewTicker(8, 4, 1)
	tk.SetStatic(solidCard(8, 4, white))

	if !tk.Complete() {
		t.Fatal("static content is always complete")
	}
	a := tk.Frame()
	b := tk.Frame()
	if a.RGBAAt(3, 2) != white || b.RGBAAt(3, 2) != white {
		t.Fatal("static frames should show the image unchanged")
	}
	if tk.Duration(time.Second) != 0 {
		t.Fatal("static content has no scroll duration")
	}
}

func TestDurationScalesWithStripWidth(t *testing.T) {
	tk := NewTicker(8, 4, 2)
	tk.SetCards([]*image.RGBA{solidCard(16, 4, color.RGBA{A: 255})})

	// 48px strip at 2px per frame is 24 frames.
	want := 24 * 20 * time.Millisecond
	if got := tk.Duration(20 * time.Millisecond); got != want {
		t.Fatalf("duration = %v, want %v", got, want)
	}
}

func TestEmptyTickerBlankFrame(t *testing.T) {
	tk := NewTicker(4, 4, 1)
	frame := tk.Frame()
	if frame.Bounds().Dx() != 4 || frame.Bounds().Dy() != 4 {
		t.Fatalf("unexpected frame size %v", frame.Bounds())
	}
	if frame.RGBAAt(0, 0).A != 0 {
		t.Fatal("expected a blank frame with no content")
	}
}

func TestNullDriver(t *testing.T) {
	d := NewNullDriver(64, 32)
	w, h := d.Size()
	if w != 64 || h != 32 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	if err := d.Render(image.NewRGBA(image.Rect(0, 0, 64, 32))); err != nil {
		t.Fatalf("render: %v", err)
	}
	if d.Rendered() != 1 {
		t.Fatalf("expected 1 rendered frame, got %d", d.Rendered())
	}
	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
