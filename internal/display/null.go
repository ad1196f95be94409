package display

import (
	"image"
	"sync"
)

// NullDriver discards frames. Useful for tests and for running the service
// headless with only the HTTP preview endpoint.
type NullDriver struct {
	width  int
	height int

	mu       sync.Mutex
	rendered int
	closed   bool
}

// NewNullDriver builds a frame sink of the given size.
func NewNullDriver(width, height int) *NullDriver {
	return &NullDriver{width: width, height: height}
}

func (d *NullDriver) Size() (int, int) {
	return d.width, d.height
}

func (d *NullDriver) Render(_ *image.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rendered++
	return nil
}

func (d *NullDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Rendered reports how many frames were pushed.
func (d *NullDriver) Rendered() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rendered
}
