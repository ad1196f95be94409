package display

import "image"

// Driver is a sink for rendered frames. Implementations push pixels to real
// hardware, a browser simulator, or nothing at all.
type Driver interface {
	// Size reports the panel dimensions in pixels.
	Size() (width, height int)
	// Render pushes one full frame to the panel.
	Render(frame *image.RGBA) error
	// Close releases the panel.
	Close() error
}
