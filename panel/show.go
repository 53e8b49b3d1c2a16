package panel

import (
	"errors"
	"fmt"

	"ertft/fb"
)

// ErrDimensionMismatch is returned when a supplied image's declared size
// does not equal the panel's logical size. The framebuffer is left
// unchanged and the caller may retry with corrected input.
var ErrDimensionMismatch = errors.New("panel: image dimensions do not match panel")

var errShortImage = errors.New("panel: image shorter than declared size")

func (d *Device) dimensionError(w, h int) error {
	err := fmt.Errorf("%w: need %dx%d, got %dx%d",
		ErrDimensionMismatch, d.cfg.Width, d.cfg.Height, w, h)
	if d.log != nil {
		d.log.WriteLineString(err.Error())
	}
	return err
}

// Show565 copies a packed big-endian 565 frame of exactly the panel's
// dimensions into the framebuffer and flushes it.
func (d *Device) Show565(buf []byte, w, h int) error {
	if w != d.cfg.Width || h != d.cfg.Height {
		return d.dimensionError(w, h)
	}
	if len(buf) < w*h*2 {
		return errShortImage
	}
	copy(d.fb.Bytes(), buf[:w*h*2])
	return d.Flush()
}

// Show888 converts a 3-byte-per-pixel truecolor frame of exactly the
// panel's dimensions into the framebuffer and flushes it. Rows are taken
// top-to-bottom as supplied.
func (d *Device) Show888(rgb []byte, w, h int) error {
	if w != d.cfg.Width || h != d.cfg.Height {
		return d.dimensionError(w, h)
	}
	if len(rgb) < w*h*3 {
		return errShortImage
	}
	buf := d.fb.Bytes()
	for i := 0; i < w*h; i++ {
		c := fb.RGBTo565(rgb[i*3], rgb[i*3+1], rgb[i*3+2])
		buf[i*2] = byte(c >> 8)
		buf[i*2+1] = byte(c)
	}
	return d.Flush()
}

// ClearColor fills the whole panel with c and flushes.
func (d *Device) ClearColor(c uint16) error {
	d.fb.Fill(c)
	return d.Flush()
}

// Text draws s opaquely at (x, y). The caller refreshes when done drawing.
func (d *Device) Text(x, y int, s string, size int, c uint16) error {
	return d.DrawString(x, y, s, size, ModeOpaque, c)
}

// Refresh retransmits the current framebuffer.
func (d *Device) Refresh() error { return d.Flush() }
