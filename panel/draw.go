package panel

import (
	"errors"
	"fmt"

	"ertft/fb"
	"ertft/font"
)

// Mode selects glyph rendering. Opaque draws the glyph bits as stored;
// Reverse bit-inverts each source byte, producing reverse video. Both
// erase the cell's background pixels with packed color 0.
type Mode uint8

const (
	ModeOpaque Mode = iota
	ModeReverse
)

var errShortBitmap = errors.New("panel: bitmap shorter than declared size")

// SetPixel draws one pixel in packed 565. Out-of-range coordinates are
// ignored.
func (d *Device) SetPixel(x, y int, c uint16) {
	d.fb.SetPixel(x, y, c)
}

// rasterize expands one packed glyph entry column by column: each source
// byte covers up to eight rows of one target column, top bit first, and
// the column advances once height rows have been written.
func (d *Device) rasterize(x, y int, entry []byte, height int, mode Mode, c uint16) {
	y0 := y
	for _, b := range entry {
		if mode == ModeReverse {
			b = ^b
		}
		for j := 0; j < 8; j++ {
			if b&0x80 != 0 {
				d.fb.SetPixel(x, y, c)
			} else {
				d.fb.SetPixel(x, y, 0)
			}
			b <<= 1
			y++
			if y-y0 == height {
				y = y0
				x++
				break
			}
		}
	}
}

// DrawChar renders ch from t with its top-left corner at (x, y). Codes the
// table does not cover are reported, not drawn.
func (d *Device) DrawChar(x, y int, ch byte, t *font.Table, mode Mode, c uint16) error {
	entry, err := t.Glyph(ch)
	if err != nil {
		return fmt.Errorf("%w: %#x in %s", err, ch, t.Name())
	}
	d.rasterize(x, y, entry, t.Height(), mode, c)
	return nil
}

// DrawChar16 renders one 16x16 numeric glyph ('0'..':'), always opaque.
func (d *Device) DrawChar16(x, y int, ch byte, c uint16) error {
	return d.DrawChar(x, y, ch, font.Font16x16, ModeOpaque, c)
}

// DrawChar32 renders one 16x32 numeric glyph ('0'..':'), always opaque.
func (d *Device) DrawChar32(x, y int, ch byte, c uint16) error {
	return d.DrawChar(x, y, ch, font.Font16x32, ModeOpaque, c)
}

// DrawString renders s with the general ASCII table of the given pixel
// size (12 or 16). The pen wraps to the next line when it would pass
// width - size/2, and restarts at the top-left, overwriting existing
// content, when the bottom is reached; there is no scrolling. Characters
// the table does not cover render as '?'. The whole string is drawn
// before the call returns.
func (d *Device) DrawString(x, y int, s string, size int, mode Mode, c uint16) error {
	t, ok := font.ForSize(size)
	if !ok {
		return fmt.Errorf("panel: no %d px font", size)
	}
	for i := 0; i < len(s); i++ {
		if x > d.cfg.Width-size/2 {
			x = 0
			y += size
			if y > d.cfg.Height-size {
				x, y = 0, 0
			}
		}
		entry, err := t.Glyph(s[i])
		if err != nil {
			entry, _ = t.Glyph('?')
		}
		d.rasterize(x, y, entry, t.Height(), mode, c)
		x += size / 2
	}
	return nil
}

// DrawMonoBitmap blits a 1bpp bitmap with byte-aligned rows, leftmost
// pixel in the top bit. Set bits are drawn in c; clear bits leave the
// framebuffer untouched, unlike glyph rendering.
func (d *Device) DrawMonoBitmap(x, y int, bits []byte, w, h int, c uint16) error {
	rowBytes := (w + 7) / 8
	if len(bits) < rowBytes*h {
		return errShortBitmap
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if bits[j*rowBytes+i/8]&(128>>(i&7)) != 0 {
				d.fb.SetPixel(x+i, y+j, c)
			}
		}
	}
	return nil
}

// DrawRGBBitmap blits a 3-byte-per-pixel truecolor image stored
// bottom-to-top: source row 0 lands on target row y+h-1. Each pixel is
// read as exactly three bytes and converted to 565.
func (d *Device) DrawRGBBitmap(x, y int, rgb []byte, w, h int) error {
	if len(rgb) < w*h*3 {
		return errShortBitmap
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			off := (j*w + i) * 3
			c := fb.RGBTo565(rgb[off], rgb[off+1], rgb[off+2])
			d.fb.SetPixel(x+i, y+h-1-j, c)
		}
	}
	return nil
}
