package panel

import (
	"image/color"

	"tinygo.org/x/drivers"

	"ertft/fb"
)

// Displayer adapts the device to drivers.Displayer so ecosystem renderers
// (tinyfont and friends) can draw on the panel framebuffer.
func (d *Device) Displayer() drivers.Displayer {
	return fbDisplay{d: d}
}

type fbDisplay struct {
	d *Device
}

func (a fbDisplay) Size() (x, y int16) {
	return int16(a.d.cfg.Width), int16(a.d.cfg.Height)
}

func (a fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	a.d.fb.SetPixel(int(x), int(y), fb.RGBTo565(c.R, c.G, c.B))
}

func (a fbDisplay) Display() error {
	return a.d.Flush()
}
