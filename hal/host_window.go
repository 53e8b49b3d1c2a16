//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"ertft/fb"
)

// RunWindow opens a desktop window mirroring every frame transmitted
// through c. step runs once per tick; returning an error closes the
// window. Blocks until the window closes.
func RunWindow(c *Capture, width, height int, title string, step func() error) error {
	g := &captureGame{c: c, width: width, height: height, step: step}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*2, height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type captureGame struct {
	c      *Capture
	width  int
	height int
	img    *image.RGBA
	fbImg  *ebiten.Image
	step   func() error
}

func (g *captureGame) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *captureGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}

	frame := g.c.LastFrame()
	if frame == nil {
		return
	}

	// Frames are big-endian 565 in wire order.
	dst := g.img.Pix
	for i := 0; i+1 < len(frame) && (i/2)*4+3 < len(dst); i += 2 {
		r, gg, b := fb.RGBFrom565(uint16(frame[i])<<8 | uint16(frame[i+1]))
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *captureGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
