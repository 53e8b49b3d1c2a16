//go:build !tinygo

// tftdemo renders the panel demo pages into a simulated transport and,
// unless -headless is set, mirrors the transmitted frames in a desktop
// window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"tinygo.org/x/tinyfont"

	"ertft/fb"
	"ertft/hal"
	"ertft/panel"
)

func main() {
	var headless bool
	var pageTicks int
	flag.BoolVar(&headless, "headless", false, "Render every page once and exit.")
	flag.IntVar(&pageTicks, "page-ticks", 180, "Ticks per demo page.")
	flag.Parse()

	tr := hal.NewCapture()
	cfg := panel.DefaultConfig()
	cfg.Logger = hal.NewHostLogger()
	dev := panel.New(tr, cfg)

	if err := dev.Begin(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer dev.Close()

	pages := []func(*panel.Device) error{
		pageText,
		pageClock,
		pageGradient,
		pageBitmap,
	}

	if headless {
		for i, p := range pages {
			if err := p(dev); err != nil {
				fmt.Fprintf(os.Stderr, "page %d: %v\n", i, err)
				os.Exit(1)
			}
		}
		fmt.Printf("transmitted %d frames of %d bytes\n",
			len(tr.Frames()), cfg.Width*cfg.Height*2)
		return
	}

	tick := 0
	page := -1
	step := func() error {
		if tick%pageTicks == 0 {
			page = (page + 1) % len(pages)
			if err := pages[page](dev); err != nil {
				return err
			}
		}
		// The clock page redraws its digits every second.
		if page == 1 && tick%60 == 0 {
			if err := pageClock(dev); err != nil {
				return err
			}
		}
		tick++
		return nil
	}

	if err := hal.RunWindow(tr, cfg.Width, cfg.Height, "ertft demo", step); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func pageText(d *panel.Device) error {
	d.Framebuffer().Clear()
	if err := d.DrawString(4, 4, "ER-TFTM2.25-1 284x76", 16, panel.ModeOpaque, fb.White); err != nil {
		return err
	}
	if err := d.DrawString(4, 26, "opaque 12px text", 12, panel.ModeOpaque, fb.Green); err != nil {
		return err
	}
	if err := d.DrawString(4, 42, "reverse 12px text", 12, panel.ModeReverse, fb.Yellow); err != nil {
		return err
	}
	tinyfont.WriteLine(d.Displayer(), &tinyfont.Org01, 4, 70, "tinyfont overlay", color.RGBA{R: 0xFF, G: 0x80, A: 0xFF})
	return d.Refresh()
}

func pageClock(d *panel.Device) error {
	d.Framebuffer().Clear()
	now := time.Now().Format("15:04:05")
	x := (d.Width() - len(now)*16) / 2
	for i := 0; i < len(now); i++ {
		if err := d.DrawChar32(x+i*16, 22, now[i], fb.Cyan); err != nil {
			return err
		}
	}
	return d.Refresh()
}

func pageGradient(d *panel.Device) error {
	w, h := d.Width(), d.Height()
	rgb := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 3
			rgb[off+0] = byte(x * 255 / (w - 1))
			rgb[off+1] = byte(y * 255 / (h - 1))
			rgb[off+2] = byte(255 - x*255/(w-1))
		}
	}
	return d.Show888(rgb, w, h)
}

// arrow is an 8x8 1bpp right arrow, byte-aligned rows.
var arrow = []byte{
	0x08, 0x0C, 0xFE, 0xFF, 0xFF, 0xFE, 0x0C, 0x08,
}

func pageBitmap(d *panel.Device) error {
	if err := d.ClearColor(fb.Blue); err != nil {
		return err
	}
	for i := 0; i < 6; i++ {
		if err := d.DrawMonoBitmap(30+i*40, 34, arrow, 8, 8, fb.White); err != nil {
			return err
		}
	}
	if err := d.DrawString(4, 4, "mono bitmap blit", 12, panel.ModeOpaque, fb.White); err != nil {
		return err
	}
	return d.Refresh()
}
