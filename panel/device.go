// Package panel drives a fixed-geometry ST7789 TFT: it renders points,
// glyphs, strings and bitmaps into an in-memory framebuffer and flushes
// the whole buffer to the panel over a command/data transport.
package panel

import (
	"time"

	"ertft/fb"
	"ertft/hal"
)

// Logical panel geometry and addressing window offsets for the
// ER-TFTM2.25-1 in landscape. The panel's addressable memory is larger
// than the drawable region; the drawable window is inset by fixed offsets
// that come from the panel, not from the buffer size.
const (
	Width  = 284
	Height = 76

	defaultColOffset = 0x12
	defaultRowOffset = 0x52
)

// Config describes the panel geometry and wiring of ambient concerns.
type Config struct {
	Width     int
	Height    int
	ColOffset int
	RowOffset int

	// Logger receives diagnostic lines (dimension mismatch reports).
	// Optional.
	Logger hal.Logger
}

// DefaultConfig returns the fixed ER-TFTM2.25-1 geometry.
func DefaultConfig() Config {
	return Config{
		Width:     Width,
		Height:    Height,
		ColOffset: defaultColOffset,
		RowOffset: defaultRowOffset,
	}
}

// Device owns the framebuffer and the transport.
//
// A Device expects a single logical writer: drawing calls and Flush have
// no internal locking, and a Flush must complete before the next mutation
// starts or the panel may receive a torn frame. Callers drawing from
// several goroutines must serialize access themselves.
type Device struct {
	fb  *fb.Framebuffer
	tr  hal.Transport
	log hal.Logger
	cfg Config
}

func New(tr hal.Transport, cfg Config) *Device {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		def.Logger = cfg.Logger
		cfg = def
	}
	return &Device{
		fb:  fb.New(cfg.Width, cfg.Height),
		tr:  tr,
		log: cfg.Logger,
		cfg: cfg,
	}
}

// Framebuffer exposes the pixel store for direct rendering.
func (d *Device) Framebuffer() *fb.Framebuffer { return d.fb }

func (d *Device) Width() int  { return d.cfg.Width }
func (d *Device) Height() int { return d.cfg.Height }

// cmdWriter issues command/parameter sequences and latches the first
// transport error.
type cmdWriter struct {
	tr  hal.Transport
	err error
}

func (w *cmdWriter) cmd(c byte, args ...byte) {
	if w.err != nil {
		return
	}
	if w.err = w.tr.Command(c); w.err != nil {
		return
	}
	for _, a := range args {
		if w.err = w.tr.Data(a); w.err != nil {
			return
		}
	}
}

// Begin programs the panel registers and establishes a known initial
// visible state: an all-white screen.
func (d *Device) Begin() error {
	if err := d.initPanel(); err != nil {
		return err
	}
	d.fb.Fill(fb.White)
	return d.Flush()
}

func (d *Device) initPanel() error {
	w := cmdWriter{tr: d.tr}

	w.cmd(0xB2, 0x0C, 0x0C, 0x00, 0x33, 0x33) // PORCTRL
	w.cmd(0xB0, 0x00, 0xE0)                   // RAMCTRL

	w.cmd(0x36, 0x70) // MADCTL: landscape
	w.cmd(0x3A, 0x05) // COLMOD: 16bpp

	w.cmd(0xB7, 0x45) // GCTRL
	w.cmd(0xBB, 0x1D) // VCOMS
	w.cmd(0xC0, 0x2C) // LCMCTRL
	w.cmd(0xC2, 0x01) // VDVVRHEN
	w.cmd(0xC3, 0x19) // VRHS
	w.cmd(0xC4, 0x20) // VDVS
	w.cmd(0xC6, 0x0F) // FRCTRL2
	w.cmd(0xD0, 0xA4, 0xA1)
	w.cmd(0xD6, 0xA1)

	// Gamma.
	w.cmd(0xE0, 0xD0, 0x10, 0x21, 0x14, 0x15, 0x2D, 0x41, 0x44, 0x4F, 0x28, 0x0E, 0x0C, 0x1D, 0x1F)
	w.cmd(0xE1, 0xD0, 0x0F, 0x1B, 0x0D, 0x0D, 0x26, 0x42, 0x54, 0x50, 0x3E, 0x1A, 0x18, 0x22, 0x25)

	w.cmd(0x11) // SLPOUT
	if w.err == nil {
		time.Sleep(120 * time.Millisecond)
	}
	w.cmd(0x29) // DISPON

	return w.err
}

// Flush declares the addressing window over the logical drawing surface
// and transmits the whole framebuffer in one pass, high byte of each
// packed pixel first. It blocks until the transport has accepted every
// byte; the framebuffer must not be mutated until it returns.
func (d *Device) Flush() error {
	colEnd := d.cfg.Width + d.cfg.ColOffset - 1
	rowEnd := d.cfg.Height + d.cfg.RowOffset - 1

	w := cmdWriter{tr: d.tr}
	w.cmd(0x2A, // CASET
		byte(d.cfg.ColOffset>>8), byte(d.cfg.ColOffset),
		byte(colEnd>>8), byte(colEnd),
	)
	w.cmd(0x2B, // RASET
		byte(d.cfg.RowOffset>>8), byte(d.cfg.RowOffset),
		byte(rowEnd>>8), byte(rowEnd),
	)
	w.cmd(0x2C) // RAMWR
	if w.err != nil {
		return w.err
	}
	return d.tr.Transmit(d.fb.Bytes())
}

// Close releases the transport. Safe to call after a partially failed
// Begin.
func (d *Device) Close() error {
	if d.tr == nil {
		return nil
	}
	return d.tr.Close()
}
