package panel

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ertft/fb"
	"ertft/hal"
)

type testLogger struct {
	lines []string
}

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestFlushDeclaresWindow(t *testing.T) {
	d, tr := testDevice(4, 4)

	if err := d.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	x0, x1, y0, y1, ok := tr.LastWindow()
	if !ok {
		t.Fatal("no window declaration recorded")
	}
	if x0 != 0x12 || x1 != 0x15 {
		t.Fatalf("column window = %#x..%#x, want 0x12..0x15", x0, x1)
	}
	if y0 != 0x52 || y1 != 0x55 {
		t.Fatalf("row window = %#x..%#x, want 0x52..0x55", y0, y1)
	}

	ops := tr.Ops()
	if len(ops) < 2 {
		t.Fatalf("len(ops) = %d", len(ops))
	}
	if ops[len(ops)-1].Kind != hal.OpBulk {
		t.Fatal("flush did not end with a bulk transmit")
	}
	if prev := ops[len(ops)-2]; prev.Kind != hal.OpCommand || prev.Byte != 0x2C {
		t.Fatalf("op before transmit = %+v, want command 0x2c", prev)
	}
}

func TestFlushTransmitsBufferVerbatim(t *testing.T) {
	d, tr := testDevice(4, 4)

	d.Framebuffer().Clear()
	d.SetPixel(1, 1, 0x1234)
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	frame := tr.LastFrame()
	if len(frame) != 4*4*2 {
		t.Fatalf("len(frame) = %d, want 32", len(frame))
	}
	for i, b := range frame {
		switch i {
		case 10:
			if b != 0x12 {
				t.Fatalf("frame[10] = %#x, want 0x12", b)
			}
		case 11:
			if b != 0x34 {
				t.Fatalf("frame[11] = %#x, want 0x34", b)
			}
		default:
			if b != 0 {
				t.Fatalf("frame[%d] = %#x, want 0", i, b)
			}
		}
	}
}

func TestShow565(t *testing.T) {
	d, tr := testDevice(4, 4)

	src := make([]byte, 4*4*2)
	for i := range src {
		src[i] = byte(i)
	}
	if err := d.Show565(src, 4, 4); err != nil {
		t.Fatalf("Show565: %v", err)
	}
	if !bytes.Equal(tr.LastFrame(), src) {
		t.Fatal("transmitted frame differs from input")
	}
}

func TestShow565DimensionMismatch(t *testing.T) {
	log := &testLogger{}
	tr := hal.NewCapture()
	d := New(tr, Config{Width: 4, Height: 4, ColOffset: 0x12, RowOffset: 0x52, Logger: log})
	d.Framebuffer().Fill(0x5555)
	before := append([]byte(nil), d.Framebuffer().Bytes()...)

	err := d.Show565(make([]byte, 3*4*2), 3, 4)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if !bytes.Equal(d.Framebuffer().Bytes(), before) {
		t.Fatal("mismatched Show565 changed the framebuffer")
	}
	if len(tr.Frames()) != 0 {
		t.Fatal("mismatched Show565 transmitted a frame")
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "4x4") {
		t.Fatalf("diagnostic lines = %q", log.lines)
	}
}

func TestShow888ConvertsEveryPixel(t *testing.T) {
	d, tr := testDevice(4, 4)

	rgb := make([]byte, 4*4*3)
	for i := 0; i < 4*4; i++ {
		rgb[i*3+0] = byte(i * 16)
		rgb[i*3+1] = byte(255 - i*16)
		rgb[i*3+2] = byte(i * 7)
	}
	if err := d.Show888(rgb, 4, 4); err != nil {
		t.Fatalf("Show888: %v", err)
	}

	frame := tr.LastFrame()
	for i := 0; i < 4*4; i++ {
		want := fb.RGBTo565(rgb[i*3], rgb[i*3+1], rgb[i*3+2])
		got := uint16(frame[i*2])<<8 | uint16(frame[i*2+1])
		if got != want {
			t.Fatalf("pixel %d = %#x, want %#x", i, got, want)
		}
	}
}

func TestShow888DimensionMismatch(t *testing.T) {
	log := &testLogger{}
	tr := hal.NewCapture()
	d := New(tr, Config{Width: 4, Height: 4, ColOffset: 0x12, RowOffset: 0x52, Logger: log})

	err := d.Show888(make([]byte, 8*8*3), 8, 8)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
	if len(tr.Frames()) != 0 {
		t.Fatal("mismatched Show888 transmitted a frame")
	}
	if len(log.lines) != 1 {
		t.Fatalf("diagnostic lines = %q", log.lines)
	}
}

func TestBeginEstablishesWhiteScreen(t *testing.T) {
	d, tr := testDevice(4, 4)

	if err := d.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	frames := tr.Frames()
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}
	for i, b := range frames[0] {
		if b != 0xFF {
			t.Fatalf("frame[%d] = %#x, want 0xff (white)", i, b)
		}
	}

	// The register sequence ends with sleep-out and display-on before the
	// first window declaration.
	var sawSlpOut, sawDispOn bool
	for _, op := range tr.Ops() {
		if op.Kind != hal.OpCommand {
			continue
		}
		switch op.Byte {
		case 0x11:
			sawSlpOut = true
		case 0x29:
			sawDispOn = true
		case 0x2A:
			if !sawSlpOut || !sawDispOn {
				t.Fatal("window declared before init sequence completed")
			}
		}
	}
	if !sawSlpOut || !sawDispOn {
		t.Fatal("init sequence missing sleep-out or display-on")
	}
}

func TestCloseIsSafeAfterPartialInit(t *testing.T) {
	tr := hal.NewCapture()
	d := New(tr, DefaultConfig())

	if err := tr.Close(); err != nil {
		t.Fatalf("Close transport: %v", err)
	}
	if err := d.Begin(); !errors.Is(err, hal.ErrClosed) {
		t.Fatalf("Begin on closed transport err = %v, want ErrClosed", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close after failed Begin: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestDefaultConfigGeometry(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 284 || cfg.Height != 76 {
		t.Fatalf("geometry = %dx%d, want 284x76", cfg.Width, cfg.Height)
	}
	if cfg.ColOffset != 0x12 || cfg.RowOffset != 0x52 {
		t.Fatalf("offsets = %#x,%#x, want 0x12,0x52", cfg.ColOffset, cfg.RowOffset)
	}
}
