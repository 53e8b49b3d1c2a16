//go:build !tinygo

package hal

import (
	"errors"
	"testing"
)

func TestCaptureRecordsInOrder(t *testing.T) {
	c := NewCapture()

	if err := c.Command(0x2A); err != nil {
		t.Fatalf("Command: %v", err)
	}
	if err := c.Data(0x12); err != nil {
		t.Fatalf("Data: %v", err)
	}
	if err := c.Transmit([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Transmit: %v", err)
	}

	ops := c.Ops()
	want := []Op{{OpCommand, 0x2A}, {OpData, 0x12}, {OpBulk, 0}}
	if len(ops) != len(want) {
		t.Fatalf("len(ops) = %d, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops[%d] = %+v, want %+v", i, ops[i], want[i])
		}
	}

	frame := c.LastFrame()
	if len(frame) != 3 || frame[0] != 1 || frame[2] != 3 {
		t.Fatalf("LastFrame() = %v", frame)
	}
}

func TestCaptureCopiesPayload(t *testing.T) {
	c := NewCapture()
	p := []byte{9, 9}
	if err := c.Transmit(p); err != nil {
		t.Fatalf("Transmit: %v", err)
	}
	p[0] = 0
	if got := c.LastFrame()[0]; got != 9 {
		t.Fatalf("frame[0] = %d, want 9 (payload not copied)", got)
	}
}

func TestCaptureClosed(t *testing.T) {
	c := NewCapture()
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Command(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("Command err = %v, want ErrClosed", err)
	}
	if err := c.Data(0); !errors.Is(err, ErrClosed) {
		t.Fatalf("Data err = %v, want ErrClosed", err)
	}
	if err := c.Transmit(nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("Transmit err = %v, want ErrClosed", err)
	}
}

func TestCaptureLastWindow(t *testing.T) {
	c := NewCapture()

	// Two declarations; the later one wins.
	for _, w := range []struct {
		cmd  byte
		args [4]byte
	}{
		{0x2A, [4]byte{0, 0x12, 0x01, 0x29}},
		{0x2B, [4]byte{0, 0x52, 0x00, 0x9D}},
	} {
		c.Command(w.cmd)
		for _, a := range w.args {
			c.Data(a)
		}
	}

	x0, x1, y0, y1, ok := c.LastWindow()
	if !ok {
		t.Fatal("LastWindow() ok = false, want true")
	}
	if x0 != 0x12 || x1 != 0x129 {
		t.Fatalf("columns = %#x..%#x, want 0x12..0x129", x0, x1)
	}
	if y0 != 0x52 || y1 != 0x9D {
		t.Fatalf("rows = %#x..%#x, want 0x52..0x9d", y0, y1)
	}
}

func TestCaptureLastWindowIncomplete(t *testing.T) {
	c := NewCapture()
	c.Command(0x2A)
	c.Data(0)
	if _, _, _, _, ok := c.LastWindow(); ok {
		t.Fatal("LastWindow() ok = true for incomplete declaration")
	}
}

func TestCaptureReset(t *testing.T) {
	c := NewCapture()
	c.Command(1)
	c.Transmit([]byte{1})
	c.Reset()
	if len(c.Ops()) != 0 || len(c.Frames()) != 0 || c.LastFrame() != nil {
		t.Fatal("Reset left recorded state behind")
	}
}
