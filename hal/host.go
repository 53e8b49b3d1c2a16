//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// OpKind classifies one recorded transport operation.
type OpKind uint8

const (
	OpCommand OpKind = iota + 1
	OpData
	OpBulk
)

// Op is one byte-level operation recorded by a Capture. For OpBulk the
// payload lives in the capture's frame list; Byte is unused.
type Op struct {
	Kind OpKind
	Byte byte
}

// Capture is an in-memory Transport that records the byte stream for
// inspection. It stands in for the SPI link on the host and in tests.
type Capture struct {
	mu     sync.Mutex
	ops    []Op
	frames [][]byte
	closed bool
}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Command(b byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.ops = append(c.ops, Op{Kind: OpCommand, Byte: b})
	return nil
}

func (c *Capture) Data(b byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.ops = append(c.ops, Op{Kind: OpData, Byte: b})
	return nil
}

func (c *Capture) Transmit(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	frame := make([]byte, len(p))
	copy(frame, p)
	c.frames = append(c.frames, frame)
	c.ops = append(c.ops, Op{Kind: OpBulk})
	return nil
}

func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Ops returns a copy of the recorded operation stream.
func (c *Capture) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Frames returns copies of every transmitted payload, oldest first.
func (c *Capture) Frames() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.frames))
	for i, f := range c.frames {
		out[i] = append([]byte(nil), f...)
	}
	return out
}

// LastFrame returns the most recently transmitted payload, or nil.
func (c *Capture) LastFrame() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.frames) == 0 {
		return nil
	}
	return append([]byte(nil), c.frames[len(c.frames)-1]...)
}

// Reset discards everything recorded so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = nil
	c.frames = nil
}

// LastWindow decodes the most recent addressing window declaration
// (commands 0x2A and 0x2B with four parameter bytes each). ok is false if
// no complete declaration was recorded.
func (c *Capture) LastWindow() (x0, x1, y0, y1 uint16, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var haveX, haveY bool
	for i := 0; i < len(c.ops); i++ {
		op := c.ops[i]
		if op.Kind != OpCommand || (op.Byte != 0x2A && op.Byte != 0x2B) {
			continue
		}
		if i+4 >= len(c.ops) {
			break
		}
		var args [4]byte
		valid := true
		for j := 0; j < 4; j++ {
			a := c.ops[i+1+j]
			if a.Kind != OpData {
				valid = false
				break
			}
			args[j] = a.Byte
		}
		if !valid {
			continue
		}
		lo := uint16(args[0])<<8 | uint16(args[1])
		hi := uint16(args[2])<<8 | uint16(args[3])
		if op.Byte == 0x2A {
			x0, x1, haveX = lo, hi, true
		} else {
			y0, y1, haveY = lo, hi, true
		}
	}
	return x0, x1, y0, y1, haveX && haveY
}

// NewHostLogger returns a Logger writing to stderr, the diagnostic stream
// for dimension mismatch reports on the host.
func NewHostLogger() Logger {
	return &hostLogger{w: os.Stderr}
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
