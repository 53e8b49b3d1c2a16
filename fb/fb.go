// Package fb implements the in-memory pixel store for the panel: a fixed
// 16bpp RGB565 buffer with silent edge clipping, stored in the byte order
// the panel consumes on the wire.
package fb

// Framebuffer is a fixed-size RGB565 pixel buffer. The layout is row-major,
// two bytes per pixel, high byte first. A Framebuffer is created once at
// the panel's logical size and never reallocated.
type Framebuffer struct {
	width  int
	height int
	buf    []byte
}

func New(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
	}
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) StrideBytes() int { return f.width * 2 }

// Bytes returns the backing buffer in wire order. Callers must not resize
// or retain it across a reallocation (there are none).
func (f *Framebuffer) Bytes() []byte { return f.buf }

// SetPixel writes one packed pixel. Coordinates outside the panel are
// ignored rather than reported, so rendering loops may run past the edge
// without special-casing bounds.
func (f *Framebuffer) SetPixel(x, y int, c uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.width*2 + x*2
	f.buf[off] = byte(c >> 8)
	f.buf[off+1] = byte(c)
}

// Pixel reads back one packed pixel. Out-of-range coordinates read as 0.
func (f *Framebuffer) Pixel(x, y int) uint16 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	off := y*f.width*2 + x*2
	return uint16(f.buf[off])<<8 | uint16(f.buf[off+1])
}

// Clear zero-fills the buffer (packed color 0).
func (f *Framebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c uint16) {
	hi := byte(c >> 8)
	lo := byte(c)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = hi
		f.buf[i+1] = lo
	}
}
