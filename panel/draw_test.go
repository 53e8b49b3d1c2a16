package panel

import (
	"errors"
	"testing"

	"ertft/fb"
	"ertft/font"
	"ertft/hal"
)

func testDevice(w, h int) (*Device, *hal.Capture) {
	tr := hal.NewCapture()
	d := New(tr, Config{Width: w, Height: h, ColOffset: 0x12, RowOffset: 0x52})
	return d, tr
}

// decodeEntry walks a packed glyph entry the way the table format defines
// it: each byte fills up to eight rows of one column, top bit first.
func decodeEntry(entry []byte, height int) [][]bool {
	bytesPerCol := (height + 7) / 8
	width := len(entry) / bytesPerCol
	px := make([][]bool, height)
	for i := range px {
		px[i] = make([]bool, width)
	}
	col, row := 0, 0
	for _, b := range entry {
		for j := 0; j < 8; j++ {
			px[row][col] = b&0x80 != 0
			b <<= 1
			row++
			if row == height {
				row = 0
				col++
				break
			}
		}
	}
	return px
}

func TestDrawCharMatchesTable(t *testing.T) {
	d, _ := testDevice(16, 16)
	d.Framebuffer().Fill(0x1111)

	const fg = 0xF800
	if err := d.DrawChar(0, 0, 'A', font.Font8x16, ModeOpaque, fg); err != nil {
		t.Fatalf("DrawChar: %v", err)
	}

	entry, err := font.Font8x16.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph: %v", err)
	}
	px := decodeEntry(entry, 16)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint16(0x1111) // outside the glyph cell
			if x < 8 {
				want = 0 // background erased
				if px[y][x] {
					want = fg
				}
			}
			if got := d.Framebuffer().Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawCharReverse(t *testing.T) {
	d, _ := testDevice(8, 16)

	const fg = 0x07E0
	if err := d.DrawChar(0, 0, '!', font.Font8x16, ModeReverse, fg); err != nil {
		t.Fatalf("DrawChar: %v", err)
	}

	entry, _ := font.Font8x16.Glyph('!')
	px := decodeEntry(entry, 16)

	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := fg
			if px[y][x] {
				want = 0
			}
			if got := d.Framebuffer().Pixel(x, y); got != uint16(want) {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawCharUnknownCode(t *testing.T) {
	d, _ := testDevice(16, 16)
	d.Framebuffer().Fill(0x2222)
	before := d.Framebuffer().Pixel(0, 0)

	err := d.DrawChar(0, 0, 0x05, font.Font8x16, ModeOpaque, 0xFFFF)
	if !errors.Is(err, font.ErrNoGlyph) {
		t.Fatalf("DrawChar err = %v, want ErrNoGlyph", err)
	}
	if got := d.Framebuffer().Pixel(0, 0); got != before {
		t.Fatal("failed DrawChar touched the framebuffer")
	}
}

func TestDrawChar32Numeric(t *testing.T) {
	d, _ := testDevice(16, 32)

	if err := d.DrawChar32(0, 0, '7', 0xFFFF); err != nil {
		t.Fatalf("DrawChar32: %v", err)
	}
	if err := d.DrawChar32(0, 0, 'x', 0xFFFF); !errors.Is(err, font.ErrNoGlyph) {
		t.Fatalf("DrawChar32('x') err = %v, want ErrNoGlyph", err)
	}

	entry, _ := font.Font16x32.Glyph('7')
	px := decodeEntry(entry, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 16; x++ {
			want := uint16(0)
			if px[y][x] {
				want = 0xFFFF
			}
			if got := d.Framebuffer().Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawStringAdvance(t *testing.T) {
	d, _ := testDevice(64, 16)

	if err := d.DrawString(0, 0, "AB", 16, ModeOpaque, 0xFFFF); err != nil {
		t.Fatalf("DrawString: %v", err)
	}

	entry, _ := font.Font8x16.Glyph('B')
	px := decodeEntry(entry, 16)
	// The pen advances size/2, so 'B' starts at x=8.
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if px[y][x] {
				want = 0xFFFF
			}
			if got := d.Framebuffer().Pixel(8+x, y); got != want {
				t.Fatalf("'B' pixel (%d,%d) = %#x, want %#x", 8+x, y, got, want)
			}
		}
	}
}

func TestDrawStringWrapsAtRightEdge(t *testing.T) {
	d, _ := testDevice(24, 40)

	// x=20 > 24-8, so the pen wraps to (0,16) before drawing.
	if err := d.DrawString(20, 0, "A", 16, ModeOpaque, 0xFFFF); err != nil {
		t.Fatalf("DrawString: %v", err)
	}

	entry, _ := font.Font8x16.Glyph('A')
	px := decodeEntry(entry, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if px[y][x] {
				want = 0xFFFF
			}
			if got := d.Framebuffer().Pixel(x, 16+y); got != want {
				t.Fatalf("wrapped pixel (%d,%d) = %#x, want %#x", x, 16+y, got, want)
			}
		}
	}
	// The original line stays untouched.
	for x := 0; x < 24; x++ {
		if got := d.Framebuffer().Pixel(x, 0); got != 0 {
			t.Fatalf("pixel (%d,0) = %#x, want 0", x, got)
		}
	}
}

func TestDrawStringWrapsBackToTop(t *testing.T) {
	d, _ := testDevice(24, 20)

	// Wrapping advances y to 16 > 20-16, so both coordinates reset to 0.
	if err := d.DrawString(20, 0, "A", 16, ModeOpaque, 0xFFFF); err != nil {
		t.Fatalf("DrawString: %v", err)
	}

	entry, _ := font.Font8x16.Glyph('A')
	px := decodeEntry(entry, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if px[y][x] {
				want = 0xFFFF
			}
			if got := d.Framebuffer().Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawStringFallbackGlyph(t *testing.T) {
	d, _ := testDevice(16, 16)
	if err := d.DrawString(0, 0, "\x01", 16, ModeOpaque, 0xFFFF); err != nil {
		t.Fatalf("DrawString: %v", err)
	}

	entry, _ := font.Font8x16.Glyph('?')
	px := decodeEntry(entry, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if px[y][x] {
				want = 0xFFFF
			}
			if got := d.Framebuffer().Pixel(x, y); got != want {
				t.Fatalf("fallback pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawStringUnknownSize(t *testing.T) {
	d, _ := testDevice(16, 16)
	if err := d.DrawString(0, 0, "A", 24, ModeOpaque, 0xFFFF); err == nil {
		t.Fatal("DrawString(size=24) err = nil, want error")
	}
}

func TestDrawMonoBitmap(t *testing.T) {
	d, _ := testDevice(8, 8)
	d.Framebuffer().Fill(0x0101)

	// 5x2, one byte-aligned row byte each: 10100000 / 01000000.
	bits := []byte{0xA0, 0x40}
	if err := d.DrawMonoBitmap(1, 1, bits, 5, 2, 0xF800); err != nil {
		t.Fatalf("DrawMonoBitmap: %v", err)
	}

	set := map[[2]int]bool{{1, 1}: true, {3, 1}: true, {2, 2}: true}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0x0101)
			if set[[2]int{x, y}] {
				want = 0xF800
			}
			if got := d.Framebuffer().Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawMonoBitmapShortInput(t *testing.T) {
	d, _ := testDevice(8, 8)
	if err := d.DrawMonoBitmap(0, 0, []byte{0xFF}, 16, 2, 0xFFFF); err == nil {
		t.Fatal("short mono bitmap err = nil, want error")
	}
}

func TestDrawRGBBitmapFlipsVertically(t *testing.T) {
	d, _ := testDevice(4, 4)

	// Source is stored bottom-to-top: row 0 red/green, row 1 blue/white.
	rgb := []byte{
		0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00,
		0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	if err := d.DrawRGBBitmap(0, 0, rgb, 2, 2); err != nil {
		t.Fatalf("DrawRGBBitmap: %v", err)
	}

	// Source row 0 lands on target row 1, source row 1 on target row 0.
	if got := d.Framebuffer().Pixel(0, 1); got != fb.Red {
		t.Fatalf("pixel (0,1) = %#x, want red", got)
	}
	if got := d.Framebuffer().Pixel(1, 1); got != fb.Green {
		t.Fatalf("pixel (1,1) = %#x, want green", got)
	}
	if got := d.Framebuffer().Pixel(0, 0); got != fb.Blue {
		t.Fatalf("pixel (0,0) = %#x, want blue", got)
	}
	if got := d.Framebuffer().Pixel(1, 0); got != fb.White {
		t.Fatalf("pixel (1,0) = %#x, want white", got)
	}
}

func TestDrawRGBBitmapShortInput(t *testing.T) {
	d, _ := testDevice(4, 4)
	if err := d.DrawRGBBitmap(0, 0, []byte{1, 2, 3}, 2, 2); err == nil {
		t.Fatal("short rgb bitmap err = nil, want error")
	}
}

func TestDrawPastEdgeClipsSilently(t *testing.T) {
	d, _ := testDevice(4, 4)
	d.Framebuffer().Fill(0x3333)

	// A 16-tall glyph at (2,2) on a 4x4 panel mostly lands outside; the
	// off-panel portion clips silently and only the in-range corner of the
	// cell is written.
	if err := d.DrawChar(2, 2, 'W', font.Font8x16, ModeOpaque, 0xFFFF); err != nil {
		t.Fatalf("DrawChar: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inCell := x >= 2 && y >= 2
			got := d.Framebuffer().Pixel(x, y)
			if !inCell && got != 0x3333 {
				t.Fatalf("pixel (%d,%d) = %#x, want untouched 0x3333", x, y, got)
			}
			if inCell && got == 0x3333 {
				t.Fatalf("pixel (%d,%d) untouched, want drawn", x, y)
			}
		}
	}
}
