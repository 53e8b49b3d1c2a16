// Package font holds the packed bitmap glyph tables for the panel.
//
// Entries are column-major packed: each byte covers up to eight consecutive
// rows within one column, most significant bit topmost, and a column spans
// ceil(height/8) bytes. A 12-tall column leaves the low four bits of its
// second byte unused.
package font

import "errors"

var ErrNoGlyph = errors.New("font: no glyph for character")

// Table is one fixed-size glyph table.
type Table struct {
	name     string
	height   int
	width    int
	entryLen int
	base     byte
	count    int
	data     []byte
}

func (t *Table) Name() string { return t.name }

// Height is the glyph pixel height.
func (t *Table) Height() int { return t.height }

// Width is the glyph pixel width.
func (t *Table) Width() int { return t.width }

// EntryLen is the fixed byte length of one glyph entry.
func (t *Table) EntryLen() int { return t.entryLen }

// Covers reports whether the table has an entry for ch.
func (t *Table) Covers(ch byte) bool {
	return ch >= t.base && int(ch)-int(t.base) < t.count
}

// Glyph returns the packed entry for ch. Codes outside the table's range
// are an error, never an out-of-bounds read.
func (t *Table) Glyph(ch byte) ([]byte, error) {
	if !t.Covers(ch) {
		return nil, ErrNoGlyph
	}
	off := (int(ch) - int(t.base)) * t.entryLen
	return t.data[off : off+t.entryLen], nil
}

var (
	// Font6x12 and Font8x16 cover printable ASCII (' ' through '~').
	Font6x12 = &Table{name: "6x12", height: 12, width: 6, entryLen: 12, base: ' ', count: 95, data: font6x12Data[:]}
	Font8x16 = &Table{name: "8x16", height: 16, width: 8, entryLen: 16, base: ' ', count: 95, data: font8x16Data[:]}

	// Font16x16 and Font16x32 cover '0' through ':' for numeric readouts.
	Font16x16 = &Table{name: "16x16", height: 16, width: 16, entryLen: 32, base: '0', count: 11, data: font16x16Data[:]}
	Font16x32 = &Table{name: "16x32", height: 32, width: 16, entryLen: 64, base: '0', count: 11, data: font16x32Data[:]}
)

// ForSize returns the general ASCII table with the given pixel height.
func ForSize(size int) (*Table, bool) {
	switch size {
	case 12:
		return Font6x12, true
	case 16:
		return Font8x16, true
	}
	return nil, false
}
