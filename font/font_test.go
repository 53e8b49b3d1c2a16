package font

import (
	"errors"
	"testing"
)

func TestTableDataLengths(t *testing.T) {
	cases := []struct {
		tab  *Table
		want int
	}{
		{Font6x12, 95 * 12},
		{Font8x16, 95 * 16},
		{Font16x16, 11 * 32},
		{Font16x32, 11 * 64},
	}
	for _, c := range cases {
		if got := len(c.tab.data); got != c.want {
			t.Fatalf("%s: data length = %d, want %d", c.tab.Name(), got, c.want)
		}
	}
}

func TestGlyphLookup(t *testing.T) {
	g, err := Font8x16.Glyph('A')
	if err != nil {
		t.Fatalf("Glyph('A'): %v", err)
	}
	if len(g) != Font8x16.EntryLen() {
		t.Fatalf("len(Glyph('A')) = %d, want %d", len(g), Font8x16.EntryLen())
	}

	// Space must be an all-blank entry.
	sp, err := Font6x12.Glyph(' ')
	if err != nil {
		t.Fatalf("Glyph(' '): %v", err)
	}
	for i, b := range sp {
		if b != 0 {
			t.Fatalf("space glyph byte %d = %#x, want 0", i, b)
		}
	}
}

func TestGlyphBounds(t *testing.T) {
	if _, err := Font8x16.Glyph(0x1F); !errors.Is(err, ErrNoGlyph) {
		t.Fatalf("Glyph(0x1f) err = %v, want ErrNoGlyph", err)
	}
	if _, err := Font8x16.Glyph(0x7F); !errors.Is(err, ErrNoGlyph) {
		t.Fatalf("Glyph(0x7f) err = %v, want ErrNoGlyph", err)
	}
	if _, err := Font8x16.Glyph('~'); err != nil {
		t.Fatalf("Glyph('~') err = %v, want nil", err)
	}

	if _, err := Font16x16.Glyph('/'); !errors.Is(err, ErrNoGlyph) {
		t.Fatalf("numeric Glyph('/') err = %v, want ErrNoGlyph", err)
	}
	if _, err := Font16x32.Glyph(':'); err != nil {
		t.Fatalf("numeric Glyph(':') err = %v, want nil", err)
	}
	if Font16x16.Covers(';') {
		t.Fatal("Covers(';') = true, want false")
	}
}

func TestForSize(t *testing.T) {
	if tab, ok := ForSize(12); !ok || tab != Font6x12 {
		t.Fatalf("ForSize(12) = %v, %v", tab, ok)
	}
	if tab, ok := ForSize(16); !ok || tab != Font8x16 {
		t.Fatalf("ForSize(16) = %v, %v", tab, ok)
	}
	if _, ok := ForSize(24); ok {
		t.Fatal("ForSize(24) ok = true, want false")
	}
}
