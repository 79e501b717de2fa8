package font

import (
	"testing"
)

func TestStandardGeometry(t *testing.T) {
	g := Standard()

	if g.Width != 16 || g.Height != 16 {
		t.Errorf("size = %dx%d, want 16x16", g.Width, g.Height)
	}
	if g.BytesPerGlyph != 32 {
		t.Errorf("BytesPerGlyph = %d, want 32", g.BytesPerGlyph)
	}
	if g.BytesPerRow() != 2 {
		t.Errorf("BytesPerRow = %d, want 2", g.BytesPerRow())
	}
	if g.TotalGlyphs() != 360 {
		t.Errorf("TotalGlyphs = %d, want 360", g.TotalGlyphs())
	}
	if g.ExpectedSize() != 11520 {
		t.Errorf("ExpectedSize = %d, want 11520", g.ExpectedSize())
	}
}

func TestStandardIsIndependentCopy(t *testing.T) {
	g := Standard()
	g.BytesPerGlyph = 1
	if Standard().BytesPerGlyph != 32 {
		t.Fatal("modifying a Geometry value changed Standard()")
	}
}

func TestSectionLayout(t *testing.T) {
	tests := []struct {
		section Section
		slots   int
		buls    int
		offset  int
		last    int
	}{
		{Cho, 20, 8, 0, 159},
		{Jung, 22, 4, 160, 247},
		{Jong, 28, 4, 248, 359},
	}

	g := Standard()
	for _, tt := range tests {
		t.Run(tt.section.String(), func(t *testing.T) {
			if got := g.Slots(tt.section); got != tt.slots {
				t.Errorf("Slots = %d, want %d", got, tt.slots)
			}
			if got := g.Buls(tt.section); got != tt.buls {
				t.Errorf("Buls = %d, want %d", got, tt.buls)
			}
			if got := g.Offset(tt.section); got != tt.offset {
				t.Errorf("Offset = %d, want %d", got, tt.offset)
			}
			first, last := g.SectionRange(tt.section)
			if first != tt.offset || last != tt.last {
				t.Errorf("SectionRange = %d..%d, want %d..%d", first, last, tt.offset, tt.last)
			}
		})
	}
}

func TestUnknownSection(t *testing.T) {
	g := Standard()
	s := Section(7)

	if s.Valid() {
		t.Error("Section(7) should be invalid")
	}
	if s.String() != "unknown" {
		t.Errorf("String = %q, want unknown", s.String())
	}
	if g.Offset(s) != -1 {
		t.Errorf("Offset = %d, want -1", g.Offset(s))
	}
	if _, ok := g.Index(s, 0, 0); ok {
		t.Error("Index should reject unknown section")
	}
}

func TestIndex(t *testing.T) {
	g := Standard()

	tests := []struct {
		section Section
		bul     int
		slot    int
		want    int
		ok      bool
	}{
		{Cho, 0, 0, 0, true},
		{Cho, 1, 0, 20, true},
		{Cho, 7, 19, 159, true},
		{Jung, 0, 0, 160, true},
		{Jung, 2, 5, 160 + 44 + 5, true},
		{Jong, 3, 27, 359, true},
		{Cho, 8, 0, 0, false},
		{Cho, 0, 20, 0, false},
		{Jung, 4, 0, 0, false},
		{Jung, 0, 22, 0, false},
		{Jong, 4, 0, 0, false},
		{Jong, 0, 28, 0, false},
		{Jong, -1, 0, 0, false},
		{Cho, 0, -1, 0, false},
	}

	for _, tt := range tests {
		got, ok := g.Index(tt.section, tt.bul, tt.slot)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Index(%s, %d, %d) = %d, %v; want %d, %v",
				tt.section, tt.bul, tt.slot, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLocateInvertsIndex(t *testing.T) {
	g := Standard()
	seen := 0
	for _, s := range Sections() {
		for bul := 0; bul < g.Buls(s); bul++ {
			for slot := 0; slot < g.Slots(s); slot++ {
				index, ok := g.Index(s, bul, slot)
				if !ok {
					t.Fatalf("Index(%s, %d, %d) rejected", s, bul, slot)
				}
				if index != seen {
					t.Fatalf("Index(%s, %d, %d) = %d, want %d (file order)", s, bul, slot, index, seen)
				}
				gs, gb, gslot, ok := g.Locate(index)
				if !ok || gs != s || gb != bul || gslot != slot {
					t.Fatalf("Locate(%d) = %s %d %d %v, want %s %d %d", index, gs, gb, gslot, ok, s, bul, slot)
				}
				seen++
			}
		}
	}
	if seen != g.TotalGlyphs() {
		t.Errorf("visited %d glyphs, want %d", seen, g.TotalGlyphs())
	}

	for _, index := range []int{-1, 360, 1000} {
		if _, _, _, ok := g.Locate(index); ok {
			t.Errorf("Locate(%d) should fail", index)
		}
	}
}
