package font

// Section identifies one of the three phoneme classes of a .han font.
type Section int

const (
	Cho  Section = iota // leading consonant
	Jung                // vowel
	Jong                // trailing consonant
)

// Sections lists the phoneme classes in file order.
func Sections() []Section {
	return []Section{Cho, Jung, Jong}
}

func (s Section) String() string {
	switch s {
	case Cho:
		return "cho"
	case Jung:
		return "jung"
	case Jong:
		return "jong"
	}
	return "unknown"
}

// Valid reports whether s names a known section.
func (s Section) Valid() bool {
	return s >= Cho && s <= Jong
}

// SectionLayout is the slot and variant count of one section.
type SectionLayout struct {
	Slots int // characters per variant, reserved empty slots included
	Buls  int // font-style variants
}

// Glyphs returns the number of glyph records in the section.
func (l SectionLayout) Glyphs() int {
	return l.Slots * l.Buls
}

// Geometry describes the fixed record layout of a .han font.
// It is a plain value: every caller works on its own copy.
type Geometry struct {
	Width         int
	Height        int
	BytesPerGlyph int
	layouts       [3]SectionLayout
}

// Standard returns the geometry of the 8x4x4 bul EasyView .han format.
func Standard() Geometry {
	return Geometry{
		Width:         16,
		Height:        16,
		BytesPerGlyph: 32,
		layouts: [3]SectionLayout{
			Cho:  {Slots: 20, Buls: 8},
			Jung: {Slots: 22, Buls: 4},
			Jong: {Slots: 28, Buls: 4},
		},
	}
}

// Layout returns the slot and variant counts of s.
// Unknown sections have an empty layout.
func (g Geometry) Layout(s Section) SectionLayout {
	if !s.Valid() {
		return SectionLayout{}
	}
	return g.layouts[s]
}

// Slots returns the number of character slots per variant of s.
func (g Geometry) Slots(s Section) int {
	return g.Layout(s).Slots
}

// Buls returns the number of variants of s.
func (g Geometry) Buls(s Section) int {
	return g.Layout(s).Buls
}

// BytesPerRow returns the number of bytes encoding one pixel row.
func (g Geometry) BytesPerRow() int {
	return (g.Width + 7) / 8
}

// Offset returns the flat index of the first glyph of s.
// Unknown sections return -1.
func (g Geometry) Offset(s Section) int {
	if !s.Valid() {
		return -1
	}
	off := 0
	for t := Cho; t < s; t++ {
		off += g.layouts[t].Glyphs()
	}
	return off
}

// SectionRange returns the first and last flat index of s.
func (g Geometry) SectionRange(s Section) (first, last int) {
	first = g.Offset(s)
	return first, first + g.Layout(s).Glyphs() - 1
}

// TotalGlyphs returns the number of glyph records in a complete font.
func (g Geometry) TotalGlyphs() int {
	n := 0
	for _, l := range g.layouts {
		n += l.Glyphs()
	}
	return n
}

// ExpectedSize returns the byte length of a complete font file.
func (g Geometry) ExpectedSize() int {
	return g.TotalGlyphs() * g.BytesPerGlyph
}

// Index returns the flat glyph index of (s, bul, slot), or false when the
// address is outside the section.
func (g Geometry) Index(s Section, bul, slot int) (int, bool) {
	l := g.Layout(s)
	if bul < 0 || bul >= l.Buls || slot < 0 || slot >= l.Slots {
		return 0, false
	}
	return g.Offset(s) + bul*l.Slots + slot, true
}

// Locate is the inverse of Index.
func (g Geometry) Locate(index int) (s Section, bul, slot int, ok bool) {
	if index < 0 || index >= g.TotalGlyphs() {
		return 0, 0, 0, false
	}
	for _, s := range Sections() {
		first, last := g.SectionRange(s)
		if index > last {
			continue
		}
		rel := index - first
		l := g.layouts[s]
		return s, rel / l.Slots, rel % l.Slots, true
	}
	return 0, 0, 0, false
}
