package font

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// Slot 0 of every section is blank; the remaining slots follow the order of
// the Unicode conjoining jamo blocks.
var (
	choNames = []string{
		"empty", "g", "gg", "n", "d", "dd", "r", "m", "b", "bb",
		"s", "ss", "ng", "j", "jj", "ch", "k", "t", "p", "h",
	}
	jungNames = []string{
		"empty", "a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu",
		"ui", "i",
	}
	jongNames = []string{
		"empty", "g", "gg", "gs", "n", "nj", "nh", "d", "r", "rg",
		"rm", "rb", "rs", "rt", "rp", "rh", "m", "b", "bs", "s",
		"ss", "ng", "j", "ch", "k", "t", "p", "h",
	}

	jamoBase = [3]rune{
		Cho:  0x1100,
		Jung: 0x1161,
		Jong: 0x11A8,
	}
)

func slotNames(s Section) []string {
	switch s {
	case Cho:
		return choNames
	case Jung:
		return jungNames
	case Jong:
		return jongNames
	}
	return nil
}

// SlotName returns the romanised name of a character slot, "empty" for the
// reserved slot and "" for slots outside the section.
func SlotName(s Section, slot int) string {
	names := slotNames(s)
	if slot < 0 || slot >= len(names) {
		return ""
	}
	return names[slot]
}

// SlotRune returns the conjoining jamo drawn in a slot. Reserved and
// unknown slots report false.
func SlotRune(s Section, slot int) (rune, bool) {
	names := slotNames(s)
	if slot <= 0 || slot >= len(names) {
		return 0, false
	}
	return jamoBase[s] + rune(slot-1), true
}

// SlotDescription returns a human-readable label such as
// "cho 1 g (ᄀ HANGUL CHOSEONG KIYEOK)".
func SlotDescription(s Section, slot int) string {
	name := SlotName(s, slot)
	if name == "" {
		return fmt.Sprintf("%s %d", s, slot)
	}
	r, ok := SlotRune(s, slot)
	if !ok {
		return fmt.Sprintf("%s %d %s", s, slot, name)
	}
	return fmt.Sprintf("%s %d %s (%c %s)", s, slot, name, r, runenames.Name(r))
}
