// Package font decodes the fixed layout of EasyView .han Hangul bitmap fonts.
//
// A .han file has no header. It is a flat run of 16x16 one-bit glyphs,
// 32 bytes each (two bytes per row, most significant bit leftmost), grouped
// into three sections:
//
//	cho   8 bul x 20 slots  glyphs   0..159
//	jung  4 bul x 22 slots  glyphs 160..247
//	jong  4 bul x 28 slots  glyphs 248..359
//
// Within a variant (bul), slots follow jamo order with slot 0 left blank.
//
// # Loading
//
//	blob, err := font.Load("Apple_kr.han")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A file of the wrong length still loads. The mismatch is logged through
// Logger and reported by Blob.SizeMismatch.
//
// # Addressing
//
//	g, ok := blob.GlyphAt(170)        // flat index
//	g, ok = blob.Jung(0, 10)          // section, bul, slot
//	g, err := blob.Glyph(170)         // strict: errors on a short blob
package font
