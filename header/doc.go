// Package header renders a loaded .han font as a C/C++ header for firmware
// builds.
//
// The generated header holds the glyph data as a const uint8_t array, the
// font geometry as #defines prefixed with the upper-cased font name, a
// HangulFontInfo record, and four accessors:
//
//	<name>_getGlyph(index)
//	<name>_getCho(bul, index)
//	<name>_getJung(bul, index)
//	<name>_getJong(bul, index)
//
// Each accessor returns a null pointer for an address outside the font.
//
// # Usage
//
//	blob, _ := font.Load("Apple_kr.han")
//	n, err := header.WriteFile("Apple_kr.h", blob, header.Options{
//	    Target:    header.TargetArduino,
//	    Generated: time.Now(),
//	})
//
// FormatArray and ParseArray convert between bytes and the array body;
// ExtractBitmap reads the data back out of a generated header.
package header
