package header

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/font"
)

func emitString(t *testing.T, blob *font.Blob, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Emit(&buf, blob, opts); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	return buf.String()
}

func TestEmitZeroFont(t *testing.T) {
	blob := font.LoadBytes("Apple_kr.han", make([]byte, 11520))
	out := emitString(t, blob, Options{})

	wants := []string{
		"Apple_kr - Korean Hangul Font for Arduino/ESP32",
		"Converted from EasyView font file: Apple_kr",
		"Glyph Size: 16x16 pixels",
		"Total Glyphs: 360",
		"Total Size: 11520 bytes",
		"Cho (초성): 0~159 (20 chars x 8 bul)",
		"Jung (중성): 160~247 (22 chars x 4 bul)",
		"Jong (종성): 248~359 (28 chars x 4 bul)",
		"#ifndef APPLE_KR_H\n#define APPLE_KR_H\n",
		"#include <Arduino.h>",
		"#define APPLE_KR_WIDTH 16\n",
		"#define APPLE_KR_HEIGHT 16\n",
		"#define APPLE_KR_BYTES_PER_GLYPH 32\n",
		"#define APPLE_KR_TOTAL_GLYPHS 360\n",
		"#define APPLE_KR_CHO_OFFSET 0\n",
		"#define APPLE_KR_JUNG_OFFSET 160\n",
		"#define APPLE_KR_JONG_OFFSET 248\n",
		"#define APPLE_KR_CHO_COUNT 20\n",
		"#define APPLE_KR_CHO_BUL 8\n",
		"#define APPLE_KR_JUNG_COUNT 22\n",
		"#define APPLE_KR_JUNG_BUL 4\n",
		"#define APPLE_KR_JONG_COUNT 28\n",
		"#define APPLE_KR_JONG_BUL 4\n",
		"const uint8_t Apple_kr_Bitmaps[] PROGMEM = {",
		"} HangulFontInfo;",
		"const HangulFontInfo Apple_kr_Info PROGMEM = {\n  Apple_kr_Bitmaps,\n  16,\n  16,\n  32,\n  360,\n  0,\n  160,\n  248\n};",
		"inline const uint8_t* Apple_kr_getGlyph(uint16_t index) {",
		"inline const uint8_t* Apple_kr_getCho(uint8_t bul, uint8_t index) {",
		"inline const uint8_t* Apple_kr_getJung(uint8_t bul, uint8_t index) {",
		"inline const uint8_t* Apple_kr_getJong(uint8_t bul, uint8_t index) {",
		"if (bul >= APPLE_KR_JUNG_BUL || index >= APPLE_KR_JUNG_COUNT) return nullptr;",
		"uint16_t glyphIndex = APPLE_KR_JONG_OFFSET + bul * APPLE_KR_JONG_COUNT + index;",
		"#endif // APPLE_KR_H\n",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("header missing %q", w)
		}
	}
	if strings.Contains(out, "Generated:") {
		t.Error("zero Generated time should omit the line")
	}

	data, err := ExtractBitmap(out, "Apple_kr")
	if err != nil {
		t.Fatalf("ExtractBitmap: %v", err)
	}
	if diff := cmp.Diff(make([]byte, 11520), data); diff != "" {
		t.Errorf("bitmap (-want +got):\n%s", diff)
	}
}

func TestEmitUndersized(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i)
	}
	blob := font.LoadBytes("short", data)
	out := emitString(t, blob, Options{})

	got, err := ExtractBitmap(out, "short")
	if err != nil {
		t.Fatalf("ExtractBitmap: %v", err)
	}
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("bitmap (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, "Total Size: 100 bytes") {
		t.Error("documentation block should report the actual data size")
	}
	if !strings.Contains(out, "#define SHORT_TOTAL_GLYPHS 360") {
		t.Error("geometry defines should not shrink with the data")
	}
}

func TestEmitPlainTarget(t *testing.T) {
	blob := font.LoadBytes("f", make([]byte, 64))
	out := emitString(t, blob, Options{
		Target:       TargetPlain,
		BytesPerLine: 16,
		Generated:    time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC),
	})

	for _, w := range []string{
		"#include <stdint.h>\n#include <stddef.h>",
		"const uint8_t f_Bitmaps[] = {",
		"static inline const uint8_t* f_getCho(uint8_t bul, uint8_t index) {",
		"return NULL;",
		"Generated: 2024-03-05 14:07:09",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("header missing %q", w)
		}
	}
	for _, bad := range []string{"PROGMEM", "Arduino.h", "nullptr"} {
		if strings.Contains(out, bad) {
			t.Errorf("plain header contains %q", bad)
		}
	}
	if n := strings.Count(out, "0x00"); n != 64 {
		t.Errorf("got %d literals, want 64", n)
	}
	if !strings.Contains(out, "{\n  "+strings.Repeat("0x00, ", 15)+"0x00,\n") {
		t.Error("expected 16 literals per line")
	}
}

func TestEmitOptionsValidation(t *testing.T) {
	blob := font.LoadBytes("f", nil)

	err := Emit(&bytes.Buffer{}, blob, Options{Target: "avr"})
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("bad target err = %v, want invalid_input", err)
	}

	err = Emit(&bytes.Buffer{}, blob, Options{Name: "my font"})
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("bad name err = %v, want invalid_input", err)
	}
}

func TestEmitNameOverride(t *testing.T) {
	blob := font.LoadBytes("1 글꼴.han", make([]byte, 32))

	out := emitString(t, blob, Options{})
	if !strings.Contains(out, "const uint8_t _1____Bitmaps[]") {
		t.Errorf("derived name not sanitised:\n%s", out[:200])
	}

	out = emitString(t, blob, Options{Name: "Gulim"})
	if !strings.Contains(out, "Gulim_getJong(") || !strings.Contains(out, "#define GULIM_H") {
		t.Error("explicit name not used")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zero.h")
	blob := font.LoadBytes("zero", make([]byte, 11520))

	n, err := WriteFile(path, blob, Options{})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if n != len(written) {
		t.Errorf("WriteFile returned %d, file has %d bytes", n, len(written))
	}
	if !bytes.Contains(written, []byte("zero_getJung")) {
		t.Error("written header incomplete")
	}
}

func TestWriteFileFailures(t *testing.T) {
	dir := t.TempDir()
	blob := font.LoadBytes("zero", make([]byte, 32))

	path := filepath.Join(dir, "missing", "out.h")
	_, err := WriteFile(path, blob, Options{})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEmit, Kind: errors.KindIOFailure}) {
		t.Errorf("err = %v, want emit io_failure", err)
	}

	path = filepath.Join(dir, "bad.h")
	if _, err := WriteFile(path, blob, Options{Target: "avr"}); err == nil {
		t.Fatal("WriteFile should fail on a bad target")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed render should not create the output file")
	}
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"Apple_kr":  "Apple_kr",
		"han-16x16": "han_16x16",
		"8bul":      "_8bul",
		"":          "font",
		"굴림":        "__",
	}
	for in, want := range tests {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := map[string]string{
		"Apple_kr.han":           "Apple_kr.h",
		filepath.Join("a", "b.han"): filepath.Join("a", "b.h"),
		"noext":                  "noext.h",
	}
	for in, want := range tests {
		if got := DefaultOutputPath(in); got != want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTarget(t *testing.T) {
	for in, want := range map[string]Target{"": TargetArduino, "Arduino": TargetArduino, " plain ": TargetPlain} {
		got, err := ParseTarget(in)
		if err != nil || got != want {
			t.Errorf("ParseTarget(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseTarget("avr"); err == nil {
		t.Error("ParseTarget(avr) should fail")
	}
}
