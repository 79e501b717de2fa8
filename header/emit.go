package header

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/font"
)

var headerTemplate = template.Must(template.New("header").Parse(`/**
 * {{.Name}} - Korean Hangul Font for {{.Platform}}
 *
 * Converted from EasyView font file: {{.Source}}
{{- if .Generated}}
 * Generated: {{.Generated}}
{{- end}}
 *
 * Font Structure:
 * - Glyph Size: {{.Width}}x{{.Height}} pixels
 * - Bytes per Glyph: {{.BytesPerGlyph}} bytes
 * - Total Glyphs: {{.TotalGlyphs}}
 * - Total Size: {{.DataSize}} bytes
 *
 * Glyph Layout:
{{- range .Sections}}
 * - {{.Title}} ({{.Korean}}): {{.First}}~{{.Last}} ({{.Slots}} chars x {{.Buls}} bul)
{{- end}}
 */

#ifndef {{.Guard}}
#define {{.Guard}}
{{range .Includes}}
#include <{{.}}>
{{- end}}

// Font constants
#define {{.Upper}}_WIDTH {{.Width}}
#define {{.Upper}}_HEIGHT {{.Height}}
#define {{.Upper}}_BYTES_PER_GLYPH {{.BytesPerGlyph}}
#define {{.Upper}}_TOTAL_GLYPHS {{.TotalGlyphs}}
{{range .Sections}}
#define {{$.Upper}}_{{.Upper}}_OFFSET {{.Offset}}
{{- end}}
{{range .Sections}}
#define {{$.Upper}}_{{.Upper}}_COUNT {{.Slots}}
#define {{$.Upper}}_{{.Upper}}_BUL {{.Buls}}
{{- end}}

// Font bitmap data (MSB first, {{.Width}}x{{.Height}} pixels, {{.BytesPerGlyph}} bytes per glyph)
const uint8_t {{.Name}}_Bitmaps[]{{.Progmem}} = {
{{.Bitmap}}
};

#ifndef HANGUL_FONT_INFO_DEFINED
#define HANGUL_FONT_INFO_DEFINED
// Font info structure
typedef struct {
  const uint8_t *bitmap;      // Pointer to bitmap data
  uint8_t width;              // Glyph width in pixels
  uint8_t height;             // Glyph height in pixels
  uint8_t bytesPerGlyph;      // Bytes per glyph
  uint16_t totalGlyphs;       // Total number of glyphs
  uint8_t choOffset;          // Cho section offset
  uint8_t jungOffset;         // Jung section offset
  uint16_t jongOffset;        // Jong section offset
} HangulFontInfo;
#endif

// Font info instance
const HangulFontInfo {{.Name}}_Info{{.Progmem}} = {
  {{.Name}}_Bitmaps,
  {{.Width}},
  {{.Height}},
  {{.BytesPerGlyph}},
  {{.TotalGlyphs}},
{{- range $i, $s := .Sections}}
  {{$s.Offset}}{{if lt $i 2}},{{end}}
{{- end}}
};

// Helper functions
// Get glyph data by index (0~{{.LastGlyph}})
{{.Inline}} const uint8_t* {{.Name}}_getGlyph(uint16_t index) {
  if (index >= {{.Upper}}_TOTAL_GLYPHS) return {{.Null}};
  if ((uint32_t)(index + 1) * {{.Upper}}_BYTES_PER_GLYPH > sizeof({{.Name}}_Bitmaps)) return {{.Null}};
  return &{{.Name}}_Bitmaps[index * {{.Upper}}_BYTES_PER_GLYPH];
}
{{range .Sections}}
// Get {{.Lower}} ({{.Korean}}) glyph by bul and index
{{$.Inline}} const uint8_t* {{$.Name}}_get{{.Title}}(uint8_t bul, uint8_t index) {
  if (bul >= {{$.Upper}}_{{.Upper}}_BUL || index >= {{$.Upper}}_{{.Upper}}_COUNT) return {{$.Null}};
  uint16_t glyphIndex = {{$.Upper}}_{{.Upper}}_OFFSET + bul * {{$.Upper}}_{{.Upper}}_COUNT + index;
  return {{$.Name}}_getGlyph(glyphIndex);
}
{{end}}
#endif // {{.Guard}}
`))

type sectionData struct {
	Lower  string
	Title  string
	Upper  string
	Korean string
	Offset int
	First  int
	Last   int
	Slots  int
	Buls   int
}

type headerData struct {
	Name          string
	Upper         string
	Guard         string
	Platform      string
	Source        string
	Generated     string
	Progmem       string
	Inline        string
	Null          string
	Bitmap        string
	Includes      []string
	Sections      []sectionData
	Width         int
	Height        int
	BytesPerGlyph int
	TotalGlyphs   int
	LastGlyph     int
	DataSize      int
}

var koreanSectionNames = map[font.Section]string{
	font.Cho:  "초성",
	font.Jung: "중성",
	font.Jong: "종성",
}

func newHeaderData(blob *font.Blob, opts Options) (*headerData, error) {
	target, err := ParseTarget(string(opts.Target))
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = SanitizeName(blob.Name)
	} else if SanitizeName(name) != name {
		return nil, errors.InvalidInput(errors.PhaseEmit, "font name "+name+" is not a C identifier")
	}

	g := blob.Geometry()
	upper := strings.ToUpper(name)
	source := blob.Name
	if blob.Path != "" {
		source = filepath.Base(blob.Path)
	}

	d := &headerData{
		Name:          name,
		Upper:         upper,
		Guard:         upper + "_H",
		Source:        source,
		Bitmap:        FormatArray(blob.Bytes(), opts.BytesPerLine),
		Width:         g.Width,
		Height:        g.Height,
		BytesPerGlyph: g.BytesPerGlyph,
		TotalGlyphs:   g.TotalGlyphs(),
		LastGlyph:     g.TotalGlyphs() - 1,
		DataSize:      blob.Len(),
	}
	if !opts.Generated.IsZero() {
		d.Generated = opts.Generated.Format("2006-01-02 15:04:05")
	}

	switch target {
	case TargetPlain:
		d.Platform = "C"
		d.Includes = []string{"stdint.h", "stddef.h"}
		d.Inline = "static inline"
		d.Null = "NULL"
	default:
		d.Platform = "Arduino/ESP32"
		d.Includes = []string{"Arduino.h"}
		d.Progmem = " PROGMEM"
		d.Inline = "inline"
		d.Null = "nullptr"
	}

	for _, s := range font.Sections() {
		first, last := g.SectionRange(s)
		lower := s.String()
		d.Sections = append(d.Sections, sectionData{
			Lower:  lower,
			Title:  strings.ToUpper(lower[:1]) + lower[1:],
			Upper:  strings.ToUpper(lower),
			Korean: koreanSectionNames[s],
			Offset: g.Offset(s),
			First:  first,
			Last:   last,
			Slots:  g.Slots(s),
			Buls:   g.Buls(s),
		})
	}
	return d, nil
}

// Emit writes the complete header for blob to w.
func Emit(w io.Writer, blob *font.Blob, opts Options) error {
	d, err := newHeaderData(blob, opts)
	if err != nil {
		return err
	}
	if err := headerTemplate.Execute(w, d); err != nil {
		return errors.IOFailure(errors.PhaseEmit, "render header "+d.Name, err)
	}
	return nil
}

// WriteFile renders the header in memory and then writes it to path, so a
// failed render leaves no file behind. It returns the number of bytes
// written.
func WriteFile(path string, blob *font.Blob, opts Options) (int, error) {
	var buf bytes.Buffer
	if err := Emit(&buf, blob, opts); err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, errors.IOFailure(errors.PhaseEmit, "write "+path, err)
	}

	Logger().Info("header written",
		zap.String("path", path),
		zap.Int("bytes", buf.Len()))
	return buf.Len(), nil
}
