package font

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/hanfont/errors"
)

// Blob is the raw content of a .han font file.
// It is never mutated after loading.
type Blob struct {
	data []byte
	geom Geometry
	// Path is the file the blob was read from, empty for in-memory data.
	Path string
	// Name is the base name of the source without extension.
	Name string
}

// Load reads the font at path.
//
// A file whose length differs from the expected size is still loaded; the
// mismatch is logged as a warning and reported by SizeMismatch.
func Load(path string) (*Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound(errors.PhaseLoad, path, err)
		}
		return nil, errors.IOFailure(errors.PhaseLoad, "open "+path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.IOFailure(errors.PhaseLoad, "read "+path, err)
	}

	b := newBlob(path, data)
	b.Path = path
	return b, nil
}

// LoadBytes wraps in-memory font data with the same size policy as Load.
func LoadBytes(name string, data []byte) *Blob {
	return newBlob(name, data)
}

func newBlob(source string, data []byte) *Blob {
	b := &Blob{
		data: data,
		geom: Standard(),
		Name: baseName(source),
	}

	if b.SizeMismatch() {
		Logger().Warn("font size mismatch",
			zap.String("source", source),
			zap.Int("expected", b.geom.ExpectedSize()),
			zap.Int("actual", len(data)))
	}
	Logger().Info("font loaded",
		zap.String("source", source),
		zap.Int("bytes", len(data)))
	return b
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Geometry returns the layout the blob is addressed with.
func (b *Blob) Geometry() Geometry {
	return b.geom
}

// Bytes returns the raw font data. Callers must not modify it.
func (b *Blob) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes in the blob.
func (b *Blob) Len() int {
	return len(b.data)
}

// SizeMismatch reports whether the blob length differs from the expected
// font size.
func (b *Blob) SizeMismatch() bool {
	return len(b.data) != b.geom.ExpectedSize()
}

// Check returns a size mismatch error for callers that treat a malformed
// font as fatal. Load itself never does.
func (b *Blob) Check() error {
	if b.SizeMismatch() {
		return errors.SizeMismatch(errors.PhaseLoad, b.geom.ExpectedSize(), len(b.data))
	}
	return nil
}

// GlyphAt returns the record at flat index, or false when index is outside
// the font geometry.
//
// The slice is not checked against the blob length: a short blob yields a
// truncated or empty record. Use Glyph for the strict form.
func (b *Blob) GlyphAt(index int) ([]byte, bool) {
	if index < 0 || index >= b.geom.TotalGlyphs() {
		return nil, false
	}
	start := min(index*b.geom.BytesPerGlyph, len(b.data))
	end := min(start+b.geom.BytesPerGlyph, len(b.data))
	return b.data[start:end:end], true
}

// Glyph returns the full record at flat index. It fails with an out of
// bounds error when the index is invalid or the blob is too short to hold
// the whole record.
func (b *Blob) Glyph(index int) ([]byte, error) {
	g, ok := b.GlyphAt(index)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseDecode, []string{"glyph"}, index, b.geom.TotalGlyphs())
	}
	if len(g) < b.geom.BytesPerGlyph {
		return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path("glyph", strconv.Itoa(index)).
			Value(index).
			Detail("record needs bytes %d..%d, blob has %d",
				index*b.geom.BytesPerGlyph, (index+1)*b.geom.BytesPerGlyph, len(b.data)).
			Build()
	}
	return g, nil
}

// IndexedGlyph returns the record for variant bul and character slot of s,
// or false when the address is outside the section.
func (b *Blob) IndexedGlyph(s Section, bul, slot int) ([]byte, bool) {
	index, ok := b.geom.Index(s, bul, slot)
	if !ok {
		return nil, false
	}
	return b.GlyphAt(index)
}

// Cho returns a leading consonant glyph.
func (b *Blob) Cho(bul, slot int) ([]byte, bool) {
	return b.IndexedGlyph(Cho, bul, slot)
}

// Jung returns a vowel glyph.
func (b *Blob) Jung(bul, slot int) ([]byte, bool) {
	return b.IndexedGlyph(Jung, bul, slot)
}

// Jong returns a trailing consonant glyph.
func (b *Blob) Jong(bul, slot int) ([]byte, bool) {
	return b.IndexedGlyph(Jong, bul, slot)
}
