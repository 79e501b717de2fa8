package hexlit

import (
	"bytes"
)

const hexDigits = "0123456789ABCDEF"

// Writer renders bytes as C hex literals, a fixed number per line.
type Writer struct {
	buf     *bytes.Buffer
	perLine int
	n       int
}

// NewWriter creates a Writer emitting perLine literals per line.
// A non-positive perLine puts every literal on one line.
func NewWriter(perLine int) *Writer {
	return &Writer{buf: &bytes.Buffer{}, perLine: perLine}
}

// Bytes returns the rendered text.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the rendered text.
func (w *Writer) String() string {
	return w.buf.String()
}

// Count returns the number of literals written.
func (w *Writer) Count() int {
	return w.n
}

// WriteByte appends one literal. It never fails.
func (w *Writer) WriteByte(b byte) error {
	switch {
	case w.n == 0:
		w.buf.WriteString("  ")
	case w.perLine > 0 && w.n%w.perLine == 0:
		w.buf.WriteString(",\n  ")
	default:
		w.buf.WriteString(", ")
	}
	w.buf.WriteString("0x")
	w.buf.WriteByte(hexDigits[b>>4])
	w.buf.WriteByte(hexDigits[b&0x0f])
	w.n++
	return nil
}

// WriteBytes appends one literal per byte.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Grow(len(data) * 6)
	for _, b := range data {
		w.WriteByte(b)
	}
}
