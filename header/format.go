package header

import (
	"strconv"
	"strings"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/header/internal/hexlit"
)

// DefaultBytesPerLine is the number of literals per line used when the
// caller does not choose one.
const DefaultBytesPerLine = 12

// FormatArray renders data as C hex byte literals ("0x1F"), bytesPerLine
// to a line. Lines are indented two spaces and joined by ",\n". A
// non-positive bytesPerLine selects DefaultBytesPerLine.
func FormatArray(data []byte, bytesPerLine int) string {
	if bytesPerLine <= 0 {
		bytesPerLine = DefaultBytesPerLine
	}
	w := hexlit.NewWriter(bytesPerLine)
	w.WriteBytes(data)
	return w.String()
}

// ParseArray reads back the body of a byte array initializer as produced by
// FormatArray. Hex and decimal literals, C comments and a trailing comma are
// accepted.
func ParseArray(text string) ([]byte, error) {
	tokens := hexlit.Tokenize(text)
	out := make([]byte, 0, len(tokens)/2+1)
	wantValue := true

	for _, tok := range tokens {
		switch tok.Type {
		case hexlit.Number:
			if !wantValue {
				return nil, parseError(tok, "missing ',' before %s", tok.Value)
			}
			v, err := strconv.ParseUint(strings.TrimRight(tok.Value, "uU"), 0, 64)
			if err != nil {
				return nil, parseError(tok, "bad literal %s", tok.Value)
			}
			if v > 0xFF {
				return nil, parseError(tok, "literal %s does not fit a byte", tok.Value)
			}
			out = append(out, byte(v))
			wantValue = false
		case hexlit.Comma:
			if wantValue {
				return nil, parseError(tok, "unexpected ','")
			}
			wantValue = true
		default:
			return nil, parseError(tok, "unexpected %s %q", tok.Type, tok.Value)
		}
	}

	return out, nil
}

func parseError(tok hexlit.Token, format string, args ...any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Path("line", strconv.Itoa(tok.Line)).
		Value(tok.Value).
		Detail(format, args...).
		Build()
}

// ExtractBitmap finds the <fontName>_Bitmaps[] initializer in a generated
// header and parses its bytes.
func ExtractBitmap(src, fontName string) ([]byte, error) {
	decl := fontName + "_Bitmaps[]"
	at := strings.Index(src, decl)
	if at < 0 {
		return nil, errors.InvalidData(errors.PhaseParse, []string{fontName}, "no "+decl+" declaration")
	}
	rest := src[at+len(decl):]

	open := strings.IndexByte(rest, '{')
	if open < 0 {
		return nil, errors.InvalidData(errors.PhaseParse, []string{fontName}, "missing '{' after "+decl)
	}
	end := strings.IndexByte(rest[open:], '}')
	if end < 0 {
		return nil, errors.InvalidData(errors.PhaseParse, []string{fontName}, "unterminated "+decl+" initializer")
	}

	data, err := ParseArray(rest[open+1 : open+end])
	if err != nil {
		return nil, errors.ParseFailed(decl, err)
	}
	return data, nil
}
