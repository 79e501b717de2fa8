package header

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/wippyai/hanfont/errors"
)

// Target selects the toolchain flavour of the generated header.
type Target string

const (
	// TargetArduino includes <Arduino.h> and places data in PROGMEM.
	TargetArduino Target = "arduino"
	// TargetPlain emits portable C with <stdint.h> and no PROGMEM.
	TargetPlain Target = "plain"
)

// ParseTarget validates a target name. The empty string selects
// TargetArduino.
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(s))) {
	case "", TargetArduino:
		return TargetArduino, nil
	case TargetPlain:
		return TargetPlain, nil
	}
	return "", errors.InvalidInput(errors.PhaseConfig, "unknown target "+s+" (want arduino or plain)")
}

// Options controls header generation.
type Options struct {
	// Generated is printed in the documentation block. Zero omits it.
	Generated time.Time
	// Name prefixes every emitted identifier. Empty derives it from the
	// font's base name.
	Name         string
	Target       Target
	BytesPerLine int
}

// SanitizeName turns a file base name into a C identifier.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		return "font"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// DefaultOutputPath places the header next to the input with a .h
// extension.
func DefaultOutputPath(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), base+".h")
}
