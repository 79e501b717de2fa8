package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/header"
)

// Environment keys read by Load.
const (
	KeyBytesPerLine = "HANFONT_BYTES_PER_LINE"
	KeyTarget       = "HANFONT_TARGET"
	KeyLogLevel     = "HANFONT_LOG_LEVEL"
	KeyPreviewScale = "HANFONT_PREVIEW_SCALE"
)

// DefaultFiles is the lookup chain used when no file is named explicitly.
// The first file that exists wins.
var DefaultFiles = []string{".env.local", ".env"}

// Config holds the converter settings.
type Config struct {
	Target       header.Target
	Source       string // file the values came from, empty for defaults
	BytesPerLine int
	PreviewScale int
	LogLevel     zapcore.Level
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Target:       header.TargetArduino,
		BytesPerLine: header.DefaultBytesPerLine,
		PreviewScale: 2,
		LogLevel:     zapcore.InfoLevel,
	}
}

// Load reads settings from envFile, or from the first existing file of
// DefaultFiles when envFile is empty, then overlays the process environment.
// The process environment itself is not modified.
func Load(envFile string) (Config, error) {
	return load(envFile, DefaultFiles, os.LookupEnv)
}

func load(envFile string, chain []string, lookup func(string) (string, bool)) (Config, error) {
	values := map[string]string{}
	source := ""

	if envFile != "" {
		v, err := godotenv.Read(envFile)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return Config{}, errors.NotFound(errors.PhaseConfig, envFile, err)
			}
			return Config{}, errors.IOFailure(errors.PhaseConfig, "read "+envFile, err)
		}
		values, source = v, envFile
	} else {
		for _, name := range chain {
			if _, err := os.Stat(name); err != nil {
				continue
			}
			v, err := godotenv.Read(name)
			if err != nil {
				return Config{}, errors.IOFailure(errors.PhaseConfig, "read "+name, err)
			}
			values, source = v, name
			break
		}
	}

	for _, key := range []string{KeyBytesPerLine, KeyTarget, KeyLogLevel, KeyPreviewScale} {
		if v, ok := lookup(key); ok {
			values[key] = v
		}
	}

	cfg, err := FromMap(values)
	if err != nil {
		return Config{}, err
	}
	cfg.Source = source
	return cfg, nil
}

// FromMap builds a Config from key/value pairs, keeping defaults for
// missing keys.
func FromMap(values map[string]string) (Config, error) {
	cfg := Default()

	if v, ok := values[KeyBytesPerLine]; ok && v != "" {
		n, err := positiveInt(KeyBytesPerLine, v)
		if err != nil {
			return Config{}, err
		}
		cfg.BytesPerLine = n
	}

	if v, ok := values[KeyPreviewScale]; ok && v != "" {
		n, err := positiveInt(KeyPreviewScale, v)
		if err != nil {
			return Config{}, err
		}
		cfg.PreviewScale = n
	}

	if v, ok := values[KeyTarget]; ok {
		t, err := header.ParseTarget(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Target = t
	}

	if v, ok := values[KeyLogLevel]; ok && v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path(KeyLogLevel).
				Value(v).
				Cause(err).
				Build()
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func positiveInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(key).
			Value(v).
			Detail("want a positive integer, got %q", v).
			Build()
	}
	return n, nil
}
