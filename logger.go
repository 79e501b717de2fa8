package hanfont

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/hanfont/font"
	"github.com/wippyai/hanfont/header"
	"github.com/wippyai/hanfont/preview"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the root package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l in this package and in font, header and preview,
// each under its own name.
func SetLogger(l *zap.Logger) {
	logger = l
	font.SetLogger(l.Named("font"))
	header.SetLogger(l.Named("header"))
	preview.SetLogger(l.Named("preview"))
}
