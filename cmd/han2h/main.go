package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/hanfont"
	"github.com/wippyai/hanfont/config"
	"github.com/wippyai/hanfont/font"
	"github.com/wippyai/hanfont/header"
)

type options struct {
	input       string
	output      string
	name        string
	target      string
	previewPath string
	envFile     string
	line        int
	scale       int
	verify      bool
	verbose     bool
	interactive bool
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: han2h [flags] <input.han> [output.h]")
	fmt.Fprintln(os.Stderr, "       han2h -i <input.han>  (interactive glyph browser)")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	var opts options
	flag.BoolVar(&opts.interactive, "i", false, "Browse glyphs in a TUI instead of converting")
	flag.StringVar(&opts.name, "name", "", "Identifier prefix (default: input base name)")
	flag.StringVar(&opts.target, "target", "", "Header flavour: arduino or plain")
	flag.IntVar(&opts.line, "line", 0, "Byte literals per array line (default 12)")
	flag.StringVar(&opts.previewPath, "preview", "", "Also write a BMP sheet of every glyph")
	flag.IntVar(&opts.scale, "scale", 0, "Preview scale factor (default 2)")
	flag.BoolVar(&opts.verify, "verify", false, "Re-read the header and compare it with the font")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.StringVar(&opts.envFile, "env", "", "Settings file (default .env.local, then .env)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(1)
	}
	opts.input = flag.Arg(0)
	opts.output = flag.Arg(1)

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if err := applyFlags(&cfg, opts); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()
	hanfont.SetLogger(logger)

	if cfg.Source != "" {
		logger.Debug("settings loaded", zap.String("file", cfg.Source))
	}

	if opts.interactive {
		blob, err := font.Load(opts.input)
		if err != nil {
			return err
		}
		return runInteractive(blob)
	}

	res, err := hanfont.Convert(hanfont.Request{
		Input:        opts.input,
		Output:       opts.output,
		Preview:      opts.previewPath,
		PreviewScale: cfg.PreviewScale,
		Verify:       opts.verify,
		Header: header.Options{
			Name:         opts.name,
			Target:       cfg.Target,
			BytesPerLine: cfg.BytesPerLine,
			Generated:    time.Now(),
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("Font: %s (%d bytes)\n", opts.input, res.Blob.Len())
	if res.SizeMismatch {
		fmt.Printf("Warning: expected %d bytes, converted %d as-is\n",
			res.Blob.Geometry().ExpectedSize(), res.Blob.Len())
	}
	fmt.Printf("Header: %s (%d bytes)\n", res.Output, res.HeaderBytes)
	if res.Verified {
		fmt.Println("Verified: array matches font data")
	}
	if opts.previewPath != "" {
		fmt.Printf("Preview: %s\n", opts.previewPath)
	}
	return nil
}

// applyFlags lets explicitly set flags override the loaded settings.
func applyFlags(cfg *config.Config, opts options) error {
	values := map[string]string{}
	if opts.target != "" {
		values[config.KeyTarget] = opts.target
	}
	if opts.line != 0 {
		values[config.KeyBytesPerLine] = fmt.Sprint(opts.line)
	}
	if opts.scale != 0 {
		values[config.KeyPreviewScale] = fmt.Sprint(opts.scale)
	}
	override, err := config.FromMap(values)
	if err != nil {
		return err
	}

	if opts.target != "" {
		cfg.Target = override.Target
	}
	if opts.line != 0 {
		cfg.BytesPerLine = override.BytesPerLine
	}
	if opts.scale != 0 {
		cfg.PreviewScale = override.PreviewScale
	}
	if opts.verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	zc.EncoderConfig.TimeKey = ""
	return zc.Build()
}
