package hanfont

import (
	"bytes"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/font"
	"github.com/wippyai/hanfont/header"
	"github.com/wippyai/hanfont/preview"
)

// Request describes one conversion run.
type Request struct {
	// Input is the .han font to convert.
	Input string
	// Output is the header path. Empty places it next to Input.
	Output string
	// Preview, when set, receives a BMP sheet of every glyph.
	Preview      string
	Header       header.Options
	PreviewScale int
	// Verify re-reads the written header and compares its array with the
	// font data.
	Verify bool
}

// Result reports what a conversion produced.
type Result struct {
	Blob         *font.Blob
	Output       string
	Name         string
	HeaderBytes  int
	SizeMismatch bool
	Verified     bool
}

// Convert loads req.Input and writes its header. Nothing is written when the
// input cannot be loaded.
func Convert(req Request) (*Result, error) {
	if req.Input == "" {
		return nil, errors.InvalidInput(errors.PhaseLoad, "no input file")
	}

	blob, err := font.Load(req.Input)
	if err != nil {
		return nil, err
	}

	out := req.Output
	if out == "" {
		out = header.DefaultOutputPath(req.Input)
	}
	opts := req.Header
	if opts.Name == "" {
		opts.Name = header.SanitizeName(blob.Name)
	}

	n, err := header.WriteFile(out, blob, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Blob:         blob,
		Output:       out,
		Name:         opts.Name,
		HeaderBytes:  n,
		SizeMismatch: blob.SizeMismatch(),
	}

	if req.Verify {
		if err := verify(out, opts.Name, blob); err != nil {
			return res, err
		}
		res.Verified = true
	}

	if req.Preview != "" {
		scale := req.PreviewScale
		if scale == 0 {
			scale = 1
		}
		if err := preview.WriteBMP(req.Preview, blob, scale); err != nil {
			return res, err
		}
	}

	Logger().Info("conversion complete",
		zap.String("input", req.Input),
		zap.String("output", out),
		zap.Int("glyph_bytes", blob.Len()),
		zap.Bool("size_mismatch", res.SizeMismatch))
	return res, nil
}

func verify(path, name string, blob *font.Blob) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.IOFailure(errors.PhaseParse, "read back "+path, err)
	}
	data, err := header.ExtractBitmap(string(src), name)
	if err != nil {
		return err
	}
	if !bytes.Equal(data, blob.Bytes()) {
		return errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(name + "_Bitmaps").
			Detail("header holds %d bytes that differ from the %d font bytes", len(data), blob.Len()).
			Build()
	}
	Logger().Debug("header verified", zap.String("path", path))
	return nil
}
