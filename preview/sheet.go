package preview

import (
	"image"
	"image/color"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/wippyai/hanfont/errors"
	"github.com/wippyai/hanfont/font"
)

// Gutter is the spacing in pixels between glyph cells on a sheet.
const Gutter = 2

var (
	paper  = color.Gray{Y: 0xFF}
	ink    = color.Gray{Y: 0x00}
	gutter = color.Gray{Y: 0xC8}
)

// SheetSize returns the unscaled size of the sheet for geometry g: one row
// per (section, bul) and one column per slot of the widest section.
func SheetSize(g font.Geometry) (cols, rows int) {
	for _, s := range font.Sections() {
		cols = max(cols, g.Slots(s))
		rows += g.Buls(s)
	}
	return cols, rows
}

// CellOrigin returns the top-left pixel of a glyph cell on an unscaled sheet.
func CellOrigin(g font.Geometry, col, row int) image.Point {
	return image.Pt(
		Gutter+col*(g.Width+Gutter),
		Gutter+row*(g.Height+Gutter),
	)
}

// Sheet draws every glyph of the blob on a grey sheet, black on white,
// enlarged by scale with nearest-neighbour sampling.
func Sheet(blob *font.Blob, scale int) (*image.Gray, error) {
	if scale < 1 {
		return nil, errors.InvalidInput(errors.PhasePreview, "scale must be at least 1")
	}

	g := blob.Geometry()
	cols, rows := SheetSize(g)
	end := CellOrigin(g, cols, rows)
	sheet := image.NewGray(image.Rect(0, 0, end.X, end.Y))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(gutter), image.Point{}, draw.Src)

	row := 0
	for _, s := range font.Sections() {
		for bul := 0; bul < g.Buls(s); bul++ {
			for slot := 0; slot < g.Slots(s); slot++ {
				glyph, _ := blob.IndexedGlyph(s, bul, slot)
				at := CellOrigin(g, slot, row)
				cell := image.Rectangle{Min: at, Max: at.Add(image.Pt(g.Width, g.Height))}
				draw.Draw(sheet, cell, image.NewUniform(paper), image.Point{}, draw.Src)
				draw.DrawMask(sheet, cell, image.NewUniform(ink), image.Point{}, Raster(glyph, g), image.Point{}, draw.Over)
			}
			row++
		}
	}

	if scale == 1 {
		return sheet, nil
	}
	scaled := image.NewGray(image.Rect(0, 0, sheet.Bounds().Dx()*scale, sheet.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), sheet, sheet.Bounds(), draw.Src, nil)
	return scaled, nil
}

// WriteBMP renders the sheet and stores it as a BMP file.
func WriteBMP(path string, blob *font.Blob, scale int) error {
	sheet, err := Sheet(blob, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.IOFailure(errors.PhasePreview, "create "+path, err)
	}
	if err := bmp.Encode(f, sheet); err != nil {
		f.Close()
		return errors.IOFailure(errors.PhasePreview, "encode "+path, err)
	}
	if err := f.Close(); err != nil {
		return errors.IOFailure(errors.PhasePreview, "close "+path, err)
	}

	Logger().Info("preview written",
		zap.String("path", path),
		zap.Int("width", sheet.Bounds().Dx()),
		zap.Int("height", sheet.Bounds().Dy()))
	return nil
}
