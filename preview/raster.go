package preview

import (
	"image"
	"strings"

	"github.com/wippyai/hanfont/font"
)

// pixel reports whether (x, y) is set in a glyph record. Bytes missing from
// a truncated record read as blank.
func pixel(glyph []byte, g font.Geometry, x, y int) bool {
	i := y*g.BytesPerRow() + x/8
	if i >= len(glyph) {
		return false
	}
	return glyph[i]&(0x80>>(x%8)) != 0
}

// Raster decodes a glyph record into an alpha mask, 0xFF for set pixels.
func Raster(glyph []byte, g font.Geometry) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if pixel(glyph, g, x, y) {
				mask.Pix[y*mask.Stride+x] = 0xFF
			}
		}
	}
	return mask
}

// Lines renders a glyph as text, one string per pixel row.
func Lines(glyph []byte, g font.Geometry, on, off string) []string {
	lines := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		for x := 0; x < g.Width; x++ {
			if pixel(glyph, g, x, y) {
				b.WriteString(on)
			} else {
				b.WriteString(off)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// InkBounds returns the smallest rectangle holding every set pixel, or the
// empty rectangle for a blank glyph.
func InkBounds(glyph []byte, g font.Geometry) image.Rectangle {
	minX, minY := g.Width, g.Height
	maxX, maxY := -1, -1

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !pixel(glyph, g, x, y) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
