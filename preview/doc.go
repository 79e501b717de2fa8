// Package preview rasterises .han glyph records for inspection.
//
// Raster and Lines decode a single 16x16 record; Sheet and WriteBMP lay out
// a whole font, one row per (section, bul) and one column per slot:
//
//	if err := preview.WriteBMP("Apple_kr.bmp", blob, 3); err != nil {
//	    log.Fatal(err)
//	}
package preview
