// Package hanfont converts EasyView .han Hangul bitmap fonts into C/C++
// headers for microcontroller firmware.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	hanfont/          Root package with the Convert pipeline
//	├── font/         .han geometry, loading and glyph addressing
//	├── header/       Byte array formatting and header generation
//	├── preview/      Glyph rasterisation and BMP contact sheets
//	├── config/       .env based settings
//	├── errors/       Structured error types
//	└── cmd/han2h/    Command-line tool and interactive glyph browser
//
// # Quick Start
//
//	res, err := hanfont.Convert(hanfont.Request{
//	    Input:  "Apple_kr.han",
//	    Verify: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", res.Output)
//
// # Error Handling
//
// Failures are *errors.Error values. A missing input reports
// errors.KindNotFound, any other read or write failure errors.KindIOFailure.
// A font of the wrong length is not an error: it is converted as-is and
// flagged by Result.SizeMismatch.
package hanfont
