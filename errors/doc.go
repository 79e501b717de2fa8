// Package errors provides structured error types for hanfont.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a field path, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
//		Path("jung", "bul").
//		Value(7).
//		Detail("bul 7 exceeds 4 variants").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseLoad, "font.han", cause)
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 400, 360)
//
// Kind-only sentinels such as ErrNotFound match errors of that kind from any
// phase when used with the standard errors.Is.
package errors
