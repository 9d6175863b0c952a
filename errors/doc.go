// Package errors provides structured error types for the yas archive header layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the archive format involved, a detail message and an
// optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidHexDigit).
//		Format("text").
//		Value(byte('g')).
//		Detail("byte %d is not a hex digit", 3).
//		Build()
//
// Or use convenience constructors for the common conditions:
//
//	err := errors.EmptyArchive("binary", 2, 4)
//	err := errors.NoHeader("version")
//
// Every kind has a phase-less sentinel for matching:
//
//	if errors.Is(err, errors.ErrEmptyArchive) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
