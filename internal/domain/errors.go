package domain

import "errors"

// Domain errors represent fatal conditions for a single extraction run.
// These errors are wrapped with context and can be checked with errors.Is.
var (
	// ErrInputNotFound is returned when the source document does not exist.
	ErrInputNotFound = errors.New("ipextractor: input not found")

	// ErrWrongFormat is returned when the source document is not a PDF.
	ErrWrongFormat = errors.New("ipextractor: wrong input format")

	// ErrOutputWrite is returned when an output file cannot be written.
	// Files already written during the same run are left in place.
	ErrOutputWrite = errors.New("ipextractor: output write failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("ipextractor: invalid configuration")
)
