package align

import "errors"

var (
	// ErrNoScorer indicates an alignment was requested with a Config whose
	// Scorer field is nil.
	ErrNoScorer = errors.New("align: scoring config has no substitution scorer")

	// ErrOutOfRange indicates a matrix access outside the grid bounds.
	ErrOutOfRange = errors.New("align: cell index out of range")
)
