package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter indicates a residue outside the active scorer's
	// alphabet. Concrete errors are *InvalidCharacterError values that
	// match this sentinel via errors.Is.
	ErrInvalidCharacter = errors.New("scoring: invalid character in sequence")

	// ErrAffineGap indicates GapOpen != GapExtend. The linear gap model is
	// the only supported one; affine configurations fail fast.
	ErrAffineGap = errors.New("scoring: affine gap penalties are not supported")
)

// InvalidCharacterError reports the offending residue byte. Use errors.As
// to recover the byte, or errors.Is with ErrInvalidCharacter to classify.
type InvalidCharacterError struct {
	Char byte
}

// Error implements the error interface.
func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("scoring: invalid character in sequence: %q", e.Char)
}

// Is makes errors.Is(err, ErrInvalidCharacter) hold for all instances.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
