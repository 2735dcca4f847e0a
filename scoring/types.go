// Package scoring: domain types for substitution scoring and gap costs.
package scoring

// SubstitutionScorer scores one residue pair and validates whole sequences
// against its alphabet. Implementations must be immutable and safe for
// concurrent use; Score and Validate must be O(1) and O(len(seq)).
type SubstitutionScorer interface {
	// Score returns the substitution score for aligning residue a with
	// residue b, case-insensitively. It returns *InvalidCharacterError if
	// either residue is outside the scorer's alphabet.
	Score(a, b byte) (int32, error)

	// Validate scans seq and returns *InvalidCharacterError for the first
	// residue outside the scorer's alphabet, or nil.
	Validate(seq []byte) error
}

// SimpleScorer scores by case-insensitive equality: Match for equal
// residues, Mismatch otherwise. Every byte is valid, so Score and Validate
// never fail.
type SimpleScorer struct {
	Match    int32
	Mismatch int32
}

// Config combines a substitution scorer with gap costs.
//
// GapOpen and GapExtend are kept as two fields to mirror the external
// request shape, but only the linear model (GapOpen == GapExtend) is
// supported; EnsureLinear gates every alignment call.
type Config struct {
	Scorer    SubstitutionScorer
	GapOpen   int32
	GapExtend int32
}

// DefaultConfig returns the default scoring model: match=3, mismatch=-1,
// linear gap cost of -2 per position.
func DefaultConfig() Config {
	return Config{
		Scorer:    SimpleScorer{Match: 3, Mismatch: -1},
		GapOpen:   -2,
		GapExtend: -2,
	}
}

// NewLinear builds a Config with a SimpleScorer and a linear gap cost.
func NewLinear(match, mismatch, gapOpen, gapExtend int32) Config {
	return Config{
		Scorer:    SimpleScorer{Match: match, Mismatch: mismatch},
		GapOpen:   gapOpen,
		GapExtend: gapExtend,
	}
}

// WithScorer builds a Config around an injected scorer, typically a
// substitution matrix from package matrices.
func WithScorer(s SubstitutionScorer, gapOpen, gapExtend int32) Config {
	return Config{Scorer: s, GapOpen: gapOpen, GapExtend: gapExtend}
}
