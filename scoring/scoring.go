package scoring

import (
	"fmt"
	"math"
)

// toUpper folds ASCII lowercase onto uppercase without touching other bytes.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}

	return b
}

// Score implements SubstitutionScorer by case-insensitive equality.
func (s SimpleScorer) Score(a, b byte) (int32, error) {
	if toUpper(a) == toUpper(b) {
		return s.Match, nil
	}

	return s.Mismatch, nil
}

// Validate implements SubstitutionScorer; every byte is valid for the
// simple match/mismatch rule.
func (s SimpleScorer) Validate(_ []byte) error {
	return nil
}

// IsAffine reports whether the gap configuration is affine (open != extend).
func (c Config) IsAffine() bool {
	return c.GapOpen != c.GapExtend
}

// EnsureLinear rejects affine gap configurations before any matrix work.
// The error names both gap values and matches ErrAffineGap via errors.Is.
func (c Config) EnsureLinear() error {
	if c.IsAffine() {
		return fmt.Errorf("%w (gap_open=%d, gap_extend=%d)",
			ErrAffineGap, c.GapOpen, c.GapExtend)
	}

	return nil
}

// SubstitutionScore scores one residue pair through the configured scorer.
func (c Config) SubstitutionScore(a, b byte) (int32, error) {
	return c.Scorer.Score(a, b)
}

// GapPenalty returns the cost of a gap run of the given length. Under the
// linear model this is GapOpen * length; the affine formula is kept for
// completeness but is unreachable once EnsureLinear has passed.
func (c Config) GapPenalty(length int) int32 {
	if length <= 0 {
		return 0
	}
	if c.IsAffine() {
		return SatAdd(c.GapOpen, SatMul(c.GapExtend, int32(length-1)))
	}

	return SatMul(c.GapOpen, int32(length))
}

// SatAdd adds two int32 scores, clamping on overflow instead of wrapping.
// This keeps math.MinInt32 "forbidden" sentinels from becoming attractive.
func SatAdd(a, b int32) int32 {
	s := int64(a) + int64(b)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	if s < math.MinInt32 {
		return math.MinInt32
	}

	return int32(s)
}

// SatMul multiplies two int32 scores with the same clamping policy.
func SatMul(a, b int32) int32 {
	p := int64(a) * int64(b)
	if p > math.MaxInt32 {
		return math.MaxInt32
	}
	if p < math.MinInt32 {
		return math.MinInt32
	}

	return int32(p)
}
