package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apcamargo/seqalign/scoring"
)

// TestSimpleScorer_CaseInsensitive verifies the match/mismatch rule folds
// ASCII case before comparing.
func TestSimpleScorer_CaseInsensitive(t *testing.T) {
	s := scoring.SimpleScorer{Match: 5, Mismatch: -3}

	got, err := s.Score('A', 'A')
	assert.NoError(t, err)
	assert.Equal(t, int32(5), got, "equal residues must score Match")

	got, err = s.Score('a', 'A')
	assert.NoError(t, err)
	assert.Equal(t, int32(5), got, "case must not affect matching")

	got, err = s.Score('A', 'T')
	assert.NoError(t, err)
	assert.Equal(t, int32(-3), got, "different residues must score Mismatch")
}

// TestSimpleScorer_ValidateNeverFails confirms every byte is valid for
// simple scoring, including non-residue bytes.
func TestSimpleScorer_ValidateNeverFails(t *testing.T) {
	s := scoring.SimpleScorer{Match: 1, Mismatch: -1}
	assert.NoError(t, s.Validate([]byte("ACGTacgt")))
	assert.NoError(t, s.Validate([]byte{0x00, 0xff, '!'}))
	assert.NoError(t, s.Validate(nil))
}

// TestConfig_GapPenalty pins the linear gap formula: GapOpen per position.
func TestConfig_GapPenalty(t *testing.T) {
	cfg := scoring.NewLinear(3, -1, -2, -2)
	assert.Equal(t, int32(0), cfg.GapPenalty(0))
	assert.Equal(t, int32(-2), cfg.GapPenalty(1))
	assert.Equal(t, int32(-6), cfg.GapPenalty(3))
}

// TestConfig_EnsureLinear verifies affine configurations are rejected with
// ErrAffineGap naming both gap values.
func TestConfig_EnsureLinear(t *testing.T) {
	linear := scoring.NewLinear(1, -1, -2, -2)
	assert.NoError(t, linear.EnsureLinear())
	assert.False(t, linear.IsAffine())

	affine := scoring.NewLinear(1, -1, -2, -1)
	err := affine.EnsureLinear()
	assert.ErrorIs(t, err, scoring.ErrAffineGap)
	assert.Contains(t, err.Error(), "gap_open=-2")
	assert.Contains(t, err.Error(), "gap_extend=-1")
	assert.True(t, affine.IsAffine())
}

// TestDefaultConfig pins the default scoring model.
func TestDefaultConfig(t *testing.T) {
	cfg := scoring.DefaultConfig()
	assert.Equal(t, scoring.SimpleScorer{Match: 3, Mismatch: -1}, cfg.Scorer)
	assert.Equal(t, int32(-2), cfg.GapOpen)
	assert.Equal(t, int32(-2), cfg.GapExtend)
}

// TestSatAdd_Clamps verifies additions clamp at the int32 bounds instead
// of wrapping, so MinInt32 sentinels stay minimal.
func TestSatAdd_Clamps(t *testing.T) {
	assert.Equal(t, int32(5), scoring.SatAdd(2, 3))
	assert.Equal(t, int32(math.MinInt32), scoring.SatAdd(math.MinInt32, -5),
		"forbidden sentinel must not wrap into a large positive score")
	assert.Equal(t, int32(math.MinInt32), scoring.SatAdd(math.MinInt32, math.MinInt32))
	assert.Equal(t, int32(math.MaxInt32), scoring.SatAdd(math.MaxInt32, 5))
	assert.Equal(t, int32(math.MinInt32+10), scoring.SatAdd(math.MinInt32, 10),
		"adding a small positive value keeps the sentinel deeply negative")
}

// TestSatMul_Clamps verifies multiplications clamp the same way.
func TestSatMul_Clamps(t *testing.T) {
	assert.Equal(t, int32(-6), scoring.SatMul(-2, 3))
	assert.Equal(t, int32(math.MinInt32), scoring.SatMul(math.MinInt32, 2))
	assert.Equal(t, int32(math.MaxInt32), scoring.SatMul(math.MinInt32, -2))
}

// TestInvalidCharacterError_Matching verifies the typed error matches the
// sentinel and carries the offending byte.
func TestInvalidCharacterError_Matching(t *testing.T) {
	var err error = &scoring.InvalidCharacterError{Char: 'X'}
	assert.ErrorIs(t, err, scoring.ErrInvalidCharacter)

	var ice *scoring.InvalidCharacterError
	assert.ErrorAs(t, err, &ice)
	assert.Equal(t, byte('X'), ice.Char)
	assert.Contains(t, err.Error(), `'X'`)
}

// TestConfig_SubstitutionScore routes through the configured scorer.
func TestConfig_SubstitutionScore(t *testing.T) {
	cfg := scoring.NewLinear(3, -1, -2, -2)
	got, err := cfg.SubstitutionScore('G', 'g')
	assert.NoError(t, err)
	assert.Equal(t, int32(3), got)
}

// TestEnsureLinear_NotRetried documents that validation is pure: calling
// it twice on the same config yields the same classification.
func TestEnsureLinear_NotRetried(t *testing.T) {
	affine := scoring.NewLinear(1, -1, -3, -2)
	first := affine.EnsureLinear()
	second := affine.EnsureLinear()
	assert.True(t, errors.Is(first, scoring.ErrAffineGap))
	assert.True(t, errors.Is(second, scoring.ErrAffineGap))
}
