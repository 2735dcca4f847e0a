package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/apcamargo/seqalign/align"
	"github.com/apcamargo/seqalign/matrices"
	"github.com/apcamargo/seqalign/scoring"
)

var (
	// ErrBadMode indicates an alignment mode other than global or local.
	ErrBadMode = errors.New("output: unknown alignment mode")

	// ErrScorerConflict indicates both a matrix name and simple scores.
	ErrScorerConflict = errors.New("output: matrix and match/mismatch scores are mutually exclusive")

	// ErrScorerIncomplete indicates only one of the simple score pair.
	ErrScorerIncomplete = errors.New("output: both match_score and mismatch_score are required")

	// ErrScorerMissing indicates neither a matrix nor simple scores.
	ErrScorerMissing = errors.New("output: scoring method required: provide matrix or match_score/mismatch_score")
)

// Request is a decoded alignment request. Matrix and the simple score pair
// are mutually exclusive; pointer fields distinguish absent from zero.
type Request struct {
	Mode          string  `json:"mode"`
	Matrix        *string `json:"matrix,omitempty"`
	MatchScore    *int32  `json:"match_score,omitempty"`
	MismatchScore *int32  `json:"mismatch_score,omitempty"`
	GapOpen       int32   `json:"gap_open"`
	GapExtend     int32   `json:"gap_extend"`
}

// ParseRequest decodes and validates a JSON request.
func ParseRequest(data []byte) (*Request, error) {
	var r Request
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("output: invalid request JSON: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate enforces the scorer mutual-exclusion rules, the mode, and the
// linear gap constraint, before any matrix work happens.
func (r *Request) Validate() error {
	hasMatrix := r.Matrix != nil
	hasMatch := r.MatchScore != nil
	hasMismatch := r.MismatchScore != nil

	if hasMatrix && (hasMatch || hasMismatch) {
		return ErrScorerConflict
	}
	if !hasMatrix && hasMatch != hasMismatch {
		return ErrScorerIncomplete
	}
	if !hasMatrix && !hasMatch {
		return ErrScorerMissing
	}
	switch strings.ToLower(r.Mode) {
	case "global", "local":
	default:
		return fmt.Errorf("%w: %q", ErrBadMode, r.Mode)
	}
	if r.GapOpen != r.GapExtend {
		return fmt.Errorf("%w (gap_open=%d, gap_extend=%d)",
			scoring.ErrAffineGap, r.GapOpen, r.GapExtend)
	}

	return nil
}

// Config resolves the request into a scoring configuration, looking up the
// substitution matrix in the registry when one is named.
func (r *Request) Config() (scoring.Config, error) {
	if r.Matrix != nil {
		m, err := matrices.ByName(*r.Matrix)
		if err != nil {
			return scoring.Config{}, err
		}

		return scoring.WithScorer(m, r.GapOpen, r.GapExtend), nil
	}

	return scoring.NewLinear(*r.MatchScore, *r.MismatchScore, r.GapOpen, r.GapExtend), nil
}

// Aligner builds the mode-appropriate aligner for the request.
func (r *Request) Aligner() (align.Aligner, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(r.Mode) {
	case "global":
		return align.NewGlobal(cfg), nil
	case "local":
		return align.NewLocal(cfg), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrBadMode, r.Mode)
}
