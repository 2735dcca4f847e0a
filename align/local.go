package align

import "github.com/apcamargo/seqalign/scoring"

// LocalAligner computes best-substring alignments (Smith-Waterman
// recurrence with linear gap costs). Like GlobalAligner it is immutable
// and safe for concurrent use.
type LocalAligner struct {
	cfg scoring.Config
}

// NewLocal returns a LocalAligner using the given scoring model.
func NewLocal(cfg scoring.Config) *LocalAligner {
	return &LocalAligner{cfg: cfg}
}

// initLocal builds the (n+1)x(m+1) grid with row 0 and column 0 at zero
// and no arrows: an alignment may restart at any boundary cell.
func (a *LocalAligner) initLocal(n, m int) *Matrix {
	grid := NewMatrix(n+1, m+1)
	for i := 0; i <= n; i++ {
		grid.set(i, 0, Cell{})
	}
	for j := 0; j <= m; j++ {
		grid.set(0, j, Cell{})
	}

	return grid
}

// Align validates the configuration and both sequences, fills the DP
// matrix, and enumerates every optimal local alignment. Traceback starts
// from every cell achieving the matrix-wide maximum and stops at a zero
// cell, the origin, or a cell without arrows. When no cell scores above
// zero there is no alignment: the result carries score 0 and empty lists.
func (a *LocalAligner) Align(seq1, seq2 []byte) (*Result, error) {
	if a.cfg.Scorer == nil {
		return nil, ErrNoScorer
	}
	if err := a.cfg.EnsureLinear(); err != nil {
		return nil, err
	}
	if err := a.cfg.Scorer.Validate(seq1); err != nil {
		return nil, err
	}
	if err := a.cfg.Scorer.Validate(seq2); err != nil {
		return nil, err
	}

	n, m := len(seq1), len(seq2)
	grid := a.initLocal(n, m)
	fill, err := fillMatrix(grid, seq1, seq2, a.cfg, true)
	if err != nil {
		return nil, err
	}

	var paths []Path
	var pairs []AlignedPair
	if fill.maxScore > 0 {
		stop := func(i, j int, c Cell) bool {
			return c.Score == 0 || (i == 0 && j == 0)
		}
		paths, pairs = traceAll(grid, seq1, seq2, fill.maxPositions, stop, true)
	}

	return &Result{
		Seq1:       string(seq1),
		Seq2:       string(seq2),
		Scoring:    a.cfg,
		Matrix:     grid,
		Paths:      paths,
		Alignments: pairs,
		Score:      fill.maxScore,
	}, nil
}
