package align

import "github.com/apcamargo/seqalign/scoring"

// GlobalAligner computes end-to-end optimal alignments of two sequences
// (Needleman-Wunsch recurrence with linear gap costs). It is immutable and
// safe for concurrent use; every Align call builds fresh state.
type GlobalAligner struct {
	cfg scoring.Config
}

// NewGlobal returns a GlobalAligner using the given scoring model.
func NewGlobal(cfg scoring.Config) *GlobalAligner {
	return &GlobalAligner{cfg: cfg}
}

// initGlobal builds the (n+1)x(m+1) grid with the gap-run boundary:
// cell (i,0) costs a gap run of length i and points up, cell (0,j) costs a
// gap run of length j and points left.
func (a *GlobalAligner) initGlobal(n, m int) *Matrix {
	grid := NewMatrix(n+1, m+1)
	grid.set(0, 0, Cell{})
	for i := 1; i <= n; i++ {
		grid.set(i, 0, Cell{Score: a.cfg.GapPenalty(i), Arrows: ArrowUp})
	}
	for j := 1; j <= m; j++ {
		grid.set(0, j, Cell{Score: a.cfg.GapPenalty(j), Arrows: ArrowLeft})
	}

	return grid
}

// Align validates the configuration and both sequences, fills the DP
// matrix, and enumerates every optimal global alignment. The final score
// is the terminal cell (n, m); traceback runs from there to the origin.
func (a *GlobalAligner) Align(seq1, seq2 []byte) (*Result, error) {
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
	grid := a.initGlobal(n, m)
	if _, err := fillMatrix(grid, seq1, seq2, a.cfg, false); err != nil {
		return nil, err
	}

	starts := []Step{{Row: n, Col: m}}
	stop := func(i, j int, _ Cell) bool { return i == 0 && j == 0 }
	paths, pairs := traceAll(grid, seq1, seq2, starts, stop, false)

	return &Result{
		Seq1:       string(seq1),
		Seq2:       string(seq2),
		Scoring:    a.cfg,
		Matrix:     grid,
		Paths:      paths,
		Alignments: pairs,
		Score:      grid.at(n, m).Score,
	}, nil
}
