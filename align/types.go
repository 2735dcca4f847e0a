// Package align: domain types shared by the fill and traceback engines.
package align

import "github.com/apcamargo/seqalign/scoring"

// GapChar is the gap marker used in aligned sequence strings.
const GapChar = '-'

// Arrows is a 3-bit set of back-pointer directions for one DP cell. The
// bit values are part of the external result format and must not change.
type Arrows uint8

const (
	// ArrowDiagonal points to cell (i-1, j-1): both residues consumed.
	ArrowDiagonal Arrows = 1 << iota
	// ArrowUp points to cell (i-1, j): residue from seq1 against a gap.
	ArrowUp
	// ArrowLeft points to cell (i, j-1): residue from seq2 against a gap.
	ArrowLeft
)

// Has reports whether every direction in dir is set.
func (a Arrows) Has(dir Arrows) bool { return a&dir == dir }

// Bits returns the raw bitmask (diagonal=1, up=2, left=4).
func (a Arrows) Bits() uint8 { return uint8(a) }

// Cell is one entry of the DP matrix: the best score reaching it and an
// arrow bit for every predecessor achieving that score.
type Cell struct {
	Score  int32
	Arrows Arrows
}

// Step is one (row, col) coordinate of a traceback path.
type Step struct {
	Row int
	Col int
}

// Path is a traceback path in matrix-traversal order: the start cell
// first, the stop cell last. Its aligned strings therefore read
// left-to-right after reconstruction.
type Path []Step

// AlignedPair is one concrete optimal alignment: two equal-length strings
// of original residues interleaved with GapChar markers.
type AlignedPair struct {
	Seq1 string
	Seq2 string
}

// Result is the complete outcome of one alignment call. All fields are
// immutable after Align returns; the Matrix is transferred into the
// Result and must be treated as read-only.
type Result struct {
	Seq1       string
	Seq2       string
	Scoring    scoring.Config
	Matrix     *Matrix
	Paths      []Path
	Alignments []AlignedPair
	Score      int32
}

// Aligner is the shared contract of GlobalAligner and LocalAligner.
type Aligner interface {
	Align(seq1, seq2 []byte) (*Result, error)
}
