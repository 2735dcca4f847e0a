// Package align implements optimal pairwise sequence alignment by dynamic
// programming, enumerating every alignment that achieves the optimal score.
//
// What:
//
//   - GlobalAligner: end-to-end alignment (Needleman-Wunsch recurrence).
//   - LocalAligner: best-substring alignment (Smith-Waterman recurrence,
//     scores clamped at zero, restart boundaries carry no arrows).
//   - Matrix: the dense (n+1)x(m+1) DP grid of Cell{Score, Arrows}. A cell
//     records an arrow bit for every predecessor that ties the optimum, so
//     the filled matrix is a multi-parent DAG, not a single path.
//   - Traceback: depth-first enumeration over that DAG from one or more
//     start cells, yielding every distinct optimal path together with its
//     gapped sequence pair.
//
// The number of alignments equals the number of distinct root-to-stop
// paths in the arrow graph and is worst-case exponential in the number of
// tied cells. The engine enumerates completely and imposes no cap; callers
// needing bounds must layer their own policy on top.
//
// Score arithmetic is saturating (scoring.SatAdd), so forbidden-pair
// sentinels of math.MinInt32 can never wrap into attractive scores.
//
// Complexity:
//
//   - Fill:      O(n*m) time, O(n*m) memory.
//   - Traceback: O(paths * (n+m)) time; branch prefixes are shared, each
//     emitted alignment is materialized once.
//
// Errors:
//
//   - scoring.ErrAffineGap: GapOpen != GapExtend, rejected before fill.
//   - scoring.ErrInvalidCharacter: residue outside the scorer's alphabet,
//     detected during pre-fill validation.
//   - ErrNoScorer: Config without a substitution scorer.
//   - ErrOutOfRange: Matrix.At with coordinates outside the grid.
package align
