package align

import "github.com/apcamargo/seqalign/scoring"

// fillResult carries the fill engine's summary: the matrix-wide maximum
// and, in local mode, every cell coordinate achieving it.
type fillResult struct {
	maxScore     int32
	maxPositions []Step
}

// fillMatrix populates the interior of an initialized DP matrix in
// strictly increasing row then column order. All additions saturate so a
// math.MinInt32 "forbidden" substitution can never wrap into a winning
// score.
//
// Global mode: score(i,j) = max(diag, up, left); an arrow bit is set for
// every operand equal to the max.
//
// Local mode: the max is additionally clamped at zero, arrows are set only
// when the clamped score is positive (a zero cell is a restart boundary),
// and the running matrix-wide maximum with its tie set is tracked.
func fillMatrix(m *Matrix, seq1, seq2 []byte, cfg scoring.Config, local bool) (fillResult, error) {
	n := len(seq1)
	mm := len(seq2)
	gap := cfg.GapOpen

	var maxScore int32
	var maxPositions []Step

	for i := 1; i <= n; i++ {
		for j := 1; j <= mm; j++ {
			sub, err := cfg.SubstitutionScore(seq1[i-1], seq2[j-1])
			if err != nil {
				return fillResult{}, err
			}
			diag := scoring.SatAdd(m.at(i-1, j-1).Score, sub)
			up := scoring.SatAdd(m.at(i-1, j).Score, gap)
			left := scoring.SatAdd(m.at(i, j-1).Score, gap)

			best := diag
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			if local && best < 0 {
				best = 0
			}

			var arrows Arrows
			if !local || best > 0 {
				if diag == best {
					arrows |= ArrowDiagonal
				}
				if up == best {
					arrows |= ArrowUp
				}
				if left == best {
					arrows |= ArrowLeft
				}
			}
			m.set(i, j, Cell{Score: best, Arrows: arrows})

			if local {
				switch {
				case best > maxScore:
					maxScore = best
					maxPositions = maxPositions[:0]
					if best > 0 {
						maxPositions = append(maxPositions, Step{Row: i, Col: j})
					}
				case best == maxScore && best > 0:
					maxPositions = append(maxPositions, Step{Row: i, Col: j})
				}
			}
		}
	}

	if !local {
		maxScore = m.at(n, mm).Score
	}

	return fillResult{maxScore: maxScore, maxPositions: maxPositions}, nil
}
