package output

import (
	"encoding/json"

	"github.com/apcamargo/seqalign/align"
	"github.com/apcamargo/seqalign/matrices"
	"github.com/apcamargo/seqalign/scoring"
)

// MatrixOutput is the DP matrix flattened into parallel row-major score
// and arrow-bitmask arrays.
type MatrixOutput struct {
	Rows   int     `json:"rows"`
	Cols   int     `json:"cols"`
	Scores []int32 `json:"scores"`
	Arrows []uint8 `json:"arrows"`
}

// PairOutput is one aligned sequence pair.
type PairOutput struct {
	Seq1 string `json:"seq1"`
	Seq2 string `json:"seq2"`
}

// ScorerOutput tags the substitution scorer variant.
type ScorerOutput struct {
	Type          string `json:"type"`
	MatchScore    *int32 `json:"match_score,omitempty"`
	MismatchScore *int32 `json:"mismatch_score,omitempty"`
	Name          string `json:"name,omitempty"`
}

// ScoringOutput is the scoring configuration as serialized in results.
type ScoringOutput struct {
	Scorer    ScorerOutput `json:"scorer"`
	GapOpen   int32        `json:"gap_open"`
	GapExtend int32        `json:"gap_extend"`
}

// ResultOutput is the complete JSON shape of one alignment result.
type ResultOutput struct {
	Seq1           string        `json:"seq1"`
	Seq2           string        `json:"seq2"`
	AlignmentScore int32         `json:"alignment_score"`
	Scoring        ScoringOutput `json:"scoring"`
	Alignments     []PairOutput  `json:"alignments"`
	TracebackPaths [][][2]int    `json:"traceback_paths"`
	DPMatrix       MatrixOutput  `json:"dp_matrix"`
}

// FromResult shapes an alignment result for serialization.
func FromResult(r *align.Result) *ResultOutput {
	scores := make([]int32, len(r.Matrix.Cells))
	arrows := make([]uint8, len(r.Matrix.Cells))
	for i, c := range r.Matrix.Cells {
		scores[i] = c.Score
		arrows[i] = c.Arrows.Bits()
	}

	paths := make([][][2]int, len(r.Paths))
	for i, p := range r.Paths {
		steps := make([][2]int, len(p))
		for k, s := range p {
			steps[k] = [2]int{s.Row, s.Col}
		}
		paths[i] = steps
	}

	pairs := make([]PairOutput, len(r.Alignments))
	for i, a := range r.Alignments {
		pairs[i] = PairOutput{Seq1: a.Seq1, Seq2: a.Seq2}
	}

	return &ResultOutput{
		Seq1:           r.Seq1,
		Seq2:           r.Seq2,
		AlignmentScore: r.Score,
		Scoring:        shapeScoring(r.Scoring),
		Alignments:     pairs,
		TracebackPaths: paths,
		DPMatrix: MatrixOutput{
			Rows:   r.Matrix.Rows,
			Cols:   r.Matrix.Cols,
			Scores: scores,
			Arrows: arrows,
		},
	}
}

// shapeScoring tags the scorer variant for output.
func shapeScoring(cfg scoring.Config) ScoringOutput {
	out := ScoringOutput{GapOpen: cfg.GapOpen, GapExtend: cfg.GapExtend}
	switch s := cfg.Scorer.(type) {
	case scoring.SimpleScorer:
		match, mismatch := s.Match, s.Mismatch
		out.Scorer = ScorerOutput{
			Type:          "simple",
			MatchScore:    &match,
			MismatchScore: &mismatch,
		}
	case *matrices.Matrix:
		out.Scorer = ScorerOutput{Type: "matrix", Name: s.Name()}
	default:
		out.Scorer = ScorerOutput{Type: "custom"}
	}

	return out
}

// ToJSON serializes the result shape.
func (o *ResultOutput) ToJSON() ([]byte, error) {
	return json.Marshal(o)
}

// MatrixInfo is the metadata shape for one registered substitution matrix.
type MatrixInfo struct {
	Name     string   `json:"name"`
	Alphabet []string `json:"alphabet"`
	Scores   []int32  `json:"scores"`
}

// MatrixInfoByName shapes registry metadata for the named matrix.
func MatrixInfoByName(name string) (*MatrixInfo, error) {
	m, err := matrices.ByName(name)
	if err != nil {
		return nil, err
	}
	alphabet := make([]string, 0, m.Dim())
	for _, b := range m.Alphabet() {
		alphabet = append(alphabet, string(b))
	}

	return &MatrixInfo{Name: m.Name(), Alphabet: alphabet, Scores: m.Scores()}, nil
}

// MatrixList is the shape of the matrix name listing.
type MatrixList struct {
	Matrices []string `json:"matrices"`
}

// ListMatrices shapes the registry name listing.
func ListMatrices() *MatrixList {
	return &MatrixList{Matrices: matrices.Names()}
}
