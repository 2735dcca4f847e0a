package output_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apcamargo/seqalign/align"
	"github.com/apcamargo/seqalign/matrices"
	"github.com/apcamargo/seqalign/output"
	"github.com/apcamargo/seqalign/scoring"
)

// TestParseRequest_Simple decodes a plain match/mismatch request.
func TestParseRequest_Simple(t *testing.T) {
	req, err := output.ParseRequest([]byte(`{
		"mode": "global",
		"match_score": 3, "mismatch_score": -1,
		"gap_open": -2, "gap_extend": -2
	}`))
	require.NoError(t, err)

	cfg, err := req.Config()
	require.NoError(t, err)
	assert.Equal(t, scoring.SimpleScorer{Match: 3, Mismatch: -1}, cfg.Scorer)
	assert.Equal(t, int32(-2), cfg.GapOpen)
}

// TestParseRequest_Matrix decodes a matrix-backed request.
func TestParseRequest_Matrix(t *testing.T) {
	req, err := output.ParseRequest([]byte(`{
		"mode": "local",
		"matrix": "blosum62",
		"gap_open": -2, "gap_extend": -2
	}`))
	require.NoError(t, err)

	cfg, err := req.Config()
	require.NoError(t, err)
	m, ok := cfg.Scorer.(*matrices.Matrix)
	require.True(t, ok, "matrix requests must resolve to a registry matrix")
	assert.Equal(t, "BLOSUM62", m.Name())
}

// TestParseRequest_ScorerRules covers the mutual-exclusion validation.
func TestParseRequest_ScorerRules(t *testing.T) {
	_, err := output.ParseRequest([]byte(`{
		"mode": "global", "matrix": "BLOSUM62",
		"match_score": 3, "mismatch_score": -1,
		"gap_open": -2, "gap_extend": -2
	}`))
	assert.ErrorIs(t, err, output.ErrScorerConflict)

	_, err = output.ParseRequest([]byte(`{
		"mode": "global", "match_score": 3,
		"gap_open": -2, "gap_extend": -2
	}`))
	assert.ErrorIs(t, err, output.ErrScorerIncomplete)

	_, err = output.ParseRequest([]byte(`{
		"mode": "global",
		"gap_open": -2, "gap_extend": -2
	}`))
	assert.ErrorIs(t, err, output.ErrScorerMissing)
}

// TestParseRequest_AffineGap verifies unequal gap costs are rejected at
// the boundary, before any aligner is built.
func TestParseRequest_AffineGap(t *testing.T) {
	_, err := output.ParseRequest([]byte(`{
		"mode": "global",
		"match_score": 1, "mismatch_score": -1,
		"gap_open": -2, "gap_extend": -1
	}`))
	assert.ErrorIs(t, err, scoring.ErrAffineGap)
	assert.Contains(t, err.Error(), "gap_open=-2")
	assert.Contains(t, err.Error(), "gap_extend=-1")
}

// TestParseRequest_BadMode rejects unknown alignment modes.
func TestParseRequest_BadMode(t *testing.T) {
	_, err := output.ParseRequest([]byte(`{
		"mode": "semiglobal",
		"match_score": 1, "mismatch_score": -1,
		"gap_open": -2, "gap_extend": -2
	}`))
	assert.ErrorIs(t, err, output.ErrBadMode)
}

// TestRequest_UnknownMatrix surfaces the registry error.
func TestRequest_UnknownMatrix(t *testing.T) {
	name := "NOSUCH"
	req := &output.Request{Mode: "global", Matrix: &name, GapOpen: -2, GapExtend: -2}
	require.NoError(t, req.Validate())

	_, err := req.Config()
	assert.ErrorIs(t, err, matrices.ErrUnknownMatrix)
}

// TestRequest_AlignerModes dispatches mode names case-insensitively.
func TestRequest_AlignerModes(t *testing.T) {
	match, mismatch := int32(1), int32(-1)
	req := &output.Request{
		Mode: "Global", MatchScore: &match, MismatchScore: &mismatch,
		GapOpen: -1, GapExtend: -1,
	}
	a, err := req.Aligner()
	require.NoError(t, err)
	assert.IsType(t, &align.GlobalAligner{}, a)

	req.Mode = "LOCAL"
	a, err = req.Aligner()
	require.NoError(t, err)
	assert.IsType(t, &align.LocalAligner{}, a)
}

// TestFromResult_Shape pins the serialized result format on a small
// deterministic alignment.
func TestFromResult_Shape(t *testing.T) {
	aligner := align.NewGlobal(scoring.DefaultConfig())
	result, err := aligner.Align([]byte("AC"), []byte("AC"))
	require.NoError(t, err)

	shaped := output.FromResult(result)
	assert.Equal(t, "AC", shaped.Seq1)
	assert.Equal(t, int32(6), shaped.AlignmentScore)

	assert.Equal(t, 3, shaped.DPMatrix.Rows)
	assert.Equal(t, 3, shaped.DPMatrix.Cols)
	assert.Len(t, shaped.DPMatrix.Scores, 9)
	assert.Len(t, shaped.DPMatrix.Arrows, 9)

	require.Len(t, shaped.Alignments, 1)
	assert.Equal(t, output.PairOutput{Seq1: "AC", Seq2: "AC"}, shaped.Alignments[0])

	require.Len(t, shaped.TracebackPaths, 1)
	assert.Equal(t, [][2]int{{2, 2}, {1, 1}, {0, 0}}, shaped.TracebackPaths[0])

	assert.Equal(t, "simple", shaped.Scoring.Scorer.Type)
	require.NotNil(t, shaped.Scoring.Scorer.MatchScore)
	assert.Equal(t, int32(3), *shaped.Scoring.Scorer.MatchScore)
}

// TestResultOutput_JSON verifies the exact field names on the wire.
func TestResultOutput_JSON(t *testing.T) {
	aligner := align.NewGlobal(scoring.DefaultConfig())
	result, err := aligner.Align([]byte("AC"), []byte("AC"))
	require.NoError(t, err)

	data, err := output.FromResult(result).ToJSON()
	require.NoError(t, err)

	js := string(data)
	assert.Contains(t, js, `"alignment_score":6`)
	assert.Contains(t, js, `"seq1":"AC"`)
	assert.Contains(t, js, `"dp_matrix"`)
	assert.Contains(t, js, `"traceback_paths"`)
	assert.Contains(t, js, `"gap_open":-2`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "scoring")
	assert.Contains(t, decoded, "alignments")
}

// TestFromResult_MatrixScorer tags matrix-backed scoring with its name.
func TestFromResult_MatrixScorer(t *testing.T) {
	m, err := matrices.ByName("EDNAFULL")
	require.NoError(t, err)
	aligner := align.NewLocal(scoring.WithScorer(m, -2, -2))
	result, err := aligner.Align([]byte("ACGT"), []byte("ACGT"))
	require.NoError(t, err)

	shaped := output.FromResult(result)
	assert.Equal(t, "matrix", shaped.Scoring.Scorer.Type)
	assert.Equal(t, "EDNAFULL", shaped.Scoring.Scorer.Name)
	assert.Nil(t, shaped.Scoring.Scorer.MatchScore)
}

// TestMatrixInfoByName shapes registry metadata.
func TestMatrixInfoByName(t *testing.T) {
	info, err := output.MatrixInfoByName("BLOSUM62")
	require.NoError(t, err)
	assert.Equal(t, "BLOSUM62", info.Name)
	assert.Len(t, info.Alphabet, 24)
	assert.Len(t, info.Scores, 24*24)
	assert.Equal(t, "A", info.Alphabet[0])

	_, err = output.MatrixInfoByName("NOSUCH")
	assert.ErrorIs(t, err, matrices.ErrUnknownMatrix)
}

// TestListMatrices lists the registry.
func TestListMatrices(t *testing.T) {
	list := output.ListMatrices()
	assert.Equal(t, []string{"BLOSUM62", "EDNAFULL", "PAM1", "PAM250"}, list.Matrices)
}
