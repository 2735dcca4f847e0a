// Package output is the JSON boundary of the alignment engine: it decodes
// alignment requests into a scoring configuration plus an aligner, and
// shapes alignment results and matrix metadata for serialization.
//
// Request shape:
//
//	{"mode": "global"|"local",
//	 "matrix": "BLOSUM62",            // XOR match_score/mismatch_score
//	 "match_score": 3, "mismatch_score": -1,
//	 "gap_open": -2, "gap_extend": -2}
//
// Result shape:
//
//	{"seq1": ..., "seq2": ..., "alignment_score": ...,
//	 "scoring": {"scorer": {...}, "gap_open": ..., "gap_extend": ...},
//	 "alignments": [{"seq1": ..., "seq2": ...}, ...],
//	 "traceback_paths": [[[row, col], ...], ...],
//	 "dp_matrix": {"rows": R, "cols": C, "scores": [...], "arrows": [...]}}
//
// Errors:
//
//   - ErrBadMode: mode is neither "global" nor "local".
//   - ErrScorerConflict: both a matrix and simple scores were given.
//   - ErrScorerIncomplete: only one of match_score/mismatch_score given.
//   - ErrScorerMissing: neither a matrix nor simple scores were given.
//   - scoring.ErrAffineGap, matrices.ErrUnknownMatrix: passed through.
package output
