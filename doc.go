// Package seqalign computes optimal pairwise alignments between residue
// sequences and enumerates every alignment achieving the optimal score.
//
// What is seqalign?
//
//	A pure-Go dynamic-programming alignment engine:
//	  • Global alignment (Needleman-Wunsch) spanning both sequences
//	  • Local alignment (Smith-Waterman) of the best-scoring substrings
//	  • Multi-path traceback: all ties, not just one best path
//	  • Simple match/mismatch scoring or built-in substitution matrices
//	    (BLOSUM62, PAM250, PAM1, EDNAFULL)
//	  • Linear gap model, enforced; saturating score arithmetic so
//	    forbidden-pair sentinels never overflow into winners
//
// Everything is organized under four subpackages plus a CLI:
//
//	scoring/  — substitution scorers, gap costs, saturating arithmetic
//	matrices/ — embedded substitution matrix registry
//	align/    — DP matrix, fill engines, traceback, aligner façades
//	output/   — JSON request decoding and result shaping
//	cmd/seqalign — command-line front end
//
// Quick example:
//
//	aligner := align.NewGlobal(scoring.DefaultConfig())
//	result, err := aligner.Align([]byte("ACGT"), []byte("AGT"))
//	if err != nil {
//	  // scoring.ErrInvalidCharacter or scoring.ErrAffineGap
//	}
//	for _, pair := range result.Alignments {
//	  fmt.Println(pair.Seq1, pair.Seq2)
//	}
//
// A single alignment call is a pure, synchronous computation with no
// shared mutable state; independent calls are freely parallelizable.
package seqalign
