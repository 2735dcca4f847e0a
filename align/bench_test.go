package align_test

import (
	"testing"

	"github.com/apcamargo/seqalign/align"
	"github.com/apcamargo/seqalign/scoring"
)

// patternSeq builds a deterministic sequence of length n over ACGT.
func patternSeq(n int) []byte {
	letters := []byte("ACGT")
	s := make([]byte, n)
	for i := range s {
		s[i] = letters[i%len(letters)]
	}

	return s
}

// benchmarkAlign runs one aligner over fixed sequences of lengths n and m.
// Identical prefixes keep the traceback fan-out small, so the numbers
// measure the fill engine rather than enumeration growth.
func benchmarkAlign(b *testing.B, aligner align.Aligner, n, m int) {
	seq1 := patternSeq(n)
	seq2 := patternSeq(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aligner.Align(seq1, seq2); err != nil {
			b.Fatalf("align failed: %v", err)
		}
	}
}

// BenchmarkGlobal_Small benchmarks global fill on 100x100 sequences.
func BenchmarkGlobal_Small(b *testing.B) {
	benchmarkAlign(b, align.NewGlobal(scoring.DefaultConfig()), 100, 100)
}

// BenchmarkGlobal_Medium benchmarks global fill on 500x500 sequences.
func BenchmarkGlobal_Medium(b *testing.B) {
	benchmarkAlign(b, align.NewGlobal(scoring.DefaultConfig()), 500, 500)
}

// BenchmarkGlobal_SingleGapFanOut benchmarks traceback fan-out: in a
// homopolymer the single gap can sit at any of n positions, so one start
// cell emits n distinct optimal alignments.
func BenchmarkGlobal_SingleGapFanOut(b *testing.B) {
	seq1 := make([]byte, 100)
	seq2 := make([]byte, 99)
	for i := range seq1 {
		seq1[i] = 'A'
	}
	for i := range seq2 {
		seq2[i] = 'A'
	}
	aligner := align.NewGlobal(scoring.DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aligner.Align(seq1, seq2); err != nil {
			b.Fatalf("align failed: %v", err)
		}
	}
}

// BenchmarkLocal_Small benchmarks local fill on 100x100 sequences.
func BenchmarkLocal_Small(b *testing.B) {
	benchmarkAlign(b, align.NewLocal(scoring.DefaultConfig()), 100, 100)
}

// BenchmarkLocal_Medium benchmarks local fill on 500x500 sequences.
func BenchmarkLocal_Medium(b *testing.B) {
	benchmarkAlign(b, align.NewLocal(scoring.DefaultConfig()), 500, 500)
}
