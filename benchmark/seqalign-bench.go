// Command seqalign-bench exercises the alignment engine on random
// sequences for profiling. CPU and memory profiles are written with
// github.com/pkg/profile.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/apcamargo/seqalign/align"
	"github.com/apcamargo/seqalign/scoring"
)

var letters = []byte("ACGT")

func randomSeq(rng *rand.Rand, n int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = letters[rng.Intn(len(letters))]
	}

	return s
}

// mutate copies s with roughly rate errors (substitutions, short indels),
// so aligned pairs look like real read-vs-reference data.
func mutate(rng *rand.Rand, s []byte, rate float64) []byte {
	out := make([]byte, 0, len(s)+8)
	for _, c := range s {
		switch {
		case rng.Float64() < rate/3: // deletion
		case rng.Float64() < rate/3: // insertion
			out = append(out, c, letters[rng.Intn(len(letters))])
		case rng.Float64() < rate/3: // substitution
			out = append(out, letters[rng.Intn(len(letters))])
		default:
			out = append(out, c)
		}
	}

	return out
}

func main() {
	var (
		n       = flag.Int("n", 1000, "sequence length")
		pairs   = flag.Int("pairs", 100, "number of sequence pairs")
		rate    = flag.Float64("rate", 0.05, "mutation rate for the second sequence")
		local   = flag.Bool("local", false, "use local instead of global alignment")
		seed    = flag.Int64("seed", 1, "random seed")
		cpuProf = flag.Bool("cpuprofile", false, "write a CPU profile")
		memProf = flag.Bool("memprofile", false, "write a memory profile")
	)
	flag.Parse()

	if *cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memProf {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	rng := rand.New(rand.NewSource(*seed))
	cfg := scoring.DefaultConfig()
	var aligner align.Aligner = align.NewGlobal(cfg)
	if *local {
		aligner = align.NewLocal(cfg)
	}

	start := time.Now()
	var total int64
	var alignments int
	for p := 0; p < *pairs; p++ {
		seq1 := randomSeq(rng, *n)
		seq2 := mutate(rng, seq1, *rate)
		result, err := aligner.Align(seq1, seq2)
		if err != nil {
			fmt.Fprintf(os.Stderr, "align: %v\n", err)
			os.Exit(1)
		}
		total += int64(result.Score)
		alignments += len(result.Alignments)
	}
	elapsed := time.Since(start)

	fmt.Printf("pairs: %d, len: %d, alignments: %d, total score: %d\n",
		*pairs, *n, alignments, total)
	fmt.Printf("time: %s (%.2f pairs/s)\n",
		elapsed, float64(*pairs)/elapsed.Seconds())
}
