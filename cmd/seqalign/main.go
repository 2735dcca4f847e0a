// Command seqalign aligns two residue sequences and prints the full
// result (score, all optimal alignments, traceback paths, DP matrix) as
// JSON, plus utility commands for the built-in substitution matrices.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:           "seqalign",
	Short:         "Optimal pairwise sequence alignment",
	Long:          "seqalign computes optimal global or local pairwise alignments\nand enumerates every alignment achieving the optimal score.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("seqalign: %v", err)
	}
}

// fileDefaults mirrors the request shape for the optional YAML config
// file; explicit flags always win over file values.
type fileDefaults struct {
	Mode          string `yaml:"mode"`
	Matrix        string `yaml:"matrix"`
	MatchScore    *int32 `yaml:"match_score"`
	MismatchScore *int32 `yaml:"mismatch_score"`
	GapOpen       *int32 `yaml:"gap_open"`
	GapExtend     *int32 `yaml:"gap_extend"`
}

func loadDefaults(path string) (*fileDefaults, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d fileDefaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
