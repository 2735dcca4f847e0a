package matrices

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/apcamargo/seqalign/scoring"
)

// ErrUnknownMatrix indicates a matrix name absent from the registry.
var ErrUnknownMatrix = errors.New("matrices: unknown matrix name")

//go:embed data/*.mat
var dataFS embed.FS

// Matrix is an immutable substitution score table keyed by a fixed ASCII
// alphabet. It implements scoring.SubstitutionScorer.
type Matrix struct {
	name     string
	alphabet []byte
	scores   []int32    // row-major, len == len(alphabet)^2
	index    [256]int16 // byte -> alphabet position, -1 if absent
}

// registry holds every built-in matrix, keyed by upper-case name.
// Populated once in init and never mutated afterwards.
var registry = map[string]*Matrix{}

func init() {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("matrices: reading embedded data: %v", err))
	}
	for _, e := range entries {
		raw, err := dataFS.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("matrices: reading %s: %v", e.Name(), err))
		}
		name := strings.ToUpper(strings.TrimSuffix(e.Name(), ".mat"))
		m, err := parse(name, raw)
		if err != nil {
			panic(fmt.Sprintf("matrices: parsing %s: %v", e.Name(), err))
		}
		registry[name] = m
	}
}

// ByName returns the named matrix, case-insensitively.
func ByName(name string) (*Matrix, error) {
	m, ok := registry[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatrix, name)
	}

	return m, nil
}

// Names lists every registered matrix name in lexicographic order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Name returns the matrix name, e.g. "BLOSUM62".
func (m *Matrix) Name() string { return m.name }

// Alphabet returns a copy of the residue alphabet in table order.
func (m *Matrix) Alphabet() []byte {
	return append([]byte(nil), m.alphabet...)
}

// Dim returns the alphabet size; the score table is Dim x Dim.
func (m *Matrix) Dim() int { return len(m.alphabet) }

// Scores returns a copy of the row-major score table.
func (m *Matrix) Scores() []int32 {
	return append([]int32(nil), m.scores...)
}

// Lookup maps a residue byte to its alphabet position, case-insensitively.
func (m *Matrix) Lookup(b byte) (int, bool) {
	i := m.index[b]
	if i < 0 {
		return 0, false
	}

	return int(i), true
}

// Score implements scoring.SubstitutionScorer. Either residue outside the
// alphabet yields *scoring.InvalidCharacterError naming that residue.
func (m *Matrix) Score(a, b byte) (int32, error) {
	ia := m.index[a]
	if ia < 0 {
		return 0, &scoring.InvalidCharacterError{Char: a}
	}
	ib := m.index[b]
	if ib < 0 {
		return 0, &scoring.InvalidCharacterError{Char: b}
	}

	return m.scores[int(ia)*len(m.alphabet)+int(ib)], nil
}

// Validate implements scoring.SubstitutionScorer, reporting the first
// residue outside the alphabet.
func (m *Matrix) Validate(seq []byte) error {
	for _, c := range seq {
		if m.index[c] < 0 {
			return &scoring.InvalidCharacterError{Char: c}
		}
	}

	return nil
}
