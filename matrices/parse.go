package matrices

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parse builds a Matrix from the textual table format described in doc.go.
// It is strict: the table must be square, every row label must match the
// header order, and every score token must be an int32, "inf" or "-inf".
func parse(name string, raw []byte) (*Matrix, error) {
	var alphabet []byte
	var scores []int32
	row := 0

	for ln, line := range strings.Split(string(raw), "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if alphabet == nil {
			for _, f := range fields {
				r, err := normalizeResidue(f)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", ln+1, err)
				}
				alphabet = append(alphabet, r)
			}
			scores = make([]int32, 0, len(alphabet)*len(alphabet))
			continue
		}

		if len(fields) != len(alphabet)+1 {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d",
				ln+1, len(alphabet)+1, len(fields))
		}
		if row >= len(alphabet) {
			return nil, fmt.Errorf("line %d: too many rows", ln+1)
		}
		label, err := normalizeResidue(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln+1, err)
		}
		if label != alphabet[row] {
			return nil, fmt.Errorf("line %d: row label %q, expected %q",
				ln+1, label, alphabet[row])
		}
		for _, f := range fields[1:] {
			s, err := parseScore(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln+1, err)
			}
			scores = append(scores, s)
		}
		row++
	}

	if len(alphabet) == 0 {
		return nil, fmt.Errorf("no alphabet row")
	}
	if row != len(alphabet) {
		return nil, fmt.Errorf("expected %d rows, got %d", len(alphabet), row)
	}

	m := &Matrix{name: name, alphabet: alphabet, scores: scores}
	for i := range m.index {
		m.index[i] = -1
	}
	for i, r := range alphabet {
		m.index[r] = int16(i)
		if r >= 'A' && r <= 'Z' {
			m.index[r+('a'-'A')] = int16(i)
		}
	}

	return m, nil
}

// normalizeResidue accepts single ASCII tokens, folding letters to upper case.
func normalizeResidue(tok string) (byte, error) {
	if len(tok) != 1 || tok[0] > 0x7f {
		return 0, fmt.Errorf("bad residue token %q", tok)
	}
	b := tok[0]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}

	return b, nil
}

// parseScore parses one score token; "inf"/"-inf" are the saturation bounds.
func parseScore(tok string) (int32, error) {
	switch tok {
	case "inf":
		return math.MaxInt32, nil
	case "-inf":
		return math.MinInt32, nil
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad score token %q", tok)
	}

	return int32(v), nil
}
