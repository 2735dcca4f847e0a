package align

// stopFunc decides whether a traceback branch ends at the visited cell.
// Global mode stops at the origin; local mode stops at score zero or the
// origin.
type stopFunc func(i, j int, c Cell) bool

// pathNode is one visited cell of a traceback branch, plus the residues
// emitted on the step taken out of it (zero bytes when the branch ended
// there). Nodes link back toward the start cell, so sibling branches share
// their common prefix structurally instead of copying partial buffers.
type pathNode struct {
	prev     *pathNode
	row, col int
	r1, r2   byte
}

// frame is one pending cell of the depth-first worklist.
type frame struct {
	row, col int
	parent   *pathNode
}

// traceAll enumerates every optimal path from the start cells back to a
// stop cell, together with the corresponding gapped sequence pair. A cell
// carrying several arrow bits fans the branch out once per bit, which is
// what makes the enumeration complete: one start cell can produce many
// alignments.
func traceAll(m *Matrix, seq1, seq2 []byte, starts []Step, stop stopFunc, stopOnNoArrows bool) ([]Path, []AlignedPair) {
	var paths []Path
	var pairs []AlignedPair

	// LIFO worklist, seeded in reverse so starts are explored in order.
	stack := make([]frame, 0, len(seq1)+len(seq2))
	for i := len(starts) - 1; i >= 0; i-- {
		stack = append(stack, frame{row: starts[i].Row, col: starts[i].Col})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j := f.row, f.col
		cell := m.at(i, j)

		if stop(i, j, cell) || (stopOnNoArrows && cell.Arrows == 0) {
			end := &pathNode{prev: f.parent, row: i, col: j}
			path, pair := materialize(end)
			paths = append(paths, path)
			pairs = append(pairs, pair)
			continue
		}

		// Push in reverse of the exploration order (diagonal, up, left).
		if cell.Arrows.Has(ArrowLeft) && j > 0 {
			node := &pathNode{prev: f.parent, row: i, col: j, r1: GapChar, r2: seq2[j-1]}
			stack = append(stack, frame{row: i, col: j - 1, parent: node})
		}
		if cell.Arrows.Has(ArrowUp) && i > 0 {
			node := &pathNode{prev: f.parent, row: i, col: j, r1: seq1[i-1], r2: GapChar}
			stack = append(stack, frame{row: i - 1, col: j, parent: node})
		}
		if cell.Arrows.Has(ArrowDiagonal) && i > 0 && j > 0 {
			node := &pathNode{prev: f.parent, row: i, col: j, r1: seq1[i-1], r2: seq2[j-1]}
			stack = append(stack, frame{row: i - 1, col: j - 1, parent: node})
		}
	}

	return paths, pairs
}

// materialize walks a finished branch once, from the stop cell back to the
// start cell. That walk visits emitted residues leftmost-first, so the
// aligned strings come out in reading order; the coordinate list comes out
// stop-first and is reversed into matrix-traversal order.
func materialize(end *pathNode) (Path, AlignedPair) {
	length := 0
	for n := end; n != nil; n = n.prev {
		length++
	}

	path := make(Path, length)
	buf1 := make([]byte, 0, length)
	buf2 := make([]byte, 0, length)
	k := length - 1
	for n := end; n != nil; n = n.prev {
		path[k] = Step{Row: n.row, Col: n.col}
		k--
		if n != end {
			buf1 = append(buf1, n.r1)
			buf2 = append(buf2, n.r2)
		}
	}

	return path, AlignedPair{Seq1: string(buf1), Seq2: string(buf2)}
}
