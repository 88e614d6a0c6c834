package editdist

// cell is one backpointer node of the distance matrix: the cumulative cost
// of aligning a source prefix against a target prefix, the operation that
// produced it, and the flat index of the cell it was derived from.
//
// parent is -1 only at the origin. Every parent link strictly decreases the
// prefix-length sum, so the chain is acyclic and a flat table can stand in
// for a recursive node structure.
type cell struct {
	cost   float64
	op     Op
	parent int
}

// Distance computes the weighted edit distance between source and target:
// the minimum total cost of the match, insert, delete and substitute
// operations that transform source into target under opts.Costs.
//
// Strings are compared as Unicode code points; no normalization is applied.
//
// The result depends on opts.Mode:
//
//   - ModeBoth (default) — the distance and the ordered edit sequence.
//   - ModeDistance       — the distance; edits is nil.
//   - ModeEdits          — the edit sequence; dist is left zero.
//
// A nil opts is equivalent to DefaultOptions(). Validation runs before any
// matrix cell is computed: an out-of-range mode yields ErrInvalidMode and a
// NaN or infinite cost entry yields ErrInvalidCost; no partial result is
// ever returned.
//
// Tie-break policy: candidate transitions into a cell are compared in the
// order diagonal, horizontal (insert), vertical (delete), and a later
// candidate wins only on a strict improvement. On equal cost the priority
// is therefore Substitute/Match > Insert > Delete. If the winning
// transition adds exactly zero cost, its operation is relabeled OpMatch —
// a heuristic predicated on match being the only zero-cost operation.
// Callers that set a non-match cost to zero will see those transitions
// reported as OpMatch.
//
// Complexity: O(len(source)·len(target)) time and memory. The call is a
// pure function; concurrent calls need no coordination.
func Distance(source, target string, opts *Options) (dist float64, edits []Op, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = o.Mode.validate(); err != nil {
		return 0, nil, err
	}
	if err = o.Costs.validate(); err != nil {
		return 0, nil, err
	}

	src, tgt := []rune(source), []rune(target)
	cells := buildMatrix(src, tgt, o.Costs)
	terminal := len(cells) - 1

	switch o.Mode {
	case ModeDistance:
		return cells[terminal].cost, nil, nil
	case ModeEdits:
		return 0, traceback(cells, len(src)+len(tgt)), nil
	default: // ModeBoth
		return cells[terminal].cost, traceback(cells, len(src)+len(tgt)), nil
	}
}

// buildMatrix fills the (n+1)×(m+1) backpointer table in row-major order.
// Cell (i, j) holds the best alignment of src[:i] against tgt[:j]; the
// terminal cell is the last element of the returned slice.
func buildMatrix(src, tgt []rune, cs Costs) []cell {
	n, m := len(src), len(tgt)
	width := m + 1
	cells := make([]cell, (n+1)*width)

	// Origin plus the pure-insertion row and pure-deletion column.
	cells[0] = cell{cost: cs.Initial, op: opInitial, parent: -1}
	for j := 0; j < m; j++ {
		cells[j+1] = cell{cost: cells[j].cost + cs.Insert, op: OpInsert, parent: j}
	}
	for i := 0; i < n; i++ {
		cells[(i+1)*width] = cell{cost: cells[i*width].cost + cs.Delete, op: OpDelete, parent: i * width}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			diag := i*width + j      // (i, j)
			vert := diag + 1         // (i, j+1)
			horiz := (i+1)*width + j // (i+1, j)

			added := cs.Substitute
			if src[i] == tgt[j] {
				added = cs.Match
			}
			op := OpSubstitute
			if added == 0 {
				op = OpMatch
			}

			// Diagonal first; horizontal and vertical replace it only on a
			// strict improvement, never on a tie.
			best := cells[diag].cost + added
			bestOp, bestParent := op, diag
			if c := cells[horiz].cost + cs.Insert; c < best {
				best, bestOp, bestParent = c, OpInsert, horiz
			}
			if c := cells[vert].cost + cs.Delete; c < best {
				best, bestOp, bestParent = c, OpDelete, vert
			}

			// A transition that added nothing is reported as a match.
			// Predicated on match being the only zero-cost operation.
			if best == cells[bestParent].cost {
				bestOp = OpMatch
			}

			cells[(i+1)*width+j+1] = cell{cost: best, op: bestOp, parent: bestParent}
		}
	}

	return cells
}

// traceback walks parent links from the terminal cell back to the origin,
// collecting each visited cell's operation, and reverses the walk so the
// sequence runs from the first edit applied to the source to the last.
// The origin sentinel is never included. The result is non-nil even when
// no edits are needed.
func traceback(cells []cell, pathCap int) []Op {
	edits := make([]Op, 0, pathCap)
	for idx := len(cells) - 1; cells[idx].parent >= 0; idx = cells[idx].parent {
		edits = append(edits, cells[idx].op)
	}
	for l, r := 0, len(edits)-1; l < r; l, r = l+1, r-1 {
		edits[l], edits[r] = edits[r], edits[l]
	}

	return edits
}
