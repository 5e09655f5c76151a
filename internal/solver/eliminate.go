package solver

import "github.com/Glushiator/sudoku-solver/internal/domain"

// drain propagates queued clues to a fixpoint, in FIFO order so deductions
// are processed in the order they were discovered. Elimination may queue
// further clues while draining; the loop picks those up too.
func (g *grid) drain() error {
	for len(g.queue) > 0 {
		cl := g.queue[0]
		g.queue = g.queue[1:]
		if err := g.applyClue(cl); err != nil {
			return err
		}
	}
	return nil
}

// applyClue removes the clue's digit from every peer: the cells sharing
// the clue's row, column, or 3x3 box, minus the clue cell itself. Cells
// in the box that also share the row or column are visited twice; the
// second removal is a no-op.
func (g *grid) applyClue(cl domain.Clue) error {
	for i := 0; i < 9; i++ {
		if i != cl.Col {
			if err := g.removeCandidate(cl.Row, i, cl.Value); err != nil {
				return err
			}
		}
		if i != cl.Row {
			if err := g.removeCandidate(i, cl.Col, cl.Value); err != nil {
				return err
			}
		}
	}
	baseR, baseC := cl.Row/3*3, cl.Col/3*3
	for r := baseR; r < baseR+3; r++ {
		for c := baseC; c < baseC+3; c++ {
			if r == cl.Row && c == cl.Col {
				continue
			}
			if err := g.removeCandidate(r, c, cl.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// removeCandidate strikes a digit from one cell's candidate set.
//   - digit not present: nothing to do. This also covers peers determined
//     as a different digit, whose set is a singleton without v.
//   - set becomes empty: the branch is unsatisfiable. A peer determined
//     as the same digit empties this way, so duplicated givens are caught
//     here rather than silently skipped.
//   - set becomes a singleton: the cell is now determined; queue it as a
//     fresh clue. No recursion — the drain loop applies it.
func (g *grid) removeCandidate(r, c int, v uint8) error {
	set := g.cells[r][c]
	if !set.has(v) {
		return nil
	}
	set = set.without(v)
	if set == 0 {
		return &domain.EmptyCellError{Row: r, Col: c}
	}
	g.cells[r][c] = set
	if last, ok := set.sole(); ok && !g.determined[r][c] {
		g.determined[r][c] = true
		g.queue = append(g.queue, domain.Clue{Row: r, Col: c, Value: last})
	}
	return nil
}
