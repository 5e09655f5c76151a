package solver

import "github.com/Glushiator/sudoku-solver/internal/domain"

// grid is the solver's working state: a candidate set per cell, a flag per
// cell recording whether its digit is determined, and the FIFO of clues
// still waiting to be propagated. Each grid owns its queue; a search
// branch clones the cells but starts with only its own injected clue.
type grid struct {
	cells      [9][9]candidates
	determined [9][9]bool
	queue      []domain.Clue
}

// newGrid starts every cell with all nine candidates.
func newGrid() *grid {
	g := &grid{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.cells[r][c] = allDigits
		}
	}
	return g
}

// fromBoard seeds a grid from a board, queueing every given as an initial
// clue. A board cannot place two digits on one cell, so setDetermined
// cannot conflict here; contradictory givens across cells surface later
// as EmptyCellError during propagation.
func fromBoard(b *domain.Board) *grid {
	g := newGrid()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				_ = g.setDetermined(r, c, v)
			}
		}
	}
	return g
}

// setDetermined pins a cell to a digit and queues it for propagation.
// Re-determining with the same digit is a no-op; a different digit is a
// logic defect reported as ConflictError.
func (g *grid) setDetermined(r, c int, v uint8) error {
	if g.determined[r][c] {
		have, _ := g.cells[r][c].sole()
		if have == v {
			return nil
		}
		return &domain.ConflictError{Row: r, Col: c, Have: have, Want: v}
	}
	g.cells[r][c] = digitBit(v)
	g.determined[r][c] = true
	g.queue = append(g.queue, domain.Clue{Row: r, Col: c, Value: v})
	return nil
}

// clone copies the cell state for an independent search branch. The
// pending queue stays behind: by the time a branch is created the parent
// has been drained to a fixpoint, so its queue is empty anyway.
func (g *grid) clone() *grid {
	return &grid{cells: g.cells, determined: g.determined}
}

func (g *grid) fullyDetermined() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g.determined[r][c] {
				return false
			}
		}
	}
	return true
}

// mostConstrained picks the ambiguous cell with the fewest candidates,
// breaking ties by lowest row, then lowest column. The row-major scan
// with a strict less-than makes that ordering implicit. ok is false when
// no ambiguous cell remains.
func (g *grid) mostConstrained() (row, col int, set candidates, ok bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.determined[r][c] {
				continue
			}
			if n := g.cells[r][c].count(); n < best {
				best = n
				row, col, set, ok = r, c, g.cells[r][c], true
			}
		}
	}
	return row, col, set, ok
}

// board exports the determined digits; undetermined cells stay zero.
// Fixed flags are not the grid's concern and are restored by the caller.
func (g *grid) board() *domain.Board {
	b := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v, ok := g.cells[r][c].sole(); ok && g.determined[r][c] {
				b.Values[r][c] = v
			}
		}
	}
	return b
}
