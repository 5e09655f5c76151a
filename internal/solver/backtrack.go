package solver

import (
	"context"
	"time"

	"github.com/Glushiator/sudoku-solver/internal/domain"
	"github.com/Glushiator/sudoku-solver/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver kept as a
// contrast to ClueSolver: it tries digits cell by cell with no candidate
// bookkeeping, re-checking constraints on every placement.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if placementValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	solved := givensValid(&grid) && dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrUnsolvable
	}
	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

func placementValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// givensValid rejects boards whose initial digits already collide; the
// dfs never revisits filled cells, so it would not notice.
func givensValid(b *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			b[r][c] = 0
			ok := placementValid(b, r, c, v)
			b[r][c] = v
			if !ok {
				return false
			}
		}
	}
	return true
}
