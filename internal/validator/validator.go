package validator

import (
	"context"

	"github.com/Glushiator/sudoku-solver/internal/domain"
)

// FastValidator checks the row/column/box exactly-once rule with one
// bitmask pass per unit. Empty cells are ignored, so it works on partial
// boards too.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit enumerates the 9 cells of one row, column, or box.
type unit func(i int) (r, c int)

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(u unit) {
		seen := 0
		for i := 0; i < 9; i++ {
			r, c := u(i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen |= bit
		}
	}
	for n := 0; n < 9; n++ {
		scan(func(i int) (int, int) { return n, i })
		scan(func(i int) (int, int) { return i, n })
		scan(func(i int) (int, int) { return n/3*3 + i/3, n%3*3 + i%3 })
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether every cell is determined. Together with a
// clean Validate this is the solved predicate.
func Complete(b *domain.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
