package ports

import (
	"context"
	"time"

	"github.com/Glushiator/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills in a board or reports why it cannot. Stats.Nodes counts
// search steps in solver-specific units (branches tried, digits placed).
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Source supplies puzzle texts, one string per puzzle.
type Source interface {
	Read(ctx context.Context, path string) ([]string, error)
}
