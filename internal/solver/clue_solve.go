package solver

import (
	"context"
	"errors"
	"time"

	"github.com/Glushiator/sudoku-solver/internal/domain"
	"github.com/Glushiator/sudoku-solver/internal/ports"
)

// ClueSolver combines candidate elimination with a depth-first search
// over the remaining ambiguous cells. Propagation collapses forced chains
// before every branch, so the search tree stays small compared to the
// plain backtracking solver.
type ClueSolver struct{}

func NewClueSolver() *ClueSolver { return &ClueSolver{} }

// Solve propagates the givens to a fixpoint and then searches. An empty
// cell during that first propagation means the givens themselves are
// contradictory and is returned as *EmptyCellError with its coordinates;
// dead ends below a choice point are absorbed by the search and only
// reported collectively as ErrUnsolvable.
func (s *ClueSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0

	g := fromBoard(b)
	if err := g.drain(); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	solved, err := s.search(ctx, g, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	out := solved.board()
	out.Fixed = b.Fixed
	return out, st, nil
}

// search runs one node of the depth-first search: drain, test for
// completion, otherwise branch on the most constrained cell. Candidates
// are tried in ascending order on independent clones; the first solution
// wins and remaining candidates are never explored.
func (s *ClueSolver) search(ctx context.Context, g *grid, nodes *int) (*grid, error) {
	if err := g.drain(); err != nil {
		return nil, err
	}
	if g.fullyDetermined() {
		return g, nil
	}
	row, col, set, ok := g.mostConstrained()
	if !ok {
		// Unreachable: not fully determined implies an ambiguous cell.
		return nil, domain.ErrUnsolvable
	}
	for _, v := range set.digits() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		*nodes++
		branch := g.clone()
		if err := branch.setDetermined(row, col, v); err != nil {
			return nil, err
		}
		solved, err := s.search(ctx, branch, nodes)
		if err != nil {
			if isDeadBranch(err) {
				continue
			}
			return nil, err
		}
		return solved, nil
	}
	return nil, domain.ErrUnsolvable
}

// isDeadBranch recognizes the two failure shapes a branch may report:
// an emptied cell during its propagation, or exhaustion of its own
// sub-branches. Anything else (context cancellation, a conflict defect)
// aborts the whole search.
func isDeadBranch(err error) bool {
	var empty *domain.EmptyCellError
	return errors.Is(err, domain.ErrUnsolvable) || errors.As(err, &empty)
}
