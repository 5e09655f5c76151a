package domain

import (
	"errors"
	"fmt"
)

// ErrUnsolvable reports that every candidate at every reachable choice
// point was exhausted without reaching a solution.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// EmptyCellError reports that elimination left a cell with no remaining
// candidates. Inside the search it marks a dead branch; callers only see
// it when the initial givens are already contradictory.
type EmptyCellError struct {
	Row int
	Col int
}

func (e *EmptyCellError) Error() string {
	return fmt.Sprintf("cell (%d,%d) has no remaining candidates", e.Row, e.Col)
}

// MalformedPuzzleError reports an input whose recognized-token count does
// not form a complete 9x9 grid.
type MalformedPuzzleError struct {
	Tokens int
}

func (e *MalformedPuzzleError) Error() string {
	return fmt.Sprintf("malformed puzzle: got %d cells, want 81", e.Tokens)
}

// ConflictError reports an attempt to determine a cell that already holds
// a different digit. This guards against logic defects; puzzle-data
// contradictions surface as EmptyCellError instead.
type ConflictError struct {
	Row  int
	Col  int
	Have uint8
	Want uint8
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cell (%d,%d) already determined as %d, cannot set %d",
		e.Row, e.Col, e.Have, e.Want)
}
