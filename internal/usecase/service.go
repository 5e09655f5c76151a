package usecase

import (
	"context"
	"errors"

	"github.com/Glushiator/sudoku-solver/internal/domain"
	"github.com/Glushiator/sudoku-solver/internal/parser"
	"github.com/Glushiator/sudoku-solver/internal/ports"
)

// Service wires the parser, solver, and puzzle source into the batch
// workflow: read, split, solve each puzzle independently.
type Service struct {
	Solver ports.Solver
	Parser *parser.Parser
	Source ports.Source
}

func NewService(s ports.Solver, p *parser.Parser, src ports.Source) *Service {
	return &Service{Solver: s, Parser: p, Source: src}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Report is the outcome for one puzzle of a batch. Exactly one of Board
// or Err is set: a solved board, or a MalformedPuzzleError,
// EmptyCellError, or ErrUnsolvable describing the failure.
type Report struct {
	Puzzle domain.Puzzle
	Board  *domain.Board
	Stats  ports.Stats
	Err    error
}

// SolveText parses and solves a single puzzle.
func (u *Service) SolveText(ctx context.Context, index int, text string) Report {
	rep := Report{Puzzle: domain.Puzzle{Index: index, Text: text}}
	if u.Solver == nil || u.Parser == nil {
		rep.Err = errNotConfigured
		return rep
	}
	b, err := u.Parser.Parse(text)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Puzzle.Board = *b
	rep.Board, rep.Stats, rep.Err = u.Solver.Solve(ctx, b)
	return rep
}

// SolveBatch solves each puzzle text on its own; one malformed or
// unsolvable entry never stops the rest. Context cancellation does: once
// ctx is done the remaining entries report its error.
func (u *Service) SolveBatch(ctx context.Context, texts []string) []Report {
	reports := make([]Report, 0, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			reports = append(reports, Report{
				Puzzle: domain.Puzzle{Index: i, Text: text},
				Err:    err,
			})
			continue
		}
		reports = append(reports, u.SolveText(ctx, i, text))
	}
	return reports
}

// SolveFile reads puzzles from the configured source and solves them all.
func (u *Service) SolveFile(ctx context.Context, path string) ([]Report, error) {
	if u.Source == nil {
		return nil, errNotConfigured
	}
	texts, err := u.Source.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return u.SolveBatch(ctx, texts), nil
}
