package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Glushiator/sudoku-solver/internal/domain"
	"github.com/Glushiator/sudoku-solver/internal/infrastructure/source"
	"github.com/Glushiator/sudoku-solver/internal/parser"
	"github.com/Glushiator/sudoku-solver/internal/ports"
	"github.com/Glushiator/sudoku-solver/internal/solver"
	"github.com/Glushiator/sudoku-solver/internal/usecase"
)

func main() {
	input := flag.String("input", "", "puzzle file or directory of *.txt files")
	solverKind := flag.String("solver", "clue", "solver to use: clue|backtrack")
	placeholder := flag.String("placeholder", "+", "character marking unknown cells")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	timeout := flag.Duration("timeout", 0, "per-batch time limit, 0 for none")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: sudoku-solve -input PATH [-solver clue|backtrack]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var p *parser.Parser
	if runes := []rune(*placeholder); len(runes) == 1 {
		p = parser.NewWithPlaceholder(runes[0])
	} else {
		p = parser.New()
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewClueSolver()
	}

	uc := usecase.NewService(s, p, source.NewFS(p))

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	logger.Info("solving", "input", *input, "solver", *solverKind)
	reports, err := uc.SolveFile(ctx, *input)
	if err != nil {
		logger.Error("cannot read puzzles", "err", err)
		os.Exit(1)
	}
	if !printReports(os.Stdout, logger, p, reports) {
		os.Exit(1)
	}
}

// printReports renders one outcome per puzzle and reports whether every
// puzzle solved.
func printReports(w io.Writer, logger *slog.Logger, p *parser.Parser, reports []usecase.Report) bool {
	allSolved := true
	for _, rep := range reports {
		fmt.Fprintf(w, "puzzle %d:\n", rep.Puzzle.Index+1)
		switch {
		case rep.Err == nil:
			fmt.Fprint(w, p.Format(rep.Board))
		case errors.Is(rep.Err, domain.ErrUnsolvable):
			fmt.Fprintln(w, "NO SOLUTION")
			allSolved = false
		default:
			var empty *domain.EmptyCellError
			if errors.As(rep.Err, &empty) {
				fmt.Fprintf(w, "ERROR: empty cell at (%d,%d)\n", empty.Row, empty.Col)
			} else {
				fmt.Fprintf(w, "ERROR: %v\n", rep.Err)
			}
			allSolved = false
		}
		logger.Info("puzzle done",
			"index", rep.Puzzle.Index,
			"nodes", rep.Stats.Nodes,
			"dur", rep.Stats.Duration.Round(time.Microsecond),
			"solved", rep.Err == nil,
		)
	}
	return allSolved
}
