package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Glushiator/sudoku-solver/internal/parser"
)

// FS reads puzzle batches from the filesystem. A path may name a single
// text file or a directory, in which case every *.txt file in it (sorted
// by name, for a stable batch order) contributes its puzzles.
type FS struct {
	parser *parser.Parser
}

func NewFS(p *parser.Parser) *FS { return &FS{parser: p} }

func (s *FS) Read(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle source: %w", err)
	}
	if !info.IsDir() {
		return s.readFile(path)
	}

	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle source: %w", err)
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var texts []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chunk, err := s.readFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		texts = append(texts, chunk...)
	}
	return texts, nil
}

func (s *FS) readFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle source: %w", err)
	}
	return s.parser.Split(string(data)), nil
}
