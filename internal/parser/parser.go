// Package parser owns the textual puzzle format: 81 recognized tokens per
// puzzle, where a token is a digit 1-9 (a given) or the placeholder rune
// (an unknown cell). Every other character is ignored, so rows may be
// separated by newlines, spaces, or nothing at all.
package parser

import (
	"strings"

	"github.com/Glushiator/sudoku-solver/internal/domain"
)

// DefaultPlaceholder marks unknown cells in puzzle text.
const DefaultPlaceholder = '+'

// Delimiter separates concatenated puzzles in one source.
const Delimiter = "--"

// Parser scans puzzle text into boards.
type Parser struct {
	placeholder rune
}

func New() *Parser { return &Parser{placeholder: DefaultPlaceholder} }

// NewWithPlaceholder builds a parser recognizing a custom unknown-cell rune.
// Digits cannot serve as placeholders; such a request falls back to the default.
func NewWithPlaceholder(placeholder rune) *Parser {
	if placeholder >= '1' && placeholder <= '9' {
		placeholder = DefaultPlaceholder
	}
	return &Parser{placeholder: placeholder}
}

// Parse reads one puzzle. Givens become determined cells marked Fixed;
// placeholder tokens stay zero. Any recognized-token count other than 81
// yields a MalformedPuzzleError.
func (p *Parser) Parse(text string) (*domain.Board, error) {
	tokens := make([]uint8, 0, 81)
	for _, r := range text {
		switch {
		case r >= '1' && r <= '9':
			tokens = append(tokens, uint8(r-'0'))
		case r == p.placeholder:
			tokens = append(tokens, 0)
		}
	}
	if len(tokens) != 81 {
		return nil, &domain.MalformedPuzzleError{Tokens: len(tokens)}
	}
	b := &domain.Board{}
	for i, v := range tokens {
		r, c := i/9, i%9
		b.Values[r][c] = v
		b.Fixed[r][c] = v != 0
	}
	return b, nil
}

// Format renders a board as 9 rows of 9 tokens, undetermined cells shown
// with the parser's placeholder. Output round-trips through Parse.
func (p *Parser) Format(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteRune(p.placeholder)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Split separates a multi-puzzle source on the delimiter, dropping chunks
// that carry no recognized tokens at all (e.g. trailing whitespace after
// the final delimiter).
func (p *Parser) Split(text string) []string {
	var out []string
	for _, chunk := range strings.Split(text, Delimiter) {
		if p.hasTokens(chunk) {
			out = append(out, chunk)
		}
	}
	return out
}

func (p *Parser) hasTokens(text string) bool {
	for _, r := range text {
		if (r >= '1' && r <= '9') || r == p.placeholder {
			return true
		}
	}
	return false
}
