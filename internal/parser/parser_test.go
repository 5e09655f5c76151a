package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glushiator/sudoku-solver/internal/domain"
)

const sampleText = `
53++7++++
6++195+++
+98++++6+
8+++6+++3
4++8+3++1
7+++2+++6
+6++++28+
+++419++5
++++8++79
`

func TestParseSample(t *testing.T) {
	b, err := New().Parse(sampleText)
	require.NoError(t, err)

	assert.Equal(t, uint8(5), b.Values[0][0])
	assert.Equal(t, uint8(3), b.Values[0][1])
	assert.Equal(t, uint8(7), b.Values[0][4])
	assert.Equal(t, uint8(9), b.Values[8][8])
	assert.Zero(t, b.Values[0][2])

	assert.True(t, b.Fixed[0][0])
	assert.False(t, b.Fixed[0][2])
}

func TestParseIgnoresNoise(t *testing.T) {
	// Separators, labels, and stray punctuation are not tokens.
	noisy := "row: " + strings.ReplaceAll(sampleText, "\n", " | end\n\t")
	clean, err := New().Parse(sampleText)
	require.NoError(t, err)
	got, err := New().Parse(noisy)
	require.NoError(t, err)
	if diff := cmp.Diff(clean, got); diff != "" {
		t.Fatalf("noise changed the parse (-clean +noisy):\n%s", diff)
	}
}

func TestParseTokenCountErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tokens int
	}{
		{"one short", strings.Repeat("+", 80), 80},
		{"one long", strings.Repeat("+", 82), 82},
		{"multiple of nine but not a grid", strings.Repeat("1", 72), 72},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New().Parse(tt.text)
			require.Nil(t, b)
			var malformed *domain.MalformedPuzzleError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.tokens, malformed.Tokens)
		})
	}
}

func TestFormatRoundTrips(t *testing.T) {
	p := New()
	b, err := p.Parse(sampleText)
	require.NoError(t, err)

	again, err := p.Parse(p.Format(b))
	require.NoError(t, err)
	if diff := cmp.Diff(b.Values, again.Values); diff != "" {
		t.Fatalf("format/parse round trip drifted (-want +got):\n%s", diff)
	}
}

func TestSplit(t *testing.T) {
	p := New()
	src := sampleText + "\n--\n" + strings.Repeat("+", 81) + "\n--\n"
	chunks := p.Split(src)
	require.Len(t, chunks, 2, "trailing delimiter must not add an empty puzzle")

	_, err := p.Parse(chunks[0])
	assert.NoError(t, err)
	_, err = p.Parse(chunks[1])
	assert.NoError(t, err)

	assert.Empty(t, p.Split("-- just commentary --"))
}

func TestCustomPlaceholder(t *testing.T) {
	p := NewWithPlaceholder('.')
	text := strings.ReplaceAll(sampleText, "+", ".")
	b, err := p.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), b.Values[0][0])
	assert.Zero(t, b.Values[0][2])

	// A digit cannot mark unknowns; the parser falls back to '+'.
	fallback := NewWithPlaceholder('7')
	b, err = fallback.Parse(sampleText)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), b.Values[0][4])
}
