package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Glushiator/sudoku-solver/internal/domain"
)

// peersOf lists the 20 cells sharing a row, column, or box with (row,col).
func peersOf(row, col int) map[domain.CellCoord]bool {
	peers := map[domain.CellCoord]bool{}
	for i := 0; i < 9; i++ {
		peers[domain.CellCoord{Row: row, Col: i}] = true
		peers[domain.CellCoord{Row: i, Col: col}] = true
	}
	br, bc := row/3*3, col/3*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			peers[domain.CellCoord{Row: r, Col: c}] = true
		}
	}
	delete(peers, domain.CellCoord{Row: row, Col: col})
	return peers
}

func TestApplyClueStrikesAllPeers(t *testing.T) {
	g := newGrid()
	require.NoError(t, g.setDetermined(4, 4, 7))
	require.NoError(t, g.drain())

	peers := peersOf(4, 4)
	assert.Len(t, peers, 20)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			coord := domain.CellCoord{Row: r, Col: c}
			switch {
			case r == 4 && c == 4:
				v, ok := g.cells[r][c].sole()
				require.True(t, ok)
				assert.Equal(t, uint8(7), v, "clue cell must keep its digit")
			case peers[coord]:
				assert.False(t, g.cells[r][c].has(7), "peer (%d,%d) still holds 7", r, c)
			default:
				assert.True(t, g.cells[r][c].has(7), "non-peer (%d,%d) lost 7", r, c)
			}
		}
	}
}

func TestRemoveCandidate(t *testing.T) {
	t.Run("absent digit is a no-op", func(t *testing.T) {
		g := newGrid()
		g.cells[0][0] = digitBit(3) | digitBit(5)
		require.NoError(t, g.removeCandidate(0, 0, 9))
		assert.Equal(t, 2, g.cells[0][0].count())
		assert.Empty(t, g.queue)
	})

	t.Run("singleton result determines and queues", func(t *testing.T) {
		g := newGrid()
		g.cells[0][0] = digitBit(3) | digitBit(5)
		require.NoError(t, g.removeCandidate(0, 0, 3))
		assert.True(t, g.determined[0][0])
		assert.Equal(t, []domain.Clue{{Row: 0, Col: 0, Value: 5}}, g.queue)
	})

	t.Run("emptied set fails with coordinates", func(t *testing.T) {
		g := newGrid()
		g.cells[6][2] = digitBit(4)
		err := g.removeCandidate(6, 2, 4)
		var empty *domain.EmptyCellError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, 6, empty.Row)
		assert.Equal(t, 2, empty.Col)
	})

	t.Run("determined cell with another digit is untouched", func(t *testing.T) {
		g := newGrid()
		require.NoError(t, g.setDetermined(0, 0, 8))
		queued := len(g.queue)
		require.NoError(t, g.removeCandidate(0, 0, 4))
		v, ok := g.cells[0][0].sole()
		require.True(t, ok)
		assert.Equal(t, uint8(8), v)
		assert.Len(t, g.queue, queued, "no new clue may appear")
	})
}

func TestDrainFollowsDeductionChains(t *testing.T) {
	// Cells (0,0) and (0,1) are nearly decided; determining (0,0)
	// cascades into (0,1) through a clue queued mid-drain.
	g := newGrid()
	g.cells[0][0] = digitBit(1) | digitBit(2)
	g.cells[0][1] = digitBit(2) | digitBit(3)

	require.NoError(t, g.setDetermined(0, 0, 2))
	require.NoError(t, g.drain())

	v, ok := g.cells[0][1].sole()
	require.True(t, ok)
	assert.Equal(t, uint8(3), v)
	assert.True(t, g.determined[0][1])
	assert.Empty(t, g.queue, "drain must reach a fixpoint")
	assert.False(t, g.cells[5][0].has(2), "column peers must lose the digit too")
}
