package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidates(t *testing.T) {
	assert.Equal(t, 9, allDigits.count())
	for v := uint8(1); v <= 9; v++ {
		assert.True(t, allDigits.has(v))
	}

	set := allDigits
	for v := uint8(1); v <= 8; v++ {
		set = set.without(v)
	}
	assert.Equal(t, 1, set.count())
	v, ok := set.sole()
	assert.True(t, ok)
	assert.Equal(t, uint8(9), v)

	_, ok = allDigits.sole()
	assert.False(t, ok)

	pair := digitBit(7) | digitBit(2)
	assert.Equal(t, []uint8{2, 7}, pair.digits(), "digits come out ascending")
	assert.Empty(t, pair.without(2).without(7).digits())
}
