package solver

import "math/bits"

// candidates is a bitset over digits 1-9: bit v is set while digit v is
// still possible for the cell.
type candidates uint16

// allDigits has bits 1..9 set.
const allDigits candidates = 0x3FE

func digitBit(v uint8) candidates { return 1 << v }

func (s candidates) has(v uint8) bool { return s&digitBit(v) != 0 }

func (s candidates) without(v uint8) candidates { return s &^ digitBit(v) }

func (s candidates) count() int { return bits.OnesCount16(uint16(s)) }

// sole returns the single remaining digit; ok is false unless the set is
// a singleton.
func (s candidates) sole() (uint8, bool) {
	if s.count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// digits lists the remaining candidates in ascending order.
func (s candidates) digits() []uint8 {
	out := make([]uint8, 0, s.count())
	for v := uint8(1); v <= 9; v++ {
		if s.has(v) {
			out = append(out, v)
		}
	}
	return out
}
