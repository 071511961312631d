// Package bitmask provides a fixed-width set of small non-negative
// integers, used to track which valves are still closed during a search
// and to enumerate the valve splits between two agents.
//
// A Mask is a plain uint64: it is comparable, hashable and copied by value,
// so search states stay cheap to compare.
package bitmask

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxBits is the number of positions a Mask can hold.
const MaxBits = 64

// Mask is a set of bit positions in [0, MaxBits).
type Mask uint64

// Full returns the set {0, ..., n-1}. n is clamped to [0, MaxBits].
func Full(n int) Mask {
	switch {
	case n <= 0:
		return 0
	case n >= MaxBits:
		return ^Mask(0)
	default:
		return Mask(1)<<uint(n) - 1
	}
}

// Of returns the set holding the given positions.
func Of(positions ...int) Mask {
	var m Mask
	for _, p := range positions {
		m = m.With(p)
	}

	return m
}

// Has reports whether position i is in m.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// With returns m ∪ {i}.
func (m Mask) With(i int) Mask { return m | 1<<uint(i) }

// Without returns m − {i}.
func (m Mask) Without(i int) Mask { return m &^ (1 << uint(i)) }

// Count returns |m|.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Empty reports whether m holds no position.
func (m Mask) Empty() bool { return m == 0 }

// Complement returns universe − m.
func (m Mask) Complement(universe Mask) Mask { return universe &^ m }

// SubsetOf reports whether every position of m is in other.
func (m Mask) SubsetOf(other Mask) bool { return m&^other == 0 }

// Bits returns the positions of m in ascending order.
func (m Mask) Bits() []int {
	out := make([]int, 0, m.Count())
	m.Each(func(i int) { out = append(out, i) })

	return out
}

// Each calls fn for every position of m in ascending order.
func (m Mask) Each(fn func(i int)) {
	for x := uint64(m); x != 0; x &= x - 1 {
		fn(bits.TrailingZeros64(x))
	}
}

// Expand maps a compact sub-mask onto selected positions: bit k of sub
// selects positions[k]. Bits of sub beyond len(positions) are ignored.
func Expand(sub Mask, positions []int) Mask {
	var m Mask
	for k, p := range positions {
		if sub.Has(k) {
			m = m.With(p)
		}
	}

	return m
}

// String renders m as "{0,3,5}".
func (m Mask) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	m.Each(func(i int) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(strconv.Itoa(i))
	})
	b.WriteByte('}')

	return b.String()
}
