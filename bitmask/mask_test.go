package bitmask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/valveplan/bitmask"
)

func TestFull(t *testing.T) {
	assert.Equal(t, bitmask.Mask(0), bitmask.Full(0))
	assert.Equal(t, bitmask.Mask(0), bitmask.Full(-3))
	assert.Equal(t, bitmask.Mask(0b111), bitmask.Full(3))
	assert.Equal(t, 64, bitmask.Full(64).Count())
	assert.Equal(t, 64, bitmask.Full(100).Count())
}

func TestSetOperations(t *testing.T) {
	m := bitmask.Of(0, 3, 5)
	assert.True(t, m.Has(3))
	assert.False(t, m.Has(4))
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []int{0, 3, 5}, m.Bits())
	assert.Equal(t, "{0,3,5}", m.String())

	assert.Equal(t, bitmask.Of(0, 5), m.Without(3))
	assert.Equal(t, m, m.Without(4), "removing an absent position is a no-op")
	assert.Equal(t, bitmask.Of(0, 1, 3, 5), m.With(1))
	assert.Equal(t, bitmask.Of(1, 2, 4), m.Complement(bitmask.Full(6)))
	assert.True(t, bitmask.Of(3).SubsetOf(m))
	assert.False(t, bitmask.Of(4).SubsetOf(m))

	var empty bitmask.Mask
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.Bits())
	assert.Equal(t, "{}", empty.String())
	assert.True(t, bitmask.Of(63).Has(63))
}

func TestExpand(t *testing.T) {
	positions := []int{2, 7, 9}
	assert.Equal(t, bitmask.Mask(0), bitmask.Expand(0, positions))
	assert.Equal(t, bitmask.Of(2, 9), bitmask.Expand(0b101, positions))
	assert.Equal(t, bitmask.Of(2, 7, 9), bitmask.Expand(0b11111, positions))
}

func TestComplementPairsCoverUniverse(t *testing.T) {
	full := bitmask.Full(5)
	for m := bitmask.Mask(0); m <= full; m++ {
		c := m.Complement(full)
		assert.Zero(t, m&c)
		assert.Equal(t, full, m|c)
	}
}
