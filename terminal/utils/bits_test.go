package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticBitSetBasic(t *testing.T) {
	s := NewStaticBitSet(24)
	assert.Equal(t, 0, s.Count())
	s.Set(0)
	s.Set(7)
	s.Set(23)
	assert.True(t, s.IsSet(0))
	assert.True(t, s.IsSet(7))
	assert.True(t, s.IsSet(23))
	assert.False(t, s.IsSet(8))
	assert.Equal(t, 3, s.Count())

	s.Unset(7)
	assert.False(t, s.IsSet(7))
	assert.Equal(t, 2, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.IsSet(0))
}

func TestStaticBitSetOutOfRangeRead(t *testing.T) {
	s := NewStaticBitSet(4)
	// Probing past the end is allowed and reads as unset.
	assert.False(t, s.IsSet(4))
	assert.False(t, s.IsSet(100))
	assert.False(t, s.IsSet(-1))
}

func TestStaticBitSetCrossesWords(t *testing.T) {
	s := NewStaticBitSet(130)
	s.Set(63)
	s.Set(64)
	s.Set(129)
	assert.True(t, s.IsSet(63))
	assert.True(t, s.IsSet(64))
	assert.True(t, s.IsSet(129))
	assert.Equal(t, 3, s.Count())
}
