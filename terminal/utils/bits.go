package utils

import (
	"math/bits"
)

const bitSetSize = 64 // bits in a uint64 word

// StaticBitSet is a fixed-size bit set. The parser uses one to track
// which CSI parameters were terminated by a colon separator.
type StaticBitSet struct {
	words []uint64
	size  int
}

// NewStaticBitSet creates a bit set holding size bits, all zero.
func NewStaticBitSet(size int) *StaticBitSet {
	s := &StaticBitSet{size: size}
	s.init()
	return s
}

// Set sets the bit at idx.
func (s *StaticBitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "index out of bounds")
	word, offset := s.addr(idx)
	s.words[word] |= 1 << offset
}

// Unset clears the bit at idx.
func (s *StaticBitSet) Unset(idx int) {
	Assert(idx >= 0 && idx < s.size, "index out of bounds")
	word, offset := s.addr(idx)
	s.words[word] &^= 1 << offset
}

// IsSet reports whether the bit at idx is set. Out-of-range indices
// read as false so callers can probe one past the last parameter.
func (s *StaticBitSet) IsSet(idx int) bool {
	if idx < 0 || idx >= s.size {
		return false
	}
	word, offset := s.addr(idx)
	return s.words[word]&(1<<offset) != 0
}

// Count returns the number of set bits.
func (s *StaticBitSet) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Clear zeroes every bit.
func (s *StaticBitSet) Clear() {
	s.init()
}

func (s *StaticBitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}

func (s *StaticBitSet) init() {
	s.words = make([]uint64, (s.size+bitSetSize-1)/bitSetSize)
}
