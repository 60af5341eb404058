package tabstops

import (
	"github.com/amarao/vt102/terminal/size"
)

// Unit is the storage word for tabstop bits.
type Unit = uint8

const (
	unitBits     size.CellCountInt = 8 // bits in Unit (uint8)
	preallocCols                   = 512
	preallocLen                    = int(preallocCols / unitBits)

	// DefaultInterval is the power-on tabstop interval.
	DefaultInterval = 8
)

// Tabstops tracks tabstop columns as a bitset. Columns up to
// preallocCols live in a fixed array so common terminal widths never
// allocate; wider screens spill into a dynamic slice.
type Tabstops struct {
	cols     size.CellCountInt
	prealloc [preallocLen]Unit
	dynamic  []Unit
}

var masks = func() [unitBits]Unit {
	var m [unitBits]Unit
	for i := range unitBits {
		m[i] = 1 << i
	}
	return m
}()

func entry(col size.CellCountInt) int { return int(col / unitBits) }
func index(col size.CellCountInt) int { return int(col % unitBits) }

// NewTabstops creates tabstops for the given width, set at every
// interval columns. An interval of zero means no initial stops.
func NewTabstops(cols size.CellCountInt, interval uint8) *Tabstops {
	t := &Tabstops{cols: cols}
	t.Resize(cols)
	t.Reset(interval)
	return t
}

// Set sets a tabstop at the given column (0-indexed).
func (t *Tabstops) Set(col size.CellCountInt) {
	i, idx := entry(col), index(col)
	if i < preallocLen {
		t.prealloc[i] |= masks[idx]
		return
	}
	if dynI := i - preallocLen; dynI < len(t.dynamic) {
		t.dynamic[dynI] |= masks[idx]
	}
}

// Unset clears the tabstop at the given column (0-indexed).
func (t *Tabstops) Unset(col size.CellCountInt) {
	i, idx := entry(col), index(col)
	if i < preallocLen {
		t.prealloc[i] &^= masks[idx]
		return
	}
	if dynI := i - preallocLen; dynI < len(t.dynamic) {
		t.dynamic[dynI] &^= masks[idx]
	}
}

// Get reports whether a tabstop is set at the given column.
func (t *Tabstops) Get(col size.CellCountInt) bool {
	i, idx := entry(col), index(col)
	var unit Unit
	if i < preallocLen {
		unit = t.prealloc[i]
	} else if dynI := i - preallocLen; dynI < len(t.dynamic) {
		unit = t.dynamic[dynI]
	}
	return unit&masks[idx] != 0
}

// Resize grows the backing store so it can track up to cols columns.
// Existing stops within the new width are preserved; shrinking keeps
// the storage so a later grow restores nothing stale (callers reset
// stops beyond the width themselves if they care).
func (t *Tabstops) Resize(cols size.CellCountInt) {
	t.cols = cols
	if cols <= preallocCols {
		return
	}

	needed := (int(cols) - preallocCols + int(unitBits) - 1) / int(unitBits)
	if needed <= len(t.dynamic) {
		return
	}
	grown := make([]Unit, needed)
	copy(grown, t.dynamic)
	t.dynamic = grown
}

// Capacity returns the number of columns the current storage covers.
func (t *Tabstops) Capacity() int {
	return (preallocLen + len(t.dynamic)) * int(unitBits)
}

// Reset clears every tabstop, then sets stops at the given interval
// across the current width.
func (t *Tabstops) Reset(interval uint8) {
	for i := range t.prealloc {
		t.prealloc[i] = 0
	}
	for i := range t.dynamic {
		t.dynamic[i] = 0
	}
	if interval == 0 {
		return
	}
	for i := size.CellCountInt(interval); i < t.cols; i += size.CellCountInt(interval) {
		t.Set(i)
	}
}
