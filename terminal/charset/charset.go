// Package charset implements the VT100 character set machinery: the
// static designation tables and the two G0/G1 slots switched by the
// SI/SO control characters.
package charset

// Table maps an incoming code point to the glyph the terminal would
// draw for it. Runes absent from a table pass through unchanged; a nil
// Table is the identity.
type Table map[rune]rune

// Designators accepted in ESC ( x / ESC ) x sequences.
const (
	DesignatorUSASCII         = 'B'
	DesignatorUK              = 'A'
	DesignatorSpecialGraphics = '0'
)

// specialGraphics maps the DEC special graphics (line drawing) set, as
// xterm renders it.
var specialGraphics = Table{
	'+': '→',
	',': '←',
	'-': '↑',
	'.': '↓',
	'0': '▮',
	'`': '◆',
	'a': '▒',
	'b': '␉',
	'c': '␌',
	'd': '␍',
	'e': '␊',
	'f': '°',
	'g': '±',
	'h': '␤',
	'i': '␋',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'o': '⎺',
	'p': '⎻',
	'q': '─',
	'r': '⎼',
	's': '⎽',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'y': '≤',
	'z': '≥',
	'{': 'π',
	'|': '≠',
	'}': '£',
	'~': '·',
}

// uk differs from US-ASCII only in the pound sign.
var uk = Table{
	'#': '£',
}

// tables is the process-wide designation table. Immutable after init.
var tables = map[byte]Table{
	DesignatorUSASCII:         nil,
	DesignatorUK:              uk,
	DesignatorSpecialGraphics: specialGraphics,
}

// Slot identifies one of the two switchable charset slots.
type Slot int

const (
	G0 Slot = iota
	G1
)

// Slots holds the G0/G1 designations and which of the two is active.
// The zero value is not usable; construct with NewSlots.
type Slots struct {
	designators [2]byte
	active      Slot
}

// NewSlots returns slots in their power-on state: both bound to
// US-ASCII, G0 active.
func NewSlots() *Slots {
	s := &Slots{}
	s.Reset()
	return s
}

// Reset restores the power-on bindings.
func (s *Slots) Reset() {
	s.designators = [2]byte{DesignatorUSASCII, DesignatorUSASCII}
	s.active = G0
}

// Designate rebinds a slot to the table named by the selector byte.
// Unknown selectors leave the binding unchanged and report false. The
// active slot is not affected.
func (s *Slots) Designate(slot Slot, selector byte) bool {
	if _, ok := tables[selector]; !ok {
		return false
	}
	s.designators[slot] = selector
	return true
}

// ShiftIn activates G0 (the SI control character).
func (s *Slots) ShiftIn() {
	s.active = G0
}

// ShiftOut activates G1 (the SO control character).
func (s *Slots) ShiftOut() {
	s.active = G1
}

// Active returns the currently active slot.
func (s *Slots) Active() Slot {
	return s.active
}

// Designator returns the designation byte bound to a slot.
func (s *Slots) Designator(slot Slot) byte {
	return s.designators[slot]
}

// Translate maps a rune through the active slot's table.
func (s *Slots) Translate(r rune) rune {
	table := tables[s.designators[s.active]]
	if table == nil {
		return r
	}
	if mapped, ok := table[r]; ok {
		return mapped
	}
	return r
}

// Snapshot captures the slot state for save-cursor.
type Snapshot struct {
	Designators [2]byte
	Active      Slot
}

// Save returns a copy of the current state.
func (s *Slots) Save() Snapshot {
	return Snapshot{Designators: s.designators, Active: s.active}
}

// Restore reinstates a previously saved state.
func (s *Slots) Restore(snap Snapshot) {
	s.designators = snap.Designators
	s.active = snap.Active
}
