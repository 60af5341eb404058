package core

import (
	"maps"
	"slices"
)

// Mode describes one settable terminal mode. ANSI modes are set with
// CSI h/l, DEC private modes with CSI ? h/l.
type Mode struct {
	Name  string
	Value int
	// True if this is an ANSI mode rather than a DEC private mode.
	Ansi    bool
	Default bool
}

func entryForMode(name string, value int, ansi bool, defaultMode bool) Mode {
	return Mode{
		Name:    name,
		Value:   value,
		Ansi:    ansi,
		Default: defaultMode,
	}
}

var (
	// ANSI modes
	ModeInsert   = entryForMode("insert", 4, true, false)     // IRM
	ModeLineFeed = entryForMode("line feed", 20, true, false) // LNM

	// DEC private modes
	ModeColumn132     = entryForMode("132 column", 3, false, false)           // DECCOLM
	ModeReverseVideo  = entryForMode("reverse video", 5, false, false)        // DECSCNM
	ModeOrigin        = entryForMode("origin", 6, false, false)               // DECOM
	ModeWraparound    = entryForMode("wraparound", 7, false, true)            // DECAWM
	ModeCursorVisible = entryForMode("cursor visible", 25, false, true)       // DECTCEM
	ModeAltScreen     = entryForMode("alternate screen", 47, false, false)    // xterm
	ModeAltScreenSave = entryForMode("alt screen + save", 1049, false, false) // xterm

	// The full list of modes the emulator reacts to. For documentation
	// on these values see the VT100/VT102 user guides and the xterm
	// ctlseqs reference; anything not listed here is accepted on the
	// wire but ignored.
	entries = []Mode{
		ModeInsert,
		ModeLineFeed,
		ModeColumn132,
		ModeReverseVideo,
		ModeOrigin,
		ModeWraparound,
		ModeCursorVisible,
		ModeAltScreen,
		ModeAltScreenSave,
	}
)

// ModePacked maps every known mode to its default value. Use it as the
// starting state for a fresh screen.
var ModePacked = func() map[Mode]bool {
	packed := make(map[Mode]bool, len(entries))
	for _, m := range entries {
		packed[m] = m.Default
	}
	return packed
}()

// ModeState tracks the current value of every known mode plus the
// defaults to return to on reset.
type ModeState struct {
	values   map[Mode]bool
	defaults map[Mode]bool
}

func NewModeState(values map[Mode]bool, def map[Mode]bool) *ModeState {
	state := &ModeState{
		values:   make(map[Mode]bool, len(values)),
		defaults: make(map[Mode]bool, len(def)),
	}
	maps.Copy(state.values, values)
	maps.Copy(state.defaults, def)
	return state
}

func (s *ModeState) Set(m Mode, value bool) {
	s.values[m] = value
}

func (s *ModeState) Get(m Mode) bool {
	return s.values[m]
}

func (s *ModeState) Reset() {
	s.values = make(map[Mode]bool, len(s.defaults))
	maps.Copy(s.values, s.defaults)
}

// ModeFromInt resolves a wire-protocol mode number to a known mode, or
// nil for modes the emulator accepts but ignores.
func ModeFromInt(input int, ansi bool) *Mode {
	for entry := range slices.Values(entries) {
		if entry.Value == input && entry.Ansi == ansi {
			return &entry
		}
	}
	return nil
}
