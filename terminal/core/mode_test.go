package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ModeState(t *testing.T) {
	state := NewModeState(ModePacked, ModePacked)

	// Defaults
	assert.True(t, state.Get(ModeWraparound),
		"Expected ModeWraparound to be on by default")
	assert.True(t, state.Get(ModeCursorVisible),
		"Expected ModeCursorVisible to be on by default")
	assert.False(t, state.Get(ModeInsert),
		"Expected ModeInsert to be off by default")

	state.Set(ModeInsert, true)
	assert.True(t, state.Get(ModeInsert))

	state.Set(ModeWraparound, false)
	assert.False(t, state.Get(ModeWraparound))

	// Reset returns to the defaults, not to all-false.
	state.Reset()
	assert.False(t, state.Get(ModeInsert))
	assert.True(t, state.Get(ModeWraparound))
}

func TestModeFromInt(t *testing.T) {
	mode := ModeFromInt(4, true)
	assert.NotNil(t, mode)
	assert.True(t, *mode == ModeInsert)

	mode = ModeFromInt(7, false)
	assert.NotNil(t, mode)
	assert.True(t, *mode == ModeWraparound)

	// Mode 4 is only an ANSI mode; as a DEC private mode it is unknown.
	assert.Nil(t, ModeFromInt(4, false))

	// Unknown modes resolve to nil and are ignored by callers.
	assert.Nil(t, ModeFromInt(12345, false))
}
