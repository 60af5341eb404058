package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotsPowerOnState(t *testing.T) {
	s := NewSlots()
	assert.Equal(t, G0, s.Active())
	assert.EqualValues(t, DesignatorUSASCII, s.Designator(G0))
	assert.EqualValues(t, DesignatorUSASCII, s.Designator(G1))
	assert.Equal(t, 'q', s.Translate('q'))
}

func TestDesignateSpecialGraphics(t *testing.T) {
	s := NewSlots()
	assert.True(t, s.Designate(G1, DesignatorSpecialGraphics))

	// Designation alone does not switch the active slot.
	assert.Equal(t, 'q', s.Translate('q'))

	s.ShiftOut()
	assert.Equal(t, '─', s.Translate('q'))
	assert.Equal(t, '│', s.Translate('x'))
	// Unmapped runes pass through.
	assert.Equal(t, 'Q', s.Translate('Q'))

	s.ShiftIn()
	assert.Equal(t, 'q', s.Translate('q'))
}

func TestDesignateUK(t *testing.T) {
	s := NewSlots()
	assert.True(t, s.Designate(G0, DesignatorUK))
	assert.Equal(t, '£', s.Translate('#'))
	assert.Equal(t, 'a', s.Translate('a'))
}

func TestDesignateInvalidSelector(t *testing.T) {
	s := NewSlots()
	s.Designate(G0, DesignatorSpecialGraphics)
	assert.False(t, s.Designate(G0, 'z'))
	// Binding unchanged.
	assert.EqualValues(t, DesignatorSpecialGraphics, s.Designator(G0))
}

func TestSaveRestore(t *testing.T) {
	s := NewSlots()
	s.Designate(G1, DesignatorSpecialGraphics)
	s.ShiftOut()
	snap := s.Save()

	s.Reset()
	assert.Equal(t, G0, s.Active())

	s.Restore(snap)
	assert.Equal(t, G1, s.Active())
	assert.Equal(t, '─', s.Translate('q'))
}
