package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserNext(t *testing.T) {
	tcs := []struct {
		name     string
		previous []uint8
		curr     uint8
		expected func(*testing.T, *Action)
	}{
		{
			name:     "esc: ESC ( B -- charset designation",
			previous: []uint8{0x1B, '('},
			curr:     'B',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				assert.NotNil(t, action.ESCDispatchData)

				d := action.ESCDispatchData
				assert.EqualValues(t, 'B', d.Final)
				assert.EqualValues(t, 1, len(d.Intermediates))
				assert.EqualValues(t, '(', d.Intermediates[0])
			},
		},
		{
			name:     "esc: ESC 7 -- save cursor",
			previous: []uint8{0x1B},
			curr:     '7',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				assert.NotNil(t, action.ESCDispatchData)
				assert.EqualValues(t, '7', action.ESCDispatchData.Final)
				assert.Empty(t, action.ESCDispatchData.Intermediates)
			},
		},
		{
			name:     "csi: ESC [ 5 ; 1 0 H",
			previous: []uint8{0x1B, '[', '5', ';', '1', '0'},
			curr:     'H',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				assert.NotNil(t, action.CSIDispatchData)

				d := action.CSIDispatchData
				assert.EqualValues(t, 'H', d.Final)
				assert.Equal(t, []uint16{5, 10}, d.Params)
				assert.Empty(t, d.Intermediates)
			},
		},
		{
			name:     "csi: ESC [ H -- no params",
			previous: []uint8{0x1B, '['},
			curr:     'H',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				assert.NotNil(t, action.CSIDispatchData)
				assert.Empty(t, action.CSIDispatchData.Params)
			},
		},
		{
			name:     "csi: ESC [ ; 5 H -- leading empty param",
			previous: []uint8{0x1B, '[', ';', '5'},
			curr:     'H',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				assert.Equal(t, []uint16{0, 5}, action.CSIDispatchData.Params)
			},
		},
		{
			name:     "csi: ESC [ ? 4 7 h -- private mode",
			previous: []uint8{0x1B, '[', '?', '4', '7'},
			curr:     'h',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				d := action.CSIDispatchData
				assert.Equal(t, []uint16{47}, d.Params)
				assert.True(t, d.Private())
			},
		},
		{
			name:     "csi: colon separators mark sub-params",
			previous: []uint8{0x1B, '[', '4', ':', '3'},
			curr:     'm',
			expected: func(t *testing.T, action *Action) {
				assert.NotNil(t, action)
				d := action.CSIDispatchData
				assert.Equal(t, []uint16{4, 3}, d.Params)
				assert.True(t, d.ParamsSet.IsSet(0))
				assert.False(t, d.ParamsSet.IsSet(1))
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser()
			for _, prev := range tc.previous {
				p.Next(prev)
			}
			action := p.Next(tc.curr)
			tc.expected(t, action)
			assert.Equal(t, StateGround, p.State)
		})
	}
}

func TestParserParamCap(t *testing.T) {
	p := NewParser()
	p.Next(0x1B)
	p.Next('[')
	for range 8 {
		p.Next('9')
	}
	action := p.Next('A')
	assert.NotNil(t, action)
	assert.Equal(t, []uint16{MaxParamValue}, action.CSIDispatchData.Params)
}

func TestParserExcessParamsIgnored(t *testing.T) {
	p := NewParser()
	p.Next(0x1B)
	p.Next('[')
	for range MaxParams + 10 {
		p.Next('1')
		p.Next(';')
	}
	// The machine must still terminate cleanly on the final.
	p.Next('m')
	assert.Equal(t, StateGround, p.State)
}

func TestParserCanAbortsSequence(t *testing.T) {
	p := NewParser()
	p.Next(0x1B)
	p.Next('[')
	p.Next('5')
	action := p.Next(0x18) // CAN
	assert.NotNil(t, action)
	assert.Equal(t, ActionExecute, action.Type)
	assert.Equal(t, StateGround, p.State)
}

func TestParserMalformedCSIReturnsToGround(t *testing.T) {
	p := NewParser()
	p.Next(0x1B)
	p.Next('[')
	p.Next('5')
	// Private markers after digits are invalid: csiIgnore.
	p.Next('?')
	assert.Equal(t, StateCSIIgnore, p.State)
	action := p.Next('z')
	assert.Nil(t, action)
	assert.Equal(t, StateGround, p.State)
}

func TestParserOSCDiscarded(t *testing.T) {
	p := NewParser()
	p.Next(0x1B)
	p.Next(']')
	for _, c := range []byte("0;window title") {
		action := p.Next(c)
		assert.Nil(t, action)
	}
	p.Next(0x07) // BEL terminator
	assert.Equal(t, StateGround, p.State)
}

func TestParserPrintAndExecute(t *testing.T) {
	p := NewParser()

	action := p.Next('x')
	assert.Equal(t, ActionPrint, action.Type)
	assert.EqualValues(t, 'x', action.PrintData)

	action = p.Next(0x0A)
	assert.Equal(t, ActionExecute, action.Type)
	assert.EqualValues(t, 0x0A, action.ExecuteData)
}
