package parser

import "math"

// Transition is one edge of the state machine: the next state and the
// action to take on the way.
type Transition struct {
	state  State
	action ActionType
}

func transition(s State, a ActionType) Transition {
	return Transition{state: s, action: a}
}

// parserTable maps input byte and current state to a transition.
//
// This is based on the vt100.net state machine:
// https://vt100.net/emu/dec_ansi_parser
// with two deviations: OSC/DCS/SOS/PM/APC payloads are consumed and
// discarded rather than collected (nothing in this emulator interprets
// them), and colon is a parameter separator inside CSI so that SGR
// sub-parameters parse.
type parserTable map[uint8]map[State]Transition

func newParserTable() parserTable {
	var t parserTable = make(map[uint8]map[State]Transition)

	// init table
	for ch := 0; ch <= math.MaxUint8; ch++ {
		t[uint8(ch)] = make(map[State]Transition)
	}

	// anywhere
	{
		anywhere := []State{
			StateGround,
			StateEscape,
			StateEscapeIntermediate,
			StateCSIEntry,
			StateCSIParam,
			StateCSIIntermediate,
			StateCSIIgnore,
			StateOSCString,
			StateSosPmApcString,
		}
		for _, source := range anywhere {
			// CAN and SUB abort any sequence in progress.
			t.addSingle(0x18, source, StateGround, ActionExecute)
			t.addSingle(0x1A, source, StateGround, ActionExecute)

			// 8-bit C1 controls.
			t.addRange(0x80, 0x8F, source, StateGround, ActionExecute)
			t.addRange(0x91, 0x97, source, StateGround, ActionExecute)
			t.addSingle(0x99, source, StateGround, ActionExecute)
			t.addSingle(0x9A, source, StateGround, ActionExecute)
			t.addSingle(0x9C, source, StateGround, ActionNone) // ST

			// => escape
			t.addSingle(0x1B, source, StateEscape, ActionNone)

			// => csiEntry
			t.addSingle(0x9B, source, StateCSIEntry, ActionNone)

			// => oscString
			t.addSingle(0x9D, source, StateOSCString, ActionNone)

			// => sosPmApcString (DCS included: payloads are discarded)
			t.addSingle(0x90, source, StateSosPmApcString, ActionNone)
			t.addSingle(0x98, source, StateSosPmApcString, ActionNone)
			t.addSingle(0x9E, source, StateSosPmApcString, ActionNone)
			t.addSingle(0x9F, source, StateSosPmApcString, ActionNone)
		}
	}

	// ground
	{
		source := StateGround

		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addRange(0x20, 0x7E, source, source, ActionPrint)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// escape
	{
		source := StateEscape

		// => ground
		t.addRange(0x30, 0x4F, source, StateGround, ActionESCDispatch)
		t.addRange(0x51, 0x57, source, StateGround, ActionESCDispatch)
		t.addSingle(0x59, source, StateGround, ActionESCDispatch)
		t.addSingle(0x5A, source, StateGround, ActionESCDispatch)
		t.addSingle(0x5C, source, StateGround, ActionESCDispatch)
		t.addRange(0x60, 0x7E, source, StateGround, ActionESCDispatch)

		// => escapeIntermediate
		t.addRange(0x20, 0x2F, source, StateEscapeIntermediate, ActionCollect)

		// => sosPmApcString (ESC P is DCS: consumed and discarded)
		t.addSingle(0x50, source, StateSosPmApcString, ActionNone)
		t.addSingle(0x58, source, StateSosPmApcString, ActionNone)
		t.addSingle(0x5E, source, StateSosPmApcString, ActionNone)
		t.addSingle(0x5F, source, StateSosPmApcString, ActionNone)

		// => oscString
		t.addSingle(0x5D, source, StateOSCString, ActionNone)

		// => csiEntry
		t.addSingle(0x5B, source, StateCSIEntry, ActionNone)

		// internal events
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// escapeIntermediate
	{
		source := StateEscapeIntermediate

		// => ground
		t.addRange(0x30, 0x7E, source, StateGround, ActionESCDispatch)

		// internal events
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addRange(0x20, 0x2F, source, source, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiEntry
	{
		source := StateCSIEntry

		// => ground
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)

		// => csiParam
		t.addRange(0x30, 0x39, source, StateCSIParam, ActionParam)
		t.addSingle(0x3A, source, StateCSIParam, ActionParam)
		t.addSingle(0x3B, source, StateCSIParam, ActionParam)
		t.addRange(0x3C, 0x3F, source, StateCSIParam, ActionCollect)

		// => csiIntermediate
		t.addRange(0x20, 0x2F, source, StateCSIIntermediate, ActionCollect)

		// internal events
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiParam
	{
		source := StateCSIParam

		// => ground
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)

		// => csiIgnore
		t.addRange(0x3C, 0x3F, source, StateCSIIgnore, ActionNone)

		// => csiIntermediate
		t.addRange(0x20, 0x2F, source, StateCSIIntermediate, ActionCollect)

		// internal events
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addRange(0x30, 0x39, source, source, ActionParam)
		t.addSingle(0x3A, source, source, ActionParam)
		t.addSingle(0x3B, source, source, ActionParam)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiIntermediate
	{
		source := StateCSIIntermediate

		// => ground
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)

		// => csiIgnore
		t.addRange(0x30, 0x3F, source, StateCSIIgnore, ActionNone)

		// internal events
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addRange(0x20, 0x2F, source, source, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// csiIgnore
	{
		source := StateCSIIgnore

		// => ground, with no dispatch
		t.addRange(0x40, 0x7E, source, StateGround, ActionNone)

		// internal events
		t.addRange(0x00, 0x17, source, source, ActionExecute)
		t.addSingle(0x19, source, source, ActionExecute)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)
		t.addRange(0x20, 0x3F, source, source, ActionIgnore)
		t.addSingle(0x7F, source, source, ActionIgnore)
	}

	// oscString
	{
		source := StateOSCString

		// BEL terminates an OSC in practice (xterm).
		t.addSingle(0x07, source, StateGround, ActionNone)

		// internal events: the payload is discarded
		t.addRange(0x00, 0x06, source, source, ActionIgnore)
		t.addRange(0x08, 0x17, source, source, ActionIgnore)
		t.addSingle(0x19, source, source, ActionIgnore)
		t.addRange(0x1C, 0x1F, source, source, ActionIgnore)
		t.addRange(0x20, 0x7F, source, source, ActionIgnore)
	}

	// sosPmApcString
	{
		source := StateSosPmApcString

		// internal events: the payload is discarded; ST or any C1 exits
		// via the anywhere rules.
		t.addRange(0x00, 0x17, source, source, ActionIgnore)
		t.addSingle(0x19, source, source, ActionIgnore)
		t.addRange(0x1C, 0x1F, source, source, ActionIgnore)
		t.addRange(0x20, 0x7F, source, source, ActionIgnore)
	}

	return t
}

func (t parserTable) addSingle(c uint8, s0 State, s1 State, a ActionType) {
	t[c][s0] = transition(s1, a)
}

func (t parserTable) addRange(from, to uint8, s0 State, s1 State, a ActionType) {
	for c := int(from); c <= int(to); c++ {
		t.addSingle(uint8(c), s0, s1, a)
	}
}
