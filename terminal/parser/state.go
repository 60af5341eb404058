package parser

// State of the parsing state machine.
type State int

const (
	// StateGround handles ordinary text and C0 controls.
	StateGround State = iota
	// StateEscape is entered after ESC.
	StateEscape
	// StateEscapeIntermediate collects intermediates such as '(' and
	// '#' before the escape final byte.
	StateEscapeIntermediate
	// StateCSIEntry is entered after CSI, before any parameter.
	StateCSIEntry
	// StateCSIParam collects numeric parameters.
	StateCSIParam
	// StateCSIIntermediate collects intermediates after parameters.
	StateCSIIntermediate
	// StateCSIIgnore swallows a malformed CSI sequence up to its
	// final byte.
	StateCSIIgnore
	// StateOSCString swallows an OSC payload up to BEL or ST.
	StateOSCString
	// StateSosPmApcString swallows SOS/PM/APC/DCS payloads up to ST.
	StateSosPmApcString
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "ground"
	case StateEscape:
		return "escape"
	case StateEscapeIntermediate:
		return "escapeIntermediate"
	case StateCSIEntry:
		return "csiEntry"
	case StateCSIParam:
		return "csiParam"
	case StateCSIIntermediate:
		return "csiIntermediate"
	case StateCSIIgnore:
		return "csiIgnore"
	case StateOSCString:
		return "oscString"
	case StateSosPmApcString:
		return "sosPmApcString"
	default:
		return "unknown"
	}
}
