package stream

import "github.com/amarao/vt102/terminal/ansi"

// UTF8Decoder is an incremental UTF-8 state machine.
//
// The tables come from Bjoern Hoehrmann's DFA decoder
// (http://bjoern.hoehrmann.de/utf-8/decoder/dfa), extended to emit a
// replacement character for ill-formed sequences instead of stopping.
type UTF8Decoder struct {
	state       uint8
	accumulator uint32
}

func NewUTF8Decoder() *UTF8Decoder {
	return &UTF8Decoder{state: stateUTF8Accept}
}

const (
	stateUTF8Accept = 0
	stateUTF8Reject = 12
)

var utf8d = [364]uint8{
	// Maps bytes to character classes.
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	// Maps (state, character class) to the next state.
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// DecodeUntilControlSeq decodes UTF-8 from input into cpBuf until an
// ESC byte is found, reporting the number of code points written and
// the number of bytes consumed. A byte the machine rejects is
// replayed in place, so consumed is always an input offset. Trailing
// bytes of a partial sequence count as consumed; they live in the
// machine state until the sequence completes on a later call.
//
// cpBuf must hold at least 2*len(input) entries: an ill-formed
// sequence can emit a replacement character plus the replayed byte's
// own code point.
func (d *UTF8Decoder) DecodeUntilControlSeq(
	input []uint8,
	cpBuf []uint32,
) (decoded int, consumed int) {
	for consumed < len(input) {
		c := input[consumed]
		if c == ansi.C0.ESC {
			return decoded, consumed
		}

		cp, generated, isConsumed := d.Next(c)
		if generated {
			cpBuf[decoded] = cp
			decoded++
		}
		if isConsumed {
			consumed++
		}
	}
	return decoded, consumed
}

// Next feeds one byte into the machine. It reports the code point
// generated, if any, and whether the byte was consumed. A byte is
// left unconsumed only when it terminated an ill-formed sequence; the
// replacement character is emitted and the caller must feed the same
// byte again.
func (d *UTF8Decoder) Next(c uint8) (cp uint32, generated bool, consumed bool) {
	typ := utf8d[c]

	initial := d.state

	if d.state != stateUTF8Accept {
		d.accumulator <<= 6
		d.accumulator |= uint32(c) & 0x3F
	} else {
		d.accumulator = (uint32(0xFF) >> typ) & uint32(c)
	}
	d.state = utf8d[256+int(d.state)+int(typ)]

	switch d.state {
	case stateUTF8Accept:
		defer func() { d.accumulator = 0 }()
		return d.accumulator, true, true

	case stateUTF8Reject:
		d.accumulator = 0
		d.state = stateUTF8Accept

		// If the first byte of a sequence was rejected it is consumed,
		// otherwise the offending byte must be replayed.
		return 0xFFFD, true, initial == stateUTF8Accept

	default:
		return 0, false, true
	}
}
