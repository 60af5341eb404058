package stream

import (
	"slices"

	"github.com/amarao/vt102/logger"
	"github.com/amarao/vt102/terminal/ansi"
	"github.com/amarao/vt102/terminal/charset"
	"github.com/amarao/vt102/terminal/core"
	"github.com/amarao/vt102/terminal/handler"
	"github.com/amarao/vt102/terminal/parser"
	"github.com/amarao/vt102/terminal/sequences/csi"
	"github.com/amarao/vt102/terminal/sequences/esc"
	"github.com/amarao/vt102/terminal/sgr"
)

// Stream processes a stream of tty bytes and dispatches the
// recognized control functions to its listeners.
//
// A listener is any value; it only has to implement the handler
// interfaces for the events it cares about. Events a listener does
// not implement are simply not delivered to it. Listeners are called
// in attachment order.
type Stream struct {
	listeners   []any
	parser      *parser.Parser
	utf8Decoder *UTF8Decoder

	logger logger.Logger
}

func NewStream(log logger.Logger, listeners ...any) *Stream {
	if log == nil {
		log = logger.Nop()
	}
	return &Stream{
		listeners:   listeners,
		parser:      parser.NewParser(),
		utf8Decoder: NewUTF8Decoder(),
		logger:      log,
	}
}

// Attach registers a listener at the end of the dispatch order.
// Attaching the same listener twice delivers its events twice.
func (s *Stream) Attach(listener any) {
	s.listeners = append(slices.Clone(s.listeners), listener)
}

// Detach removes a previously attached listener, matched by identity.
// Detaching an unknown listener is a no-op.
func (s *Stream) Detach(listener any) {
	kept := make([]any, 0, len(s.listeners))
	for _, l := range s.listeners {
		if l != listener {
			kept = append(kept, l)
		}
	}
	s.listeners = kept
}

// dispatch delivers one event to every listener implementing the
// handler interface T.
func dispatch[T any](s *Stream, fn func(T)) {
	for _, l := range s.listeners {
		if h, ok := l.(T); ok {
			fn(h)
		}
	}
}

// NextSlice processes a chunk of bytes. In the ground state runs of
// ordinary text are decoded as UTF-8 in bulk; control sequences drop
// to the byte-at-a-time machine.
func (s *Stream) NextSlice(input []uint8) {
	// See DecodeUntilControlSeq for the capacity contract.
	cpBuf := make([]uint32, 2*len(input))

	offset := 0
	for offset < len(input) {
		if s.parser.State != parser.StateGround || input[offset] == ansi.C0.ESC {
			s.nextNonUtf8(input[offset])
			offset++
			continue
		}

		decoded, consumed := s.utf8Decoder.DecodeUntilControlSeq(input[offset:], cpBuf)
		for _, cp := range cpBuf[:decoded] {
			s.handleCodepoint(cp)
		}
		offset += consumed
	}
}

// NextString processes already-decoded text.
func (s *Stream) NextString(input string) {
	for _, r := range input {
		s.NextRune(r)
	}
}

// NextRune processes one decoded character.
func (s *Stream) NextRune(r rune) {
	if r < 0x80 {
		s.Next(uint8(r))
		return
	}
	if s.parser.State == parser.StateGround {
		s.print(uint32(r))
	}
	// Non-ASCII inside a control sequence has no defined meaning and
	// is dropped; the sequence in progress continues.
}

// Next processes a single byte. Prefer NextSlice when multiple bytes
// are available at once.
func (s *Stream) Next(c uint8) {
	switch s.parser.State {
	case parser.StateGround:
		s.nextUtf8(c)
	default:
		s.nextNonUtf8(c)
	}
}

// nextUtf8 feeds one byte through the UTF-8 machine. Assumes the
// parser is in the ground state.
func (s *Stream) nextUtf8(c uint8) {
	cp, generated, consumed := s.utf8Decoder.Next(c)
	if generated {
		s.handleCodepoint(cp)
	}
	if !consumed {
		cp, generated, consumed = s.utf8Decoder.Next(c)
		// The machine never rejects the same byte twice in a row.
		if consumed && generated {
			s.handleCodepoint(cp)
		}
	}
}

// handleCodepoint routes a decoded code point: C0 controls execute,
// ESC enters the escape machine, anything else prints.
func (s *Stream) handleCodepoint(cp uint32) {
	if cp == uint32(ansi.C0.ESC) {
		s.nextNonUtf8(uint8(cp))
		return
	}
	if cp < 0x20 || cp == uint32(ansi.C0.DEL) {
		s.execute(uint8(cp))
		return
	}
	s.print(cp)
}

// nextNonUtf8 feeds one byte through the escape-sequence machine.
func (s *Stream) nextNonUtf8(c uint8) {
	action := s.parser.Next(c)
	if action == nil {
		return
	}
	switch action.Type {
	case parser.ActionPrint:
		s.print(uint32(action.PrintData))

	case parser.ActionExecute:
		s.execute(action.ExecuteData)

	case parser.ActionCSIDispatch:
		s.csiDispatch(action.CSIDispatchData)

	case parser.ActionESCDispatch:
		s.escDispatch(action.ESCDispatchData)
	}
}

func (s *Stream) execute(c uint8) {
	c0 := ansi.C0
	switch c {
	case c0.NUL, c0.ENQ, c0.DEL:
		// Fillers and answerback; nothing to do.

	case c0.BEL:
		dispatch(s, func(h handler.BellHandler) { h.Bell() })

	case c0.BS:
		dispatch(s, func(h handler.EditorHandler) { h.Backspace() })

	case c0.HT:
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorTabRight(1) })

	case c0.LF, c0.VT, c0.FF:
		dispatch(s, func(h handler.EditorHandler) { h.LineFeed() })

	case c0.CR:
		dispatch(s, func(h handler.EditorHandler) { h.CarriageReturn() })

	case c0.SO:
		dispatch(s, func(h handler.CharsetHandler) { h.ShiftOut() })

	case c0.SI:
		dispatch(s, func(h handler.CharsetHandler) { h.ShiftIn() })

	case c0.CAN, c0.SUB:
		// Sequence aborts are handled inside the parser.

	default:
		s.logger.Debug("ignoring control character", "code", ansi.String(c))
	}
}

func (s *Stream) print(cp uint32) {
	dispatch(s, func(h handler.PrintHandler) { h.Print(rune(cp)) })
}

// countOf reads the leading parameter of a counting command: missing
// or zero means def. Extra parameters are ignored.
func countOf(c *csi.Command, def uint16) uint16 {
	if len(c.Params) == 0 || c.Params[0] == 0 {
		return def
	}
	return c.Params[0]
}

// modeOf reads the leading parameter of a selector command, where
// zero is a meaningful value and only absence means def.
func modeOf(c *csi.Command, def uint16) uint16 {
	if len(c.Params) == 0 {
		return def
	}
	return c.Params[0]
}

// csiDispatch routes the host-to-terminal CSI repertoire. Finals
// outside it are logged and discarded; they must never disturb the
// listeners.
func (s *Stream) csiDispatch(c *csi.Command) {
	switch c.Final {
	case '@':
		// ICH - Insert Character
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.InsertBlanks(n) })

	case 'A':
		// CUU - Cursor Up
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorUp(n, false) })

	case 'B':
		// CUD - Cursor Down
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorDown(n, false) })

	case 'C':
		// CUF - Cursor Forward
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorRight(n) })

	case 'D':
		// CUB - Cursor Backward
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorLeft(n) })

	case 'E':
		// CNL - Cursor Next Line
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorDown(n, true) })

	case 'F':
		// CPL - Cursor Preceding Line
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorUp(n, true) })

	case 'G', '`':
		// CHA / HPA - Cursor Horizontal Absolute
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorCol(n) })

	case 'H', 'f':
		// CUP / HVP - Cursor Position
		var row, col uint16 = 1, 1
		if len(c.Params) >= 1 && c.Params[0] != 0 {
			row = c.Params[0]
		}
		if len(c.Params) >= 2 && c.Params[1] != 0 {
			col = c.Params[1]
		}
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorPosition(row, col) })

	case 'I':
		// CHT - Cursor Horizontal Tabulation
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorTabRight(n) })

	case 'J':
		// ED - Erase in Display
		mode := csi.EDMode(modeOf(c, 0))
		dispatch(s, func(h handler.EditorHandler) { h.EraseInDisplay(mode) })

	case 'K':
		// EL - Erase in Line
		mode := csi.ELMode(modeOf(c, 0))
		dispatch(s, func(h handler.EditorHandler) { h.EraseInLine(mode) })

	case 'L':
		// IL - Insert Line
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.InsertLines(n) })

	case 'M':
		// DL - Delete Line
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.DeleteLines(n) })

	case 'P':
		// DCH - Delete Character
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.DeleteChars(n) })

	case 'S':
		// SU - Scroll Up
		n := countOf(c, 1)
		dispatch(s, func(h handler.ScrollHandler) { h.ScrollUp(n) })

	case 'T':
		// SD - Scroll Down
		n := countOf(c, 1)
		dispatch(s, func(h handler.ScrollHandler) { h.ScrollDown(n) })

	case 'X':
		// ECH - Erase Character
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.EraseChars(n) })

	case 'Z':
		// CBT - Cursor Backward Tabulation
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorTabLeft(n) })

	case 'a':
		// HPR - Horizontal Position Relative
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorRight(n) })

	case 'c':
		// DA - Device Attributes
		arg := modeOf(c, 0)
		dispatch(s, func(h handler.ReportHandler) { h.DeviceAttributes(arg) })

	case 'd':
		// VPA - Vertical Position Absolute
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorRow(n) })

	case 'e':
		// VPR - Vertical Position Relative
		n := countOf(c, 1)
		dispatch(s, func(h handler.EditorHandler) { h.SetCursorDown(n, false) })

	case 'g':
		// TBC - Tabulation Clear
		mode := csi.TBCMode(modeOf(c, 0))
		dispatch(s, func(h handler.FormatEffectorHandler) { h.ClearTabStops(mode) })

	case 'h', 'l':
		// SM / RM - Set or Reset Mode
		s.setModes(c, c.Final == 'h')

	case 'm':
		// SGR - Select Graphic Rendition
		if len(c.Intermediates) > 0 {
			s.logger.Warn("discarding SGR with intermediates", "command", c)
			return
		}
		p := sgr.Parser{
			Params:    c.Params,
			ParamsSep: c.ParamsSet,
		}
		for attr := range p.Iter() {
			if attr == nil {
				continue
			}
			dispatch(s, func(h handler.SGRHandler) { h.SetGraphicsRendition(attr) })
		}

	case 'n':
		// DSR - Device Status Report
		arg := modeOf(c, 0)
		dispatch(s, func(h handler.ReportHandler) { h.DeviceStatusReport(arg) })

	case 'r':
		// DECSTBM - Set Top and Bottom Margins
		if c.Private() {
			s.logger.Debug("discarding private CSI r", "command", c)
			return
		}
		var top, bottom uint16
		if len(c.Params) >= 1 {
			top = c.Params[0]
		}
		if len(c.Params) >= 2 {
			bottom = c.Params[1]
		}
		dispatch(s, func(h handler.MarginHandler) { h.SetMargins(top, bottom) })

	default:
		s.logger.Debug("discarding unknown CSI", "command", c)
	}
}

// setModes applies SM/RM. Every parameter names one mode; modes we
// don't model are accepted and ignored.
func (s *Stream) setModes(c *csi.Command, value bool) {
	ansiMode := !c.Private()
	for _, p := range c.Params {
		mode := core.ModeFromInt(int(p), ansiMode)
		if mode == nil {
			s.logger.Debug("ignoring unknown mode", "mode", p, "ansi", ansiMode)
			continue
		}
		dispatch(s, func(h handler.ModeHandler) { h.SetMode(*mode, value) })
	}
}

// escDispatch routes single-character escape finals and charset
// designation.
func (s *Stream) escDispatch(c *esc.Command) {
	// Charset designation carries the slot in its intermediate.
	if len(c.Intermediates) == 1 {
		switch c.Intermediates[0] {
		case '(':
			dispatch(s, func(h handler.CharsetHandler) { h.DesignateCharset(charset.G0, c.Final) })
			return
		case ')':
			dispatch(s, func(h handler.CharsetHandler) { h.DesignateCharset(charset.G1, c.Final) })
			return
		case '#':
			if c.Final == '8' {
				// DECALN - Screen Alignment Display
				dispatch(s, func(h handler.FormatEffectorHandler) { h.AlignmentDisplay() })
			} else {
				s.logger.Debug("discarding unknown ESC #", "command", c)
			}
			return
		}
	}
	if len(c.Intermediates) > 0 {
		s.logger.Debug("discarding ESC with intermediates", "command", c)
		return
	}

	switch c.Final {
	case '7':
		// DECSC - Save Cursor
		dispatch(s, func(h handler.SaveCursorHandler) { h.SaveCursor() })

	case '8':
		// DECRC - Restore Cursor
		dispatch(s, func(h handler.SaveCursorHandler) { h.RestoreCursor() })

	case 'D':
		// IND - Index
		dispatch(s, func(h handler.FormatEffectorHandler) { h.Index() })

	case 'E':
		// NEL - Next Line
		dispatch(s, func(h handler.FormatEffectorHandler) { h.NextLine() })

	case 'H':
		// HTS - Horizontal Tab Set
		dispatch(s, func(h handler.FormatEffectorHandler) { h.TabSet() })

	case 'M':
		// RI - Reverse Index
		dispatch(s, func(h handler.FormatEffectorHandler) { h.ReverseIndex() })

	case 'c':
		// RIS - Reset to Initial State
		dispatch(s, func(h handler.FormatEffectorHandler) { h.FullReset() })

	case '\\':
		// ST - String Terminator; nothing to do.

	default:
		s.logger.Debug("discarding unknown ESC", "command", c)
	}
}
