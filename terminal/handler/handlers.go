package handler

import (
	"github.com/amarao/vt102/terminal/charset"
	"github.com/amarao/vt102/terminal/core"
	"github.com/amarao/vt102/terminal/sequences/csi"
	"github.com/amarao/vt102/terminal/sgr"
)

type (
	// PrintHandler receives ordinary printable characters.
	PrintHandler interface {
		// Print draws a single code point at the cursor.
		Print(cp rune)
	}

	// EditorHandler includes all cursor movement and content related
	// methods.
	EditorHandler interface {
		// Backspace moves the cursor left one column, unless it is at
		// the left margin, in which case no action occurs.
		Backspace()
		// CarriageReturn moves the cursor to column 0 of the current
		// line.
		CarriageReturn()
		// LineFeed moves the cursor down one line, scrolling the
		// region if at the bottom margin.
		LineFeed()
		// SetCursorUp moves the cursor up by offset. carriage controls
		// whether the column also resets to 0.
		SetCursorUp(offset uint16, carriage bool)
		// SetCursorDown moves the cursor down by offset. carriage
		// controls whether the column also resets to 0.
		SetCursorDown(offset uint16, carriage bool)
		// SetCursorRight moves the cursor right by offset, clamped to
		// the last column.
		SetCursorRight(offset uint16)
		// SetCursorLeft moves the cursor left by offset, clamped to
		// column 0.
		SetCursorLeft(offset uint16)
		// SetCursorCol moves the cursor to an absolute 1-indexed
		// column on the current line.
		SetCursorCol(col uint16)
		// SetCursorRow moves the cursor to an absolute 1-indexed line,
		// keeping the column.
		SetCursorRow(row uint16)
		// SetCursorPosition moves the cursor to a 1-indexed row and
		// column; 0 means default (1).
		SetCursorPosition(row, col uint16)
		// SetCursorTabRight moves the cursor to the repeated next tab
		// stop, or the last column if none remain.
		SetCursorTabRight(repeated uint16)
		// SetCursorTabLeft moves the cursor to the repeated previous
		// tab stop, or column 0 if none remain.
		SetCursorTabLeft(repeated uint16)
		// EraseInDisplay erases part of the screen per the mode.
		EraseInDisplay(mode csi.EDMode)
		// EraseInLine erases part of the current line per the mode.
		EraseInLine(mode csi.ELMode)
		// EraseChars blanks repeated cells rightward of the cursor in
		// place, without shifting.
		EraseChars(repeated uint16)
		// InsertLines inserts blank lines at the cursor, pushing lines
		// below it toward the bottom margin.
		InsertLines(repeated uint16)
		// DeleteLines deletes lines at the cursor, pulling lines below
		// up toward it.
		DeleteLines(repeated uint16)
		// InsertBlanks shifts the cursor's line right, inserting blank
		// cells at the cursor.
		InsertBlanks(repeated uint16)
		// DeleteChars deletes cells at the cursor, shifting the rest
		// of the line left.
		DeleteChars(repeated uint16)
	}

	// FormatEffectorHandler covers the single-character ESC finals.
	FormatEffectorHandler interface {
		// Index moves the cursor down one line without changing the
		// column, scrolling at the bottom margin.
		Index()
		// ReverseIndex moves the cursor up one line without changing
		// the column, scrolling down at the top margin.
		ReverseIndex()
		// NextLine is Index plus carriage return.
		NextLine()
		// TabSet sets a horizontal tab stop at the cursor column.
		TabSet()
		// ClearTabStops removes the current column's stop or all stops
		// per the mode.
		ClearTabStops(mode csi.TBCMode)
		// FullReset returns every piece of terminal state to its
		// power-on value.
		FullReset()
		// AlignmentDisplay fills the screen with "E" (DECALN).
		AlignmentDisplay()
	}

	// SGRHandler applies graphic rendition attributes.
	SGRHandler interface {
		SetGraphicsRendition(attr *sgr.Attribute)
	}

	// ModeHandler toggles terminal modes. Unknown modes never reach
	// the handler.
	ModeHandler interface {
		SetMode(mode core.Mode, value bool)
	}

	// CharsetHandler reacts to charset designation and slot switching.
	CharsetHandler interface {
		// DesignateCharset binds a slot to the set named by the
		// selector byte.
		DesignateCharset(slot charset.Slot, selector byte)
		// ShiftIn activates G0.
		ShiftIn()
		// ShiftOut activates G1.
		ShiftOut()
	}

	// SaveCursorHandler implements the single save/restore slot.
	SaveCursorHandler interface {
		SaveCursor()
		RestoreCursor()
	}

	// MarginHandler sets the scrolling region.
	MarginHandler interface {
		// SetMargins sets the top and bottom margins, 1-indexed; 0
		// means default (full screen).
		SetMargins(top, bottom uint16)
	}

	// ScrollHandler implements explicit region scrolling (SU/SD).
	ScrollHandler interface {
		ScrollUp(repeated uint16)
		ScrollDown(repeated uint16)
	}

	// BellHandler is notified of BEL characters.
	BellHandler interface {
		Bell()
	}

	// ReportHandler receives host-report requests (DSR/DA). A pure
	// in-memory screen has nowhere to answer, so implementations may
	// simply record or ignore them.
	ReportHandler interface {
		DeviceStatusReport(arg uint16)
		DeviceAttributes(arg uint16)
	}
)
