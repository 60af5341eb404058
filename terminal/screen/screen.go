// Package screen implements the terminal screen model: a flat
// row-major cell grid plus the cursor, margins, modes, tab stops and
// charset slots that the control sequences act on.
//
// Screen implements the handler interfaces dispatched by the stream;
// attach it to a stream.Stream and feed bytes.
package screen

import (
	"strings"

	dw "github.com/mattn/go-runewidth"

	"github.com/amarao/vt102/logger"
	"github.com/amarao/vt102/terminal/charset"
	"github.com/amarao/vt102/terminal/coordinate"
	"github.com/amarao/vt102/terminal/core"
	"github.com/amarao/vt102/terminal/sequences/csi"
	"github.com/amarao/vt102/terminal/sgr"
	"github.com/amarao/vt102/terminal/size"
	"github.com/amarao/vt102/terminal/tabstops"
	"github.com/amarao/vt102/terminal/utils"
)

type Options struct {
	Cols int // The number of columns in the screen
	Rows int // The number of rows in the screen

	// The default mode state. A full reset reverts to this state.
	// Nil means the standard power-on defaults.
	Modes map[core.Mode]bool

	Logger logger.Logger
}

// Screen owns the display state. All mutation happens through the
// handler methods; everything else is a read-only query.
type Screen struct {
	Cursor Cursor
	Modes  *core.ModeState

	cols, rows size.CellCountInt

	// The active grid, row-major, len == rows*cols. alt is the
	// inactive buffer swapped in by the alternate-screen modes.
	grid []Cell
	alt  []Cell

	// Scrolling region margins, 0-indexed, inclusive.
	top, bottom size.CellCountInt

	charsets *charset.Slots
	tabstops *tabstops.Tabstops

	saved *savedCursor

	// Diagnostics that have nowhere to go on a screen with no host
	// connection: counted or recorded for callers to inspect.
	bells   int
	lastDSR uint16
	lastDA  uint16

	logger logger.Logger
}

func NewScreen(opts Options) *Screen {
	utils.Assert(opts.Cols > 0 && opts.Rows > 0, "screen dimensions must be positive")
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	modes := opts.Modes
	if modes == nil {
		modes = core.ModePacked
	}

	cols := size.CellCountInt(opts.Cols)
	rows := size.CellCountInt(opts.Rows)
	s := &Screen{
		cols:     cols,
		rows:     rows,
		grid:     newGrid(cols, rows),
		alt:      newGrid(cols, rows),
		bottom:   rows - 1,
		Modes:    core.NewModeState(modes, modes),
		charsets: charset.NewSlots(),
		tabstops: tabstops.NewTabstops(cols, tabstops.DefaultInterval),
		logger:   log,
	}
	return s
}

func newGrid(cols, rows size.CellCountInt) []Cell {
	grid := make([]Cell, int(cols)*int(rows))
	for i := range grid {
		grid[i] = blankCell()
	}
	return grid
}

// Queries

func (s *Screen) Cols() int { return int(s.cols) }
func (s *Screen) Rows() int { return int(s.rows) }

// Cell returns the cell at 0-indexed column x, row y.
func (s *Screen) Cell(x, y int) Cell {
	return s.grid[y*int(s.cols)+x]
}

// Row returns a copy of row y.
func (s *Screen) Row(y int) []Cell {
	start := y * int(s.cols)
	row := make([]Cell, s.cols)
	copy(row, s.grid[start:start+int(s.cols)])
	return row
}

// Display returns a copy of the whole grid, row by row.
func (s *Screen) Display() [][]Cell {
	display := make([][]Cell, s.rows)
	for y := range int(s.rows) {
		display[y] = s.Row(y)
	}
	return display
}

// PlainString renders the grid as text: rows joined by newlines,
// trailing blanks preserved as spaces, so every line is exactly Cols
// characters wide.
func (s *Screen) PlainString() string {
	var sb strings.Builder
	for y := range int(s.rows) {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range int(s.cols) {
			c := s.Cell(x, y)
			if c.Rune == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}

// TrimmedString is PlainString with trailing blanks removed from each
// row. Convenient in tests and logs.
func (s *Screen) TrimmedString() string {
	lines := strings.Split(s.PlainString(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// CursorPos returns the cursor location, 0-indexed.
func (s *Screen) CursorPos() coordinate.Point[size.CellCountInt] {
	return coordinate.NewPoint(s.Cursor.X, s.Cursor.Y)
}

// Margins returns the scrolling region, 0-indexed inclusive.
func (s *Screen) Margins() (top, bottom int) {
	return int(s.top), int(s.bottom)
}

// BellCount reports how many BEL characters arrived since the last
// reset.
func (s *Screen) BellCount() int { return s.bells }

// Charsets exposes the G0/G1 slot state.
func (s *Screen) Charsets() *charset.Slots { return s.charsets }

func (s *Screen) index(x, y size.CellCountInt) int {
	return int(y)*int(s.cols) + int(x)
}

// eraseCell is what erase operations leave behind: a blank carrying
// the current rendition's background, so colored backgrounds persist
// through an erase.
func (s *Screen) eraseCell() Cell {
	c := blankCell()
	c.Style.BackgroundColor = s.Cursor.Style.BackgroundColor
	return c
}

func (s *Screen) clearCells(y, from, to size.CellCountInt) {
	fill := s.eraseCell()
	base := int(y) * int(s.cols)
	for x := int(from); x < int(to); x++ {
		s.grid[base+x] = fill
	}
}

func (s *Screen) clearRows(from, to size.CellCountInt) {
	for y := from; y <= to; y++ {
		s.clearCells(y, 0, s.cols)
	}
}

// Printing

// Print draws one character at the cursor: charset translation,
// pending-wrap resolution, insert-mode shifting, then the write.
func (s *Screen) Print(cp rune) {
	cp = s.charsets.Translate(cp)

	var width size.CellCountInt
	if cp < 0xFF {
		width = 1
	} else {
		width = size.CellCountInt(dw.RuneWidth(cp))
	}
	if width == 0 {
		// Combining marks and other zero-width characters are not
		// modeled; drop them rather than corrupt the grid.
		s.logger.Debug("ignoring zero-width character", "cp", cp)
		return
	}

	if s.Cursor.PendingWrap {
		if s.Modes.Get(core.ModeWraparound) {
			s.printWrap()
		} else {
			// Autowrap off: keep overwriting the last column.
			s.Cursor.PendingWrap = false
		}
	}

	if s.Modes.Get(core.ModeInsert) && s.Cursor.X+width < s.cols {
		s.InsertBlanks(uint16(width))
	}

	switch width {
	case 1:
		s.setCell(Cell{Rune: cp, Style: s.Cursor.Style})

	case 2:
		if s.Cursor.X == s.cols-1 {
			// No room for the pair. Write the glyph narrow in the last
			// column, as xterm does when it cannot split.
			s.setCell(Cell{Rune: cp, Style: s.Cursor.Style})
			s.Cursor.PendingWrap = true
			return
		}
		s.setCell(Cell{Rune: cp, Wide: WideWide, Style: s.Cursor.Style})
		s.Cursor.X++
		s.setCell(Cell{Rune: ' ', Wide: WideSpacerTail, Style: s.Cursor.Style})
		width = 1 // the cursor already advanced over the wide half
	}

	if s.Cursor.X+width >= s.cols {
		s.Cursor.X = s.cols - 1
		s.Cursor.PendingWrap = true
		return
	}
	s.Cursor.X += width
}

// setCell writes at the cursor, splitting any wide pair the write
// lands on.
func (s *Screen) setCell(c Cell) {
	i := s.index(s.Cursor.X, s.Cursor.Y)
	old := s.grid[i]
	switch old.Wide {
	case WideWide:
		// Overwriting the head orphans the tail.
		if s.Cursor.X < s.cols-1 {
			s.grid[i+1] = s.eraseCell()
		}
	case WideSpacerTail:
		// Overwriting the tail orphans the head.
		if s.Cursor.X > 0 {
			s.grid[i-1] = s.eraseCell()
		}
	}
	s.grid[i] = c
}

func (s *Screen) printWrap() {
	s.Cursor.PendingWrap = false
	s.Index()
	s.Cursor.X = 0
}

// C0 editing

// Backspace moves the cursor back a column (but not past column 0).
func (s *Screen) Backspace() {
	s.SetCursorLeft(1)
}

// CarriageReturn moves the cursor to the first column of the current
// line.
func (s *Screen) CarriageReturn() {
	s.Cursor.PendingWrap = false
	s.Cursor.X = 0
}

// LineFeed moves the cursor to the next line, scrolling at the bottom
// margin. With line-feed mode (LNM) set it also returns the carriage.
func (s *Screen) LineFeed() {
	s.Index()
	if s.Modes.Get(core.ModeLineFeed) {
		s.CarriageReturn()
	}
}

// Bell counts a BEL; a memory-only screen has nothing to ring.
func (s *Screen) Bell() {
	s.bells++
}

// Format effectors

// Index moves the cursor down one line keeping the column. On the
// bottom margin it scrolls the region up instead; below the region it
// stops at the last screen line.
func (s *Screen) Index() {
	s.Cursor.PendingWrap = false

	// Outside the scrolling region: plain move, no scroll.
	if s.Cursor.Y < s.top || s.Cursor.Y > s.bottom {
		if s.Cursor.Y < s.rows-1 {
			s.Cursor.Y++
		}
		return
	}

	if s.Cursor.Y == s.bottom {
		s.scrollUp(1)
		return
	}
	s.Cursor.Y++
}

// ReverseIndex moves the cursor up one line keeping the column,
// scrolling the region down when on the top margin.
func (s *Screen) ReverseIndex() {
	s.Cursor.PendingWrap = false

	if s.Cursor.Y < s.top || s.Cursor.Y > s.bottom {
		if s.Cursor.Y > 0 {
			s.Cursor.Y--
		}
		return
	}

	if s.Cursor.Y == s.top {
		s.scrollDown(1)
		return
	}
	s.Cursor.Y--
}

// NextLine is Index plus carriage return.
func (s *Screen) NextLine() {
	s.Index()
	s.CarriageReturn()
}

// TabSet places a tab stop at the cursor column.
func (s *Screen) TabSet() {
	s.tabstops.Set(s.Cursor.X)
}

// ClearTabStops removes the stop at the cursor (mode 0) or every stop
// (mode 3). Other modes are ignored.
func (s *Screen) ClearTabStops(mode csi.TBCMode) {
	switch mode {
	case csi.TBCModeCurrent:
		s.tabstops.Unset(s.Cursor.X)
	case csi.TBCModeAll:
		s.tabstops.Reset(0)
	default:
		s.logger.Debug("ignoring tab clear", "mode", mode)
	}
}

// AlignmentDisplay fills the screen with "E" (DECALN), homes the
// cursor and resets the margins.
func (s *Screen) AlignmentDisplay() {
	for i := range s.grid {
		s.grid[i] = Cell{Rune: 'E'}
	}
	s.top, s.bottom = 0, s.rows-1
	s.Cursor.X, s.Cursor.Y = 0, 0
	s.Cursor.PendingWrap = false
}

// FullReset returns the screen to its freshly constructed state.
func (s *Screen) FullReset() {
	for i := range s.grid {
		s.grid[i] = blankCell()
	}
	for i := range s.alt {
		s.alt[i] = blankCell()
	}
	s.Cursor = Cursor{}
	s.top, s.bottom = 0, s.rows-1
	s.Modes.Reset()
	s.charsets.Reset()
	s.tabstops.Reset(tabstops.DefaultInterval)
	s.saved = nil
	s.bells = 0
	s.lastDSR = 0
	s.lastDA = 0
}

// Cursor movement

// SetCursorUp moves the cursor up offset lines, stopping at the top
// margin when inside the region, the screen top otherwise.
func (s *Screen) SetCursorUp(offset uint16, carriage bool) {
	s.Cursor.PendingWrap = false

	var limit size.CellCountInt
	if s.Cursor.Y >= s.top {
		limit = s.Cursor.Y - s.top
	} else {
		limit = s.Cursor.Y
	}
	s.Cursor.Y -= min(limit, size.CellCountInt(max(offset, 1)))
	if carriage {
		s.Cursor.X = 0
	}
}

// SetCursorDown moves the cursor down offset lines, stopping at the
// bottom margin when inside the region, the screen bottom otherwise.
func (s *Screen) SetCursorDown(offset uint16, carriage bool) {
	s.Cursor.PendingWrap = false

	var limit size.CellCountInt
	if s.Cursor.Y <= s.bottom {
		limit = s.bottom - s.Cursor.Y
	} else {
		limit = s.rows - 1 - s.Cursor.Y
	}
	s.Cursor.Y += min(limit, size.CellCountInt(max(offset, 1)))
	if carriage {
		s.Cursor.X = 0
	}
}

// SetCursorRight moves the cursor right, stopping at the last column.
func (s *Screen) SetCursorRight(offset uint16) {
	s.Cursor.PendingWrap = false
	limit := s.cols - 1 - s.Cursor.X
	s.Cursor.X += min(limit, size.CellCountInt(max(offset, 1)))
}

// SetCursorLeft moves the cursor left, stopping at column 0.
func (s *Screen) SetCursorLeft(offset uint16) {
	s.Cursor.PendingWrap = false
	s.Cursor.X -= min(s.Cursor.X, size.CellCountInt(max(offset, 1)))
}

// SetCursorCol moves to an absolute 1-indexed column on the current
// line.
func (s *Screen) SetCursorCol(col uint16) {
	s.Cursor.PendingWrap = false
	c := size.CellCountInt(max(col, 1))
	s.Cursor.X = min(c-1, s.cols-1)
}

// SetCursorRow moves to an absolute 1-indexed line keeping the
// column. Under origin mode the line is relative to the top margin
// and confined to the region.
func (s *Screen) SetCursorRow(row uint16) {
	s.Cursor.PendingWrap = false
	r := size.CellCountInt(max(row, 1)) - 1
	if s.Modes.Get(core.ModeOrigin) {
		s.Cursor.Y = min(s.top+r, s.bottom)
		return
	}
	s.Cursor.Y = min(r, s.rows-1)
}

// SetCursorPosition implements CUP/HVP: 1-indexed row and column,
// zero meaning default, clamped to bounds. Under origin mode the row
// is relative to the top margin and confined to the region.
func (s *Screen) SetCursorPosition(row, col uint16) {
	s.Cursor.PendingWrap = false

	r := size.CellCountInt(max(row, 1)) - 1
	c := size.CellCountInt(max(col, 1)) - 1

	if s.Modes.Get(core.ModeOrigin) {
		s.Cursor.Y = min(s.top+r, s.bottom)
	} else {
		s.Cursor.Y = min(r, s.rows-1)
	}
	s.Cursor.X = min(c, s.cols-1)
}

// SetCursorTabRight moves to the next tab stop, repeated times, or
// the last column when no stops remain.
func (s *Screen) SetCursorTabRight(repeated uint16) {
	s.Cursor.PendingWrap = false
	for range max(repeated, 1) {
		for s.Cursor.X < s.cols-1 {
			s.Cursor.X++
			if s.tabstops.Get(s.Cursor.X) {
				break
			}
		}
	}
}

// SetCursorTabLeft moves to the previous tab stop, repeated times, or
// column 0 when no stops remain.
func (s *Screen) SetCursorTabLeft(repeated uint16) {
	s.Cursor.PendingWrap = false
	for range max(repeated, 1) {
		for s.Cursor.X > 0 {
			s.Cursor.X--
			if s.tabstops.Get(s.Cursor.X) {
				break
			}
		}
	}
}

// Erase

// EraseInDisplay erases part of the screen. Erased cells keep the
// current background. Mode 3 (scrollback) erases the whole display;
// there is no retained history.
func (s *Screen) EraseInDisplay(mode csi.EDMode) {
	switch mode {
	case csi.EDModeBelow:
		s.EraseInLine(csi.ELModeRight)
		if s.Cursor.Y < s.rows-1 {
			s.clearRows(s.Cursor.Y+1, s.rows-1)
		}

	case csi.EDModeAbove:
		s.EraseInLine(csi.ELModeLeft)
		if s.Cursor.Y > 0 {
			s.clearRows(0, s.Cursor.Y-1)
		}

	case csi.EDModeComplete, csi.EDModeScrollback:
		s.clearRows(0, s.rows-1)
		s.Cursor.PendingWrap = false

	default:
		s.logger.Debug("ignoring erase display", "mode", mode)
	}
}

// EraseInLine erases part of the cursor's line.
func (s *Screen) EraseInLine(mode csi.ELMode) {
	var start, end size.CellCountInt
	switch mode {
	case csi.ELModeRight:
		start, end = s.Cursor.X, s.cols
	case csi.ELModeLeft:
		start, end = 0, s.Cursor.X+1
	case csi.ELModeAll:
		start, end = 0, s.cols
	default:
		s.logger.Debug("ignoring erase line", "mode", mode)
		return
	}
	s.Cursor.PendingWrap = false
	s.clearCells(s.Cursor.Y, start, end)
}

// EraseChars blanks repeated cells rightward of the cursor in place,
// without shifting the rest of the line.
func (s *Screen) EraseChars(repeated uint16) {
	s.Cursor.PendingWrap = false
	end := min(s.Cursor.X+size.CellCountInt(max(repeated, 1)), s.cols)
	s.clearCells(s.Cursor.Y, s.Cursor.X, end)
}

// Insert / delete

// InsertLines inserts blank lines at the cursor, pushing the cursor's
// line and everything below it toward the bottom margin. Outside the
// scrolling region it does nothing. The cursor moves to column 0.
func (s *Screen) InsertLines(repeated uint16) {
	if s.Cursor.Y < s.top || s.Cursor.Y > s.bottom {
		return
	}
	n := min(size.CellCountInt(max(repeated, 1)), s.bottom-s.Cursor.Y+1)
	s.shiftRowsDown(s.Cursor.Y, s.bottom, n)

	s.Cursor.PendingWrap = false
	s.Cursor.X = 0
}

// DeleteLines removes lines at the cursor, pulling lines below up
// toward it and filling the bottom of the region with blanks. Outside
// the scrolling region it does nothing. The cursor moves to column 0.
func (s *Screen) DeleteLines(repeated uint16) {
	if s.Cursor.Y < s.top || s.Cursor.Y > s.bottom {
		return
	}
	n := min(size.CellCountInt(max(repeated, 1)), s.bottom-s.Cursor.Y+1)
	s.shiftRowsUp(s.Cursor.Y, s.bottom, n)

	s.Cursor.PendingWrap = false
	s.Cursor.X = 0
}

// InsertBlanks shifts the cursor's line right from the cursor,
// dropping cells pushed past the last column and filling the gap with
// blanks. The cursor does not move.
func (s *Screen) InsertBlanks(repeated uint16) {
	s.Cursor.PendingWrap = false
	n := min(size.CellCountInt(max(repeated, 1)), s.cols-s.Cursor.X)

	base := int(s.Cursor.Y) * int(s.cols)
	row := s.grid[base : base+int(s.cols)]
	copy(row[s.Cursor.X+n:], row[s.Cursor.X:])
	fill := s.eraseCell()
	for x := s.Cursor.X; x < s.Cursor.X+n; x++ {
		row[x] = fill
	}
}

// DeleteChars removes cells at the cursor, shifting the rest of the
// line left and filling the tail with blanks. The cursor does not
// move.
func (s *Screen) DeleteChars(repeated uint16) {
	s.Cursor.PendingWrap = false
	n := min(size.CellCountInt(max(repeated, 1)), s.cols-s.Cursor.X)

	base := int(s.Cursor.Y) * int(s.cols)
	row := s.grid[base : base+int(s.cols)]
	copy(row[s.Cursor.X:], row[s.Cursor.X+n:])
	fill := s.eraseCell()
	for x := s.cols - n; x < s.cols; x++ {
		row[x] = fill
	}
}

// Scrolling

// ScrollUp scrolls the region up without moving the cursor (SU).
func (s *Screen) ScrollUp(repeated uint16) {
	s.scrollUp(size.CellCountInt(max(repeated, 1)))
}

// ScrollDown scrolls the region down without moving the cursor (SD).
func (s *Screen) ScrollDown(repeated uint16) {
	s.scrollDown(size.CellCountInt(max(repeated, 1)))
}

// scrollUp moves rows [top+n, bottom] up by n inside the region. Rows
// scrolled past the top margin are discarded; blank rows appear at
// the bottom margin.
func (s *Screen) scrollUp(n size.CellCountInt) {
	s.shiftRowsUp(s.top, s.bottom, min(n, s.bottom-s.top+1))
}

func (s *Screen) scrollDown(n size.CellCountInt) {
	s.shiftRowsDown(s.top, s.bottom, min(n, s.bottom-s.top+1))
}

// shiftRowsUp removes n rows at from, moving [from+n, to] up and
// blanking the vacated rows at the bottom.
func (s *Screen) shiftRowsUp(from, to, n size.CellCountInt) {
	if n == 0 {
		return
	}
	w := int(s.cols)
	dst := s.grid[int(from)*w : (int(to)+1)*w]
	copy(dst, dst[int(n)*w:])
	s.clearRows(to-n+1, to)
}

// shiftRowsDown inserts n blank rows at from, moving [from, to-n]
// down.
func (s *Screen) shiftRowsDown(from, to, n size.CellCountInt) {
	if n == 0 {
		return
	}
	w := int(s.cols)
	region := s.grid[int(from)*w : (int(to)+1)*w]
	copy(region[int(n)*w:], region)
	s.clearRows(from, from+n-1)
}

// SetMargins sets the scrolling region (DECSTBM). Wire values are
// 1-indexed with 0 meaning default. A region smaller than two lines
// is rejected. The cursor homes, origin-relative under origin mode.
func (s *Screen) SetMargins(top, bottom uint16) {
	t := size.CellCountInt(max(top, 1)) - 1
	var b size.CellCountInt
	if bottom == 0 || size.CellCountInt(bottom) > s.rows {
		b = s.rows - 1
	} else {
		b = size.CellCountInt(bottom) - 1
	}
	if t >= b {
		s.logger.Debug("ignoring degenerate margins", "top", top, "bottom", bottom)
		return
	}
	s.top, s.bottom = t, b
	s.SetCursorPosition(1, 1)
}

// Modes

// SetMode applies one mode change. The stream resolves mode numbers;
// anything unknown never reaches here.
func (s *Screen) SetMode(mode core.Mode, value bool) {
	if s.Modes.Get(mode) == value {
		// Setting a mode to its current value has no side effects.
		s.Modes.Set(mode, value)
		return
	}
	s.Modes.Set(mode, value)

	switch mode {
	case core.ModeOrigin:
		// Entering or leaving origin mode homes the cursor.
		s.SetCursorPosition(1, 1)

	case core.ModeColumn132:
		// The in-memory screen keeps its size, but the mode change
		// still clears the display and homes the cursor like hardware.
		s.top, s.bottom = 0, s.rows-1
		s.clearRows(0, s.rows-1)
		s.Cursor = Cursor{Style: s.Cursor.Style}

	case core.ModeAltScreen:
		s.swapGrids()

	case core.ModeAltScreenSave:
		if value {
			s.SaveCursor()
			s.swapGrids()
			s.clearRows(0, s.rows-1)
		} else {
			s.swapGrids()
			s.RestoreCursor()
		}
	}
}

func (s *Screen) swapGrids() {
	s.grid, s.alt = s.alt, s.grid
}

// SGR

// SetGraphicsRendition folds one parsed SGR attribute into the
// cursor's rendition.
func (s *Screen) SetGraphicsRendition(attr *sgr.Attribute) {
	s.Cursor.Style.Apply(attr)
}

// Charsets

// DesignateCharset binds a slot; invalid selectors leave the binding
// unchanged.
func (s *Screen) DesignateCharset(slot charset.Slot, selector byte) {
	if !s.charsets.Designate(slot, selector) {
		s.logger.Debug("ignoring unknown charset selector", "selector", selector)
	}
}

// ShiftIn activates G0.
func (s *Screen) ShiftIn() { s.charsets.ShiftIn() }

// ShiftOut activates G1.
func (s *Screen) ShiftOut() { s.charsets.ShiftOut() }

// Save / restore cursor

// SaveCursor snapshots cursor, rendition and charset state (DECSC).
func (s *Screen) SaveCursor() {
	s.saved = &savedCursor{
		cursor:   s.Cursor,
		charsets: s.charsets.Save(),
		origin:   s.Modes.Get(core.ModeOrigin),
	}
}

// RestoreCursor reinstates the saved snapshot (DECRC). With nothing
// saved it resets the cursor to the origin with default rendition,
// which is what a hardware VT does.
func (s *Screen) RestoreCursor() {
	if s.saved == nil {
		s.Cursor = Cursor{}
		s.charsets.Reset()
		return
	}
	s.Cursor = s.saved.cursor
	s.Cursor.PendingWrap = false
	s.charsets.Restore(s.saved.charsets)
	s.Modes.Set(core.ModeOrigin, s.saved.origin)
	s.Cursor.X = min(s.Cursor.X, s.cols-1)
	s.Cursor.Y = min(s.Cursor.Y, s.rows-1)
}

// Reports

// DeviceStatusReport records the request; a screen with no host
// connection has nowhere to answer.
func (s *Screen) DeviceStatusReport(arg uint16) {
	s.lastDSR = arg
	s.logger.Debug("device status report requested", "arg", arg)
}

// DeviceAttributes records the request.
func (s *Screen) DeviceAttributes(arg uint16) {
	s.lastDA = arg
	s.logger.Debug("device attributes requested", "arg", arg)
}

// Resize

// Resize reallocates the grid, keeping content anchored at the
// top-left: new space is blank, removed space is truncated. Margins
// reset to the full screen and the cursor is clamped back in bounds.
func (s *Screen) Resize(cols, rows size.CellCountInt) {
	if cols == 0 || rows == 0 || (cols == s.cols && rows == s.rows) {
		return
	}

	s.grid = regrid(s.grid, s.cols, s.rows, cols, rows)
	s.alt = regrid(s.alt, s.cols, s.rows, cols, rows)
	s.cols, s.rows = cols, rows

	s.top, s.bottom = 0, rows-1
	s.Cursor.X = min(s.Cursor.X, cols-1)
	s.Cursor.Y = min(s.Cursor.Y, rows-1)
	s.Cursor.PendingWrap = false
	s.tabstops.Resize(cols)
}

func regrid(old []Cell, oldCols, oldRows, cols, rows size.CellCountInt) []Cell {
	grid := newGrid(cols, rows)
	for y := range min(oldRows, rows) {
		copy(
			grid[int(y)*int(cols):int(y)*int(cols)+int(min(oldCols, cols))],
			old[int(y)*int(oldCols):],
		)
	}
	return grid
}
