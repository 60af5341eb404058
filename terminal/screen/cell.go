package screen

import "github.com/amarao/vt102/terminal/style"

// Wide describes how a cell takes part in wide-character rendering.
type Wide uint8

const (
	// WideNarrow is an ordinary single-width cell.
	WideNarrow Wide = iota
	// WideWide holds a two-column character.
	WideWide
	// WideSpacerTail sits to the right of a WideWide cell.
	WideSpacerTail
)

// Cell is one grid position: the glyph to draw and its rendition.
// Cells are value types; the screen replaces them wholesale and never
// mutates a stored cell in place.
type Cell struct {
	Rune  rune
	Wide  Wide
	Style style.Style
}

// IsBlank reports whether the cell shows nothing: a space or empty
// rune with no attributes.
func (c Cell) IsBlank() bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Style.IsDefault()
}

// blankCell is the construction-time fill value.
func blankCell() Cell {
	return Cell{Rune: ' '}
}
