package screen

import (
	"github.com/amarao/vt102/terminal/charset"
	"github.com/amarao/vt102/terminal/size"
	"github.com/amarao/vt102/terminal/style"
)

// Cursor is the insertion point and the rendition applied to whatever
// gets written there next.
type Cursor struct {
	X size.CellCountInt
	Y size.CellCountInt

	// PendingWrap is set after writing the last column under autowrap;
	// the actual wrap is deferred until the next printable character.
	PendingWrap bool

	// Style is the active graphic rendition. It is carried forward
	// cell by cell until an SGR event changes it.
	Style style.Style
}

// savedCursor is the single DECSC/DECRC slot: position, rendition and
// charset bindings. A second save overwrites the first.
type savedCursor struct {
	cursor   Cursor
	charsets charset.Snapshot
	origin   bool
}
