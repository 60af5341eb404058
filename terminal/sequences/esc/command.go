package esc

import (
	"fmt"
)

// Command is a collected non-CSI escape sequence: ESC, optional
// intermediates (e.g. '(' or '#'), and a final byte.
type Command struct {
	Intermediates []uint8
	Final         uint8
}

func (c Command) String() string {
	return fmt.Sprintf("ESC %v %c", c.Intermediates, c.Final)
}
