package csi

import (
	"fmt"

	"github.com/amarao/vt102/terminal/utils"
)

// Command is a fully collected CSI sequence: ESC [ <params> <final>.
// Intermediates carry both the private-marker bytes (e.g. '?') and any
// true intermediates; Params is the parsed integer parameter list.
type Command struct {
	Intermediates []uint8
	Params        []uint16
	// ParamsSet marks parameter positions terminated by a colon
	// instead of a semicolon (sub-parameters, used by SGR).
	ParamsSet *utils.StaticBitSet
	Final     uint8
}

func (c Command) String() string {
	return fmt.Sprintf("CSI %v %v %c", c.Intermediates, c.Params, c.Final)
}

// Private reports whether the sequence carried the DEC private
// marker ('?').
func (c Command) Private() bool {
	for _, b := range c.Intermediates {
		if b == '?' {
			return true
		}
	}
	return false
}

// EDMode selects what Erase in Display clears.
type EDMode uint8

const (
	EDModeBelow      EDMode = 0
	EDModeAbove      EDMode = 1
	EDModeComplete   EDMode = 2
	EDModeScrollback EDMode = 3
)

// ELMode selects what Erase in Line clears.
type ELMode uint8

const (
	ELModeRight ELMode = 0
	ELModeLeft  ELMode = 1
	ELModeAll   ELMode = 2
)

// TBCMode selects what Tabulation Clear removes.
type TBCMode uint8

const (
	TBCModeCurrent TBCMode = 0
	TBCModeAll     TBCMode = 3
)
