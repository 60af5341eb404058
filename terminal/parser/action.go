package parser

import (
	"fmt"
	"strings"

	"github.com/amarao/vt102/terminal/sequences/csi"
	"github.com/amarao/vt102/terminal/sequences/esc"
)

// ActionType is the action taken when an event or state transition
// occurs.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionIgnore
	ActionPrint
	ActionExecute
	ActionCollect
	ActionParam
	ActionESCDispatch
	ActionCSIDispatch
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionIgnore:
		return "Ignore"
	case ActionPrint:
		return "Print"
	case ActionExecute:
		return "Execute"
	case ActionCollect:
		return "Collect"
	case ActionParam:
		return "Param"
	case ActionESCDispatch:
		return "ESCDispatch"
	case ActionCSIDispatch:
		return "CSIDispatch"
	default:
		return "Unknown"
	}
}

// Action is what a caller of the parser is expected to do as a result
// of some input character.
type Action struct {
	Type ActionType

	// Draw the character to the screen.
	PrintData uint8

	// Execute the C0 function.
	ExecuteData uint8

	// Execute the CSI command.
	CSIDispatchData *csi.Command

	// Execute the ESC command.
	ESCDispatchData *esc.Command
}

func (a *Action) String() string {
	if a == nil {
		return "{nil}"
	}
	builder := new(strings.Builder)
	fmt.Fprintf(builder, "{ .%s = ", a.Type.String())
	switch a.Type {
	case ActionPrint:
		fmt.Fprintf(builder, "0x%x", a.PrintData)
	case ActionExecute:
		fmt.Fprintf(builder, "0x%x", a.ExecuteData)
	case ActionCSIDispatch:
		fmt.Fprintf(builder, "%v", a.CSIDispatchData)
	case ActionESCDispatch:
		fmt.Fprintf(builder, "%v", a.ESCDispatchData)
	}
	builder.WriteString(" }")
	return builder.String()
}
