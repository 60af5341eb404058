package parser

import (
	"github.com/amarao/vt102/terminal/sequences/csi"
	"github.com/amarao/vt102/terminal/sequences/esc"
	"github.com/amarao/vt102/terminal/utils"
)

const (
	MaxParams        = 24
	MaxIntermediates = 4

	// Numeric parameters are capped: any parameter greater than 9999
	// is set to 9999 (VT102 user guide).
	MaxParamValue = 9999
)

// Parser is the VT-series state machine for escape and control
// sequences. It turns a stream of bytes into a stream of Actions; it
// knows nothing about what the actions mean.
//
// Malformed input can never wedge the machine: every byte has a
// transition in every state, and the csiIgnore/sosPmApcString states
// guarantee a way back to ground.
type Parser struct {
	State State

	// intermediate tracking
	intermediates    [MaxIntermediates]uint8
	intermediatesIdx int

	// param tracking
	params      [MaxParams]uint16
	paramsIdx   int
	paramsSet   *utils.StaticBitSet
	paramAcc    uint16
	paramAccIdx int

	table parserTable
}

func NewParser() *Parser {
	return &Parser{
		State:     StateGround,
		table:     newParserTable(),
		paramsSet: utils.NewStaticBitSet(MaxParams),
	}
}

// Next consumes one byte and returns the action to take, or nil when
// the byte only moves the machine along.
func (p *Parser) Next(c uint8) *Action {
	effect := p.table[c][p.State]
	nextState := effect.state

	// Entering a collecting state resets the collected state.
	if p.State != nextState {
		switch nextState {
		case StateEscape, StateCSIEntry:
			p.Clear()
		}
	}

	action := p.doAction(effect.action, c)
	p.State = nextState
	return action
}

func (p *Parser) doAction(actionType ActionType, c uint8) *Action {
	switch actionType {
	case ActionIgnore, ActionNone:
		return nil

	case ActionPrint:
		return &Action{Type: ActionPrint, PrintData: c}

	case ActionExecute:
		return &Action{Type: ActionExecute, ExecuteData: c}

	case ActionCollect:
		p.Collect(c)
		return nil

	case ActionParam:
		// Semicolon and colon separate parameters. A colon marks the
		// position as a sub-parameter for the dispatch consumer.
		if c == ';' || c == ':' {
			if p.paramsIdx >= MaxParams {
				return nil
			}
			p.params[p.paramsIdx] = p.paramAcc
			if c == ':' {
				p.paramsSet.Set(p.paramsIdx)
			}
			p.paramsIdx++

			p.paramAcc = 0
			p.paramAccIdx = 0
			return nil
		}

		// A digit. Accumulate, capping the value so hostile input
		// can't overflow it.
		if p.paramAccIdx > 0 {
			acc := int(p.paramAcc)*10 + int(c-'0')
			p.paramAcc = uint16(min(acc, MaxParamValue))
		} else {
			p.paramAcc = uint16(c - '0')
		}

		nextAccIdx, overflow := utils.AddWithOverflow(p.paramAccIdx, 1)
		if overflow {
			return nil
		}
		p.paramAccIdx = nextAccIdx
		return nil

	case ActionESCDispatch:
		return &Action{
			Type: ActionESCDispatch,
			ESCDispatchData: &esc.Command{
				Intermediates: p.intermediates[:p.intermediatesIdx],
				Final:         c,
			},
		}

	case ActionCSIDispatch:
		if p.paramsIdx >= MaxParams {
			return nil
		}

		// Finalize the parameter being accumulated, if any.
		if p.paramAccIdx > 0 {
			p.params[p.paramsIdx] = p.paramAcc
			p.paramsIdx++
		}

		return &Action{
			Type: ActionCSIDispatch,
			CSIDispatchData: &csi.Command{
				Intermediates: p.intermediates[:p.intermediatesIdx],
				Params:        p.params[:p.paramsIdx],
				ParamsSet:     p.paramsSet,
				Final:         c,
			},
		}

	default:
		return nil
	}
}

func (p *Parser) Collect(c uint8) {
	if p.intermediatesIdx >= MaxIntermediates {
		// Too many intermediates; extras are dropped.
		return
	}
	p.intermediates[p.intermediatesIdx] = c
	p.intermediatesIdx++
}

// Clear resets the collected intermediates and parameters.
func (p *Parser) Clear() {
	p.paramsIdx = 0
	p.paramAcc = 0
	p.paramAccIdx = 0
	p.paramsSet.Clear()
	p.intermediatesIdx = 0
}
