// SGR (Select Graphic Rendition) attribute parsing and types.
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
// plus the xterm 256-color and direct-color extensions.
package sgr

import (
	"iter"
	"math"

	"github.com/amarao/vt102/terminal/color"
	"github.com/amarao/vt102/terminal/utils"
)

type AttributeType uint16

const (
	AttributeTypeUnset AttributeType = iota

	// Bold the text.
	AttributeTypeBold
	AttributeTypeResetBold

	// Faint/dim text.
	AttributeTypeFaint
	AttributeTypeResetFaint

	// Italic the text.
	AttributeTypeItalic
	AttributeTypeResetItalic

	// Underline the text.
	AttributeTypeUnderline
	AttributeTypeResetUnderline

	// Blink the text.
	AttributeTypeBlink
	AttributeTypeResetBlink

	// Invert fg/bg colors.
	AttributeTypeInverse
	AttributeTypeResetInverse

	// Invisible text.
	AttributeTypeInvisible
	AttributeTypeResetInvisible

	// Strikethrough the text.
	AttributeTypeStrikethrough
	AttributeTypeResetStrikethrough

	// Fg color from the 256-color palette (30-37, 90-97, 38;5;n).
	AttributeTypePaletteFg
	// Bg color from the 256-color palette (40-47, 100-107, 48;5;n).
	AttributeTypePaletteBg

	// Fg direct color (38;2;r;g;b).
	AttributeTypeDirectColorFg
	// Bg direct color (48;2;r;g;b).
	AttributeTypeDirectColorBg

	// Reset fg to default (39).
	AttributeTypeResetFg
	// Reset bg to default (49).
	AttributeTypeResetBg

	// Unknown
	AttributeTypeUnknown
)

type UnderlineType uint8

const (
	UnderlineTypeNone UnderlineType = iota
	UnderlineTypeSingle
	UnderlineTypeDouble
	UnderlineTypeCurly
	UnderlineTypeDotted
	UnderlineTypeDashed
)

type unknown struct {
	Full    []uint16
	Partial []uint16
}

type Attribute struct {
	Type          AttributeType
	Underline     UnderlineType
	PaletteFg     uint8
	PaletteBg     uint8
	DirectColorFg color.RGB
	DirectColorBg color.RGB
	Unknown       unknown
}

// Parser walks a CSI m parameter list and yields one typed attribute
// per recognized parameter group.
type Parser struct {
	Params    []uint16
	ParamsSep *utils.StaticBitSet
	idx       int
}

// next returns a pull function yielding parsed attributes.
// Result of the pull function:
//   - attr: parsed value, nil for parameter groups to skip
//   - ok: whether pulling again may produce more values
func (p *Parser) next() func() (attr *Attribute, ok bool) {
	p.idx = 0
	return func() (*Attribute, bool) {
		if p.idx >= len(p.Params) {
			// An empty parameter list implicitly means reset.
			if p.idx == 0 {
				p.idx++
				return &Attribute{Type: AttributeTypeUnset}, false
			}
			return nil, false
		}
		slice := p.Params[p.idx:]
		colon := p.sepIsColon()
		p.idx++

		if colon {
			switch slice[0] {
			case 4, 38, 48:
				// These accept colon separated sub-parameters.
				break
			default:
				// Otherwise consume all the colon separated values
				// as one unknown group.
				start := p.idx - 1
				p.consumeUnknownColon()
				return &Attribute{
					Type: AttributeTypeUnknown,
					Unknown: unknown{
						Full:    p.Params,
						Partial: p.Params[start:p.idx],
					},
				}, true
			}
		}

		switch {
		case slice[0] == 0:
			return &Attribute{Type: AttributeTypeUnset}, true
		case slice[0] == 1:
			return &Attribute{Type: AttributeTypeBold}, true
		case slice[0] == 2:
			return &Attribute{Type: AttributeTypeFaint}, true
		case slice[0] == 3:
			return &Attribute{Type: AttributeTypeItalic}, true
		case slice[0] == 4:
			if colon {
				return p.parseUnderlineStyle(slice), true
			}
			return &Attribute{
				Type:      AttributeTypeUnderline,
				Underline: UnderlineTypeSingle,
			}, true
		case slice[0] == 5, slice[0] == 6:
			return &Attribute{Type: AttributeTypeBlink}, true
		case slice[0] == 7:
			return &Attribute{Type: AttributeTypeInverse}, true
		case slice[0] == 8:
			return &Attribute{Type: AttributeTypeInvisible}, true
		case slice[0] == 9:
			return &Attribute{Type: AttributeTypeStrikethrough}, true
		case slice[0] == 21:
			return &Attribute{
				Type:      AttributeTypeUnderline,
				Underline: UnderlineTypeDouble,
			}, true
		case slice[0] == 22:
			return &Attribute{Type: AttributeTypeResetBold}, true
		case slice[0] == 23:
			return &Attribute{Type: AttributeTypeResetItalic}, true
		case slice[0] == 24:
			return &Attribute{Type: AttributeTypeResetUnderline}, true
		case slice[0] == 25:
			return &Attribute{Type: AttributeTypeResetBlink}, true
		case slice[0] == 27:
			return &Attribute{Type: AttributeTypeResetInverse}, true
		case slice[0] == 28:
			return &Attribute{Type: AttributeTypeResetInvisible}, true
		case slice[0] == 29:
			return &Attribute{Type: AttributeTypeResetStrikethrough}, true
		case slice[0] >= 30 && slice[0] <= 37:
			return &Attribute{
				Type:      AttributeTypePaletteFg,
				PaletteFg: uint8(slice[0] - 30),
			}, true
		case slice[0] == 38:
			return p.parseExtendedColor(slice, colon, false), true
		case slice[0] == 39:
			return &Attribute{Type: AttributeTypeResetFg}, true
		case slice[0] >= 40 && slice[0] <= 47:
			return &Attribute{
				Type:      AttributeTypePaletteBg,
				PaletteBg: uint8(slice[0] - 40),
			}, true
		case slice[0] == 48:
			return p.parseExtendedColor(slice, colon, true), true
		case slice[0] == 49:
			return &Attribute{Type: AttributeTypeResetBg}, true
		case slice[0] >= 90 && slice[0] <= 97:
			// Bright foreground colors, 8-15 in the palette.
			return &Attribute{
				Type:      AttributeTypePaletteFg,
				PaletteFg: uint8(slice[0] - 90 + 8),
			}, true
		case slice[0] >= 100 && slice[0] <= 107:
			return &Attribute{
				Type:      AttributeTypePaletteBg,
				PaletteBg: uint8(slice[0] - 100 + 8),
			}, true
		}
		return &Attribute{
			Type:    AttributeTypeUnknown,
			Unknown: unknown{Full: p.Params, Partial: slice},
		}, true
	}
}

// Iter yields the attributes parsed from the parameter list.
func (p *Parser) Iter() iter.Seq[*Attribute] {
	next := p.next()
	return func(yield func(*Attribute) bool) {
		for {
			attr, ok := next()
			if !yield(attr) {
				return
			}
			if !ok {
				return
			}
		}
	}
}

// parseUnderlineStyle handles the colon form 4:n.
func (p *Parser) parseUnderlineStyle(slice []uint16) *Attribute {
	if len(slice) < 2 {
		return &Attribute{
			Type:      AttributeTypeUnderline,
			Underline: UnderlineTypeSingle,
		}
	}
	p.idx++
	switch slice[1] {
	case 0:
		return &Attribute{Type: AttributeTypeResetUnderline}
	case 1:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}
	case 2:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDouble}
	case 3:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeCurly}
	case 4:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDotted}
	case 5:
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeDashed}
	default:
		// Unknown underline styles render as a single underline.
		return &Attribute{Type: AttributeTypeUnderline, Underline: UnderlineTypeSingle}
	}
}

// parseExtendedColor handles 38/48 with sub-parameter 2 (direct color)
// or 5 (palette index). Returns nil for ill-formed groups, which the
// caller skips.
func (p *Parser) parseExtendedColor(slice []uint16, colon bool, bg bool) *Attribute {
	if len(slice) < 2 {
		return nil
	}
	switch slice[1] {
	case 2:
		rgb := p.parseDirectColor(slice, colon)
		if rgb == nil {
			return nil
		}
		if bg {
			return &Attribute{Type: AttributeTypeDirectColorBg, DirectColorBg: *rgb}
		}
		return &Attribute{Type: AttributeTypeDirectColorFg, DirectColorFg: *rgb}
	case 5:
		if len(slice) < 3 {
			return nil
		}
		p.idx += 2
		index := uint8(min(math.MaxUint8, slice[2]))
		if bg {
			return &Attribute{Type: AttributeTypePaletteBg, PaletteBg: index}
		}
		return &Attribute{Type: AttributeTypePaletteFg, PaletteFg: index}
	default:
		return nil
	}
}

// parseDirectColor parses the r;g;b tail of a 38/48 with sub-parameter
// 2. Any direct color form needs at least 5 values.
func (p *Parser) parseDirectColor(slice []uint16, colon bool) *color.RGB {
	if len(slice) < 5 {
		return nil
	}
	utils.Assert(slice[1] == 2)
	if !colon {
		p.idx += 4
		// Clamp: the wire allows values past 255 and we don't want to
		// guess what a real terminal would do with them.
		return &color.RGB{
			R: uint8(min(math.MaxUint8, slice[2])),
			G: uint8(min(math.MaxUint8, slice[3])),
			B: uint8(min(math.MaxUint8, slice[4])),
		}
	}

	// With colon separators there may be 5 or 6 values depending on
	// whether the optional color space identifier is present.
	count := p.countColon()
	switch count {
	case 3:
		p.idx += 4
		return &color.RGB{
			R: uint8(min(math.MaxUint8, slice[2])),
			G: uint8(min(math.MaxUint8, slice[3])),
			B: uint8(min(math.MaxUint8, slice[4])),
		}
	case 4:
		p.idx += 5
		return &color.RGB{
			R: uint8(min(math.MaxUint8, slice[3])),
			G: uint8(min(math.MaxUint8, slice[4])),
			B: uint8(min(math.MaxUint8, slice[5])),
		}
	default:
		p.consumeUnknownColon()
		return nil
	}
}

// sepIsColon reports whether the current parameter is followed by a
// colon separator. The last parameter has no separator.
func (p *Parser) sepIsColon() bool {
	if p.ParamsSep == nil {
		return false
	}
	if p.idx >= len(p.Params)-1 {
		return false
	}
	return p.ParamsSep.IsSet(p.idx)
}

// consumeUnknownColon advances past a colon-joined group.
func (p *Parser) consumeUnknownColon() {
	count := p.countColon()
	p.idx += count + 1
}

func (p *Parser) countColon() int {
	count := 0
	if p.ParamsSep == nil {
		return 0
	}
	for idx := p.idx; idx < len(p.Params) && p.ParamsSep.IsSet(idx); idx++ {
		count++
	}
	return count
}
