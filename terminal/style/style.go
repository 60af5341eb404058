package style

import (
	"fmt"

	"github.com/amarao/vt102/terminal/color"
	"github.com/amarao/vt102/terminal/sgr"
	"github.com/amarao/vt102/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Style is the graphic rendition applied to a cell: the attribute
// flags plus foreground and background colors. It is a value type;
// the screen copies it into each cell on write and never mutates a
// stored copy.
type Style struct {
	ForegroundColor Color
	BackgroundColor Color

	Bold          bool
	Faint         bool
	Italic        bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
	Underline     sgr.UnderlineType
}

// Apply folds a parsed SGR attribute into the style. Attributes apply
// cumulatively; only AttributeTypeUnset clears everything.
func (s *Style) Apply(attr *sgr.Attribute) {
	switch attr.Type {
	case sgr.AttributeTypeUnset:
		s.Reset()
	case sgr.AttributeTypeBold:
		s.Bold = true
	case sgr.AttributeTypeResetBold:
		// Per xterm, 22 clears bold and faint together.
		s.Bold = false
		s.Faint = false
	case sgr.AttributeTypeFaint:
		s.Faint = true
	case sgr.AttributeTypeResetFaint:
		s.Faint = false
	case sgr.AttributeTypeItalic:
		s.Italic = true
	case sgr.AttributeTypeResetItalic:
		s.Italic = false
	case sgr.AttributeTypeUnderline:
		s.Underline = attr.Underline
	case sgr.AttributeTypeResetUnderline:
		s.Underline = sgr.UnderlineTypeNone
	case sgr.AttributeTypeBlink:
		s.Blink = true
	case sgr.AttributeTypeResetBlink:
		s.Blink = false
	case sgr.AttributeTypeInverse:
		s.Inverse = true
	case sgr.AttributeTypeResetInverse:
		s.Inverse = false
	case sgr.AttributeTypeInvisible:
		s.Invisible = true
	case sgr.AttributeTypeResetInvisible:
		s.Invisible = false
	case sgr.AttributeTypeStrikethrough:
		s.Strikethrough = true
	case sgr.AttributeTypeResetStrikethrough:
		s.Strikethrough = false
	case sgr.AttributeTypePaletteFg:
		s.ForegroundColor = Color{Type: ColorTypePalette, Palette: attr.PaletteFg}
	case sgr.AttributeTypePaletteBg:
		s.BackgroundColor = Color{Type: ColorTypePalette, Palette: attr.PaletteBg}
	case sgr.AttributeTypeDirectColorFg:
		s.ForegroundColor = Color{Type: ColorTypeRGB, RGB: attr.DirectColorFg}
	case sgr.AttributeTypeDirectColorBg:
		s.BackgroundColor = Color{Type: ColorTypeRGB, RGB: attr.DirectColorBg}
	case sgr.AttributeTypeResetFg:
		s.ForegroundColor = Color{Type: ColorTypeNone}
	case sgr.AttributeTypeResetBg:
		s.BackgroundColor = Color{Type: ColorTypeNone}
	case sgr.AttributeTypeUnknown:
		// Ignored without error.
	}
}

// Reset returns the style to the default rendition.
func (s *Style) Reset() {
	*s = Style{}
}

// IsDefault reports whether the style carries no attributes or colors.
func (s *Style) IsDefault() bool {
	return *s == Style{}
}

// BG resolves the background color against a palette, nil meaning the
// terminal default.
func (s *Style) BG(palette *color.Palette) *color.RGB {
	switch s.BackgroundColor.Type {
	case ColorTypePalette:
		return &palette[s.BackgroundColor.Palette]
	case ColorTypeRGB:
		return &s.BackgroundColor.RGB
	default:
		return nil
	}
}

// FG resolves the foreground color against a palette, nil meaning the
// terminal default. With boldIsBright, bold text using one of the
// first eight palette entries maps to its bright counterpart.
func (s *Style) FG(palette *color.Palette, boldIsBright bool) *color.RGB {
	switch s.ForegroundColor.Type {
	case ColorTypePalette:
		index := s.ForegroundColor.Palette
		if boldIsBright && s.Bold && index < 8 {
			index += 8
		}
		return &palette[index]
	case ColorTypeRGB:
		return &s.ForegroundColor.RGB
	default:
		return nil
	}
}

// Hash returns a structural hash of the style.
func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash style: %v", err))
	return hashed
}

// Color is a cell color from one of three sources: unset (terminal
// default), a palette index, or a direct RGB value.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     color.RGB
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeNone:
		return "Color.none"
	case ColorTypePalette:
		return fmt.Sprintf("Color.palette{ %d }", c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{ %d, %d, %d }", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypePalette
	ColorTypeRGB
)
