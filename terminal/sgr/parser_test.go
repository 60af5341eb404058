package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarao/vt102/terminal/color"
	"github.com/amarao/vt102/terminal/utils"
)

// collect drains the iterator, dropping the nil attributes the parser
// yields for skipped groups.
func collect(p *Parser) []*Attribute {
	var attrs []*Attribute
	for attr := range p.Iter() {
		if attr != nil {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

func colons(size int, idx ...int) *utils.StaticBitSet {
	s := utils.NewStaticBitSet(size)
	for _, i := range idx {
		s.Set(i)
	}
	return s
}

func TestParserSimpleAttributes(t *testing.T) {
	tests := []struct {
		param uint16
		want  AttributeType
	}{
		{0, AttributeTypeUnset},
		{1, AttributeTypeBold},
		{2, AttributeTypeFaint},
		{3, AttributeTypeItalic},
		{5, AttributeTypeBlink},
		{7, AttributeTypeInverse},
		{8, AttributeTypeInvisible},
		{9, AttributeTypeStrikethrough},
		{22, AttributeTypeResetBold},
		{23, AttributeTypeResetItalic},
		{24, AttributeTypeResetUnderline},
		{25, AttributeTypeResetBlink},
		{27, AttributeTypeResetInverse},
		{28, AttributeTypeResetInvisible},
		{29, AttributeTypeResetStrikethrough},
		{39, AttributeTypeResetFg},
		{49, AttributeTypeResetBg},
	}
	for _, tt := range tests {
		p := &Parser{Params: []uint16{tt.param}}
		attrs := collect(p)
		require.Len(t, attrs, 1, "param %d", tt.param)
		assert.Equal(t, tt.want, attrs[0].Type, "param %d", tt.param)
	}
}

func TestParserEmptyMeansReset(t *testing.T) {
	p := &Parser{}
	attrs := collect(p)
	require.Len(t, attrs, 1)
	assert.Equal(t, AttributeTypeUnset, attrs[0].Type)
}

func TestParserMultipleParams(t *testing.T) {
	p := &Parser{Params: []uint16{0, 1, 4, 31}}
	attrs := collect(p)
	require.Len(t, attrs, 4)
	assert.Equal(t, AttributeTypeUnset, attrs[0].Type)
	assert.Equal(t, AttributeTypeBold, attrs[1].Type)
	assert.Equal(t, AttributeTypeUnderline, attrs[2].Type)
	assert.Equal(t, UnderlineTypeSingle, attrs[2].Underline)
	assert.Equal(t, AttributeTypePaletteFg, attrs[3].Type)
	assert.Equal(t, uint8(1), attrs[3].PaletteFg)
}

func TestParserPaletteRanges(t *testing.T) {
	p := &Parser{Params: []uint16{37, 90, 97, 40, 47, 100, 107}}
	attrs := collect(p)
	require.Len(t, attrs, 7)
	assert.Equal(t, uint8(7), attrs[0].PaletteFg)
	assert.Equal(t, uint8(8), attrs[1].PaletteFg)
	assert.Equal(t, uint8(15), attrs[2].PaletteFg)
	assert.Equal(t, AttributeTypePaletteBg, attrs[3].Type)
	assert.Equal(t, uint8(0), attrs[3].PaletteBg)
	assert.Equal(t, uint8(7), attrs[4].PaletteBg)
	assert.Equal(t, uint8(8), attrs[5].PaletteBg)
	assert.Equal(t, uint8(15), attrs[6].PaletteBg)
}

func TestParserUnderlineDouble(t *testing.T) {
	p := &Parser{Params: []uint16{21}}
	attrs := collect(p)
	require.Len(t, attrs, 1)
	assert.Equal(t, AttributeTypeUnderline, attrs[0].Type)
	assert.Equal(t, UnderlineTypeDouble, attrs[0].Underline)
}

func TestParserUnderlineColonStyles(t *testing.T) {
	tests := []struct {
		sub   uint16
		wType AttributeType
		style UnderlineType
	}{
		{0, AttributeTypeResetUnderline, UnderlineTypeNone},
		{1, AttributeTypeUnderline, UnderlineTypeSingle},
		{2, AttributeTypeUnderline, UnderlineTypeDouble},
		{3, AttributeTypeUnderline, UnderlineTypeCurly},
		{4, AttributeTypeUnderline, UnderlineTypeDotted},
		{5, AttributeTypeUnderline, UnderlineTypeDashed},
		{99, AttributeTypeUnderline, UnderlineTypeSingle},
	}
	for _, tt := range tests {
		// 4:n;1 -- the bold after the colon group proves the group is
		// consumed as a unit.
		p := &Parser{
			Params:    []uint16{4, tt.sub, 1},
			ParamsSep: colons(3, 0),
		}
		attrs := collect(p)
		require.Len(t, attrs, 2, "4:%d", tt.sub)
		assert.Equal(t, tt.wType, attrs[0].Type, "4:%d", tt.sub)
		if tt.wType == AttributeTypeUnderline {
			assert.Equal(t, tt.style, attrs[0].Underline, "4:%d", tt.sub)
		}
		assert.Equal(t, AttributeTypeBold, attrs[1].Type)
	}
}

func TestParser256Color(t *testing.T) {
	p := &Parser{Params: []uint16{38, 5, 123, 48, 5, 200}}
	attrs := collect(p)
	require.Len(t, attrs, 2)
	assert.Equal(t, AttributeTypePaletteFg, attrs[0].Type)
	assert.Equal(t, uint8(123), attrs[0].PaletteFg)
	assert.Equal(t, AttributeTypePaletteBg, attrs[1].Type)
	assert.Equal(t, uint8(200), attrs[1].PaletteBg)
}

func TestParserDirectColor(t *testing.T) {
	p := &Parser{Params: []uint16{38, 2, 10, 20, 30, 48, 2, 40, 50, 60}}
	attrs := collect(p)
	require.Len(t, attrs, 2)
	assert.Equal(t, AttributeTypeDirectColorFg, attrs[0].Type)
	assert.Equal(t, color.RGB{R: 10, G: 20, B: 30}, attrs[0].DirectColorFg)
	assert.Equal(t, AttributeTypeDirectColorBg, attrs[1].Type)
	assert.Equal(t, color.RGB{R: 40, G: 50, B: 60}, attrs[1].DirectColorBg)
}

func TestParserDirectColorClamps(t *testing.T) {
	p := &Parser{Params: []uint16{38, 2, 999, 0, 300}}
	attrs := collect(p)
	require.Len(t, attrs, 1)
	assert.Equal(t, color.RGB{R: 255, G: 0, B: 255}, attrs[0].DirectColorFg)
}

func TestParserDirectColorColonForms(t *testing.T) {
	// 38:2:10:20:30 without color space id.
	p := &Parser{
		Params:    []uint16{38, 2, 10, 20, 30},
		ParamsSep: colons(5, 0, 1, 2, 3),
	}
	attrs := collect(p)
	require.Len(t, attrs, 1)
	assert.Equal(t, color.RGB{R: 10, G: 20, B: 30}, attrs[0].DirectColorFg)

	// 38:2:0:10:20:30 with a color space id.
	p = &Parser{
		Params:    []uint16{38, 2, 0, 10, 20, 30},
		ParamsSep: colons(6, 0, 1, 2, 3, 4),
	}
	attrs = collect(p)
	require.Len(t, attrs, 1)
	assert.Equal(t, color.RGB{R: 10, G: 20, B: 30}, attrs[0].DirectColorFg)
}

func TestParserIllFormedExtendedColor(t *testing.T) {
	// A bare 38 yields nothing and must not stall the iterator.
	p := &Parser{Params: []uint16{38}}
	assert.Empty(t, collect(p))

	// An ill-formed group drops the 38; the unconsumed tail parses
	// param by param.
	p = &Parser{Params: []uint16{38, 5}}
	attrs := collect(p)
	require.Len(t, attrs, 1)
	assert.Equal(t, AttributeTypeBlink, attrs[0].Type)

	p = &Parser{Params: []uint16{38, 7, 1}}
	attrs = collect(p)
	require.Len(t, attrs, 2)
	assert.Equal(t, AttributeTypeInverse, attrs[0].Type)
	assert.Equal(t, AttributeTypeBold, attrs[1].Type)
}

func TestParserUnknownParam(t *testing.T) {
	p := &Parser{Params: []uint16{55, 1}}
	attrs := collect(p)
	require.Len(t, attrs, 2)
	assert.Equal(t, AttributeTypeUnknown, attrs[0].Type)
	assert.Equal(t, []uint16{55, 1}, attrs[0].Unknown.Partial)
	assert.Equal(t, AttributeTypeBold, attrs[1].Type)
}

func TestParserUnknownColonGroup(t *testing.T) {
	// 53:1 is not a recognized colon form; the whole group is one
	// unknown and the next param still parses.
	p := &Parser{
		Params:    []uint16{53, 1, 4},
		ParamsSep: colons(3, 0),
	}
	attrs := collect(p)
	require.Len(t, attrs, 2)
	assert.Equal(t, AttributeTypeUnknown, attrs[0].Type)
	assert.Equal(t, []uint16{53, 1}, attrs[0].Unknown.Partial)
	assert.Equal(t, AttributeTypeUnderline, attrs[1].Type)
}
