package gfx

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphAlpha(f *FontAtlas, ch rune) int {
	reg, ok := f.Glyph(ch)
	if !ok {
		return -1
	}
	b := f.Img.Bounds()
	x0 := int(reg.U0*float32(b.Dx()) + 0.5)
	y0 := int(reg.V0*float32(b.Dy()) + 0.5)
	sum := 0
	for y := y0; y < y0+f.CellH; y++ {
		for x := x0; x < x0+f.CellW; x++ {
			sum += int(f.Img.NRGBAAt(x, y).A)
		}
	}
	return sum
}

func TestBuildFontAtlas_Layout(t *testing.T) {
	f := BuildFontAtlas()

	assert.Equal(t, 7, f.CellW)
	assert.Equal(t, 13, f.CellH)
	assert.Equal(t, image.Rect(0, 0, 16*7, 6*13), f.Img.Bounds())
}

func TestFontAtlas_Glyph(t *testing.T) {
	f := BuildFontAtlas()

	tests := []struct {
		name string
		ch   rune
		ok   bool
	}{
		{"space", ' ', true},
		{"letter", 'A', true},
		{"tilde", '~', true},
		{"tab", '\t', false},
		{"delete", 127, false},
		{"accent", 'é', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := f.Glyph(tt.ch)
			assert.Equal(t, tt.ok, ok)
		})
	}

	reg, _ := f.Glyph('A')
	assert.InDelta(t, 7.0/112, reg.U0, 1e-6)
	assert.InDelta(t, 26.0/78, reg.V0, 1e-6)
}

func TestFontAtlas_Rasterised(t *testing.T) {
	f := BuildFontAtlas()

	assert.Zero(t, glyphAlpha(f, ' '))
	for _, ch := range "NESWBeyond" {
		assert.Positive(t, glyphAlpha(f, ch), "glyph %q", ch)
	}
}

func TestFontAtlas_TextWidth(t *testing.T) {
	f := BuildFontAtlas()

	assert.Equal(t, 0, f.TextWidth("", 1))
	assert.Equal(t, 35, f.TextWidth("hello", 1))
	assert.Equal(t, 56, f.TextWidth("ab\nabcd", 2))
	assert.InDelta(t, 26, f.LineHeight(2), 1e-6)
}

func TestFontAtlas_AppendString(t *testing.T) {
	f := BuildFontAtlas()
	buf := f.AppendString(nil, "a\nb?é", 10, 20, 1, Palette.Text, 1)

	require.Equal(t, 3, QuadCount(buf))
	// Second line restarts at x.
	assert.Equal(t, float32(10), buf[QuadFloats])
	assert.Equal(t, float32(33), buf[QuadFloats+1])
	assert.Equal(t, float32(17), buf[2*QuadFloats])
}
