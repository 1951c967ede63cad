package gfx

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas layout: printable ASCII in a 16-column grid of fixed cells.
const (
	FontCols   = 16
	firstGlyph = 32
	lastGlyph  = 126
)

// FontAtlas is the rasterised bitmap font plus its cell geometry.
type FontAtlas struct {
	Img   *image.NRGBA
	CellW int
	CellH int
}

// BuildFontAtlas rasterises basicfont's 7x13 face, white on transparent, so
// the text shader can tint it.
func BuildFontAtlas() *FontAtlas {
	face := basicfont.Face7x13
	cw, ch := face.Advance, face.Height
	glyphs := lastGlyph - firstGlyph + 1
	rows := (glyphs + FontCols - 1) / FontCols

	img := image.NewNRGBA(image.Rect(0, 0, FontCols*cw, rows*ch))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := firstGlyph; c <= lastGlyph; c++ {
		i := c - firstGlyph
		d.Dot = fixed.P((i%FontCols)*cw, (i/FontCols)*ch+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return &FontAtlas{Img: img, CellW: cw, CellH: ch}
}

// Glyph returns the atlas region of ch; ok is false for anything outside
// printable ASCII.
func (f *FontAtlas) Glyph(ch rune) (Region, bool) {
	if ch < firstGlyph || ch > lastGlyph {
		return Region{}, false
	}
	i := int(ch) - firstGlyph
	b := f.Img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	x, y := (i%FontCols)*f.CellW, (i/FontCols)*f.CellH
	return Region{
		U0: float32(x) / w,
		V0: float32(y) / h,
		U1: float32(x+f.CellW) / w,
		V1: float32(y+f.CellH) / h,
	}, true
}

// TextWidth returns the width in pixels of the longest line at scale.
func (f *FontAtlas) TextWidth(text string, scale float32) int {
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return int(float32(longest*f.CellW) * scale)
}

// LineHeight is the vertical advance at scale.
func (f *FontAtlas) LineHeight(scale float32) float32 {
	return float32(f.CellH) * scale
}

// AppendString queues text at pixel position (x, y), top-left origin.
// Newlines return to x.
func (f *FontAtlas) AppendString(buf []float32, text string, x, y, scale float32, col RGB, alpha float32) []float32 {
	adv := float32(f.CellW) * scale
	lh := f.LineHeight(scale)
	cx, cy := x, y
	for _, ch := range text {
		if ch == '\n' {
			cx = x
			cy += lh
			continue
		}
		if reg, ok := f.Glyph(ch); ok {
			buf = AppendQuad(buf, cx, cy, cx+adv, cy+lh, reg, col, alpha)
		}
		cx += adv
	}
	return buf
}
