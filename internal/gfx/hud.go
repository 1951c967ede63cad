package gfx

import (
	"strings"

	"beyondthesea/internal/ocean"
)

// Title screen text.
const (
	TitleText    = "Beyond The Sea"
	BylineText   = "By Marco Ogaz-Vega"
	Instructions = "Explore in any direction\nMove with the arrow keys\nPress R to restart\nPress SPACE to begin"
)

// Text scales in font cells, before the framebuffer unit is applied.
const (
	TitleScale   = 4
	BodyScale    = 2
	CompassScale = 2
	hudMargin    = 8
	bylineGap    = 60
)

// TextItem is one positioned line of text in framebuffer pixels.
type TextItem struct {
	Text  string
	X, Y  float32
	Scale float32
	Color RGB
}

// TitleLayout places the title, byline and instructions on a w x h
// framebuffer. unit is framebuffer pixels per viewport pixel.
func TitleLayout(f *FontAtlas, w, h, unit float32) []TextItem {
	items := make([]TextItem, 0, 6)
	items = append(items,
		centred(f, TitleText, w/2, h/4, TitleScale*unit, Palette.Text),
		centred(f, BylineText, w/2, h/4+bylineGap*unit, BodyScale*unit, Palette.Text),
	)

	lines := strings.Split(Instructions, "\n")
	scale := float32(BodyScale) * unit
	lh := f.LineHeight(scale)
	top := h/2 + 10*unit - lh*float32(len(lines))/2
	for i, line := range lines {
		items = append(items, centred(f, line, w/2, top+lh*(float32(i)+0.5), scale, Palette.Text))
	}
	return items
}

// CompassLayout lays the four cardinal labels along the top-left corner,
// highlighting the one heading selects.
func CompassLayout(f *FontAtlas, heading float64, unit float32) []TextItem {
	scale := float32(CompassScale) * unit
	step := float32(f.TextWidth("N ", scale))
	x := hudMargin * unit
	items := make([]TextItem, 0, len(ocean.Cardinals))
	for i, l := range ocean.CompassLabels(heading) {
		col := Palette.TextDim
		if l.Highlight {
			col = Palette.Highlight
		}
		items = append(items, TextItem{
			Text:  l.Dir.String(),
			X:     x + step*float32(i),
			Y:     hudMargin * unit,
			Scale: scale,
			Color: col,
		})
	}
	return items
}

// AppendItems queues every item as opaque text.
func AppendItems(buf []float32, f *FontAtlas, items []TextItem) []float32 {
	for _, it := range items {
		buf = f.AppendString(buf, it.Text, it.X, it.Y, it.Scale, it.Color, 1)
	}
	return buf
}

// centred places a single line so its centre sits on (cx, cy).
func centred(f *FontAtlas, text string, cx, cy, scale float32, col RGB) TextItem {
	return TextItem{
		Text:  text,
		X:     cx - float32(f.TextWidth(text, scale))/2,
		Y:     cy - f.LineHeight(scale)/2,
		Scale: scale,
		Color: col,
	}
}
