package gfx

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyondthesea/internal/ocean"
)

func TestTitleLayout(t *testing.T) {
	f := BuildFontAtlas()
	items := TitleLayout(f, 640, 640, 1)

	require.Len(t, items, 2+len(strings.Split(Instructions, "\n")))
	assert.Equal(t, TextItem{Text: TitleText, X: 124, Y: 134, Scale: 4, Color: Palette.Text}, items[0])
	assert.Equal(t, TextItem{Text: BylineText, X: 194, Y: 207, Scale: 2, Color: Palette.Text}, items[1])

	for i, it := range items[2:] {
		assert.InDelta(t, 278+26*i, it.Y, 1e-4, "line %d", i)
	}
	assert.Equal(t, "Press SPACE to begin", items[len(items)-1].Text)

	for _, it := range items {
		centre := it.X + float32(f.TextWidth(it.Text, it.Scale))/2
		assert.InDelta(t, 320, centre, 0.5, it.Text)
	}
}

func TestTitleLayout_ScalesWithUnit(t *testing.T) {
	f := BuildFontAtlas()
	one := TitleLayout(f, 640, 640, 1)
	two := TitleLayout(f, 1280, 1280, 2)

	require.Len(t, two, len(one))
	for i := range one {
		assert.Equal(t, one[i].Scale*2, two[i].Scale)
		assert.InDelta(t, one[i].X*2, two[i].X, 1e-3)
		assert.InDelta(t, one[i].Y*2, two[i].Y, 1e-3)
	}
}

func TestCompassLayout(t *testing.T) {
	f := BuildFontAtlas()

	items := CompassLayout(f, -math.Pi, 1)
	require.Len(t, items, 4)
	for i, want := range []string{"N", "E", "S", "W"} {
		assert.Equal(t, want, items[i].Text)
		assert.Equal(t, float32(8+28*i), items[i].X)
		assert.Equal(t, float32(8), items[i].Y)
	}
	assert.Equal(t, Palette.Highlight, items[0].Color)
	assert.Equal(t, Palette.TextDim, items[1].Color)
}

func TestCompassLayout_OneHighlight(t *testing.T) {
	f := BuildFontAtlas()
	for h := -math.Pi; h < math.Pi; h += 0.05 {
		lit := ""
		for _, it := range CompassLayout(f, h, 1) {
			if it.Color == Palette.Highlight {
				require.Empty(t, lit, "heading %v", h)
				lit = it.Text
			}
		}
		assert.Equal(t, ocean.CompassFor(h).String(), lit, "heading %v", h)
	}
}

func TestAppendItems(t *testing.T) {
	f := BuildFontAtlas()
	buf := AppendItems(nil, f, CompassLayout(f, 0, 1))
	assert.Equal(t, 4, QuadCount(buf))
}
