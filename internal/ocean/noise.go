package ocean

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// NoiseCell is one square of the static overlay.
type NoiseCell struct {
	Pos   mgl64.Vec2
	Alpha float64
	Color colorful.Color
}

// NoiseGrid is a Resolution x Resolution overlay pinned to the viewport.
// Cells are stored row-major.
type NoiseGrid struct {
	Resolution int
	CellW      float64
	CellH      float64
	Cells      []NoiseCell

	rng *Rand
}

func NewNoiseGrid(cfg Config, r *Rand) *NoiseGrid {
	n := cfg.NoiseResolution
	g := &NoiseGrid{
		Resolution: n,
		CellW:      cfg.ViewportWidth / float64(n),
		CellH:      cfg.ViewportHeight / float64(n),
		Cells:      make([]NoiseCell, n*n),
		rng:        r,
	}
	g.Update(0, 0, 0)
	return g
}

// Update pins the grid to the scroll origin, sets every cell to opacity and
// draws a fresh colour per cell. Positions are recomputed, never
// accumulated, so the overlay cannot drift.
func (g *NoiseGrid) Update(scrollX, scrollY, opacity float64) {
	opacity = clampF(opacity, 0, 1)
	for row := 0; row < g.Resolution; row++ {
		for col := 0; col < g.Resolution; col++ {
			c := &g.Cells[row*g.Resolution+col]
			c.Pos = mgl64.Vec2{
				scrollX + float64(col)*g.CellW,
				scrollY + float64(row)*g.CellH,
			}
			c.Alpha = opacity
			c.Color = g.sample()
		}
	}
}

// Cell returns the cell at (col, row).
func (g *NoiseGrid) Cell(col, row int) NoiseCell {
	return g.Cells[row*g.Resolution+col]
}

func (g *NoiseGrid) sample() colorful.Color {
	return colorful.Hsv(
		g.rng.RangeF(0, 360),
		g.rng.RangeF(0, 0.35),
		g.rng.RangeF(0.3, 1),
	)
}
