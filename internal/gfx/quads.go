package gfx

import (
	"math"

	"beyondthesea/internal/ocean"
)

// Quad vertex layout: x, y, u, v, r, g, b, a. Each quad is two triangles.
const (
	VertexFloats = 8
	QuadVertices = 6
	QuadFloats   = VertexFloats * QuadVertices
)

// QuadCount is the number of whole quads in buf.
func QuadCount(buf []float32) int { return len(buf) / QuadFloats }

// AppendQuad queues an axis-aligned quad from (x0, y0) to (x1, y1).
func AppendQuad(buf []float32, x0, y0, x1, y1 float32, reg Region, col RGB, alpha float32) []float32 {
	cr, cg, cb := col.Floats()
	// TL, TR, BL then TR, BR, BL.
	return append(buf,
		x0, y0, reg.U0, reg.V0, cr, cg, cb, alpha,
		x1, y0, reg.U1, reg.V0, cr, cg, cb, alpha,
		x0, y1, reg.U0, reg.V1, cr, cg, cb, alpha,
		x1, y0, reg.U1, reg.V0, cr, cg, cb, alpha,
		x1, y1, reg.U1, reg.V1, cr, cg, cb, alpha,
		x0, y1, reg.U0, reg.V1, cr, cg, cb, alpha,
	)
}

// AppendRotatedQuad queues a w x h quad centred on (cx, cy) and turned by
// angle radians (clockwise on screen, since Y grows downwards).
func AppendRotatedQuad(buf []float32, cx, cy, w, h, angle float64, reg Region, col RGB, alpha float32) []float32 {
	s, c := math.Sincos(angle)
	corner := func(lx, ly float64) (float32, float32) {
		return float32(cx + lx*c - ly*s), float32(cy + lx*s + ly*c)
	}
	hw, hh := w/2, h/2
	tlx, tly := corner(-hw, -hh)
	trx, try := corner(hw, -hh)
	blx, bly := corner(-hw, hh)
	brx, bry := corner(hw, hh)

	cr, cg, cb := col.Floats()
	return append(buf,
		tlx, tly, reg.U0, reg.V0, cr, cg, cb, alpha,
		trx, try, reg.U1, reg.V0, cr, cg, cb, alpha,
		blx, bly, reg.U0, reg.V1, cr, cg, cb, alpha,
		trx, try, reg.U1, reg.V0, cr, cg, cb, alpha,
		brx, bry, reg.U1, reg.V1, cr, cg, cb, alpha,
		blx, bly, reg.U0, reg.V1, cr, cg, cb, alpha,
	)
}

var opaque = RGB{R: 255, G: 255, B: 255}

// AppendTiles queues every water tile centred on its position, with its
// sheet, animation frame and flips applied.
func AppendTiles(buf []float32, f *ocean.TileField) []float32 {
	half := float32(f.Size() / 2)
	for i := range f.Tiles {
		t := &f.Tiles[i]
		reg := WaterRegion(t.Sheet, t.Frame())
		if t.FlipX {
			reg = reg.FlipX()
		}
		if t.FlipY {
			reg = reg.FlipY()
		}
		x, y := float32(t.Pos.X()), float32(t.Pos.Y())
		buf = AppendQuad(buf, x-half, y-half, x+half, y+half, reg, opaque, 1)
	}
	return buf
}

// AppendBoat queues the vessel sprite. The sheet is drawn bow-down, which is
// heading zero.
func AppendBoat(buf []float32, v *ocean.Vessel) []float32 {
	return AppendRotatedQuad(buf,
		v.Position.X(), v.Position.Y(),
		BoatFrameSize, BoatFrameSize,
		v.Heading, BoatRegion(v.Frame()), opaque, 1)
}

// AppendNoise queues the static overlay. Nothing is emitted while the
// overlay is fully transparent.
func AppendNoise(buf []float32, g *ocean.NoiseGrid) []float32 {
	white := WhiteRegion()
	w, h := float32(g.CellW), float32(g.CellH)
	for i := range g.Cells {
		c := &g.Cells[i]
		if c.Alpha <= 0 {
			continue
		}
		x, y := float32(c.Pos.X()), float32(c.Pos.Y())
		buf = AppendQuad(buf, x, y, x+w, y+h, white, FromColorful(c.Color), float32(c.Alpha))
	}
	return buf
}
