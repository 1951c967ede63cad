package ocean

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sheet selects one of the two water sprite sheets.
type Sheet uint8

const (
	SheetA Sheet = iota
	SheetB
)

const (
	TileFrames    = 4
	TileFrameRate = 5.0

	// Probability that a tile uses the second sheet.
	sheetBChance = 0.2
)

// Tile is one recycled background cell. Only Pos and the animation clock
// change after creation.
type Tile struct {
	Col, Row   int
	Pos        mgl64.Vec2
	Sheet      Sheet
	FlipX      bool
	FlipY      bool
	StartFrame int

	animTime float64
}

// Frame is the current animation frame in [0, TileFrames).
func (t *Tile) Frame() int {
	return (t.StartFrame + int(t.animTime*TileFrameRate)) % TileFrames
}

// Origin is the tile's grid position at creation.
func (t *Tile) Origin(size float64) mgl64.Vec2 {
	return mgl64.Vec2{float64(t.Col) * size, float64(t.Row) * size}
}

// TileField keeps a fixed ring of tiles around the viewport so the water
// appears unbounded.
type TileField struct {
	Tiles      []Tile
	Cols, Rows int

	size         float64
	viewW, viewH float64
	spanX, spanY float64
}

// NewTileField lays out ceil(viewport/size)+2 tiles per axis starting at the
// world origin. Visual variance comes from r and is fixed for the field's
// lifetime.
func NewTileField(cfg Config, r *Rand) *TileField {
	cols := int(math.Ceil(cfg.ViewportWidth/cfg.TileSize)) + 2
	rows := int(math.Ceil(cfg.ViewportHeight/cfg.TileSize)) + 2
	f := &TileField{
		Tiles: make([]Tile, 0, cols*rows),
		Cols:  cols,
		Rows:  rows,
		size:  cfg.TileSize,
		viewW: cfg.ViewportWidth,
		viewH: cfg.ViewportHeight,
		spanX: cfg.ViewportWidth + 2*cfg.TileSize,
		spanY: cfg.ViewportHeight + 2*cfg.TileSize,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t := Tile{Col: col, Row: row}
			if r.Float64() < sheetBChance {
				t.Sheet = SheetB
			}
			t.StartFrame = r.Intn(TileFrames)
			t.FlipX = r.Bool()
			t.FlipY = r.Bool()
			t.Pos = t.Origin(f.size)
			f.Tiles = append(f.Tiles, t)
		}
	}
	return f
}

func (f *TileField) Size() float64 { return f.size }

// Update scrolls every tile against the vessel's motion and recycles the
// ones that leave the one-tile margin band around the viewport.
func (f *TileField) Update(vel mgl64.Vec2, dt, scrollX, scrollY float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	shift := vel.Mul(dt)
	if math.IsNaN(shift.X()) || math.IsNaN(shift.Y()) {
		shift = mgl64.Vec2{}
	}
	loX := scrollX - f.size
	loY := scrollY - f.size
	for i := range f.Tiles {
		t := &f.Tiles[i]
		x := wrapInto(t.Pos.X()-shift.X(), loX, f.spanX)
		y := wrapInto(t.Pos.Y()-shift.Y(), loY, f.spanY)
		t.Pos = mgl64.Vec2{x, y}
		t.animTime += dt
	}
}

// Band returns the per-axis interval every tile is kept inside.
func (f *TileField) Band(scrollX, scrollY float64) (minX, maxX, minY, maxY float64) {
	return scrollX - f.size, scrollX + f.viewW + f.size,
		scrollY - f.size, scrollY + f.viewH + f.size
}

// Reset returns every tile to its grid origin and start frame.
func (f *TileField) Reset() {
	for i := range f.Tiles {
		t := &f.Tiles[i]
		t.Pos = t.Origin(f.size)
		t.animTime = 0
	}
}
