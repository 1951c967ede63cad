package gfx

import (
	"image"
	"image/color"
	"math"

	"beyondthesea/internal/ocean"
)

// Sea atlas layout. Row 0 holds the boat sheet, the two water sheets sit
// below it, and a small opaque white block in the corner backs untextured
// quads.
const (
	AtlasW = 1024
	AtlasH = 128

	WaterFrameSize = 16
	BoatFrameSize  = 64
	BoatFrames     = ocean.BoatMoveLast + 1

	waterSheetY = BoatFrameSize
	whiteSize   = 4
)

// Region is a rectangle of the atlas in normalised texture coordinates.
type Region struct {
	U0, V0, U1, V1 float32
}

func (r Region) FlipX() Region {
	r.U0, r.U1 = r.U1, r.U0
	return r
}

func (r Region) FlipY() Region {
	r.V0, r.V1 = r.V1, r.V0
	return r
}

func pixelRegion(x, y, w, h int) Region {
	return Region{
		U0: float32(x) / AtlasW,
		V0: float32(y) / AtlasH,
		U1: float32(x+w) / AtlasW,
		V1: float32(y+h) / AtlasH,
	}
}

// WaterRegion returns one frame of a water sheet. Out-of-range frames wrap.
func WaterRegion(sheet ocean.Sheet, frame int) Region {
	frame = wrapFrame(frame, ocean.TileFrames)
	y := waterSheetY + int(sheet)*WaterFrameSize
	return pixelRegion(frame*WaterFrameSize, y, WaterFrameSize, WaterFrameSize)
}

// BoatRegion returns one frame of the boat sheet. Out-of-range frames wrap.
func BoatRegion(frame int) Region {
	frame = wrapFrame(frame, BoatFrames)
	return pixelRegion(frame*BoatFrameSize, 0, BoatFrameSize, BoatFrameSize)
}

// WhiteRegion samples the centre of the white block so linear filtering
// never reaches a neighbour.
func WhiteRegion() Region {
	x := float32(AtlasW - whiteSize/2)
	y := float32(AtlasH - whiteSize/2)
	return Region{
		U0: (x - 0.5) / AtlasW, V0: (y - 0.5) / AtlasH,
		U1: (x + 0.5) / AtlasW, V1: (y + 0.5) / AtlasH,
	}
}

func wrapFrame(f, n int) int {
	f %= n
	if f < 0 {
		f += n
	}
	return f
}

// BuildAtlas paints every sprite sheet procedurally. The same seed always
// yields the same pixels.
func BuildAtlas(seed uint64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasW, AtlasH))
	r := ocean.NewRand(seed)

	for f := 0; f < BoatFrames; f++ {
		paintBoat(img, f*BoatFrameSize, 0, f, r)
	}
	sparkles := sparklePoints(r, 6)
	for f := 0; f < ocean.TileFrames; f++ {
		paintWater(img, f*WaterFrameSize, waterSheetY, f, nil)
		paintWater(img, f*WaterFrameSize, waterSheetY+WaterFrameSize, f, sparkles)
	}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for y := AtlasH - whiteSize; y < AtlasH; y++ {
		for x := AtlasW - whiteSize; x < AtlasW; x++ {
			img.SetNRGBA(x, y, white)
		}
	}
	return img
}

func nrgba(c RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

type point struct{ x, y int }

func sparklePoints(r *ocean.Rand, n int) []point {
	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{r.Intn(WaterFrameSize), r.Intn(WaterFrameSize)}
	}
	return pts
}

// paintWater draws one 16x16 frame. Both wave terms have periods that divide
// the frame size, so tiles stay seamless when laid edge to edge or flipped.
func paintWater(img *image.NRGBA, ox, oy, frame int, sparkles []point) {
	phase := float64(frame) * math.Pi / 2
	for y := 0; y < WaterFrameSize; y++ {
		for x := 0; x < WaterFrameSize; x++ {
			swell := math.Sin(float64(x+y)*2*math.Pi/WaterFrameSize + phase)
			ripple := 0.5 * math.Sin(float64(y)*2*math.Pi/8-phase)
			w := swell + ripple

			c := Blend(Palette.Deep, Palette.Shallow, (w+1.5)/3)
			if w > 1.2 {
				c = Palette.Crest
			}
			img.SetNRGBA(ox+x, oy+y, nrgba(c))
		}
	}
	for i, p := range sparkles {
		if (i+frame)%ocean.TileFrames != 0 {
			continue
		}
		img.SetNRGBA(ox+p.x, oy+p.y, nrgba(Palette.Sparkle))
	}
}

// Hull profile, bow pointing down the frame (+Y).
const (
	sternY   = 12
	beamY    = 28
	bowY     = 54
	sternW   = 9.0
	beamW    = 12.0
	sailHalf = 14
)

func hullHalfWidth(y int) float64 {
	switch {
	case y < sternY || y > bowY:
		return -1
	case y <= beamY:
		return sternW + (beamW-sternW)*float64(y-sternY)/float64(beamY-sternY)
	default:
		return beamW * float64(bowY-y) / float64(bowY-beamY)
	}
}

func paintBoat(img *image.NRGBA, ox, oy, frame int, r *ocean.Rand) {
	const cx = BoatFrameSize / 2
	moving := frame >= ocean.BoatMoveFirst

	if moving {
		paintWake(img, ox, oy, frame-ocean.BoatMoveFirst, r)
	}

	for y := 0; y < BoatFrameSize; y++ {
		hw := hullHalfWidth(y)
		if hw < 0 {
			continue
		}
		for x := 0; x < BoatFrameSize; x++ {
			dx := math.Abs(float64(x-cx) + 0.5)
			if dx > hw {
				continue
			}
			c := Palette.Deck
			switch {
			case dx > hw-2 || y == sternY:
				c = Palette.HullDark
			case dx > hw-4:
				c = Palette.Hull
			case (y-sternY)%5 == 0:
				c = Palette.Deck.Add(-24, -20, -14)
			}
			img.SetNRGBA(ox+x, oy+y, nrgba(c))
		}
	}

	// Idle frames sway the boom one pixel either way.
	sway := 0
	if !moving {
		sway = int(math.Round(math.Sin(float64(frame) * 2 * math.Pi / float64(ocean.BoatIdleLast+1))))
	}
	for y := beamY + 1 + sway; y <= beamY+3+sway; y++ {
		for x := cx - sailHalf; x < cx+sailHalf; x++ {
			img.SetNRGBA(ox+x, oy+y, nrgba(Palette.Sail))
		}
	}
	for y := beamY; y < beamY+5; y++ {
		for x := cx - 2; x < cx+2; x++ {
			img.SetNRGBA(ox+x, oy+y, nrgba(Palette.Mast))
		}
	}
}

// paintWake scatters foam behind the stern and along the bow. step advances
// the pattern so the move cycle reads as motion.
func paintWake(img *image.NRGBA, ox, oy, step int, r *ocean.Rand) {
	const cx = BoatFrameSize / 2
	foam := nrgba(Palette.Foam)
	for y := 0; y < sternY; y++ {
		spread := int(sternW) + (sternY-y)/2
		for n := 0; n < 3; n++ {
			x := cx + r.Range(-spread, spread)
			if (y+step)%3 == 0 || r.Float64() < 0.4 {
				img.SetNRGBA(ox+x, oy+y, foam)
			}
		}
	}
	for y := bowY - 6; y < bowY+4 && y < BoatFrameSize; y++ {
		hw := hullHalfWidth(y)
		if hw < 0 {
			hw = 0
		}
		off := int(hw) + 1 + (step+y)%2
		img.SetNRGBA(ox+cx-off-1, oy+y, foam)
		img.SetNRGBA(ox+cx+off, oy+y, foam)
	}
}
