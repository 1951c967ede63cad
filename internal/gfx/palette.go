package gfx

import "github.com/lucasb-eyer/go-colorful"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: clampByte(int(c.R) + dr), G: clampByte(int(c.G) + dg), B: clampByte(int(c.B) + db)}
}

// Floats returns the channels in 0..1 for vertex data.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts a go-colorful colour, clamping out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend mixes a towards b in Lab space. t is clamped to [0, 1].
func Blend(a, b RGB, t float64) RGB {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return FromColorful(a.colorful().BlendLab(b.colorful(), t))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

var Palette = struct {
	Deep      RGB
	Shallow   RGB
	Crest     RGB
	Foam      RGB
	Sparkle   RGB
	Hull      RGB
	HullDark  RGB
	Deck      RGB
	Sail      RGB
	Mast      RGB
	Text      RGB
	TextDim   RGB
	Highlight RGB
}{
	Deep:      RGB{R: 22, G: 62, B: 112},
	Shallow:   RGB{R: 38, G: 98, B: 150},
	Crest:     RGB{R: 92, G: 160, B: 205},
	Foam:      RGB{R: 214, G: 236, B: 245},
	Sparkle:   RGB{R: 255, G: 255, B: 230},
	Hull:      RGB{R: 128, G: 78, B: 44},
	HullDark:  RGB{R: 82, G: 48, B: 26},
	Deck:      RGB{R: 190, G: 148, B: 96},
	Sail:      RGB{R: 240, G: 232, B: 210},
	Mast:      RGB{R: 60, G: 40, B: 24},
	Text:      RGB{R: 255, G: 255, B: 255},
	TextDim:   RGB{R: 150, G: 170, B: 185},
	Highlight: RGB{R: 255, G: 214, B: 90},
}
