package ocean

import "github.com/go-gl/mathgl/mgl64"

// Camera is a viewport-sized window onto world space. X, Y is the centre.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

func NewCamera(cfg Config) Camera {
	return Camera{
		X:      cfg.CenterX(),
		Y:      cfg.CenterY(),
		Width:  cfg.ViewportWidth,
		Height: cfg.ViewportHeight,
	}
}

// Scroll returns the world position of the viewport's top-left corner.
func (c Camera) Scroll() (float64, float64) {
	return c.X - c.Width/2, c.Y - c.Height/2
}

// Follow centres the camera on p. Applied after the frame's update so the
// vessel wrap always sees the previous frame's scroll.
func (c *Camera) Follow(p mgl64.Vec2) {
	c.X = p.X()
	c.Y = p.Y()
}
