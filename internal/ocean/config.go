package ocean

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidViewport        = errors.New("viewport must be positive")
	ErrInvalidTileSize        = errors.New("tile size must be positive")
	ErrInvalidNoiseResolution = errors.New("noise resolution must be positive")
)

// Config is the immutable tuning for one World. It is copied into every
// component at construction; nothing reads it from package state.
type Config struct {
	ViewportWidth  float64
	ViewportHeight float64
	TileSize       float64

	// Vessel.
	AngularVelocity float64 // degrees/second
	MaxSpeed        float64 // pixels/second
	Drag            float64 // damping factor per second while coasting
	Acceleration    float64 // pixels/second² while thrusting

	// Effects.
	MaxDistanceNS      float64
	MaxDistanceEW      float64
	MaxPixelate        float64
	MaxBarrel          float64
	MaxBlur            float64
	AmbientDetuneCents float64
	ClampAmbientVolume bool

	NoiseResolution int
	Seed            uint64
}

// Defaults matching the shipped game.
const (
	DefaultViewport           = 640
	DefaultTileSize           = 16
	DefaultAngularVelocity    = 50.0
	DefaultMaxSpeed           = 80.0
	DefaultDrag               = 0.5
	DefaultAcceleration       = 50.0
	DefaultMaxDistance        = 2400.0
	DefaultMaxEffect          = 3.0
	DefaultAmbientDetuneCents = 1200.0
	DefaultNoiseResolution    = 32
)

func DefaultConfig() Config {
	return Config{
		ViewportWidth:      DefaultViewport,
		ViewportHeight:     DefaultViewport,
		TileSize:           DefaultTileSize,
		AngularVelocity:    DefaultAngularVelocity,
		MaxSpeed:           DefaultMaxSpeed,
		Drag:               DefaultDrag,
		Acceleration:       DefaultAcceleration,
		MaxDistanceNS:      DefaultMaxDistance,
		MaxDistanceEW:      DefaultMaxDistance,
		MaxPixelate:        DefaultMaxEffect,
		MaxBarrel:          DefaultMaxEffect,
		MaxBlur:            DefaultMaxEffect,
		AmbientDetuneCents: DefaultAmbientDetuneCents,
		NoiseResolution:    DefaultNoiseResolution,
		Seed:               1,
	}
}

// Validate rejects values that would make the tile or noise grids
// impossible to build. Effect constants are not checked: the modulator
// treats degenerate denominators as "effect at floor".
func (c Config) Validate() error {
	if !positive(c.ViewportWidth) || !positive(c.ViewportHeight) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, c.ViewportWidth, c.ViewportHeight)
	}
	if !positive(c.TileSize) {
		return fmt.Errorf("%w: %v", ErrInvalidTileSize, c.TileSize)
	}
	if c.NoiseResolution <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNoiseResolution, c.NoiseResolution)
	}
	return nil
}

// CenterX and CenterY are the viewport centre in world pixels.
func (c Config) CenterX() float64 { return c.ViewportWidth / 2 }
func (c Config) CenterY() float64 { return c.ViewportHeight / 2 }

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
