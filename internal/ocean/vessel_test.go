package ocean

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVessel_StartsAtCentreFacingNorth(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVessel(cfg)

	assert.Equal(t, mgl64.Vec2{320, 320}, v.Position)
	assert.Equal(t, -math.Pi, v.Heading)
	assert.Equal(t, North, CompassFor(v.Heading))
	fwd := Forward(v.Heading)
	assert.Zero(t, fwd.X())
	assert.InDelta(t, -1.0, fwd.Y(), 1e-12)
	assert.Zero(t, v.Speed())
}

func TestVessel_OneSecondOfThrust(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVessel(cfg)

	v.Steer(Controls{Thrust: true})
	v.Integrate(1)

	speed := v.Speed()
	assert.Greater(t, speed, 0.0)
	assert.Less(t, speed, cfg.MaxSpeed)
	assert.InDelta(t, cfg.Acceleration, speed, 1e-9)
	// Facing north: all motion is on -Y.
	assert.Zero(t, v.Velocity.X())
	assert.Less(t, v.Velocity.Y(), 0.0)
}

func TestVessel_SustainedThrustConvergesToMaxSpeed(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVessel(cfg)
	const dt = 1.0 / 60

	for i := 0; i < 10*60; i++ {
		v.Steer(Controls{Thrust: true})
		v.Integrate(dt)
	}
	assert.InDelta(t, cfg.MaxSpeed, v.Speed(), 1e-9)

	for i := 0; i < 5*60; i++ {
		v.Steer(Controls{Thrust: true, TurnRight: i%90 < 45})
		v.Integrate(dt)
		require.InDelta(t, cfg.MaxSpeed, v.Speed(), 1e-9)
	}
}

func TestVessel_DragDecaysWhileCoasting(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVessel(cfg)

	v.Steer(Controls{Thrust: true})
	v.Integrate(1)
	require.InDelta(t, 50.0, v.Speed(), 1e-9)

	v.Steer(Controls{})
	assert.Equal(t, mgl64.Vec2{}, v.Acceleration)
	v.Integrate(1)
	assert.InDelta(t, 25.0, v.Speed(), 1e-9)

	for i := 0; i < 60; i++ {
		v.Integrate(1)
	}
	assert.Zero(t, v.Speed())
}

func TestVessel_DragEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		drag float64
		want float64
	}{
		{"zero drag stops", 0, 0},
		{"negative drag stops", -1, 0},
		{"unit drag keeps speed", 1, 50},
		{"nan drag stops", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Drag = tt.drag
			v := NewVessel(cfg)
			v.Steer(Controls{Thrust: true})
			v.Integrate(1)
			v.Steer(Controls{})
			v.Integrate(1)
			assert.InDelta(t, tt.want, v.Speed(), 1e-9)
		})
	}
}

func TestVessel_TurnPriority(t *testing.T) {
	cfg := DefaultConfig()
	rate := cfg.AngularVelocity * math.Pi / 180

	tests := []struct {
		name string
		ctrl Controls
		want float64
	}{
		{"left", Controls{TurnLeft: true}, -rate},
		{"right", Controls{TurnRight: true}, rate},
		{"both turns left", Controls{TurnLeft: true, TurnRight: true}, -rate},
		{"none", Controls{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVessel(cfg)
			v.Steer(tt.ctrl)
			assert.InDelta(t, tt.want, v.AngularVelocity, 1e-12)
		})
	}
}

func TestVessel_VelocityFollowsHeadingWhileCoasting(t *testing.T) {
	cfg := DefaultConfig()
	v := NewVessel(cfg)
	v.Steer(Controls{Thrust: true})
	v.Integrate(1)

	v.Steer(Controls{TurnRight: true})
	v.Integrate(0.5)

	dir := Forward(v.Heading)
	speed := v.Speed()
	assert.InDelta(t, dir.X()*speed, v.Velocity.X(), 1e-9)
	assert.InDelta(t, dir.Y()*speed, v.Velocity.Y(), 1e-9)
}

func TestVessel_HeadingStaysWrapped(t *testing.T) {
	v := NewVessel(DefaultConfig())
	for i := 0; i < 2000; i++ {
		v.Steer(Controls{TurnRight: true})
		v.Integrate(0.1)
		require.GreaterOrEqual(t, v.Heading, -math.Pi)
		require.Less(t, v.Heading, math.Pi)
	}
}

func TestVessel_WrapToView(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl64.Vec2
		scrollX float64
		scrollY float64
		wantPos mgl64.Vec2
	}{
		{"left edge", mgl64.Vec2{-1, 100}, 0, 0, mgl64.Vec2{640, 100}},
		{"right edge", mgl64.Vec2{641, 100}, 0, 0, mgl64.Vec2{0, 100}},
		{"top edge", mgl64.Vec2{100, -1}, 0, 0, mgl64.Vec2{100, 640}},
		{"bottom edge", mgl64.Vec2{100, 641}, 0, 0, mgl64.Vec2{100, 0}},
		{"inside", mgl64.Vec2{300, 300}, 0, 0, mgl64.Vec2{300, 300}},
		{"relative to scroll", mgl64.Vec2{999, 50}, 1000, 0, mgl64.Vec2{1640, 50}},
		{"corner", mgl64.Vec2{-5, -5}, 0, 0, mgl64.Vec2{640, 640}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVessel(DefaultConfig())
			v.Position = tt.pos
			v.WrapToView(tt.scrollX, tt.scrollY, 640, 640)
			assert.Equal(t, tt.wantPos, v.Position)
		})
	}
}

func TestVessel_AnimationSwitchesWithMotion(t *testing.T) {
	v := NewVessel(DefaultConfig())
	v.Integrate(0.25)
	assert.GreaterOrEqual(t, v.Frame(), BoatIdleFirst)
	assert.LessOrEqual(t, v.Frame(), BoatIdleLast)

	v.Steer(Controls{Thrust: true})
	v.Integrate(0.1)
	assert.Equal(t, BoatMoveFirst, v.Frame())
	v.Integrate(0.25)
	assert.Equal(t, BoatMoveFirst+1, v.Frame())
}

func TestVessel_Reset(t *testing.T) {
	v := NewVessel(DefaultConfig())
	v.Steer(Controls{Thrust: true, TurnLeft: true})
	v.Integrate(3)
	v.Reset()

	fresh := NewVessel(DefaultConfig())
	assert.Equal(t, fresh, v)
}
