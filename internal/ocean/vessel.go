package ocean

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Controls is the keyboard state sampled once per frame.
type Controls struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
}

// Boat sheet animation ranges.
const (
	BoatIdleFirst = 0
	BoatIdleLast  = 5
	BoatMoveFirst = 6
	BoatMoveLast  = 12
	BoatFrameRate = 5.0

	// Velocity components below this are snapped to rest while coasting.
	minCoastSpeed = 0.001

	// The boat sprite's forward axis sits this far from rotation zero.
	forwardOffset = -math.Pi / 2 * 3
)

// Vessel is the single player-controlled body.
type Vessel struct {
	Position        mgl64.Vec2
	Velocity        mgl64.Vec2
	Acceleration    mgl64.Vec2
	Heading         float64 // radians, [-π, π)
	AngularVelocity float64 // radians/second
	MaxSpeed        float64
	Drag            float64

	turnRate float64
	thrust   float64
	origin   mgl64.Vec2

	moving   bool
	animTime float64
}

func NewVessel(cfg Config) *Vessel {
	v := &Vessel{
		MaxSpeed: cfg.MaxSpeed,
		Drag:     cfg.Drag,
		turnRate: deg2rad(cfg.AngularVelocity),
		thrust:   cfg.Acceleration,
		origin:   mgl64.Vec2{cfg.CenterX(), cfg.CenterY()},
	}
	v.Reset()
	return v
}

// Reset puts the vessel back at the viewport centre, facing north, at rest.
func (v *Vessel) Reset() {
	v.Position = v.origin
	v.Velocity = mgl64.Vec2{}
	v.Acceleration = mgl64.Vec2{}
	v.Heading = wrapAngle(math.Pi)
	v.AngularVelocity = 0
	v.moving = false
	v.animTime = 0
}

// Forward is the unit vector the boat travels along for a given heading.
// Rounding residue is snapped so axis-aligned headings stay on the axis.
func Forward(heading float64) mgl64.Vec2 {
	a := heading + forwardOffset
	return mgl64.Vec2{snapUnit(math.Cos(a)), snapUnit(math.Sin(a))}
}

func snapUnit(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}

// Steer applies the controls. Left is checked before right; holding both
// turns left.
func (v *Vessel) Steer(c Controls) {
	switch {
	case c.TurnLeft:
		v.AngularVelocity = -v.turnRate
	case c.TurnRight:
		v.AngularVelocity = v.turnRate
	default:
		v.AngularVelocity = 0
	}

	if c.Thrust {
		v.Acceleration = Forward(v.Heading).Mul(v.thrust)
	} else {
		v.Acceleration = mgl64.Vec2{}
	}
}

// Integrate advances the body by dt seconds. The velocity direction is
// slaved to the heading every frame; only its magnitude comes from
// acceleration, drag and the speed cap.
func (v *Vessel) Integrate(dt float64) {
	if dt < 0 {
		dt = 0
	}
	v.Heading = wrapAngle(v.Heading + v.AngularVelocity*dt)

	if v.Acceleration.X() != 0 || v.Acceleration.Y() != 0 {
		v.Velocity = v.Velocity.Add(v.Acceleration.Mul(dt))
	} else {
		v.Velocity = coast(v.Velocity, v.Drag, dt)
	}

	speed := v.Velocity.Len()
	if math.IsNaN(speed) {
		speed = 0
	}
	if speed > v.MaxSpeed {
		speed = math.Max(v.MaxSpeed, 0)
	}
	v.Velocity = Forward(v.Heading).Mul(speed)
	v.Position = v.Position.Add(v.Velocity.Mul(dt))

	v.animate(speed > 0, dt)
}

// WrapToView teleports the vessel to the opposite edge of the viewport
// when it crosses one. The vessel lives in a one-screen lake; only the tile
// field is unbounded.
func (v *Vessel) WrapToView(scrollX, scrollY, w, h float64) {
	x, y := v.Position.X(), v.Position.Y()
	if x < scrollX {
		x = scrollX + w
	} else if x > scrollX+w {
		x = scrollX
	}
	if y < scrollY {
		y = scrollY + h
	} else if y > scrollY+h {
		y = scrollY
	}
	v.Position = mgl64.Vec2{x, y}
}

func (v *Vessel) Speed() float64 { return v.Velocity.Len() }

// Frame is the boat sheet frame for the current animation.
func (v *Vessel) Frame() int {
	first, last := BoatIdleFirst, BoatIdleLast
	if v.moving {
		first, last = BoatMoveFirst, BoatMoveLast
	}
	n := last - first + 1
	return first + int(v.animTime*BoatFrameRate)%n
}

func (v *Vessel) animate(moving bool, dt float64) {
	if moving != v.moving {
		v.moving = moving
		v.animTime = 0
		return
	}
	v.animTime += dt
}

// coast applies exponential damping: drag is the fraction of velocity kept
// after one second.
func coast(vel mgl64.Vec2, drag, dt float64) mgl64.Vec2 {
	switch {
	case drag <= 0 || math.IsNaN(drag):
		return mgl64.Vec2{}
	case drag >= 1:
		return vel
	}
	k := math.Pow(drag, dt)
	x, y := vel.X()*k, vel.Y()*k
	if math.Abs(x) < minCoastSpeed {
		x = 0
	}
	if math.Abs(y) < minCoastSpeed {
		y = 0
	}
	return mgl64.Vec2{x, y}
}
