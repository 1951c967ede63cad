package ocean

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TravelLedger holds signed cumulative distance per axis. Travel north
// (negative Y) and west (negative X) increase the ledgers; travel the other
// way pays them back down. Values are never clamped here.
type TravelLedger struct {
	NorthSouth float64
	EastWest   float64
}

// Integrate books one frame of travel.
func (l *TravelLedger) Integrate(vel mgl64.Vec2, dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	dy := vel.Y() * dt
	dx := vel.X() * dt
	if !math.IsNaN(dy) && !math.IsInf(dy, 0) {
		l.NorthSouth -= dy
	}
	if !math.IsNaN(dx) && !math.IsInf(dx, 0) {
		l.EastWest -= dx
	}
}

func (l *TravelLedger) Reset() {
	l.NorthSouth = 0
	l.EastWest = 0
}

// Bearing flags which directions a velocity is heading in.
type Bearing uint8

const (
	BearingNorth Bearing = 1 << iota
	BearingSouth
	BearingEast
	BearingWest
)

// BearingOf reports the direction components of vel.
func BearingOf(vel mgl64.Vec2) Bearing {
	var b Bearing
	switch {
	case vel.Y() < 0:
		b |= BearingNorth
	case vel.Y() > 0:
		b |= BearingSouth
	}
	switch {
	case vel.X() > 0:
		b |= BearingEast
	case vel.X() < 0:
		b |= BearingWest
	}
	return b
}

func (b Bearing) String() string {
	if b == 0 {
		return "still"
	}
	s := ""
	if b&BearingNorth != 0 {
		s += "north"
	}
	if b&BearingSouth != 0 {
		s += "south"
	}
	if b&BearingEast != 0 {
		s += "east"
	}
	if b&BearingWest != 0 {
		s += "west"
	}
	return s
}
