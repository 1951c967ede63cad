package ocean

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestTravelLedger_Integrate(t *testing.T) {
	var l TravelLedger

	l.Integrate(mgl64.Vec2{0, -10}, 2) // north
	assert.Equal(t, 20.0, l.NorthSouth)
	assert.Zero(t, l.EastWest)

	l.Integrate(mgl64.Vec2{-5, 0}, 2) // west
	assert.Equal(t, 10.0, l.EastWest)

	l.Integrate(mgl64.Vec2{5, 10}, 2) // south-east pays both back
	assert.Zero(t, l.NorthSouth)
	assert.Zero(t, l.EastWest)

	l.Integrate(mgl64.Vec2{5, 10}, 2)
	assert.Equal(t, -20.0, l.NorthSouth)
	assert.Equal(t, -10.0, l.EastWest)
}

func TestTravelLedger_IgnoresBadInput(t *testing.T) {
	tests := []struct {
		name string
		vel  mgl64.Vec2
		dt   float64
	}{
		{"zero dt", mgl64.Vec2{10, 10}, 0},
		{"negative dt", mgl64.Vec2{10, 10}, -1},
		{"nan dt", mgl64.Vec2{10, 10}, math.NaN()},
		{"nan velocity", mgl64.Vec2{math.NaN(), math.NaN()}, 1},
		{"infinite velocity", mgl64.Vec2{math.Inf(1), math.Inf(-1)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := TravelLedger{NorthSouth: 3, EastWest: -4}
			l.Integrate(tt.vel, tt.dt)
			assert.Equal(t, TravelLedger{NorthSouth: 3, EastWest: -4}, l)
		})
	}
}

func TestTravelLedger_NeverClamps(t *testing.T) {
	var l TravelLedger
	l.Integrate(mgl64.Vec2{0, -80}, 1e4)
	assert.Equal(t, 8e5, l.NorthSouth)
}

func TestTravelLedger_Reset(t *testing.T) {
	l := TravelLedger{NorthSouth: 12, EastWest: -9}
	l.Reset()
	assert.Equal(t, TravelLedger{}, l)
}

func TestBearingOf(t *testing.T) {
	tests := []struct {
		vel  mgl64.Vec2
		want Bearing
		str  string
	}{
		{mgl64.Vec2{}, 0, "still"},
		{mgl64.Vec2{0, -1}, BearingNorth, "north"},
		{mgl64.Vec2{0, 1}, BearingSouth, "south"},
		{mgl64.Vec2{1, 0}, BearingEast, "east"},
		{mgl64.Vec2{-1, 0}, BearingWest, "west"},
		{mgl64.Vec2{2, -3}, BearingNorth | BearingEast, "northeast"},
		{mgl64.Vec2{-2, 3}, BearingSouth | BearingWest, "southwest"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			got := BearingOf(tt.vel)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.str, got.String())
		})
	}
}
