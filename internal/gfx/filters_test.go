package gfx

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyondthesea/internal/ocean"
)

func TestFilterStack_Lifecycle(t *testing.T) {
	var s FilterStack

	a := s.AddFilter(ocean.FilterPixelate)
	b := s.AddFilter(ocean.FilterBarrel)
	c := s.AddFilter(ocean.FilterBlur)
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)

	s.UpdateFilter(b, 2.5)
	s.RemoveFilter(a)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []Pass{
		{Handle: b, Kind: ocean.FilterBarrel, Amount: 2.5},
		{Handle: c, Kind: ocean.FilterBlur},
	}, s.Passes())
}

func TestFilterStack_UnknownHandlesIgnored(t *testing.T) {
	var s FilterStack
	h := s.AddFilter(ocean.FilterBlur)

	s.UpdateFilter(h+10, 3)
	s.RemoveFilter(0)
	s.RemoveFilter(h + 10)

	require.Equal(t, 1, s.Len())
	assert.Zero(t, s.Passes()[0].Amount)

	s.RemoveFilter(h)
	s.RemoveFilter(h)
	assert.Zero(t, s.Len())
}

func TestFilterStack_HandlesNotReused(t *testing.T) {
	var s FilterStack
	first := s.AddFilter(ocean.FilterPixelate)
	s.RemoveFilter(first)
	assert.NotEqual(t, first, s.AddFilter(ocean.FilterPixelate))
}

func TestFilterStack_DrivenByEffects(t *testing.T) {
	cfg := ocean.DefaultConfig()
	var s FilterStack
	fx := ocean.NewEffects(&s, zerolog.Nop())

	// North and east: pixelate and blur, no barrel.
	fx.Apply(ocean.Modulate(ocean.TravelLedger{NorthSouth: 1200, EastWest: -1200}, cfg))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, ocean.FilterPixelate, s.Passes()[0].Kind)
	assert.InDelta(t, 1.5, s.Passes()[0].Amount, 1e-9)
	assert.Equal(t, ocean.FilterBlur, s.Passes()[1].Kind)

	// Paying the ledgers back past zero swaps pixelate for barrel.
	fx.Apply(ocean.Modulate(ocean.TravelLedger{NorthSouth: -4800, EastWest: 0}, cfg))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, ocean.FilterBarrel, s.Passes()[0].Kind)
	assert.InDelta(t, 3, s.Passes()[0].Amount, 1e-9)

	fx.Clear()
	assert.Zero(t, s.Len())
}
