package ocean

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModulate_AtOrigin(t *testing.T) {
	lv := Modulate(TravelLedger{}, DefaultConfig())

	assert.Equal(t, Levels{AmbientVolume: 2, AmbientDetune: 0}, lv)
	mix := lv.Mix()
	assert.Equal(t, TrackMix{Playing: true, Volume: 2}, mix.Ambient)
	assert.False(t, mix.Static.Playing)
	assert.False(t, mix.Buzz.Playing)
}

func TestPixelateAmount(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		ns   float64
		want float64
	}{
		{0, 0},
		{-500, 0},
		{1200, 1.5},
		{2400, 3},
		{1e9, 3},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, PixelateAmount(tt.ns, cfg), 1e-12, "ns=%v", tt.ns)
	}
}

func TestPixelateAmount_Monotone(t *testing.T) {
	cfg := DefaultConfig()
	prev := -1.0
	for ns := -100.0; ns <= 3000; ns += 7 {
		got := PixelateAmount(ns, cfg)
		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, cfg.MaxPixelate)
		prev = got
	}
}

func TestBarrelAmount(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name       string
		ns         float64
		want       float64
		wantActive bool
	}{
		{"origin", 0, 0, false},
		{"north", 500, 0, false},
		{"just south floors at one", -100, 1, true},
		{"halfway", -1200, 1.5, true},
		{"far south caps", -1e7, 3, true},
		{"nan", math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, active := BarrelAmount(tt.ns, cfg)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.Equal(t, tt.wantActive, active)
		})
	}
}

func TestBlurAndNoise(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 1.5, BlurAmount(-1200, cfg), 1e-12)
	assert.Zero(t, BlurAmount(1200, cfg))
	assert.InDelta(t, 3, BlurAmount(-5000, cfg), 1e-12)

	assert.InDelta(t, 0.5, NoiseOpacity(1200, cfg), 1e-12)
	assert.Zero(t, NoiseOpacity(-1200, cfg))
	assert.Equal(t, 1.0, NoiseOpacity(9999, cfg))
}

func TestModulate_DegenerateDenominators(t *testing.T) {
	for _, d := range []float64{0, math.NaN(), math.Inf(1)} {
		cfg := DefaultConfig()
		cfg.MaxDistanceNS = d
		cfg.MaxDistanceEW = d

		lv := Modulate(TravelLedger{NorthSouth: 100, EastWest: 100}, cfg)
		assert.Zero(t, lv.Pixelate)
		assert.Zero(t, lv.NoiseOpacity)
		assert.Zero(t, lv.StaticRatio)
		assert.Equal(t, 2.0, lv.AmbientVolume)

		lv = Modulate(TravelLedger{NorthSouth: -100, EastWest: -100}, cfg)
		assert.Equal(t, 1.0, lv.Barrel)
		assert.True(t, lv.BarrelActive)
		assert.Zero(t, lv.Blur)
		assert.False(t, lv.BuzzEngaged)
	}
}

func TestStaticRatio(t *testing.T) {
	assert.Zero(t, StaticRatio(0))
	assert.Equal(t, 0.25, StaticRatio(0.5))
	assert.Equal(t, 0.5, StaticRatio(1))
	assert.Equal(t, 0.5, StaticRatio(7))
	assert.Zero(t, StaticRatio(math.NaN()))
}

func TestAmbientVolume(t *testing.T) {
	assert.Equal(t, 2.0, AmbientVolume(0, false))
	assert.Equal(t, 1.75, AmbientVolume(0.5, false))
	assert.Equal(t, 1.0, AmbientVolume(0, true))
	assert.Equal(t, 1.0, AmbientVolume(0.5, true))
}

func TestBuzzRatio(t *testing.T) {
	cfg := DefaultConfig()

	ratio, on := BuzzRatio(0, cfg)
	assert.False(t, on)
	assert.Zero(t, ratio)

	ratio, on = BuzzRatio(0.015, cfg) // 0.5%
	assert.False(t, on)
	assert.Zero(t, ratio)

	ratio, on = BuzzRatio(0.06, cfg) // 2%
	assert.True(t, on)
	assert.InDelta(t, 0.02, ratio, 1e-12)

	ratio, on = BuzzRatio(3, cfg)
	assert.True(t, on)
	assert.InDelta(t, 1, ratio, 1e-12)
}

func TestModulate_WestwardAudio(t *testing.T) {
	lv := Modulate(TravelLedger{EastWest: 1200}, DefaultConfig())

	assert.InDelta(t, 0.5, lv.NoiseOpacity, 1e-12)
	assert.InDelta(t, 0.25, lv.StaticRatio, 1e-12)
	assert.InDelta(t, 1.875, lv.AmbientVolume, 1e-12)
	assert.InDelta(t, -300, lv.AmbientDetune, 1e-9)
	assert.False(t, lv.BlurActive)

	mix := lv.Mix()
	assert.True(t, mix.Static.Playing)
	assert.InDelta(t, 0.25, mix.Static.Volume, 1e-12)
	assert.InDelta(t, -300, mix.Ambient.Detune, 1e-9)
}

func TestModulate_EastwardBuzz(t *testing.T) {
	lv := Modulate(TravelLedger{EastWest: -1200}, DefaultConfig())

	assert.True(t, lv.BlurActive)
	assert.InDelta(t, 1.5, lv.Blur, 1e-12)
	assert.True(t, lv.BuzzEngaged)
	assert.InDelta(t, 0.5, lv.BuzzRatio, 1e-12)
	assert.Zero(t, lv.NoiseOpacity)
	assert.True(t, lv.Mix().Buzz.Playing)
}

func TestModulate_ClampedAmbient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClampAmbientVolume = true
	lv := Modulate(TravelLedger{EastWest: 2400}, cfg)
	assert.Equal(t, 1.0, lv.AmbientVolume)
}
