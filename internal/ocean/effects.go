package ocean

import "math"

const (
	// Static never exceeds half volume.
	staticCeiling = 0.5
	// Ambient base level of the ocean track.
	ambientBase = 2.0
	// Blur percentage the buzz track waits for before engaging.
	buzzThresholdPct = 1.0
)

// Levels is the full set of effect intensities derived from one ledger
// reading. It carries no state of its own.
type Levels struct {
	Pixelate       float64
	PixelateActive bool
	Barrel         float64
	BarrelActive   bool
	Blur           float64
	BlurActive     bool

	NoiseOpacity  float64
	StaticRatio   float64
	BuzzRatio     float64
	BuzzEngaged   bool
	AmbientVolume float64
	AmbientDetune float64 // cents
}

// Modulate maps ledger values to effect intensities.
func Modulate(l TravelLedger, cfg Config) Levels {
	var lv Levels
	lv.Pixelate = PixelateAmount(l.NorthSouth, cfg)
	lv.PixelateActive = lv.Pixelate > 0
	lv.Barrel, lv.BarrelActive = BarrelAmount(l.NorthSouth, cfg)
	lv.Blur = BlurAmount(l.EastWest, cfg)
	lv.BlurActive = lv.Blur > 0

	lv.NoiseOpacity = NoiseOpacity(l.EastWest, cfg)
	lv.StaticRatio = StaticRatio(lv.NoiseOpacity)
	lv.AmbientVolume = AmbientVolume(lv.StaticRatio, cfg.ClampAmbientVolume)
	lv.AmbientDetune = -lv.StaticRatio * finiteNonNeg(cfg.AmbientDetuneCents)
	lv.BuzzRatio, lv.BuzzEngaged = BuzzRatio(lv.Blur, cfg)
	return lv
}

// PixelateAmount grows with northward travel up to MaxPixelate.
func PixelateAmount(ns float64, cfg Config) float64 {
	ceil := finiteNonNeg(cfg.MaxPixelate)
	q, ok := safeRatio(ns, cfg.MaxDistanceNS)
	if !ok {
		return 0
	}
	return clampF(q*ceil, 0, ceil)
}

// BarrelAmount grows with southward travel. Once active it never drops
// below 1; it switches off only when the ledger is back at or above zero.
func BarrelAmount(ns float64, cfg Config) (float64, bool) {
	if !(ns < 0) {
		return 0, false
	}
	ceil := math.Max(finiteNonNeg(cfg.MaxBarrel), 1)
	q, ok := safeRatio(ns, -cfg.MaxDistanceNS)
	if !ok {
		return 1, true
	}
	return clampF(q*ceil, 1, ceil), true
}

// BlurAmount grows with eastward travel up to MaxBlur.
func BlurAmount(ew float64, cfg Config) float64 {
	ceil := finiteNonNeg(cfg.MaxBlur)
	q, ok := safeRatio(ew, -cfg.MaxDistanceEW)
	if !ok {
		return 0
	}
	return clampF(q*ceil, 0, ceil)
}

// NoiseOpacity grows with westward travel to full opacity.
func NoiseOpacity(ew float64, cfg Config) float64 {
	q, ok := safeRatio(ew, cfg.MaxDistanceEW)
	if !ok {
		return 0
	}
	return clampF(q, 0, 1)
}

// StaticRatio follows the noise overlay at half strength.
func StaticRatio(opacity float64) float64 {
	if opacity == 1 {
		return staticCeiling
	}
	return clampF(opacity*staticCeiling, 0, staticCeiling)
}

// AmbientVolume is 2 - ratio*0.5 and deliberately exceeds the usual [0,1]
// volume range unless clamp is set.
func AmbientVolume(staticRatio float64, clamp bool) float64 {
	v := ambientBase - clampF(staticRatio, 0, staticCeiling)*0.5
	if clamp {
		return clampF(v, 0, 1)
	}
	return v
}

// BuzzRatio engages once blur passes one percent of its maximum.
func BuzzRatio(blur float64, cfg Config) (float64, bool) {
	q, ok := safeRatio(blur, cfg.MaxBlur)
	if !ok {
		return 0, false
	}
	pct := q * 100
	if !(pct > buzzThresholdPct) {
		return 0, false
	}
	return clampF(pct/100, 0, 1), true
}

// TrackMix is the requested state of one looped track.
type TrackMix struct {
	Playing bool
	Volume  float64
	Detune  float64 // cents
}

// AudioMix is what the soundscape should sound like this frame.
type AudioMix struct {
	Ambient TrackMix
	Static  TrackMix
	Buzz    TrackMix
}

// Mix derives the soundscape from effect levels.
func (lv Levels) Mix() AudioMix {
	return AudioMix{
		Ambient: TrackMix{Playing: true, Volume: lv.AmbientVolume, Detune: lv.AmbientDetune},
		Static:  TrackMix{Playing: lv.StaticRatio > 0, Volume: lv.StaticRatio},
		Buzz:    TrackMix{Playing: lv.BuzzEngaged, Volume: lv.BuzzRatio},
	}
}

func finiteNonNeg(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
