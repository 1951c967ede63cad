package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"beyondthesea/internal/ocean"
)

// resampleQuality trades CPU for aliasing when detuning.
const resampleQuality = 3

// Track identifies one looped layer of the soundscape.
type Track int

const (
	TrackAmbient Track = iota
	TrackStatic
	TrackBuzz
	trackCount
)

func (t Track) String() string {
	switch t {
	case TrackAmbient:
		return "ambient"
	case TrackStatic:
		return "static"
	case TrackBuzz:
		return "buzz"
	}
	return "unknown"
}

// TrackState is what a track is currently doing, as seen by tests and logs.
type TrackState struct {
	Playing bool
	Gain    float64
	Ratio   float64 // playback speed; 1 is untouched
}

// layer is source -> resampler (detune) -> volume -> ctrl (pause).
type layer struct {
	pitch *beep.Resampler
	vol   *effects.Volume
	ctrl  *beep.Ctrl
	state TrackState
}

func newLayer(src beep.Streamer) *layer {
	pitch := beep.ResampleRatio(resampleQuality, 1, src)
	vol := &effects.Volume{Streamer: pitch, Base: 2, Silent: true}
	return &layer{
		pitch: pitch,
		vol:   vol,
		ctrl:  &beep.Ctrl{Streamer: vol, Paused: true},
		state: TrackState{Ratio: 1},
	}
}

func (l *layer) apply(m ocean.TrackMix, master float64) {
	gain := m.Volume * master
	if math.IsNaN(gain) || gain < 0 {
		gain = 0
	}
	setGain(l.vol, gain)

	ratio := centsToRatio(m.Detune)
	if ratio != l.state.Ratio {
		l.pitch.SetRatio(ratio)
	}

	l.ctrl.Paused = !m.Playing
	l.state = TrackState{Playing: m.Playing, Gain: gain, Ratio: ratio}
}

// setGain maps a linear gain onto effects.Volume's log2 scale. Gains above
// one are allowed and boost the signal.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// centsToRatio converts a detune in cents to a playback speed ratio.
func centsToRatio(cents float64) float64 {
	if math.IsNaN(cents) || math.IsInf(cents, 0) {
		return 1
	}
	return math.Pow(2, cents/1200)
}
