package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"beyondthesea/internal/ocean"
)

const (
	SampleRate   = 44100
	ChannelCount = 2

	humFreq = 110.0
)

// Mixer is the three-layer soundscape. It implements ocean.Soundscape on the
// simulation side and beep.Streamer on the output side; a mutex keeps the
// two in step.
type Mixer struct {
	mu     sync.Mutex
	mix    *beep.Mixer
	layers [trackCount]*layer
	master float64
	last   ocean.AudioMix
	log    zerolog.Logger
}

// NewMixer builds the streamer graph. All tracks start paused until the
// first Apply.
func NewMixer(seed uint64, master float64, log zerolog.Logger) *Mixer {
	sr := beep.SampleRate(SampleRate)
	m := &Mixer{
		mix:    &beep.Mixer{},
		master: master,
		log:    log,
	}
	m.layers[TrackAmbient] = newLayer(newSurf(sr, seed))
	m.layers[TrackStatic] = newLayer(newCrackle(seed ^ 0x5747))
	m.layers[TrackBuzz] = newLayer(newHum(sr, humFreq))
	for _, l := range m.layers {
		m.mix.Add(l.ctrl)
	}
	return m
}

// Apply retargets every layer to this frame's mix.
func (m *Mixer) Apply(mix ocean.AudioMix) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(mix)
}

func (m *Mixer) apply(mix ocean.AudioMix) {
	m.last = mix
	for t, tm := range [trackCount]ocean.TrackMix{
		TrackAmbient: mix.Ambient,
		TrackStatic:  mix.Static,
		TrackBuzz:    mix.Buzz,
	} {
		l := m.layers[t]
		was := l.state.Playing
		l.apply(tm, m.master)
		if was != tm.Playing {
			m.log.Debug().Stringer("track", Track(t)).Bool("playing", tm.Playing).Msg("track toggled")
		}
	}
}

// Stop pauses every layer. Apply resumes them.
func (m *Mixer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = ocean.AudioMix{}
	for _, l := range m.layers {
		l.ctrl.Paused = true
		l.state.Playing = false
	}
}

// SetMaster changes the master gain and re-applies the last mix at it.
func (m *Mixer) SetMaster(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.master = v
	m.apply(m.last)
}

func (m *Mixer) State(t Track) TrackState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t < 0 || t >= trackCount {
		return TrackState{}
	}
	return m.layers[t].state
}

func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mix.Stream(samples)
}

func (m *Mixer) Err() error { return nil }
