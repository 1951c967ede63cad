package ocean

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Soundscape receives the derived audio mix once per frame.
type Soundscape interface {
	Apply(mix AudioMix)
}

// Options wires a World to its collaborators. Every field is optional.
type Options struct {
	Filters FilterHost
	Sound   Soundscape
	Events  *EventBus
	Log     zerolog.Logger
}

// World owns all per-session state and advances it once per frame. It is
// not safe for concurrent use; the main loop owns it.
type World struct {
	cfg Config
	log zerolog.Logger

	Vessel  *Vessel
	Ledger  TravelLedger
	Tiles   *TileField
	Noise   *NoiseGrid
	Camera  Camera
	Compass Cardinal

	effects *Effects
	sound   Soundscape
	events  *EventBus

	levels  Levels
	bearing Bearing
	elapsed float64
}

// Snapshot is a comparable copy of everything Reset restores.
type Snapshot struct {
	Position        mgl64.Vec2
	Velocity        mgl64.Vec2
	Acceleration    mgl64.Vec2
	Heading         float64
	AngularVelocity float64
	Ledger          TravelLedger
	Effects         EffectState
	Compass         Cardinal
	Camera          Camera
	Tiles           []mgl64.Vec2
}

func NewWorld(cfg Config, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world config: %w", err)
	}
	w := &World{
		cfg:    cfg,
		log:    opts.Log,
		Vessel: NewVessel(cfg),
		Tiles:  NewTileField(cfg, NewRand(cfg.Seed^0x7115)),
		sound:  opts.Sound,
		events: opts.Events,
	}
	if w.sound == nil {
		w.sound = nopSound{}
	}
	w.effects = NewEffects(opts.Filters, w.log)
	w.Reset()
	return w, nil
}

func (w *World) Config() Config { return w.cfg }

// Levels is the most recent effect derivation.
func (w *World) Levels() Levels { return w.levels }

func (w *World) Effects() EffectState { return w.effects.State() }

// Elapsed is the simulated time since the last reset, in seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// Step advances one frame. deltaMillis is the frame time as reported by
// the driver; negative or non-finite values are treated as zero.
func (w *World) Step(ctrl Controls, deltaMillis float64) {
	dt := deltaMillis / 1000
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	w.elapsed += dt

	sx, sy := w.Camera.Scroll()

	w.Vessel.Steer(ctrl)
	w.Vessel.Integrate(dt)
	w.Vessel.WrapToView(sx, sy, w.cfg.ViewportWidth, w.cfg.ViewportHeight)

	// Tiles recycle against the scroll the frame is drawn with.
	w.Camera.Follow(w.Vessel.Position)
	nx, ny := w.Camera.Scroll()
	w.Tiles.Update(w.Vessel.Velocity, dt, nx, ny)
	w.Ledger.Integrate(w.Vessel.Velocity, dt)

	w.levels = Modulate(w.Ledger, w.cfg)
	w.effects.Apply(w.levels)
	w.sound.Apply(w.levels.Mix())

	w.Compass = CompassFor(w.Vessel.Heading)
	w.trackBearing()

	w.Noise.Update(nx, ny, w.levels.NoiseOpacity)
}

// Reset restores the session to its starting state. Calling it twice is
// the same as calling it once.
func (w *World) Reset() {
	w.Vessel.Reset()
	w.Ledger.Reset()
	w.Tiles.Reset()
	w.Camera = NewCamera(w.cfg)
	w.Noise = NewNoiseGrid(w.cfg, NewRand(w.cfg.Seed^0x5747))
	w.effects.Clear()
	w.levels = Modulate(w.Ledger, w.cfg)
	w.effects.Apply(w.levels)
	w.sound.Apply(w.levels.Mix())
	w.Compass = CompassFor(w.Vessel.Heading)
	w.bearing = 0
	w.elapsed = 0

	w.log.Debug().Msg("world reset")
	w.events.Emit(Event{Type: EventReset})
}

func (w *World) Snapshot() Snapshot {
	tiles := make([]mgl64.Vec2, len(w.Tiles.Tiles))
	for i := range w.Tiles.Tiles {
		tiles[i] = w.Tiles.Tiles[i].Pos
	}
	return Snapshot{
		Position:        w.Vessel.Position,
		Velocity:        w.Vessel.Velocity,
		Acceleration:    w.Vessel.Acceleration,
		Heading:         w.Vessel.Heading,
		AngularVelocity: w.Vessel.AngularVelocity,
		Ledger:          w.Ledger,
		Effects:         w.effects.State(),
		Compass:         w.Compass,
		Camera:          w.Camera,
		Tiles:           tiles,
	}
}

func (w *World) trackBearing() {
	b := BearingOf(w.Vessel.Velocity)
	if b == w.bearing {
		return
	}
	w.bearing = b
	w.log.Debug().Stringer("bearing", b).Msg("moving")
	w.events.Emit(Event{Type: EventBearingChanged, Bearing: b})
}

type nopSound struct{}

func (nopSound) Apply(AudioMix) {}
