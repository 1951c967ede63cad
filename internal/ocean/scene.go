package ocean

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

type SceneState int

const (
	SceneLoad  SceneState = iota
	SceneTitle            // water field + instructions
	ScenePlay             // sailing
)

func (s SceneState) String() string {
	switch s {
	case SceneLoad:
		return "load"
	case SceneTitle:
		return "title"
	case ScenePlay:
		return "play"
	}
	return "unknown"
}

// SceneKeys are the edge-triggered key presses for one frame.
type SceneKeys struct {
	Start   bool // SPACE
	Restart bool // R
}

// Scenes sequences Load -> Title -> Play. Key presses are applied as
// whole transitions before the frame's simulation step.
type Scenes struct {
	State SceneState
	World *World
	Title *TileField

	cfg    Config
	rolls  uint64
	events *EventBus
	log    zerolog.Logger
}

func NewScenes(world *World, events *EventBus, log zerolog.Logger) *Scenes {
	s := &Scenes{
		State:  SceneLoad,
		World:  world,
		cfg:    world.Config(),
		events: events,
		log:    log,
	}
	s.rollTitle()
	return s
}

// Update runs one frame of whichever scene is current.
func (s *Scenes) Update(keys SceneKeys, ctrl Controls, deltaMillis float64) {
	switch s.State {
	case SceneLoad:
		// Everything is generated up front, so loading ends immediately.
		s.enter(SceneTitle)

	case SceneTitle:
		switch {
		case keys.Start:
			s.World.Reset()
			s.enter(ScenePlay)
			return
		case keys.Restart:
			s.rollTitle()
			s.log.Debug().Uint64("roll", s.rolls).Msg("title restarted")
		}
		dt := deltaMillis / 1000
		s.Title.Update(mgl64.Vec2{}, dt, 0, 0)

	case ScenePlay:
		if keys.Restart {
			s.World.Reset()
			return
		}
		s.World.Step(ctrl, deltaMillis)
	}
}

func (s *Scenes) enter(next SceneState) {
	s.log.Info().Stringer("from", s.State).Stringer("to", next).Msg("scene")
	s.State = next
	s.events.Emit(Event{Type: EventSceneChanged, Scene: next})
}

func (s *Scenes) rollTitle() {
	s.rolls++
	s.Title = NewTileField(s.cfg, NewRand(s.cfg.Seed^s.rolls*0x9E3779B185EBCA87))
}
