package ocean

import "github.com/rs/zerolog"

// FilterKind names one post-processing pass.
type FilterKind uint8

const (
	FilterPixelate FilterKind = iota
	FilterBarrel
	FilterBlur
	filterCount
)

func (k FilterKind) String() string {
	switch k {
	case FilterPixelate:
		return "pixelate"
	case FilterBarrel:
		return "barrel"
	case FilterBlur:
		return "blur"
	}
	return "unknown"
}

// FilterHandle identifies a live filter inside a FilterHost.
type FilterHandle int

// FilterHost is the post-processing stack. Handles are created and removed
// only on activity transitions; steady frames just update the parameter.
type FilterHost interface {
	AddFilter(kind FilterKind) FilterHandle
	UpdateFilter(h FilterHandle, amount float64)
	RemoveFilter(h FilterHandle)
}

// FilterState is the externally visible state of one filter slot.
type FilterState struct {
	Active bool
	Amount float64
}

// filterSlot is the Absent / Active(amount) machine for one effect.
type filterSlot struct {
	kind   FilterKind
	state  FilterState
	handle FilterHandle
}

func (s *filterSlot) apply(host FilterHost, active bool, amount float64, log zerolog.Logger) {
	switch {
	case active && !s.state.Active:
		s.handle = host.AddFilter(s.kind)
		host.UpdateFilter(s.handle, amount)
		s.state = FilterState{Active: true, Amount: amount}
		log.Debug().Stringer("filter", s.kind).Float64("amount", amount).Msg("filter added")
	case active:
		if amount != s.state.Amount {
			host.UpdateFilter(s.handle, amount)
			s.state.Amount = amount
		}
	case s.state.Active:
		host.RemoveFilter(s.handle)
		s.state = FilterState{}
		s.handle = 0
		log.Debug().Stringer("filter", s.kind).Msg("filter removed")
	}
}

// EffectState is the derived atmosphere for the current frame.
type EffectState struct {
	Pixelate     FilterState
	Barrel       FilterState
	Blur         FilterState
	NoiseOpacity float64
	StaticRatio  float64
	BuzzRatio    float64
}

// Effects drives the three filter machines against one host.
type Effects struct {
	host  FilterHost
	log   zerolog.Logger
	slots [filterCount]filterSlot
	last  Levels
}

// NewEffects binds the machines to host. A nil host still tracks state.
func NewEffects(host FilterHost, log zerolog.Logger) *Effects {
	if host == nil {
		host = nopFilters{}
	}
	e := &Effects{host: host, log: log}
	for k := range e.slots {
		e.slots[k].kind = FilterKind(k)
	}
	return e
}

// Apply pushes this frame's levels to the host.
func (e *Effects) Apply(lv Levels) {
	e.last = lv
	e.slots[FilterPixelate].apply(e.host, lv.PixelateActive, lv.Pixelate, e.log)
	e.slots[FilterBarrel].apply(e.host, lv.BarrelActive, lv.Barrel, e.log)
	e.slots[FilterBlur].apply(e.host, lv.BlurActive, lv.Blur, e.log)
}

// Clear removes every live handle. Safe to call repeatedly.
func (e *Effects) Clear() {
	e.last = Levels{}
	for k := range e.slots {
		e.slots[k].apply(e.host, false, 0, e.log)
	}
}

func (e *Effects) State() EffectState {
	return EffectState{
		Pixelate:     e.slots[FilterPixelate].state,
		Barrel:       e.slots[FilterBarrel].state,
		Blur:         e.slots[FilterBlur].state,
		NoiseOpacity: e.last.NoiseOpacity,
		StaticRatio:  e.last.StaticRatio,
		BuzzRatio:    e.last.BuzzRatio,
	}
}

type nopFilters struct{}

func (nopFilters) AddFilter(FilterKind) FilterHandle { return 0 }
func (nopFilters) UpdateFilter(FilterHandle, float64) {}
func (nopFilters) RemoveFilter(FilterHandle) {}
