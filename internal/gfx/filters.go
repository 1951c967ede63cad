package gfx

import "beyondthesea/internal/ocean"

// Pass is one post-processing step in draw order.
type Pass struct {
	Handle ocean.FilterHandle
	Kind   ocean.FilterKind
	Amount float64
}

// FilterStack is the bookkeeping half of the post-processing chain. It
// implements ocean.FilterHost; passes run in the order they were added.
// Handle zero is never issued.
type FilterStack struct {
	next   ocean.FilterHandle
	passes []Pass
}

func (s *FilterStack) AddFilter(kind ocean.FilterKind) ocean.FilterHandle {
	s.next++
	s.passes = append(s.passes, Pass{Handle: s.next, Kind: kind})
	return s.next
}

// UpdateFilter sets the amount of a live pass. Unknown handles are ignored.
func (s *FilterStack) UpdateFilter(h ocean.FilterHandle, amount float64) {
	if i := s.index(h); i >= 0 {
		s.passes[i].Amount = amount
	}
}

// RemoveFilter drops a live pass. Unknown handles are ignored.
func (s *FilterStack) RemoveFilter(h ocean.FilterHandle) {
	if i := s.index(h); i >= 0 {
		s.passes = append(s.passes[:i], s.passes[i+1:]...)
	}
}

// Passes returns the live passes in draw order. The slice is only valid
// until the next mutation.
func (s *FilterStack) Passes() []Pass { return s.passes }

func (s *FilterStack) Len() int { return len(s.passes) }

func (s *FilterStack) index(h ocean.FilterHandle) int {
	for i := range s.passes {
		if s.passes[i].Handle == h {
			return i
		}
	}
	return -1
}
