package ocean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_FanOut(t *testing.T) {
	bus := NewEventBus()
	var a, b int
	bus.Subscribe(EventReset, func(Event) { a++ })
	bus.Subscribe(EventReset, func(Event) { b++ })
	bus.Subscribe(EventBearingChanged, func(Event) { t.Fatal("wrong type delivered") })

	bus.Emit(Event{Type: EventReset})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestEventBus_NilIsSafe(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() { bus.Emit(Event{Type: EventReset}) })
}
