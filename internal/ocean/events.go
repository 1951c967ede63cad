package ocean

type EventType int

const (
	EventBearingChanged EventType = iota
	EventReset
	EventSceneChanged
)

type Event struct {
	Type    EventType
	Bearing Bearing
	Scene   SceneState
}

type EventHandler func(Event)

// EventBus is a synchronous fan-out; handlers run on the emitting frame.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
