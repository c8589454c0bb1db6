package game

import "github.com/google/uuid"

type EventType int

const (
	EventObstacleSpawned EventType = iota
	EventObstaclePassed
	EventGameOver
	EventWon
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventObstacleSpawned:
		return "obstacle_spawned"
	case EventObstaclePassed:
		return "obstacle_passed"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

type Event struct {
	Type  EventType
	Round uuid.UUID
	Tick  uint64
	X, Y  float64 // balloon position at emission
	Data  int     // obstacles passed so far
}

type EventHandler func(Event)

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
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
