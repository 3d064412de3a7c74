package events

type PhaseChangeEvent struct {
	Room  string `json:"room"`
	Phase string `json:"phase"`
	Score int    `json:"score"`
}

type Bus struct {
	PhaseChanges chan PhaseChangeEvent
}

func NewBus() *Bus {
	return &Bus{
		PhaseChanges: make(chan PhaseChangeEvent, 64),
	}
}

// Publish queues ev without blocking. It reports false when the bus is full
// and the event was dropped.
func (b *Bus) Publish(ev PhaseChangeEvent) bool {
	select {
	case b.PhaseChanges <- ev:
		return true
	default:
		return false
	}
}
