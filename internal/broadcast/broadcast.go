package broadcast

import (
	"encoding/json"
	"log"
	"sync"

	"tapnano/internal/events"
)

// EventMessage is one server-sent event.
type EventMessage struct {
	Event string
	Msg   string
}

// Broadcaster fans feed events out to every subscribed stream.
type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan EventMessage]bool
}

// NewBroadcaster forwards every phase change on bus to subscribers as a
// "phase" event with a JSON body.
func NewBroadcaster(bus *events.Bus) *Broadcaster {
	b := &Broadcaster{
		Clients: make(map[chan EventMessage]bool),
	}
	go func() {
		for ev := range bus.PhaseChanges {
			data, err := json.Marshal(ev)
			if err != nil {
				log.Printf("[Feed] Marshal error: %v\n", err)
				continue
			}
			b.Broadcast("phase", string(data))
		}
	}()
	return b
}

func (b *Broadcaster) Subscribe() chan EventMessage {
	ch := make(chan EventMessage, 10)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan EventMessage) {
	b.Mu.Lock()
	delete(b.Clients, ch)
	b.Mu.Unlock()
	close(ch)
}

func (b *Broadcaster) Broadcast(event string, message string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- EventMessage{Event: event, Msg: message}:
		default:
			// skip clients with full data channels
		}
	}
}
