package event

import (
	"sync"

	"github.com/lixenwraith/lane-jumper/parameter"
)

// EventQueue is a FIFO of game events
// Push may be called from any goroutine, Consume from the single dispatching loop
// Events are never dropped
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, parameter.EventQueueSize)
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
