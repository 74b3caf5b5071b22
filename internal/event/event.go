// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер: Dispatch вызывает подписчиков сразу,
// в порядке подписки, в том же тике симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch delivers the event to a snapshot of the current subscribers, so a
// listener may subscribe while being notified.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range slices.Clone(d.listeners[event.Type]) {
		listener.OnEvent(event)
	}
}
