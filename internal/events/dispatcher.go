// Package events fans game events out to the platform's listeners:
// audio cues, logs and the session history.
package events

import "github.com/vovakirdan/tui-whack/internal/core"

// Listener receives game events. Listeners must not feed anything back
// into the game.
type Listener interface {
	OnEvent(ev core.Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev core.Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev core.Event) {
	f(ev)
}

// Dispatcher routes events to the listeners subscribed to their kind.
// It is used from the single game loop and is not safe for concurrent use.
type Dispatcher struct {
	listeners map[core.EventKind][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[core.EventKind][]Listener),
	}
}

// Subscribe registers l for the given event kinds.
func (d *Dispatcher) Subscribe(l Listener, kinds ...core.EventKind) {
	for _, k := range kinds {
		d.listeners[k] = append(d.listeners[k], l)
	}
}

// SubscribeAll registers l for every event.
func (d *Dispatcher) SubscribeAll(l Listener) {
	d.all = append(d.all, l)
}

// Dispatch delivers ev to kind listeners first, then to catch-all listeners,
// each in subscription order.
func (d *Dispatcher) Dispatch(ev core.Event) {
	for _, l := range d.listeners[ev.Kind] {
		l.OnEvent(ev)
	}
	for _, l := range d.all {
		l.OnEvent(ev)
	}
}

// DispatchAll delivers events in order.
func (d *Dispatcher) DispatchAll(evs []core.Event) {
	for _, ev := range evs {
		d.Dispatch(ev)
	}
}
