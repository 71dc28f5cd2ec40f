// Package page models the document-level event surface a view can attach
// listeners to. Hosts (the terminal renderer, tests) own a Target and
// dispatch events into it.
package page

// EventType names a document event.
type EventType string

const (
	EventScroll       EventType = "scroll"
	EventTouchStart   EventType = "touchstart"
	EventTouchMove    EventType = "touchmove"
	EventGestureStart EventType = "gesturestart"
	EventResize       EventType = "resize"
)

// Event is a single dispatched event. Touches is the number of active touch
// points for touch events.
type Event struct {
	Type    EventType
	Touches int

	defaultPrevented bool
}

// PreventDefault asks the host to skip the event's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener handles an event.
type Listener func(*Event)

// EventSource is anything listeners can be attached to.
type EventSource interface {
	// AddEventListener registers l and returns a func that removes it.
	// Calling the returned func more than once is a no-op.
	AddEventListener(typ EventType, l Listener) (remove func())
}

type registration struct {
	id int
	l  Listener
}

// Target is an EventSource that dispatches synchronously, in registration
// order. The zero value is ready to use.
type Target struct {
	nextID    int
	listeners map[EventType][]registration
}

func (t *Target) AddEventListener(typ EventType, l Listener) func() {
	if t.listeners == nil {
		t.listeners = make(map[EventType][]registration)
	}
	t.nextID++
	id := t.nextID
	t.listeners[typ] = append(t.listeners[typ], registration{id: id, l: l})

	return func() {
		regs := t.listeners[typ]
		for i, r := range regs {
			if r.id == id {
				t.listeners[typ] = append(regs[:i:i], regs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers e to the listeners registered when dispatch starts and
// reports whether the default action should proceed.
func (t *Target) Dispatch(e *Event) bool {
	regs := append([]registration(nil), t.listeners[e.Type]...)
	for _, r := range regs {
		r.l(e)
	}
	return !e.defaultPrevented
}

// ListenerCount returns the number of listeners for typ.
func (t *Target) ListenerCount(typ EventType) int {
	return len(t.listeners[typ])
}
