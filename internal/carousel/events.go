package carousel

// Event names a lifecycle moment hosts can subscribe to.
type Event int

const (
	EventInit Event = iota
	EventLoad
	EventResize
	EventBeforeMove
	EventAfterMove
)

var eventNames = map[Event]string{
	EventInit:       "init",
	EventLoad:       "load",
	EventResize:     "resize",
	EventBeforeMove: "beforemove",
	EventAfterMove:  "aftermove",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEvent looks up an event by its name.
func ParseEvent(name string) (Event, bool) {
	for ev, n := range eventNames {
		if n == name {
			return ev, true
		}
	}
	return 0, false
}

// Payload is the data passed to event handlers. Which fields are set depends
// on the event:
//
//   - load: Items, Size
//   - resize: Width, Height
//   - beforemove: Index, Direction, Item
//   - aftermove: NewPane, Index, Direction, Item
type Payload[T any] struct {
	Event     Event
	Index     int
	Direction Direction
	Item      T
	NewPane   Pane
	Items     []T
	Size      int
	Width     int
	Height    int
}

// Handler receives event payloads.
type Handler[P any] func(P)

// Subscription identifies a registered handler for Off.
type Subscription uint64

type subscriber[P any] struct {
	id Subscription
	fn Handler[P]
}

// Emitter is a per-instance registry of typed event handlers. It is not safe
// for concurrent use; it runs on the carousel's loop.
type Emitter[P any] struct {
	next     Subscription
	handlers map[Event][]subscriber[P]
}

// On registers fn for ev and returns a token for Off.
func (e *Emitter[P]) On(ev Event, fn Handler[P]) Subscription {
	if fn == nil {
		return 0
	}
	if e.handlers == nil {
		e.handlers = make(map[Event][]subscriber[P])
	}
	e.next++
	e.handlers[ev] = append(e.handlers[ev], subscriber[P]{id: e.next, fn: fn})
	return e.next
}

// Off removes the handler registered under sub. It reports whether one was found.
func (e *Emitter[P]) Off(ev Event, sub Subscription) bool {
	list := e.handlers[ev]
	for i, s := range list {
		if s.id != sub {
			continue
		}
		out := make([]subscriber[P], 0, len(list)-1)
		out = append(out, list[:i]...)
		out = append(out, list[i+1:]...)
		e.handlers[ev] = out
		return true
	}
	return false
}

// Trigger calls every handler registered for ev, in registration order.
// Handlers added or removed during dispatch take effect on the next Trigger.
func (e *Emitter[P]) Trigger(ev Event, payload P) {
	for _, s := range e.handlers[ev] {
		s.fn(payload)
	}
}

// Count returns the number of handlers registered for ev.
func (e *Emitter[P]) Count(ev Event) int {
	return len(e.handlers[ev])
}
