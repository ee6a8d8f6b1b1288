package sim

// VTimeInSec counts whole seconds of engine time since the engine started.
type VTimeInSec uint64

// A Handler consumes the events scheduled for it. An event only ever mutates
// the handler it was scheduled for.
type Handler interface {
	Handle(e Event) error
}

// An Event is a piece of work due on a Handler at a given second.
type Event interface {
	Time() VTimeInSec
	Handler() Handler

	// Secondary events run after every primary event of the same second.
	IsSecondary() bool
}

// EventBase carries the fields shared by concrete events. Events built on it
// are primary.
type EventBase struct {
	ID      string
	time    VTimeInSec
	handler Handler
}

// Time is the second the event is due.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler is the handler the event is due on.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary is always false for an EventBase.
func (e EventBase) IsSecondary() bool {
	return false
}
