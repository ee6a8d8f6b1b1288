package sim

import (
	"sync"
)

// TickEvent asks a component to advance its state by one simulated second.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a TickEvent for the handler at the given time.
func MakeTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := TickEvent{}
	evt.ID = GetIDGenerator().Generate()
	evt.handler = handler
	evt.time = time

	return evt
}

// A Ticker updates its state once per tick. Tick reports whether the Ticker
// wants to be ticked again.
type Ticker interface {
	Tick() bool
}

// TickScheduler schedules at most one pending tick for a handler.
type TickScheduler struct {
	Engine Engine

	lock    sync.Mutex
	handler Handler
	pending bool
	next    VTimeInSec
}

// NewTickScheduler creates a scheduler that delivers ticks to the handler.
func NewTickScheduler(handler Handler, engine Engine) *TickScheduler {
	return &TickScheduler{
		Engine:  engine,
		handler: handler,
	}
}

// TickNow schedules a tick at the current time.
func (s *TickScheduler) TickNow() {
	s.scheduleAt(s.CurrentTime())
}

// TickLater schedules a tick one second from now.
func (s *TickScheduler) TickLater() {
	s.scheduleAt(s.CurrentTime() + 1)
}

// scheduleAt is a no-op if a tick at or after time is already pending.
func (s *TickScheduler) scheduleAt(time VTimeInSec) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.pending && s.next >= time {
		return
	}

	s.pending = true
	s.next = time

	s.Engine.Schedule(MakeTickEvent(s.handler, time))
}

// CurrentTime returns the time of the engine the ticks are scheduled on.
func (s *TickScheduler) CurrentTime() VTimeInSec {
	return s.Engine.CurrentTime()
}

// TickingComponent is a named, hookable component driven by a Ticker. It
// keeps ticking every second for as long as the Ticker reports progress.
type TickingComponent struct {
	*ComponentBase
	*TickScheduler

	ticker Ticker
}

// NewTickingComponent creates a component that ticks the ticker on the
// engine.
func NewTickingComponent(
	name string,
	engine Engine,
	ticker Ticker,
) *TickingComponent {
	tc := &TickingComponent{
		ComponentBase: &ComponentBase{name: name},
		ticker:        ticker,
	}
	tc.TickScheduler = NewTickScheduler(tc, engine)

	return tc
}

// Handle runs one tick and schedules the next one if the ticker asks for it.
func (c *TickingComponent) Handle(_ Event) error {
	if c.ticker.Tick() {
		c.TickLater()
	}

	return nil
}
