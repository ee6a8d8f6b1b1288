package sim

import (
	"log"
	"reflect"
)

// EventLogger is an engine hook that writes one line per event, just before
// the event is handled, as "<second>, <event type> -> <handler name>".
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger creates an EventLogger that writes to logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Func implements Hook.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	line := reflect.TypeOf(evt).String()
	if named, ok := evt.Handler().(Named); ok {
		line += " -> " + named.Name()
	}

	h.logger.Printf("%d, %s", evt.Time(), line)
}
