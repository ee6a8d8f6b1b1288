// Package tracing observes a Tracker through its hooks and forwards timer
// events to tracers.
package tracing

import "github.com/sarchlab/cdtrack/tracker"

// A Tracer collects timer events.
type Tracer interface {
	TimerStarted(rec tracker.TimerRecord)
	TimerCancelled(rec tracker.TimerRecord)
	TimerReady(rec tracker.TimerRecord)
	LogCleared(rec tracker.TimerRecord)
	SlotUpgraded(up tracker.SlotUpgrade)
}
