package tracing

import (
	"log"

	"github.com/sarchlab/cdtrack/tracker"
)

// LogTracer prints timer events to a logger.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer creates a LogTracer printing to the logger.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// TimerStarted prints the announcement of a started timer.
func (t *LogTracer) TimerStarted(rec tracker.TimerRecord) {
	t.logger.Printf("[%s] start %s %s %s %ds, %s",
		tracker.FormatClock(rec.Elapsed), rec.UnitID, rec.Slot, rec.Ability,
		rec.Duration, rec.LogText)
}

// TimerCancelled prints a cancelled timer.
func (t *LogTracer) TimerCancelled(rec tracker.TimerRecord) {
	t.logger.Printf("[%s] cancel %s %s %s with %ds left",
		tracker.FormatClock(rec.Elapsed), rec.UnitID, rec.Slot, rec.Ability,
		rec.Remaining)
}

// TimerReady prints a finished timer.
func (t *LogTracer) TimerReady(rec tracker.TimerRecord) {
	t.logger.Printf("[%s] ready %s %s %s",
		tracker.FormatClock(rec.Elapsed), rec.UnitID, rec.Slot, rec.Ability)
}

// LogCleared prints that the status log was emptied.
func (t *LogTracer) LogCleared(rec tracker.TimerRecord) {
	t.logger.Printf("[%s] log cleared by %s %s",
		tracker.FormatClock(rec.Elapsed), rec.UnitID, rec.Slot)
}

// SlotUpgraded prints a renamed slot.
func (t *LogTracer) SlotUpgraded(up tracker.SlotUpgrade) {
	t.logger.Printf("[%s] upgrade %s %s %s -> %s",
		tracker.FormatClock(up.Elapsed), up.UnitID, up.Slot, up.From, up.To)
}
