package tracing

import (
	"sync"

	"github.com/sarchlab/cdtrack/datarecording"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
	"github.com/tebeka/atexit"
)

// Table names written by the DBTracer.
const (
	TimerEventTable  = "timer_events"
	SlotUpgradeTable = "slot_upgrades"
)

// Event kinds stored in the timer event table.
const (
	EventStarted   = "started"
	EventCancelled = "cancelled"
	EventReady     = "ready"
	EventCleared   = "log_cleared"
)

// TimerEventEntry is one row of the timer event table.
type TimerEventEntry struct {
	EngineTime int64
	Elapsed    int
	Event      string
	UnitIndex  int
	Unit       string
	Slot       string
	Ability    string
	Token      string
	Duration   int
	Remaining  int
	LogText    string
}

// SlotUpgradeEntry is one row of the slot upgrade table.
type SlotUpgradeEntry struct {
	EngineTime int64
	Elapsed    int
	UnitIndex  int
	Unit       string
	Slot       string
	From       string
	To         string
}

// DBTracer stores timer events in a DataRecorder.
type DBTracer struct {
	mu         sync.Mutex
	timeTeller sim.TimeTeller
	backend    datarecording.DataRecorder
	terminated bool
}

// NewDBTracer creates the tables and returns a tracer writing into them. The
// recorder is flushed at exit.
func NewDBTracer(
	timeTeller sim.TimeTeller,
	dataRecorder datarecording.DataRecorder,
) *DBTracer {
	dataRecorder.CreateTable(TimerEventTable, TimerEventEntry{})
	dataRecorder.CreateTable(SlotUpgradeTable, SlotUpgradeEntry{})

	t := &DBTracer{
		timeTeller: timeTeller,
		backend:    dataRecorder,
	}

	atexit.Register(func() {
		t.Terminate()
	})

	return t
}

// TimerStarted records a started timer.
func (t *DBTracer) TimerStarted(rec tracker.TimerRecord) {
	t.insertTimerEvent(EventStarted, rec)
}

// TimerCancelled records a superseded or torn down timer.
func (t *DBTracer) TimerCancelled(rec tracker.TimerRecord) {
	t.insertTimerEvent(EventCancelled, rec)
}

// TimerReady records a timer that counted down to 0.
func (t *DBTracer) TimerReady(rec tracker.TimerRecord) {
	t.insertTimerEvent(EventReady, rec)
}

// LogCleared records that a timer cleared the status log.
func (t *DBTracer) LogCleared(rec tracker.TimerRecord) {
	t.insertTimerEvent(EventCleared, rec)
}

// SlotUpgraded records a slot renamed by the upgrade rule.
func (t *DBTracer) SlotUpgraded(up tracker.SlotUpgrade) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	t.backend.InsertData(SlotUpgradeTable, SlotUpgradeEntry{
		EngineTime: int64(t.timeTeller.CurrentTime()),
		Elapsed:    up.Elapsed,
		UnitIndex:  up.UnitIndex,
		Unit:       up.UnitID,
		Slot:       up.Slot.String(),
		From:       up.From,
		To:         up.To,
	})
}

func (t *DBTracer) insertTimerEvent(event string, rec tracker.TimerRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	t.backend.InsertData(TimerEventTable, TimerEventEntry{
		EngineTime: int64(t.timeTeller.CurrentTime()),
		Elapsed:    rec.Elapsed,
		Event:      event,
		UnitIndex:  rec.UnitIndex,
		Unit:       rec.UnitID,
		Slot:       rec.Slot.String(),
		Ability:    rec.Ability,
		Token:      string(rec.Token),
		Duration:   rec.Duration,
		Remaining:  rec.Remaining,
		LogText:    rec.LogText,
	})
}

// Terminate flushes the recorder and stops recording.
func (t *DBTracer) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	t.terminated = true
	t.backend.Flush()
}
