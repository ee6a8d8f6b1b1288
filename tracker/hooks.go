package tracker

import "github.com/sarchlab/cdtrack/sim"

// Hook positions invoked by the Tracker. Timer positions carry a TimerRecord
// as the item, HookPosSlotUpgraded a SlotUpgrade, HookPosClockTick the
// elapsed seconds and HookPosRosterConfigured the []UnitConfig applied.
var (
	HookPosClockStarted     = &sim.HookPos{Name: "ClockStarted"}
	HookPosClockTick        = &sim.HookPos{Name: "ClockTick"}
	HookPosTimerStarted     = &sim.HookPos{Name: "TimerStarted"}
	HookPosTimerCancelled   = &sim.HookPos{Name: "TimerCancelled"}
	HookPosTimerReady       = &sim.HookPos{Name: "TimerReady"}
	HookPosLogCleared       = &sim.HookPos{Name: "LogCleared"}
	HookPosSlotUpgraded     = &sim.HookPos{Name: "SlotUpgraded"}
	HookPosRosterConfigured = &sim.HookPos{Name: "RosterConfigured"}
)

// TimerRecord describes a timer at the moment a hook fires.
type TimerRecord struct {
	UnitIndex int
	UnitID    string
	Slot      SlotKey
	Ability   string
	Token     Token
	State     TimerState
	Duration  int
	Remaining int
	Elapsed   int
	LogText   string
}

func makeTimerRecord(
	unitIndex int,
	u *TrackedUnit,
	t *CooldownTimer,
	elapsed int,
) TimerRecord {
	return TimerRecord{
		UnitIndex: unitIndex,
		UnitID:    u.UnitID,
		Slot:      t.Slot(),
		Ability:   t.Ability(),
		Token:     t.Token(),
		State:     t.State(),
		Duration:  t.Duration(),
		Remaining: t.Remaining(),
		Elapsed:   elapsed,
	}
}
