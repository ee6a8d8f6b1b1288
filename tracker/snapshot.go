package tracker

import "strconv"

// ReadyLabel is shown for a slot whose cooldown has finished.
const ReadyLabel = "R"

// TimerView is a copy of one slot's timer for rendering.
type TimerView struct {
	Ability   string     `json:"ability,omitempty"`
	State     TimerState `json:"state,omitempty"`
	Remaining int        `json:"remaining"`
	Duration  int        `json:"duration,omitempty"`
	ReadyAt   int        `json:"ready_at,omitempty"`
	Token     Token      `json:"token,omitempty"`
}

// Display renders the remaining time the way the roster table shows it.
func (v TimerView) Display() string {
	return FormatRemaining(v.State, v.Remaining)
}

// FormatRemaining renders a slot countdown as "<n>s" while running, "R" once
// ready and an empty string when the slot was never started. The zero state
// means no timer.
func FormatRemaining(state TimerState, remaining int) string {
	switch state {
	case TimerRunning:
		return strconv.Itoa(remaining) + "s"
	case TimerReady:
		return ReadyLabel
	default:
		return ""
	}
}

// SlotView is a generic slot together with its timer.
type SlotView struct {
	AbilitySlot
	Timer   TimerView `json:"timer"`
	Display string    `json:"display"`
}

// UnitView is a copy of one tracked unit.
type UnitView struct {
	Index           int         `json:"index"`
	UnitID          string      `json:"unit"`
	Name            string      `json:"name"`
	Known           bool        `json:"known"`
	Level           int         `json:"level"`
	PowerStat       int         `json:"power_stat"`
	Rank            int         `json:"rank"`
	Modifiers       ModifierSet `json:"modifiers"`
	Slot1           SlotView    `json:"slot1"`
	Slot2           SlotView    `json:"slot2"`
	Ultimate        TimerView   `json:"ultimate"`
	UltimateDisplay string      `json:"ultimate_display"`
}

// Snapshot is a deep copy of the tracker state at one game second.
type Snapshot struct {
	Elapsed int        `json:"elapsed"`
	Clock   string     `json:"clock"`
	Running bool       `json:"running"`
	Log     string     `json:"log"`
	Units   []UnitView `json:"units"`
}

func makeTimerView(t *CooldownTimer) TimerView {
	if t == nil {
		return TimerView{}
	}

	return TimerView{
		Ability:   t.Ability(),
		State:     t.State(),
		Remaining: t.Remaining(),
		Duration:  t.Duration(),
		ReadyAt:   t.ReadyAt(),
		Token:     t.Token(),
	}
}

func makeSlotView(u *TrackedUnit, k SlotKey) SlotView {
	v := SlotView{
		AbilitySlot: *u.AbilitySlot(k),
		Timer:       makeTimerView(u.Timer(k)),
	}
	v.Display = v.Timer.Display()

	return v
}

func makeUnitView(index int, u *TrackedUnit) UnitView {
	v := UnitView{
		Index:     index,
		UnitID:    u.UnitID,
		Name:      u.Name(),
		Known:     u.Known,
		Level:     u.Level,
		PowerStat: u.PowerStat,
		Rank:      UltimateRank(u.Level),
		Modifiers: u.Modifiers,
		Slot1:     makeSlotView(u, SlotOne),
		Slot2:     makeSlotView(u, SlotTwo),
		Ultimate:  makeTimerView(u.Timer(SlotUltimate)),
	}
	v.UltimateDisplay = v.Ultimate.Display()

	return v
}
