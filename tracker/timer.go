package tracker

import "fmt"

// Token identifies one timer instance. Tokens are never reused and never
// empty.
type Token string

// TimerState is the lifecycle state of a CooldownTimer.
type TimerState int

// Timer states. Ready and Cancelled are terminal.
const (
	TimerRunning TimerState = iota + 1
	TimerReady
	TimerCancelled
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerReady:
		return "ready"
	case TimerCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("TimerState(%d)", int(s))
	}
}

// MarshalText renders the state by name.
func (s TimerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// A CooldownTimer counts down the cooldown of one slot of one unit.
type CooldownTimer struct {
	slot      SlotKey
	ability   string
	duration  int
	remaining int
	token     Token
	state     TimerState
	startedAt int
}

func newCooldownTimer(
	slot SlotKey,
	ability string,
	duration int,
	token Token,
	startedAt int,
) *CooldownTimer {
	return &CooldownTimer{
		slot:      slot,
		ability:   ability,
		duration:  duration,
		remaining: duration,
		token:     token,
		state:     TimerRunning,
		startedAt: startedAt,
	}
}

// Slot returns the slot the timer belongs to.
func (t *CooldownTimer) Slot() SlotKey { return t.slot }

// Ability returns the name of the ability that was started.
func (t *CooldownTimer) Ability() string { return t.ability }

// Duration returns the full cooldown in seconds.
func (t *CooldownTimer) Duration() int { return t.duration }

// Remaining returns the seconds left.
func (t *CooldownTimer) Remaining() int { return t.remaining }

// Token returns the identity of the timer.
func (t *CooldownTimer) Token() Token { return t.token }

// State returns the lifecycle state.
func (t *CooldownTimer) State() TimerState { return t.state }

// StartedAt returns the game time the timer was started at.
func (t *CooldownTimer) StartedAt() int { return t.startedAt }

// ReadyAt returns the game time the ability comes back.
func (t *CooldownTimer) ReadyAt() int { return t.startedAt + t.duration }

// tick counts one second down and reports whether the timer just became
// ready.
func (t *CooldownTimer) tick() bool {
	if t.state != TimerRunning {
		return false
	}

	t.remaining--
	if t.remaining > 0 {
		return false
	}

	t.remaining = 0
	t.state = TimerReady

	return true
}

// cancel reports whether a running timer was cancelled.
func (t *CooldownTimer) cancel() bool {
	if t.state != TimerRunning {
		return false
	}

	t.state = TimerCancelled

	return true
}
