// Package tracker implements the cooldown timer engine: a game clock, a
// roster of tracked units with per-slot cooldown timers, the shared status
// log and the time-based ability upgrade.
package tracker

import (
	"fmt"
	"sync"

	"github.com/sarchlab/cdtrack/catalog"
	"github.com/sarchlab/cdtrack/sim"
)

// A Tracker owns the clock, the roster and the status log of one session.
//
// The Tracker ticks on the engine once per game second after StartClock.
// Commands may arrive from any goroutine; they are serialized with the ticks.
// Hooks run while the Tracker is locked and must not call back into it.
type Tracker struct {
	*sim.TickingComponent

	mu sync.Mutex

	catalog   catalog.Catalog
	ids       sim.IDGenerator
	defaults  UnitConfig
	clock     GameClock
	statusLog *StatusLog
	upgrades  UpgradeScheduler
	roster    []UnitConfig
	units     []*TrackedUnit
}

// Tick advances the game clock by one second. It evaluates the upgrade rule
// and then counts every running timer down.
func (t *Tracker) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.clock.Tick() {
		return false
	}

	elapsed := t.clock.Elapsed()
	t.invoke(HookPosClockTick, elapsed)

	for _, up := range t.upgrades.Evaluate(elapsed, t.units) {
		t.invoke(HookPosSlotUpgraded, up)
	}

	for i, u := range t.units {
		for _, k := range slotOrder {
			timer, ok := u.Timers[k]
			if !ok || !timer.tick() {
				continue
			}

			t.timerReady(i, u, timer)
		}
	}

	return true
}

func (t *Tracker) timerReady(index int, u *TrackedUnit, timer *CooldownTimer) {
	rec := makeTimerRecord(index, u, timer, t.clock.Elapsed())

	if t.statusLog.ClearIfOwned(timer.Token()) {
		t.invoke(HookPosLogCleared, rec)
	}

	rec.LogText = t.statusLog.Text()
	t.invoke(HookPosTimerReady, rec)
}

// StartClock starts the game clock. Starting a running clock does nothing.
func (t *Tracker) StartClock() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.clock.Start() {
		return
	}

	t.invoke(HookPosClockStarted, t.clock.Elapsed())
	t.TickLater()
}

// ConfigureRoster replaces the whole roster. Every running timer of the old
// roster is cancelled. Unset fields take the tracker defaults. Nothing
// changes if any entry is invalid.
func (t *Tracker) ConfigureRoster(units []UnitConfig) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	roster := make([]UnitConfig, len(units))
	for i, u := range units {
		cfg := u.withDefaults(t.defaults)
		if err := cfg.validate(); err != nil {
			return fmt.Errorf("unit %d: %w", i, err)
		}

		roster[i] = cfg
	}

	t.rebuild(roster)

	return nil
}

// Roster returns the configuration the current roster was built from.
func (t *Tracker) Roster() []UnitConfig {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]UnitConfig(nil), t.roster...)
}

func (t *Tracker) rebuild(roster []UnitConfig) {
	elapsed := t.clock.Elapsed()
	for i, u := range t.units {
		for _, timer := range u.cancelAll() {
			t.invoke(HookPosTimerCancelled,
				makeTimerRecord(i, u, timer, elapsed))
		}
	}

	t.roster = roster
	t.units = make([]*TrackedUnit, len(roster))
	for i, cfg := range roster {
		t.units[i] = newTrackedUnit(cfg, t.catalog)
	}

	t.invoke(HookPosRosterConfigured, append([]UnitConfig(nil), roster...))
}

// Reset stops the clock at 0, empties the status log and rebuilds the roster
// from its current configuration.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clock.Reset()
	t.statusLog.Reset()
	t.rebuild(t.roster)
}

// StartSlotTimer starts the cooldown of a generic slot for the named
// ability, replacing any timer in that slot.
func (t *Tracker) StartSlotTimer(
	unit int,
	slot SlotKey,
	ability string,
) (Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.startSlotTimer(unit, slot, func(*TrackedUnit) string {
		return ability
	})
}

// StartSlot starts the cooldown of the ability currently in a generic slot.
// After the upgrade this is the upgraded ability.
func (t *Tracker) StartSlot(unit int, slot SlotKey) (Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.startSlotTimer(unit, slot, func(u *TrackedUnit) string {
		return u.AbilitySlot(slot).Ability
	})
}

func (t *Tracker) startSlotTimer(
	unit int,
	slot SlotKey,
	ability func(u *TrackedUnit) string,
) (Token, error) {
	u, err := t.unit(unit)
	if err != nil {
		return "", err
	}

	if slot != SlotOne && slot != SlotTwo {
		return "", fmt.Errorf("%w: %s", ErrInvalidSlot, slot)
	}

	name := ability(u)
	d := SlotDuration(t.catalog, name, u.Level, u.Modifiers)

	return t.startTimer(unit, u, slot, name, d), nil
}

// StartUltimateTimer starts the ultimate cooldown of a unit, replacing any
// timer in that slot.
func (t *Tracker) StartUltimateTimer(unit int) (Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, err := t.unit(unit)
	if err != nil {
		return "", err
	}

	d, _ := UltimateDuration(t.catalog, u.UnitID, u.Level, u.PowerStat)

	return t.startTimer(unit, u, SlotUltimate, UltimateLabel, d), nil
}

func (t *Tracker) startTimer(
	index int,
	u *TrackedUnit,
	slot SlotKey,
	ability string,
	duration int,
) Token {
	elapsed := t.clock.Elapsed()

	if prior, ok := u.Timers[slot]; ok {
		delete(u.Timers, slot)

		if prior.cancel() {
			t.invoke(HookPosTimerCancelled,
				makeTimerRecord(index, u, prior, elapsed))
		}
	}

	token := Token(t.ids.Generate())
	timer := newCooldownTimer(slot, ability, duration, token, elapsed)
	u.Timers[slot] = timer

	text := fmt.Sprintf("%s %s – %s",
		u.Name(), ability, FormatClock(timer.ReadyAt()))
	t.statusLog.Set(text, token)

	rec := makeTimerRecord(index, u, timer, elapsed)
	rec.LogText = text
	t.invoke(HookPosTimerStarted, rec)

	return token
}

// SetModifier turns one cooldown modifier of a unit on or off. Running timers
// keep their remaining time.
func (t *Tracker) SetModifier(
	unit int,
	src ModifierSource,
	enabled bool,
) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, err := t.unit(unit)
	if err != nil {
		return err
	}

	return u.Modifiers.Set(src, enabled)
}

// SetLevel changes the level of a unit. Running timers keep their remaining
// time.
func (t *Tracker) SetLevel(unit int, level int) error {
	if err := ValidateLevel(level); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	u, err := t.unit(unit)
	if err != nil {
		return err
	}

	u.Level = level
	t.roster[unit].Level = Level(level)

	return nil
}

// SetPowerStat changes the power stat of a unit. Running timers keep their
// remaining time.
func (t *Tracker) SetPowerStat(unit int, value int) error {
	if err := ValidatePowerStat(value); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	u, err := t.unit(unit)
	if err != nil {
		return err
	}

	u.PowerStat = value
	t.roster[unit].PowerStat = value

	return nil
}

// SetPowerStatText sets the power stat from operator text. Text that is not
// a number sets 0.
func (t *Tracker) SetPowerStatText(unit int, text string) error {
	v, err := ParsePowerStat(text)
	if err != nil {
		return err
	}

	return t.SetPowerStat(unit, v)
}

// Elapsed returns the game time in seconds.
func (t *Tracker) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.clock.Elapsed()
}

// ClockRunning tells if the game clock has been started.
func (t *Tracker) ClockRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.clock.Running()
}

// LogText returns the status log, empty when nothing is announced.
func (t *Tracker) LogText() string {
	return t.statusLog.Text()
}

// StatusLog returns the shared status log.
func (t *Tracker) StatusLog() *StatusLog {
	return t.statusLog
}

// NumUnits returns the size of the roster.
func (t *Tracker) NumUnits() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.units)
}

// Remaining returns the seconds left on a slot and the timer state. The state
// is 0 if the slot was never started.
func (t *Tracker) Remaining(unit int, slot SlotKey) (int, TimerState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, err := t.unit(unit)
	if err != nil {
		return 0, 0, err
	}

	timer := u.Timer(slot)
	if timer == nil {
		return 0, 0, nil
	}

	return timer.Remaining(), timer.State(), nil
}

// Unit returns a copy of one roster entry.
func (t *Tracker) Unit(unit int) (UnitView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, err := t.unit(unit)
	if err != nil {
		return UnitView{}, err
	}

	return makeUnitView(unit, u), nil
}

// Snapshot copies the whole tracker state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		Elapsed: t.clock.Elapsed(),
		Clock:   FormatClock(t.clock.Elapsed()),
		Running: t.clock.Running(),
		Log:     t.statusLog.Text(),
		Units:   make([]UnitView, len(t.units)),
	}

	for i, u := range t.units {
		s.Units[i] = makeUnitView(i, u)
	}

	return s
}

func (t *Tracker) unit(index int) (*TrackedUnit, error) {
	if index < 0 || index >= len(t.units) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnitRef, index)
	}

	return t.units[index], nil
}

func (t *Tracker) invoke(pos *sim.HookPos, item interface{}) {
	if t.NumHooks() == 0 {
		return
	}

	t.InvokeHook(sim.HookCtx{
		Domain: t,
		Pos:    pos,
		Item:   item,
	})
}
