package tracker

import (
	"fmt"

	"github.com/sarchlab/cdtrack/catalog"
)

// UnitConfig describes one roster entry as supplied by the operator. Empty
// names and a nil Level are filled from the tracker defaults. A Level that is
// set is validated as given.
type UnitConfig struct {
	UnitID    string `json:"unit" yaml:"unit"`
	Slot1     string `json:"slot1" yaml:"slot1"`
	Slot2     string `json:"slot2" yaml:"slot2"`
	Level     *int   `json:"level,omitempty" yaml:"level,omitempty"`
	PowerStat int    `json:"power_stat" yaml:"powerStat"`
}

// Level returns a pointer to level, for filling UnitConfig.Level.
func Level(level int) *int {
	return &level
}

func (c UnitConfig) level() int {
	if c.Level == nil {
		return 0
	}

	return *c.Level
}

func (c UnitConfig) withDefaults(d UnitConfig) UnitConfig {
	if c.UnitID == "" {
		c.UnitID = d.UnitID
	}

	if c.Slot1 == "" {
		c.Slot1 = d.Slot1
	}

	if c.Slot2 == "" {
		c.Slot2 = d.Slot2
	}

	if c.Level == nil && d.Level != nil {
		c.Level = Level(*d.Level)
	}

	return c
}

func (c UnitConfig) validate() error {
	if err := ValidateLevel(c.level()); err != nil {
		return err
	}

	return ValidatePowerStat(c.PowerStat)
}

// TrackedUnit is one roster entry with its running timers.
type TrackedUnit struct {
	UnitID    string
	Known     bool
	Level     int
	PowerStat int
	Slot1     AbilitySlot
	Slot2     AbilitySlot
	Modifiers ModifierSet
	Timers    map[SlotKey]*CooldownTimer
}

func newTrackedUnit(cfg UnitConfig, cat catalog.Catalog) *TrackedUnit {
	return &TrackedUnit{
		UnitID:    cfg.UnitID,
		Known:     cat.HasUnit(cfg.UnitID),
		Level:     cfg.level(),
		PowerStat: cfg.PowerStat,
		Slot1:     AbilitySlot{Ability: cfg.Slot1},
		Slot2:     AbilitySlot{Ability: cfg.Slot2},
		Timers:    make(map[SlotKey]*CooldownTimer),
	}
}

// Name returns the display name of the unit.
func (u *TrackedUnit) Name() string {
	return catalog.DisplayName(u.UnitID)
}

// AbilitySlot returns the identity of a generic slot.
func (u *TrackedUnit) AbilitySlot(k SlotKey) *AbilitySlot {
	switch k {
	case SlotOne:
		return &u.Slot1
	case SlotTwo:
		return &u.Slot2
	default:
		panic(fmt.Sprintf("%s is not a generic slot", k))
	}
}

// Timer returns the timer occupying the slot, if any.
func (u *TrackedUnit) Timer(k SlotKey) *CooldownTimer {
	return u.Timers[k]
}

// cancelAll cancels every running timer and returns the cancelled ones.
func (u *TrackedUnit) cancelAll() []*CooldownTimer {
	cancelled := make([]*CooldownTimer, 0, len(u.Timers))

	for _, k := range slotOrder {
		t, ok := u.Timers[k]
		if !ok {
			continue
		}

		if t.cancel() {
			cancelled = append(cancelled, t)
		}

		delete(u.Timers, k)
	}

	return cancelled
}
