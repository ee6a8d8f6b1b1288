// Package catalog holds the static game data the tracker needs: base
// cooldowns of the generic abilities and the per-rank ultimate cooldowns of
// every known unit. Every lookup is total; missing entries resolve to
// documented defaults.
package catalog

import (
	"math"
	"sort"
)

// Ability names with special handling.
const (
	Teleport         = "Teleport"
	UpgradedTeleport = "U. Teleport"
)

// DefaultAbilityDuration is the base cooldown of an ability the table does
// not know.
const DefaultAbilityDuration = 300

// FallbackUltimateCooldowns are the per-rank ultimate cooldowns of a unit the
// catalog does not know.
var FallbackUltimateCooldowns = []float64{100, 80, 60}

// A Catalog answers cooldown questions about abilities and units.
type Catalog interface {
	// BaseDuration returns the base cooldown of a generic ability in seconds.
	BaseDuration(ability string) int

	// UltimateCooldown returns the base ultimate cooldown of a unit at the
	// given rank (1-3) and whether the unit is known.
	UltimateCooldown(unitID string, rank int) (float64, bool)

	// HasUnit tells if the unit has its own ultimate cooldown entry.
	HasUnit(unitID string) bool
}

// Table is the in-memory Catalog.
type Table struct {
	Abilities         map[string]int       `yaml:"abilities"`
	Units             map[string][]float64 `yaml:"units"`
	DefaultDuration   int                  `yaml:"defaultDuration"`
	FallbackUltimate  []float64            `yaml:"fallbackUltimate"`
	DataDragonVersion string               `yaml:"dataDragonVersion,omitempty"`
}

// NewTable creates an empty table that only knows the fallbacks.
func NewTable() *Table {
	return &Table{
		Abilities:        make(map[string]int),
		Units:            make(map[string][]float64),
		DefaultDuration:  DefaultAbilityDuration,
		FallbackUltimate: append([]float64(nil), FallbackUltimateCooldowns...),
	}
}

// Default returns the built-in table.
func Default() *Table {
	t := NewTable()

	for name, d := range defaultAbilities {
		t.Abilities[name] = d
	}

	for unit, cds := range defaultUnits {
		t.Units[unit] = append([]float64(nil), cds...)
	}

	return t
}

// BaseDuration returns the base cooldown of a generic ability. The upgraded
// teleport has no fixed base; its duration depends on the unit level, see
// UpgradedTeleportDuration.
func (t *Table) BaseDuration(ability string) int {
	if d, ok := t.Abilities[ability]; ok {
		return d
	}

	if t.DefaultDuration > 0 {
		return t.DefaultDuration
	}

	return DefaultAbilityDuration
}

// HasUnit tells if the unit has its own ultimate cooldown entry.
func (t *Table) HasUnit(unitID string) bool {
	cds, ok := t.Units[unitID]
	return ok && len(cds) > 0
}

// UltimateCooldown returns the base ultimate cooldown at the rank. Ranks
// outside [1,3] are clamped. A unit entry shorter than the rank uses its
// last value.
func (t *Table) UltimateCooldown(unitID string, rank int) (float64, bool) {
	cds, known := t.Units[unitID]
	if !known || len(cds) == 0 {
		known = false
		cds = t.FallbackUltimate
		if len(cds) == 0 {
			cds = FallbackUltimateCooldowns
		}
	}

	idx := clampRank(rank) - 1
	if idx >= len(cds) {
		idx = len(cds) - 1
	}

	return math.Max(cds[idx], 0), known
}

func clampRank(rank int) int {
	if rank < 1 {
		return 1
	}

	if rank > 3 {
		return 3
	}

	return rank
}

// AbilityNames lists the abilities of the table in alphabetical order.
func (t *Table) AbilityNames() []string {
	names := make([]string, 0, len(t.Abilities))
	for name := range t.Abilities {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// UnitIDs lists the known units in alphabetical order.
func (t *Table) UnitIDs() []string {
	ids := make([]string, 0, len(t.Units))
	for id := range t.Units {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Merge copies every entry of other into t, overriding existing ones.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}

	for name, d := range other.Abilities {
		t.Abilities[name] = d
	}

	for unit, cds := range other.Units {
		t.Units[unit] = append([]float64(nil), cds...)
	}

	if other.DefaultDuration > 0 {
		t.DefaultDuration = other.DefaultDuration
	}

	if len(other.FallbackUltimate) > 0 {
		t.FallbackUltimate = append([]float64(nil), other.FallbackUltimate...)
	}

	if other.DataDragonVersion != "" {
		t.DataDragonVersion = other.DataDragonVersion
	}
}
