package tracker

import (
	"math"

	"github.com/sarchlab/cdtrack/catalog"
)

// Upgraded teleport scaling: 330 s at level 1, 10 s less per level, never
// below 240 s.
const (
	upgradedTeleportBase  = 330
	upgradedTeleportStep  = 10
	upgradedTeleportFloor = 240
)

// UpgradedTeleportDuration returns the base cooldown of the upgraded
// teleport at a level.
func UpgradedTeleportDuration(level int) int {
	d := upgradedTeleportBase - (level-1)*upgradedTeleportStep
	if d < upgradedTeleportFloor {
		return upgradedTeleportFloor
	}

	return d
}

// SlotBaseDuration returns the undiscounted cooldown of a generic ability.
func SlotBaseDuration(cat catalog.Catalog, ability string, level int) int {
	if ability == catalog.UpgradedTeleport {
		return UpgradedTeleportDuration(level)
	}

	return cat.BaseDuration(ability)
}

// SlotDuration returns the cooldown of a generic ability after modifiers,
// rounded down to whole seconds.
func SlotDuration(
	cat catalog.Catalog,
	ability string,
	level int,
	mods ModifierSet,
) int {
	base := SlotBaseDuration(cat, ability, level)
	return int(math.Floor(float64(base) * mods.Discount()))
}

// UltimateRank returns the ultimate rank unlocked at a level.
func UltimateRank(level int) int {
	switch {
	case level >= 16:
		return 3
	case level >= 11:
		return 2
	default:
		return 1
	}
}

// HasteReduction converts a power stat into the fraction of cooldown removed.
// It is 0 at 0 and approaches but never reaches 1.
func HasteReduction(powerStat int) float64 {
	if powerStat <= 0 {
		return 0
	}

	return float64(powerStat) / float64(powerStat+100)
}

// UltimateDuration returns the ultimate cooldown of a unit and whether the
// unit was found in the catalog.
func UltimateDuration(
	cat catalog.Catalog,
	unitID string,
	level int,
	powerStat int,
) (int, bool) {
	base, known := cat.UltimateCooldown(unitID, UltimateRank(level))

	if powerStat < 0 {
		powerStat = 0
	}

	// base * (1 - p/(p+100)) == base * 100/(p+100), which stays exact for
	// integral bases.
	d := math.Floor(base * 100 / float64(powerStat+100))

	return int(d), known
}
