package tracker

// UpgradeRule renames a generic ability on the tick where game time reaches
// Threshold.
type UpgradeRule struct {
	Threshold int
	From      string
	To        string
}

// SlotUpgrade records one slot renamed by the UpgradeScheduler.
type SlotUpgrade struct {
	UnitIndex int
	UnitID    string
	Slot      SlotKey
	From      string
	To        string
	Elapsed   int
}

// UpgradeScheduler applies an UpgradeRule to the roster on the threshold
// tick.
type UpgradeScheduler struct {
	Rule UpgradeRule
}

// Evaluate upgrades every qualifying slot when elapsed is exactly the
// threshold. Slots configured later keep their ability. Running timers are
// left untouched.
func (s *UpgradeScheduler) Evaluate(
	elapsed int,
	units []*TrackedUnit,
) []SlotUpgrade {
	if elapsed != s.Rule.Threshold || s.Rule.From == "" {
		return nil
	}

	var upgrades []SlotUpgrade

	for i, u := range units {
		for _, k := range genericSlots {
			slot := u.AbilitySlot(k)
			if slot.Upgraded || slot.Ability != s.Rule.From {
				continue
			}

			slot.Upgraded = true
			slot.Ability = s.Rule.To

			upgrades = append(upgrades, SlotUpgrade{
				UnitIndex: i,
				UnitID:    u.UnitID,
				Slot:      k,
				From:      s.Rule.From,
				To:        s.Rule.To,
				Elapsed:   elapsed,
			})
		}
	}

	return upgrades
}
