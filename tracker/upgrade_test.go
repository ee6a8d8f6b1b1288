package tracker

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UpgradeScheduler", func() {
	var (
		s     *UpgradeScheduler
		units []*TrackedUnit
	)

	BeforeEach(func() {
		s = &UpgradeScheduler{Rule: UpgradeRule{
			Threshold: 600,
			From:      "Teleport",
			To:        "U. Teleport",
		}}
		units = []*TrackedUnit{
			{Slot1: AbilitySlot{Ability: "Flash"},
				Slot2: AbilitySlot{Ability: "Teleport"}},
			{Slot1: AbilitySlot{Ability: "Teleport"},
				Slot2: AbilitySlot{Ability: "Ignite"}},
		}
	})

	It("should not fire before the threshold", func() {
		Expect(s.Evaluate(599, units)).To(BeEmpty())
		Expect(units[0].Slot2.Ability).To(Equal("Teleport"))
	})

	It("should upgrade every qualifying slot once", func() {
		ups := s.Evaluate(600, units)

		Expect(ups).To(ConsistOf(
			SlotUpgrade{UnitIndex: 0, Slot: SlotTwo, From: "Teleport",
				To: "U. Teleport", Elapsed: 600},
			SlotUpgrade{UnitIndex: 1, Slot: SlotOne, From: "Teleport",
				To: "U. Teleport", Elapsed: 600},
		))
		Expect(units[0].Slot2).To(Equal(
			AbilitySlot{Ability: "U. Teleport", Upgraded: true}))
		Expect(units[0].Slot1.Upgraded).To(BeFalse())
		Expect(units[1].Slot2.Upgraded).To(BeFalse())

		Expect(s.Evaluate(601, units)).To(BeEmpty())
	})

	It("should not touch a running timer", func() {
		timer := newCooldownTimer(SlotTwo, "Teleport", 300, "1", 590)
		timer.remaining = 290
		units[0].Timers = map[SlotKey]*CooldownTimer{SlotTwo: timer}

		s.Evaluate(600, units)

		Expect(timer.Remaining()).To(Equal(290))
		Expect(timer.State()).To(Equal(TimerRunning))
		Expect(timer.Ability()).To(Equal("Teleport"))
	})

	It("should only fire on the threshold second", func() {
		Expect(s.Evaluate(601, units)).To(BeEmpty())
		Expect(units[0].Slot2).To(Equal(AbilitySlot{Ability: "Teleport"}))
	})

	It("should leave slots configured after the threshold alone", func() {
		s.Evaluate(600, units)
		units = append(units, &TrackedUnit{
			Slot1: AbilitySlot{Ability: "Teleport"},
			Slot2: AbilitySlot{Ability: "Flash"},
		})

		Expect(s.Evaluate(700, units)).To(BeEmpty())
		Expect(units[2].Slot1).To(Equal(AbilitySlot{Ability: "Teleport"}))
	})
})
