package tracker

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cdtrack/catalog"
)

var _ = Describe("Durations", func() {
	DescribeTable("modifier discount",
		func(a, b bool, expected float64) {
			m := ModifierSet{A: a, B: b}
			Expect(m.Discount()).To(Equal(expected))
			Expect(m.Discount()).To(Equal(m.Discount()))
		},
		Entry("none", false, false, 1.0),
		Entry("A only", true, false, 0.9091),
		Entry("B only", false, true, 0.8475),
		Entry("both", true, true, 0.78125),
	)

	DescribeTable("generic slot duration",
		func(ability string, level int, mods ModifierSet, expected int) {
			d := SlotDuration(catalog.Default(), ability, level, mods)
			Expect(d).To(Equal(expected))
		},
		Entry("flash", "Flash", 6, ModifierSet{}, 300),
		Entry("flash with both", "Flash", 6, ModifierSet{A: true, B: true}, 234),
		Entry("flash with A", "Flash", 6, ModifierSet{A: true}, 272),
		Entry("flash with B", "Flash", 6, ModifierSet{B: true}, 254),
		Entry("smite", "Smite", 6, ModifierSet{}, 90),
		Entry("unknown ability", "Snowball", 6, ModifierSet{}, 300),
		Entry("upgraded teleport", catalog.UpgradedTeleport, 1,
			ModifierSet{}, 330),
	)

	DescribeTable("upgraded teleport scale",
		func(level, expected int) {
			Expect(UpgradedTeleportDuration(level)).To(Equal(expected))
		},
		Entry("level 1", 1, 330),
		Entry("level 5", 5, 290),
		Entry("level 10", 10, 240),
		Entry("level 15", 15, 240),
		Entry("level 18", 18, 240),
	)

	DescribeTable("ultimate rank",
		func(level, expected int) {
			Expect(UltimateRank(level)).To(Equal(expected))
		},
		Entry("level 1", 1, 1),
		Entry("level 6", 6, 1),
		Entry("level 10", 10, 1),
		Entry("level 11", 11, 2),
		Entry("level 15", 15, 2),
		Entry("level 16", 16, 3),
		Entry("level 18", 18, 3),
	)

	It("should reduce nothing at power stat 0", func() {
		Expect(HasteReduction(0)).To(Equal(0.0))
	})

	It("should reduce monotonically and stay below 1", func() {
		prev := HasteReduction(0)
		for p := 1; p <= MaxPowerStat; p++ {
			r := HasteReduction(p)
			Expect(r).To(BeNumerically(">", prev))
			Expect(r).To(BeNumerically("<", 1))
			prev = r
		}
	})

	It("should halve a rank 1 ultimate of 100 at power stat 100", func() {
		d, known := UltimateDuration(catalog.Default(), "Ashe", 6, 100)
		Expect(d).To(Equal(50))
		Expect(known).To(BeTrue())
	})

	It("should use the fallback cooldowns for unknown units", func() {
		d, known := UltimateDuration(catalog.Default(), "Nobody", 11, 0)
		Expect(d).To(Equal(80))
		Expect(known).To(BeFalse())
	})

	It("should round the ultimate down", func() {
		d, _ := UltimateDuration(catalog.Default(), "Aatrox", 16, 30)
		Expect(d).To(Equal(61))
	})
})

var _ = Describe("Input validation", func() {
	It("should accept levels in range", func() {
		Expect(ValidateLevel(1)).To(Succeed())
		Expect(ValidateLevel(18)).To(Succeed())
	})

	It("should reject levels out of range", func() {
		Expect(errors.Is(ValidateLevel(0), ErrInvalidLevel)).To(BeTrue())
		Expect(errors.Is(ValidateLevel(19), ErrInvalidLevel)).To(BeTrue())
	})

	DescribeTable("power stat text",
		func(text string, expected int, fails bool) {
			v, err := ParsePowerStat(text)
			if fails {
				Expect(errors.Is(err, ErrInvalidPowerStat)).To(BeTrue())
				return
			}

			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(expected))
		},
		Entry("number", "120", 120, false),
		Entry("padded", " 45 ", 45, false),
		Entry("text", "lots", 0, false),
		Entry("empty", "", 0, false),
		Entry("too high", "1000", 0, true),
		Entry("negative", "-1", 0, true),
	)

	DescribeTable("modifier sources",
		func(text string, expected ModifierSource) {
			src, err := ParseModifierSource(text)
			Expect(err).NotTo(HaveOccurred())
			Expect(src).To(Equal(expected))
		},
		Entry("a", "a", ModifierA),
		Entry("A", "A", ModifierA),
		Entry("lucidity", "Lucidity", ModifierA),
		Entry("b", "b", ModifierB),
		Entry("cosmic", "cosmic", ModifierB),
	)

	It("should reject unknown modifier sources", func() {
		_, err := ParseModifierSource("c")
		Expect(errors.Is(err, ErrInvalidModifierSource)).To(BeTrue())
	})
})
