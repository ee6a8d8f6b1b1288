package tracker

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StatusLog", func() {
	var l *StatusLog

	BeforeEach(func() {
		l = NewStatusLog()
	})

	It("should start empty", func() {
		Expect(l.Text()).To(BeEmpty())
		_, owned := l.Owner()
		Expect(owned).To(BeFalse())
	})

	It("should always overwrite on set", func() {
		l.Set("first", "1")
		l.Set("second", "2")

		Expect(l.Text()).To(Equal("second"))
		owner, _ := l.Owner()
		Expect(owner).To(Equal(Token("2")))
	})

	It("should only be cleared by its owner", func() {
		l.Set("first", "1")
		l.Set("second", "2")

		Expect(l.ClearIfOwned("1")).To(BeFalse())
		Expect(l.Text()).To(Equal("second"))

		Expect(l.ClearIfOwned("2")).To(BeTrue())
		Expect(l.Text()).To(BeEmpty())
	})

	It("should not be cleared by an empty token", func() {
		Expect(l.ClearIfOwned("")).To(BeFalse())
	})

	It("should reset", func() {
		l.Set("first", "1")
		l.Reset()

		Expect(l.Text()).To(BeEmpty())
		Expect(l.ClearIfOwned("1")).To(BeFalse())
	})
})

var _ = Describe("CooldownTimer", func() {
	It("should count down to ready", func() {
		t := newCooldownTimer(SlotOne, "Flash", 2, "1", 10)

		Expect(t.ReadyAt()).To(Equal(12))
		Expect(t.tick()).To(BeFalse())
		Expect(t.Remaining()).To(Equal(1))
		Expect(t.tick()).To(BeTrue())
		Expect(t.State()).To(Equal(TimerReady))
		Expect(t.Remaining()).To(Equal(0))
		Expect(t.tick()).To(BeFalse())
	})

	It("should become ready on the first tick with zero duration", func() {
		t := newCooldownTimer(SlotOne, "Flash", 0, "1", 0)

		Expect(t.tick()).To(BeTrue())
		Expect(t.Remaining()).To(Equal(0))
	})

	It("should only cancel running timers", func() {
		t := newCooldownTimer(SlotOne, "Flash", 1, "1", 0)
		t.tick()

		Expect(t.cancel()).To(BeFalse())
		Expect(t.State()).To(Equal(TimerReady))
	})

	It("should not count down once cancelled", func() {
		t := newCooldownTimer(SlotOne, "Flash", 5, "1", 0)

		Expect(t.cancel()).To(BeTrue())
		Expect(t.tick()).To(BeFalse())
		Expect(t.Remaining()).To(Equal(5))
		Expect(t.State()).To(Equal(TimerCancelled))
	})
})

var _ = Describe("GameClock", func() {
	It("should only tick while running", func() {
		c := GameClock{}

		Expect(c.Tick()).To(BeFalse())
		Expect(c.Elapsed()).To(Equal(0))

		Expect(c.Start()).To(BeTrue())
		Expect(c.Start()).To(BeFalse())
		Expect(c.Tick()).To(BeTrue())
		Expect(c.Elapsed()).To(Equal(1))

		c.Reset()
		Expect(c.Running()).To(BeFalse())
		Expect(c.Elapsed()).To(Equal(0))
	})

	DescribeTable("formatting",
		func(seconds int, expected string) {
			Expect(FormatClock(seconds)).To(Equal(expected))
		},
		Entry("zero", 0, "0:00"),
		Entry("seconds", 50, "0:50"),
		Entry("minutes", 300, "5:00"),
		Entry("mixed", 605, "10:05"),
	)

	DescribeTable("remaining display",
		func(state TimerState, remaining int, expected string) {
			Expect(FormatRemaining(state, remaining)).To(Equal(expected))
		},
		Entry("never started", TimerState(0), 0, ""),
		Entry("running", TimerRunning, 42, "42s"),
		Entry("ready", TimerReady, 0, "R"),
	)
})
