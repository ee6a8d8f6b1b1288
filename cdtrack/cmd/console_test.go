package cmd

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cdtrack/config"
	"github.com/sarchlab/cdtrack/session"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
)

func newTestSession(cfg config.Config) *session.Session {
	s, err := session.MakeBuilder().
		WithConfig(cfg).
		WithIDGenerator(sim.NewSequentialIDGenerator()).
		WithoutMonitoring().
		Build(context.Background())
	Expect(err).NotTo(HaveOccurred())

	return s
}

var _ = Describe("Console", func() {
	var (
		s       *session.Session
		t       *tracker.Tracker
		out     *bytes.Buffer
		console *Console
	)

	BeforeEach(func() {
		s = newTestSession(config.Default())
		t = s.GetTracker()
		out = new(bytes.Buffer)
		console = NewConsole(t, out)
	})

	AfterEach(func() {
		s.Terminate()
	})

	It("should ignore blank lines and comments", func() {
		Expect(console.Exec("")).To(Succeed())
		Expect(console.Exec("   ")).To(Succeed())
		Expect(console.Exec("# s1 1")).To(Succeed())
		Expect(t.LogText()).To(BeEmpty())
	})

	It("should reject unknown commands", func() {
		Expect(console.Exec("jump 1")).To(MatchError(ErrUnknownCommand))
	})

	It("should start the clock", func() {
		Expect(console.Exec("start")).To(Succeed())
		Expect(t.ClockRunning()).To(BeTrue())
	})

	It("should number units from 1", func() {
		Expect(console.Exec("s1 2")).To(Succeed())

		_, state, err := t.Remaining(1, tracker.SlotOne)
		Expect(err).NotTo(HaveOccurred())
		Expect(state).To(Equal(tracker.TimerRunning))
		Expect(t.LogText()).To(Equal("Aatrox Flash – 5:00"))
	})

	It("should start the second slot and the ultimate", func() {
		Expect(console.Exec("s2 1")).To(Succeed())
		Expect(t.LogText()).To(Equal("Aatrox Teleport – 5:00"))

		Expect(console.Exec("ult 1")).To(Succeed())
		Expect(t.LogText()).To(Equal("Aatrox R – 2:00"))
	})

	It("should reject unit numbers outside the roster", func() {
		Expect(console.Exec("s1 0")).To(MatchError(tracker.ErrUnknownUnitRef))
		Expect(console.Exec("s2 6")).To(MatchError(tracker.ErrUnknownUnitRef))
		Expect(console.Exec("ult x")).To(MatchError(tracker.ErrUnknownUnitRef))
	})

	It("should cast abilities with spaces in their names", func() {
		Expect(console.Exec("cast 1 2 U. Teleport")).To(Succeed())

		u, _ := t.Unit(0)
		Expect(u.Slot2.Timer.Ability).To(Equal("U. Teleport"))
		Expect(u.Slot2.Timer.Duration).To(Equal(
			tracker.UpgradedTeleportDuration(6)))
	})

	It("should reject casts into the ultimate slot", func() {
		Expect(console.Exec("cast 1 3 Flash")).
			To(MatchError(tracker.ErrInvalidSlot))
		Expect(console.Exec("cast 1")).To(MatchError(ErrUsage))
	})

	It("should configure the roster", func() {
		Expect(console.Exec("roster Wukong,Flash,Ignite,11 Ashe ,,Smite,,40")).
			To(Succeed())

		Expect(t.NumUnits()).To(Equal(3))

		u, _ := t.Unit(0)
		Expect(u.UnitID).To(Equal("MonkeyKing"))
		Expect(u.Name).To(Equal("Wukong"))
		Expect(u.Slot2.Ability).To(Equal("Ignite"))
		Expect(u.Level).To(Equal(11))

		u, _ = t.Unit(1)
		Expect(u.UnitID).To(Equal("Ashe"))
		Expect(u.Slot1.Ability).To(Equal("Flash"))
		Expect(u.Slot2.Ability).To(Equal("Teleport"))
		Expect(u.Level).To(Equal(6))

		u, _ = t.Unit(2)
		Expect(u.UnitID).To(Equal("Aatrox"))
		Expect(u.Slot2.Ability).To(Equal("Smite"))
		Expect(u.PowerStat).To(Equal(40))
	})

	It("should reject a roster with an invalid entry", func() {
		Expect(console.Exec("roster Ashe,Flash,Heal,25")).
			To(MatchError(tracker.ErrInvalidLevel))
		Expect(console.Exec("roster Aatrox,,,0")).
			To(MatchError(tracker.ErrInvalidLevel))
		Expect(console.Exec("roster Ashe,Flash,Heal,6,0,x")).
			To(MatchError(ErrUsage))
		Expect(t.NumUnits()).To(Equal(session.DefaultRosterSize))
	})

	It("should toggle modifiers", func() {
		Expect(console.Exec("mod 1 a on")).To(Succeed())
		Expect(console.Exec("mod 1 B on")).To(Succeed())
		Expect(console.Exec("mod 1 a off")).To(Succeed())

		u, _ := t.Unit(0)
		Expect(u.Modifiers).To(Equal(tracker.ModifierSet{B: true}))

		Expect(console.Exec("mod 1 c on")).
			To(MatchError(tracker.ErrInvalidModifierSource))
		Expect(console.Exec("mod 1 a maybe")).To(MatchError(ErrUsage))
	})

	It("should set level and power stat", func() {
		Expect(console.Exec("level 1 16")).To(Succeed())
		Expect(console.Exec("power 1 100")).To(Succeed())

		u, _ := t.Unit(0)
		Expect(u.Level).To(Equal(16))
		Expect(u.PowerStat).To(Equal(100))

		Expect(console.Exec("power 1 lots")).To(Succeed())
		u, _ = t.Unit(0)
		Expect(u.PowerStat).To(Equal(0))

		Expect(console.Exec("level 1 19")).
			To(MatchError(tracker.ErrInvalidLevel))
		Expect(console.Exec("power 1 1000")).
			To(MatchError(tracker.ErrInvalidPowerStat))
	})

	It("should reset", func() {
		Expect(console.Exec("start")).To(Succeed())
		Expect(console.Exec("s1 1")).To(Succeed())
		Expect(s.Advance(5)).To(Succeed())

		Expect(console.Exec("reset")).To(Succeed())

		Expect(t.ClockRunning()).To(BeFalse())
		Expect(t.Elapsed()).To(Equal(0))
		Expect(t.LogText()).To(BeEmpty())
	})

	It("should show the units", func() {
		Expect(console.Exec("roster Ashe Nobody")).To(Succeed())
		Expect(console.Exec("start")).To(Succeed())
		Expect(console.Exec("s1 1")).To(Succeed())
		Expect(s.Advance(3)).To(Succeed())

		out.Reset()
		Expect(console.Exec("show")).To(Succeed())

		Expect(out.String()).To(ContainSubstring("clock 0:03 (running)"))
		Expect(out.String()).To(MatchRegexp(`1\s+Ashe\s+6\s+0\s+-\s+Flash\s+297s`))
		Expect(out.String()).To(ContainSubstring("Nobody?"))
		Expect(out.String()).To(ContainSubstring("Ashe Flash – 5:00"))
	})

	It("should print the log and the help", func() {
		Expect(console.Exec("s1 1")).To(Succeed())
		out.Reset()

		Expect(console.Exec("log")).To(Succeed())
		Expect(out.String()).To(Equal("Aatrox Flash – 5:00\n"))

		Expect(console.Exec("help")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("start the game clock"))
	})

	It("should report quitting", func() {
		Expect(console.Exec("quit")).To(MatchError(errQuit))
	})
})

var _ = Describe("serveConsole", func() {
	It("should run every line until quit", func() {
		s := newTestSession(config.Default())
		defer s.Terminate()

		out := new(bytes.Buffer)
		errOut := new(bytes.Buffer)
		in := bytes.NewBufferString("s1 1\nbogus\nquit\ns2 1\n")

		serveConsole(context.Background(), in,
			NewConsole(s.GetTracker(), out), errOut)

		Expect(s.GetTracker().LogText()).To(Equal("Aatrox Flash – 5:00"))
		Expect(errOut.String()).To(ContainSubstring("unknown command: bogus"))
	})
})
