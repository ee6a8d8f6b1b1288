package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
)

var _ = Describe("DBTracer", func() {
	var (
		mockCtrl   *gomock.Controller
		timeTeller *MockTimeTeller
		backend    *MockDataRecorder
		tracer     *DBTracer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		timeTeller = NewMockTimeTeller(mockCtrl)
		backend = NewMockDataRecorder(mockCtrl)

		backend.EXPECT().CreateTable(TimerEventTable, TimerEventEntry{})
		backend.EXPECT().CreateTable(SlotUpgradeTable, SlotUpgradeEntry{})

		tracer = NewDBTracer(timeTeller, backend)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should record started timers", func() {
		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(42))
		backend.EXPECT().InsertData(TimerEventTable, TimerEventEntry{
			EngineTime: 42,
			Elapsed:    40,
			Event:      EventStarted,
			UnitIndex:  1,
			Unit:       "Ahri",
			Slot:       "slot1",
			Ability:    "Flash",
			Token:      "7",
			Duration:   300,
			Remaining:  300,
			LogText:    "Ahri Flash – 5:40",
		})

		tracer.TimerStarted(tracker.TimerRecord{
			UnitIndex: 1,
			UnitID:    "Ahri",
			Slot:      tracker.SlotOne,
			Ability:   "Flash",
			Token:     "7",
			State:     tracker.TimerRunning,
			Duration:  300,
			Remaining: 300,
			Elapsed:   40,
			LogText:   "Ahri Flash – 5:40",
		})
	})

	It("should record each timer event kind", func() {
		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(1)).Times(3)

		var events []string
		backend.EXPECT().InsertData(TimerEventTable, gomock.Any()).
			Do(func(_ string, entry any) {
				events = append(events, entry.(TimerEventEntry).Event)
			}).Times(3)

		rec := tracker.TimerRecord{Slot: tracker.SlotUltimate}
		tracer.TimerCancelled(rec)
		tracer.TimerReady(rec)
		tracer.LogCleared(rec)

		Expect(events).To(Equal(
			[]string{EventCancelled, EventReady, EventCleared}))
	})

	It("should record slot upgrades", func() {
		timeTeller.EXPECT().CurrentTime().Return(sim.VTimeInSec(600))
		backend.EXPECT().InsertData(SlotUpgradeTable, SlotUpgradeEntry{
			EngineTime: 600,
			Elapsed:    600,
			UnitIndex:  0,
			Unit:       "Aatrox",
			Slot:       "slot2",
			From:       "Teleport",
			To:         "U. Teleport",
		})

		tracer.SlotUpgraded(tracker.SlotUpgrade{
			UnitID:  "Aatrox",
			Slot:    tracker.SlotTwo,
			From:    "Teleport",
			To:      "U. Teleport",
			Elapsed: 600,
		})
	})

	It("should flush once on terminate and stop recording", func() {
		backend.EXPECT().Flush().Times(1)

		tracer.Terminate()
		tracer.Terminate()
		tracer.TimerReady(tracker.TimerRecord{})
	})
})
