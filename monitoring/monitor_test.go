package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
)

var _ = Describe("Monitor", func() {
	var (
		engine *sim.SerialEngine
		tr     *tracker.Tracker
		m      *Monitor
		router *mux.Router
	)

	do := func(method, url string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, v any) {
		Expect(json.Unmarshal(rec.Body.Bytes(), v)).To(Succeed())
	}

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		tr = tracker.MakeBuilder().
			WithEngine(engine).
			WithIDGenerator(sim.NewSequentialIDGenerator()).
			WithRoster([]tracker.UnitConfig{{}, {UnitID: "Ashe"}}).
			Build("Tracker")

		m = NewMonitor()
		m.RegisterEngine(engine)
		m.RegisterTracker(tr)
		router = m.Router()
	})

	It("should start the clock", func() {
		rec := do(http.MethodPost, "/api/clock/start")
		Expect(rec.Code).To(Equal(http.StatusOK))

		Expect(engine.RunUntil(3)).To(Succeed())

		rec = do(http.MethodGet, "/api/now")
		rsp := nowRsp{}
		decode(rec, &rsp)
		Expect(rsp).To(Equal(nowRsp{Now: 3, Elapsed: 3, Clock: "0:03"}))
	})

	It("should start a generic slot", func() {
		rec := do(http.MethodPost, "/api/unit/0/slot/1")

		Expect(rec.Code).To(Equal(http.StatusOK))
		rsp := startRsp{}
		decode(rec, &rsp)
		Expect(rsp.Token).NotTo(BeEmpty())
		Expect(rsp.Log).To(Equal("Aatrox Flash – 5:00"))

		rec = do(http.MethodGet, "/api/log")
		logs := logRsp{}
		decode(rec, &logs)
		Expect(logs.Log).To(Equal("Aatrox Flash – 5:00"))
	})

	It("should start the ultimate", func() {
		rec := do(http.MethodPost, "/api/unit/1/ult")

		Expect(rec.Code).To(Equal(http.StatusOK))
		rsp := startRsp{}
		decode(rec, &rsp)
		Expect(rsp.Log).To(Equal("Ashe R – 1:40"))
	})

	It("should serve the state", func() {
		do(http.MethodPost, "/api/unit/0/slot/2")

		rec := do(http.MethodGet, "/api/state")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).
			To(Equal("application/json"))
		s := tracker.Snapshot{}
		decode(rec, &s)
		Expect(s.Units).To(HaveLen(2))
		Expect(s.Units[0].Slot2.Ability).To(Equal("Teleport"))
		Expect(s.Units[0].Slot2.Display).To(Equal("300s"))
		Expect(s.Units[1].Name).To(Equal("Ashe"))
	})

	It("should change modifiers, level and power stat", func() {
		rec := do(http.MethodPost, "/api/unit/0/modifier/b/on")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = do(http.MethodPost, "/api/unit/0/level/16")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = do(http.MethodPost, "/api/unit/0/power/25")
		Expect(rec.Code).To(Equal(http.StatusOK))

		u := tracker.UnitView{}
		decode(rec, &u)
		Expect(u.Modifiers).To(Equal(tracker.ModifierSet{B: true}))
		Expect(u.Level).To(Equal(16))
		Expect(u.Rank).To(Equal(3))
		Expect(u.PowerStat).To(Equal(25))
	})

	DescribeTable("rejected commands",
		func(method, url string, code int) {
			rec := do(method, url)

			Expect(rec.Code).To(Equal(code))
			rsp := errorRsp{}
			decode(rec, &rsp)
			Expect(rsp.Error).NotTo(BeEmpty())
		},
		Entry("unknown unit", http.MethodPost, "/api/unit/7/ult",
			http.StatusNotFound),
		Entry("bad slot", http.MethodPost, "/api/unit/0/slot/3",
			http.StatusBadRequest),
		Entry("bad source", http.MethodPost, "/api/unit/0/modifier/c/on",
			http.StatusBadRequest),
		Entry("bad level", http.MethodPost, "/api/unit/0/level/19",
			http.StatusBadRequest),
		Entry("level text", http.MethodPost, "/api/unit/0/level/max",
			http.StatusBadRequest),
		Entry("bad power stat", http.MethodPost, "/api/unit/0/power/1000",
			http.StatusBadRequest),
		Entry("unknown unit details", http.MethodGet, "/api/unit/9",
			http.StatusNotFound),
	)

	It("should treat non-numeric power stat text as 0", func() {
		do(http.MethodPost, "/api/unit/1/power/50")

		rec := do(http.MethodPost, "/api/unit/1/power/none")

		Expect(rec.Code).To(Equal(http.StatusOK))
		u := tracker.UnitView{}
		decode(rec, &u)
		Expect(u.PowerStat).To(Equal(0))
	})

	It("should serialize unit details", func() {
		rec := do(http.MethodGet, "/api/unit/0")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.Len()).To(BeNumerically(">", 0))
	})

	It("should only start timers with POST", func() {
		rec := do(http.MethodGet, "/api/unit/0/ult")

		Expect(rec.Code).NotTo(Equal(http.StatusOK))
		Expect(tr.LogText()).To(BeEmpty())
	})

	It("should serve the dashboard", func() {
		rec := do(http.MethodGet, "/")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(HavePrefix("<!DOCTYPE html>"))
	})

	It("should report resources", func() {
		rec := do(http.MethodGet, "/api/resource")

		Expect(rec.Code).To(Equal(http.StatusOK))
		rsp := resourceRsp{}
		decode(rec, &rsp)
		Expect(rsp.MemorySize).To(BeNumerically(">", 0))
	})

	It("should serve over a real listener", func() {
		m.WithPortNumber(0).StartServer()
		defer func() { _ = m.Shutdown(context.Background()) }()

		rsp, err := http.Get(m.URL() + "/api/log")

		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})
})
