// Package monitoring serves the tracker state over HTTP and accepts tracker
// commands from a browser.
package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/sarchlab/cdtrack/monitoring/web"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// Tracker is what the monitor reads and controls.
type Tracker interface {
	sim.Named

	Snapshot() tracker.Snapshot
	Unit(unit int) (tracker.UnitView, error)
	LogText() string
	StartClock()
	StartSlot(unit int, slot tracker.SlotKey) (tracker.Token, error)
	StartUltimateTimer(unit int) (tracker.Token, error)
	SetModifier(unit int, src tracker.ModifierSource, enabled bool) error
	SetLevel(unit int, level int) error
	SetPowerStatText(unit int, text string) error
}

// Monitor turns a tracking session into a web server.
type Monitor struct {
	engine     sim.Engine
	tracker    Tracker
	portNumber int

	server   *http.Server
	listener net.Listener
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine the tracker runs on.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterTracker registers the tracker to serve.
func (m *Monitor) RegisterTracker(t Tracker) {
	m.tracker = t
}

// Router returns the handler of all the monitor routes.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/pause", m.pauseEngine).Methods(http.MethodPost)
	api.HandleFunc("/continue", m.continueEngine).Methods(http.MethodPost)
	api.HandleFunc("/now", m.now).Methods(http.MethodGet)
	api.HandleFunc("/state", m.state).Methods(http.MethodGet)
	api.HandleFunc("/log", m.logText).Methods(http.MethodGet)
	api.HandleFunc("/clock/start", m.startClock).Methods(http.MethodPost)
	api.HandleFunc("/unit/{index:[0-9]+}", m.unitDetails).
		Methods(http.MethodGet)
	api.HandleFunc("/unit/{index:[0-9]+}/slot/{slot:[0-9]+}", m.startSlot).
		Methods(http.MethodPost)
	api.HandleFunc("/unit/{index:[0-9]+}/ult", m.startUltimate).
		Methods(http.MethodPost)
	api.HandleFunc("/unit/{index:[0-9]+}/modifier/{source}/{state:on|off}",
		m.setModifier).Methods(http.MethodPost)
	api.HandleFunc("/unit/{index:[0-9]+}/level/{level}", m.setLevel).
		Methods(http.MethodPost)
	api.HandleFunc("/unit/{index:[0-9]+}/power/{value}", m.setPowerStat).
		Methods(http.MethodPost)
	api.HandleFunc("/resource", m.listResources).Methods(http.MethodGet)
	api.HandleFunc("/profile", m.collectProfile).Methods(http.MethodGet)

	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts the monitor as a web server in the background.
func (m *Monitor) StartServer() {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.listener = listener
	m.server = &http.Server{
		Handler:           m.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Fprintf(os.Stderr, "Monitoring %s with %s\n",
		m.tracker.Name(), m.URL())

	go func() {
		err := m.server.Serve(listener)
		if !errors.Is(err, http.ErrServerClosed) {
			dieOnErr(err)
		}
	}()
}

// URL returns the address of a started server.
func (m *Monitor) URL() string {
	if m.listener == nil {
		return ""
	}

	return fmt.Sprintf("http://localhost:%d",
		m.listener.Addr().(*net.TCPAddr).Port)
}

// Shutdown stops a started server.
func (m *Monitor) Shutdown(ctx context.Context) error {
	if m.server == nil {
		return nil
	}

	return m.server.Shutdown(ctx)
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	w.WriteHeader(http.StatusOK)
}

type nowRsp struct {
	Now     uint64 `json:"now"`
	Elapsed int    `json:"elapsed"`
	Clock   string `json:"clock"`
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	s := m.tracker.Snapshot()

	writeJSON(w, nowRsp{
		Now:     uint64(m.engine.CurrentTime()),
		Elapsed: s.Elapsed,
		Clock:   s.Clock,
	})
}

func (m *Monitor) state(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, m.tracker.Snapshot())
}

type logRsp struct {
	Log string `json:"log"`
}

func (m *Monitor) logText(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, logRsp{Log: m.tracker.LogText()})
}

func (m *Monitor) startClock(w http.ResponseWriter, _ *http.Request) {
	m.tracker.StartClock()
	writeJSON(w, logRsp{Log: m.tracker.LogText()})
}

func (m *Monitor) unitDetails(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])

	view, err := m.tracker.Unit(index)
	if err != nil {
		writeError(w, err)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&view)
	serializer.SetMaxDepth(3)

	w.Header().Set("Content-Type", "application/json")
	dieOnErr(serializer.Serialize(w))
}

type startRsp struct {
	Token tracker.Token `json:"token"`
	Log   string        `json:"log"`
}

func (m *Monitor) startSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, _ := strconv.Atoi(vars["index"])
	n, _ := strconv.Atoi(vars["slot"])

	slot, err := tracker.SlotFromNumber(n)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := m.tracker.StartSlot(index, slot)
	m.writeStart(w, token, err)
}

func (m *Monitor) startUltimate(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])

	token, err := m.tracker.StartUltimateTimer(index)
	m.writeStart(w, token, err)
}

func (m *Monitor) writeStart(
	w http.ResponseWriter,
	token tracker.Token,
	err error,
) {
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, startRsp{Token: token, Log: m.tracker.LogText()})
}

func (m *Monitor) setModifier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, _ := strconv.Atoi(vars["index"])

	src, err := tracker.ParseModifierSource(vars["source"])
	if err != nil {
		writeError(w, err)
		return
	}

	err = m.tracker.SetModifier(index, src, vars["state"] == "on")
	m.writeUnit(w, index, err)
}

func (m *Monitor) setLevel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, _ := strconv.Atoi(vars["index"])

	level, err := strconv.Atoi(vars["level"])
	if err != nil {
		writeError(w, fmt.Errorf("%w: %q", tracker.ErrInvalidLevel,
			vars["level"]))
		return
	}

	err = m.tracker.SetLevel(index, level)
	m.writeUnit(w, index, err)
}

func (m *Monitor) setPowerStat(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, _ := strconv.Atoi(vars["index"])

	err := m.tracker.SetPowerStatText(index, vars["value"])
	m.writeUnit(w, index, err)
}

func (m *Monitor) writeUnit(w http.ResponseWriter, index int, err error) {
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := m.tracker.Unit(index)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, view)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

type errorRsp struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, tracker.ErrUnknownUnitRef):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrInvalidLevel),
		errors.Is(err, tracker.ErrInvalidPowerStat),
		errors.Is(err, tracker.ErrInvalidSlot),
		errors.Is(err, tracker.ErrInvalidModifierSource):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusOf(err))

	bytes, mErr := json.Marshal(errorRsp{Error: err.Error()})
	dieOnErr(mErr)

	_, wErr := w.Write(bytes)
	dieOnErr(wErr)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
