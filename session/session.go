// Package session wires an engine, a tracker and their observers into one
// tracking session.
package session

import (
	"context"
	"log"
	"sync"

	"github.com/sarchlab/cdtrack/catalog"
	"github.com/sarchlab/cdtrack/config"
	"github.com/sarchlab/cdtrack/datarecording"
	"github.com/sarchlab/cdtrack/monitoring"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracing"
	"github.com/sarchlab/cdtrack/tracker"
)

// A Session owns everything needed to track cooldowns of one game.
type Session struct {
	id     string
	config config.Config

	engine       *sim.SerialEngine
	catalog      *catalog.Table
	tracker      *tracker.Tracker
	driver       *sim.RealTimeDriver
	dataRecorder datarecording.DataRecorder
	dbTracer     *tracing.DBTracer
	monitor      *monitoring.Monitor
	logger       *log.Logger

	terminateOnce sync.Once
}

// ID returns the unique id of the session.
func (s *Session) ID() string {
	return s.id
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.config
}

// GetEngine returns the engine of the session.
func (s *Session) GetEngine() *sim.SerialEngine {
	return s.engine
}

// GetCatalog returns the game data of the session.
func (s *Session) GetCatalog() *catalog.Table {
	return s.catalog
}

// GetTracker returns the tracker of the session.
func (s *Session) GetTracker() *tracker.Tracker {
	return s.tracker
}

// GetDataRecorder returns the recorder, nil if recording is off.
func (s *Session) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor, nil if monitoring is off.
func (s *Session) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// Advance runs the engine n game seconds forward without waiting for the
// wall clock.
func (s *Session) Advance(n int) error {
	return s.engine.RunUntil(s.engine.CurrentTime() + sim.VTimeInSec(n))
}

// AdvanceTo runs the engine to an absolute engine time.
func (s *Session) AdvanceTo(t sim.VTimeInSec) error {
	return s.engine.RunUntil(t)
}

// Run drives the session in real time until the context is done.
func (s *Session) Run(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Printf("session %s running, one game second every %s",
			s.id, s.driver.Interval())
	}

	return s.driver.Run(ctx)
}

// Terminate flushes the recorder and stops the monitor. It is safe to call
// more than once.
func (s *Session) Terminate() {
	s.terminateOnce.Do(func() {
		s.engine.Finished()

		if s.dbTracer != nil {
			s.dbTracer.Terminate()
		}

		if s.dataRecorder != nil {
			if err := s.dataRecorder.Close(); err != nil && s.logger != nil {
				s.logger.Printf("closing recorder: %v", err)
			}
		}

		if s.monitor != nil {
			_ = s.monitor.Shutdown(context.Background())
		}
	})
}
