package sim

import (
	"context"
	"time"
)

// A TimedEngine is an engine that can be driven forward to a given time.
type TimedEngine interface {
	TimeTeller
	RunUntil(t VTimeInSec) error
}

// RealTimeDriver advances an engine by one simulated second every time a
// wall-clock interval elapses.
type RealTimeDriver struct {
	engine   TimedEngine
	interval time.Duration
}

// NewRealTimeDriver creates a driver that advances the engine once per
// interval. A non-positive interval means one second.
func NewRealTimeDriver(engine TimedEngine, interval time.Duration) *RealTimeDriver {
	if interval <= 0 {
		interval = time.Second
	}

	return &RealTimeDriver{
		engine:   engine,
		interval: interval,
	}
}

// Interval returns the wall-clock duration of one simulated second.
func (d *RealTimeDriver) Interval() time.Duration {
	return d.interval
}

// Run blocks and drives the engine until the context is done or an event
// handler fails. A cancelled context is not reported as an error.
func (d *RealTimeDriver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			next := d.engine.CurrentTime() + 1
			if err := d.engine.RunUntil(next); err != nil {
				return err
			}
		}
	}
}
