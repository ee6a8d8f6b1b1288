package tracker

import "fmt"

// GameClock counts whole seconds of game time once started.
type GameClock struct {
	elapsed int
	running bool
}

// Start makes the clock run and reports whether it was idle before.
func (c *GameClock) Start() bool {
	if c.running {
		return false
	}

	c.running = true

	return true
}

// Tick advances a running clock by one second and reports whether it did.
func (c *GameClock) Tick() bool {
	if !c.running {
		return false
	}

	c.elapsed++

	return true
}

// Elapsed returns the game time in seconds.
func (c *GameClock) Elapsed() int {
	return c.elapsed
}

// Running tells if the clock has been started.
func (c *GameClock) Running() bool {
	return c.running
}

// Reset stops the clock and sets it back to 0.
func (c *GameClock) Reset() {
	c.elapsed = 0
	c.running = false
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
