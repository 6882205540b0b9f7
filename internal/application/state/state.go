// Package state tracks whether the sandbox is advancing the simulation.
package state

// SimState represents the run state of the simulation viewer
type SimState int

const (
	StateRunning SimState = iota
	StatePaused
	StateGameOver
	StateReplayDone
)

// String returns the string representation of the state
func (s SimState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Clock decides, frame by frame, whether the simulation ticks. Hitstop
// freezes a running clock for a number of frames; single steps advance a
// paused one.
type Clock struct {
	state   SimState
	hitstop int
	steps   int
}

// NewClock creates a running clock
func NewClock() *Clock {
	return &Clock{state: StateRunning}
}

// State returns the current state
func (c *Clock) State() SimState {
	return c.state
}

// TogglePause switches between running and paused. Terminal states ignore it.
func (c *Clock) TogglePause() {
	switch c.state {
	case StateRunning:
		c.state = StatePaused
	case StatePaused:
		c.state = StateRunning
		c.steps = 0
	}
}

// RequestStep queues one tick while paused
func (c *Clock) RequestStep() {
	if c.state == StatePaused {
		c.steps++
	}
}

// Hitstop freezes the clock for the given number of frames. A longer
// pending freeze is kept.
func (c *Clock) Hitstop(frames int) {
	if frames > c.hitstop {
		c.hitstop = frames
	}
}

// Tick reports whether the simulation should step this frame
func (c *Clock) Tick() bool {
	switch c.state {
	case StateRunning:
		if c.hitstop > 0 {
			c.hitstop--
			return false
		}
		return true
	case StatePaused:
		if c.steps > 0 {
			c.steps--
			return true
		}
	}
	return false
}

// End moves the clock to a terminal state
func (c *Clock) End(s SimState) {
	c.state = s
	c.hitstop = 0
	c.steps = 0
}

// Reset returns the clock to running
func (c *Clock) Reset() {
	*c = Clock{state: StateRunning}
}
