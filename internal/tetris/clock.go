package tetris

import "time"

// Clock converts variable real-time deltas into a whole number of
// fixed-size simulation steps, carrying the fractional remainder forward.
// The presentation loop can stutter or race; the simulation only ever sees
// identical steps, which is what keeps replays bit-identical.
type Clock struct {
	stepMs float64
	accMs  float64
}

// NewClock creates a clock stepping at the given tick rate (steps/second).
// Non-positive rates fall back to 60.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{stepMs: 1000.0 / float64(tickRate)}
}

// StepMs returns the fixed step size in milliseconds.
func (c *Clock) StepMs() float64 {
	return c.stepMs
}

// Advance adds elapsed real time and returns how many fixed steps the
// simulation should run now. Leftover time stays accumulated. Pausing is
// modeled by simply not calling Advance.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	c.accMs += float64(elapsed) / float64(time.Millisecond)

	steps := 0
	for c.accMs >= c.stepMs {
		c.accMs -= c.stepMs
		steps++
	}
	return steps
}

// Reset drops any accumulated fractional time.
func (c *Clock) Reset() {
	c.accMs = 0
}
