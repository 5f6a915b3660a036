package tetris

// ShiftRepeat implements delayed-auto-shift for one horizontal direction:
// an immediate step on press, nothing until the DAS window elapses, then
// repeated steps at the ARR interval (0 = one step per tick). The engine
// owns two instances, one per direction, advanced independently.
//
// Timers are milliseconds of simulated time; blocked steps are the
// caller's problem - the machine keeps counting so the piece resumes
// sliding the moment space opens up.

type shiftState int8

const (
	shiftIdle      shiftState = iota // key not held
	shiftCharging                    // held, initial step fired, DAS pending
	shiftRepeating                   // DAS elapsed, stepping at ARR
)

// ShiftRepeat is the per-direction auto-shift state machine.
type ShiftRepeat struct {
	state       shiftState
	heldMs      float64 // time since press
	sinceStepMs float64 // time since the last ARR step
}

// Press registers the key-down edge and returns the number of immediate
// steps to apply (always 1). A press while already held restarts the
// machine, matching a release the platform failed to deliver.
func (sr *ShiftRepeat) Press() int {
	sr.state = shiftCharging
	sr.heldMs = 0
	sr.sinceStepMs = 0
	return 1
}

// Release returns the machine to idle. No steps are emitted until the next
// press.
func (sr *ShiftRepeat) Release() {
	sr.state = shiftIdle
	sr.heldMs = 0
	sr.sinceStepMs = 0
}

// Held reports whether the key is currently considered held.
func (sr *ShiftRepeat) Held() bool {
	return sr.state != shiftIdle
}

// Tick advances the machine by dtMs and returns how many steps to apply
// this tick. dasMs and arrMs come from the tuning snapshot; both are
// already clamped to >= 0 by the caller.
func (sr *ShiftRepeat) Tick(dtMs, dasMs, arrMs float64) int {
	if sr.state == shiftIdle {
		return 0
	}

	sr.heldMs += dtMs
	steps := 0

	if sr.state == shiftCharging {
		if sr.heldMs < dasMs {
			return 0
		}
		// DAS expired: one step now, repeat phase starts fresh.
		sr.state = shiftRepeating
		sr.sinceStepMs = 0
		return 1
	}

	// Repeating: ARR 0 glides one step every tick.
	if arrMs <= 0 {
		return 1
	}

	sr.sinceStepMs += dtMs
	for sr.sinceStepMs >= arrMs {
		sr.sinceStepMs -= arrMs
		steps++
	}
	return steps
}
