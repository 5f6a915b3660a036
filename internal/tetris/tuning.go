package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Tuning is the live-adjustable feel configuration. An external settings
// surface may replace it between ticks; the engine copies it exactly once
// at the start of each Step, so a mid-tick change can never tear timing
// math.
type Tuning struct {
	DASMs         float64 // delay before auto-shift kicks in
	ARRMs         float64 // interval between auto-shift steps, 0 = per tick
	LockDelayMs   float64 // grace period for a grounded piece
	GravityMult   float64 // multiplier on the level gravity curve
	SoftDropMult  float64 // multiplier on soft-drop descent speed
	AvoidSZOFirst bool    // forbid S/Z/O as the opening piece
}

// DefaultTuning returns the classic feel.
func DefaultTuning() Tuning {
	return Tuning{
		DASMs:         170,
		ARRMs:         30,
		LockDelayMs:   500,
		GravityMult:   1.0,
		SoftDropMult:  1.0,
		AvoidSZOFirst: true,
	}
}

// Clamped returns a copy with every field forced into its sane range.
// Out-of-range values are a configuration mistake, not an error: negative
// delays become 0 and the multipliers keep the gravity math finite.
func (t Tuning) Clamped() Tuning {
	t.DASMs = core.ClampF(t.DASMs, 0, 2000)
	t.ARRMs = core.ClampF(t.ARRMs, 0, 1000)
	t.LockDelayMs = core.ClampF(t.LockDelayMs, 0, 5000)
	t.GravityMult = core.ClampF(t.GravityMult, 0.1, 10)
	t.SoftDropMult = core.ClampF(t.SoftDropMult, 0.1, 10)
	return t
}

// Gravity curve constants: 1 s per row at level 0, 60 ms faster per level,
// never quicker than 60 ms per row.
const (
	gravityBaseMs  = 1000.0
	gravityStepMs  = 60.0
	gravityFloorMs = 60.0
)

// softDropIntervalMs is the per-row descent interval while soft drop is
// held at multiplier 1. It is capped by gravity: soft drop never slows a
// piece down.
const softDropIntervalMs = 50.0

// gravityIntervalMs returns the milliseconds between gravity rows for the
// given level and multiplier.
func gravityIntervalMs(level int, mult float64) float64 {
	iv := (gravityBaseMs - float64(level)*gravityStepMs) / mult
	if iv < gravityFloorMs {
		return gravityFloorMs
	}
	return iv
}
