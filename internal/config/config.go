// Package config provides YAML-based configuration loading and feel
// presets for the game.
package config

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Feel       FeelConfig       `yaml:"feel"`
	Randomizer RandomizerConfig `yaml:"randomizer"`
}

// FeelConfig defines the handling and timing parameters. All durations are
// milliseconds of simulated time.
type FeelConfig struct {
	DASMs        float64 `yaml:"das_ms"`             // delay before auto-shift starts
	ARRMs        float64 `yaml:"arr_ms"`             // auto-shift repeat interval, 0 = every tick
	LockDelayMs  float64 `yaml:"lock_delay_ms"`      // grace period for a grounded piece
	GravityMult  float64 `yaml:"gravity_multiplier"` // multiplier on the gravity curve
	SoftDropMult float64 `yaml:"soft_drop_multiplier"`
}

// RandomizerConfig defines the piece generator behavior.
type RandomizerConfig struct {
	AvoidSZOFirst bool  `yaml:"avoid_szo_first"` // never open with S, Z or O
	Seed          int64 `yaml:"seed"`            // 0 = use the runtime seed
}
