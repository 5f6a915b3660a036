package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Feel: FeelConfig{
			DASMs:        170,
			ARRMs:        30,
			LockDelayMs:  500,
			GravityMult:  1.0,
			SoftDropMult: 1.0,
		},
		Randomizer: RandomizerConfig{
			AvoidSZOFirst: true,
			Seed:          0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for the config dump
// command.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
