package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the hardcoded configuration.
// Values match the embedded defaults/flappy.yaml.
func Default() FlappyConfig {
	return FlappyConfig{
		Physics: PhysicsConfig{
			FallVelocity:    8,
			QuickFallFactor: 4,
			LiftFactor:      8,
			PipeVelocity:    8,
			RoadVelocity:    10,
		},
		Pipes: PipesConfig{
			CoverWidth:     60,
			CoverHeight:    30,
			ResetThreshold: 0,
			MinFraction:    0.15,
			CenterFraction: 0.35,
			MaxFraction:    0.6,
			GapFraction:    0.22,
		},
		Bird: BirdConfig{
			GapFraction: 0.35,
			Aspect:      1.44,
		},
		Road: RoadConfig{
			SegmentWidth: 300,
		},
		Viewport: ViewportConfig{
			Width:  412,
			Height: 660,
		},
		Session: SessionConfig{
			TickMillis: 50,
		},
		Terminal: TerminalConfig{
			ColUnits:   12,
			RowUnits:   28,
			GroundRows: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
