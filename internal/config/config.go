// Package config provides YAML-based configuration loading for the flappy
// simulation core and its terminal shell.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Pipes    PipesConfig    `yaml:"pipes"`
	Bird     BirdConfig     `yaml:"bird"`
	Road     RoadConfig     `yaml:"road"`
	Viewport ViewportConfig `yaml:"viewport"`
	Session  SessionConfig  `yaml:"session"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// PhysicsConfig defines per-tick velocities, in length units.
type PhysicsConfig struct {
	FallVelocity    float64 `yaml:"fall_velocity"`
	QuickFallFactor float64 `yaml:"quick_fall_factor"` // Multiplier of FallVelocity while dying
	LiftFactor      float64 `yaml:"lift_factor"`       // Multiplier of FallVelocity per tap
	PipeVelocity    float64 `yaml:"pipe_velocity"`
	RoadVelocity    float64 `yaml:"road_velocity"`
}

// PipesConfig defines pipe couple dimensions.
// Fractions are relative to the play zone height.
type PipesConfig struct {
	CoverWidth     float64 `yaml:"cover_width"`
	CoverHeight    float64 `yaml:"cover_height"`
	ResetThreshold float64 `yaml:"reset_threshold"`
	MinFraction    float64 `yaml:"min_fraction"`
	CenterFraction float64 `yaml:"center_fraction"`
	MaxFraction    float64 `yaml:"max_fraction"`
	GapFraction    float64 `yaml:"gap_fraction"`
}

// BirdConfig defines bird size relative to the pipe gap.
type BirdConfig struct {
	GapFraction float64 `yaml:"gap_fraction"`
	Aspect      float64 `yaml:"aspect"` // Width / height
}

// RoadConfig defines the scrolling ground segments.
type RoadConfig struct {
	SegmentWidth float64 `yaml:"segment_width"`
}

// ViewportConfig is the placeholder zone used until the real size is measured.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig controls the tick source.
type SessionConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TerminalConfig maps terminal cells to length units.
type TerminalConfig struct {
	ColUnits   float64 `yaml:"col_units"`
	RowUnits   float64 `yaml:"row_units"`
	GroundRows int     `yaml:"ground_rows"`
}

// TickPeriod returns the session tick period.
func (c FlappyConfig) TickPeriod() time.Duration {
	return time.Duration(c.Session.TickMillis) * time.Millisecond
}

// QuickFallVelocity returns the per-tick descent while dying.
func (p PhysicsConfig) QuickFallVelocity() float64 {
	return p.FallVelocity * p.QuickFallFactor
}

// LiftVelocity returns the per-tap ascent.
func (p PhysicsConfig) LiftVelocity() float64 {
	return p.FallVelocity * p.LiftFactor
}

// Validate reports the first invalid setting.
func (c FlappyConfig) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"physics.fall_velocity", c.Physics.FallVelocity},
		{"physics.quick_fall_factor", c.Physics.QuickFallFactor},
		{"physics.lift_factor", c.Physics.LiftFactor},
		{"physics.pipe_velocity", c.Physics.PipeVelocity},
		{"physics.road_velocity", c.Physics.RoadVelocity},
		{"pipes.cover_width", c.Pipes.CoverWidth},
		{"bird.aspect", c.Bird.Aspect},
		{"road.segment_width", c.Road.SegmentWidth},
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"terminal.col_units", c.Terminal.ColUnits},
		{"terminal.row_units", c.Terminal.RowUnits},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.val)
		}
	}

	fractions := []struct {
		name string
		val  float64
	}{
		{"pipes.min_fraction", c.Pipes.MinFraction},
		{"pipes.center_fraction", c.Pipes.CenterFraction},
		{"pipes.max_fraction", c.Pipes.MaxFraction},
		{"pipes.gap_fraction", c.Pipes.GapFraction},
		{"bird.gap_fraction", c.Bird.GapFraction},
	}
	for _, f := range fractions {
		if f.val <= 0 || f.val >= 1 {
			return fmt.Errorf("config: %s must be within (0, 1), got %v", f.name, f.val)
		}
	}

	if c.Pipes.MinFraction > c.Pipes.MaxFraction {
		return errors.New("config: pipes.min_fraction exceeds pipes.max_fraction")
	}
	if c.Pipes.MaxFraction+c.Pipes.GapFraction >= 1 {
		return errors.New("config: pipes.max_fraction + pipes.gap_fraction must stay below 1")
	}
	if c.Pipes.ResetThreshold < 0 {
		return fmt.Errorf("config: pipes.reset_threshold must not be negative, got %v", c.Pipes.ResetThreshold)
	}
	if c.Session.TickMillis <= 0 {
		return fmt.Errorf("config: session.tick_ms must be positive, got %d", c.Session.TickMillis)
	}
	if c.Terminal.GroundRows < 1 {
		return fmt.Errorf("config: terminal.ground_rows must be at least 1, got %d", c.Terminal.GroundRows)
	}
	return nil
}
