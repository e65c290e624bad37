// Package game implements the deterministic flappy simulation core.
// A Reducer turns (snapshot, command) into the next snapshot; a Store owns
// the authoritative snapshot and publishes it atomically. Nothing in this
// package touches the terminal.
package game

import "fmt"

// Status is the game state machine position.
type Status int

const (
	StatusWaiting Status = iota // Idle, waiting for the first tap
	StatusRunning
	StatusDying // Hit a pipe, quick-falling toward the ground
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "Waiting"
	case StatusRunning:
		return "Running"
	case StatusDying:
		return "Dying"
	case StatusOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Action is a user, timer or view event fed to the reducer.
type Action int

const (
	ActionStart Action = iota
	ActionAutoTick
	ActionTouchLift
	ActionScreenSizeDetect
	ActionPipeExit
	ActionRoadExit
	ActionHitPipe
	ActionHitGround
	ActionCrossedPipe
	ActionRestart
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionAutoTick:
		return "AutoTick"
	case ActionTouchLift:
		return "TouchLift"
	case ActionScreenSizeDetect:
		return "ScreenSizeDetect"
	case ActionPipeExit:
		return "PipeExit"
	case ActionRoadExit:
		return "RoadExit"
	case ActionHitPipe:
		return "HitPipe"
	case ActionHitGround:
		return "HitGround"
	case ActionCrossedPipe:
		return "CrossedPipe"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// NoIndex marks an absent pipe or road index.
const NoIndex = -1

// Command is an action plus its optional arguments.
type Command struct {
	Action    Action
	Viewport  Size // Zero when absent
	PipeIndex int  // NoIndex when absent
	RoadIndex int  // NoIndex when absent
}

// NewCommand creates a command with no arguments.
func NewCommand(a Action) Command {
	return Command{Action: a, PipeIndex: NoIndex, RoadIndex: NoIndex}
}

// WithViewport attaches a measured viewport size.
func (c Command) WithViewport(width, height float64) Command {
	c.Viewport = Size{Width: width, Height: height}
	return c
}

// WithPipe attaches a target pipe couple index.
func (c Command) WithPipe(i int) Command {
	c.PipeIndex = i
	return c
}

// WithRoad attaches a target road segment index.
func (c Command) WithRoad(i int) Command {
	c.RoadIndex = i
	return c
}

// String formats the command for logs.
func (c Command) String() string {
	s := c.Action.String()
	if c.Viewport.Known() {
		s += fmt.Sprintf(" size=%.0fx%.0f", c.Viewport.Width, c.Viewport.Height)
	}
	if c.PipeIndex != NoIndex {
		s += fmt.Sprintf(" pipe=%d", c.PipeIndex)
	}
	if c.RoadIndex != NoIndex {
		s += fmt.Sprintf(" road=%d", c.RoadIndex)
	}
	return s
}

// ViewState is an immutable point-in-time snapshot of the whole game.
// The reducer always returns a new value; fields are never mutated in place
// on a published snapshot.
type ViewState struct {
	Status Status
	Bird   Bird

	Pipes      [2]PipeCouple
	TargetPipe int // Couple last flagged for reset or scoring

	Roads      [2]Road
	TargetRoad int // Segment last flagged for reset

	Viewport Size     // Zero until first measured
	Geometry Geometry // Placeholder until Viewport is known

	Score     int
	BestScore int
}

// IsLifting reports whether the bird was just lifted while running.
func (s ViewState) IsLifting() bool {
	return s.Status == StatusRunning && s.Bird.Lifting
}

// IsFalling reports whether the bird is falling normally.
func (s ViewState) IsFalling() bool {
	return s.Status == StatusRunning && !s.Bird.Lifting
}

// IsQuickFalling reports whether the bird is dying.
func (s ViewState) IsQuickFalling() bool {
	return s.Status == StatusDying
}

// IsOver reports whether the run has ended.
func (s ViewState) IsOver() bool {
	return s.Status == StatusOver
}

// BirdTilt returns the bird's rotation in degrees for renderers.
func (s ViewState) BirdTilt() float64 {
	switch {
	case s.IsLifting():
		return TiltLifting
	case s.IsFalling():
		return TiltFalling
	case s.IsQuickFalling():
		return TiltDying
	case s.IsOver():
		return TiltDead
	default:
		return TiltPending
	}
}
