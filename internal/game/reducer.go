package game

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Reducer computes the next snapshot from the current one and a command.
// Apart from pipe heights drawn from the injected Rand, every transition is
// a pure function of its inputs. A Reducer is not safe for concurrent use;
// Store serialises access.
type Reducer struct {
	cfg config.FlappyConfig
	rng Rand
}

// NewReducer creates a reducer with the given configuration and random source.
func NewReducer(cfg config.FlappyConfig, rng Rand) *Reducer {
	return &Reducer{cfg: cfg, rng: rng}
}

// Config returns the reducer configuration.
func (r *Reducer) Config() config.FlappyConfig {
	return r.cfg
}

// Initial returns the session-start layout carrying over the given best score.
func (r *Reducer) Initial(bestScore int) ViewState {
	geo := PlaceholderGeometry(r.cfg)
	return ViewState{
		Status: StatusWaiting,
		Bird:   NewBird(geo),
		Pipes: [2]PipeCouple{
			NewPipeCouple(geo, geo.FirstPipe, r.rng),
			NewPipeCouple(geo, geo.SecondPipe, r.rng),
		},
		TargetPipe: NoIndex,
		Roads: [2]Road{
			{Offset: 0},
			{Offset: geo.RoadSegment},
		},
		TargetRoad: NoIndex,
		Geometry:   geo,
		BestScore:  bestScore,
	}
}

// Reduce applies one command. Out-of-range indices are caller bugs and panic.
func (r *Reducer) Reduce(s ViewState, cmd Command) ViewState {
	if cmd.PipeIndex != NoIndex {
		mustIndex("pipe", cmd.PipeIndex)
		s.TargetPipe = cmd.PipeIndex
	}
	if cmd.RoadIndex != NoIndex {
		mustIndex("road", cmd.RoadIndex)
		s.TargetRoad = cmd.RoadIndex
	}

	phys := r.cfg.Physics

	switch cmd.Action {
	case ActionStart:
		if s.Status == StatusWaiting {
			s.Status = StatusRunning
		}
		return s

	case ActionAutoTick:
		switch s.Status {
		case StatusWaiting, StatusOver:
			return s
		case StatusDying:
			s.Bird = s.Bird.QuickFall(phys.QuickFallVelocity())
			return s
		}
		s.Pipes[0] = s.Pipes[0].Move(phys.PipeVelocity)
		s.Pipes[1] = s.Pipes[1].Move(phys.PipeVelocity)
		s.Bird = s.Bird.Fall(phys.FallVelocity)
		s.Roads[0] = s.Roads[0].Move(phys.RoadVelocity)
		s.Roads[1] = s.Roads[1].Move(phys.RoadVelocity)
		s.Status = StatusRunning
		return s

	case ActionTouchLift:
		if s.Status == StatusOver || s.Status == StatusDying {
			return s
		}
		s.Bird = s.Bird.Lift(phys.LiftVelocity())
		s.Status = StatusRunning
		return s

	case ActionScreenSizeDetect:
		// Only the first valid measurement converts placeholder dimensions.
		if s.Viewport.Known() || !cmd.Viewport.Known() {
			return s
		}
		geo := NewGeometry(r.cfg, cmd.Viewport)
		s.Viewport = cmd.Viewport
		s.Geometry = geo
		s.Pipes[0] = s.Pipes[0].Correct(geo, r.rng)
		s.Pipes[1] = s.Pipes[1].Correct(geo, r.rng)
		s.Bird = s.Bird.Correct(geo)
		// Nothing has scrolled yet, so the second couple can move to half
		// of the measured cycle without losing progress.
		if s.Status == StatusWaiting {
			s.Pipes[1].Offset = s.Pipes[0].Offset + geo.Cycle/2
		}
		return s

	case ActionPipeExit:
		i := mustIndex("pipe", s.TargetPipe)
		s.Pipes[i] = s.Pipes[i].Reset(s.Geometry, r.rng)
		s.Status = StatusRunning
		return s

	case ActionRoadExit:
		i := mustIndex("road", s.TargetRoad)
		s.Roads[i] = s.Roads[i].Reset(s.Geometry)
		s.Status = StatusRunning
		return s

	case ActionHitGround:
		s.Status = StatusOver
		return s

	case ActionHitPipe:
		if s.Status == StatusDying {
			return s
		}
		s.Bird = s.Bird.QuickFall(phys.QuickFallVelocity())
		s.Status = StatusDying
		return s

	case ActionCrossedPipe:
		i := mustIndex("pipe", s.TargetPipe)
		pipe := s.Pipes[i]
		// A couple that was reset before this signal arrived is back at a
		// positive offset and must not score.
		if pipe.Counted || pipe.Offset > 0 {
			return s
		}
		s.Pipes[i] = pipe.Count()
		s.Score++
		s.BestScore = max(s.BestScore, s.Score)
		return s

	case ActionRestart:
		return r.Initial(s.BestScore)
	}

	panic(fmt.Sprintf("game: unknown action %d", int(cmd.Action)))
}

func mustIndex(kind string, i int) int {
	if i != 0 && i != 1 {
		panic(fmt.Sprintf("game: %s index %d out of range", kind, i))
	}
	return i
}
