package game

// PipeStatus classifies the bird's relationship to one pipe couple.
type PipeStatus int

const (
	BirdComing   PipeStatus = iota // Couple still right of the bird
	BirdHit                        // Overlapping horizontally and touching a pipe
	BirdCrossing                   // Overlapping horizontally, inside the gap
	BirdCrossed                    // Couple's trailing edge is left of the bird
)

// String returns a human-readable name for the pipe status.
func (p PipeStatus) String() string {
	switch p {
	case BirdComing:
		return "BirdComing"
	case BirdHit:
		return "BirdHit"
	case BirdCrossing:
		return "BirdCrossing"
	case BirdCrossed:
		return "BirdCrossed"
	default:
		return "Unknown"
	}
}

// ClassifyPipe checks one couple against the bird, which is horizontally
// centered in the zone.
func ClassifyPipe(bird Bird, pipe PipeCouple, geo Geometry) PipeStatus {
	zone := geo.Zone
	birdLeft := (zone.Width - bird.Width) / 2
	birdRight := (zone.Width + bird.Width) / 2

	if pipe.Left(geo) > birdRight {
		return BirdComing
	}
	if pipe.Right(geo) < birdLeft {
		return BirdCrossed
	}

	if bird.Top(zone.Height) < pipe.UpperHeight || bird.Bottom(zone.Height) > zone.Height-pipe.LowerHeight {
		return BirdHit
	}
	return BirdCrossing
}

// groundLimit is the largest offset at which the bird is still above ground.
func groundLimit(bird Bird, geo Geometry) float64 {
	return geo.Zone.Height/2 - bird.Height/2
}

// HitsGround reports whether the bird's lower edge reached the ground.
func HitsGround(bird Bird, geo Geometry) bool {
	return bird.Offset >= groundLimit(bird, geo)
}

// ClampedBirdOffset returns the offset to draw: the bird never appears below
// the ground. The snapshot itself is not changed.
func ClampedBirdOffset(bird Bird, geo Geometry) float64 {
	return min(bird.Offset, groundLimit(bird, geo))
}

// PipeExited reports whether a couple scrolled fully past the left edge.
func PipeExited(pipe PipeCouple, geo Geometry) bool {
	return pipe.Offset < -geo.Zone.Width-geo.ResetThreshold
}

// RoadExited reports whether a road segment scrolled fully off screen.
func RoadExited(road Road, geo Geometry) bool {
	return road.Offset <= -geo.RoadSegment
}

// Evaluate runs the per-tick collision and bookkeeping pass against a
// snapshot and returns the commands to dispatch, in order:
// pipe and road exits, then per-couple hit or crossed, then ground.
// Nothing is evaluated until the viewport is known.
func Evaluate(s ViewState) []Command {
	if !s.Viewport.Known() {
		return nil
	}

	geo := s.Geometry
	var cmds []Command

	switch s.Status {
	case StatusRunning:
		for i, pipe := range s.Pipes {
			if PipeExited(pipe, geo) {
				cmds = append(cmds, NewCommand(ActionPipeExit).WithPipe(i))
			}
		}
		for i, road := range s.Roads {
			if RoadExited(road, geo) {
				cmds = append(cmds, NewCommand(ActionRoadExit).WithRoad(i))
			}
		}
		for i, pipe := range s.Pipes {
			switch ClassifyPipe(s.Bird, pipe, geo) {
			case BirdHit:
				cmds = append(cmds, NewCommand(ActionHitPipe))
			case BirdCrossed:
				cmds = append(cmds, NewCommand(ActionCrossedPipe).WithPipe(i))
			}
		}
	case StatusDying:
	default:
		return nil
	}

	if HitsGround(s.Bird, geo) {
		cmds = append(cmds, NewCommand(ActionHitGround))
	}
	return cmds
}
