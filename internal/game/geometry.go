package game

import "github.com/vovakirdan/tui-flappy/internal/config"

// Size is a viewport size in length units.
type Size struct {
	Width  float64
	Height float64
}

// Known reports whether both dimensions are positive.
func (s Size) Known() bool {
	return s.Width > 0 && s.Height > 0
}

// Geometry holds every size-derived constant of the play zone.
// It is computed once from the zone height and never mutated.
type Geometry struct {
	Zone Size

	// Pipe couples
	PipeWidth      float64 // Cover width, the widest part of a pipe
	CapHeight      float64
	HighPipe       float64 // Upper bound for a random upper-pipe height
	MiddlePipe     float64
	LowPipe        float64 // Lower bound for a random upper-pipe height
	Gap            float64 // Vertical distance between upper and lower pipe
	FirstPipe      float64 // Start-cycle offset; every reset returns here
	SecondPipe     float64 // Initial offset of the second couple, half a cycle behind
	ResetThreshold float64
	Cycle          float64 // Distance a couple travels between two resets

	// Bird
	BirdWidth  float64
	BirdHeight float64

	// Road
	RoadSegment float64
}

// NewGeometry derives the geometry for a zone of the given size.
func NewGeometry(cfg config.FlappyConfig, zone Size) Geometry {
	total := zone.Height
	gap := total * cfg.Pipes.GapFraction
	birdH := gap * cfg.Bird.GapFraction
	first := cfg.Pipes.CoverWidth * 2
	// A couple resets to first once it passes -(zone.Width + threshold).
	cycle := zone.Width + first + cfg.Pipes.ResetThreshold

	return Geometry{
		Zone:           zone,
		PipeWidth:      cfg.Pipes.CoverWidth,
		CapHeight:      cfg.Pipes.CoverHeight,
		HighPipe:       total * cfg.Pipes.MaxFraction,
		MiddlePipe:     total * cfg.Pipes.CenterFraction,
		LowPipe:        total * cfg.Pipes.MinFraction,
		Gap:            gap,
		FirstPipe:      first,
		SecondPipe:     first + cycle/2,
		ResetThreshold: cfg.Pipes.ResetThreshold,
		Cycle:          cycle,
		BirdWidth:      birdH * cfg.Bird.Aspect,
		BirdHeight:     birdH,
		RoadSegment:    cfg.Road.SegmentWidth,
	}
}

// PlaceholderGeometry is used until the real viewport has been measured.
func PlaceholderGeometry(cfg config.FlappyConfig) Geometry {
	return NewGeometry(cfg, Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height})
}

// UpperHeightRange returns the inclusive integer range an upper pipe height is drawn from.
func (g Geometry) UpperHeightRange() (lo, hi int) {
	return int(g.LowPipe), int(g.HighPipe)
}

// LowerHeight returns the lower pipe height matching the given upper height.
func (g Geometry) LowerHeight(upper float64) float64 {
	return g.Zone.Height - upper - g.Gap
}
