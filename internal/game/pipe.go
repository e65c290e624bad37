package game

// PipeCouple is a vertically paired upper/lower obstacle.
// Offset is horizontal and relative to the zone's right edge: the couple's
// right side sits at zone.Width + Offset.
type PipeCouple struct {
	Offset      float64
	UpperHeight float64
	LowerHeight float64
	Counted     bool
}

// NewPipeCouple creates a couple at the given offset with a random height.
func NewPipeCouple(geo Geometry, offset float64, r Rand) PipeCouple {
	p := PipeCouple{Offset: offset}
	return p.redraw(geo, r)
}

// Move scrolls the couple left by one tick.
func (p PipeCouple) Move(v float64) PipeCouple {
	p.Offset -= v
	return p
}

// Count marks the couple as scored.
func (p PipeCouple) Count() PipeCouple {
	p.Counted = true
	return p
}

// Reset returns the couple to the start of the cycle with a new height.
func (p PipeCouple) Reset(geo Geometry, r Rand) PipeCouple {
	p.Offset = geo.FirstPipe
	p.Counted = false
	return p.redraw(geo, r)
}

// Correct redraws heights for the measured zone; the offset is kept so
// horizontal progress is not lost.
func (p PipeCouple) Correct(geo Geometry, r Rand) PipeCouple {
	return p.redraw(geo, r)
}

func (p PipeCouple) redraw(geo Geometry, r Rand) PipeCouple {
	lo, hi := geo.UpperHeightRange()
	p.UpperHeight = float64(intRange(r, lo, hi))
	p.LowerHeight = geo.LowerHeight(p.UpperHeight)
	return p
}

// Left returns the couple's left edge in zone coordinates.
func (p PipeCouple) Left(geo Geometry) float64 {
	return geo.Zone.Width + p.Offset - geo.PipeWidth
}

// Right returns the couple's right (trailing) edge in zone coordinates.
func (p PipeCouple) Right(geo Geometry) float64 {
	return geo.Zone.Width + p.Offset
}
