package game

// Road is one of two scrolling ground segments.
type Road struct {
	Offset float64
}

// Move scrolls the segment left by one tick.
func (r Road) Move(v float64) Road {
	r.Offset -= v
	return r
}

// Reset puts the segment back at the trailing position.
func (r Road) Reset(geo Geometry) Road {
	r.Offset = geo.RoadSegment
	return r
}
