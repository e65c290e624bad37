package game

// Bird tilt angles in degrees, chosen by renderers from the game status.
const (
	TiltPending = 0.0
	TiltLifting = -10.0
	TiltFalling = -TiltLifting
	TiltDying   = TiltFalling + 10
	TiltDead    = TiltDying - 10
)

// Bird is the player's vertical state.
// Offset is measured from the zone's vertical center, positive downward.
type Bird struct {
	Offset  float64
	Lifting bool
	Width   float64
	Height  float64
}

// NewBird returns a bird hovering at the zone center.
func NewBird(geo Geometry) Bird {
	return Bird{Width: geo.BirdWidth, Height: geo.BirdHeight}
}

// Lift moves the bird up by one tap.
func (b Bird) Lift(v float64) Bird {
	b.Offset -= v
	b.Lifting = true
	return b
}

// Fall moves the bird down by one tick.
func (b Bird) Fall(v float64) Bird {
	b.Offset += v
	b.Lifting = false
	return b
}

// QuickFall moves the bird down at the dying velocity.
func (b Bird) QuickFall(v float64) Bird {
	b.Offset += v
	return b
}

// Correct resizes the bird for the measured zone; the offset is kept.
func (b Bird) Correct(geo Geometry) Bird {
	b.Width = geo.BirdWidth
	b.Height = geo.BirdHeight
	return b
}

// Top returns the bird's top edge in zone coordinates (0 = zone top).
func (b Bird) Top(zoneHeight float64) float64 {
	return (zoneHeight-b.Height)/2 + b.Offset
}

// Bottom returns the bird's bottom edge in zone coordinates.
func (b Bird) Bottom(zoneHeight float64) float64 {
	return (zoneHeight+b.Height)/2 + b.Offset
}
