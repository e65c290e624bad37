package core

// Color is a palette role for a screen cell. The platform layer maps each
// role to a terminal color.
type Color uint8

const (
	ColorSky Color = iota
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBirdDead
	ColorRoad
	ColorGround
	ColorText
	ColorScore
	ColorBoard
)

// String returns a human-readable name for the color role.
func (c Color) String() string {
	switch c {
	case ColorSky:
		return "Sky"
	case ColorPipe:
		return "Pipe"
	case ColorPipeCap:
		return "PipeCap"
	case ColorBird:
		return "Bird"
	case ColorBirdDead:
		return "BirdDead"
	case ColorRoad:
		return "Road"
	case ColorGround:
		return "Ground"
	case ColorText:
		return "Text"
	case ColorScore:
		return "Score"
	case ColorBoard:
		return "Board"
	default:
		return "Unknown"
	}
}
