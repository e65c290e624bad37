package core

// Intent is a player request, abstracted from physical keys.
type Intent int

const (
	IntentNone    Intent = iota
	IntentFlap           // Space, Up, W, Enter: start or lift
	IntentRestart        // R: new run after game over
	IntentHelp           // ?: toggle the full help
	IntentQuit           // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentFlap:
		return "Flap"
	case IntentRestart:
		return "Restart"
	case IntentHelp:
		return "Help"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
