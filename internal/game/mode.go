package game

// Mode is the current state-machine state governing which behaviors run.
// Only ModePlaying advances the simulation; only ModePlaying turns the
// activate event into an impulse.
type Mode int

const (
	ModeSplash Mode = iota
	ModeMenu
	ModeTutorial
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModeMenu:
		return "menu"
	case ModeTutorial:
		return "tutorial"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}
