package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okarpov/skyglide/internal/core"
)

// mapKey translates a key press to a semantic input action.
// Quit keys are handled separately by the model; they never reach the game.
func mapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case " ", "up", "w", "enter":
		return core.ActionActivate
	case "m":
		return core.ActionMute
	case "tab":
		return core.ActionSkinNext
	}
	return core.ActionNone
}

// isQuitKey reports whether the key ends the program.
func isQuitKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return true
	}
	return false
}
