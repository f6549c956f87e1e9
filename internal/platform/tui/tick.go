// Package tui provides the Bubble Tea integration for skyglide.
// It handles the terminal UI loop, input mapping, and persistence wiring.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock instant of one frame of the game loop.
// The model diffs consecutive instants to feed real elapsed time into the
// simulation.
type TickMsg time.Time

// tickCmd schedules the next frame. Rates outside a sane range fall back to
// 60Hz so a bad --fps value cannot stall or spin the loop.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 || tickRate > 240 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
