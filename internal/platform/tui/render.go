package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okarpov/skyglide/internal/core"
)

// ansiPalette fixes the terminal color for every core.Color the game draws
// with. Skins land on the bright entries, obstacles on the green pair,
// banner glow on orange, and the field chrome on gray.
var ansiPalette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildStyles()

func buildStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiPalette))
	for c, code := range ansiPalette {
		if code == "" {
			styles[c] = lipgloss.NewStyle()
			continue
		}
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// styleFor returns the style for a color, falling back to the terminal
// default for anything outside the palette.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen flattens a screen buffer into one styled frame. Cells are
// emitted in same-color runs, so a mostly-empty playfield costs a handful of
// escape sequences per row instead of one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for x < s.Width() && s.GetCell(x, y).Color == color {
				run = append(run, s.GetCell(x, y).Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
