package game

import (
	"time"

	"github.com/okarpov/skyglide/internal/core"
)

// Skin identifies the craft's color scheme.
type Skin int

const (
	SkinRed Skin = iota
	SkinBlue
	SkinGold
	SkinMystery
)

// AllSkins lists every selectable skin in menu order.
var AllSkins = []Skin{SkinRed, SkinBlue, SkinGold, SkinMystery}

// String returns the persisted identifier for the skin.
func (s Skin) String() string {
	switch s {
	case SkinRed:
		return "red"
	case SkinBlue:
		return "blue"
	case SkinGold:
		return "gold"
	case SkinMystery:
		return "mystery"
	default:
		return "red"
	}
}

// ParseSkin maps a persisted identifier back to a skin.
// Unknown values fall back to the default skin.
func ParseSkin(name string) Skin {
	switch name {
	case "red":
		return SkinRed
	case "blue":
		return SkinBlue
	case "gold":
		return SkinGold
	case "mystery":
		return SkinMystery
	default:
		return SkinRed
	}
}

// Next cycles to the following skin, wrapping around.
func (s Skin) Next() Skin {
	return Skin((int(s) + 1) % len(AllSkins))
}

// mysteryCycle is the hue sequence the mystery skin rotates through.
var mysteryCycle = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// mysteryPeriod is how long each hue in the cycle is held.
const mysteryPeriod = 150 * time.Millisecond

// ColorAt returns the display color for the skin at the given wall-clock
// instant. Fixed skins ignore the time; mystery cycles hues as a pure
// function of it, with no hidden state.
func (s Skin) ColorAt(t time.Duration) core.Color {
	switch s {
	case SkinRed:
		return core.ColorBrightRed
	case SkinBlue:
		return core.ColorBrightBlue
	case SkinGold:
		return core.ColorBrightYellow
	case SkinMystery:
		idx := int(t/mysteryPeriod) % len(mysteryCycle)
		if idx < 0 {
			idx += len(mysteryCycle)
		}
		return mysteryCycle[idx]
	default:
		return core.ColorBrightRed
	}
}
