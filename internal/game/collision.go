package game

import (
	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
)

// Collides is the pure collision predicate over the craft box, the active
// obstacle pairs, and the playfield bounds. Banners are deliberately not an
// input: decorations can never end a run. It reports only whether a
// collision occurred, not which obstacle caused it.
func Collides(craft core.RectF, pairs []ObstaclePair, cfg *config.GameConfig) bool {
	// Playfield bounds: top edge above 0 or bottom edge below the floor.
	if craft.Y < 0 || craft.Bottom() > cfg.Playfield.Height {
		return true
	}

	ow := cfg.Obstacles.Width
	for i := range pairs {
		p := &pairs[i]
		body := core.NewRectF(p.X, 0, ow, cfg.Playfield.Height)
		if !craft.OverlapsX(body) {
			continue
		}
		// Inside the pair's horizontal extent: safe only fully within the gap.
		if craft.Y < p.TopHeight || craft.Bottom() > p.BottomY {
			return true
		}
	}
	return false
}
