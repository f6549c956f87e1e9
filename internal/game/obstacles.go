package game

import (
	"math/rand"

	"github.com/okarpov/skyglide/internal/config"
)

// ObstaclePair is a vertically-split barrier with a passable gap.
// TopHeight + GapHeight + BottomHeight == playfield height at creation.
type ObstaclePair struct {
	X            float64 // Leading (left) edge, decreasing over time
	TopHeight    float64 // Height of the upper segment; the gap starts here
	GapHeight    float64
	BottomY      float64 // Start of the lower segment
	BottomHeight float64
	Scored       bool    // Monotonic false -> true, never reset
	Rotation     float64 // Cosmetic only
}

// Banner is a decorative element drifting behind the obstacles.
// It never participates in collision.
type Banner struct {
	X, Y    float64
	W, H    float64
	Glow    float64 // Oscillates between 0 and GlowMax
	glowDir float64
}

// Field owns the scrolling obstacle pairs and decorative banners,
// including procedural spawning.
type Field struct {
	cfg     *config.GameConfig
	rng     *rand.Rand
	pairs   []ObstaclePair
	banners []Banner
}

// NewField creates an empty field with the given RNG seed.
func NewField(cfg *config.GameConfig, seed int64) *Field {
	return &Field{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		pairs:   make([]ObstaclePair, 0, 8),
		banners: make([]Banner, 0, 4),
	}
}

// Reset clears all entities and reseeds the RNG for a new run.
func (f *Field) Reset(seed int64) {
	f.pairs = f.pairs[:0]
	f.banners = f.banners[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Clear removes all entities without reseeding.
func (f *Field) Clear() {
	f.pairs = f.pairs[:0]
	f.banners = f.banners[:0]
}

// Pairs returns the active obstacle pairs.
func (f *Field) Pairs() []ObstaclePair {
	return f.pairs
}

// Banners returns the active decorative banners.
func (f *Field) Banners() []Banner {
	return f.banners
}

// Advance moves all obstacle pairs left by speed*dt and spins their
// cosmetic rotation.
func (f *Field) Advance(speed, dt float64) {
	for i := range f.pairs {
		f.pairs[i].X -= speed * dt
		f.pairs[i].Rotation += f.cfg.Obstacles.RotationStep * dt
	}
}

// ScorePassed marks every unscored pair whose trailing edge has passed the
// craft's horizontal position and returns how many were newly scored.
// Each pair scores at most once, ever.
func (f *Field) ScorePassed(craftX float64) int {
	scored := 0
	for i := range f.pairs {
		if !f.pairs[i].Scored && f.pairs[i].X+f.cfg.Obstacles.Width < craftX {
			f.pairs[i].Scored = true
			scored++
		}
	}
	return scored
}

// RemoveOffscreen drops obstacle pairs that crossed the off-screen threshold.
func (f *Field) RemoveOffscreen() {
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if p.X+f.cfg.Obstacles.Width > f.cfg.Obstacles.Offscreen {
			kept = append(kept, p)
		}
	}
	f.pairs = kept
}

// AdvanceBanners moves banners at their reduced speed, updates the bouncing
// glow, and drops banners past their own (more negative) threshold.
func (f *Field) AdvanceBanners(speed, dt float64) {
	b := f.cfg.Banners
	kept := f.banners[:0]
	for i := range f.banners {
		bn := f.banners[i]
		bn.X -= speed * b.SpeedFactor * dt

		bn.Glow += bn.glowDir * b.GlowStep * dt
		if bn.Glow >= b.GlowMax {
			bn.Glow = b.GlowMax
			bn.glowDir = -1
		} else if bn.Glow <= 0 {
			bn.Glow = 0
			bn.glowDir = 1
		}

		if bn.X+bn.W > b.Offscreen {
			kept = append(kept, bn)
		}
	}
	f.banners = kept
}

// SpawnIfNeeded creates a new obstacle pair once the newest pair has
// travelled the spacing distance from the right edge (or none exist).
// gapFrac is the current difficulty gap as a fraction of playfield height.
func (f *Field) SpawnIfNeeded(gapFrac float64) {
	w := f.cfg.Playfield.Width
	if len(f.pairs) > 0 && f.pairs[len(f.pairs)-1].X >= w-f.cfg.Obstacles.Spacing {
		return
	}
	f.spawn(gapFrac)
}

// spawn creates one pair at the right edge, and with probability
// Banners.Frequency one banner centered on the gap's vertical midpoint.
func (f *Field) spawn(gapFrac float64) {
	h := f.cfg.Playfield.Height
	margin := f.cfg.Playfield.EdgeMargin

	gapHeight := h * gapFrac

	// Keep both segments at least margin tall.
	low := margin
	high := h - gapHeight - margin
	if high < low {
		high = low // Degenerate config; pin the gap below the top margin
	}
	gapY := low
	if high > low {
		gapY = low + f.rng.Float64()*(high-low)
	}

	pair := ObstaclePair{
		X:            f.cfg.Playfield.Width,
		TopHeight:    gapY,
		GapHeight:    gapHeight,
		BottomY:      gapY + gapHeight,
		BottomHeight: h - gapY - gapHeight,
	}
	f.pairs = append(f.pairs, pair)

	if f.rng.Float64() < f.cfg.Banners.Frequency {
		b := f.cfg.Banners
		f.banners = append(f.banners, Banner{
			X:       pair.X + f.cfg.Obstacles.Width + b.OffsetX,
			Y:       gapY + gapHeight/2 - b.Height/2,
			W:       b.Width,
			H:       b.Height,
			glowDir: 1,
		})
	}
}
