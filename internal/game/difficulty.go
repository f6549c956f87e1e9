package game

import (
	"math"

	"github.com/okarpov/skyglide/internal/config"
)

// Difficulty computes the scroll speed and gap fraction for a given elapsed
// play time in milliseconds. It is a pure function recomputed every step,
// never accumulated, so the same elapsed time always yields the same values.
func Difficulty(cfg config.DifficultyConfig, elapsedMs float64) (speed, gap float64) {
	if elapsedMs <= cfg.EasyDurationMs {
		return cfg.BaseSpeed, cfg.BaseGap
	}

	level := math.Floor((elapsedMs - cfg.EasyDurationMs) / cfg.IntervalMs)
	multiplier := math.Pow(1.0+cfg.Increase, level)

	speed = cfg.BaseSpeed * multiplier
	gap = math.Max(cfg.MinGap, cfg.BaseGap/multiplier)
	return speed, gap
}
