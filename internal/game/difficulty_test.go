package game

import (
	"math"
	"testing"

	"github.com/okarpov/skyglide/internal/config"
)

func testDifficultyConfig() config.DifficultyConfig {
	return config.DifficultyConfig{
		BaseSpeed:      2.0,
		Increase:       0.08,
		EasyDurationMs: 30000,
		IntervalMs:     10000,
		BaseGap:        0.22,
		MinGap:         0.14,
	}
}

func TestDifficultyFlatDuringEasyPeriod(t *testing.T) {
	cfg := testDifficultyConfig()

	for _, ms := range []float64{0, 1, 1000, 15000, 29999, 30000} {
		speed, gap := Difficulty(cfg, ms)
		if speed != cfg.BaseSpeed {
			t.Errorf("t=%v: speed = %v, expected base %v", ms, speed, cfg.BaseSpeed)
		}
		if gap != cfg.BaseGap {
			t.Errorf("t=%v: gap = %v, expected base %v", ms, gap, cfg.BaseGap)
		}
	}
}

func TestDifficultyRampLevel(t *testing.T) {
	cfg := testDifficultyConfig()

	// At t=45000ms: level = floor(15000/10000) = 1, multiplier = 1.08.
	speed, gap := Difficulty(cfg, 45000)
	if math.Abs(speed-2.16) > 1e-9 {
		t.Errorf("speed at 45000ms = %v, expected 2.16", speed)
	}
	wantGap := 0.22 / 1.08
	if math.Abs(gap-wantGap) > 1e-9 {
		t.Errorf("gap at 45000ms = %v, expected %v", gap, wantGap)
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	cfg := testDifficultyConfig()

	prevSpeed, prevGap := Difficulty(cfg, 0)
	for ms := float64(1000); ms <= 300000; ms += 1000 {
		speed, gap := Difficulty(cfg, ms)
		if speed < prevSpeed {
			t.Fatalf("speed decreased at t=%v: %v -> %v", ms, prevSpeed, speed)
		}
		if gap > prevGap {
			t.Fatalf("gap increased at t=%v: %v -> %v", ms, prevGap, gap)
		}
		prevSpeed, prevGap = speed, gap
	}
}

func TestDifficultyGapFloor(t *testing.T) {
	cfg := testDifficultyConfig()

	// Far into a run the gap must pin at the minimum.
	_, gap := Difficulty(cfg, 1e7)
	if gap != cfg.MinGap {
		t.Errorf("gap = %v, expected min %v", gap, cfg.MinGap)
	}
}

func TestDifficultyReproducible(t *testing.T) {
	cfg := testDifficultyConfig()

	// Pure function: same elapsed time, same result, regardless of call order.
	s1, g1 := Difficulty(cfg, 87345)
	Difficulty(cfg, 5)
	Difficulty(cfg, 999999)
	s2, g2 := Difficulty(cfg, 87345)

	if s1 != s2 || g1 != g2 {
		t.Errorf("difficulty not reproducible: (%v,%v) vs (%v,%v)", s1, g1, s2, g2)
	}
}
