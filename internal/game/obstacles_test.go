package game

import (
	"math"
	"testing"

	"github.com/okarpov/skyglide/internal/config"
)

func fieldConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	// Scenario A numbers: playfield height 400, margin 50.
	cfg.Playfield.Height = 400
	cfg.Playfield.EdgeMargin = 50
	return cfg
}

func TestSpawnGapGeometry(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 42)

	// Gap fraction 0.22 on a 400-high playfield gives an 88-unit gap with
	// the offset sampled in [50, 262].
	for i := 0; i < 200; i++ {
		f.Clear()
		f.spawn(0.22)

		p := f.Pairs()[0]
		if math.Abs(p.GapHeight-88) > 1e-9 {
			t.Fatalf("gap height = %v, expected 88", p.GapHeight)
		}
		if p.TopHeight < 50 || p.TopHeight > 262+1e-9 {
			t.Fatalf("gap offset %v outside [50, 262]", p.TopHeight)
		}
		if sum := p.TopHeight + p.GapHeight + p.BottomHeight; math.Abs(sum-400) > 1e-9 {
			t.Fatalf("segment sum = %v, expected playfield height 400", sum)
		}
		if p.BottomY != p.TopHeight+p.GapHeight {
			t.Fatalf("bottom start %v inconsistent with top %v + gap %v", p.BottomY, p.TopHeight, p.GapHeight)
		}
	}
}

func TestSpawnCondition(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 7)

	// Empty field always spawns.
	f.SpawnIfNeeded(0.22)
	if len(f.Pairs()) != 1 {
		t.Fatalf("expected 1 pair after first spawn, got %d", len(f.Pairs()))
	}
	if f.Pairs()[0].X != cfg.Playfield.Width {
		t.Errorf("new pair should spawn at the right edge, got %v", f.Pairs()[0].X)
	}

	// Newest pair still too close to the right edge: no spawn.
	f.SpawnIfNeeded(0.22)
	if len(f.Pairs()) != 1 {
		t.Errorf("spawned before the spacing threshold, got %d pairs", len(f.Pairs()))
	}

	// Move the pair past the spacing threshold: spawn again.
	f.pairs[0].X = cfg.Playfield.Width - cfg.Obstacles.Spacing - 1
	f.SpawnIfNeeded(0.22)
	if len(f.Pairs()) != 2 {
		t.Errorf("expected a spawn past the spacing threshold, got %d pairs", len(f.Pairs()))
	}
}

func TestScorePassedExactlyOnce(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 1)

	craftX := 120.0
	f.pairs = append(f.pairs, ObstaclePair{X: craftX - cfg.Obstacles.Width - 1})

	if got := f.ScorePassed(craftX); got != 1 {
		t.Fatalf("first pass should score 1, got %d", got)
	}
	if !f.pairs[0].Scored {
		t.Error("pair should be marked scored")
	}

	// Repeated calls never score the same pair again.
	for i := 0; i < 5; i++ {
		if got := f.ScorePassed(craftX); got != 0 {
			t.Fatalf("pair scored twice on call %d", i)
		}
	}
}

func TestScorePassedTrailingEdge(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 1)

	craftX := 120.0
	// Trailing edge exactly at the craft: not yet passed.
	f.pairs = append(f.pairs, ObstaclePair{X: craftX - cfg.Obstacles.Width})
	if got := f.ScorePassed(craftX); got != 0 {
		t.Errorf("pair with trailing edge at craft x should not score, got %d", got)
	}
}

func TestRemoveOffscreen(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 1)

	f.pairs = append(f.pairs,
		ObstaclePair{X: cfg.Obstacles.Offscreen - cfg.Obstacles.Width - 1}, // gone
		ObstaclePair{X: cfg.Obstacles.Offscreen},                           // still visible tail
		ObstaclePair{X: 100},
	)
	f.RemoveOffscreen()

	if len(f.Pairs()) != 2 {
		t.Fatalf("expected 2 pairs after removal, got %d", len(f.Pairs()))
	}
}

func TestBannerSpawnFrequency(t *testing.T) {
	cfg := fieldConfig()
	cfg.Banners.Frequency = 1.0 // Always spawn a banner alongside the pair
	f := NewField(&cfg, 3)

	f.spawn(0.22)
	if len(f.Banners()) != 1 {
		t.Fatalf("expected a banner with frequency 1.0, got %d", len(f.Banners()))
	}

	b := f.Banners()[0]
	p := f.Pairs()[0]
	wantY := p.TopHeight + p.GapHeight/2 - cfg.Banners.Height/2
	if b.Y != wantY {
		t.Errorf("banner should be centered on the gap midpoint: got %v, want %v", b.Y, wantY)
	}
	if b.X <= p.X+cfg.Obstacles.Width {
		t.Errorf("banner should sit right of the obstacle, got x=%v", b.X)
	}

	cfg.Banners.Frequency = 0.0
	f2 := NewField(&cfg, 3)
	f2.spawn(0.22)
	if len(f2.Banners()) != 0 {
		t.Errorf("expected no banner with frequency 0, got %d", len(f2.Banners()))
	}
}

func TestBannerSpeedAndRemoval(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 1)

	f.banners = append(f.banners, Banner{X: 200, W: cfg.Banners.Width, glowDir: 1})
	f.AdvanceBanners(10, 1)

	// Banners drift at the configured fraction of obstacle speed.
	want := 200 - 10*cfg.Banners.SpeedFactor
	if f.banners[0].X != want {
		t.Errorf("banner x = %v, expected %v", f.banners[0].X, want)
	}

	// Removal uses the banner-specific, more negative threshold.
	f.banners[0].X = cfg.Banners.Offscreen - cfg.Banners.Width - 1
	f.AdvanceBanners(0, 1)
	if len(f.Banners()) != 0 {
		t.Errorf("banner past its threshold should be removed")
	}
}

func TestBannerGlowBounces(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 1)
	f.banners = append(f.banners, Banner{X: 200, W: 10, glowDir: 1})

	sawMax, sawMin := false, false
	prev := 0.0
	for i := 0; i < 500; i++ {
		f.AdvanceBanners(0, 1)
		g := f.banners[0].Glow
		if g < 0 || g > cfg.Banners.GlowMax {
			t.Fatalf("glow %v escaped [0, %v]", g, cfg.Banners.GlowMax)
		}
		if g == cfg.Banners.GlowMax {
			sawMax = true
		}
		if sawMax && g < prev {
			sawMin = true // direction flipped after hitting the top
		}
		prev = g
	}
	if !sawMax || !sawMin {
		t.Error("glow should oscillate between the bounds")
	}
}

func TestFieldResetClearsEntities(t *testing.T) {
	cfg := fieldConfig()
	f := NewField(&cfg, 1)
	f.spawn(0.22)
	f.banners = append(f.banners, Banner{})

	f.Reset(99)
	if len(f.Pairs()) != 0 || len(f.Banners()) != 0 {
		t.Error("Reset should clear all entities")
	}
}
