package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
)

func particleConfig() config.ParticleConfig {
	return config.ParticleConfig{
		Max:     120,
		Burst:   28,
		Gravity: 0.35,
		MinLife: 30,
		MaxLife: 60,
		Speed:   6.0,
	}
}

func TestBurstSpawnsConfiguredCount(t *testing.T) {
	ps := NewParticleSystem(particleConfig())
	rng := rand.New(rand.NewSource(1))

	ps.Burst(100, 200, core.ColorBrightRed, rng)
	if ps.Len() != 28 {
		t.Fatalf("burst spawned %d particles, expected 28", ps.Len())
	}

	for i, p := range ps.Items() {
		if p.X != 100 || p.Y != 200 {
			t.Errorf("particle %d spawned at (%v,%v), expected burst origin", i, p.X, p.Y)
		}
		if p.Life < 30 || p.Life > 60 {
			t.Errorf("particle %d lifetime %v outside [30, 60]", i, p.Life)
		}
		if p.Life != p.MaxLife {
			t.Errorf("particle %d MaxLife should equal initial Life", i)
		}
		if p.Color != core.ColorBrightRed {
			t.Errorf("particle %d lost the burst color", i)
		}
		if mag := math.Hypot(p.VX, p.VY+2); mag > 6.0+1e-9 {
			t.Errorf("particle %d launch speed %v exceeds bound", i, mag)
		}
	}
}

func TestParticleCapDropsOldestFirst(t *testing.T) {
	cfg := particleConfig()
	cfg.Max = 50
	ps := NewParticleSystem(cfg)
	rng := rand.New(rand.NewSource(2))

	ps.Burst(0, 0, core.ColorRed, rng)    // 28 old
	ps.Burst(10, 10, core.ColorBlue, rng) // 28 new -> 56, 6 over cap

	if ps.Len() != 50 {
		t.Fatalf("cap not enforced: %d particles, expected 50", ps.Len())
	}

	// The 6 dropped particles are the oldest; 22 red survivors lead.
	red := 0
	for _, p := range ps.Items() {
		if p.Color == core.ColorRed {
			red++
		}
	}
	if red != 22 {
		t.Errorf("expected 22 surviving old particles, got %d", red)
	}
	if ps.Items()[0].Color != core.ColorRed {
		t.Error("survivors should stay ordered oldest first")
	}
	if ps.Items()[ps.Len()-1].Color != core.ColorBlue {
		t.Error("newest particles should be at the tail")
	}
}

func TestParticleAdvanceKinematics(t *testing.T) {
	ps := NewParticleSystem(particleConfig())
	ps.items = append(ps.items, Particle{X: 50, VX: 2, VY: -1, Life: 10, MaxLife: 10})

	ps.Advance(1)

	p := ps.Items()[0]
	if p.VY != -1+0.35 {
		t.Errorf("vy = %v, expected gravity applied", p.VY)
	}
	if p.X != 52 {
		t.Errorf("x = %v, expected 52", p.X)
	}
	if p.Life != 9 {
		t.Errorf("life = %v, expected 9", p.Life)
	}
}

func TestParticleExpiry(t *testing.T) {
	ps := NewParticleSystem(particleConfig())
	ps.items = append(ps.items,
		Particle{Life: 0.5, MaxLife: 10},
		Particle{Life: 5, MaxLife: 10},
	)

	ps.Advance(1)
	if ps.Len() != 1 {
		t.Fatalf("expected expired particle removed, have %d", ps.Len())
	}
	if ps.Items()[0].Life != 4 {
		t.Errorf("survivor life = %v, expected 4", ps.Items()[0].Life)
	}
}

func TestParticleAlphaFades(t *testing.T) {
	p := Particle{Life: 10, MaxLife: 10}
	if p.Alpha() != 1 {
		t.Errorf("fresh particle alpha = %v, expected 1", p.Alpha())
	}
	p.Life = 5
	if p.Alpha() != 0.5 {
		t.Errorf("half-life alpha = %v, expected 0.5", p.Alpha())
	}
	p.Life = -1
	if p.Alpha() != 0 {
		t.Errorf("dead particle alpha = %v, expected 0", p.Alpha())
	}
}

func TestParticleClear(t *testing.T) {
	ps := NewParticleSystem(particleConfig())
	rng := rand.New(rand.NewSource(3))
	ps.Burst(0, 0, core.ColorRed, rng)

	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Clear left %d particles", ps.Len())
	}
}
