package game

import (
	"math"
	"math/rand"

	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
)

// Particle is a short-lived visual effect with independent kinematics.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // Remaining lifetime in frames
	MaxLife float64 // Initial lifetime, for fade-alpha
	Color   core.Color
}

// Alpha returns the remaining-life fraction in [0, 1] used for fading.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// ParticleSystem holds crash debris. The collection is hard-capped; when a
// burst would exceed the cap the oldest particles are dropped first.
type ParticleSystem struct {
	cfg   config.ParticleConfig
	items []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{
		cfg:   cfg,
		items: make([]Particle, 0, cfg.Max),
	}
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}

// Items returns the live particles, oldest first.
func (ps *ParticleSystem) Items() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Burst spawns a radial spray of particles at (x, y), colored for the
// active skin. Used on terminal collision.
func (ps *ParticleSystem) Burst(x, y float64, color core.Color, rng *rand.Rand) {
	for i := 0; i < ps.cfg.Burst; i++ {
		angle := rng.Float64() * 2 * math.Pi
		mag := rng.Float64() * ps.cfg.Speed
		life := float64(ps.cfg.MinLife)
		if ps.cfg.MaxLife > ps.cfg.MinLife {
			life += rng.Float64() * float64(ps.cfg.MaxLife-ps.cfg.MinLife)
		}
		ps.items = append(ps.items, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * mag,
			VY:      math.Sin(angle)*mag - 2, // slight upward bias on impact
			Life:    life,
			MaxLife: life,
			Color:   color,
		})
	}
	ps.enforceCap()
}

// Advance integrates all particles under constant downward acceleration,
// decrements lifetimes, drops dead particles, and enforces the cap.
func (ps *ParticleSystem) Advance(dt float64) {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.VY += ps.cfg.Gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.items = kept
	ps.enforceCap()
}

// enforceCap drops the oldest excess particles when over the hard cap.
func (ps *ParticleSystem) enforceCap() {
	if excess := len(ps.items) - ps.cfg.Max; excess > 0 {
		ps.items = append(ps.items[:0], ps.items[excess:]...)
	}
}
