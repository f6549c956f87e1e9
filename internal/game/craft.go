package game

import (
	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
)

// Craft is the player-controlled entity. X never changes; the world scrolls
// instead. Rotation and the thrust flag are cosmetic, derived state.
type Craft struct {
	X, Y     float64
	VY       float64
	Rotation float64 // Smoothed, derived from VY; -1 (nose up) to 1 (nose down)
	ThrustMs float64 // Milliseconds since the last impulse
}

// NewCraft creates a craft at the vertical center of the playfield.
func NewCraft(cfg config.GameConfig) Craft {
	return Craft{
		X:        cfg.Physics.CraftX,
		Y:        cfg.Playfield.Height / 2,
		ThrustMs: 1 << 20, // No impulse yet
	}
}

// Impulse applies the instantaneous velocity override triggered by player
// input. It replaces vy outright, independent of gravity integration.
func (c *Craft) Impulse(phys config.PhysicsConfig) {
	c.VY = phys.Impulse
	c.ThrustMs = 0
}

// Integrate advances craft kinematics by dt frames (dt=1 is one 60Hz frame).
// elapsedMs is the wall time consumed, used only for the thrust timer.
func (c *Craft) Integrate(phys config.PhysicsConfig, dt, elapsedMs float64) {
	c.VY += phys.Gravity * dt
	c.VY = core.ClampF(c.VY, -phys.MaxSpeed, phys.MaxSpeed)
	c.Y += c.VY * dt

	// Ease cosmetic rotation toward the velocity direction.
	target := core.ClampF(c.VY/phys.MaxSpeed, -1, 1)
	c.Rotation += (target - c.Rotation) * core.ClampF(phys.RotationEase*dt, 0, 1)

	c.ThrustMs += elapsedMs
}

// Thrusting reports whether the thrust flash is still visible.
func (c *Craft) Thrusting(phys config.PhysicsConfig) bool {
	return c.ThrustMs < phys.ThrustFlashMs
}

// Rect returns the craft's collision box from its center and half-extents.
func (c *Craft) Rect(phys config.PhysicsConfig) core.RectF {
	return core.NewRectF(c.X-phys.CraftHalf, c.Y-phys.CraftHalf, phys.CraftHalf*2, phys.CraftHalf*2)
}
