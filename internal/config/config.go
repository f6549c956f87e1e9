// Package config provides YAML-based game configuration loading for skyglide.
package config

// GameConfig contains all tunable parameters for the game.
type GameConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Banners    BannerConfig     `yaml:"banners"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
}

// PlayfieldConfig defines the fixed virtual playfield the simulation runs in.
// Rendering scales it to the terminal; simulation constants never change
// with terminal size.
type PlayfieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EdgeMargin float64 `yaml:"edge_margin"` // Minimum obstacle segment height at top/bottom
}

// PhysicsConfig defines craft kinematics.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration per 60Hz frame
	Impulse       float64 `yaml:"impulse"`        // vy override on activate (negative = up)
	MaxSpeed      float64 `yaml:"max_speed"`      // vy is clamped to [-max_speed, max_speed]
	CraftX        float64 `yaml:"craft_x"`        // Fixed horizontal craft position
	CraftHalf     float64 `yaml:"craft_half"`     // Craft hitbox half-extent
	MaxFrameMs    float64 `yaml:"max_frame_ms"`   // Elapsed-time clamp per step
	RotationEase  float64 `yaml:"rotation_ease"`  // Smoothing factor for cosmetic rotation
	ThrustFlashMs float64 `yaml:"thrust_flash_ms"` // How long the thrust flag stays visible
}

// ObstacleConfig defines obstacle pair parameters.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Spacing      float64 `yaml:"spacing"`       // Distance the newest pair travels before the next spawn
	Offscreen    float64 `yaml:"offscreen"`     // Removal threshold (negative x)
	RotationStep float64 `yaml:"rotation_step"` // Cosmetic rotation advance per frame
}

// BannerConfig defines decorative banner parameters.
// Banners never participate in collision.
type BannerConfig struct {
	Frequency   float64 `yaml:"frequency"`    // Spawn probability per obstacle spawn
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	OffsetX     float64 `yaml:"offset_x"`     // Horizontal offset right of the obstacle
	SpeedFactor float64 `yaml:"speed_factor"` // Scroll speed relative to obstacles
	Offscreen   float64 `yaml:"offscreen"`    // Removal threshold, more negative than obstacles
	GlowMax     float64 `yaml:"glow_max"`
	GlowStep    float64 `yaml:"glow_step"`
}

// ParticleConfig defines the crash particle system.
type ParticleConfig struct {
	Max     int     `yaml:"max"`      // Hard cap; oldest dropped first
	Burst   int     `yaml:"burst"`    // Particles spawned per crash
	Gravity float64 `yaml:"gravity"`  // Constant downward acceleration
	MinLife int     `yaml:"min_life"` // Lifetime range in frames
	MaxLife int     `yaml:"max_life"`
	Speed   float64 `yaml:"speed"` // Initial velocity magnitude bound
}

// DifficultyConfig defines the time-based difficulty ramp.
// Speed and gap are pure functions of elapsed play time, never accumulated.
type DifficultyConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	Increase       float64 `yaml:"increase"`         // Compound growth per level
	EasyDurationMs float64 `yaml:"easy_duration_ms"` // Flat period before the ramp
	IntervalMs     float64 `yaml:"interval_ms"`      // Milliseconds per level
	BaseGap        float64 `yaml:"base_gap"`         // Gap as a fraction of playfield height
	MinGap         float64 `yaml:"min_gap"`
}

// TimingConfig defines state-machine deadlines.
type TimingConfig struct {
	SplashMs    float64 `yaml:"splash_ms"`    // Splash screen duration
	CountdownMs float64 `yaml:"countdown_ms"` // Tutorial countdown duration
}
