package config

import (
	_ "embed"
)

//go:embed defaults/skyglide.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
// Values are tuned for the 560x400 virtual playfield.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Playfield: PlayfieldConfig{
			Width:      560,
			Height:     400,
			EdgeMargin: 50,
		},
		Physics: PhysicsConfig{
			Gravity:       0.5,
			Impulse:       -8.0,
			MaxSpeed:      12.0,
			CraftX:        120,
			CraftHalf:     15,
			MaxFrameMs:    20,
			RotationEase:  0.15,
			ThrustFlashMs: 120,
		},
		Obstacles: ObstacleConfig{
			Width:        52,
			Spacing:      220,
			Offscreen:    -80,
			RotationStep: 0.02,
		},
		Banners: BannerConfig{
			Frequency:   0.25,
			Width:       90,
			Height:      22,
			OffsetX:     70,
			SpeedFactor: 0.8,
			Offscreen:   -160,
			GlowMax:     1.0,
			GlowStep:    0.04,
		},
		Particles: ParticleConfig{
			Max:     120,
			Burst:   28,
			Gravity: 0.35,
			MinLife: 30,
			MaxLife: 60,
			Speed:   6.0,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:      2.0,
			Increase:       0.08,
			EasyDurationMs: 30000,
			IntervalMs:     10000,
			BaseGap:        0.22,
			MinGap:         0.14,
		},
		Timing: TimingConfig{
			SplashMs:    1800,
			CountdownMs: 3000,
		},
	}
}
