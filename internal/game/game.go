// Package game implements the skyglide simulation: a craft navigating a
// scrolling field of obstacle pairs, one point per pair passed, run ends on
// collision. All state lives in a single Game aggregate mutated only through
// HandleAction and Advance, so the simulation is testable by stepping it
// with synthetic elapsed-time values and no rendering dependency.
package game

import (
	"math/rand"
	"time"

	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
)

// frameMs is the conceptual 60Hz timestep all tuning constants refer to.
const frameMs = 1000.0 / 60.0

// Event signals something the platform may react to (audio cue, persistence).
// Events never feed back into the simulation.
type Event int

const (
	EventImpulse Event = iota
	EventScore
	EventCrash
	EventNewBest
)

// StepResult is returned by Advance after each tick.
type StepResult struct {
	Events []Event
}

// Snapshot is a read-only view of the state the platform needs for labels
// and persistence. Rendering reads the Game directly via Render.
type Snapshot struct {
	Mode        Mode
	Score       int
	Best        int
	NewBest     bool
	Muted       bool
	Skin        Skin
	CountdownMs float64 // Remaining tutorial countdown; 0 outside tutorial
	Suspended   bool
}

// Game is the single simulation aggregate: mode, score, craft, and entity
// collections. No hidden globals; everything resets through the mode
// transitions.
type Game struct {
	cfg config.GameConfig
	rng *rand.Rand

	mode       Mode
	modeClock  float64 // ms since entering the current mode
	generation int     // Bumped on every transition; stale callbacks check it

	suspended bool // Focus lost while playing; sim holds, mode unchanged

	craft     Craft
	field     *Field
	particles *ParticleSystem

	playMs  float64 // Elapsed play time for the current run
	score   int
	best    int
	newBest bool

	speed float64 // Derived from playMs each step, never accumulated
	gap   float64

	skin  Skin
	muted bool

	stars  []starPos // Presentation-only backdrop, drifted at render time
	events []Event
}

type starPos struct {
	X, Y float64
}

// New creates a game in splash mode. A zero seed falls back to wall time.
func New(cfg config.GameConfig, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:       cfg,
		rng:       rng,
		mode:      ModeSplash,
		field:     NewField(&cfg, rng.Int63()),
		particles: NewParticleSystem(cfg.Particles),
		craft:     NewCraft(cfg),
		speed:     cfg.Difficulty.BaseSpeed,
		gap:       cfg.Difficulty.BaseGap,
	}

	g.stars = make([]starPos, 40)
	for i := range g.stars {
		g.stars[i] = starPos{
			X: rng.Float64() * cfg.Playfield.Width,
			Y: rng.Float64() * cfg.Playfield.Height,
		}
	}
	return g
}

// Config returns the game's configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Mode returns the current state-machine mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Generation returns the transition counter. Deferred callbacks capture it
// and bail out when it no longer matches, so a timer raced by a faster
// transition can never act on a stale mode.
func (g *Game) Generation() int {
	return g.generation
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Best returns the best score known to the game.
func (g *Game) Best() int {
	return g.best
}

// SetBest seeds the best score from persisted state. It never decreases.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Skin returns the selected craft skin.
func (g *Game) Skin() Skin {
	return g.skin
}

// SetSkin selects a craft skin.
func (g *Game) SetSkin(s Skin) {
	g.skin = s
}

// Muted reports the mute flag.
func (g *Game) Muted() bool {
	return g.muted
}

// SetMuted seeds the mute flag from persisted state.
func (g *Game) SetMuted(m bool) {
	g.muted = m
}

// Suspend pauses simulation advancement without changing mode, mirroring a
// hidden tab. Only meaningful while playing; other modes have no sim to hold.
func (g *Game) Suspend() {
	g.suspended = true
}

// Resume re-enables simulation advancement.
func (g *Game) Resume() {
	g.suspended = false
}

// Snapshot returns the platform-facing view of current state.
func (g *Game) Snapshot() Snapshot {
	countdown := 0.0
	if g.mode == ModeTutorial {
		countdown = g.cfg.Timing.CountdownMs - g.modeClock
		if countdown < 0 {
			countdown = 0
		}
	}
	return Snapshot{
		Mode:        g.mode,
		Score:       g.score,
		Best:        g.best,
		NewBest:     g.newBest,
		Muted:       g.muted,
		Skin:        g.skin,
		CountdownMs: countdown,
		Suspended:   g.suspended,
	}
}

// HandleAction feeds one semantic input action into the state machine.
// Outside playing, activate is purely a transition trigger; in playing it
// becomes an impulse. Mute and skin cycling never change mode.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionActivate:
		g.activate()
	case core.ActionMute:
		g.muted = !g.muted
	case core.ActionSkinNext:
		if g.mode == ModeMenu {
			g.skin = g.skin.Next()
		}
	}
}

// activate dispatches the single abstract input event per the current mode.
func (g *Game) activate() {
	switch g.mode {
	case ModeSplash:
		g.enterMenu()
	case ModeMenu:
		g.enterTutorial()
	case ModeTutorial:
		g.startRun()
	case ModePlaying:
		if g.suspended {
			return
		}
		g.craft.Impulse(g.cfg.Physics)
		g.events = append(g.events, EventImpulse)
	case ModeGameOver:
		g.enterTutorial()
	}
}

// Advance moves the state machine and, in playing mode, the simulation,
// given the real time elapsed since the previous call. Timers are deadlines
// against the per-mode clock; there are no self-rescheduling callbacks.
func (g *Game) Advance(elapsed time.Duration) StepResult {
	ms := elapsed.Seconds() * 1000
	if ms < 0 {
		ms = 0
	}
	g.modeClock += ms

	switch g.mode {
	case ModeSplash:
		if g.modeClock >= g.cfg.Timing.SplashMs {
			g.enterMenu()
		}
	case ModeTutorial:
		if g.modeClock >= g.cfg.Timing.CountdownMs {
			g.startRun()
		}
	case ModePlaying:
		if !g.suspended {
			// Clamp the integration slice to bound error on frame hitches.
			g.step(core.ClampF(ms, 0, g.cfg.Physics.MaxFrameMs))
		}
	case ModeGameOver:
		// The crash burst keeps falling and fading behind the game-over text.
		g.particles.Advance(core.ClampF(ms, 0, g.cfg.Physics.MaxFrameMs) / frameMs)
	}

	// Hand off events accumulated since the previous tick, including ones
	// queued by HandleAction between ticks.
	res := StepResult{Events: g.events}
	g.events = nil
	return res
}

// step advances the simulation by one clamped slice of elapsed time.
// Order matters: scoring granted before the collision check stands even when
// the same step ends the run.
func (g *Game) step(ms float64) {
	dt := ms / frameMs
	g.playMs += ms

	// 1. Difficulty is recomputed from elapsed time alone.
	g.speed, g.gap = Difficulty(g.cfg.Difficulty, g.playMs)

	// 2. Craft kinematics.
	g.craft.Integrate(g.cfg.Physics, dt, ms)

	// 3-5. Obstacles: advance, score, cull.
	g.field.Advance(g.speed, dt)
	if scored := g.field.ScorePassed(g.craft.X); scored > 0 {
		g.score += scored
		g.events = append(g.events, EventScore)
	}
	g.field.RemoveOffscreen()

	// 6. Banners drift slower and glow; never collide.
	g.field.AdvanceBanners(g.speed, dt)

	// 7. Spawn.
	g.field.SpawnIfNeeded(g.gap)

	// 8. Collision ends the step immediately; particles hold this tick.
	if Collides(g.craft.Rect(g.cfg.Physics), g.field.Pairs(), &g.cfg) {
		g.crash()
		return
	}

	// 9. Particles.
	g.particles.Advance(dt)
}

// crash handles the playing -> gameOver transition: crash burst, best-score
// bookkeeping, and stopping the simulation.
func (g *Game) crash() {
	g.particles.Burst(g.craft.X, g.craft.Y, g.skin.ColorAt(time.Duration(g.playMs)*time.Millisecond), g.rng)

	g.newBest = false
	if g.score > g.best {
		g.best = g.score
		g.newBest = true
		g.events = append(g.events, EventNewBest)
	}
	g.events = append(g.events, EventCrash)

	g.enterMode(ModeGameOver)
}

// enterMenu transitions to the menu from splash.
func (g *Game) enterMenu() {
	g.enterMode(ModeMenu)
}

// enterTutorial starts the pre-run countdown and clears leftover entities.
func (g *Game) enterTutorial() {
	g.field.Clear()
	g.particles.Clear()
	g.enterMode(ModeTutorial)
}

// startRun resets score, craft, and entities, then enters playing.
func (g *Game) startRun() {
	g.score = 0
	g.newBest = false
	g.playMs = 0
	g.craft = NewCraft(g.cfg)
	g.field.Reset(g.rng.Int63())
	g.particles.Clear()
	g.speed = g.cfg.Difficulty.BaseSpeed
	g.gap = g.cfg.Difficulty.BaseGap
	g.suspended = false
	g.enterMode(ModePlaying)
}

// enterMode is the single transition point: it bumps the generation and
// restarts the per-mode clock, invalidating anything scheduled for the
// previous mode.
func (g *Game) enterMode(m Mode) {
	g.mode = m
	g.modeClock = 0
	g.generation++
}
