package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/okarpov/skyglide/internal/audio"
	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
	"github.com/okarpov/skyglide/internal/game"
	"github.com/okarpov/skyglide/internal/storage"
)

// Model is the Bubble Tea model driving a local skyglide session.
// Key presses are collected into an input frame and fed to the game on the
// next tick, so input and simulation advance together.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	player   *audio.Player
	config   core.RuntimeConfig
	input    core.InputFrame
	logger   *log.Logger
	lastTick time.Time
	quitting bool
}

// NewModel creates a model and seeds the game from persisted state.
// Both store and player may be nil; the game runs without them.
func NewModel(gameCfg config.GameConfig, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig) Model {
	g := game.New(gameCfg, cfg.Seed)

	if store != nil {
		if best, err := store.BestScore(); err == nil {
			g.SetBest(best)
		}
		if skin, err := store.Skin(); err == nil && skin != "" {
			g.SetSkin(game.ParseSkin(skin))
		}
		if muted, err := store.Muted(); err == nil {
			g.SetMuted(muted)
		}
	}
	if player != nil {
		player.SetMuted(g.Muted())
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		player: player,
		config: cfg,
		input:  core.NewInputFrame(),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "skyglide"}),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		m.game.Resume()
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus: hold the simulation without changing mode.
		m.game.Suspend()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuitKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	if action := mapKey(msg); action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick feeds the collected input to the game, advances it by the real
// elapsed time, and reacts to the events the step produced.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, action := range []core.Action{core.ActionActivate, core.ActionMute, core.ActionSkinNext} {
		if !m.input.Has(action) {
			continue
		}
		m.game.HandleAction(action)

		// Settings changes persist immediately, not just at game over.
		switch action {
		case core.ActionMute:
			if m.player != nil {
				m.player.SetMuted(m.game.Muted())
			}
			if m.store != nil {
				if err := m.store.SetMuted(m.game.Muted()); err != nil {
					m.logger.Warn("could not persist mute setting", "error", err)
				}
			}
		case core.ActionSkinNext:
			if m.store != nil {
				if err := m.store.SetSkin(m.game.Skin().String()); err != nil {
					m.logger.Warn("could not persist skin", "error", err)
				}
			}
		}
	}
	m.input.Clear()

	elapsed := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Advance(elapsed)
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent turns one game event into its audio cue and persistence.
func (m *Model) handleEvent(ev game.Event) {
	switch ev {
	case game.EventImpulse:
		if m.player != nil {
			m.player.Play(audio.CueImpulse)
		}
	case game.EventScore:
		if m.player != nil {
			m.player.Play(audio.CueScore)
		}
	case game.EventCrash:
		if m.player != nil {
			m.player.Play(audio.CueCrash)
		}
		if m.store != nil {
			if err := m.store.SaveRun(m.game.Score()); err != nil {
				m.logger.Warn("could not record run", "error", err)
			}
			if err := m.store.SetBestScore(m.game.Best()); err != nil {
				m.logger.Warn("could not update best score", "error", err)
			}
		}
	}
}

// View renders the current state to a string for display. A panic while
// drawing is recovered and logged; the frame is dropped instead of tearing
// down the session.
func (m Model) View() (frame string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("render panicked", "panic", r)
			frame = ""
		}
	}()

	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, time.Now())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(gameCfg config.GameConfig, store *storage.Store, player *audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Pause the sim when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
