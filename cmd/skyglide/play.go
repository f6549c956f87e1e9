package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okarpov/skyglide/internal/audio"
	"github.com/okarpov/skyglide/internal/config"
	"github.com/okarpov/skyglide/internal/core"
	"github.com/okarpov/skyglide/internal/platform/tui"
	"github.com/okarpov/skyglide/internal/storage"
)

var (
	flagConfig  string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play skyglide in the current terminal",
	Long: `Start a skyglide session in this terminal.

Controls:
  Space/Up/W - Impulse (and advance through the screens)
  Tab        - Cycle craft skin (in the menu)
  M          - Toggle sound
  Q/Ctrl+C   - Quit

Examples:
  skyglide play
  skyglide play --seed 42
  skyglide play --config ./my-skyglide.yaml
  skyglide play --no-audio`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound output")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Audio is best-effort; a headless or device-less environment plays silent
	var player *audio.Player
	if !flagNoAudio {
		player = audio.NewPlayer()
		if initErr := player.Init(); initErr != nil {
			player = nil
		}
	}

	runErr := tui.Run(gameCfg, store, player, cfg)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
