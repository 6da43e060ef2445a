package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagMode      string
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Asteroids.

Controls:
  A/D, Left/Right  - Rotate
  W/Up             - Thrust
  Space/F          - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Q/Ctrl+C         - Quit

Modes:
  classic - Clear the field to win the round
  waves   - Endless; every cleared field brings a bigger wave

Difficulty options:
  easy   - 5 asteroids
  normal - 30 asteroids
  hard   - 100 asteroids

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --mode waves --asteroids 8
  asteroids play --policy instant
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "classic", "Game mode: classic or waves")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a steering key stays held after each key event")
	addGameFlags(playCmd)
}

// parseMode converts the --mode flag to a game mode.
func parseMode(name string) (asteroids.GameMode, error) {
	mode, ok := asteroids.ParseMode(name)
	if !ok {
		return mode, fmt.Errorf("unknown mode %q (want classic or waves)", name)
	}
	return mode, nil
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := parseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts, err := gameOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game := asteroids.NewWithOptions(mode, opts)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, terminalConfig(),
		tui.WithLogger(logger),
		tui.WithHoldTicks(flagHoldTicks),
	)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
