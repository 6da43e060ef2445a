// asteroids is a terminal Asteroids game with local play, an SSH server
// and a headless simulator.
//
// Usage:
//
//	asteroids list              - List game modes and difficulty presets
//	asteroids play              - Play a round
//	asteroids menu              - Pick mode and difficulty interactively
//	asteroids serve             - Start SSH server for remote play
//	asteroids scores [mode]     - Show high scores and recent rounds
//	asteroids simulate          - Run a scripted headless round
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by play, menu, serve and simulate
	flagDifficulty string
	flagAsteroids  int
	flagPolicy     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - shoot rocks in your terminal",
	Long: `Asteroids is a terminal take on the arcade classic. Steer the ship,
split the rocks and clear the field.

Available commands:
  list      - Show game modes and difficulty presets
  play      - Play a round directly
  menu      - Interactive mode and difficulty picker
  serve     - Start SSH server for remote play
  scores    - View high scores and recent rounds
  simulate  - Run a deterministic headless round

Examples:
  asteroids play
  asteroids play --mode waves --difficulty hard
  asteroids menu
  asteroids serve --ssh :2222
  asteroids simulate --seed 42 --frames 3600`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal UIs log nowhere by default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// addGameFlags registers the flags that shape a game instance.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().IntVar(&flagAsteroids, "asteroids", 0, "Initial asteroid count (overrides the preset)")
	cmd.Flags().StringVar(&flagPolicy, "policy", "", "Ship-hit policy: health or instant")
}

// gameOptions converts the game flags into asteroids.Options. The config is
// loaded and validated here so a bad --config file fails the command.
func gameOptions() (asteroids.Options, error) {
	opts := asteroids.Options{
		ConfigPath: flagConfig,
		Asteroids:  flagAsteroids,
	}

	gameCfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return opts, err
	}
	opts.Config = &gameCfg

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return opts, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		opts.Preset = preset
	}

	switch config.ShipHitPolicy(flagPolicy) {
	case "":
	case config.PolicyHealth, config.PolicyInstant:
		opts.Policy = config.ShipHitPolicy(flagPolicy)
	default:
		return opts, fmt.Errorf("unknown ship-hit policy %q (want health or instant)", flagPolicy)
	}

	if flagAsteroids < 0 {
		return opts, fmt.Errorf("asteroid count must not be negative, got %d", flagAsteroids)
	}
	return opts, nil
}

// newLogger builds a logger at the --log-level writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, nil
}

// tuiLogger returns a logger that stays off the terminal while a UI owns it.
// The returned close function must be called when the UI exits.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// stderrLogger returns a logger writing to stderr, the default for non-UI commands.
func stderrLogger() (*log.Logger, error) {
	return newLogger(os.Stderr)
}
