package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and difficulty presets",
	Long:  `Shows the registered game modes and the asteroid count of each difficulty preset.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	modes := registry.List()
	if len(modes) == 0 {
		return fmt.Errorf("no game modes registered")
	}

	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		mode, _ := asteroids.ModeFromID(m.ID)
		rows = append(rows, []string{m.ID, m.Title, mode.String()})
	}
	heading("Game modes")
	printTable([]string{"ID", "Title", "--mode"}, rows)

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		note(fmt.Sprintf("could not load %s, showing defaults: %v", flagConfig, err))
		cfg = config.DefaultAsteroidsConfig()
	}

	rows = rows[:0]
	for _, p := range config.Presets() {
		rows = append(rows, []string{string(p), strconv.Itoa(cfg.Difficulty.CountForPreset(p))})
	}
	fmt.Println()
	heading("Difficulty presets")
	printTable([]string{"Preset", "Asteroids"}, rows)

	fmt.Println()
	note("Run 'asteroids play --mode <classic|waves> --difficulty <preset>' to play.")
	return nil
}
