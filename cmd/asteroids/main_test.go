package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// withGameFlags sets the shared game flags for one test and restores them.
func withGameFlags(t *testing.T, cfgPath, difficulty, policy string, count int) {
	t.Helper()
	oldCfg, oldDiff, oldPolicy, oldCount := flagConfig, flagDifficulty, flagPolicy, flagAsteroids
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagPolicy, flagAsteroids = oldCfg, oldDiff, oldPolicy, oldCount
	})
	flagConfig, flagDifficulty, flagPolicy, flagAsteroids = cfgPath, difficulty, policy, count
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGameOptionsLoadsConfig(t *testing.T) {
	withGameFlags(t, writeConfig(t, "rules:\n  health: 7\n"), "hard", "instant", 0)

	opts, err := gameOptions()
	require.NoError(t, err)
	require.NotNil(t, opts.Config)
	require.Equal(t, 7, opts.Config.Rules.Health)
	require.Equal(t, config.DifficultyHard, opts.Preset)
	require.Equal(t, config.PolicyInstant, opts.Policy)
}

func TestGameOptionsRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "rules:\n  health: [\n"},
		{"failed validation", "ship:\n  drag: 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withGameFlags(t, writeConfig(t, tc.body), "", "", 0)
			_, err := gameOptions()
			require.Error(t, err)
		})
	}
}

func TestGameOptionsRejectsMissingConfig(t *testing.T) {
	withGameFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "", "", 0)
	_, err := gameOptions()
	require.Error(t, err)
}

func TestGameOptionsRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		policy     string
		count      int
	}{
		{"difficulty", "brutal", "", 0},
		{"policy", "", "forever", 0},
		{"count", "", "", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withGameFlags(t, writeConfig(t, "rules:\n  health: 3\n"), tc.difficulty, tc.policy, tc.count)
			_, err := gameOptions()
			require.Error(t, err)
		})
	}
}
