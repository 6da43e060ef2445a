package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds",
	Long: `Display the top 10 scores, aggregate stats and the most recent rounds.
Without an argument every mode is shown.

Examples:
  asteroids scores
  asteroids scores asteroids
  asteroids scores asteroids_waves --recent 10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	var games []registry.GameInfo
	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see available modes.")
			os.Exit(1)
		}
		for _, g := range registry.List() {
			if g.ID == gameID {
				games = append(games, g)
			}
		}
	} else {
		games = registry.List()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, 10)
	if err != nil {
		return err
	}

	heading("High scores: " + g.Title)
	if len(scores) == 0 {
		note("No scores recorded yet.")
	} else {
		rows := make([][]string, len(scores))
		for i, e := range scores {
			rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Format("2006-01-02 15:04")}
		}
		printTable([]string{"Rank", "Score", "Date"}, rows)
	}

	stats, err := store.GetGameStats(g.ID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		note(fmt.Sprintf("Best %d  Average %.0f  Scored rounds %d  Cleared fields %d  Best wave %d",
			stats.HighScore, stats.AvgScore, stats.GamesCount, stats.Wins, stats.BestWave))
	}

	if flagRecent <= 0 {
		return nil
	}
	rounds, err := store.RecentRounds(g.ID, flagRecent)
	if err != nil || len(rounds) == 0 {
		return err
	}

	rows := make([][]string, len(rounds))
	for i, r := range rounds {
		rows[i] = []string{
			shortID(r.RoundID),
			r.Outcome,
			strconv.Itoa(r.Wave),
			strconv.Itoa(r.Asteroids),
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Frames, 10),
			shortID(r.SessionID),
		}
	}
	fmt.Println()
	heading("Recent rounds")
	printTable([]string{"Round", "Result", "Wave", "Asteroids", "Score", "Frames", "Session"}, rows)
	return nil
}
