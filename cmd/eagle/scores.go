package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/soaring-eagle/internal/platform/tui"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 tournament scores and the most recent flights.

Examples:
  eagle scores
  eagle scores -i      # Browse all results interactively`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a table")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open profile storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(storage.ModeTournament, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("Tournament High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No tournaments flown yet.")
		fmt.Println()
		fmt.Println("Play 'eagle play --tournament' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, statsErr := store.ModeStatsFor(storage.ModeTournament); statsErr == nil {
			fmt.Println()
			fmt.Printf("Best: %d   Average: %.1f   Played: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
		}
	}

	recent, err := store.RecentResults(5)
	if err != nil || len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent Flights")
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-16s  %-6s  %s\n", "Mode", "Level", "Outcome", "Score", "Date")
	for _, r := range recent {
		fmt.Printf("  %-10s  %-5d  %-16s  %-6d  %s\n",
			r.Mode, r.Level, r.Outcome, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
