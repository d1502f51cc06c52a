package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/soaring-eagle/internal/profile"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show coins, progression and achievements",
	Args:  cobra.NoArgs,
	Run:   runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runProfile(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(cmd, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	svc := profile.NewService(store, gameCfg, logger)
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
		return
	}

	p := snap.Profile
	fmt.Println("Pilot Profile")
	fmt.Println()
	fmt.Printf("  Coins:              %d\n", p.Coins)
	fmt.Printf("  Highest level:      %d of %d\n", p.MaxCompletedLevel, gameCfg.Difficulty.MaxLevel)
	fmt.Printf("  Next level:         %d\n", snap.MaxAvailableLevel)
	fmt.Printf("  Levels completed:   %d\n", p.LevelsCompleted)
	fmt.Printf("  Perfect levels:     %d\n", p.PerfectLevels)
	fmt.Printf("  Coins collected:    %d\n", p.CoinsCollected)
	fmt.Printf("  Tournaments flown:  %d\n", p.TournamentsPlayed)
	fmt.Printf("  Eagle:              %s #%d over %s\n", p.SkinID, p.TypeID, p.BackgroundID)

	fmt.Println()
	fmt.Println("Achievements")
	fmt.Println()
	for _, a := range profile.Catalog {
		mark := "[ ]"
		if snap.Unlocked(a.ID) {
			mark = "[x]"
		}
		fmt.Printf("  %s %-18s %s\n", mark, a.Title, a.Description)
	}
}
