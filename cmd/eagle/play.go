package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
	"github.com/vovakirdan/soaring-eagle/internal/platform/tui"
	"github.com/vovakirdan/soaring-eagle/internal/profile"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagTournament bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a level",
	Long: `Start a flight. Without --level the highest unlocked level is flown.

Controls:
  Up/W       - Climb
  Down/S     - Dive
  Space      - Toggle boost (drains stamina, doubles your speed)
  P/Esc      - Pause
  R          - Restart
  N          - Next level (after a victory)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6

Tournament mode costs an entry fee in coins. Every flight lasts the
same time and only the score counts.

Examples:
  eagle play
  eagle play --level 5
  eagle play --difficulty hard
  eagle play --tournament
  eagle play --config ./my-eagle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to fly (0 = highest unlocked)")
	playCmd.Flags().BoolVar(&flagTournament, "tournament", false, "Fly a tournament (costs coins)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(cmd, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	opts := tui.Options{
		Config:     gameCfg,
		Runtime:    rt,
		Level:      1,
		Tournament: flagTournament,
		Logger:     logger,
	}

	// Open profile storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if flagTournament {
			fmt.Fprintf(os.Stderr, "Error: tournaments need a profile database: %v\n", err)
			os.Exit(1)
		}
		// Continue without storage - the flight still works
		logger.Warn("could not open profile database", "path", flagDBPath, "err", err)
		store = nil
	}

	var svc *profile.Service
	if store != nil {
		svc = profile.NewService(store, gameCfg, logger)
		opts.Profile = svc

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		snap, snapErr := svc.Snapshot(ctx)
		cancel()
		if snapErr != nil {
			logger.Warn("could not read profile", "err", snapErr)
		} else {
			opts.Level = snap.MaxAvailableLevel
			opts.Cosmetics = snap.Cosmetics()
		}

		if flagTournament {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			feeErr := svc.StartTournament(ctx)
			cancel()
			if feeErr != nil {
				closeProfile(svc, store)
				if errors.Is(feeErr, profile.ErrInsufficientCoins) {
					fmt.Fprintf(os.Stderr, "Not enough coins: a tournament costs %d.\n", gameCfg.Tournament.EntryFee)
					fmt.Fprintln(os.Stderr, "Complete classic levels to earn more.")
				} else {
					fmt.Fprintf(os.Stderr, "Error starting tournament: %v\n", feeErr)
				}
				os.Exit(1)
			}
		}
	}

	if preset := config.StartLevelForPreset(config.DifficultyPreset(flagDifficulty)); preset > 0 {
		opts.Level = preset
	}
	if flagLevel > 0 {
		opts.Level = flagLevel
	}

	runErr := tui.Run(opts)

	// Close before potential exit so queued results are flushed
	closeProfile(svc, store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func closeProfile(svc *profile.Service, store *storage.Store) {
	if svc != nil {
		svc.Close()
	}
	if store != nil {
		store.Close()
	}
}
