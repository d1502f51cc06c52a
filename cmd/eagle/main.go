// eagle is a side-scrolling flight game for the terminal.
//
// Usage:
//
//	eagle play               - Fly a level (or a tournament with --tournament)
//	eagle scores             - Show the tournament leaderboard and recent flights
//	eagle profile            - Show coins, progression and achievements
//	eagle serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.eagle/eagle.db)
//	--log-level <lvl>   - Set log level: debug, info, warn, error
//
// Each global flag may also come from EAGLE_FPS, EAGLE_SEED, EAGLE_DB and
// EAGLE_LOG_LEVEL. Flags given on the command line win.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/soaring-eagle/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	envOverrides config.EnvOverrides
	logger       *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eagle",
	Short: "Soaring Eagle - dodge the sky, collect the coins",
	Long: `Soaring Eagle is a terminal side-scroller. Steer the eagle up and
down, dodge clouds, balloons and zeppelins, and grab coins until the
clock runs out. The first hit is forgiven, the second ends the flight.

Available commands:
  play     - Fly a level or a tournament
  scores   - View the leaderboard
  profile  - View coins and achievements
  serve    - Start SSH server for remote play

Examples:
  eagle play
  eagle play --level 4
  eagle play --tournament
  eagle serve --ssh :2222
  eagle scores`,
	PersistentPreRunE: applyEnvironment,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eagle/eagle.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnvironment fills unset flags from the environment and builds the logger.
func applyEnvironment(cmd *cobra.Command, _ []string) error {
	var err error
	envOverrides, err = config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") && envOverrides.FPS > 0 {
		flagFPS = envOverrides.FPS
	}
	if !flags.Changed("seed") && envOverrides.Seed != 0 {
		flagSeed = envOverrides.Seed
	}
	if !flags.Changed("db") && envOverrides.DBPath != "" {
		flagDBPath = envOverrides.DBPath
	}
	if !flags.Changed("log-level") && envOverrides.LogLevel != "" {
		flagLogLevel = envOverrides.LogLevel
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "eagle",
	})
	return nil
}

// loadGameConfig resolves the YAML config path from the flag or environment.
func loadGameConfig(cmd *cobra.Command, path string) (config.EagleConfig, error) {
	if !cmd.Flags().Changed("config") && envOverrides.ConfigPath != "" {
		path = envOverrides.ConfigPath
	}
	return config.LoadEagle(path)
}
