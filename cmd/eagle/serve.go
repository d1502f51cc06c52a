package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/soaring-eagle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagDataDir     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Soaring Eagle SSH server",
	Long: `Start an SSH server that allows users to connect and fly.

Each SSH user gets their own profile database under --data-dir, so coins,
levels and achievements follow the user name across connections.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.eagle/host_key

Examples:
  eagle serve                           # Listen on :23234 with auto-generated key
  eagle serve --ssh :2222               # Listen on port 2222
  eagle serve --host-key ./my_host_key  # Use specific host key
  eagle serve --data-dir /var/lib/eagle # Store player profiles elsewhere

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.eagle/players", "Directory for per-user profile databases")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runServe(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(cmd, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if !cmd.Flags().Changed("ssh") && envOverrides.SSHAddr != "" {
		flagSSHAddr = envOverrides.SSHAddr
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DataDir = flagDataDir
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Game = gameCfg
	cfg.Logger = logger.WithPrefix("eagle-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Soaring Eagle SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
