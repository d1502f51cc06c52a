package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
	"github.com/vovakirdan/soaring-eagle/internal/profile"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.eagle/host_key.
	HostKeyPath string

	// DataDir holds one profile database per SSH user.
	DataDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Game is the simulation config shared by all sessions.
	Game config.EagleConfig

	// Logger receives server logs. A default stderr logger is used if nil.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DataDir:     "~/.eagle/players",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultEagleConfig(),
	}
}

type profileKey struct{}

// playerProfile is the per-connection persistence opened by the
// profile middleware.
type playerProfile struct {
	store   *storage.Store
	service *profile.Service
}

// SSHServer wraps a Wish SSH server for remote play.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "eagle-ssh",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".eagle", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging, then profile, then the program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.profileMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	opts := Options{
		Config: s.config.Game,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Level:  1,
		Logger: s.logger.WithPrefix(sshSession.User()),
	}

	if p, ok := sshSession.Context().Value(profileKey{}).(*playerProfile); ok {
		opts.Profile = p.service
		ctx, cancel := context.WithTimeout(sshSession.Context(), feeTimeout)
		snap, err := p.service.Snapshot(ctx)
		cancel()
		if err == nil {
			opts.Level = snap.MaxAvailableLevel
			opts.Cosmetics = snap.Cosmetics()
		}
	}

	return NewModel(opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// profileMiddleware opens the connecting user's profile for the lifetime
// of the session. Play continues without persistence if it cannot.
func (s *SSHServer) profileMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		path := filepath.Join(s.config.DataDir, profileFileName(sshSession.User()))
		store, err := storage.Open(path)
		if err != nil {
			s.logger.Warn("could not open profile database", "user", sshSession.User(), "error", err)
			next(sshSession)
			return
		}

		p := &playerProfile{
			store:   store,
			service: profile.NewService(store, s.config.Game, s.logger),
		}
		sshSession.Context().SetValue(profileKey{}, p)

		next(sshSession)

		p.service.Close()
		store.Close()
	}
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// profileFileName maps an SSH user name to a safe database file name.
func profileFileName(user string) string {
	name := unsafeName.ReplaceAllString(user, "_")
	if name == "" || name[0] == '.' {
		name = "player" + name
	}
	return name + ".db"
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
