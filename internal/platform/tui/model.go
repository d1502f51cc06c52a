package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
	"github.com/vovakirdan/soaring-eagle/internal/games/eagle"
	"github.com/vovakirdan/soaring-eagle/internal/profile"
)

const feeTimeout = 2 * time.Second

// Options configures a game model.
type Options struct {
	Config     config.EagleConfig
	Runtime    core.RuntimeConfig
	Level      int
	Tournament bool
	Profile    *profile.Service // nil plays without persistence
	Cosmetics  eagle.Cosmetics
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a Soaring Eagle session.
type Model struct {
	game       *eagle.Game
	session    *eagle.Session
	profile    *profile.Service
	screen     *core.Screen
	runtime    core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	stamina    progress.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	status     string
	quitting   bool
}

// NewModel creates the model and starts the session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cosmetics := opts.Cosmetics
	if cosmetics.SkinID == "" {
		cosmetics = eagle.DefaultCosmetics
	}

	sessionOpts := []eagle.Option{
		eagle.WithSeed(rt.Seed),
		eagle.WithLogger(logger),
		eagle.WithCosmetics(cosmetics),
	}
	if opts.Profile != nil {
		sessionOpts = append(sessionOpts, eagle.WithProfile(opts.Profile))
	}
	session := eagle.NewSession(opts.Config, sessionOpts...)
	session.Start(opts.Level, opts.Tournament)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       eagle.NewGame(session),
		session:    session,
		profile:    opts.Profile,
		screen:     core.NewScreen(rt.ScreenW, max(0, rt.ScreenH-hudHeight)),
		runtime:    rt,
		keys:       DefaultKeyMap(),
		help:       h,
		stamina:    newStaminaBar(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-hudHeight))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Step(m.inputFrame, time.Time(msg))
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.payTournamentRematch() {
			return m, nil
		}
	}

	m.status = ""
	m.inputFrame.Set(action)
	return m, nil
}

// payTournamentRematch charges the entry fee before replaying a finished
// tournament. It reports whether the restart may proceed.
func (m *Model) payTournamentRematch() bool {
	s := m.session
	if !s.Tournament() || s.Phase() != eagle.PhaseFinished || m.profile == nil {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), feeTimeout)
	defer cancel()

	err := m.profile.StartTournament(ctx)
	switch {
	case err == nil:
		return true
	case errors.Is(err, profile.ErrInsufficientCoins):
		m.status = "not enough coins for another tournament"
	default:
		m.logger.Error("cannot start tournament", "err", err)
		m.status = "tournament unavailable"
	}
	return false
}

// saveScreenshot saves the current scene to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".eagle", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("eagle_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	hud := renderHUD(m.session.Snapshot(), m.stamina, m.status, m.runtime.ScreenW)
	return hud + "\n" + RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the running session.
func (m Model) Session() *eagle.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
