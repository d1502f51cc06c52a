package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
	"github.com/vovakirdan/soaring-eagle/internal/games/eagle"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Config: config.DefaultEagleConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     7,
		},
		Level: 1,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestNewModelStartsSession(t *testing.T) {
	m := newTestModel(t)

	if got := m.Session().Phase(); got != eagle.PhasePlaying {
		t.Errorf("phase = %v, want %v", got, eagle.PhasePlaying)
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestTickAdvancesSessionClock(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(1000, 0)

	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	for i := 1; i <= 10; i++ {
		m, _ = update(t, m, TickMsg(start.Add(time.Duration(i)*100*time.Millisecond)))
	}

	if got := m.Session().TimeRemaining(); got != 29*time.Second {
		t.Errorf("time remaining = %v, want 29s", got)
	}
}

func TestPauseKeyPausesOnNextTick(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg(start.Add(100*time.Millisecond)))

	if got := m.Session().Phase(); got != eagle.PhasePaused {
		t.Fatalf("phase = %v, want %v", got, eagle.PhasePaused)
	}

	remaining := m.Session().TimeRemaining()
	m, _ = update(t, m, TickMsg(start.Add(5*time.Second)))
	if got := m.Session().TimeRemaining(); got != remaining {
		t.Errorf("clock moved while paused: %v -> %v", remaining, got)
	}
}

func TestBoostKeyTogglesAcceleration(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(start.Add(100*time.Millisecond)))

	if !m.Session().Accelerating() {
		t.Error("space should engage acceleration")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHelpKeyTogglesFullHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("help should expand")
	}
	m, _ = update(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("help should collapse")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40-hudHeight {
		t.Errorf("screen = %dx%d, want 120x%d", m.screen.Width(), m.screen.Height(), 40-hudHeight)
	}
}

func TestViewShowsHUD(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Level 1", "Score 0", "Stamina"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsModelTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveResult(storage.ResultRecord{
		Mode:     storage.ModeTournament,
		Level:    1,
		Outcome:  "tournament",
		Score:    42,
		Duration: 30 * time.Second,
	}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	m := NewResultsModel(store, 80, 24)
	if len(m.results) != 1 {
		t.Fatalf("tournament tab has %d rows, want 1", len(m.results))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if m.tab != 1 {
		t.Fatalf("tab = %d, want 1", m.tab)
	}
	if len(m.results) != 0 {
		t.Errorf("classic tab has %d rows, want 0", len(m.results))
	}
	if !strings.Contains(m.View(), "No results recorded yet") {
		t.Error("empty tab should show placeholder")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if len(m.results) != 1 {
		t.Errorf("recent tab has %d rows, want 1", len(m.results))
	}
}

func TestProfileFileName(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "alice.db"},
		{"a/b", "a_b.db"},
		{"", "player.db"},
		{".hidden", "player.hidden.db"},
	}

	for _, tt := range tests {
		if got := profileFileName(tt.user); got != tt.want {
			t.Errorf("profileFileName(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}
