package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

const maxResults = 100

// resultsTab is one view of the results board.
type resultsTab struct {
	title string
	mode  string // empty for recent results of every mode
}

var resultsTabs = []resultsTab{
	{title: "Tournament", mode: storage.ModeTournament},
	{title: "Classic", mode: storage.ModeClassic},
	{title: "Recent"},
}

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab},
		{k.Quit},
	}
}

// DefaultResultsKeyMap returns the default results board bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results board.
type ResultsModel struct {
	store    *storage.Store
	tab      int
	results  []storage.ResultRecord
	err      error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int
	quitting bool
}

// NewResultsModel creates a results board showing the tournament tab.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	m := ResultsModel{
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Outcome", Width: 11},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the rows for the current tab.
func (m *ResultsModel) load() {
	m.results, m.err = nil, nil
	if m.store != nil {
		tab := resultsTabs[m.tab]
		if tab.mode == "" {
			m.results, m.err = m.store.RecentResults(maxResults)
		} else {
			m.results, m.err = m.store.TopScores(tab.mode, maxResults)
		}
	}
	m.table.SetRows(resultRows(m.results))
	m.table.GotoTop()
}

func resultRows(results []storage.ResultRecord) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			r.Outcome,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the results board.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(resultsTabs)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(resultsTabs) - 1) % len(resultsTabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(resultRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SOARING EAGLE RESULTS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ResultsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(resultsTabs))
	for i, t := range resultsTabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(t.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not load results:\n" + m.err.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No results recorded yet.\nTake off and set the first score!")
	}
	return m.table.View()
}

// centerText pads text so it appears centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunResults runs the results board until the user quits.
func RunResults(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
