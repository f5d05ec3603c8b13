package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/baamageddon/internal/storage"
)

const (
	minWidthForPanel = 80
	panelWidth       = 24
	maxScores        = 100
)

// allLevels is the filter that shows every level's scores.
const allLevels = ""

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists a game's high scores, optionally narrowed to one level,
// next to a panel of overall stats.
type ScoreboardModel struct {
	gameID string
	store  *storage.Store

	all     []storage.ScoreEntry
	levels  []string // Filters; allLevels first
	cursor  int
	scores  []storage.ScoreEntry
	stats   storage.GameStats
	loadErr error

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	showPanel bool

	quitting  bool
	goingBack bool
	embedded  bool // Inside a session: back returns to the menu
}

// NewScoreboardModel creates a scoreboard for gameID. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID:    gameID,
		store:     store,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
		showPanel: width >= minWidthForPanel,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// load reads every score once and derives the level filters from it.
func (m *ScoreboardModel) load() {
	m.levels = []string{allLevels}
	if m.store == nil {
		m.applyFilter()
		return
	}

	all, err := m.store.AllScores(m.gameID)
	if err != nil {
		m.loadErr = err
		m.applyFilter()
		return
	}
	m.all = all
	if stats, err := m.store.GetGameStats(m.gameID); err == nil {
		m.stats = *stats
	}

	seen := map[string]bool{}
	for _, s := range all {
		if s.Level != allLevels && !seen[s.Level] {
			seen[s.Level] = true
			m.levels = append(m.levels, s.Level)
		}
	}
	sort.Strings(m.levels[1:])
	m.applyFilter()
}

// applyFilter rebuilds the visible rows for the current level filter.
func (m *ScoreboardModel) applyFilter() {
	want := m.levels[m.cursor]
	m.scores = nil
	for _, s := range m.all {
		if want != allLevels && s.Level != want {
			continue
		}
		m.scores = append(m.scores, s)
		if len(m.scores) == maxScores {
			break
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			levelLabel(s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 12},
		{Title: "Date", Width: 14},
	}

	avail := m.width - 4
	if m.showPanel {
		avail -= panelWidth + 3
	}
	if avail > 52 {
		columns[2].Width = min(avail-34, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
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

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			m.cursor = (m.cursor + 1) % len(m.levels)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.cursor = (m.cursor + len(m.levels) - 1) % len(m.levels)
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPanel = m.width >= minWidthForPanel
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	scoreDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES"
	if f := m.levels[m.cursor]; f != allLevels {
		title += " - " + strings.ToUpper(f)
	}
	b.WriteString(scoreTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.filterLine(), m.width))
	b.WriteString("\n\n")

	board := scoreBoxStyle.Render(m.tableContent())
	if m.showPanel {
		panel := scoreBoxStyle.Width(panelWidth).Render(m.statsPanel())
		board = lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", board)
	}
	b.WriteString(board)

	b.WriteString("\n")
	b.WriteString(scoreDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) filterLine() string {
	label := "all levels"
	if f := m.levels[m.cursor]; f != allLevels {
		label = levelLabel(f)
	}
	return fmt.Sprintf("< %s >  (%d/%d)", label, m.cursor+1, len(m.levels))
}

func (m ScoreboardModel) statsPanel() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", panelWidth-4))
	b.WriteString("\n")

	if m.stats.GamesCount == 0 {
		b.WriteString(scoreDimStyle.Render("no games yet"))
		return b.String()
	}
	fmt.Fprintf(&b, "Games   %d\n", m.stats.GamesCount)
	fmt.Fprintf(&b, "Best    %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Levels  %d\n", len(m.levels)-1)
	fmt.Fprintf(&b, "Last    %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("cannot load scores: " + m.loadErr.Error())
	}
	if len(m.scores) == 0 {
		return scoreDimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nClear a level to set a high score!")
	}
	return m.table.View()
}

// Scores returns the rows currently shown.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// levelLabel names the level a score was set on.
func levelLabel(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
