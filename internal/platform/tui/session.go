package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/editor"
	"github.com/vovakirdan/baamageddon/internal/registry"
	"github.com/vovakirdan/baamageddon/internal/storage"
)

// SessionOptions configures a menu-driven session.
type SessionOptions struct {
	Title  string
	GameID string
	Store  *storage.Store
	Logger *log.Logger

	// NewEditor opens the level editor. A nil func hides the editor entry.
	NewEditor func() (*editor.Editor, error)
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenEditor
	screenScores
)

// SessionModel manages the session flow: menu -> game, editor or scores -> menu.
// This is the top-level model for `baa menu` and for SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	config    core.RuntimeConfig
	sessionID string
	logger    *log.Logger
	screen    sessionScreen
	menu      MenuModel
	game      GameModel
	editor    EditorModel
	scores    ScoreboardModel
	err       string
	quitting  bool
}

// NewSessionModel creates a new session model. An empty sessionID gets a fresh one.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig, sessionID string) SessionModel {
	cfg = cfg.Normalized()
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", sessionID)

	return SessionModel{
		opts:      opts,
		config:    cfg,
		sessionID: sessionID,
		logger:    logger,
		menu:      NewMenuModel(opts.Title, cfg, opts.NewEditor != nil),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.config = m.menu.Config()
	m.err = ""

	switch selected.Choice {
	case ChoicePlay:
		game, err := registry.Create(m.opts.GameID)
		if err != nil {
			return m.backToMenu(err)
		}
		m.game = NewGameModel(game, m.opts.Store, m.config, m.logger)
		m.game.embedded = true
		m.screen = screenGame
		m.logger.Info("game started", "game", m.opts.GameID)
		return m, m.game.Init()

	case ChoiceEdit:
		ed, err := m.opts.NewEditor()
		if err != nil {
			return m.backToMenu(err)
		}
		m.editor = NewEditorModel(ed, m.opts.Store, m.config, m.logger)
		m.editor.embedded = true
		m.screen = screenEditor
		return m, m.editor.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.GameID, m.config.ScreenW, m.config.ScreenH)
		m.scores.embedded = true
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// backToMenu returns to a fresh menu, showing err when it is not nil.
func (m SessionModel) backToMenu(err error) (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Title, m.config, m.opts.NewEditor != nil)
	if err != nil {
		m.err = err.Error()
		m.logger.Error("session error", "err", err)
	}
	return m, m.menu.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.logger.Info("game ended", "game", m.opts.GameID, "score", m.game.State().Score)
		return m.backToMenu(nil)
	}

	return m, cmd
}

// updateEditor handles updates when in editor mode.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.editor.Update(msg)
	if editorModel, ok := newModel.(EditorModel); ok {
		m.editor = editorModel
	}

	if m.editor.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.editor.BackToMenu() {
		return m.backToMenu(nil)
	}

	return m, cmd
}

// updateScores handles updates when showing the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu(nil)
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenEditor:
		return m.editor.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.err != "" {
		view += "\n" + centerText(editorErrorStyle.Render(fmt.Sprintf("Error: %s", m.err)), m.config.ScreenW)
	}
	return view
}

// SessionID returns the identifier used in this session's log lines.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// RunSession runs a local menu-driven session until the user quits.
func RunSession(opts SessionOptions, cfg core.RuntimeConfig) error {
	model := NewSessionModel(opts, cfg, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
