package tui

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/baamageddon/internal/aabb"
	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/editor"
	"github.com/vovakirdan/baamageddon/internal/level"
	"github.com/vovakirdan/baamageddon/internal/storage"
)

var (
	editorHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	editorErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// EditorModel is the Bubble Tea model for the level editor.
// The last screen row is kept for the key help bar.
type EditorModel struct {
	editor   *editor.Editor
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     EditorKeyMap
	help     help.Model
	mouseCol int
	mouseRow int
	status   string
	embedded bool

	quitting   bool
	backToMenu bool
}

// NewEditorModel creates an editor model around ed. Saved levels are also
// recorded as revisions in store when it is not nil.
func NewEditorModel(ed *editor.Editor, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) EditorModel {
	cfg = cfg.Normalized()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return EditorModel{
		editor: ed,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultEditorKeyMap(),
		help:   h,
	}
}

// Init starts the editor's frame timer.
func (m EditorModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.editor.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Up):
		m.editor.Scroll(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.editor.Scroll(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.editor.Scroll(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.editor.Scroll(1, 0)

	case key.Matches(msg, m.keys.ZoomIn):
		m.editor.Zoom(1)
	case key.Matches(msg, m.keys.ZoomOut):
		m.editor.Zoom(-1)

	case key.Matches(msg, m.keys.Mode):
		m.editor.CycleMode()

	case key.Matches(msg, m.keys.Variant):
		m.editor.SetVariant(int(msg.String()[0] - '0'))

	case key.Matches(msg, m.keys.Delete):
		m.editor.Delete(m.world(m.mouseCol, m.mouseRow))

	case key.Matches(msg, m.keys.Help):
		m.editor.ToggleHelp()
		m.help.ShowAll = m.editor.HelpVisible()
	}

	return m, nil
}

// world converts a screen cell to the world point under its center.
func (m EditorModel) world(col, row int) aabb.Vec2 {
	vp := m.editor.Viewport(m.screen.Width(), m.screen.Height())
	x, y := vp.CellToWorld(col, row)
	return aabb.V(x, y)
}

func (m *EditorModel) handleMouse(msg tea.MouseMsg) {
	m.mouseCol, m.mouseRow = msg.X, msg.Y
	p := m.world(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.editor.Press(p)
		case tea.MouseButtonRight:
			m.editor.Delete(p)
		case tea.MouseButtonWheelUp:
			m.editor.Zoom(1)
		case tea.MouseButtonWheelDown:
			m.editor.Zoom(-1)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.editor.Drag(p)
		}
	case tea.MouseActionRelease:
		m.editor.Release()
	}
}

// save writes the level file and records a revision of it.
func (m *EditorModel) save() {
	m.status = ""
	if err := m.editor.Save(); err != nil {
		m.status = err.Error()
		return
	}
	if m.store == nil {
		return
	}

	lvl := m.editor.Level()
	content, err := level.Marshal(lvl, filepath.Ext(m.editor.Path()))
	if err != nil {
		m.logger.Warn("could not encode level revision", "err", err)
		return
	}
	id, err := m.store.SaveLevelRevision(lvl.Name, content, len(lvl.Objects))
	if err != nil {
		m.logger.Error("could not store level revision", "level", lvl.Name, "err", err)
		return
	}
	m.logger.Debug("level revision stored", "level", lvl.Name, "revision", id)
}

// View renders the editor and its help bar.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.editor.Render(m.screen)
	bar := editorHelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.status != "" {
		bar = editorErrorStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + bar
}

// Editor returns the wrapped editor.
func (m EditorModel) Editor() *editor.Editor {
	return m.editor
}

// Status returns the last save error shown in the help bar, if any.
func (m EditorModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m EditorModel) BackToMenu() bool {
	return m.backToMenu
}

// RunEditor starts a Bubble Tea program editing with ed until the user quits.
func RunEditor(ed *editor.Editor, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewEditorModel(ed, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
