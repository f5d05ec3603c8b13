package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/baamageddon/internal/core"
	"github.com/vovakirdan/baamageddon/internal/registry"
	"github.com/vovakirdan/baamageddon/internal/storage"
)

// levelNamer is implemented by games that play a named level.
type levelNamer interface {
	LevelName() string
}

// holdWindow is how many ticks a key counts as held after its last event.
// It has to bridge the gap before the terminal's key repeat kicks in.
func holdWindow(tickRate int) int {
	return max(tickRate/4, 4)
}

// GameModel is the Bubble Tea model that runs a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *core.HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // Inside a session: back returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A nil store disables score saving and a nil logger discards messages.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	cfg = cfg.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      core.NewHoldTracker(holdWindow(cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionNone:
		return m, nil
	}

	// Key repeats of a held key extend the hold without pressing again.
	if Held(action) && m.holds.Active(action) {
		m.holds.Touch(action)
		return m, nil
	}
	m.inputFrame.Press(action)
	if Held(action) {
		m.holds.Touch(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.holds.Reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once per run)
	switch {
	case !m.gameState.GameOver:
		m.scoreSaved = false
	case !m.scoreSaved && m.gameState.Score > 0:
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveScore() {
	if m.store == nil {
		return
	}
	levelName := ""
	if ln, ok := m.game.(levelNamer); ok {
		levelName = ln.LevelName()
	}
	// Best-effort save, game continues regardless
	if _, err := m.store.SaveScore(m.game.ID(), levelName, m.gameState.Score); err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "level", levelName, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".baa", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing game until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
