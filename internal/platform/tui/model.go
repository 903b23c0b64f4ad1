package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Model is the Bubble Tea model hosting one Snake game.
// The board is drawn one pixel per character cell.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	palette  *Palette
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	width    int // Terminal size; zero until the first resize
	height   int
	quitting bool
	err      error
}

// NewModel creates a model for the given configuration. The surface size
// comes from the grid and terminal tile settings; a zero seed is replaced
// by the current time.
func NewModel(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Loop.TickRate
	}
	rt.ScreenW, rt.ScreenH = cfg.TerminalSize()

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	game, err := snake.New(screen, cfg, rt, snake.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}

	return Model{
		game:    game,
		screen:  screen,
		palette: NewPalette(lipgloss.DefaultRenderer()),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  rt,
		logger:  logger,
	}, nil
}

// WithRenderer returns a copy of m that styles output with r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.palette = NewPalette(r)
	return m
}

// Init draws the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Draw()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.game.OnKeyDown(m.keys.Translate(msg))
	return m, nil
}

// handleTick runs one game frame. The game is paused while the terminal
// is too small to show the board.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.TooSmall() {
		return m, tickCmd(m.config.TickRate)
	}

	if err := m.game.Update(); err != nil {
		m.logger.Error("game update failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.game.Draw()

	return m, tickCmd(m.config.TickRate)
}

// TooSmall reports whether the last known terminal size cannot fit the
// board plus the help line.
func (m Model) TooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+1
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// saveScreenshot writes the current board as plain text under
// ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame with a help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.TooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize to continue, q to quit.",
			m.screen.Width(), m.screen.Height()+1, m.width, m.height)
	}

	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program for one game.
func Run(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
