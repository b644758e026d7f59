package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// cellWidth is the number of terminal columns per grid cell. Terminal
// glyphs are roughly twice as tall as wide, so two columns keep the board
// close to square.
const cellWidth = 2

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// ModelOptions configures a Model.
type ModelOptions struct {
	// FPS is the simulation and redraw rate.
	FPS int

	// Width and Height are the initial terminal size. Zero means unknown
	// until the first WindowSizeMsg.
	Width, Height int

	Logger *log.Logger
}

// Model is the Bubble Tea model for a single Pac-Man session.
type Model struct {
	game   *pacman.Game
	screen *core.Screen
	canvas *core.ScreenCanvas
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	fps        int
	inputFrame core.InputFrame
	gameState  core.GameState

	width, height int
	quitting      bool
}

// NewModel creates a model for the given game.
func NewModel(game *pacman.Game, opts ModelOptions) Model {
	grid := game.Settings().Grid

	// Board plus a one-cell border on every side
	screen := core.NewScreen(grid.Cols*cellWidth+2, grid.Rows+2)
	screen.DrawBox(core.NewRect(0, 0, screen.Width(), screen.Height()))

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     screen,
		canvas:     core.NewScreenCanvas(screen, grid, 1, 1, cellWidth),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		fps:        max(opts.FPS, 1),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// Init starts the frame tick and the redirect timer.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "fps", m.fps, "enemies", m.gameState.Enemies)
	return tea.Batch(
		tickCmd(m.fps),
		redirectCmd(m.game.Settings().RedirectEvery),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.inputFrame.Set(m.keys.Action(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RedirectMsg:
		m.inputFrame.Set(core.ActionRedirect)
		return m, redirectCmd(m.game.Settings().RedirectEvery)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick feeds the events gathered since the last tick to the game
// and redraws the board.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if !m.gameState.Running {
		m.logger.Debug("game stopped", "tick", m.gameState.Tick)
		m.quitting = true
		return m, tea.Quit
	}

	if result.Eaten > 0 {
		m.logger.Debug("enemies eaten", "tick", m.gameState.Tick, "count", result.Eaten)
	}
	if result.Respawned {
		m.logger.Info("enemy batch respawned", "tick", m.gameState.Tick)
	}

	m.game.Render(m.canvas)
	return m, tickCmd(m.fps)
}

// View renders the current board to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		msg := warnStyle.Render("Window too small")
		need := fmt.Sprintf("need %dx%d", m.screen.Width(), m.screen.Height()+2)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, msg, helpStyle.Render(need)))
	}

	hud := hudStyle.Render(fmt.Sprintf("%s  Enemies: %d  Tick: %d",
		m.game.Title(), m.gameState.Enemies, m.gameState.Tick))

	return lipgloss.JoinVertical(lipgloss.Left,
		hud,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// tooSmall reports whether the terminal cannot fit the board, HUD and help line.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+2
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *pacman.Game, opts ModelOptions) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
