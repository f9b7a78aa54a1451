package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
	"github.com/arcadelab/exodus/internal/game"
	"github.com/arcadelab/exodus/internal/profile"
)

// Model is the Bubble Tea model for a full exodus session: start menu,
// match, and game-over screen. All game rules live in game.Session; the
// model only samples input, drives ticks, and draws snapshots.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	cfg        core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	startTier  config.Tier // When set, the first tick starts this match directly
	quitting   bool
	backToMenu bool
}

// NewModel creates a session model. repo may be nil and username empty for
// a guest session.
func NewModel(match config.MatchConfig, cfg core.RuntimeConfig, repo profile.Repository, username string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		session:    game.NewSession(match, cfg, repo, username),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		cfg:        cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey accumulates actions into the frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "b" || msg.String() == "esc" {
		// Back leaves the session when no match is running
		if m.session.State() != game.StatePlaying {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse maps start-screen clicks onto difficulty selection.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.State() != game.StateStart {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	buttons := StartMenuLayout(m.cfg.ScreenW, m.cfg.ScreenH)
	tier, ok := StartMenuHit(buttons, msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch tier {
	case config.TierEasy:
		m.inputFrame.Set(core.ActionSelectEasy)
	case config.TierMedium:
		m.inputFrame.Set(core.ActionSelectMed)
	case config.TierHard:
		m.inputFrame.Set(core.ActionSelectHard)
	}
	return m, nil
}

// handleTick runs one simulation step with the sampled input frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.startTier != "" && m.session.State() == game.StateStart {
		m.session.StartMatch(m.startTier, time.Now().UnixMilli())
		m.startTier = ""
		return m, tickCmd(m.cfg.TickRate)
	}

	m.session.Step(m.inputFrame, time.Now().UnixMilli())
	m.inputFrame.Clear()
	return m, tickCmd(m.cfg.TickRate)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user backed out of the session.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given session parameters and
// blocks until the user quits. When startTier is non-empty the start menu
// is skipped and a match of that tier begins immediately.
func Run(match config.MatchConfig, cfg core.RuntimeConfig, repo profile.Repository, username string, startTier config.Tier) error {
	model := NewModel(match, cfg, repo, username)
	model.startTier = startTier

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Difficulty buttons are clickable
	)

	_, err := p.Run()
	return err
}
