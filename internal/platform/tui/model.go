package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neonwave/invaders/internal/audio"
	"github.com/neonwave/invaders/internal/core"
	"github.com/neonwave/invaders/internal/registry"
	"github.com/neonwave/invaders/internal/storage"
)

// Model is the Bubble Tea model driving a game session. It owns the fixed
// tick loop, maps keys to input frames, fans sound events into the audio
// sink, and persists the run when it ends.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	sink   audio.Sink

	keys GameKeyMap
	help help.Model

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	ticks        int  // Ticks since the current run started
	muted        bool
	quitting     bool
	sessionSaved bool // Whether this game over has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, sink audio.Sink, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sink == nil {
		sink = audio.NopSink{}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sink:       sink,
		keys:       DefaultGameKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

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
		m.sink.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.inputFrame.Set(core.ActionLeft)

	case key.Matches(msg, m.keys.Right):
		m.inputFrame.Set(core.ActionRight)

	case key.Matches(msg, m.keys.Fire):
		m.inputFrame.Set(core.ActionFire)

	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The bottom row is reserved
// for the help bar.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	gameH := msg.Height - 1
	if gameH < 1 {
		gameH = 1
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameH
	m.screen.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Restarted: the game left its game-over state, new run begins
	if wasOver && !m.gameState.GameOver {
		m.ticks = 0
		m.sessionSaved = false
	}
	if !m.gameState.GameOver {
		m.ticks++
	}

	// Play back this tick's sound events
	if !m.muted {
		for _, ev := range result.Events {
			m.sink.Trigger(ev)
		}
	}

	// Persist the run on game over (once)
	if m.gameState.GameOver && !m.sessionSaved {
		m.saveSession()
		m.sessionSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveSession records the finished run. Best-effort: the game keeps
// running whether or not persistence works.
func (m *Model) saveSession() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	tickRate := m.config.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	//nolint:errcheck
	m.store.SaveSession(storage.SessionRecord{
		GameID:       m.game.ID(),
		Score:        m.gameState.Score,
		Wave:         m.gameState.Wave,
		Multishot:    m.gameState.Multishot,
		DurationSecs: m.ticks / tickRate,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sink audio.Sink, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sink, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
