package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/events"
	"github.com/vovakirdan/tui-whack/internal/logging"
	"github.com/vovakirdan/tui-whack/internal/registry"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

// Options wires the collaborators of a game session. Zero values are
// valid: no history, discarded logs, silence.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sound  audio.Player
}

// session holds the state shared by every copy of the Model.
type session struct {
	queue      *core.InputQueue
	dispatcher *events.Dispatcher
	recorder   *events.Recorder
	muted      bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	pointer   registry.Pointer // nil if the game has no clickable targets
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	session   *session
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New(nil, log.InfoLevel, "")
	}

	s := &session{
		queue:      core.NewInputQueue(core.DefaultQueueSize),
		dispatcher: events.NewDispatcher(),
	}

	if opts.Sound != nil {
		sound := events.Sound(opts.Sound)
		s.dispatcher.SubscribeAll(events.ListenerFunc(func(ev core.Event) {
			if !s.muted {
				sound.OnEvent(ev)
			}
		}))
	}
	s.dispatcher.SubscribeAll(events.Log(logger, game.ID()))
	if opts.Store != nil {
		s.recorder = events.NewRecorder(opts.Store, game.ID(), logger)
		s.dispatcher.Subscribe(s.recorder,
			core.EventRoundStart, core.EventHit, core.EventMiss, core.EventEscape, core.EventRoundEnd)
	}

	pointer, _ := game.(registry.Pointer)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		pointer:   pointer,
		screen:    core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    logger,
		session:   s,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg, m.pointer); ok {
			m.push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys.Mute) {
		m.session.muted = !m.session.muted
		return m, nil
	}

	ev, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.cancelRound()
		m.quitting = true
		return m, tea.Quit
	}
	if ev.Action != core.ActionNone {
		m.push(ev)
	}
	return m, nil
}

// cancelRound closes out a round still in progress so the listeners
// record it before the program exits.
func (m Model) cancelRound() {
	if c, ok := m.game.(registry.Canceler); ok {
		m.session.dispatcher.DispatchAll(c.Cancel())
	}
}

// push queues an input event for the next tick.
func (m Model) push(ev core.InputEvent) {
	if !m.session.queue.Push(ev) {
		m.logger.Debug("input dropped", "action", ev.Action, "dropped", m.session.queue.Dropped())
	}
}

// handleResize processes window resize events. The game lays itself out
// on every render, so a resize never restarts the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the inputs queued since the
// previous tick and hands its events to the listeners.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.session.queue.Drain()

	result := m.game.Step(frame)
	m.gameState = result.State
	m.session.dispatcher.DispatchAll(result.Events)

	return m, tickCmd(m.config.TickDuration())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	help := m.help.ShortHelpView(m.keyMapper.Keys.ShortHelp())
	if m.session.muted {
		help += "  (muted)"
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(help)
}

// LastRound returns the most recent round recorded in this session.
func (m Model) LastRound() (storage.RoundRecord, bool) {
	if m.session.recorder == nil {
		return storage.RoundRecord{}, false
	}
	return m.session.recorder.Last()
}

// Run starts the Bubble Tea program with the given game and returns the
// last round recorded, if any.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (storage.RoundRecord, bool, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks become taps
	)

	finalModel, err := p.Run()
	if err != nil {
		return storage.RoundRecord{}, false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return storage.RoundRecord{}, false, nil
	}
	rec, played := m.LastRound()
	return rec, played, nil
}
