package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/session"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// helpRows is the height reserved below the play area for the full help.
const helpRows = 2

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig
	Runs    *storage.Store // Optional run history
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one game. The session ticks on its own
// goroutine; the model forwards input and redraws snapshots.
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	session  *session.Session
	screen   *core.Screen
	term     config.TerminalConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model whose tick loop stops when ctx is done or the
// player quits.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	seed := rt.ResolveSeed(time.Now())

	sess := session.NewGame(opts.Config, seed, session.Options{
		Period:     rt.Tick,
		Logger:     logger,
		OnGameOver: saveRun(opts.Runs, rt.Player, logger),
	})

	ctx, cancel := context.WithCancel(ctx)
	m := Model{
		ctx:     ctx,
		cancel:  cancel,
		session: sess,
		screen:  core.NewScreen(0, 0),
		term:    opts.Config.Terminal,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	logger.Debug("game created", "seed", seed, "player", rt.Player)
	return m
}

// saveRun returns the game-over hook that records finished runs.
func saveRun(runs *storage.Store, player string, logger *log.Logger) func(score, best int) {
	return func(score, best int) {
		if runs == nil {
			return
		}
		if _, err := runs.SaveRun(player, score, best); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
}

// Session exposes the underlying session.
func (m Model) Session() *session.Session {
	return m.session
}

// Init starts the tick loop and the frame clock.
func (m Model) Init() tea.Cmd {
	go func() {
		//nolint:errcheck // Run only returns the context error
		m.session.Run(m.ctx)
	}()
	return frameCmd(m.session.Period())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if m.ctx.Err() != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, frameCmd(m.session.Period())
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Intent(msg) {
	case core.IntentQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.IntentFlap:
		m.session.Tap()
	case core.IntentRestart:
		if m.session.State().IsOver() {
			m.session.Restart()
		}
	case core.IntentHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// resize fits the screen to the terminal and reports the play zone.
// The snapshot only accepts its first measurement; later sizes apply after
// a restart.
func (m *Model) resize(width, height int) {
	rows := max(height-helpRows, 0)
	m.screen.Resize(width, rows)
	zone := scene.ZoneSize(width, rows, m.term)
	m.session.Measure(zone.Width, zone.Height)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	scene.Draw(m.screen, m.session.State(), m.term)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local Bubble Tea program and blocks until the player quits
// or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
