// Package session drives a game.Store: it owns the tick loop, runs the
// collision pass after every tick and maps taps and viewport changes to
// commands. Renderers only read snapshots.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// DefaultPeriod is the tick period used when Options.Period is zero.
const DefaultPeriod = 50 * time.Millisecond

// Options configures a Session.
type Options struct {
	Period time.Duration
	Logger *log.Logger
	// OnGameOver is called once per finished run from the goroutine that
	// stepped the session, outside the session lock.
	OnGameOver func(score, best int)
}

// Session is the caller side of the reducer. All methods are safe for
// concurrent use; commands are dispatched in the order the calls arrive.
type Session struct {
	mu       sync.Mutex
	store    *game.Store
	period   time.Duration
	logger   *log.Logger
	onOver   func(score, best int)
	viewport game.Size // Last measured size, replayed after Restart
	reported bool      // Game over already delivered for this run
}

// New creates a session around the given store.
func New(store *game.Store, opts Options) *Session {
	if opts.Period <= 0 {
		opts.Period = DefaultPeriod
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Session{
		store:  store,
		period: opts.Period,
		logger: opts.Logger,
		onOver: opts.OnGameOver,
	}
}

// NewGame wires a reducer and store for cfg, seeded with seed, and returns a
// session driving them. A zero Options.Period uses the configured tick.
func NewGame(cfg config.FlappyConfig, seed int64, opts Options) *Session {
	if opts.Period <= 0 {
		opts.Period = cfg.TickPeriod()
	}
	reducer := game.NewReducer(cfg, game.NewRand(seed))
	return New(game.NewStore(reducer, opts.Logger), opts)
}

// Period returns the tick period.
func (s *Session) Period() time.Duration {
	return s.period
}

// State returns the latest committed snapshot.
func (s *Session) State() game.ViewState {
	return s.store.Current()
}

// Measure reports the play zone size in length units. Degenerate sizes are
// ignored; the first valid size converts the placeholder geometry.
func (s *Session) Measure(width, height float64) {
	size := game.Size{Width: width, Height: height}
	if !size.Known() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewport == size {
		return
	}
	s.viewport = size
	if !s.store.Current().Viewport.Known() {
		s.store.Dispatch(game.NewCommand(game.ActionScreenSizeDetect).WithViewport(width, height))
	}
}

// Tap starts a waiting game or lifts the bird of a running one.
func (s *Session) Tap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.store.Current().Status {
	case game.StatusWaiting:
		s.store.Dispatch(game.NewCommand(game.ActionStart))
	case game.StatusRunning:
		s.store.Dispatch(game.NewCommand(game.ActionTouchLift))
	}
}

// Restart begins a new run, keeping the best score, and re-applies the
// remembered viewport.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Dispatch(game.NewCommand(game.ActionRestart))
	s.reported = false
	if s.viewport.Known() {
		s.store.Dispatch(game.NewCommand(game.ActionScreenSizeDetect).
			WithViewport(s.viewport.Width, s.viewport.Height))
	}
}

// Step advances one tick: AutoTick unless waiting, then one collision pass.
// The game-over hook runs after the session lock is released, so a slow hook
// delays only this call.
func (s *Session) Step() game.ViewState {
	st, over := s.step()
	if over && s.onOver != nil {
		s.onOver(st.Score, st.BestScore)
	}
	return st
}

// step reports whether this tick finished the run.
func (s *Session) step() (game.ViewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.store.Current()
	if st.Status != game.StatusWaiting {
		st = s.store.Dispatch(game.NewCommand(game.ActionAutoTick))
	}
	for _, cmd := range game.Evaluate(st) {
		st = s.store.Dispatch(cmd)
	}

	if !st.IsOver() || s.reported {
		return st, false
	}
	s.reported = true
	s.logger.Info("game over", "score", st.Score, "best", st.BestScore)
	return st, true
}

// Run ticks until ctx is cancelled and returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	s.logger.Info("tick loop started", "period", s.period)
	defer s.logger.Info("tick loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
}
