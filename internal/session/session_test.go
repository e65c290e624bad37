package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	store := game.NewStore(game.NewReducer(config.Default(), game.NewRand(1)), nil)
	return New(store, opts)
}

func TestNewDefaults(t *testing.T) {
	s := newTestSession(t, Options{})
	if s.Period() != DefaultPeriod {
		t.Errorf("Period() = %v, expected %v", s.Period(), DefaultPeriod)
	}
	if s.State().Status != game.StatusWaiting {
		t.Errorf("initial status = %v, expected Waiting", s.State().Status)
	}
}

func TestWaitingStepHovers(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Measure(960, 616)
	before := s.State()

	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.State() != before {
		t.Error("Step while waiting should not change the snapshot")
	}
}

func TestTapMapping(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Measure(960, 616)

	s.Tap()
	st := s.State()
	if st.Status != game.StatusRunning || st.Bird.Offset != 0 {
		t.Fatalf("first tap should only start, got %v offset %f", st.Status, st.Bird.Offset)
	}

	s.Tap()
	if st = s.State(); !st.IsLifting() {
		t.Error("tap while running should lift the bird")
	}
}

func TestMeasure(t *testing.T) {
	s := newTestSession(t, Options{})

	s.Measure(0, 100)
	if s.State().Viewport.Known() {
		t.Fatal("degenerate size should be ignored")
	}

	s.Measure(960, 616)
	if got := s.State().Viewport; got != (game.Size{Width: 960, Height: 616}) {
		t.Fatalf("Viewport = %+v, expected 960x616", got)
	}

	// A resize mid-run leaves the geometry alone until the next restart
	s.Measure(800, 500)
	if got := s.State().Viewport; got.Width != 960 {
		t.Errorf("resize applied mid-run: %+v", got)
	}

	s.Restart()
	if got := s.State().Viewport; got != (game.Size{Width: 800, Height: 500}) {
		t.Errorf("after Restart Viewport = %+v, expected 800x500", got)
	}
}

// crash taps once and ticks until the bird falls onto the ground.
func crash(t *testing.T, s *Session) game.ViewState {
	t.Helper()
	s.Tap()
	for i := 0; i < 500; i++ {
		if st := s.Step(); st.IsOver() {
			return st
		}
	}
	t.Fatal("bird never reached the ground")
	return game.ViewState{}
}

func TestGameOverReportedOnce(t *testing.T) {
	var calls int
	var lastScore, lastBest int
	s := newTestSession(t, Options{OnGameOver: func(score, best int) {
		calls++
		lastScore, lastBest = score, best
	}})
	s.Measure(960, 616)

	st := crash(t, s)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	if calls != 1 {
		t.Fatalf("OnGameOver called %d times, expected 1", calls)
	}
	if lastScore != st.Score || lastBest != st.BestScore {
		t.Errorf("OnGameOver(%d, %d), expected (%d, %d)", lastScore, lastBest, st.Score, st.BestScore)
	}

	s.Tap()
	if s.State().Status != game.StatusOver {
		t.Error("tap after game over should be ignored")
	}

	s.Restart()
	if st := s.State(); st.Status != game.StatusWaiting || !st.Viewport.Known() {
		t.Fatalf("Restart should wait with a measured viewport, got %v %+v", st.Status, st.Viewport)
	}
	crash(t, s)
	s.Step()
	if calls != 2 {
		t.Errorf("OnGameOver called %d times after second run, expected 2", calls)
	}
}

func TestGameOverHookRunsUnlocked(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	s := newTestSession(t, Options{OnGameOver: func(score, best int) {
		close(entered)
		<-release
	}})
	s.Measure(960, 616)
	s.Tap()

	done := make(chan bool, 1)
	go func() {
		for i := 0; i < 500; i++ {
			if s.Step().IsOver() {
				done <- true
				return
			}
		}
		done <- false
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("game-over hook never ran")
	}

	// The hook is still blocked; the session must keep serving calls
	restarted := make(chan struct{})
	go func() {
		s.Restart()
		close(restarted)
	}()
	select {
	case <-restarted:
	case <-time.After(2 * time.Second):
		t.Fatal("Restart blocked behind the game-over hook")
	}
	if st := s.State(); st.Status != game.StatusWaiting {
		t.Errorf("status after restart = %v, expected Waiting", st.Status)
	}

	close(release)
	if !<-done {
		t.Error("bird never reached the ground")
	}
}

func TestStepScoresAndRecycles(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Measure(960, 616)
	s.Tap()

	// A tap every eighth tick cancels the fall. Pipe heights are random, so
	// the run may still end early.
	resets := 0
	prev := s.State()
	for i := 0; i < 400 && !prev.IsOver(); i++ {
		if i%8 == 0 {
			s.Tap()
		}
		st := s.Step()
		for j := range st.Pipes {
			if st.Pipes[j].Offset > prev.Pipes[j].Offset {
				resets++
			}
		}
		if st.BestScore < prev.BestScore {
			t.Fatalf("best score dropped at tick %d", i)
		}
		prev = st
	}
	if !prev.IsOver() && resets == 0 {
		t.Error("pipes never recycled during a long run")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestSession(t, Options{Period: time.Millisecond})
	s.Measure(960, 616)
	s.Tap()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for s.State().Pipes[0].Offset == config.Default().Pipes.CoverWidth*2 {
		select {
		case <-deadline:
			t.Fatal("Run never ticked")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	last := s.State()
	time.Sleep(5 * time.Millisecond)
	if s.State() != last {
		t.Error("snapshot changed after Run returned")
	}
}

func TestConcurrentTapsAndSteps(t *testing.T) {
	s := newTestSession(t, Options{})
	s.Measure(960, 616)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Tap()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Step()
		}
	}()
	wg.Wait()

	if st := s.State(); st.Status == game.StatusWaiting {
		t.Error("taps should have started the game")
	}
}

func TestNewGame(t *testing.T) {
	cfg := config.Default()
	cfg.Session.TickMillis = 20

	s := NewGame(cfg, 3, Options{})
	if s.Period() != 20*time.Millisecond {
		t.Errorf("Period() = %v, expected 20ms", s.Period())
	}

	// Same seed, same pipes
	other := NewGame(cfg, 3, Options{Period: time.Second})
	if s.State() != other.State() {
		t.Error("sessions with the same seed should start identically")
	}
	if other.Period() != time.Second {
		t.Errorf("explicit Period() = %v, expected 1s", other.Period())
	}
}
