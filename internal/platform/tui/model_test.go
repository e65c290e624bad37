package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T, runs *storage.Store) Model {
	t.Helper()
	rt := core.DefaultRuntime()
	rt.ScreenW, rt.ScreenH = 80, 26
	rt.Seed = 1
	rt.Player = "tester"

	m := NewModel(context.Background(), Options{
		Config:  config.Default(),
		Runtime: rt,
		Runs:    runs,
	})
	t.Cleanup(m.cancel)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyMapIntent(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Intent
	}{
		{spaceKey, core.IntentFlap},
		{tea.KeyMsg{Type: tea.KeyUp}, core.IntentFlap},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.IntentFlap},
		{runeKey('w'), core.IntentFlap},
		{runeKey('r'), core.IntentRestart},
		{runeKey('?'), core.IntentHelp},
		{runeKey('q'), core.IntentQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.IntentQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.IntentQuit},
		{runeKey('x'), core.IntentNone},
	}
	for _, tt := range tests {
		if got := keys.Intent(tt.msg); got != tt.want {
			t.Errorf("Intent(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelMeasuresOnCreate(t *testing.T) {
	m := newTestModel(t, nil)

	want := game.Size{Width: 960, Height: 616}
	if got := m.Session().State().Viewport; got != want {
		t.Errorf("Viewport = %+v, expected %+v", got, want)
	}
}

func TestModelPlayAndSave(t *testing.T) {
	runs, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer runs.Close()

	m := newTestModel(t, runs)
	if !strings.Contains(m.View(), "FLAPPY") {
		t.Error("waiting view should show the title")
	}

	m, _ = update(t, m, spaceKey)
	if m.Session().State().Status != game.StatusRunning {
		t.Fatalf("space should start the game, got %v", m.Session().State().Status)
	}

	// Restart is ignored while running
	m, _ = update(t, m, runeKey('r'))
	if m.Session().State().Status != game.StatusRunning {
		t.Error("restart key should be ignored while running")
	}

	for i := 0; i < 200 && !m.Session().State().IsOver(); i++ {
		m.Session().Step()
	}
	if !m.Session().State().IsOver() {
		t.Fatal("bird never landed")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("over view should show the board")
	}

	saved, err := runs.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(saved) != 1 || saved[0].Player != "tester" {
		t.Fatalf("saved runs = %+v, expected one run by tester", saved)
	}

	m, _ = update(t, m, runeKey('r'))
	st := m.Session().State()
	if st.Status != game.StatusWaiting || !st.Viewport.Known() {
		t.Errorf("restart should wait with a measured viewport, got %v %+v", st.Status, st.Viewport)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 12-helpRows {
		t.Errorf("screen = %dx%d, expected 40x%d", m.screen.Width(), m.screen.Height(), 12-helpRows)
	}
	// The first measurement stays until a restart
	if got := m.Session().State().Viewport.Width; got != 960 {
		t.Errorf("Viewport width = %f, expected 960", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should show the full help")
	}
	if !strings.Contains(m.View(), "restart") {
		t.Error("full help should list the restart key")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit the program")
	}
	if m.ctx.Err() == nil {
		t.Error("quitting should stop the tick loop")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewModel(ctx, Options{Config: config.Default(), Runtime: core.DefaultRuntime()})
	defer m.cancel()

	_, cmd := update(t, m, FrameMsg{})
	if cmd == nil || isQuit(cmd) {
		t.Fatal("a live model should schedule the next frame")
	}

	cancel()
	if _, cmd = update(t, m, FrameMsg{}); !isQuit(cmd) {
		t.Error("a cancelled model should quit on the next frame")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Text(0, 0, "ab", core.ColorText)
	s.Set(3, 1, '@', core.ColorBird)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d newlines, expected 1", got)
	}
	for _, want := range []string{"ab", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}
