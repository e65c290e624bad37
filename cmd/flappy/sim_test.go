package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func simDefaults() simOptions {
	return simOptions{Seed: 1, Ticks: 600, TapEvery: 7, Cols: 80, Rows: 24, Runs: 1}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()

	a, err := simulate(cfg, simDefaults())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(cfg, simDefaults())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if a.Final != b.Final || a.Ticks != b.Ticks {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a.Final, b.Final)
	}

	other := simDefaults()
	other.Seed = 2
	c, err := simulate(cfg, other)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if c.Final.Pipes == a.Final.Pipes && c.Final.Bird == a.Final.Bird && c.Ticks == a.Ticks {
		t.Error("different seeds should give different pipe layouts")
	}
}

func TestSimulateNeverTapping(t *testing.T) {
	opts := simDefaults()
	opts.TapEvery = 0
	opts.Ticks = 50

	res, err := simulate(config.Default(), opts)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if res.Final.Status != game.StatusWaiting {
		t.Errorf("status = %v, expected Waiting without a tap", res.Final.Status)
	}
	if res.Ticks != 50 {
		t.Errorf("Ticks = %d, expected 50", res.Ticks)
	}
	if res.Final.Viewport != (game.Size{Width: 960, Height: 616}) {
		t.Errorf("Viewport = %+v, expected 960x616", res.Final.Viewport)
	}
}

func TestSimulateStopsAfterRuns(t *testing.T) {
	opts := simDefaults()
	opts.TapEvery = 1000 // One tap per run, then fall
	opts.Ticks = 5000
	opts.Runs = 3

	var reported int
	opts.OnOver = func(score, best int) {
		reported++
		if best < score {
			t.Errorf("best %d below score %d", best, score)
		}
	}

	res, err := simulate(config.Default(), opts)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if len(res.Finished) != 3 || reported != 3 {
		t.Fatalf("finished %v reported %d, expected 3 runs", res.Finished, reported)
	}
	if !res.Final.IsOver() {
		t.Errorf("final status = %v, expected Over", res.Final.Status)
	}
	if res.Ticks >= opts.Ticks {
		t.Errorf("Ticks = %d, expected to stop early", res.Ticks)
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		edit func(*simOptions)
	}{
		{"negative ticks", func(o *simOptions) { o.Ticks = -1 }},
		{"negative tap", func(o *simOptions) { o.TapEvery = -3 }},
		{"zero runs", func(o *simOptions) { o.Runs = 0 }},
		{"no zone", func(o *simOptions) { o.Rows = 2 }},
		{"no columns", func(o *simOptions) { o.Cols = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := simDefaults()
			tt.edit(&opts)
			if _, err := simulate(config.Default(), opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPrintSim(t *testing.T) {
	res, err := simulate(config.Default(), simDefaults())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	var buf bytes.Buffer
	printSim(&buf, 1, res)
	out := buf.String()
	for _, want := range []string{"seed:     1", "status:", "pipe 0:", "pipe 1:", "road 1:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScores(t *testing.T) {
	runs, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer runs.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, runs, "", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty history output:\n%s", buf.String())
	}

	runs.SaveRun("ann", 4, 4)
	runs.SaveRun("bob", 9, 9)
	runs.SaveRun("ann", 7, 7)

	buf.Reset()
	if err := printScores(&buf, runs, "", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "bob") > strings.Index(out, "ann") {
		t.Errorf("higher score should come first:\n%s", out)
	}
	if !strings.Contains(out, "Best: 9  Runs: 3  Players: 2") {
		t.Errorf("stats line missing:\n%s", out)
	}

	buf.Reset()
	if err := printScores(&buf, runs, "ann", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if out := buf.String(); strings.Contains(out, "bob") || !strings.Contains(out, "Recent Runs - ann") {
		t.Errorf("player filter output:\n%s", out)
	}
}
