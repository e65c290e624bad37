package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/session"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimTicks    int
	flagSimTapEvery int
	flagSimCols     int
	flagSimRows     int
	flagSimRuns     int
	flagSimRender   bool
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Drive the game without a terminal: tap every K ticks, step N ticks and
print the final snapshot. The same seed and flags always give the same result.

When a run ends before the tick budget, the next run starts after a restart,
up to --runs runs.

Examples:
  flappy sim --seed 1
  flappy sim --ticks 2000 --tap-every 6 --runs 5 --seed 7
  flappy sim --render --cols 60 --rows 20
  flappy sim --save --player bot`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimTapEvery, "tap-every", 7, "Tap every K ticks (0 = never)")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Simulated screen width in cells")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Simulated screen height in cells")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Maximum number of runs")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store finished runs in the run history")
}

// simOptions parameterise a headless simulation.
type simOptions struct {
	Seed     int64
	Ticks    int
	TapEvery int
	Cols     int
	Rows     int
	Runs     int
	Logger   *log.Logger
	OnOver   func(score, best int)
}

// simResult summarises a headless simulation.
type simResult struct {
	Final    game.ViewState
	Ticks    int
	Finished []int // Scores of finished runs, in order
}

// simulate steps a session synchronously; no goroutines or timers.
func simulate(cfg config.FlappyConfig, opts simOptions) (simResult, error) {
	if opts.Ticks < 0 || opts.TapEvery < 0 || opts.Runs < 1 {
		return simResult{}, fmt.Errorf("sim: ticks and tap-every must not be negative and runs must be positive")
	}
	zone := scene.ZoneSize(opts.Cols, opts.Rows, cfg.Terminal)
	if !zone.Known() {
		return simResult{}, fmt.Errorf("sim: %dx%d cells leave no play zone", opts.Cols, opts.Rows)
	}

	var res simResult
	sess := session.NewGame(cfg, opts.Seed, session.Options{
		Logger: opts.Logger,
		OnGameOver: func(score, best int) {
			res.Finished = append(res.Finished, score)
			if opts.OnOver != nil {
				opts.OnOver(score, best)
			}
		},
	})
	sess.Measure(zone.Width, zone.Height)

	tick := 0
	for ; tick < opts.Ticks; tick++ {
		if sess.State().IsOver() {
			if len(res.Finished) >= opts.Runs {
				break
			}
			sess.Restart()
		}
		if opts.TapEvery > 0 && tick%opts.TapEvery == 0 {
			sess.Tap()
		}
		sess.Step()
	}

	res.Final = sess.State()
	res.Ticks = tick
	return res, nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := core.RuntimeConfig{Seed: flagSeed}.ResolveSeed(time.Now())

	var runs *storage.Store
	if flagSimSave {
		if runs = openRuns(logger); runs != nil {
			defer runs.Close()
		}
	}

	res, err := simulate(cfg, simOptions{
		Seed:     seed,
		Ticks:    flagSimTicks,
		TapEvery: flagSimTapEvery,
		Cols:     flagSimCols,
		Rows:     flagSimRows,
		Runs:     flagSimRuns,
		Logger:   logger,
		OnOver: func(score, best int) {
			if runs == nil {
				return
			}
			if _, err := runs.SaveRun(flagPlayer, score, best); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSim(out, seed, res)
	if flagSimRender {
		screen := core.NewScreen(flagSimCols, flagSimRows)
		scene.Draw(screen, res.Final, cfg.Terminal)
		fmt.Fprintln(out)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}

func printSim(w io.Writer, seed int64, res simResult) {
	st := res.Final
	fmt.Fprintf(w, "seed:     %d\n", seed)
	fmt.Fprintf(w, "ticks:    %d\n", res.Ticks)
	fmt.Fprintf(w, "runs:     %d finished %v\n", len(res.Finished), res.Finished)
	fmt.Fprintf(w, "status:   %s\n", st.Status)
	fmt.Fprintf(w, "score:    %d\n", st.Score)
	fmt.Fprintf(w, "best:     %d\n", st.BestScore)
	fmt.Fprintf(w, "bird:     offset=%.1f tilt=%.0f\n", st.Bird.Offset, st.BirdTilt())
	for i, p := range st.Pipes {
		fmt.Fprintf(w, "pipe %d:   offset=%.1f upper=%.0f lower=%.1f counted=%v\n",
			i, p.Offset, p.UpperHeight, p.LowerHeight, p.Counted)
	}
	for i, r := range st.Roads {
		fmt.Fprintf(w, "road %d:   offset=%.1f\n", i, r.Offset)
	}
}
