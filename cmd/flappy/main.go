// flappy is a deterministic flappy-bird game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy sim               - Run a headless simulation and print the result
//	flappy scores            - Show the run history
//	flappy serve             - Start an SSH server, one game per connection
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.flappy, ./configs, embedded)
//	--seed <value>      - RNG seed for pipe heights (0 = time based)
//	--tick <duration>   - Override the tick period (e.g. 40ms)
//	--db <path>         - Run history database (default: ~/.flappy/runs.db)
//	--player <name>     - Name stored with finished runs
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTick     time.Duration
	flagDBPath   string
	flagPlayer   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through endless pipes in your terminal",
	Long: `Flappy is a terminal flappy-bird game built on a deterministic
simulation core.

Available commands:
  play     - Play in this terminal
  sim      - Run a headless, reproducible simulation
  scores   - View the run history
  serve    - Start an SSH server for remote play

Examples:
  flappy play
  flappy play --seed 42 --player ann
  flappy sim --ticks 500 --tap-every 7 --seed 1
  flappy scores --limit 20
  flappy serve --ssh :23235`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick period override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name stored with runs")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return core.DefaultRuntime().Player
}

// loadConfig loads the game configuration and applies the tick override.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagTick < 0 {
		return config.FlappyConfig{}, fmt.Errorf("--tick must not be negative, got %v", flagTick)
	}
	if flagTick > 0 {
		cfg.Session.TickMillis = int(flagTick.Milliseconds())
		if cfg.Session.TickMillis == 0 {
			return config.FlappyConfig{}, fmt.Errorf("--tick must be at least 1ms, got %v", flagTick)
		}
	}
	return cfg, nil
}

// runtimeConfig builds runtime settings from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultRuntime()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.Tick = flagTick
	rt.Seed = flagSeed
	rt.Player = flagPlayer
	return rt
}

// newLogger creates the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}

// openRuns opens the run history. Failure is logged and play continues
// without history.
func openRuns(logger *log.Logger) *storage.Store {
	runs, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, playing without it", "error", err)
		return nil
	}
	return runs
}
