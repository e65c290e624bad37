package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (the first flap starts the game)
  R          - Restart after game over
  ?          - Show all keys
  Q/Esc      - Quit

Finished runs are stored in the run history (--db).
While the game owns the terminal, logs are discarded unless --log-file is set.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --tick 35ms`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	runs := openRuns(logger)
	if runs != nil {
		defer runs.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.Run(ctx, tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Runs:    runs,
		Logger:  logger,
	})
}
