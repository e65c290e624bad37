// Package tui provides the Bubble Tea shell around a game session: the
// local program, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to redraw the latest snapshot. The simulation
// ticks on its own goroutine; frames only read.
type FrameMsg time.Time

// frameCmd schedules the next frame after period.
func frameCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
