package core

import "time"

// RuntimeConfig holds per-process settings that come from flags rather than
// the game configuration file.
type RuntimeConfig struct {
	ScreenW int           // Fallback width in cells before the terminal reports one
	ScreenH int           // Fallback height in cells
	Tick    time.Duration // Zero keeps the configured tick period
	Seed    int64         // 0 means seed from the clock
	Player  string        // Name stored with finished runs
}

// DefaultRuntime returns the settings used when no flags are given.
func DefaultRuntime() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Player:  "player",
	}
}

// ResolveSeed returns the configured seed, or one derived from now when the
// seed is zero.
func (c RuntimeConfig) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
