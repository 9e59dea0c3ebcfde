package ui

import (
	"fmt"
	"time"
)

// Tick period bounds exposed by the HUD period control.
const (
	PeriodStep = 2 * time.Millisecond
	PeriodMin  = 2 * time.Millisecond
	PeriodMax  = time.Second
)

// StatusLine formats the generation counter and run state.
func StatusLine(generation uint64, population int, running bool) string {
	state := "paused"
	if running {
		state = "running"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", generation, population, state)
}

// StepPeriod moves period by one PeriodStep in direction, clamped to
// [PeriodMin, PeriodMax].
func StepPeriod(period time.Duration, direction int) time.Duration {
	switch {
	case direction > 0:
		period += PeriodStep
	case direction < 0:
		period -= PeriodStep
	}
	if period < PeriodMin {
		period = PeriodMin
	}
	if period > PeriodMax {
		period = PeriodMax
	}
	return period
}

// FormatPeriod renders a tick period in whole milliseconds.
func FormatPeriod(period time.Duration) string {
	return fmt.Sprintf("%d ms", period.Milliseconds())
}
