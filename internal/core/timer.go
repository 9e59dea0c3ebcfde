package core

import "time"

// DefaultPeriod is the tick cadence used when none is configured.
const DefaultPeriod = 12 * time.Millisecond

// Interval is a stoppable periodic tick source polled from the host loop.
type Interval struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool

	now func() time.Time
}

// NewInterval constructs a running Interval firing every period.
func NewInterval(period time.Duration) *Interval {
	iv := &Interval{now: time.Now}
	iv.SetPeriod(period)
	iv.Start()
	return iv
}

// SetPeriod changes the tick cadence. It is safe to call from the main loop.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	iv.period = period
}

// Period returns the current tick cadence.
func (iv *Interval) Period() time.Duration { return iv.period }

// Running reports whether ticks are being delivered.
func (iv *Interval) Running() bool { return iv.running }

// Start resumes tick delivery. Time spent stopped is not credited.
func (iv *Interval) Start() {
	if iv.running {
		return
	}
	iv.running = true
	iv.accumulator = 0
	iv.last = time.Time{}
}

// Stop halts tick delivery; no tick is reported until the next Start.
func (iv *Interval) Stop() {
	iv.running = false
	iv.accumulator = 0
}

// Toggle flips between running and stopped and returns the new state.
func (iv *Interval) Toggle() bool {
	if iv.running {
		iv.Stop()
	} else {
		iv.Start()
	}
	return iv.running
}

// ShouldTick reports whether a period has elapsed since the last tick. At most
// one tick is reported per call; surplus time beyond one period is dropped.
func (iv *Interval) ShouldTick() bool {
	if !iv.running {
		return false
	}
	now := iv.now()
	if iv.last.IsZero() {
		iv.last = now
	}
	iv.accumulator += now.Sub(iv.last)
	iv.last = now
	if iv.accumulator < iv.period {
		return false
	}
	iv.accumulator -= iv.period
	if iv.accumulator > iv.period {
		iv.accumulator = iv.period
	}
	return true
}
