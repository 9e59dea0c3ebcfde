package ui

import (
	"testing"
	"time"
)

func TestStatusLine(t *testing.T) {
	if got := StatusLine(12, 301, true); got != "gen 12  pop 301  running" {
		t.Fatalf("status=%q", got)
	}
	if got := StatusLine(0, 0, false); got != "gen 0  pop 0  paused" {
		t.Fatalf("status=%q", got)
	}
}

func TestStepPeriod(t *testing.T) {
	cases := []struct {
		name      string
		period    time.Duration
		direction int
		want      time.Duration
	}{
		{"increase", 12 * time.Millisecond, 1, 14 * time.Millisecond},
		{"decrease", 12 * time.Millisecond, -1, 10 * time.Millisecond},
		{"floor", PeriodMin, -1, PeriodMin},
		{"ceiling", PeriodMax, 1, PeriodMax},
		{"no direction", 12 * time.Millisecond, 0, 12 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StepPeriod(tc.period, tc.direction); got != tc.want {
				t.Fatalf("StepPeriod(%v, %d)=%v, expected %v", tc.period, tc.direction, got, tc.want)
			}
		})
	}
}

func TestFormatPeriod(t *testing.T) {
	if got := FormatPeriod(12 * time.Millisecond); got != "12 ms" {
		t.Fatalf("FormatPeriod=%q", got)
	}
}
