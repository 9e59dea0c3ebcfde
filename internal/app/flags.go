package app

import (
	"flag"
	"time"

	"torus-life/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale  int
	TPS    int
	Period time.Duration
	Paused bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 10, TPS: 60, Period: core.DefaultPeriod}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host updates per second")
	fs.DurationVar(&c.Period, "period", c.Period, "interval between generations")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the tick stopped")
}
