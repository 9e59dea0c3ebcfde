package app

import (
	"log"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/pkg/life"
)

// Controller routes host events into the Life grid. All methods must be
// called from the same goroutine.
type Controller struct {
	grid     *life.Grid
	interval *core.Interval
	scale    int
}

// NewController wires grid to a tick source configured by cfg.
func NewController(grid *life.Grid, cfg *Config) *Controller {
	iv := core.NewInterval(cfg.Period)
	if cfg.Paused {
		iv.Stop()
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Controller{grid: grid, interval: iv, scale: scale}
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Interval returns the tick source.
func (c *Controller) Interval() *core.Interval { return c.interval }

// Scale returns the on-screen size of one cell in pixels.
func (c *Controller) Scale() int { return c.scale }

// Tick advances one generation if the interval is due.
func (c *Controller) Tick() bool {
	if !c.interval.ShouldTick() {
		return false
	}
	life.Advance(c.grid)
	return true
}

// StepOnce advances exactly one generation regardless of the interval.
func (c *Controller) StepOnce() { life.Advance(c.grid) }

// StartStop toggles delivery of ticks. Grid contents are unaffected.
func (c *Controller) StartStop() {
	if c.interval.Toggle() {
		log.Printf("life: started at generation %d", c.grid.Generation())
		return
	}
	log.Printf("life: stopped at generation %d", c.grid.Generation())
}

// Click toggles the cell at screen position (px, py). Clicks outside the
// board are ignored.
func (c *Controller) Click(px, py int) bool {
	row, col, ok := render.CellUnder(px, py, c.scale, c.grid.Width(), c.grid.Height())
	if !ok {
		return false
	}
	c.grid.Toggle(row, col)
	return true
}

// Reset restores the seed pattern.
func (c *Controller) Reset() {
	c.grid.Seed()
	log.Printf("life: reseeded %dx%d grid", c.grid.Width(), c.grid.Height())
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.grid.Clear()
	log.Printf("life: cleared %dx%d grid", c.grid.Width(), c.grid.Height())
}
