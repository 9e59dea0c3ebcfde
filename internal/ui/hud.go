//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"torus-life/internal/core"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the board.
type HUD struct {
	grid     *life.Grid
	interval *core.Interval
	width    int

	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
	minusRect    image.Rectangle
	plusRect     image.Rectangle

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the grid and tick source with the given panel
// width.
func NewHUD(grid *life.Grid, interval *core.Interval, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{grid: grid, interval: interval, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update handles clicks on the period buttons. It reports whether the click
// was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.minusRect):
		h.interval.SetPeriod(StepPeriod(h.interval.Period(), -1))
	case pointInRect(px, my, h.plusRect):
		h.interval.SetPeriod(StepPeriod(h.interval.Period(), 1))
	}
	return true
}

// Draw paints the HUD panel anchored to the right edge of the board.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.grid.Height() * scale
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	statusY := headerY + infoSpacing/2
	status := StatusLine(h.grid.Generation(), h.grid.Population(), h.interval.Running())
	text.Draw(h.panel, status, face, panelPadding, statusY, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	labelY := controlsTop + labelBaseline
	text.Draw(h.panel, "Period", face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	period := h.interval.Period()
	value := FormatPeriod(period)
	bounds := text.BoundString(face, value)
	valueX := h.minusRect.Min.X - buttonGap - bounds.Dx()
	text.Draw(h.panel, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	h.drawButton(h.minusRect, "-", StepPeriod(period, -1) != period)
	h.drawButton(h.plusRect, "+", StepPeriod(period, 1) != period)

	helpY := controlsTop + lineHeight + infoSpacing/2
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, helpY, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		helpY += infoSpacing / 2
	}
}

var helpLines = []string{
	"click  toggle cell",
	"space  start/stop",
	"n      step once",
	"r      reseed",
	"c      clear",
	"q      quit",
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	buttonY := controlsTop + (lineHeight-buttonSize)/2
	h.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, buttonY, h.plusRect.Min.X-buttonGap, buttonY+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + infoSpacing
)
