//go:build ebiten

package app

import (
	"image/color"

	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width of the status panel in pixels.
const hudWidth = 220

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for the provided controller.
func New(ctl *Controller) *Game {
	g := ctl.Grid()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(g.Width(), g.Height()),
		hud:      ui.NewHUD(g, ctl.Interval(), hudWidth),
		overlay:  ui.NewOverlay(g, ctl.Scale()),
		onColor:  color.RGBA{R: 240, G: 240, B: 230, A: 255},
		offColor: color.RGBA{R: 24, G: 24, B: 28, A: 255},
	}
}

// Update handles input and advances the grid when the interval is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.StartStop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}

	g.overlay.Update()
	if !g.hud.Update(g.boardWidth()) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.Click(ebiten.CursorPosition())
	}

	g.ctl.Tick()
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Grid().Cells(), g.onColor, g.offColor, g.ctl.Scale())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.ctl.Scale())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardWidth() + g.hud.Width(), g.ctl.Grid().Height() * g.ctl.Scale()
}

func (g *Game) boardWidth() int { return g.ctl.Grid().Width() * g.ctl.Scale() }
