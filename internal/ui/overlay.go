//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/render"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay outlines the cell under the pointer so clicks land where expected.
type Overlay struct {
	grid  *life.Grid
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(grid *life.Grid, scale int) *Overlay {
	o := &Overlay{grid: grid, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the highlight with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	mx, my := ebiten.CursorPosition()
	row, col, ok := render.CellUnder(mx, my, scale, o.grid.Width(), o.grid.Height())
	if !ok {
		return
	}
	x := float64(col * scale)
	y := float64(row * scale)
	s := float64(scale)
	edge := color.RGBA{R: 255, G: 160, B: 40, A: 255}
	o.drawRect(screen, x, y, s, 1, edge)
	o.drawRect(screen, x, y+s-1, s, 1, edge)
	o.drawRect(screen, x, y, 1, s, edge)
	o.drawRect(screen, x+s-1, y, 1, s, edge)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
