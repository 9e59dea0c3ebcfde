package render

import (
	"image/color"

	"torus-life/pkg/life"
)

// FillCellsRGBA converts cells into RGBA pixels in buf, one pixel per cell.
func FillCellsRGBA(buf []byte, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c.IsAlive() {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellUnder maps a screen position to the grid cell drawn there. ok is false
// when the position falls outside a width x height board drawn at scale.
func CellUnder(px, py, scale, width, height int) (row, column int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	row, column = py/scale, px/scale
	if row >= height || column >= width {
		return 0, 0, false
	}
	return row, column, true
}
