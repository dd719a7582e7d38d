// Package picking maps pointer positions onto canvas cells and tileset cells.
// Every function here is pure.
package picking

import (
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/common"
)

type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func normZoom(zoom float64) float64 {
	if zoom <= 0 {
		return 1
	}
	return zoom
}

// PickCell returns the grid cell under the pointer. A pointer exactly on a
// boundary lands in the higher-index cell.
func PickCell(pointer, cameraOffset Vec, zoom float64, tileSize int) (col, row int) {
	step := float64(tileSize) * normZoom(zoom)
	if step <= 0 {
		return 0, 0
	}
	d := pointer.Sub(cameraOffset)
	return common.FloorDiv(d.X, step), common.FloorDiv(d.Y, step)
}

// PickSourceRect returns the tileset cell under a pointer given in displayed
// pixels. imageWidth and imageHeight are texture pixels; the panel draws the
// texture at common.TilesetDisplayScale.
func PickSourceRect(pointerInImage Vec, imageWidth, imageHeight, tileSize int) (col, row int, ok bool) {
	if tileSize <= 0 || imageWidth <= 0 || imageHeight <= 0 {
		return 0, 0, false
	}
	scale := float64(common.TilesetDisplayScale)
	if pointerInImage.X < 0 || pointerInImage.Y < 0 {
		return 0, 0, false
	}
	if pointerInImage.X >= float64(imageWidth)*scale || pointerInImage.Y >= float64(imageHeight)*scale {
		return 0, 0, false
	}
	step := float64(tileSize) * scale
	col = common.FloorDiv(pointerInImage.X, step)
	row = common.FloorDiv(pointerInImage.Y, step)
	// partial tiles on the right/bottom edge are not selectable
	if col >= imageWidth/tileSize || row >= imageHeight/tileSize {
		return 0, 0, false
	}
	return col, row, true
}

// SourceRect converts a tileset cell into texture pixels.
func SourceRect(col, row, tileSize int) canvas.Rect {
	return canvas.Rect{X: col * tileSize, Y: row * tileSize, W: tileSize, H: tileSize}
}

// ScreenToWorld converts a screen point into unzoomed canvas pixels.
func ScreenToWorld(p, cameraOffset Vec, zoom float64) Vec {
	z := normZoom(zoom)
	d := p.Sub(cameraOffset)
	return Vec{X: d.X / z, Y: d.Y / z}
}

func WorldToScreen(p, cameraOffset Vec, zoom float64) Vec {
	z := normZoom(zoom)
	return Vec{X: p.X*z + cameraOffset.X, Y: p.Y*z + cameraOffset.Y}
}

// ZoomAt returns the camera offset that keeps the world point under cursor
// fixed when zoom changes from oldZoom to newZoom.
func ZoomAt(cursor, cameraOffset Vec, oldZoom, newZoom float64) Vec {
	world := ScreenToWorld(cursor, cameraOffset, oldZoom)
	z := normZoom(newZoom)
	return Vec{X: cursor.X - world.X*z, Y: cursor.Y - world.Y*z}
}
