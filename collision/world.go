// Package collision builds a Chipmunk space from the solid tiles of a canvas
// so the editor can preview what the game will collide with.
package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilecanvas/canvas"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBounds
)

type World struct {
	space *cp.Space
	boxes []cp.BB
}

// Map reports per cell whether any physics layer holds a tile there,
// indexed [row][col].
func Map(snap canvas.Snapshot) [][]bool {
	cols, rows := snap.Cols(), snap.Rows()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	solid := make([][]bool, rows)
	for r := range solid {
		solid[r] = make([]bool, cols)
	}
	for _, p := range snap.Placements {
		if p.Layer < 0 || p.Layer >= len(snap.Layers) || !snap.Layers[p.Layer].Physics {
			continue
		}
		if p.Cell.Row < 0 || p.Cell.Row >= rows || p.Cell.Col < 0 || p.Cell.Col >= cols {
			continue
		}
		solid[p.Cell.Row][p.Cell.Col] = true
	}
	return solid
}

func Build(snap canvas.Snapshot) *World {
	w := &World{
		space: cp.NewSpace(),
	}
	w.buildStaticShapes(snap)
	return w
}

func (w *World) buildStaticShapes(snap canvas.Snapshot) {
	solid := Map(snap)
	rows := len(solid)
	if rows == 0 {
		return
	}
	cols := len(solid[0])
	ts := float64(snap.TileSize)

	// Merge contiguous solid cells into rectangles, width first then height.
	processed := make([][]bool, rows)
	for r := range processed {
		processed[r] = make([]bool, cols)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if processed[y][x] {
				continue
			}
			if !solid[y][x] {
				processed[y][x] = true
				continue
			}

			wTiles := 1
			for x+wTiles < cols && solid[y][x+wTiles] && !processed[y][x+wTiles] {
				wTiles++
			}

			hTiles := 1
		heightLoop:
			for y+hTiles < rows {
				for xi := x; xi < x+wTiles; xi++ {
					if !solid[y+hTiles][xi] || processed[y+hTiles][xi] {
						break heightLoop
					}
				}
				hTiles++
			}

			x0, y0 := float64(x)*ts, float64(y)*ts
			bb := cp.BB{L: x0, B: y0, R: x0 + float64(wTiles)*ts, T: y0 + float64(hTiles)*ts}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			w.space.AddShape(shape)
			w.boxes = append(w.boxes, bb)

			for yy := y; yy < y+hTiles; yy++ {
				for xx := x; xx < x+wTiles; xx++ {
					processed[yy][xx] = true
				}
			}
		}
	}

	worldW := float64(snap.Width)
	worldH := float64(snap.Height)
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeBounds)
		w.space.AddShape(shape)
	}
}

// Boxes returns the merged solid rectangles in canvas pixels.
func (w *World) Boxes() []cp.BB {
	return append([]cp.BB(nil), w.boxes...)
}

// Solid reports whether the pixel position lies inside a solid tile box,
// edges included. World bounds do not count.
func (w *World) Solid(x, y float64) bool {
	p := cp.Vector{X: x, Y: y}
	for _, bb := range w.boxes {
		if bb.ContainsVect(p) {
			return true
		}
	}
	return false
}

func (w *World) Space() *cp.Space { return w.space }
