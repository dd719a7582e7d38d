package tool

import (
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/common"
)

type fillKey struct {
	tile     canvas.Tile
	occupied bool
}

func keyAt(c *canvas.Canvas, cell canvas.Cell, layer int) fillKey {
	t, ok := c.GetTile(cell.Col, cell.Row, layer)
	return fillKey{tile: t, occupied: ok}
}

// FloodFill returns every cell orthogonally connected to start that holds the
// same tile as start (or is empty when start is empty), bounded by the canvas.
// Cells come back in visit order.
func FloodFill(c *canvas.Canvas, start canvas.Cell, layer int) []canvas.Cell {
	if !c.InBounds(start.Col, start.Row, layer) {
		return nil
	}
	target := keyAt(c, start, layer)
	seen := map[canvas.Cell]bool{start: true}
	stack := []canvas.Cell{start}
	var out []canvas.Cell
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cell)
		for _, n := range [4]canvas.Cell{
			{Col: cell.Col + 1, Row: cell.Row},
			{Col: cell.Col - 1, Row: cell.Row},
			{Col: cell.Col, Row: cell.Row + 1},
			{Col: cell.Col, Row: cell.Row - 1},
		} {
			if seen[n] || !c.InBounds(n.Col, n.Row, layer) {
				continue
			}
			if keyAt(c, n, layer) != target {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return out
}

// LineCells returns the bresenham line from a to b, both ends included.
func LineCells(a, b canvas.Cell) []canvas.Cell {
	x0, y0, x1, y1 := a.Col, a.Row, b.Col, b.Row
	dx := common.Abs(x1 - x0)
	dy := -common.Abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	var points []canvas.Cell
	for {
		points = append(points, canvas.Cell{Col: x0, Row: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return points
}
