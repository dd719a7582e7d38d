package tool

import (
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/edit"
	"github.com/milk9111/tilecanvas/picking"
)

// Button is the primary pointer button's state for one frame.
type Button struct {
	JustPressed  bool
	Held         bool
	JustReleased bool
}

func (b Button) Down() bool { return b.JustPressed || b.Held }

type Camera struct {
	Offset picking.Vec
	Zoom   float64
}

// Frame is the pointer input sampled once per tick.
type Frame struct {
	Pointer picking.Vec
	Camera  Camera
	Button  Button
	// OverUI is set when a widget has the pointer; canvas tools ignore the frame.
	OverUI bool
}

// Brush is the current selection painted by Paint, Fill and Line.
type Brush struct {
	Tile  canvas.Tile
	Layer int
}

func (b Brush) placement(cell canvas.Cell) canvas.Placement {
	return canvas.Placement{Tile: b.Tile, Cell: cell, Layer: b.Layer}
}

// Controller turns per-frame pointer state into at most one command per tick.
// Every command goes through the history; the controller never writes to the
// canvas itself.
type Controller struct {
	canvas  *canvas.Canvas
	history *edit.History

	lineStart *canvas.Cell
}

func NewController(c *canvas.Canvas, h *edit.History) *Controller {
	return &Controller{canvas: c, history: h}
}

// LineStart returns the anchor of a line in progress.
func (tc *Controller) LineStart() (canvas.Cell, bool) {
	if tc.lineStart == nil {
		return canvas.Cell{}, false
	}
	return *tc.lineStart, true
}

// Reset drops in-progress gesture state, e.g. after a mode switch.
func (tc *Controller) Reset() {
	tc.lineStart = nil
}

// Cell picks the canvas cell under the frame's pointer.
func (tc *Controller) Cell(f Frame) canvas.Cell {
	col, row := picking.PickCell(f.Pointer, f.Camera.Offset, f.Camera.Zoom, tc.canvas.TileSize())
	return canvas.Cell{Col: col, Row: row}
}

// Tick executes and returns the command produced by this frame, or nil.
func (tc *Controller) Tick(f Frame, mode Mode, brush Brush) edit.Command {
	if mode != Line {
		tc.lineStart = nil
	}
	if f.OverUI {
		return nil
	}
	cell := tc.Cell(f)
	if !tc.canvas.InBounds(cell.Col, cell.Row, brush.Layer) {
		if mode == Line && f.Button.JustReleased {
			tc.lineStart = nil
		}
		return nil
	}

	var cmd edit.Command
	switch mode {
	case Paint:
		if f.Button.Down() {
			cmd = tc.paint(cell, brush)
		}
	case Erase:
		if f.Button.Down() {
			cmd = tc.erase(cell, brush.Layer)
		}
	case Fill:
		if f.Button.JustPressed {
			cmd = tc.fill(cell, brush)
		}
	case Line:
		if f.Button.JustPressed {
			start := cell
			tc.lineStart = &start
		}
		if f.Button.JustReleased && tc.lineStart != nil {
			cmd = tc.line(*tc.lineStart, cell, brush)
			tc.lineStart = nil
		}
	}
	if cmd == nil {
		return nil
	}
	tc.history.Execute(cmd)
	return cmd
}

func (tc *Controller) paint(cell canvas.Cell, brush Brush) edit.Command {
	if cur, ok := tc.canvas.GetTile(cell.Col, cell.Row, brush.Layer); ok && cur == brush.Tile {
		return nil
	}
	return edit.AddTile(tc.canvas, brush.placement(cell))
}

func (tc *Controller) erase(cell canvas.Cell, layer int) edit.Command {
	if _, ok := tc.canvas.GetTile(cell.Col, cell.Row, layer); !ok {
		return nil
	}
	return edit.RemoveTile(tc.canvas, cell.Col, cell.Row, layer)
}

func (tc *Controller) fill(cell canvas.Cell, brush Brush) edit.Command {
	if cur, ok := tc.canvas.GetTile(cell.Col, cell.Row, brush.Layer); ok && cur == brush.Tile {
		return nil
	}
	cells := FloodFill(tc.canvas, cell, brush.Layer)
	if len(cells) == 0 {
		return nil
	}
	cmds := make([]edit.Command, 0, len(cells))
	for _, c := range cells {
		cmds = append(cmds, edit.AddTile(tc.canvas, brush.placement(c)))
	}
	return edit.Composite(cmds...)
}

func (tc *Controller) line(from, to canvas.Cell, brush Brush) edit.Command {
	var cmds []edit.Command
	for _, c := range LineCells(from, to) {
		if !tc.canvas.InBounds(c.Col, c.Row, brush.Layer) {
			continue
		}
		if cur, ok := tc.canvas.GetTile(c.Col, c.Row, brush.Layer); ok && cur == brush.Tile {
			continue
		}
		cmds = append(cmds, edit.AddTile(tc.canvas, brush.placement(c)))
	}
	if len(cmds) == 0 {
		return nil
	}
	return edit.Composite(cmds...)
}
