// Package edit holds the reversible canvas commands and the undo/redo history
// that applies them.
package edit

import "github.com/milk9111/tilecanvas/canvas"

// Kind identifies a command variant.
type Kind int

const (
	KindAddTile Kind = iota
	KindRemoveTile
	KindResizeCanvas
	KindComposite
	KindLayerPhysics
)

func (k Kind) String() string {
	switch k {
	case KindAddTile:
		return "AddTile"
	case KindRemoveTile:
		return "RemoveTile"
	case KindResizeCanvas:
		return "ResizeCanvas"
	case KindComposite:
		return "Composite"
	case KindLayerPhysics:
		return "LayerPhysics"
	default:
		return "Unknown"
	}
}

// Command is a reversible unit of canvas mutation. Apply runs once when the
// command is executed; Undo reverses exactly that mutation and Redo repeats it.
type Command interface {
	Apply()
	Undo()
	Redo()
	Kind() Kind
}

// AddTileCommand writes one placement and remembers what the cell held.
type AddTileCommand struct {
	canvas    *canvas.Canvas
	placement canvas.Placement
	prev      canvas.Tile
	hadPrev   bool
}

func AddTile(c *canvas.Canvas, p canvas.Placement) *AddTileCommand {
	return &AddTileCommand{canvas: c, placement: p}
}

func (a *AddTileCommand) Placement() canvas.Placement { return a.placement }

func (a *AddTileCommand) Apply() {
	p := a.placement
	a.prev, a.hadPrev = a.canvas.GetTile(p.Cell.Col, p.Cell.Row, p.Layer)
	a.canvas.SetTile(p.Cell.Col, p.Cell.Row, p.Layer, p.Tile)
}

func (a *AddTileCommand) Undo() {
	p := a.placement
	if a.hadPrev {
		a.canvas.SetTile(p.Cell.Col, p.Cell.Row, p.Layer, a.prev)
		return
	}
	a.canvas.ClearTile(p.Cell.Col, p.Cell.Row, p.Layer)
}

func (a *AddTileCommand) Redo() {
	p := a.placement
	a.canvas.SetTile(p.Cell.Col, p.Cell.Row, p.Layer, p.Tile)
}

func (a *AddTileCommand) Kind() Kind { return KindAddTile }

// RemoveTileCommand clears one cell and keeps the removed tile for undo.
type RemoveTileCommand struct {
	canvas  *canvas.Canvas
	cell    canvas.Cell
	layer   int
	removed canvas.Tile
	had     bool
}

func RemoveTile(c *canvas.Canvas, col, row, layer int) *RemoveTileCommand {
	return &RemoveTileCommand{canvas: c, cell: canvas.Cell{Col: col, Row: row}, layer: layer}
}

// Removed returns the placement taken out by Apply.
func (r *RemoveTileCommand) Removed() (canvas.Placement, bool) {
	return canvas.Placement{Tile: r.removed, Cell: r.cell, Layer: r.layer}, r.had
}

func (r *RemoveTileCommand) Apply() {
	r.removed, r.had = r.canvas.GetTile(r.cell.Col, r.cell.Row, r.layer)
	r.canvas.ClearTile(r.cell.Col, r.cell.Row, r.layer)
}

func (r *RemoveTileCommand) Undo() {
	if !r.had {
		return
	}
	r.canvas.SetTile(r.cell.Col, r.cell.Row, r.layer, r.removed)
}

func (r *RemoveTileCommand) Redo() {
	r.canvas.ClearTile(r.cell.Col, r.cell.Row, r.layer)
}

func (r *RemoveTileCommand) Kind() Kind { return KindRemoveTile }

// ResizeCanvasCommand records a dimension change that already happened.
// Undo swaps the canvas dimensions with the stored ones, so Undo and Redo are
// the same operation.
type ResizeCanvasCommand struct {
	canvas     *canvas.Canvas
	prevWidth  int
	prevHeight int
}

// ResizeCanvas must be built after the canvas was resized, with the
// dimensions it had before.
func ResizeCanvas(c *canvas.Canvas, prevWidth, prevHeight int) *ResizeCanvasCommand {
	return &ResizeCanvasCommand{canvas: c, prevWidth: prevWidth, prevHeight: prevHeight}
}

func (r *ResizeCanvasCommand) Apply() {}

func (r *ResizeCanvasCommand) Undo() {
	width := r.canvas.Width()
	r.canvas.SetWidth(r.prevWidth)
	r.prevWidth = width

	height := r.canvas.Height()
	r.canvas.SetHeight(r.prevHeight)
	r.prevHeight = height
}

func (r *ResizeCanvasCommand) Redo() {
	r.Undo()
}

func (r *ResizeCanvasCommand) Kind() Kind { return KindResizeCanvas }

// CompositeCommand groups commands into one history entry.
type CompositeCommand struct {
	cmds []Command
}

func Composite(cmds ...Command) *CompositeCommand {
	return &CompositeCommand{cmds: cmds}
}

func (c *CompositeCommand) Commands() []Command {
	return append([]Command(nil), c.cmds...)
}

func (c *CompositeCommand) Len() int { return len(c.cmds) }

func (c *CompositeCommand) Apply() {
	for _, cmd := range c.cmds {
		cmd.Apply()
	}
}

func (c *CompositeCommand) Undo() {
	for i := len(c.cmds) - 1; i >= 0; i-- {
		c.cmds[i].Undo()
	}
}

func (c *CompositeCommand) Redo() {
	for _, cmd := range c.cmds {
		cmd.Redo()
	}
}

func (c *CompositeCommand) Kind() Kind { return KindComposite }

// LayerPhysicsCommand flips a layer's physics flag.
type LayerPhysicsCommand struct {
	canvas *canvas.Canvas
	layer  int
}

func LayerPhysics(c *canvas.Canvas, layer int) *LayerPhysicsCommand {
	return &LayerPhysicsCommand{canvas: c, layer: layer}
}

func (l *LayerPhysicsCommand) toggle() {
	meta, ok := l.canvas.Layer(l.layer)
	if !ok {
		return
	}
	l.canvas.SetLayerPhysics(l.layer, !meta.Physics)
}

func (l *LayerPhysicsCommand) Apply() { l.toggle() }
func (l *LayerPhysicsCommand) Undo()  { l.toggle() }
func (l *LayerPhysicsCommand) Redo()  { l.toggle() }

func (l *LayerPhysicsCommand) Kind() Kind { return KindLayerPhysics }
