// Package scripting runs tengo macros against a canvas. A macro's edits are
// grouped into one history entry.
package scripting

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/edit"
	"github.com/milk9111/tilecanvas/levels"
	"github.com/milk9111/tilecanvas/tool"
)

var ErrScript = errors.New("script failed")

// Run executes src with the canvas bindings. See RunContext.
func Run(h *edit.History, c *canvas.Canvas, brush tool.Brush, name string, src []byte) (edit.Command, error) {
	return RunContext(context.Background(), h, c, brush, name, src)
}

// RunContext compiles and runs src. Every edit the script makes is executed
// inside one history transaction: on success the transaction is committed and
// the resulting command (nil if nothing changed) is returned, on failure it is
// rolled back and the canvas is left as it was.
func RunContext(ctx context.Context, h *edit.History, c *canvas.Canvas, brush tool.Brush, name string, src []byte) (edit.Command, error) {
	if h == nil || c == nil {
		return nil, fmt.Errorf("%w: %s: nil history or canvas", ErrScript, name)
	}

	script := tengo.NewScript(src)
	imports := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	imports.AddSourceModule(LevelModule, ExportLevel(levels.FromSnapshot(c.Snapshot())))
	script.SetImports(imports)
	b := &bindings{history: h, canvas: c, brush: brush}
	for fname, fn := range b.funcs() {
		if err := script.Add(fname, fn); err != nil {
			return nil, fmt.Errorf("%w: %s: bind %s: %v", ErrScript, name, fname, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: compile: %v", ErrScript, name, err)
	}

	h.Begin()
	if err := compiled.RunContext(ctx); err != nil {
		h.Rollback()
		return nil, fmt.Errorf("%w: %s: %v", ErrScript, name, err)
	}
	return h.Commit(), nil
}

type bindings struct {
	history *edit.History
	canvas  *canvas.Canvas
	brush   tool.Brush
}

func (b *bindings) funcs() map[string]*tengo.UserFunction {
	intFn := func(name string, v func() int) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Int{Value: int64(v())}, nil
		}}
	}
	cellFn := func(name string, f func(cell canvas.Cell) bool) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			cell, err := cellArgs(name, args)
			if err != nil {
				return nil, err
			}
			if f(cell) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}}
	}

	return map[string]*tengo.UserFunction{
		"width":     intFn("width", b.canvas.Width),
		"height":    intFn("height", b.canvas.Height),
		"cols":      intFn("cols", b.canvas.Cols),
		"rows":      intFn("rows", b.canvas.Rows),
		"tile_size": intFn("tile_size", b.canvas.TileSize),
		"paint":     cellFn("paint", b.paint),
		"erase":     cellFn("erase", b.erase),
		"fill":      cellFn("fill", b.fill),
		"occupied":  cellFn("occupied", b.occupied),
	}
}

func cellArgs(name string, args []tengo.Object) (canvas.Cell, error) {
	if len(args) != 2 {
		return canvas.Cell{}, tengo.ErrWrongNumArguments
	}
	col, ok := tengo.ToInt(args[0])
	if !ok {
		return canvas.Cell{}, tengo.ErrInvalidArgumentType{Name: name + ".col", Expected: "int", Found: args[0].TypeName()}
	}
	row, ok := tengo.ToInt(args[1])
	if !ok {
		return canvas.Cell{}, tengo.ErrInvalidArgumentType{Name: name + ".row", Expected: "int", Found: args[1].TypeName()}
	}
	return canvas.Cell{Col: col, Row: row}, nil
}

// paint, erase and fill are no-ops outside the canvas and report whether
// anything changed.
func (b *bindings) paint(cell canvas.Cell) bool {
	if !b.canvas.InBounds(cell.Col, cell.Row, b.brush.Layer) {
		return false
	}
	if cur, ok := b.canvas.GetTile(cell.Col, cell.Row, b.brush.Layer); ok && cur == b.brush.Tile {
		return false
	}
	b.history.Execute(edit.AddTile(b.canvas, canvas.Placement{Tile: b.brush.Tile, Cell: cell, Layer: b.brush.Layer}))
	return true
}

func (b *bindings) erase(cell canvas.Cell) bool {
	if _, ok := b.canvas.GetTile(cell.Col, cell.Row, b.brush.Layer); !ok {
		return false
	}
	b.history.Execute(edit.RemoveTile(b.canvas, cell.Col, cell.Row, b.brush.Layer))
	return true
}

func (b *bindings) fill(cell canvas.Cell) bool {
	if cur, ok := b.canvas.GetTile(cell.Col, cell.Row, b.brush.Layer); ok && cur == b.brush.Tile {
		return false
	}
	cells := tool.FloodFill(b.canvas, cell, b.brush.Layer)
	for _, c := range cells {
		b.history.Execute(edit.AddTile(b.canvas, canvas.Placement{Tile: b.brush.Tile, Cell: c, Layer: b.brush.Layer}))
	}
	return len(cells) > 0
}

func (b *bindings) occupied(cell canvas.Cell) bool {
	_, ok := b.canvas.GetTile(cell.Col, cell.Row, b.brush.Layer)
	return ok
}
