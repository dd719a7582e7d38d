package edit

import (
	"testing"

	"github.com/milk9111/tilecanvas/canvas"
)

func tileAt(x int) canvas.Tile {
	return canvas.Tile{Asset: "tiles.png", Src: canvas.Rect{X: x, Y: 0, W: 32, H: 32}, Scale: 1}
}

func place(col, row, layer int, t canvas.Tile) canvas.Placement {
	return canvas.Placement{Tile: t, Cell: canvas.Cell{Col: col, Row: row}, Layer: layer}
}

func TestAddTileCommand(t *testing.T) {
	cv := canvas.New(960, 640, 32)
	cmd := AddTile(cv, place(5, 5, 0, tileAt(0)))
	cmd.Apply()
	if got, ok := cv.GetTile(5, 5, 0); !ok || got != tileAt(0) {
		t.Fatalf("after Apply got %+v ok=%v", got, ok)
	}
	cmd.Undo()
	if _, ok := cv.GetTile(5, 5, 0); ok {
		t.Fatalf("cell should be empty after Undo")
	}
	cmd.Redo()
	if got, ok := cv.GetTile(5, 5, 0); !ok || got != tileAt(0) {
		t.Fatalf("after Redo got %+v ok=%v", got, ok)
	}
	if cmd.Kind() != KindAddTile {
		t.Fatalf("kind = %v", cmd.Kind())
	}
}

func TestAddTileOverwriteRestoresPrevious(t *testing.T) {
	cv := canvas.New(960, 640, 32)
	cv.SetTile(1, 1, 0, tileAt(0))
	cmd := AddTile(cv, place(1, 1, 0, tileAt(32)))
	cmd.Apply()
	cmd.Undo()
	if got, ok := cv.GetTile(1, 1, 0); !ok || got != tileAt(0) {
		t.Fatalf("Undo should restore the overwritten tile, got %+v ok=%v", got, ok)
	}
}

func TestRemoveTileCommand(t *testing.T) {
	cv := canvas.New(960, 640, 32)
	cv.SetTile(2, 3, 1, tileAt(64))
	cmd := RemoveTile(cv, 2, 3, 1)
	cmd.Apply()
	if _, ok := cv.GetTile(2, 3, 1); ok {
		t.Fatalf("cell should be empty after Apply")
	}
	if p, ok := cmd.Removed(); !ok || p.Tile != tileAt(64) {
		t.Fatalf("Removed = %+v ok=%v", p, ok)
	}
	cmd.Undo()
	if got, ok := cv.GetTile(2, 3, 1); !ok || got != tileAt(64) {
		t.Fatalf("after Undo got %+v ok=%v", got, ok)
	}
	cmd.Redo()
	if _, ok := cv.GetTile(2, 3, 1); ok {
		t.Fatalf("cell should be empty after Redo")
	}
}

func TestRemoveTileOnEmptyCellUndoIsNoop(t *testing.T) {
	cv := canvas.New(64, 64, 32)
	cmd := RemoveTile(cv, 0, 0, 0)
	cmd.Apply()
	cmd.Undo()
	if _, ok := cv.GetTile(0, 0, 0); ok {
		t.Fatalf("undo of an empty removal must not create a tile")
	}
}

func TestResizeCanvasIsSelfInverse(t *testing.T) {
	cv := canvas.New(960, 640, 32)
	cv.SetWidth(1024)
	cmd := ResizeCanvas(cv, 960, 640)
	cmd.Apply()
	if cv.Width() != 1024 || cv.Height() != 640 {
		t.Fatalf("Apply must not change dimensions, got %dx%d", cv.Width(), cv.Height())
	}
	cmd.Undo()
	if cv.Width() != 960 || cv.Height() != 640 {
		t.Fatalf("first Undo = %dx%d, want 960x640", cv.Width(), cv.Height())
	}
	cmd.Undo()
	if cv.Width() != 1024 || cv.Height() != 640 {
		t.Fatalf("second Undo = %dx%d, want 1024x640", cv.Width(), cv.Height())
	}
	cmd.Redo()
	if cv.Width() != 960 {
		t.Fatalf("Redo after two undos = %d, want 960", cv.Width())
	}
}

func TestCompositeUndoesInReverse(t *testing.T) {
	cv := canvas.New(64, 64, 32)
	// Two writes to the same cell: undo must unwind the second before the first.
	cmd := Composite(
		AddTile(cv, place(0, 0, 0, tileAt(0))),
		AddTile(cv, place(0, 0, 0, tileAt(32))),
	)
	cmd.Apply()
	if got, _ := cv.GetTile(0, 0, 0); got != tileAt(32) {
		t.Fatalf("after Apply got %+v", got)
	}
	cmd.Undo()
	if _, ok := cv.GetTile(0, 0, 0); ok {
		t.Fatalf("composite undo left a tile behind")
	}
	cmd.Redo()
	if got, _ := cv.GetTile(0, 0, 0); got != tileAt(32) {
		t.Fatalf("after Redo got %+v", got)
	}
	if cmd.Len() != 2 || len(cmd.Commands()) != 2 {
		t.Fatalf("composite length = %d", cmd.Len())
	}
}

func TestLayerPhysicsToggle(t *testing.T) {
	cv := canvas.New(64, 64, 32)
	cmd := LayerPhysics(cv, 0)
	cmd.Apply()
	if l, _ := cv.Layer(0); !l.Physics {
		t.Fatalf("Apply should enable physics")
	}
	cmd.Undo()
	if l, _ := cv.Layer(0); l.Physics {
		t.Fatalf("Undo should disable physics")
	}
	cmd.Redo()
	if l, _ := cv.Layer(0); !l.Physics {
		t.Fatalf("Redo should enable physics")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindAddTile:      "AddTile",
		KindRemoveTile:   "RemoveTile",
		KindResizeCanvas: "ResizeCanvas",
		KindComposite:    "Composite",
		KindLayerPhysics: "LayerPhysics",
		Kind(99):         "Unknown",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Fatalf("%d.String() = %q, want %q", int(k), k.String(), want)
		}
	}
}
