package tool

import (
	"testing"

	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/edit"
	"github.com/milk9111/tilecanvas/picking"
)

var (
	stone = canvas.Tile{Asset: "tiles.png", Src: canvas.Rect{X: 0, Y: 0, W: 32, H: 32}, Scale: 1}
	grass = canvas.Tile{Asset: "tiles.png", Src: canvas.Rect{X: 32, Y: 0, W: 32, H: 32}, Scale: 1}
)

func setup(w, h int) (*canvas.Canvas, *edit.History, *Controller) {
	cv := canvas.New(w, h, 32)
	hist := edit.NewHistory()
	return cv, hist, NewController(cv, hist)
}

// frameAt points at the middle of a cell with an identity camera.
func frameAt(col, row int, b Button) Frame {
	return Frame{
		Pointer: picking.Vec{X: float64(col*32 + 16), Y: float64(row*32 + 16)},
		Camera:  Camera{Zoom: 1},
		Button:  b,
	}
}

var (
	press   = Button{JustPressed: true, Held: true}
	hold    = Button{Held: true}
	release = Button{JustReleased: true}
)

func TestPaintScenario(t *testing.T) {
	cv, hist, tc := setup(960, 640)
	brush := Brush{Tile: stone}
	cmd := tc.Tick(frameAt(5, 5, press), Paint, brush)
	if cmd == nil || cmd.Kind() != edit.KindAddTile {
		t.Fatalf("paint produced %v", cmd)
	}
	if got, ok := cv.GetTile(5, 5, 0); !ok || got != stone {
		t.Fatalf("GetTile(5,5) = %+v ok=%v", got, ok)
	}
	hist.Undo()
	if _, ok := cv.GetTile(5, 5, 0); ok {
		t.Fatalf("cell should be empty after undo")
	}
	hist.Redo()
	if got, ok := cv.GetTile(5, 5, 0); !ok || got != stone {
		t.Fatalf("GetTile(5,5) after redo = %+v ok=%v", got, ok)
	}
}

func TestPaintHoldOverSameCellAddsOneEntry(t *testing.T) {
	_, hist, tc := setup(960, 640)
	brush := Brush{Tile: stone}
	tc.Tick(frameAt(1, 1, press), Paint, brush)
	for i := 0; i < 5; i++ {
		if cmd := tc.Tick(frameAt(1, 1, hold), Paint, brush); cmd != nil {
			t.Fatalf("holding over a painted cell emitted %v", cmd)
		}
	}
	tc.Tick(frameAt(2, 1, hold), Paint, brush)
	if done, _ := hist.Len(); done != 2 {
		t.Fatalf("history has %d entries, want 2", done)
	}
}

func TestPaintIgnoresIdleAndUIFrames(t *testing.T) {
	cv, _, tc := setup(960, 640)
	if cmd := tc.Tick(frameAt(1, 1, Button{}), Paint, Brush{Tile: stone}); cmd != nil {
		t.Fatalf("idle pointer emitted %v", cmd)
	}
	f := frameAt(1, 1, press)
	f.OverUI = true
	if cmd := tc.Tick(f, Paint, Brush{Tile: stone}); cmd != nil {
		t.Fatalf("pointer over UI emitted %v", cmd)
	}
	if cmd := tc.Tick(frameAt(1, 1, press), None, Brush{Tile: stone}); cmd != nil {
		t.Fatalf("mode None emitted %v", cmd)
	}
	if n := len(cv.Snapshot().Placements); n != 0 {
		t.Fatalf("canvas changed: %d tiles", n)
	}
}

func TestOutOfBoundsPointerIsIgnored(t *testing.T) {
	_, hist, tc := setup(64, 64)
	for _, f := range []Frame{
		frameAt(2, 0, press),
		frameAt(0, 5, press),
		{Pointer: picking.Vec{X: -3, Y: 10}, Camera: Camera{Zoom: 1}, Button: press},
	} {
		if cmd := tc.Tick(f, Paint, Brush{Tile: stone}); cmd != nil {
			t.Fatalf("out of bounds frame emitted %v", cmd)
		}
	}
	if hist.CanUndo() {
		t.Fatalf("history should be empty")
	}
}

func TestPaintWithCamera(t *testing.T) {
	cv, _, tc := setup(960, 640)
	f := Frame{
		Pointer: picking.Vec{X: 200, Y: 150},
		Camera:  Camera{Offset: picking.Vec{X: 40, Y: 22}, Zoom: 2},
		Button:  press,
	}
	tc.Tick(f, Paint, Brush{Tile: grass, Layer: 2})
	// (200-40)/64 = 2.5, (150-22)/64 = 2
	if got, ok := cv.GetTile(2, 2, 2); !ok || got != grass {
		t.Fatalf("zoomed paint missed, got %+v ok=%v", got, ok)
	}
}

func TestEraseOnlyOccupied(t *testing.T) {
	cv, hist, tc := setup(960, 640)
	if cmd := tc.Tick(frameAt(3, 3, press), Erase, Brush{}); cmd != nil {
		t.Fatalf("erasing an empty cell emitted %v", cmd)
	}
	tc.Tick(frameAt(3, 3, press), Paint, Brush{Tile: grass})
	cmd := tc.Tick(frameAt(3, 3, hold), Erase, Brush{})
	if cmd == nil || cmd.Kind() != edit.KindRemoveTile {
		t.Fatalf("erase produced %v", cmd)
	}
	if _, ok := cv.GetTile(3, 3, 0); ok {
		t.Fatalf("tile not erased")
	}
	hist.Undo()
	if got, ok := cv.GetTile(3, 3, 0); !ok || got != grass {
		t.Fatalf("undo of erase = %+v ok=%v", got, ok)
	}
}

func TestFillEmptyCanvasIsOneUndo(t *testing.T) {
	for _, start := range []canvas.Cell{{Col: 0, Row: 0}, {Col: 3, Row: 3}, {Col: 1, Row: 2}} {
		cv, hist, tc := setup(128, 128)
		cmd := tc.Tick(frameAt(start.Col, start.Row, press), Fill, Brush{Tile: stone})
		if cmd == nil || cmd.Kind() != edit.KindComposite {
			t.Fatalf("fill produced %v", cmd)
		}
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				if got, ok := cv.GetTile(col, row, 0); !ok || got != stone {
					t.Fatalf("start %+v: cell (%d,%d) = %+v ok=%v", start, col, row, got, ok)
				}
			}
		}
		if !hist.Undo() {
			t.Fatalf("undo failed")
		}
		if n := len(cv.Snapshot().Placements); n != 0 {
			t.Fatalf("one undo left %d tiles", n)
		}
	}
}

func TestFillReplacesMatchingRegionOnly(t *testing.T) {
	cv, _, tc := setup(128, 128)
	cv.SetTile(0, 0, 0, grass)
	cv.SetTile(1, 0, 0, grass)
	cv.SetTile(3, 3, 0, grass)
	tc.Tick(frameAt(0, 0, press), Fill, Brush{Tile: stone})
	if got, _ := cv.GetTile(1, 0, 0); got != stone {
		t.Fatalf("connected grass not replaced")
	}
	if got, _ := cv.GetTile(3, 3, 0); got != grass {
		t.Fatalf("disconnected grass was replaced")
	}
	if _, ok := cv.GetTile(0, 1, 0); ok {
		t.Fatalf("empty cell should not be filled from an occupied seed")
	}
}

func TestFillNeedsFreshPressAndNewTile(t *testing.T) {
	_, hist, tc := setup(128, 128)
	if cmd := tc.Tick(frameAt(0, 0, hold), Fill, Brush{Tile: stone}); cmd != nil {
		t.Fatalf("held button should not fill")
	}
	tc.Tick(frameAt(0, 0, press), Fill, Brush{Tile: stone})
	if cmd := tc.Tick(frameAt(0, 0, press), Fill, Brush{Tile: stone}); cmd != nil {
		t.Fatalf("filling with the same tile emitted %v", cmd)
	}
	if done, _ := hist.Len(); done != 1 {
		t.Fatalf("history = %d entries, want 1", done)
	}
}

func TestLineCommitsOnRelease(t *testing.T) {
	cv, hist, tc := setup(320, 320)
	brush := Brush{Tile: grass}
	if cmd := tc.Tick(frameAt(0, 0, press), Line, brush); cmd != nil {
		t.Fatalf("line press emitted %v", cmd)
	}
	if start, ok := tc.LineStart(); !ok || start != (canvas.Cell{}) {
		t.Fatalf("line start = %+v ok=%v", start, ok)
	}
	tc.Tick(frameAt(2, 0, hold), Line, brush)
	cmd := tc.Tick(frameAt(4, 0, release), Line, brush)
	if cmd == nil || cmd.Kind() != edit.KindComposite {
		t.Fatalf("line release produced %v", cmd)
	}
	for col := 0; col <= 4; col++ {
		if got, ok := cv.GetTile(col, 0, 0); !ok || got != grass {
			t.Fatalf("cell (%d,0) = %+v ok=%v", col, got, ok)
		}
	}
	hist.Undo()
	if n := len(cv.Snapshot().Placements); n != 0 {
		t.Fatalf("line undo left %d tiles", n)
	}
	if _, ok := tc.LineStart(); ok {
		t.Fatalf("line start should be cleared after release")
	}
}

func TestLineReleaseOutsideCancels(t *testing.T) {
	cv, _, tc := setup(128, 128)
	brush := Brush{Tile: grass}
	tc.Tick(frameAt(0, 0, press), Line, brush)
	if cmd := tc.Tick(frameAt(10, 0, release), Line, brush); cmd != nil {
		t.Fatalf("release outside emitted %v", cmd)
	}
	if _, ok := tc.LineStart(); ok {
		t.Fatalf("line should be cancelled")
	}
	if n := len(cv.Snapshot().Placements); n != 0 {
		t.Fatalf("canvas changed: %d tiles", n)
	}
}

func TestModeSwitchDropsLineAnchor(t *testing.T) {
	_, _, tc := setup(128, 128)
	tc.Tick(frameAt(0, 0, press), Line, Brush{Tile: grass})
	tc.Tick(frameAt(0, 0, Button{}), Paint, Brush{Tile: grass})
	if _, ok := tc.LineStart(); ok {
		t.Fatalf("switching mode should drop the line anchor")
	}
}
