package picking

import (
	"testing"

	"github.com/milk9111/tilecanvas/canvas"
)

func TestPickCell(t *testing.T) {
	cases := []struct {
		name     string
		pointer  Vec
		offset   Vec
		zoom     float64
		tileSize int
		col, row int
	}{
		{"origin", Vec{0, 0}, Vec{}, 1, 32, 0, 0},
		{"cell_5_5", Vec{5*32 + 10, 5*32 + 1}, Vec{}, 1, 32, 5, 5},
		{"boundary_goes_up", Vec{64, 32}, Vec{}, 1, 32, 2, 1},
		{"just_before_boundary", Vec{63.999, 31.999}, Vec{}, 1, 32, 1, 0},
		{"zoomed_in", Vec{130, 70}, Vec{}, 2, 32, 2, 1},
		{"zoomed_out", Vec{40, 17}, Vec{}, 0.5, 32, 2, 1},
		{"camera_offset", Vec{100, 100}, Vec{-28, 36}, 1, 32, 4, 2},
		{"left_of_canvas", Vec{-1, 5}, Vec{}, 1, 32, -1, 0},
		{"zero_zoom_treated_as_one", Vec{33, 33}, Vec{}, 0, 32, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col, row := PickCell(c.pointer, c.offset, c.zoom, c.tileSize)
			if col != c.col || row != c.row {
				t.Fatalf("PickCell = (%d,%d), want (%d,%d)", col, row, c.col, c.row)
			}
		})
	}
}

func TestPickCellMonotonic(t *testing.T) {
	for _, zoom := range []float64{0.25, 0.5, 1, 2, 4} {
		step := 32 * zoom
		for x := 0.0; x < 300; x += 7.5 {
			p := Vec{X: x, Y: 10}
			c0, r0 := PickCell(p, Vec{X: 3, Y: 3}, zoom, 32)
			c1, r1 := PickCell(Vec{X: x + step, Y: 10}, Vec{X: 3, Y: 3}, zoom, 32)
			if c1 != c0+1 || r1 != r0 {
				t.Fatalf("zoom %v x %v: (%d,%d) -> (%d,%d)", zoom, x, c0, r0, c1, r1)
			}
			c2, r2 := PickCell(p, Vec{X: 3, Y: 3}, zoom, 32)
			if c2 != c0 || r2 != r0 {
				t.Fatalf("PickCell not deterministic")
			}
		}
	}
}

func TestPickSourceRect(t *testing.T) {
	// 128x64 texture of 32px tiles shown at 2x: 256x128 on screen, 4x2 tiles.
	cases := []struct {
		name     string
		pointer  Vec
		col, row int
		ok       bool
	}{
		{"first", Vec{0, 0}, 0, 0, true},
		{"second_col", Vec{64, 10}, 1, 0, true},
		{"last", Vec{255, 127}, 3, 1, true},
		{"right_edge_outside", Vec{256, 10}, 0, 0, false},
		{"bottom_edge_outside", Vec{10, 128}, 0, 0, false},
		{"negative", Vec{-1, 10}, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col, row, ok := PickSourceRect(c.pointer, 128, 64, 32)
			if ok != c.ok || col != c.col || row != c.row {
				t.Fatalf("PickSourceRect = (%d,%d,%v), want (%d,%d,%v)", col, row, ok, c.col, c.row, c.ok)
			}
		})
	}
}

func TestPickSourceRectPartialTile(t *testing.T) {
	// 100px wide texture holds three whole 32px tiles; the sliver is not pickable.
	if _, _, ok := PickSourceRect(Vec{X: 195, Y: 0}, 100, 32, 32); ok {
		t.Fatalf("partial tile should not be pickable")
	}
	if col, _, ok := PickSourceRect(Vec{X: 190, Y: 0}, 100, 32, 32); !ok || col != 2 {
		t.Fatalf("col = %d ok=%v, want 2 true", col, ok)
	}
}

func TestSourceRect(t *testing.T) {
	got := SourceRect(3, 2, 16)
	want := canvas.Rect{X: 48, Y: 32, W: 16, H: 16}
	if got != want {
		t.Fatalf("SourceRect = %+v, want %+v", got, want)
	}
}

func TestZoomAtKeepsCursorFixed(t *testing.T) {
	cursor := Vec{X: 400, Y: 300}
	offset := Vec{X: 50, Y: -20}
	before := ScreenToWorld(cursor, offset, 1)
	next := ZoomAt(cursor, offset, 1, 2)
	after := ScreenToWorld(cursor, next, 2)
	if before != after {
		t.Fatalf("world under cursor moved: %+v -> %+v", before, after)
	}
	if back := WorldToScreen(after, next, 2); back != cursor {
		t.Fatalf("WorldToScreen = %+v, want %+v", back, cursor)
	}
}
