package canvas

import "testing"

func grass() Tile {
	return Tile{Asset: "tiles.png", Src: Rect{X: 32, Y: 0, W: 32, H: 32}, Scale: 1}
}

func TestNewSnapsDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		tileSize      int
		wantW, wantH  int
	}{
		{"default", 960, 640, 32, 960, 640},
		{"below_one_tile", 10, 5, 32, 32, 32},
		{"not_multiple", 1000, 650, 32, 992, 640},
		{"negative", -64, 0, 16, 16, 16},
		{"tile_size_floor", 64, 64, 2, 64, 64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cv := New(c.width, c.height, c.tileSize)
			if cv.Width() != c.wantW || cv.Height() != c.wantH {
				t.Fatalf("got %dx%d, want %dx%d", cv.Width(), cv.Height(), c.wantW, c.wantH)
			}
			if cv.Width()%cv.TileSize() != 0 || cv.Height()%cv.TileSize() != 0 {
				t.Fatalf("dimensions %dx%d not multiples of %d", cv.Width(), cv.Height(), cv.TileSize())
			}
		})
	}
}

func TestSetWidthClampsToOneTile(t *testing.T) {
	cv := New(960, 640, 32)
	cv.SetWidth(10)
	if cv.Width() != 32 {
		t.Fatalf("width = %d, want 32", cv.Width())
	}
	cv.SetHeight(0)
	if cv.Height() != 32 {
		t.Fatalf("height = %d, want 32", cv.Height())
	}
}

func TestSetGetClearTile(t *testing.T) {
	cv := New(960, 640, 32)
	if cv.Cols() != 30 || cv.Rows() != 20 {
		t.Fatalf("grid = %dx%d, want 30x20", cv.Cols(), cv.Rows())
	}
	if !cv.SetTile(5, 5, 0, grass()) {
		t.Fatalf("SetTile in bounds returned false")
	}
	got, ok := cv.GetTile(5, 5, 0)
	if !ok || got != grass() {
		t.Fatalf("GetTile = %+v ok=%v", got, ok)
	}
	if _, ok := cv.GetTile(5, 5, 1); ok {
		t.Fatalf("other layer should be empty")
	}
	if !cv.ClearTile(5, 5, 0) {
		t.Fatalf("ClearTile in bounds returned false")
	}
	if _, ok := cv.GetTile(5, 5, 0); ok {
		t.Fatalf("cell should be empty after clear")
	}
}

func TestOutOfBoundsIsNoop(t *testing.T) {
	cv := New(64, 64, 32)
	cv.SetTile(1, 1, 0, grass())
	cases := []struct {
		name            string
		col, row, layer int
	}{
		{"col_past_edge", 2, 0, 0},
		{"row_past_edge", 0, 2, 0},
		{"negative_col", -1, 0, 0},
		{"bad_layer", 0, 0, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if cv.SetTile(c.col, c.row, c.layer, grass()) {
				t.Fatalf("SetTile should fail out of bounds")
			}
			if cv.ClearTile(c.col, c.row, c.layer) {
				t.Fatalf("ClearTile should fail out of bounds")
			}
		})
	}
	if n := len(cv.Snapshot().Placements); n != 1 {
		t.Fatalf("placements = %d, want 1", n)
	}
	if _, ok := cv.GetTile(1, 1, 0); !ok {
		t.Fatalf("neighbouring cell was corrupted")
	}
}

func TestShrinkHidesButKeepsTiles(t *testing.T) {
	cv := New(128, 64, 32)
	cv.SetTile(3, 0, 0, grass())
	cv.SetWidth(64)
	if _, ok := cv.GetTile(3, 0, 0); ok {
		t.Fatalf("tile outside bounds should be hidden")
	}
	if n := len(cv.Snapshot().Placements); n != 0 {
		t.Fatalf("snapshot placements = %d, want 0", n)
	}
	cv.SetWidth(128)
	if _, ok := cv.GetTile(3, 0, 0); !ok {
		t.Fatalf("tile should reappear after growing back")
	}
}

func TestSnapshotOrder(t *testing.T) {
	cv := New(128, 128, 32)
	cv.SetTile(1, 1, 1, grass())
	cv.SetTile(2, 0, 0, grass())
	cv.SetTile(0, 1, 0, grass())
	snap := cv.Snapshot()
	want := []Placement{
		{Tile: grass(), Cell: Cell{Col: 2, Row: 0}, Layer: 0},
		{Tile: grass(), Cell: Cell{Col: 0, Row: 1}, Layer: 0},
		{Tile: grass(), Cell: Cell{Col: 1, Row: 1}, Layer: 1},
	}
	if len(snap.Placements) != len(want) {
		t.Fatalf("placements = %d, want %d", len(snap.Placements), len(want))
	}
	for i := range want {
		if snap.Placements[i] != want[i] {
			t.Fatalf("placement %d = %+v, want %+v", i, snap.Placements[i], want[i])
		}
	}
	if len(snap.Layers) != 3 || !snap.Layers[1].Physics {
		t.Fatalf("unexpected layers %+v", snap.Layers)
	}
}

func TestResetAndLayerPhysics(t *testing.T) {
	cv := New(64, 64, 32)
	cv.SetTile(0, 0, 0, grass())
	cv.Reset()
	if n := len(cv.Snapshot().Placements); n != 0 {
		t.Fatalf("placements after reset = %d", n)
	}
	if !cv.SetLayerPhysics(0, true) {
		t.Fatalf("SetLayerPhysics on valid layer returned false")
	}
	if l, _ := cv.Layer(0); !l.Physics {
		t.Fatalf("layer 0 physics not set")
	}
	if cv.SetLayerPhysics(7, true) {
		t.Fatalf("SetLayerPhysics on invalid layer returned true")
	}
}
