package canvas

import (
	"sort"

	"github.com/milk9111/tilecanvas/common"
)

// Rect is a source rectangle in tileset pixels.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Tile is what gets painted into a cell: a region of a tileset image.
type Tile struct {
	Asset string
	Src   Rect
	Scale float64
}

type Cell struct {
	Col int
	Row int
}

// Placement is one tile stored in the grid.
type Placement struct {
	Tile
	Cell  Cell
	Layer int
}

type Layer struct {
	Name    string
	Physics bool
}

// Canvas owns the editable tile grid and its pixel dimensions.
type Canvas struct {
	width    int
	height   int
	tileSize int
	layers   []Layer
	cells    []map[Cell]Tile
}

// DefaultLayers is used when a canvas is created without layer metadata.
func DefaultLayers() []Layer {
	return []Layer{
		{Name: "Background"},
		{Name: "Main", Physics: true},
		{Name: "Foreground"},
	}
}

// New creates a canvas. Width and height are snapped to whole tiles.
func New(width, height, tileSize int, layers ...Layer) *Canvas {
	if tileSize < common.MinTileSize {
		tileSize = common.MinTileSize
	}
	if len(layers) == 0 {
		layers = DefaultLayers()
	}
	c := &Canvas{
		tileSize: tileSize,
		layers:   append([]Layer(nil), layers...),
		cells:    make([]map[Cell]Tile, len(layers)),
	}
	for i := range c.cells {
		c.cells[i] = make(map[Cell]Tile)
	}
	c.SetWidth(width)
	c.SetHeight(height)
	return c
}

func (c *Canvas) Width() int    { return c.width }
func (c *Canvas) Height() int   { return c.height }
func (c *Canvas) TileSize() int { return c.tileSize }

// SetWidth stores v snapped down to a whole number of tiles, at least one.
func (c *Canvas) SetWidth(v int) {
	c.width = common.SnapDown(v, c.tileSize)
}

// SetHeight stores v snapped down to a whole number of tiles, at least one.
func (c *Canvas) SetHeight(v int) {
	c.height = common.SnapDown(v, c.tileSize)
}

func (c *Canvas) Cols() int { return c.width / c.tileSize }
func (c *Canvas) Rows() int { return c.height / c.tileSize }

func (c *Canvas) LayerCount() int { return len(c.layers) }

func (c *Canvas) Layers() []Layer {
	return append([]Layer(nil), c.layers...)
}

func (c *Canvas) Layer(idx int) (Layer, bool) {
	if idx < 0 || idx >= len(c.layers) {
		return Layer{}, false
	}
	return c.layers[idx], true
}

func (c *Canvas) SetLayerPhysics(idx int, physics bool) bool {
	if idx < 0 || idx >= len(c.layers) {
		return false
	}
	c.layers[idx].Physics = physics
	return true
}

// InBounds reports whether the cell is addressable under the current dimensions.
func (c *Canvas) InBounds(col, row, layer int) bool {
	if layer < 0 || layer >= len(c.cells) {
		return false
	}
	return col >= 0 && row >= 0 && col < c.Cols() && row < c.Rows()
}

func (c *Canvas) GetTile(col, row, layer int) (Tile, bool) {
	if !c.InBounds(col, row, layer) {
		return Tile{}, false
	}
	t, ok := c.cells[layer][Cell{Col: col, Row: row}]
	return t, ok
}

// SetTile writes t into the cell. Out of bounds writes are dropped.
func (c *Canvas) SetTile(col, row, layer int, t Tile) bool {
	if !c.InBounds(col, row, layer) {
		return false
	}
	c.cells[layer][Cell{Col: col, Row: row}] = t
	return true
}

// ClearTile empties the cell. It reports false when the cell is out of bounds.
func (c *Canvas) ClearTile(col, row, layer int) bool {
	if !c.InBounds(col, row, layer) {
		return false
	}
	delete(c.cells[layer], Cell{Col: col, Row: row})
	return true
}

// Reset drops every stored placement, including ones hidden by a shrink.
func (c *Canvas) Reset() {
	for i := range c.cells {
		c.cells[i] = make(map[Cell]Tile)
	}
}

// Snapshot is a read-only copy of the canvas for renderers and serializers.
type Snapshot struct {
	Width      int
	Height     int
	TileSize   int
	Layers     []Layer
	Placements []Placement
}

func (s Snapshot) Cols() int { return s.Width / s.TileSize }
func (s Snapshot) Rows() int { return s.Height / s.TileSize }

// Snapshot copies the visible placements ordered by layer, row, then column.
func (c *Canvas) Snapshot() Snapshot {
	snap := Snapshot{
		Width:    c.width,
		Height:   c.height,
		TileSize: c.tileSize,
		Layers:   c.Layers(),
	}
	for li, grid := range c.cells {
		for cell, t := range grid {
			if !c.InBounds(cell.Col, cell.Row, li) {
				continue
			}
			snap.Placements = append(snap.Placements, Placement{Tile: t, Cell: cell, Layer: li})
		}
	}
	sort.Slice(snap.Placements, func(i, j int) bool {
		a, b := snap.Placements[i], snap.Placements[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Cell.Row != b.Cell.Row {
			return a.Cell.Row < b.Cell.Row
		}
		return a.Cell.Col < b.Cell.Col
	})
	return snap
}
