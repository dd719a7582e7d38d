// Package levels is the on-disk shape of a canvas: dimensions plus an ordered
// placement list, enough to rebuild the canvas without replaying history.
package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/common"
)

var ErrInvalidLevel = errors.New("invalid level")

type Level struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	TileSize   int         `json:"tile_size"`
	Layers     []LayerMeta `json:"layers,omitempty"`
	Placements []Placement `json:"placements"`
}

type LayerMeta struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics"`
}

type Placement struct {
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	Layer int     `json:"layer"`
	SrcX  int     `json:"src_x"`
	SrcY  int     `json:"src_y"`
	SrcW  int     `json:"src_w"`
	SrcH  int     `json:"src_h"`
	Asset string  `json:"asset,omitempty"`
	Scale float64 `json:"scale,omitempty"`
}

// FromSnapshot converts a canvas snapshot into its persisted form.
func FromSnapshot(snap canvas.Snapshot) *Level {
	lvl := &Level{
		Width:      snap.Width,
		Height:     snap.Height,
		TileSize:   snap.TileSize,
		Placements: make([]Placement, 0, len(snap.Placements)),
	}
	for _, l := range snap.Layers {
		lvl.Layers = append(lvl.Layers, LayerMeta{Name: l.Name, Physics: l.Physics})
	}
	for _, p := range snap.Placements {
		lvl.Placements = append(lvl.Placements, Placement{
			Col:   p.Cell.Col,
			Row:   p.Cell.Row,
			Layer: p.Layer,
			SrcX:  p.Src.X,
			SrcY:  p.Src.Y,
			SrcW:  p.Src.W,
			SrcH:  p.Src.H,
			Asset: p.Asset,
			Scale: p.Scale,
		})
	}
	return lvl
}

func (l *Level) layerCount() int {
	if len(l.Layers) == 0 {
		return len(canvas.DefaultLayers())
	}
	return len(l.Layers)
}

// Validate checks that dimensions are whole tiles and every placement lands
// inside the canvas.
func (l *Level) Validate() error {
	if l.TileSize < common.MinTileSize {
		return fmt.Errorf("%w: tile size %d", ErrInvalidLevel, l.TileSize)
	}
	if l.Width < l.TileSize || l.Height < l.TileSize {
		return fmt.Errorf("%w: canvas %dx%d smaller than one tile", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.Width%l.TileSize != 0 || l.Height%l.TileSize != 0 {
		return fmt.Errorf("%w: canvas %dx%d not a multiple of tile size %d", ErrInvalidLevel, l.Width, l.Height, l.TileSize)
	}
	cols, rows, layers := l.Width/l.TileSize, l.Height/l.TileSize, l.layerCount()
	for i, p := range l.Placements {
		if p.Col < 0 || p.Row < 0 || p.Col >= cols || p.Row >= rows {
			return fmt.Errorf("%w: placement %d at (%d,%d) outside %dx%d grid", ErrInvalidLevel, i, p.Col, p.Row, cols, rows)
		}
		if p.Layer < 0 || p.Layer >= layers {
			return fmt.Errorf("%w: placement %d on layer %d of %d", ErrInvalidLevel, i, p.Layer, layers)
		}
	}
	return nil
}

// Restore builds a fresh canvas holding the level's tiles. Later placements
// for the same cell win.
func (l *Level) Restore() (*canvas.Canvas, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var layers []canvas.Layer
	for _, m := range l.Layers {
		layers = append(layers, canvas.Layer{Name: m.Name, Physics: m.Physics})
	}
	c := canvas.New(l.Width, l.Height, l.TileSize, layers...)
	for _, p := range l.Placements {
		scale := p.Scale
		if scale == 0 {
			scale = 1
		}
		c.SetTile(p.Col, p.Row, p.Layer, canvas.Tile{
			Asset: p.Asset,
			Src:   canvas.Rect{X: p.SrcX, Y: p.SrcY, W: p.SrcW, H: p.SrcH},
			Scale: scale,
		})
	}
	return c, nil
}

func Encode(w io.Writer, l *Level) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (*Level, error) {
	var lvl Level
	if err := json.NewDecoder(r).Decode(&lvl); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// SaveFile writes the level as indented JSON, creating parent directories.
func SaveFile(path string, l *Level) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("levels: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levels: create %s: %w", path, err)
	}
	if err := Encode(f, l); err != nil {
		f.Close()
		return fmt.Errorf("levels: %s: %w", path, err)
	}
	return f.Close()
}

func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", path, err)
	}
	defer f.Close()
	lvl, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", path, err)
	}
	return lvl, nil
}
