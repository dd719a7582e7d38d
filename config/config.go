// Package config loads the editor's YAML settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/common"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Camera  CameraConfig  `yaml:"camera"`
	Tileset TilesetConfig `yaml:"tileset"`
	Paths   PathsConfig   `yaml:"paths"`
}

type CanvasConfig struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	TileSize int           `yaml:"tile_size"`
	Layers   []LayerConfig `yaml:"layers"`
}

type LayerConfig struct {
	Name    string `yaml:"name"`
	Physics bool   `yaml:"physics"`
}

type CameraConfig struct {
	Zoom     float64 `yaml:"zoom"`
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
}

type TilesetConfig struct {
	Asset string `yaml:"asset"`
}

type PathsConfig struct {
	Assets  string `yaml:"assets"`
	Levels  string `yaml:"levels"`
	Scripts string `yaml:"scripts"`
}

func Default() Config {
	cfg := Config{
		Canvas: CanvasConfig{
			Width:    common.DefaultCanvasWidth,
			Height:   common.DefaultCanvasHeight,
			TileSize: common.DefaultTileSize,
		},
		Camera:  CameraConfig{Zoom: 1, MinZoom: 0.25, MaxZoom: 4, ZoomStep: 1.1},
		Tileset: TilesetConfig{Asset: "tiles.png"},
		Paths:   PathsConfig{Assets: "assets", Levels: "levels", Scripts: "scripts"},
	}
	for _, l := range canvas.DefaultLayers() {
		cfg.Canvas.Layers = append(cfg.Canvas.Layers, LayerConfig{Name: l.Name, Physics: l.Physics})
	}
	return cfg
}

// Parse overlays YAML on top of the defaults and normalizes the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Normalize clamps values the editor cannot work with.
func (c *Config) Normalize() {
	if c.Canvas.TileSize < common.MinTileSize {
		c.Canvas.TileSize = common.MinTileSize
	}
	c.Canvas.Width = common.SnapDown(c.Canvas.Width, c.Canvas.TileSize)
	c.Canvas.Height = common.SnapDown(c.Canvas.Height, c.Canvas.TileSize)
	if len(c.Canvas.Layers) == 0 {
		c.Canvas.Layers = Default().Canvas.Layers
	}

	if c.Camera.MinZoom <= 0 {
		c.Camera.MinZoom = 0.25
	}
	if c.Camera.MaxZoom < c.Camera.MinZoom {
		c.Camera.MaxZoom = c.Camera.MinZoom
	}
	if c.Camera.ZoomStep <= 1 {
		c.Camera.ZoomStep = 1.1
	}
	c.Camera.Zoom = common.Clamp(c.Camera.Zoom, c.Camera.MinZoom, c.Camera.MaxZoom)
}

// CanvasLayers converts the configured layers for canvas.New.
func (c Config) CanvasLayers() []canvas.Layer {
	layers := make([]canvas.Layer, 0, len(c.Canvas.Layers))
	for _, l := range c.Canvas.Layers {
		layers = append(layers, canvas.Layer{Name: l.Name, Physics: l.Physics})
	}
	return layers
}
