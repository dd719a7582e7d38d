// Package session owns the editor state a front end drives: one canvas, its
// history and the tool selection. UI events come in as method calls.
package session

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/collision"
	"github.com/milk9111/tilecanvas/config"
	"github.com/milk9111/tilecanvas/edit"
	"github.com/milk9111/tilecanvas/levels"
	"github.com/milk9111/tilecanvas/scripting"
	"github.com/milk9111/tilecanvas/tool"
)

// ScriptTimeout bounds a single macro run.
const ScriptTimeout = 5 * time.Second

type Session struct {
	cfg        config.Config
	canvas     *canvas.Canvas
	history    *edit.History
	controller *tool.Controller

	mode  tool.Mode
	brush tool.Brush

	dirty bool
	path  string
}

func New(cfg config.Config) *Session {
	cfg.Normalize()
	s := &Session{
		cfg:     cfg,
		history: edit.NewHistory(),
		mode:    tool.Paint,
	}
	s.history.OnEditApplied(func(edit.Action, edit.Command) {
		s.dirty = true
	})
	s.reset(canvas.New(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.TileSize, cfg.CanvasLayers()...))
	return s
}

// reset swaps in a new canvas and forgets all history.
func (s *Session) reset(c *canvas.Canvas) {
	s.canvas = c
	s.controller = tool.NewController(c, s.history)
	s.history.Clear()
	ts := c.TileSize()
	s.brush = tool.Brush{
		Tile: canvas.Tile{
			Asset: s.cfg.Tileset.Asset,
			Src:   canvas.Rect{W: ts, H: ts},
			Scale: 1,
		},
		Layer: s.defaultLayer(),
	}
}

// defaultLayer is the first physics layer, or 0.
func (s *Session) defaultLayer() int {
	for i, l := range s.canvas.Layers() {
		if l.Physics {
			return i
		}
	}
	return 0
}

func (s *Session) Config() config.Config { return s.cfg }

// ApplyConfig takes new camera, tileset and path settings. Canvas settings
// only apply to the next NewProject.
func (s *Session) ApplyConfig(cfg config.Config) {
	cfg.Normalize()
	s.cfg = cfg
}

func (s *Session) Canvas() *canvas.Canvas       { return s.canvas }
func (s *Session) History() *edit.History       { return s.history }
func (s *Session) Controller() *tool.Controller { return s.controller }
func (s *Session) Snapshot() canvas.Snapshot    { return s.canvas.Snapshot() }

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// OnEditApplied registers fn for every executed, undone or redone command.
func (s *Session) OnEditApplied(fn edit.Listener) {
	s.history.OnEditApplied(fn)
}

func (s *Session) RequestUndo() bool { return s.history.Undo() }
func (s *Session) RequestRedo() bool { return s.history.Redo() }

// RequestClear removes every tile and drops the history. It cannot be undone.
func (s *Session) RequestClear() {
	s.canvas.Reset()
	s.history.Clear()
	s.controller.Reset()
	s.dirty = true
}

// NewProject replaces the canvas with an empty one built from the config.
func (s *Session) NewProject() {
	c := s.cfg.Canvas
	s.reset(canvas.New(c.Width, c.Height, c.TileSize, s.cfg.CanvasLayers()...))
	s.dirty = false
	s.path = ""
}

func (s *Session) ToolMode() tool.Mode { return s.mode }

func (s *Session) SetToolMode(m tool.Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	s.controller.Reset()
}

func (s *Session) Brush() tool.Brush { return s.brush }

// SelectTile sets the tile painted by the brush tools.
func (s *Session) SelectTile(t canvas.Tile) {
	if t.Scale == 0 {
		t.Scale = 1
	}
	s.brush.Tile = t
}

// SelectLayer changes the brush layer. Unknown layers are ignored.
func (s *Session) SelectLayer(layer int) bool {
	if _, ok := s.canvas.Layer(layer); !ok {
		return false
	}
	s.brush.Layer = layer
	s.controller.Reset()
	return true
}

// Resize changes the canvas dimensions and records the change. Values are
// snapped to whole tiles with a one tile minimum. It reports false when the
// dimensions did not change.
func (s *Session) Resize(width, height int) bool {
	prevW, prevH := s.canvas.Width(), s.canvas.Height()
	s.canvas.SetWidth(width)
	s.canvas.SetHeight(height)
	if s.canvas.Width() == prevW && s.canvas.Height() == prevH {
		return false
	}
	s.history.Execute(edit.ResizeCanvas(s.canvas, prevW, prevH))
	return true
}

// ToggleLayerPhysics flips the physics flag of layer as an undoable edit.
func (s *Session) ToggleLayerPhysics(layer int) bool {
	if _, ok := s.canvas.Layer(layer); !ok {
		return false
	}
	s.history.Execute(edit.LayerPhysics(s.canvas, layer))
	return true
}

// Tick feeds one frame of pointer input to the active tool.
func (s *Session) Tick(f tool.Frame) edit.Command {
	return s.controller.Tick(f, s.mode, s.brush)
}

func (s *Session) Dirty() bool { return s.dirty }
func (s *Session) MarkSaved()  { s.dirty = false }

// Path is the file the session was last loaded from or saved to.
func (s *Session) Path() string { return s.path }

func (s *Session) Level() *levels.Level {
	return levels.FromSnapshot(s.canvas.Snapshot())
}

// LoadLevel replaces the canvas with l. The history is cleared.
func (s *Session) LoadLevel(l *levels.Level) error {
	c, err := l.Restore()
	if err != nil {
		return err
	}
	s.reset(c)
	s.dirty = false
	return nil
}

func (s *Session) Save(path string) error {
	if err := levels.SaveFile(path, s.Level()); err != nil {
		return err
	}
	s.path = path
	s.MarkSaved()
	log.Printf("session: saved %s", path)
	return nil
}

func (s *Session) Load(path string) error {
	l, err := levels.LoadFile(path)
	if err != nil {
		return err
	}
	if err := s.LoadLevel(l); err != nil {
		return fmt.Errorf("session: load %s: %w", path, err)
	}
	s.path = path
	log.Printf("session: loaded %s (%dx%d, %d tiles)", path, l.Width, l.Height, len(l.Placements))
	return nil
}

// ExportScript writes the level as a tengo module that game scripts can import.
// It does not change the save path or the dirty flag.
func (s *Session) ExportScript(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("session: export %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, scripting.ExportLevel(s.Level()), 0644); err != nil {
		return fmt.Errorf("session: export %s: %w", path, err)
	}
	log.Printf("session: exported %s", path)
	return nil
}

// ExportJSON encodes the current level, e.g. for the clipboard.
func (s *Session) ExportJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := levels.Encode(&buf, s.Level()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Session) ImportJSON(data []byte) error {
	l, err := levels.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err := s.LoadLevel(l); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// RunScript runs a tengo macro with the current brush. Its edits undo as one step.
func (s *Session) RunScript(name string, src []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), ScriptTimeout)
	defer cancel()
	cmd, err := scripting.RunContext(ctx, s.history, s.canvas, s.brush, name, src)
	if err != nil {
		return err
	}
	if cmd != nil {
		log.Printf("session: script %s applied %d edits", name, editCount(cmd))
	}
	return nil
}

// RunMacro loads name from the scripts directory or the bundled macros and runs it.
func (s *Session) RunMacro(name string) error {
	src, err := scripting.LoadMacro(s.cfg.Paths.Scripts, name)
	if err != nil {
		return fmt.Errorf("session: macro %s: %w", name, err)
	}
	return s.RunScript(name, src)
}

func editCount(cmd edit.Command) int {
	if c, ok := cmd.(*edit.CompositeCommand); ok {
		return c.Len()
	}
	return 1
}

// Collision builds the physics preview for the current canvas.
func (s *Session) Collision() *collision.World {
	return collision.Build(s.canvas.Snapshot())
}
