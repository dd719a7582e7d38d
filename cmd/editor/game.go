package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilecanvas/assets"
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/collision"
	"github.com/milk9111/tilecanvas/common"
	"github.com/milk9111/tilecanvas/config"
	"github.com/milk9111/tilecanvas/edit"
	"github.com/milk9111/tilecanvas/picking"
	"github.com/milk9111/tilecanvas/session"
	"github.com/milk9111/tilecanvas/tool"
	"golang.design/x/clipboard"
)

// EditorGame adapts the session to ebiten's Update/Draw loop.
type EditorGame struct {
	sess     *session.Session
	registry *assets.Registry

	ui         *ebitenui.UI
	toolBar    *ToolBar
	layerPanel *LayerPanel
	fontFace   text.Face

	tilesetID  string
	tileset    *ebiten.Image
	tilesetDim assets.Asset

	camera    tool.Camera
	isPanning bool
	lastPanX  int
	lastPanY  int

	screenW int
	screenH int

	gridPixel            *ebiten.Image
	showPhysicsHighlight bool
	showGrid             bool
	collision            *collision.World
	collisionStale       bool

	configPath     string
	scriptName     string
	watcher        *config.Watcher
	clipboardReady bool

	status string
}

func newEditorGame(sess *session.Session, registry *assets.Registry, configPath, scriptName string) *EditorGame {
	cfg := sess.Config()
	g := &EditorGame{
		sess:           sess,
		registry:       registry,
		camera:         tool.Camera{Zoom: cfg.Camera.Zoom},
		configPath:     configPath,
		scriptName:     scriptName,
		collisionStale: true,
		showGrid:       true,
	}
	sess.OnEditApplied(func(a edit.Action, cmd edit.Command) {
		g.collisionStale = true
		if cmd.Kind() == edit.KindLayerPhysics {
			g.syncLayers()
		}
	})

	ui, toolBar, layerPanel, face := BuildEditorUI(uiCallbacks{
		onToolSelected:    g.setTool,
		onUndo:            g.undo,
		onRedo:            g.redo,
		onClear:           g.clear,
		onLayerSelected:   g.selectLayer,
		onTogglePhysics:   g.togglePhysics,
		onToggleHighlight: g.toggleHighlight,
		onToggleGrid:      g.toggleGrid,
		onAssetSelected:   g.selectTileset,
	}, registry.IDs(), cfg.Tileset.Asset, sess.ToolMode())
	g.ui = ui
	g.toolBar = toolBar
	g.layerPanel = layerPanel
	g.fontFace = face

	g.selectTileset(cfg.Tileset.Asset)
	g.syncLayers()
	return g
}

func (g *EditorGame) Update() error {
	g.pollWatcher()
	g.pollShortcuts()

	if g.ui != nil {
		g.ui.Update()
	}
	g.updateCamera()
	g.updateTilesetPick()

	g.sess.Tick(g.frame())

	g.toolBar.SetTool(g.sess.ToolMode())
	g.toolBar.SetHistoryState(g.sess.CanUndo(), g.sess.CanRedo())
	return nil
}

// frame samples the pointer relative to the canvas viewport.
func (g *EditorGame) frame() tool.Frame {
	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(cx, cy)
	vp := canvasViewport(g.screenW, g.screenH)
	return tool.Frame{
		Pointer: toVec(cursor.Sub(vp.Min)),
		Camera:  g.camera,
		Button: tool.Button{
			JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			Held:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		},
		OverUI: ebuiinput.UIHovered || !cursor.In(vp),
	}
}

func (g *EditorGame) updateCamera() {
	vp := canvasViewport(g.screenW, g.screenH)
	cx, cy := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.isPanning = true
		g.lastPanX, g.lastPanY = cx, cy
	}
	if g.isPanning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		g.camera.Offset = g.camera.Offset.Add(picking.Vec{X: float64(cx - g.lastPanX), Y: float64(cy - g.lastPanY)})
		g.lastPanX, g.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.isPanning = false
	}

	if !image.Pt(cx, cy).In(vp) {
		return
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		oldZoom := g.camera.Zoom
		newZoom := stepZoom(oldZoom, wy, g.sess.Config().Camera)
		if newZoom != oldZoom {
			cursor := toVec(image.Pt(cx, cy).Sub(vp.Min))
			g.camera.Offset = picking.ZoomAt(cursor, g.camera.Offset, oldZoom, newZoom)
			g.camera.Zoom = newZoom
		}
	}
}

func (g *EditorGame) updateTilesetPick() {
	if g.tileset == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	cx, cy := ebiten.CursorPosition()
	origin := tilesetOrigin(g.screenW)
	p := toVec(image.Pt(cx, cy).Sub(origin))
	ts := g.sess.Canvas().TileSize()
	col, row, ok := picking.PickSourceRect(p, g.tilesetDim.Width, g.tilesetDim.Height, ts)
	if !ok {
		return
	}
	g.sess.SelectTile(canvas.Tile{Asset: g.tilesetID, Src: picking.SourceRect(col, row, ts), Scale: 1})
}

func (g *EditorGame) pollShortcuts() {
	if g.ui != nil {
		if _, typing := g.ui.GetFocusedWidget().(*widget.TextInput); typing {
			return
		}
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range shortcutKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.apply(resolveShortcut(k, ctrl, shift))
		}
	}
}

func (g *EditorGame) apply(s shortcut) {
	if m, ok := modeFor(s); ok {
		g.setTool(m)
		return
	}
	ts := g.sess.Canvas().TileSize()
	w, h := g.sess.Canvas().Width(), g.sess.Canvas().Height()
	switch s {
	case shortcutUndo:
		g.undo()
	case shortcutRedo:
		g.redo()
	case shortcutNewProject:
		g.sess.NewProject()
		g.afterReplace("New project")
	case shortcutSave:
		g.save()
	case shortcutExportScript:
		g.exportScript()
	case shortcutCopy:
		g.copyLevel()
	case shortcutPaste:
		g.pasteLevel()
	case shortcutRunScript:
		g.runScript()
	case shortcutTogglePhysics:
		g.togglePhysics()
	case shortcutToggleHighlight:
		g.toggleHighlight()
	case shortcutToggleGrid:
		g.toggleGrid()
	case shortcutPrevLayer, shortcutNextLayer:
		delta := 1
		if s == shortcutPrevLayer {
			delta = -1
		}
		g.selectLayer(cycleLayer(g.sess.Brush().Layer, delta, g.sess.Canvas().LayerCount()))
	case shortcutShrinkWidth:
		g.sess.Resize(w-ts, h)
	case shortcutGrowWidth:
		g.sess.Resize(w+ts, h)
	case shortcutShrinkHeight:
		g.sess.Resize(w, h-ts)
	case shortcutGrowHeight:
		g.sess.Resize(w, h+ts)
	}
}

func (g *EditorGame) setTool(m tool.Mode) {
	if m == g.sess.ToolMode() {
		return
	}
	g.sess.SetToolMode(m)
	log.Printf("Switched to %s tool", m)
}

func (g *EditorGame) undo() {
	if !g.sess.RequestUndo() {
		g.status = "Nothing to undo"
	}
}

func (g *EditorGame) redo() {
	if !g.sess.RequestRedo() {
		g.status = "Nothing to redo"
	}
}

func (g *EditorGame) clear() {
	g.sess.RequestClear()
	g.collisionStale = true
	g.status = "Canvas cleared"
}

func (g *EditorGame) selectLayer(layer int) {
	if !g.sess.SelectLayer(layer) {
		return
	}
	g.layerPanel.SetSelected(layer)
	g.syncPhysicsButton()
}

func (g *EditorGame) togglePhysics() {
	g.sess.ToggleLayerPhysics(g.sess.Brush().Layer)
}

func (g *EditorGame) toggleHighlight() {
	g.showPhysicsHighlight = !g.showPhysicsHighlight
	g.layerPanel.SetHighlightButtonState(g.showPhysicsHighlight)
}

func (g *EditorGame) toggleGrid() {
	g.showGrid = !g.showGrid
	g.toolBar.SetGridState(g.showGrid)
}

func (g *EditorGame) syncLayers() {
	g.layerPanel.SetLayers(g.sess.Canvas().Layers())
	g.layerPanel.SetSelected(g.sess.Brush().Layer)
	g.syncPhysicsButton()
}

func (g *EditorGame) syncPhysicsButton() {
	if l, ok := g.sess.Canvas().Layer(g.sess.Brush().Layer); ok {
		g.layerPanel.SetPhysicsButtonState(l.Physics)
	}
}

// afterReplace refreshes view state once the session swapped its canvas.
func (g *EditorGame) afterReplace(msg string) {
	g.collisionStale = true
	g.syncLayers()
	g.status = msg
	log.Println(msg)
}

func (g *EditorGame) selectTileset(id string) {
	a, ok := g.registry.Lookup(id)
	if !ok {
		log.Printf("Tileset not found: %s", id)
		return
	}
	img, err := g.registry.Image(a.ID)
	if err != nil {
		log.Printf("Failed to load tileset %s: %v", a.ID, err)
		return
	}
	g.tilesetID = a.ID
	g.tileset = img
	g.tilesetDim = a
	ts := g.sess.Canvas().TileSize()
	if b := g.sess.Brush(); b.Tile.Asset != a.ID {
		g.sess.SelectTile(canvas.Tile{Asset: a.ID, Src: picking.SourceRect(0, 0, ts), Scale: 1})
	}
	log.Printf("Tileset loaded: %s (%dx%d)", a.ID, a.Width, a.Height)
}

func (g *EditorGame) savePath() string {
	if p := g.sess.Path(); p != "" {
		return p
	}
	return filepath.Join(g.sess.Config().Paths.Levels, "untitled.json")
}

func (g *EditorGame) save() {
	path := g.savePath()
	if err := g.sess.Save(path); err != nil {
		log.Printf("Save failed: %v", err)
		g.status = "Save failed"
		return
	}
	g.status = "Saved " + path
}

// scriptExportPath puts the tengo export next to the level file.
func scriptExportPath(levelPath string) string {
	return strings.TrimSuffix(levelPath, filepath.Ext(levelPath)) + ".tengo"
}

func (g *EditorGame) exportScript() {
	path := scriptExportPath(g.savePath())
	if err := g.sess.ExportScript(path); err != nil {
		log.Printf("Export failed: %v", err)
		g.status = "Export failed"
		return
	}
	g.status = "Exported " + path
}

func (g *EditorGame) copyLevel() {
	if !g.clipboardReady {
		g.status = "Clipboard unavailable"
		return
	}
	data, err := g.sess.ExportJSON()
	if err != nil {
		log.Printf("Copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.status = "Level copied"
}

func (g *EditorGame) pasteLevel() {
	if !g.clipboardReady {
		g.status = "Clipboard unavailable"
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	if err := g.sess.ImportJSON(data); err != nil {
		log.Printf("Paste failed: %v", err)
		g.status = "Clipboard does not hold a level"
		return
	}
	g.afterReplace("Level pasted")
}

func (g *EditorGame) runScript() {
	if err := g.sess.RunMacro(g.scriptName); err != nil {
		log.Printf("Script failed: %v", err)
		g.status = "Script failed"
		return
	}
	g.status = "Ran " + g.scriptName
}

// pollWatcher applies config edits and reports script edits without blocking.
func (g *EditorGame) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			g.onFileChanged(change)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch error: %v", err)
		default:
			return
		}
	}
}

func (g *EditorGame) onFileChanged(change config.Change) {
	if change.Kind == config.ScriptFile {
		g.status = "Script changed: " + filepath.Base(change.Path)
		return
	}
	if filepath.Clean(change.Path) != filepath.Clean(g.configPath) {
		return
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Config reload failed: %v", err)
		}
		return
	}
	g.sess.ApplyConfig(cfg)
	g.camera.Zoom = common.Clamp(g.camera.Zoom, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	if cfg.Tileset.Asset != g.tilesetID {
		g.selectTileset(cfg.Tileset.Asset)
	}
	g.status = "Config reloaded"
	log.Printf("Config reloaded from %s", g.configPath)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// collisionWorld rebuilds the physics preview only after an edit.
func (g *EditorGame) collisionWorld() *collision.World {
	if g.collision == nil || g.collisionStale {
		g.collision = g.sess.Collision()
		g.collisionStale = false
	}
	return g.collision
}

func (g *EditorGame) statusLine() string {
	cv := g.sess.Canvas()
	dirty := ""
	if g.sess.Dirty() {
		dirty = " *"
	}
	layer, _ := cv.Layer(g.sess.Brush().Layer)
	line := fmt.Sprintf("%s | %s | %dx%d (%dx%d tiles) | zoom %.2f%s",
		g.sess.ToolMode(), layer.Name, cv.Width(), cv.Height(), cv.Cols(), cv.Rows(), g.camera.Zoom, dirty)
	if f := g.frame(); !f.OverUI {
		if cell := g.sess.Controller().Cell(f); cv.InBounds(cell.Col, cell.Row, g.sess.Brush().Layer) {
			line += " | " + cursorLabel(cell, cv.TileSize())
		}
		p := picking.ScreenToWorld(f.Pointer, g.camera.Offset, g.camera.Zoom)
		if g.collisionWorld().Solid(p.X, p.Y) {
			line += " | solid"
		}
	}
	if g.status != "" {
		line += " | " + g.status
	}
	return line
}
