package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/common"
	"github.com/milk9111/tilecanvas/picking"
	"github.com/milk9111/tilecanvas/tool"
)

func (g *EditorGame) Draw(screen *ebiten.Image) {
	if g.gridPixel == nil {
		g.gridPixel = ebiten.NewImage(1, 1)
		g.gridPixel.Fill(color.White)
	}
	screen.Fill(editorPalette.Background)

	vp := canvasViewport(g.screenW, g.screenH)
	if !vp.Empty() {
		view := screen.SubImage(vp).(*ebiten.Image)
		g.drawCanvas(view, toVec(vp.Min))
	}
	g.drawTileset(screen)

	if g.ui != nil {
		g.ui.Draw(screen)
	}
	g.drawStatus(screen)
}

// drawCanvas renders the grid, tiles and overlays. origin is the viewport's
// top-left corner in screen pixels; sub-images keep absolute coordinates.
func (g *EditorGame) drawCanvas(dst *ebiten.Image, origin picking.Vec) {
	snap := g.sess.Snapshot()
	ts := float64(snap.TileSize)
	zoom := g.camera.Zoom
	toScreen := func(col, row int) picking.Vec {
		world := picking.Vec{X: float64(col) * ts, Y: float64(row) * ts}
		return picking.WorldToScreen(world, g.camera.Offset, zoom).Add(origin)
	}

	topLeft := toScreen(0, 0)
	g.fillRect(dst, topLeft, float64(snap.Width)*zoom, float64(snap.Height)*zoom, editorPalette.Canvas)

	for _, p := range snap.Placements {
		g.drawTile(dst, p.Tile, toScreen(p.Cell.Col, p.Cell.Row), ts*zoom, 1)
	}

	if g.showGrid {
		for c := 0; c <= snap.Cols(); c++ {
			g.fillRect(dst, toScreen(c, 0), 1, float64(snap.Height)*zoom, editorPalette.Grid)
		}
		for r := 0; r <= snap.Rows(); r++ {
			g.fillRect(dst, toScreen(0, r), float64(snap.Width)*zoom, 1, editorPalette.Grid)
		}
	}

	if g.showPhysicsHighlight {
		for _, bb := range g.collisionWorld().Boxes() {
			pos := picking.WorldToScreen(picking.Vec{X: bb.L, Y: bb.B}, g.camera.Offset, zoom).Add(origin)
			g.fillRect(dst, pos, (bb.R-bb.L)*zoom, (bb.T-bb.B)*zoom, editorPalette.PhysicsOverlay)
		}
	}

	f := g.frame()
	if f.OverUI {
		return
	}
	cell := g.sess.Controller().Cell(f)
	brush := g.sess.Brush()
	if start, ok := g.sess.Controller().LineStart(); ok && g.sess.ToolMode() == tool.Line {
		for _, c := range tool.LineCells(start, cell) {
			if g.sess.Canvas().InBounds(c.Col, c.Row, brush.Layer) {
				g.drawTile(dst, brush.Tile, toScreen(c.Col, c.Row), ts*zoom, 0.5)
			}
		}
	}
	if g.sess.Canvas().InBounds(cell.Col, cell.Row, brush.Layer) {
		g.fillRect(dst, toScreen(cell.Col, cell.Row), ts*zoom, ts*zoom, editorPalette.Hover)
	}
}

func (g *EditorGame) drawTile(dst *ebiten.Image, t canvas.Tile, pos picking.Vec, size float64, alpha float32) {
	img, err := g.registry.Image(t.Asset)
	if err != nil || t.Src.W <= 0 || t.Src.H <= 0 {
		g.fillRect(dst, pos, size, size, withAlpha(editorPalette.LinePreview, alpha/2))
		return
	}
	sub := img.SubImage(image.Rect(t.Src.X, t.Src.Y, t.Src.X+t.Src.W, t.Src.Y+t.Src.H)).(*ebiten.Image)
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(t.Src.W)*scale, size/float64(t.Src.H)*scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(sub, op)
}

func (g *EditorGame) drawTileset(screen *ebiten.Image) {
	if g.tileset == nil {
		return
	}
	origin := tilesetOrigin(g.screenW)
	scale := float64(common.TilesetDisplayScale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.tileset, op)

	brush := g.sess.Brush()
	if brush.Tile.Asset != g.tilesetID {
		return
	}
	src := brush.Tile.Src
	pos := picking.Vec{X: float64(origin.X) + float64(src.X)*scale, Y: float64(origin.Y) + float64(src.Y)*scale}
	w, h := float64(src.W)*scale, float64(src.H)*scale
	sel := editorPalette.TileSelection
	g.fillRect(screen, pos, w, 2, sel)
	g.fillRect(screen, picking.Vec{X: pos.X, Y: pos.Y + h - 2}, w, 2, sel)
	g.fillRect(screen, pos, 2, h, sel)
	g.fillRect(screen, picking.Vec{X: pos.X + w - 2, Y: pos.Y}, 2, h, sel)
}

func (g *EditorGame) drawStatus(screen *ebiten.Image) {
	if g.fontFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(leftPanelWidth+8), float64(g.screenH-24))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, g.statusLine(), g.fontFace, op)
}

func (g *EditorGame) fillRect(dst *ebiten.Image, pos picking.Vec, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(g.gridPixel, op)
}
