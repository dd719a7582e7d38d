package main

import (
	"image"

	"github.com/milk9111/tilecanvas/common"
	"github.com/milk9111/tilecanvas/config"
	"github.com/milk9111/tilecanvas/picking"
)

const (
	leftPanelWidth  = 200
	rightPanelWidth = 560
	toolbarHeight   = 56
	tilesetListH    = 140
	tilesetMargin   = 16
)

// canvasViewport is the screen area the canvas is drawn into.
func canvasViewport(screenW, screenH int) image.Rectangle {
	if screenW-rightPanelWidth <= leftPanelWidth || screenH <= toolbarHeight {
		return image.Rectangle{}
	}
	return image.Rect(leftPanelWidth, toolbarHeight, screenW-rightPanelWidth, screenH)
}

// tilesetOrigin is where the tileset texture is drawn inside the right panel.
func tilesetOrigin(screenW int) image.Point {
	return image.Pt(screenW-rightPanelWidth+tilesetMargin, tilesetListH+tilesetMargin)
}

// stepZoom applies one wheel notch and clamps to the configured range.
func stepZoom(zoom, wheelY float64, cam config.CameraConfig) float64 {
	switch {
	case wheelY > 0:
		zoom *= cam.ZoomStep
	case wheelY < 0:
		zoom /= cam.ZoomStep
	}
	return common.Clamp(zoom, cam.MinZoom, cam.MaxZoom)
}

func toVec(p image.Point) picking.Vec {
	return picking.Vec{X: float64(p.X), Y: float64(p.Y)}
}
