package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilecanvas/tool"
	"golang.org/x/image/font/gofont/goregular"
)

// uiCallbacks are the session operations reachable from widgets.
type uiCallbacks struct {
	onToolSelected    func(m tool.Mode)
	onUndo            func()
	onRedo            func()
	onClear           func()
	onLayerSelected   func(layer int)
	onTogglePhysics   func()
	onToggleHighlight func()
	onToggleGrid      func()
	onAssetSelected   func(id string)
}

func BuildEditorUI(cb uiCallbacks, assetIDs []string, selectedAsset string, initialTool tool.Mode) (*ebitenui.UI, *ToolBar, *LayerPanel, text.Face) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace, editorPalette)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, cb, initialTool)
	leftPanel, layerPanel := buildLayerPanelUI(ui.PrimaryTheme, &fontFace, cb.onLayerSelected, cb.onTogglePhysics, cb.onToggleHighlight)
	rightPanel := buildTilesetPanelUI(&fontFace, assetIDs, selectedAsset, cb.onAssetSelected)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel)
	root.AddChild(rightPanel)
	root.AddChild(toolbarContainer)
	ui.Container = root

	return ui, toolBar, layerPanel, fontFace
}
