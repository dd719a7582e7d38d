package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// buildTilesetPanelUI lays out the asset list. The tileset texture itself is
// drawn by the editor below the list so it can be picked at display scale.
func buildTilesetPanelUI(
	fontFace *text.Face,
	assetIDs []string,
	selected string,
	onAssetSelected func(id string),
) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, tilesetListH),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(editorPalette.Panel)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Tilesets", fontFace, editorPalette.label()),
	))

	entries := make([]any, 0, len(assetIDs))
	for _, id := range assetIDs {
		entries = append(entries, id)
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			id, _ := e.(string)
			return id
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if id, ok := args.Entry.(string); ok && onAssetSelected != nil {
				onAssetSelected(id)
			}
		}),
	)
	panel.AddChild(list)
	if selected != "" {
		for _, e := range entries {
			if e == selected {
				list.SetSelectedEntry(e)
			}
		}
	}
	return panel
}
