package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilecanvas/canvas"
)

// LayerEntry is one row of the layer list.
type LayerEntry struct {
	Index   int
	Name    string
	Physics bool
}

// LayerPanel wraps the layer list and physics controls on the left.
type LayerPanel struct {
	list       *widget.List
	entries    []any
	physicsBtn *widget.Button
	lightBtn   *widget.Button

	// suppressEvents keeps programmatic selection from reaching the session.
	suppressEvents bool
}

func (lp *LayerPanel) SetLayers(layers []canvas.Layer) {
	if lp == nil || lp.list == nil {
		return
	}
	lp.suppressEvents = true
	entries := make([]any, len(layers))
	for i, l := range layers {
		entries[i] = LayerEntry{Index: i, Name: l.Name, Physics: l.Physics}
	}
	lp.entries = entries
	lp.list.SetEntries(entries)
	lp.suppressEvents = false
}

func (lp *LayerPanel) SetSelected(idx int) {
	if lp == nil || lp.list == nil || idx < 0 || idx >= len(lp.entries) {
		return
	}
	lp.suppressEvents = true
	lp.list.SetSelectedEntry(lp.entries[idx])
	lp.suppressEvents = false
}

func (lp *LayerPanel) SetPhysicsButtonState(on bool) {
	setButtonLabel(lp.physicsBtn, "Physics Off", "Physics On", on)
}

func (lp *LayerPanel) SetHighlightButtonState(on bool) {
	setButtonLabel(lp.lightBtn, "Highlight Off", "Highlight On", on)
}

func setButtonLabel(btn *widget.Button, off, on string, state bool) {
	if btn == nil {
		return
	}
	label := off
	if state {
		label = on
	}
	if t := btn.Text(); t != nil {
		t.Label = label
	}
}

func buildLayerPanelUI(
	theme *widget.Theme,
	fontFace *text.Face,
	onLayerSelected func(layerIndex int),
	onTogglePhysics func(),
	onToggleHighlight func(),
) (*widget.Container, *LayerPanel) {
	lp := &LayerPanel{}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
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
		widget.LabelOpts.Text("Layers", fontFace, editorPalette.label()),
	))

	lp.list = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			entry, ok := e.(LayerEntry)
			if !ok {
				return ""
			}
			if entry.Physics {
				return fmt.Sprintf("%d. %s *", entry.Index+1, entry.Name)
			}
			return fmt.Sprintf("%d. %s", entry.Index+1, entry.Name)
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(LayerEntry)
			if !ok || lp.suppressEvents || onLayerSelected == nil {
				return
			}
			onLayerSelected(entry.Index)
		}),
	)
	panel.AddChild(lp.list)

	button := func(label string, fn func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		)
	}
	lp.physicsBtn = button("Physics Off", onTogglePhysics)
	lp.lightBtn = button("Highlight Off", onToggleHighlight)
	panel.AddChild(lp.physicsBtn)
	panel.AddChild(lp.lightBtn)

	return panel, lp
}
