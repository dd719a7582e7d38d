package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tilecanvas/tool"
)

// ToolBar holds the tool radio group and the history buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	modes   []tool.Mode
	current tool.Mode

	undoBtn *widget.Button
	redoBtn *widget.Button
	gridBtn *widget.Button

	// suppress is set while the editor changes the selection itself.
	suppress bool
}

func (tb *ToolBar) SetTool(m tool.Mode) {
	if tb == nil || tb.group == nil || tb.current == m {
		return
	}
	tb.current = m
	for i, mode := range tb.modes {
		if mode == m {
			tb.suppress = true
			tb.group.SetActive(tb.buttons[i])
			tb.suppress = false
			return
		}
	}
}

// SetHistoryState enables Undo and Redo only when they would do something.
func (tb *ToolBar) SetHistoryState(canUndo, canRedo bool) {
	if tb == nil {
		return
	}
	if tb.undoBtn != nil {
		tb.undoBtn.GetWidget().Disabled = !canUndo
	}
	if tb.redoBtn != nil {
		tb.redoBtn.GetWidget().Disabled = !canRedo
	}
}

func (tb *ToolBar) SetGridState(on bool) {
	if tb == nil {
		return
	}
	setButtonLabel(tb.gridBtn, "Grid Off", "Grid On", on)
}

func buildToolBar(
	theme *widget.Theme,
	fontFace *text.Face,
	cb uiCallbacks,
	initialTool tool.Mode,
) (*widget.Container, *ToolBar) {
	buttonTextColor := editorPalette.buttonText()

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(560, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(editorPalette.Toolbar)),
	)

	tb := &ToolBar{modes: tool.Modes(), current: tool.None}
	for _, m := range tb.modes {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(m.String(), fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 40),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if tb.suppress || cb.onToolSelected == nil {
				return
			}
			for i, b := range tb.buttons {
				if args.Active == b {
					tb.current = tb.modes[i]
					cb.onToolSelected(tb.modes[i])
					return
				}
			}
		}),
	)

	action := func(label string, fn func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(56, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}
	tb.undoBtn = action("Undo", cb.onUndo)
	tb.redoBtn = action("Redo", cb.onRedo)
	action("Clear", cb.onClear)
	tb.gridBtn = action("Grid On", cb.onToggleGrid)

	tb.SetTool(initialTool)
	tb.SetHistoryState(false, false)
	return toolbar, tb
}
