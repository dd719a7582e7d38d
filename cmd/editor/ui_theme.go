package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// palette is every colour the editor draws with, widgets and canvas alike.
type palette struct {
	Panel   color.Color
	Toolbar color.Color
	Label   color.Color
	Muted   color.Color

	ButtonIdle     color.Color
	ButtonHover    color.Color
	ButtonPressed  color.Color
	ButtonDisabled color.Color
	ButtonText     color.Color
	ButtonTextDown color.Color
	ButtonTextOff  color.Color

	ListBackground color.Color
	ListSelected   color.Color
	ListSelecting  color.Color

	Background     color.Color
	Canvas         color.Color
	Grid           color.Color
	Hover          color.Color
	PhysicsOverlay color.Color
	LinePreview    color.Color
	TileSelection  color.Color
}

var editorPalette = palette{
	Panel:   color.RGBA{40, 40, 40, 255},
	Toolbar: color.RGBA{220, 220, 240, 255},
	Label:   color.White,
	Muted:   color.Gray{Y: 140},

	ButtonIdle:     color.RGBA{180, 180, 180, 255},
	ButtonHover:    color.RGBA{200, 200, 200, 255},
	ButtonPressed:  color.RGBA{160, 160, 160, 255},
	ButtonDisabled: color.RGBA{120, 120, 120, 255},
	ButtonText:     color.Black,
	ButtonTextDown: color.RGBA{0, 0, 200, 255},
	ButtonTextOff:  color.Gray{Y: 80},

	ListBackground: color.RGBA{220, 220, 220, 255},
	ListSelected:   color.RGBA{180, 200, 255, 255},
	ListSelecting:  color.RGBA{200, 220, 255, 255},

	Background:     color.RGBA{24, 24, 28, 255},
	Canvas:         color.RGBA{48, 48, 56, 255},
	Grid:           color.RGBA{80, 80, 92, 255},
	Hover:          color.NRGBA{255, 255, 255, 90},
	PhysicsOverlay: color.NRGBA{255, 80, 80, 120},
	LinePreview:    color.NRGBA{100, 200, 255, 255},
	TileSelection:  color.RGBA{255, 220, 0, 255},
}

// withAlpha scales c's opacity by a in [0, 1].
func withAlpha(c color.Color, a float32) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * a)
	return n
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func (p palette) buttonText() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     p.ButtonText,
		Hover:    p.ButtonText,
		Pressed:  p.ButtonTextDown,
		Disabled: p.ButtonTextOff,
	}
}

func (p palette) label() *widget.LabelColor {
	return &widget.LabelColor{Idle: p.Label, Disabled: p.Muted}
}

func (p palette) listEntry() *widget.ListEntryColor {
	return &widget.ListEntryColor{
		Unselected:          p.ButtonText,
		Selected:            p.ButtonTextDown,
		DisabledUnselected:  p.Muted,
		DisabledSelected:    p.ButtonTextOff,
		SelectingBackground: p.ListSelecting,
		SelectedBackground:  p.ListSelected,
	}
}

func (p palette) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     solidNineSlice(p.ButtonIdle),
		Hover:    solidNineSlice(p.ButtonHover),
		Pressed:  solidNineSlice(p.ButtonPressed),
		Disabled: solidNineSlice(p.ButtonDisabled),
	}
}

func newEditorTheme(fontFace *text.Face, p palette) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace:  fontFace,
			EntryColor: p.listEntry(),
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(p.ListBackground),
				Mask: solidNineSlice(p.ListBackground),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(p.Panel),
		},
		ButtonTheme: &widget.ButtonParams{
			Image:     p.buttonImage(),
			TextFace:  fontFace,
			TextColor: p.buttonText(),
		},
	}
}
