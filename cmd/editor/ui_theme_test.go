package main

import (
	"image/color"
	"testing"
)

func TestPaletteButtonText(t *testing.T) {
	c := editorPalette.buttonText()
	if c.Idle != editorPalette.ButtonText || c.Hover != editorPalette.ButtonText {
		t.Fatalf("idle and hover text should use ButtonText")
	}
	if c.Pressed != editorPalette.ButtonTextDown || c.Disabled != editorPalette.ButtonTextOff {
		t.Fatalf("pressed/disabled text colours not taken from the palette")
	}
	if c.Disabled == c.Idle {
		t.Fatalf("disabled buttons must look different from idle ones")
	}
}

func TestPaletteLists(t *testing.T) {
	l := editorPalette.listEntry()
	if l.SelectedBackground != editorPalette.ListSelected || l.SelectingBackground != editorPalette.ListSelecting {
		t.Fatalf("list backgrounds not taken from the palette")
	}
	if lbl := editorPalette.label(); lbl.Idle != editorPalette.Label || lbl.Disabled != editorPalette.Muted {
		t.Fatalf("label colours not taken from the palette")
	}
}

func TestWithAlpha(t *testing.T) {
	cases := []struct {
		in   color.Color
		a    float32
		want color.NRGBA
	}{
		{color.NRGBA{100, 200, 255, 255}, 0.5, color.NRGBA{100, 200, 255, 127}},
		{color.NRGBA{100, 200, 255, 255}, 1, color.NRGBA{100, 200, 255, 255}},
		{color.RGBA{255, 220, 0, 255}, 0, color.NRGBA{255, 220, 0, 0}},
	}
	for _, c := range cases {
		if got := withAlpha(c.in, c.a); got != c.want {
			t.Fatalf("withAlpha(%v, %v) = %v, want %v", c.in, c.a, got, c.want)
		}
	}
}
