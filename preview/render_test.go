package preview

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/tilecanvas/assets"
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/levels"
)

type fakeSource map[string]image.Image

func (f fakeSource) Decode(id string) (image.Image, error) {
	img, ok := f[id]
	if !ok {
		return nil, errors.New("missing")
	}
	return img, nil
}

// sheet is a 2x1 tileset of 8px tiles: red then blue.
func sheet() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			c := color.RGBA{255, 0, 0, 255}
			if x >= 8 {
				c = color.RGBA{0, 0, 255, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderPlacesTiles(t *testing.T) {
	c := canvas.New(32, 16, 8)
	c.SetTile(1, 0, 0, canvas.Tile{Asset: "t.png", Src: canvas.Rect{X: 8, Y: 0, W: 8, H: 8}, Scale: 1})
	c.SetTile(3, 1, 0, canvas.Tile{Asset: "t.png", Src: canvas.Rect{X: 0, Y: 0, W: 8, H: 8}, Scale: 1})

	opts := DefaultOptions()
	opts.Scale = 2
	img, err := Render(c.Snapshot(), fakeSource{"t.png": sheet()}, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Fatalf("size = %v", img.Bounds())
	}
	if got := img.RGBAAt(20, 4); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("pixel in blue tile = %v", got)
	}
	if got := img.RGBAAt(3*16+15, 16+15); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("pixel in red tile = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != opts.Background {
		t.Fatalf("empty cell = %v, want background", got)
	}
}

func TestRenderMissingTileset(t *testing.T) {
	c := canvas.New(16, 16, 8)
	c.SetTile(0, 0, 0, canvas.Tile{Asset: "gone.png", Src: canvas.Rect{W: 8, H: 8}})
	if _, err := Render(c.Snapshot(), fakeSource{}, DefaultOptions()); err == nil {
		t.Fatalf("expected error for missing tileset")
	}
}

func TestRenderOutlinesPhysics(t *testing.T) {
	c := canvas.New(32, 32, 8)
	c.SetTile(1, 1, 1, canvas.Tile{Asset: "t.png", Src: canvas.Rect{W: 8, H: 8}, Scale: 1})
	opts := DefaultOptions()
	opts.OutlinePhysics = true
	opts.OutlineWidth = 1
	img, err := Render(c.Snapshot(), fakeSource{"t.png": sheet()}, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.RGBAAt(7, 12); got != opts.OutlineColor {
		t.Fatalf("pixel beside solid cell = %v, want outline", got)
	}
	if got := img.RGBAAt(12, 12); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("tile interior = %v", got)
	}
	if got := img.RGBAAt(0, 0); got == opts.OutlineColor {
		t.Fatalf("far pixel should not be outlined")
	}
}

func TestGenerateOutline(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 5, 5))
	src.SetAlpha(2, 2, color.Alpha{A: 255})
	out := GenerateOutline(src, 1, color.RGBA{0, 255, 0, 255})
	if out.RGBAAt(2, 2).A != 0 {
		t.Fatalf("opaque pixel should not be outlined")
	}
	for _, p := range []image.Point{{1, 1}, {2, 1}, {3, 3}} {
		if out.RGBAAt(p.X, p.Y).G != 255 {
			t.Fatalf("pixel %v should be outlined", p)
		}
	}
	if out.RGBAAt(0, 0).A != 0 {
		t.Fatalf("pixel (0,0) is out of range")
	}
}

func TestRenderBundledSample(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("sample")
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}
	c, err := lvl.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	reg, err := assets.Bundled()
	if err != nil {
		t.Fatalf("Bundled: %v", err)
	}
	img, err := Render(c.Snapshot(), reg, DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 192 {
		t.Fatalf("size = %v, want 320x192", img.Bounds())
	}
}
