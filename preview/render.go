// Package preview renders a canvas snapshot to an RGBA image without a GPU,
// for thumbnails and level exports.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/milk9111/tilecanvas/canvas"
	"golang.org/x/image/draw"
)

// ImageSource resolves tileset ids. *assets.Registry implements it.
type ImageSource interface {
	Decode(id string) (image.Image, error)
}

type Options struct {
	// Scale multiplies the output size. Values below 1 are treated as 1.
	Scale int
	// Background fills the canvas before tiles are drawn.
	Background color.Color
	// OutlinePhysics draws an outline around cells on physics layers.
	OutlinePhysics bool
	OutlineColor   color.RGBA
	OutlineWidth   int
}

func DefaultOptions() Options {
	return Options{
		Scale:        1,
		Background:   color.RGBA{48, 48, 56, 255},
		OutlineColor: color.RGBA{255, 60, 60, 255},
		OutlineWidth: 2,
	}
}

// Render draws every placement of snap in layer order. Missing tilesets are
// an error; source rectangles outside the tileset draw nothing.
func Render(snap canvas.Snapshot, src ImageSource, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	ts := snap.TileSize * scale
	out := image.NewRGBA(image.Rect(0, 0, snap.Width*scale, snap.Height*scale))
	if opts.Background != nil {
		draw.Draw(out, out.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)
	}

	sheets := make(map[string]image.Image)
	for _, p := range snap.Placements {
		sheet, ok := sheets[p.Asset]
		if !ok {
			img, err := src.Decode(p.Asset)
			if err != nil {
				return nil, fmt.Errorf("preview: tileset %s: %w", p.Asset, err)
			}
			sheet = img
			sheets[p.Asset] = img
		}
		sr := image.Rect(p.Src.X, p.Src.Y, p.Src.X+p.Src.W, p.Src.Y+p.Src.H).Intersect(sheet.Bounds())
		if sr.Empty() {
			continue
		}
		size := int(float64(ts) * tileScale(p.Scale))
		x0, y0 := p.Cell.Col*ts, p.Cell.Row*ts
		dr := image.Rect(x0, y0, x0+size, y0+size)
		draw.NearestNeighbor.Scale(out, dr, sheet, sr, draw.Over, nil)
	}

	if opts.OutlinePhysics {
		mask := physicsMask(snap, scale)
		outline := GenerateOutline(mask, opts.OutlineWidth, opts.OutlineColor)
		draw.Draw(out, out.Bounds(), outline, image.Point{}, draw.Over)
	}
	return out, nil
}

func tileScale(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}

// physicsMask is opaque wherever a physics layer holds a tile.
func physicsMask(snap canvas.Snapshot, scale int) *image.Alpha {
	ts := snap.TileSize * scale
	mask := image.NewAlpha(image.Rect(0, 0, snap.Width*scale, snap.Height*scale))
	for _, p := range snap.Placements {
		if p.Layer < 0 || p.Layer >= len(snap.Layers) || !snap.Layers[p.Layer].Physics {
			continue
		}
		x0, y0 := p.Cell.Col*ts, p.Cell.Row*ts
		draw.Draw(mask, image.Rect(x0, y0, x0+ts, y0+ts), image.Opaque, image.Point{}, draw.Src)
	}
	return mask
}

// GenerateOutline returns an image holding outlineCol on every transparent
// pixel of src that lies within thickness pixels of an opaque one.
func GenerateOutline(src image.Image, thickness int, outlineCol color.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		_, _, _, a := src.At(x+b.Min.X, y+b.Min.Y).RGBA()
		return a != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			ymin, ymax := max(y-thickness, 0), min(y+thickness, h-1)
			xmin, xmax := max(x-thickness, 0), min(x+thickness, w-1)
			for yy := ymin; yy <= ymax && !found; yy++ {
				for xx := xmin; xx <= xmax; xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetRGBA(x, y, outlineCol)
			}
		}
	}
	return out
}
