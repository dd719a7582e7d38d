package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Asset describes one tileset image. Width and Height are in texture pixels.
type Asset struct {
	ID     string
	Path   string
	Width  int
	Height int
}

// Cols is the number of whole tiles across the image.
func (a Asset) Cols(tileSize int) int {
	if tileSize <= 0 {
		return 0
	}
	return a.Width / tileSize
}

func (a Asset) Rows(tileSize int) int {
	if tileSize <= 0 {
		return 0
	}
	return a.Height / tileSize
}

type entry struct {
	asset Asset
	fsys  fs.FS
}

// Registry indexes the images found at the root of one or more file systems.
// Earlier file systems win when ids collide. Images are decoded on first use.
type Registry struct {
	entries map[string]entry

	mu     sync.Mutex
	images map[string]*ebiten.Image
}

func NewRegistry(layers ...fs.FS) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]entry),
		images:  make(map[string]*ebiten.Image),
	}
	for _, fsys := range layers {
		if err := r.scan(fsys); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) scan(fsys fs.FS) error {
	files, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("assets: scan: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !isImage(f.Name()) {
			continue
		}
		if _, ok := r.entries[f.Name()]; ok {
			continue
		}
		cfg, err := decodeConfig(fsys, f.Name())
		if err != nil {
			return err
		}
		r.entries[f.Name()] = entry{
			asset: Asset{ID: f.Name(), Path: f.Name(), Width: cfg.Width, Height: cfg.Height},
			fsys:  fsys,
		}
	}
	return nil
}

func decodeConfig(fsys fs.FS, name string) (image.Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return image.Config{}, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return cfg, nil
}

// Lookup returns the asset metadata for id.
func (r *Registry) Lookup(id string) (Asset, bool) {
	e, ok := r.entries[cleanAssetPath(id)]
	return e.asset, ok
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Decode returns the decoded image for id.
func (r *Registry) Decode(id string) (image.Image, error) {
	e, ok := r.entries[cleanAssetPath(id)]
	if !ok {
		return nil, fmt.Errorf("assets: unknown asset %q", id)
	}
	b, err := fs.ReadFile(e.fsys, e.asset.Path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", id, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", id, err)
	}
	return img, nil
}

// Image returns the ebiten image for id, decoding it once.
func (r *Registry) Image(id string) (*ebiten.Image, error) {
	id = cleanAssetPath(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	if img, ok := r.images[id]; ok {
		return img, nil
	}
	src, err := r.Decode(id)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	r.images[id] = img
	return img, nil
}
