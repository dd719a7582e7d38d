package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/tilecanvas/assets"
	"github.com/milk9111/tilecanvas/config"
	"github.com/milk9111/tilecanvas/levels"
	"github.com/milk9111/tilecanvas/preview"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "Editor settings file (YAML)")
	levelName := flag.String("level", "sample", "Level JSON path or bundled level name")
	outPath := flag.String("out", "", "Output PNG (default <level>.png)")
	scale := flag.Int("scale", 1, "Output scale factor")
	outline := flag.Bool("outline", false, "Outline cells on physics layers")
	list := flag.Bool("list", false, "List bundled levels and exit")
	flag.Parse()

	if *list {
		for _, name := range levels.BundledNames() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lvl, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level %s: %v", *levelName, err)
	}
	c, err := lvl.Restore()
	if err != nil {
		log.Fatalf("Invalid level %s: %v", *levelName, err)
	}

	registry, err := assets.Open(cfg.Paths.Assets)
	if err != nil {
		log.Fatalf("Failed to index assets: %v", err)
	}

	opts := preview.DefaultOptions()
	opts.Scale = *scale
	opts.OutlinePhysics = *outline
	img, err := preview.Render(c.Snapshot(), registry, opts)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	out := *outPath
	if out == "" {
		base := filepath.Base(*levelName)
		out = base[:len(base)-len(filepath.Ext(base))] + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("Failed to encode %s: %v", out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}
	log.Printf("Wrote %s (%dx%d)", out, img.Bounds().Dx(), img.Bounds().Dy())
}

func loadLevel(name string) (*levels.Level, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.LoadFile(name)
	}
	return levels.LoadLevelFromFS(name)
}
