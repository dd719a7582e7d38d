package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilecanvas/assets"
	"github.com/milk9111/tilecanvas/config"
	"github.com/milk9111/tilecanvas/levels"
	"github.com/milk9111/tilecanvas/scripting"
	"github.com/milk9111/tilecanvas/session"
	"github.com/milk9111/tilecanvas/tool"
	"golang.design/x/clipboard"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "Editor settings file (YAML)")
	levelName := flag.String("level", "", "Level to open: a JSON path or a bundled level name")
	scriptName := flag.String("script", "border", "Macro run by F5, from the scripts dir or bundled")
	toolName := flag.String("tool", "paint", "Initial tool: none, paint, erase, fill or line")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sess := session.New(cfg)
	if mode, err := tool.ParseMode(*toolName); err != nil {
		log.Printf("Ignoring -tool: %v", err)
	} else {
		sess.SetToolMode(mode)
	}
	log.Printf("Bundled levels: %v, macros: %v", levels.BundledNames(), scripting.BundledMacros())
	if *levelName != "" {
		if err := openLevel(sess, *levelName); err != nil {
			log.Printf("Failed to load level %s: %v", *levelName, err)
		}
	}

	registry, err := assets.Open(cfg.Paths.Assets)
	if err != nil {
		log.Fatalf("Failed to index assets: %v", err)
	}

	game := newEditorGame(sess, registry, *configPath, *scriptName)

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		game.clipboardReady = true
	}

	if w, err := config.NewWatcher(watchDirs(*configPath, cfg.Paths.Scripts)...); err != nil {
		log.Printf("Config hot reload disabled: %v", err)
	} else {
		game.watcher = w
		defer w.Close()
	}

	ebiten.SetWindowSize(1440, 900)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tile Canvas")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// openLevel prefers a file on disk and falls back to the bundled levels.
func openLevel(sess *session.Session, name string) error {
	if _, err := os.Stat(name); err == nil {
		return sess.Load(name)
	}
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}
	return sess.LoadLevel(lvl)
}

func watchDirs(configPath, scriptsDir string) []string {
	var dirs []string
	seen := map[string]bool{}
	for _, d := range []string{filepath.Dir(configPath), scriptsDir} {
		if d == "" || seen[d] {
			continue
		}
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}
