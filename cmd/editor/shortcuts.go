package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilecanvas/canvas"
	"github.com/milk9111/tilecanvas/tool"
)

type shortcut int

const (
	shortcutNone shortcut = iota
	shortcutUndo
	shortcutRedo
	shortcutPaint
	shortcutErase
	shortcutFill
	shortcutLine
	shortcutNewProject
	shortcutSave
	shortcutExportScript
	shortcutCopy
	shortcutPaste
	shortcutRunScript
	shortcutTogglePhysics
	shortcutToggleHighlight
	shortcutToggleGrid
	shortcutPrevLayer
	shortcutNextLayer
	shortcutShrinkWidth
	shortcutGrowWidth
	shortcutShrinkHeight
	shortcutGrowHeight
)

// shortcutKeys are the keys polled for shortcuts each frame.
var shortcutKeys = []ebiten.Key{
	ebiten.KeyZ, ebiten.KeyY, ebiten.KeyB, ebiten.KeyE, ebiten.KeyF, ebiten.KeyL,
	ebiten.KeyN, ebiten.KeyS, ebiten.KeyC, ebiten.KeyV, ebiten.KeyF5,
	ebiten.KeyP, ebiten.KeyH, ebiten.KeyG, ebiten.KeyQ,
	ebiten.KeyBracketLeft, ebiten.KeyBracketRight,
}

func resolveShortcut(key ebiten.Key, ctrl, shift bool) shortcut {
	if ctrl {
		switch key {
		case ebiten.KeyZ:
			if shift {
				return shortcutRedo
			}
			return shortcutUndo
		case ebiten.KeyY:
			return shortcutRedo
		case ebiten.KeyB:
			return shortcutPaint
		case ebiten.KeyE:
			return shortcutErase
		case ebiten.KeyF:
			return shortcutFill
		case ebiten.KeyL:
			return shortcutLine
		case ebiten.KeyN:
			return shortcutNewProject
		case ebiten.KeyS:
			if shift {
				return shortcutExportScript
			}
			return shortcutSave
		case ebiten.KeyC:
			return shortcutCopy
		case ebiten.KeyV:
			return shortcutPaste
		}
		return shortcutNone
	}

	switch key {
	case ebiten.KeyF5:
		return shortcutRunScript
	case ebiten.KeyP:
		return shortcutTogglePhysics
	case ebiten.KeyH:
		return shortcutToggleHighlight
	case ebiten.KeyG:
		return shortcutToggleGrid
	case ebiten.KeyQ:
		return shortcutPrevLayer
	case ebiten.KeyE:
		return shortcutNextLayer
	case ebiten.KeyBracketLeft:
		if shift {
			return shortcutShrinkHeight
		}
		return shortcutShrinkWidth
	case ebiten.KeyBracketRight:
		if shift {
			return shortcutGrowHeight
		}
		return shortcutGrowWidth
	}
	return shortcutNone
}

// cursorLabel names the hovered cell and its snapped pixel position.
func cursorLabel(cell canvas.Cell, tileSize int) string {
	return fmt.Sprintf("Grid: %d, %d (%d, %d px)", cell.Col, cell.Row, cell.Col*tileSize, cell.Row*tileSize)
}

// modeFor maps the tool shortcuts onto tool modes.
func modeFor(s shortcut) (tool.Mode, bool) {
	switch s {
	case shortcutPaint:
		return tool.Paint, true
	case shortcutErase:
		return tool.Erase, true
	case shortcutFill:
		return tool.Fill, true
	case shortcutLine:
		return tool.Line, true
	}
	return tool.None, false
}

// cycleLayer steps idx by delta and wraps around n layers.
func cycleLayer(idx, delta, n int) int {
	if n <= 0 {
		return 0
	}
	idx = (idx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}
