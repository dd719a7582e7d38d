package scripting

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/milk9111/tilecanvas/levels"
)

// LevelModule is the import name under which macros see the canvas as it was
// when they started.
const LevelModule = "level"

// ExportLevel renders l as a tengo source module exporting one map with the
// same keys as the JSON level file, so game-side scripts can load a level
// with import instead of a JSON decoder.
func ExportLevel(l *levels.Level) []byte {
	var b bytes.Buffer
	b.WriteString("export {\n")
	fmt.Fprintf(&b, "\twidth: %d,\n\theight: %d,\n\ttile_size: %d,\n", l.Width, l.Height, l.TileSize)

	b.WriteString("\tlayers: [")
	for i, m := range l.Layers {
		sep(&b, i)
		fmt.Fprintf(&b, "\t\t{name: %s, physics: %t}", strconv.Quote(m.Name), m.Physics)
	}
	closeList(&b, len(l.Layers))
	b.WriteString(",\n")

	b.WriteString("\tplacements: [")
	for i, p := range l.Placements {
		sep(&b, i)
		scale := p.Scale
		if scale == 0 {
			scale = 1
		}
		fmt.Fprintf(&b, "\t\t{col: %d, row: %d, layer: %d, src_x: %d, src_y: %d, src_w: %d, src_h: %d, asset: %s, scale: %s}",
			p.Col, p.Row, p.Layer, p.SrcX, p.SrcY, p.SrcW, p.SrcH, strconv.Quote(p.Asset), formatFloat(scale))
	}
	closeList(&b, len(l.Placements))
	b.WriteString("\n}\n")
	return b.Bytes()
}

// tengo rejects trailing commas, so elements are joined rather than terminated.
func sep(b *bytes.Buffer, i int) {
	if i == 0 {
		b.WriteString("\n")
		return
	}
	b.WriteString(",\n")
}

func closeList(b *bytes.Buffer, n int) {
	if n > 0 {
		b.WriteString("\n\t")
	}
	b.WriteString("]")
}

// formatFloat keeps a decimal point so tengo reads the value as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if _, err := strconv.Atoi(s); err == nil {
		s += ".0"
	}
	return s
}
