package tool

import (
	"fmt"
	"strings"
)

// Mode is the active edit behaviour.
type Mode int

const (
	None Mode = iota
	Paint
	Erase
	Fill
	Line
)

func (m Mode) String() string {
	switch m {
	case None:
		return "None"
	case Paint:
		return "Paint"
	case Erase:
		return "Erase"
	case Fill:
		return "Fill"
	case Line:
		return "Line"
	default:
		return "Unknown"
	}
}

// Modes lists the selectable modes in toolbar order.
func Modes() []Mode {
	return []Mode{Paint, Erase, Fill, Line}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "paint", "brush":
		return Paint, nil
	case "erase", "eraser":
		return Erase, nil
	case "fill":
		return Fill, nil
	case "line":
		return Line, nil
	}
	return None, fmt.Errorf("tool: unknown mode %q", s)
}
