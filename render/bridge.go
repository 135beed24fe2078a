package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/firework-quiz/core"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB, mapping ColorDefault to black
func TcellToRGB(c tcell.Color) core.RGB {
	if c == tcell.ColorDefault {
		return core.RGBBlack
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// cellStyle builds the tcell style for a composited cell
func cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(RGBToTcell(c.Fg)).
		Background(RGBToTcell(c.Bg)).
		Bold(c.Bold)
}
