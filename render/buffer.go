package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/firework-quiz/core"
)

// widths measures runes with narrow East Asian ambiguous width regardless of locale
var widths = &runewidth.Condition{StrictEmojiNeutral: true}

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool

	// tail marks the right half of a double-width rune; it carries no rune of its own
	tail bool
}

// Tail reports whether the cell is the continuation of a wide rune to its left
func (c Cell) Tail() bool {
	return c.tail
}

// RenderBuffer is a cell compositor sized to the terminal
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(core.RGBBlack)
}

// Clear resets all cells to blank on bg using exponential copy
func (b *RenderBuffer) Clear(bg core.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions in cells
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Get returns the cell at (x, y); out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// BlendBg composites c over the cell with the given opacity
// Foreground is blended too so glyphs under a translucent fill fade with it
func (b *RenderBuffer) BlendBg(x, y int, c core.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = dst.Bg.Blend(c, alpha)
	dst.Fg = dst.Fg.Blend(c, alpha)
}

// SetRune writes a glyph whose color is blended against the cell background
// Returns the number of columns consumed (0 when the rune does not fit)
func (b *RenderBuffer) SetRune(x, y int, r rune, fg core.RGB, alpha float64, bold bool) int {
	if !b.inBounds(x, y) {
		return 0
	}
	w := widths.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if w == 2 && x+1 >= b.width {
		return 0
	}

	b.release(x, y)
	if w == 2 {
		b.release(x+1, y)
	}

	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = dst.Bg.Blend(fg, alpha)
	dst.Bold = bold
	dst.tail = false

	if w == 2 {
		next := &b.cells[idx+1]
		next.Rune = 0
		next.Fg = dst.Fg
		next.Bold = bold
		next.tail = true
	}
	return w
}

// release blanks any wide rune that overlaps (x, y) so a new glyph can take the cell
func (b *RenderBuffer) release(x, y int) {
	idx := y*b.width + x
	cell := &b.cells[idx]
	switch {
	case cell.tail:
		cell.tail = false
		cell.Rune = ' '
		if x > 0 {
			b.cells[idx-1].Rune = ' '
		}
	case widths.RuneWidth(cell.Rune) == 2 && x+1 < b.width:
		b.cells[idx+1].tail = false
		b.cells[idx+1].Rune = ' '
	}
}

// ===== OUTPUT =====

// Flush writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.tail {
				continue
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, cellStyle(cell))
		}
	}
	screen.Show()
}
