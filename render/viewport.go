package render

import (
	"math"

	"github.com/lixenwraith/firework-quiz/core"
)

// Viewport maps the logical canvas onto a terminal cell grid and back
// A cell belongs to a shape when the cell's center lies inside it
type Viewport struct {
	Cols, Rows    int
	Width, Height float64 // Logical canvas size
}

// NewViewport creates a viewport; grids smaller than 1x1 are clamped
func NewViewport(cols, rows int, width, height float64) Viewport {
	return Viewport{
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		Width:  width,
		Height: height,
	}
}

// CellSize returns the logical extent of one cell
func (v Viewport) CellSize() (float64, float64) {
	return v.Width / float64(v.Cols), v.Height / float64(v.Rows)
}

// ToCell returns the cell containing logical point (x, y), unclamped
func (v Viewport) ToCell(x, y float64) (int, int) {
	cw, ch := v.CellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// ToLogical returns the logical center of a cell; used to map mouse events back to the canvas
func (v Viewport) ToLogical(col, row int) (float64, float64) {
	cw, ch := v.CellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

// CellRange returns the half-open cell span [c0, c1) x [r0, r1) whose centers lie in r, clipped to the grid
func (v Viewport) CellRange(r core.Rect) (c0, r0, c1, r1 int) {
	cw, ch := v.CellSize()
	c0 = clampInt(int(math.Ceil(r.X/cw-0.5)), 0, v.Cols)
	c1 = clampInt(int(math.Ceil((r.X+r.W)/cw-0.5)), 0, v.Cols)
	r0 = clampInt(int(math.Ceil(r.Y/ch-0.5)), 0, v.Rows)
	r1 = clampInt(int(math.Ceil((r.Y+r.H)/ch-0.5)), 0, v.Rows)
	return c0, r0, c1, r1
}

// Contains reports whether the cell is on the grid
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
