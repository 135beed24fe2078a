package render

import (
	"math"
	"strings"

	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
)

// Glyphs for shapes smaller than a cell, by diameter relative to cell width
var dotGlyphs = [...]struct {
	limit float64
	glyph rune
}{
	{0.35, '·'},
	{0.7, '•'},
	{math.Inf(1), '●'},
}

// Rounded border glyphs
const (
	borderH  = '─'
	borderV  = '│'
	cornerTL = '╭'
	cornerTR = '╮'
	cornerBL = '╰'
	cornerBR = '╯'
)

// BufferCanvas rasterizes canvas commands onto a RenderBuffer through a Viewport
type BufferCanvas struct {
	buf *RenderBuffer
	vp  Viewport
}

// NewBufferCanvas binds a buffer to a viewport
func NewBufferCanvas(buf *RenderBuffer, vp Viewport) *BufferCanvas {
	return &BufferCanvas{buf: buf, vp: vp}
}

// SetViewport replaces the mapping after a resize
func (c *BufferCanvas) SetViewport(vp Viewport) {
	c.vp = vp
}

// Viewport returns the active mapping
func (c *BufferCanvas) Viewport() Viewport {
	return c.vp
}

func (c *BufferCanvas) Background(color core.RGB) {
	c.buf.Clear(color)
}

func (c *BufferCanvas) FillRect(r core.Rect, color core.RGB, alpha float64) {
	c0, r0, c1, r1 := c.vp.CellRange(r)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			c.buf.BlendBg(x, y, color, alpha)
		}
	}
}

func (c *BufferCanvas) RoundRect(r core.Rect, radius float64, fill core.RGB, alpha float64, stroke *Stroke) {
	c0, r0, c1, r1 := c.vp.CellRange(r)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			px, py := c.vp.ToLogical(x, y)
			if insideRounded(r, radius, px, py) {
				c.buf.BlendBg(x, y, fill, alpha)
			}
		}
	}

	if stroke == nil || c1-c0 < 2 || r1-r0 < 2 {
		return
	}
	last, bottom := c1-1, r1-1
	for x := c0 + 1; x < last; x++ {
		c.buf.SetRune(x, r0, borderH, stroke.Color, Opaque, false)
		c.buf.SetRune(x, bottom, borderH, stroke.Color, Opaque, false)
	}
	for y := r0 + 1; y < bottom; y++ {
		c.buf.SetRune(c0, y, borderV, stroke.Color, Opaque, false)
		c.buf.SetRune(last, y, borderV, stroke.Color, Opaque, false)
	}
	c.buf.SetRune(c0, r0, cornerTL, stroke.Color, Opaque, false)
	c.buf.SetRune(last, r0, cornerTR, stroke.Color, Opaque, false)
	c.buf.SetRune(c0, bottom, cornerBL, stroke.Color, Opaque, false)
	c.buf.SetRune(last, bottom, cornerBR, stroke.Color, Opaque, false)
}

// Ellipse fills covered cells; a circle narrower than a cell becomes a dot glyph
func (c *BufferCanvas) Ellipse(x, y, diameter float64, color core.RGB, alpha float64) {
	cw, ch := c.vp.CellSize()
	if diameter < min(cw, ch) {
		col, row := c.vp.ToCell(x, y)
		if c.vp.Contains(col, row) {
			c.buf.SetRune(col, row, dotGlyph(diameter/cw), color, alpha, false)
		}
		return
	}

	radius := diameter / 2
	box := core.Rect{X: x - radius, Y: y - radius, W: diameter, H: diameter}
	c0, r0, c1, r1 := c.vp.CellRange(box)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			px, py := c.vp.ToLogical(col, row)
			if (px-x)*(px-x)+(py-y)*(py-y) <= radius*radius {
				c.buf.BlendBg(col, row, color, alpha)
			}
		}
	}
}

func (c *BufferCanvas) Text(s string, x, y float64, style TextStyle) {
	cw, _ := c.vp.CellSize()
	if style.Align == AlignCenter {
		x -= float64(widths.StringWidth(s)) * cw / 2
	}
	col := int(math.Round(x / cw))
	_, row := c.vp.ToCell(x, y)
	c.drawLine(s, col, row, style)
}

func (c *BufferCanvas) TextBox(s string, box core.Rect, style TextStyle) {
	cw, ch := c.vp.CellSize()
	cols := max(int(box.W/cw), 1)
	rows := max(int(box.H/ch), 1)
	left := int(math.Round(box.X / cw))
	_, top := c.vp.ToCell(box.X, box.Y)

	lines := strings.Split(widths.Wrap(s, cols), "\n")
	for i, line := range lines {
		if i >= rows {
			break
		}
		col := left
		if style.Align == AlignCenter {
			col += (cols - widths.StringWidth(line)) / 2
		}
		c.drawLine(line, col, top+i, style)
	}
}

// TextWidth returns the logical width of s; font size does not change cell width
func (c *BufferCanvas) TextWidth(s string, size float64) float64 {
	cw, _ := c.vp.CellSize()
	return float64(widths.StringWidth(s)) * cw
}

func (c *BufferCanvas) drawLine(s string, col, row int, style TextStyle) {
	bold := style.Size >= parameter.BoldTextSize
	alpha := style.opacity()
	for _, r := range s {
		w := widths.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.buf.SetRune(col, row, r, style.Color, alpha, bold)
		col += w
	}
}

// insideRounded tests a point against a rectangle with circular corners
func insideRounded(r core.Rect, radius, x, y float64) bool {
	if !r.Contains(x, y) {
		return false
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		return true
	}
	cx := min(max(x, r.X+radius), r.X+r.W-radius)
	cy := min(max(y, r.Y+radius), r.Y+r.H-radius)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func dotGlyph(ratio float64) rune {
	for _, d := range dotGlyphs {
		if ratio < d.limit {
			return d.glyph
		}
	}
	return dotGlyphs[len(dotGlyphs)-1].glyph
}
