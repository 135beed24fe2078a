package render

import "github.com/lixenwraith/firework-quiz/core"

// Align selects the horizontal anchor of a text command
type Align int

const (
	AlignLeft   Align = iota // x is the left edge, y the top edge
	AlignCenter              // x and y are the text midpoint
)

// Opaque is the alpha for fully covering draws
const Opaque = 1.0

// TextStyle carries size, color and anchoring for text commands
// Alpha <= 0 is treated as opaque
type TextStyle struct {
	Size  float64
	Color core.RGB
	Alpha float64
	Align Align
}

func (s TextStyle) opacity() float64 {
	if s.Alpha <= 0 || s.Alpha > 1 {
		return Opaque
	}
	return s.Alpha
}

// Stroke outlines a shape
type Stroke struct {
	Color core.RGB
}

// Canvas is the draw-command surface in logical canvas coordinates
// Implementations: Recorder (tests) and BufferCanvas (terminal cells)
type Canvas interface {
	Background(c core.RGB)
	FillRect(r core.Rect, c core.RGB, alpha float64)
	RoundRect(r core.Rect, radius float64, fill core.RGB, alpha float64, stroke *Stroke)
	// Ellipse draws a filled circle of the given diameter centered at (x, y)
	Ellipse(x, y, diameter float64, c core.RGB, alpha float64)
	Text(s string, x, y float64, style TextStyle)
	// TextBox wraps s inside box, starting at its top edge
	TextBox(s string, box core.Rect, style TextStyle)
	TextWidth(s string, size float64) float64
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
