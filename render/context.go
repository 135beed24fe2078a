package render

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Frame counter since process start
	Frame int64

	// Logical canvas dimensions; every draw command uses this space
	Width  float64
	Height float64
}

// NewRenderContext creates a context for one frame
func NewRenderContext(frame int64, width, height float64) RenderContext {
	return RenderContext{
		Frame:  frame,
		Width:  width,
		Height: height,
	}
}

// CenterX returns the horizontal midpoint of the canvas
func (c RenderContext) CenterX() float64 {
	return c.Width / 2
}

// CenterY returns the vertical midpoint of the canvas
func (c RenderContext) CenterY() float64 {
	return c.Height / 2
}
