package renderer

import (
	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
	"github.com/lixenwraith/firework-quiz/render"
)

// BackgroundRenderer clears the frame to the base color
type BackgroundRenderer struct {
	color core.RGB
}

// NewBackgroundRenderer creates the background renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{color: visual.RgbBackground}
}

// Render fills the whole canvas
func (r *BackgroundRenderer) Render(ctx render.RenderContext, c render.Canvas) {
	c.Background(r.color)
}
