package renderer

import (
	"github.com/lixenwraith/firework-quiz/particle"
	"github.com/lixenwraith/firework-quiz/render"
)

// FireworksRenderer draws live burst fragments, fading with age
type FireworksRenderer struct {
	fireworks *particle.Fireworks
}

// NewFireworksRenderer creates the fireworks renderer
func NewFireworksRenderer(fw *particle.Fireworks) *FireworksRenderer {
	return &FireworksRenderer{fireworks: fw}
}

// Render draws every fragment in its burst color at its remaining-life opacity; R is a radius
func (r *FireworksRenderer) Render(ctx render.RenderContext, c render.Canvas) {
	for _, f := range r.fireworks.Fragments() {
		alpha := f.Alpha()
		if alpha <= 0 {
			continue
		}
		c.Ellipse(f.X, f.Y, 2*f.R, f.Color, alpha)
	}
}
