package renderer

import (
	"github.com/lixenwraith/firework-quiz/parameter/visual"
	"github.com/lixenwraith/firework-quiz/particle"
	"github.com/lixenwraith/firework-quiz/render"
)

// AmbientRenderer draws the drifting background particles
type AmbientRenderer struct {
	field *particle.Field
}

// NewAmbientRenderer creates the ambient particle renderer
func NewAmbientRenderer(field *particle.Field) *AmbientRenderer {
	return &AmbientRenderer{field: field}
}

// Render draws each particle as a translucent white dot
func (r *AmbientRenderer) Render(ctx render.RenderContext, c render.Canvas) {
	for _, p := range r.field.Particles() {
		c.Ellipse(p.X, p.Y, p.R, visual.RgbAmbient, p.Alpha)
	}
}
