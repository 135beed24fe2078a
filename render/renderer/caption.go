package renderer

import (
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
	"github.com/lixenwraith/firework-quiz/render"
)

// CaptionRenderer draws a fixed label in the top-left corner
type CaptionRenderer struct {
	text string
}

// NewCaptionRenderer creates a caption renderer; an empty text hides it
func NewCaptionRenderer(text string) *CaptionRenderer {
	return &CaptionRenderer{text: text}
}

// IsVisible implements render.VisibilityToggle
func (r *CaptionRenderer) IsVisible() bool {
	return r.text != ""
}

func (r *CaptionRenderer) Render(ctx render.RenderContext, c render.Canvas) {
	c.Text(r.text, parameter.CaptionX, parameter.CaptionY, render.TextStyle{
		Size:  parameter.CaptionSize,
		Color: visual.RgbBlack,
		Align: render.AlignLeft,
	})
}
