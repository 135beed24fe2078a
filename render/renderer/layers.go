package renderer

import (
	"github.com/lixenwraith/firework-quiz/particle"
	"github.com/lixenwraith/firework-quiz/quiz"
	"github.com/lixenwraith/firework-quiz/render"
)

// Layer pairs a renderer with its draw priority
type Layer struct {
	Renderer render.SystemRenderer
	Priority render.RenderPriority
}

// Layers builds the frame composition: background, ambient, caption, state screen, fireworks
func Layers(ctrl *quiz.Controller, field *particle.Field, fw *particle.Fireworks, title, caption string) []Layer {
	return []Layer{
		{NewBackgroundRenderer(), render.PriorityBackground},
		{NewAmbientRenderer(field), render.PriorityAmbient},
		{NewCaptionRenderer(caption), render.PriorityCaption},
		{NewScreenRenderer(ctrl, title), render.PriorityScreen},
		{NewFireworksRenderer(fw), render.PriorityFireworks},
	}
}

// Register adds every layer to the orchestrator
func Register(o *render.Orchestrator, layers []Layer) {
	for _, l := range layers {
		o.Register(l.Renderer, l.Priority)
	}
}
