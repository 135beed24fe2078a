package quiz

import (
	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/question"
)

// Layout holds the fixed button regions for a canvas size
type Layout struct {
	Start   core.Rect
	Restart core.Rect
	Answers [4]core.Rect
}

// NewLayout centers the start/restart controls and anchors the 2x2 answer grid
func NewLayout(width, height float64) Layout {
	centerX := width/2 - parameter.ControlWidth/2
	l := Layout{
		Start: core.Rect{
			X: centerX, Y: height/2 + parameter.StartButtonOffsetY,
			W: parameter.ControlWidth, H: parameter.ControlHeight,
		},
		Restart: core.Rect{
			X: centerX, Y: height/2 + parameter.RestartButtonOffsetY,
			W: parameter.ControlWidth, H: parameter.ControlHeight,
		},
	}
	for i, label := range question.Labels {
		col, row := i%2, i/2
		l.Answers[label] = core.Rect{
			X: parameter.AnswerOriginX + float64(col)*(parameter.AnswerWidth+parameter.AnswerGap),
			Y: parameter.AnswerOriginY + float64(row)*(parameter.AnswerHeight+parameter.AnswerGap),
			W: parameter.AnswerWidth,
			H: parameter.AnswerHeight,
		}
	}
	return l
}

// Binding pairs a clickable region with the action it triggers
type Binding struct {
	Region core.Rect
	Action func() error
}

// dispatch runs the first binding containing (x, y); hit is false when nothing matched
func dispatch(bindings []Binding, x, y float64) (hit bool, err error) {
	for _, b := range bindings {
		if b.Region.Contains(x, y) {
			return true, b.Action()
		}
	}
	return false, nil
}
