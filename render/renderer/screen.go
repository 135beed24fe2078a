package renderer

import (
	"fmt"

	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
	"github.com/lixenwraith/firework-quiz/question"
	"github.com/lixenwraith/firework-quiz/quiz"
	"github.com/lixenwraith/firework-quiz/render"
)

const (
	subtitleFormat = "從 %d 題中隨機抽取 %d 題"
	headerFormat   = "第 %d 題 / %d 題"
	resultTitle    = "測驗結束！"
	scoreFormat    = "你的成績: %d / %d"
	optionFormat   = "%s. %s"
)

// ScreenRenderer draws the screen for the controller's current state
type ScreenRenderer struct {
	ctrl  *quiz.Controller
	title string
}

// NewScreenRenderer creates the state screen renderer; an empty title uses the default
func NewScreenRenderer(ctrl *quiz.Controller, title string) *ScreenRenderer {
	if title == "" {
		title = parameter.DefaultTitle
	}
	return &ScreenRenderer{ctrl: ctrl, title: title}
}

// Render dispatches on the controller state
func (r *ScreenRenderer) Render(ctx render.RenderContext, c render.Canvas) {
	switch r.ctrl.State() {
	case quiz.StateStart:
		r.drawStart(ctx, c)
	case quiz.StateQuestion:
		r.drawQuestion(ctx, c)
	case quiz.StateFeedback:
		r.drawFeedback(ctx, c)
	case quiz.StateResult:
		r.drawResult(ctx, c)
	}
}

func (r *ScreenRenderer) drawStart(ctx render.RenderContext, c render.Canvas) {
	c.Text(r.title, ctx.CenterX(), ctx.CenterY()+parameter.TitleOffsetY, centered(parameter.TitleSize, visual.RgbTitle))

	sampled := 0
	if s := r.ctrl.Session(); s != nil {
		sampled = s.Len()
	}
	subtitle := fmt.Sprintf(subtitleFormat, r.ctrl.BankSize(), sampled)
	c.Text(subtitle, ctx.CenterX(), ctx.CenterY()+parameter.SubtitleOffsetY, centered(parameter.SubtitleSize, visual.RgbTitle))

	r.drawButton(c, r.ctrl.Layout().Start, parameter.StartLabel)
}

func (r *ScreenRenderer) drawQuestion(ctx render.RenderContext, c render.Canvas) {
	s := r.ctrl.Session()
	if s == nil {
		return
	}
	q, ok := s.Current()
	if !ok {
		return
	}

	header := fmt.Sprintf(headerFormat, s.Index()+1, s.Len())
	c.Text(header, parameter.HeaderX, parameter.HeaderY, render.TextStyle{
		Size:  parameter.HeaderSize,
		Color: visual.RgbText,
		Align: render.AlignLeft,
	})

	box := core.Rect{
		X: parameter.HeaderX,
		Y: parameter.PromptY,
		W: ctx.Width - 2*parameter.HeaderX,
		H: parameter.PromptHeight,
	}
	c.TextBox(q.Prompt, box, render.TextStyle{
		Size:  parameter.PromptSize,
		Color: visual.RgbText,
		Align: render.AlignLeft,
	})

	layout := r.ctrl.Layout()
	for i, option := range q.Options {
		label := fmt.Sprintf(optionFormat, question.Labels[i], option)
		r.drawButton(c, layout.Answers[i], label)
	}
}

func (r *ScreenRenderer) drawFeedback(ctx render.RenderContext, c render.Canvas) {
	fb, ok := r.ctrl.Feedback()
	if !ok {
		return
	}
	full := core.Rect{W: ctx.Width, H: ctx.Height}
	c.FillRect(full, fb.Color, core.Alpha8(visual.AlphaFeedback))
	c.Text(fb.Message, ctx.CenterX(), ctx.CenterY(), centered(parameter.TitleSize, visual.RgbWhite))
}

func (r *ScreenRenderer) drawResult(ctx render.RenderContext, c render.Canvas) {
	c.Background(visual.RgbResultBackground)

	s := r.ctrl.Session()
	score, total := 0, 0
	if s != nil {
		score, total = s.Score(), s.Len()
	}
	if s == nil || !s.Perfect() {
		r.drawEncouragement(ctx, c)
	}

	c.Text(resultTitle, ctx.CenterX(), parameter.ResultTitleY, centered(parameter.ResultSize, visual.RgbText))
	c.Text(fmt.Sprintf(scoreFormat, score, total), ctx.CenterX(), parameter.ResultScoreY, centered(parameter.ScoreSize, visual.RgbText))
	c.Text(r.ctrl.Outcome(), ctx.CenterX(), parameter.ResultMessageY, centered(parameter.PromptSize, visual.RgbOutcome))

	r.drawButton(c, r.ctrl.Layout().Restart, parameter.RestartLabel)
}

// drawEncouragement tiles a faint repeated phrase behind a non-perfect result
func (r *ScreenRenderer) drawEncouragement(ctx render.RenderContext, c render.Canvas) {
	style := render.TextStyle{
		Size:  parameter.EncourageSize,
		Color: visual.RgbBlack,
		Alpha: core.Alpha8(visual.AlphaEncourage),
		Align: render.AlignLeft,
	}
	stepX := c.TextWidth(parameter.EncourageText, parameter.EncourageSize) + parameter.EncourageSpacing
	stepY := parameter.EncourageSize + parameter.EncourageSpacing
	for y := 0.0; y < ctx.Height; y += stepY {
		for x := 0.0; x < ctx.Width; x += stepX {
			c.Text(parameter.EncourageText, x, y, style)
		}
	}
}

func (r *ScreenRenderer) drawButton(c render.Canvas, region core.Rect, label string) {
	if r.ctrl.Hovered(region) {
		c.RoundRect(region, parameter.ButtonCornerRadius, visual.RgbHover, render.Opaque, &render.Stroke{Color: visual.RgbWhite})
	} else {
		c.RoundRect(region, parameter.ButtonCornerRadius, visual.RgbButton, core.Alpha8(visual.AlphaButton), nil)
	}
	x, y := region.Center()
	c.Text(label, x, y, centered(parameter.ButtonSize, visual.RgbBtnLabel))
}

func centered(size float64, color core.RGB) render.TextStyle {
	return render.TextStyle{Size: size, Color: color, Align: render.AlignCenter}
}
