package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/firework-quiz/config"
	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/particle"
	"github.com/lixenwraith/firework-quiz/question"
	"github.com/lixenwraith/firework-quiz/quiz"
	"github.com/lixenwraith/firework-quiz/render"
	"github.com/lixenwraith/firework-quiz/render/renderer"
)

// game owns every piece of mutable state; only the loop goroutine touches it
type game struct {
	screen       tcell.Screen
	orchestrator *render.Orchestrator
	ctrl         *quiz.Controller
	field        *particle.Field
	fireworks    *particle.Fireworks
	log          *zap.Logger

	interval    time.Duration
	frame       int64
	buttonsHeld tcell.ButtonMask
}

// newGame wires the quiz, particle systems and renderers onto screen and samples the first session
// A bank that cannot be sampled leaves the quiz un-started: the screen still runs and clicks are ignored
func newGame(screen tcell.Screen, cfg *config.Config, bank *question.Bank, sounds quiz.Sounds, rng *rand.Rand, log *zap.Logger) *game {
	fw := particle.NewFireworks(rng)
	field := particle.NewField(rng, parameter.AmbientCount, particle.Bounds{W: parameter.CanvasWidth, H: parameter.CanvasHeight})

	ctrl := quiz.NewController(bank, fw,
		quiz.WithRand(rng),
		quiz.WithLogger(log),
		quiz.WithSounds(sounds),
		quiz.WithSettings(quiz.SettingsForRate(cfg.Game.TickRate, cfg.Game.FeedbackDuration)),
	)
	if err := ctrl.Reset(); err != nil {
		log.Error("quiz not started", zap.Error(err), zap.Int("bank", bank.Len()))
	}

	o := render.NewOrchestrator(screen, parameter.CanvasWidth, parameter.CanvasHeight)
	renderer.Register(o, renderer.Layers(ctrl, field, fw, cfg.Display.Title, cfg.Display.Caption))

	return &game{
		screen:       screen,
		orchestrator: o,
		ctrl:         ctrl,
		field:        field,
		fireworks:    fw,
		log:          log,
		interval:     parameter.TickInterval(cfg.Game.TickRate),
	}
}

// Run drives the fixed-rate loop until quit, context cancellation or screen shutdown
func (g *game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})

	eg, ctx := errgroup.WithContext(ctx)

	// Poller only forwards; the screen closes events when quit closes or the screen stops
	eg.Go(func() error {
		defer core.Recover()
		g.screen.ChannelEvents(events, quit)
		return nil
	})

	eg.Go(func() error {
		defer core.Recover()
		defer close(quit)
		return g.loop(ctx, events)
	})

	return eg.Wait()
}

func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.handleEvent(ev) {
				g.log.Info("quit requested", zap.Int64("frame", g.frame))
				return nil
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

// tick advances the game one step then draws
func (g *game) tick() {
	g.ctrl.Update()
	g.fireworks.Update()
	g.field.Update()
	g.render()
}

func (g *game) render() {
	g.frame++
	g.orchestrator.RenderFrame(render.NewRenderContext(g.frame, parameter.CanvasWidth, parameter.CanvasHeight))
}

// handleEvent applies one terminal event; false means exit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return false
			}
		}

	case *tcell.EventMouse:
		g.handleMouse(ev)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		g.orchestrator.Resize(cols, rows)
		g.log.Debug("resize", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	return true
}

// handleMouse maps the pointer to canvas space; a click fires on the press edge only
func (g *game) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := g.orchestrator.Viewport().ToLogical(col, row)
	g.ctrl.Hover(x, y)

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && g.buttonsHeld&tcell.Button1 == 0
	g.buttonsHeld = buttons
	if pressed {
		// Controller logs rejected clicks itself
		_ = g.ctrl.Click(x, y)
	}
}
