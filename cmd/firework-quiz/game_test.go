package main

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/firework-quiz/config"
	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
	"github.com/lixenwraith/firework-quiz/question"
	"github.com/lixenwraith/firework-quiz/quiz"
	"github.com/lixenwraith/firework-quiz/render"
)

// Cells are 8x20 canvas units on a 100x30 screen
const (
	testCols = 100
	testRows = 30
)

func testConfig() *config.Config {
	return &config.Config{
		Game: config.Game{TickRate: parameter.TickRate, FeedbackDuration: parameter.FeedbackDuration},
	}
}

func newTestGame(t *testing.T, bank *question.Bank) (*game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(testCols, testRows)

	return newGame(screen, testConfig(), bank, nil, rand.New(rand.NewSource(5)), zap.NewNop()), screen
}

func press(col, row int) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone)
}

func release(col, row int) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone)
}

// cellOf returns the terminal cell holding the centre of a canvas rect
func cellOf(g *game, r core.Rect) (int, int) {
	x, y := r.Center()
	return g.orchestrator.Viewport().ToCell(x, y)
}

func TestNewGameEmptyBank(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	screen.SetSize(testCols, testRows)

	obs, logs := observer.New(zapcore.ErrorLevel)
	g := newGame(screen, testConfig(), question.NewBank(nil), nil, rand.New(rand.NewSource(1)), zap.New(obs))
	if g == nil {
		t.Fatal("newGame returned nil for an empty bank")
	}
	if g.ctrl.State() != quiz.StateStart || g.ctrl.Session() != nil {
		t.Fatalf("state = %s session = %v, want un-started", g.ctrl.State(), g.ctrl.Session())
	}

	found := false
	for _, entry := range logs.All() {
		for _, f := range entry.Context {
			if err, ok := f.Interface.(error); ok && errors.Is(err, question.ErrEmptyBank) {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected ErrEmptyBank to be logged")
	}

	// The loop keeps running: clicks are ignored, ticks still draw, quit still works
	col, row := cellOf(g, g.ctrl.Layout().Start)
	if !g.handleEvent(press(col, row)) {
		t.Fatal("click requested exit")
	}
	if g.ctrl.State() != quiz.StateStart {
		t.Errorf("state = %s after click on empty bank", g.ctrl.State())
	}
	frame := g.frame
	g.tick()
	if g.frame != frame+1 {
		t.Errorf("frame = %d, want %d", g.frame, frame+1)
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != render.RGBToTcell(visual.RgbBackground) {
		t.Errorf("background = %v, want the start screen color", bg)
	}
	if g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape did not quit")
	}
}

func TestClickStartsQuiz(t *testing.T) {
	g, _ := newTestGame(t, question.NewBank(question.Fallback()))

	col, row := cellOf(g, g.ctrl.Layout().Start)
	if !g.handleEvent(press(col, row)) {
		t.Fatal("press requested exit")
	}
	if got := g.ctrl.State(); got != quiz.StateQuestion {
		t.Fatalf("state = %s, want Question", got)
	}
}

func TestClickFiresOnPressEdge(t *testing.T) {
	g, _ := newTestGame(t, question.NewBank(question.Fallback()))
	layout := g.ctrl.Layout()

	sc, sr := cellOf(g, layout.Start)
	g.handleEvent(press(sc, sr))

	// Dragging onto an answer with the button still down is not a click
	ac, ar := cellOf(g, layout.Answers[0])
	g.handleEvent(press(ac, ar))
	if got := g.ctrl.State(); got != quiz.StateQuestion {
		t.Fatalf("held drag answered: state = %s", got)
	}

	g.handleEvent(release(ac, ar))
	g.handleEvent(press(ac, ar))
	if got := g.ctrl.State(); got != quiz.StateFeedback {
		t.Fatalf("state = %s, want Feedback", got)
	}
}

func TestMotionHovers(t *testing.T) {
	g, _ := newTestGame(t, question.NewBank(question.Fallback()))
	start := g.ctrl.Layout().Start

	if g.ctrl.Hovered(start) {
		t.Fatal("hovered before any pointer event")
	}
	col, row := cellOf(g, start)
	g.handleEvent(release(col, row))
	if !g.ctrl.Hovered(start) {
		t.Error("pointer over start button not hovered")
	}
	if g.ctrl.State() != quiz.StateStart {
		t.Error("motion changed state")
	}
}

func TestQuitKeys(t *testing.T) {
	g, _ := newTestGame(t, question.NewBank(question.Fallback()))

	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := !g.handleEvent(tt.ev); got != tt.quit {
				t.Errorf("quit = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestResizeRemapsClicks(t *testing.T) {
	g, _ := newTestGame(t, question.NewBank(question.Fallback()))

	g.handleEvent(tcell.NewEventResize(50, 15))
	vp := g.orchestrator.Viewport()
	if vp.Cols != 50 || vp.Rows != 15 {
		t.Fatalf("viewport = %dx%d, want 50x15", vp.Cols, vp.Rows)
	}

	col, row := cellOf(g, g.ctrl.Layout().Start)
	g.handleEvent(press(col, row))
	if got := g.ctrl.State(); got != quiz.StateQuestion {
		t.Fatalf("state = %s after click on resized grid", got)
	}
}

func TestTickRendersAndCountsDown(t *testing.T) {
	g, screen := newTestGame(t, question.NewBank(question.Fallback()))
	layout := g.ctrl.Layout()

	sc, sr := cellOf(g, layout.Start)
	g.handleEvent(press(sc, sr))
	g.handleEvent(release(sc, sr))

	// A wrong answer spawns no fireworks over the message
	current, _ := g.ctrl.Session().Current()
	wrong := (int(current.Correct) + 1) % len(layout.Answers)
	ac, ar := cellOf(g, layout.Answers[wrong])
	g.handleEvent(press(ac, ar))

	fb, ok := g.ctrl.Feedback()
	if !ok {
		t.Fatal("no feedback after answering")
	}
	before := fb.Remaining
	frame := g.frame

	g.tick()

	fb, _ = g.ctrl.Feedback()
	if fb.Remaining != before-1 {
		t.Errorf("Remaining = %d, want %d", fb.Remaining, before-1)
	}
	if g.frame != frame+1 {
		t.Errorf("frame = %d, want %d", g.frame, frame+1)
	}

	// Feedback overlay message lands on the screen
	cols, rows := screen.Size()
	found := false
	for y := 0; y < rows && !found; y++ {
		for x := 0; x < cols; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == '答' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("feedback message not drawn")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	g, screen := newTestGame(t, question.NewBank(question.Fallback()))

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, question.NewBank(question.Fallback()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
