package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter"
	"github.com/lixenwraith/firework-quiz/question"
)

// Effects receives firework bursts in canvas coordinates
type Effects interface {
	Burst(x, y float64)
	Clear()
}

// Sounds plays audio cues for game events; implementations must not block
type Sounds interface {
	PlayCorrect()
	PlayWrong()
	PlayFanfare()
}

type noSounds struct{}

func (noSounds) PlayCorrect() {}
func (noSounds) PlayWrong()   {}
func (noSounds) PlayFanfare() {}

// Settings tunes the controller; zero values are replaced by defaults
type Settings struct {
	Width, Height       float64
	SessionSize         int
	FeedbackTicks       int
	CelebrationInterval int
}

// DefaultSettings returns the 800x600, 60 Hz configuration
func DefaultSettings() Settings {
	return Settings{
		Width:               parameter.CanvasWidth,
		Height:              parameter.CanvasHeight,
		SessionSize:         parameter.SessionSize,
		FeedbackTicks:       parameter.DurationToTicks(parameter.FeedbackDuration, parameter.TickRate),
		CelebrationInterval: parameter.CelebrationInterval,
	}
}

// SettingsForRate converts the feedback duration at a given tick rate
func SettingsForRate(rate int, feedback time.Duration) Settings {
	s := DefaultSettings()
	s.FeedbackTicks = parameter.DurationToTicks(feedback, rate)
	return s
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Width <= 0 || s.Height <= 0 {
		s.Width, s.Height = d.Width, d.Height
	}
	if s.SessionSize <= 0 {
		s.SessionSize = d.SessionSize
	}
	if s.FeedbackTicks <= 0 {
		s.FeedbackTicks = d.FeedbackTicks
	}
	if s.CelebrationInterval <= 0 {
		s.CelebrationInterval = d.CelebrationInterval
	}
	return s
}

// Option configures a Controller
type Option func(*Controller)

// WithRand injects the random source used for sampling and burst placement
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithSounds sets the audio sink
func WithSounds(s Sounds) Option {
	return func(c *Controller) { c.sounds = s }
}

// WithSettings overrides canvas size and timing
func WithSettings(s Settings) Option {
	return func(c *Controller) { c.settings = s }
}

// Controller is the quiz state machine. It is not safe for concurrent use:
// Update, Click and Hover must all be called from the game loop goroutine
type Controller struct {
	bank     *question.Bank
	effects  Effects
	sounds   Sounds
	rng      *rand.Rand
	log      *zap.Logger
	settings Settings
	layout   Layout

	state       State
	session     *Session
	feedback    *Feedback
	resultTicks int

	bindings map[State][]Binding

	pointerX, pointerY float64
	pointerSeen        bool
}

// NewController builds a controller in StateStart; call Reset to sample the first session
func NewController(bank *question.Bank, effects Effects, opts ...Option) *Controller {
	c := &Controller{
		bank:     bank,
		effects:  effects,
		sounds:   noSounds{},
		settings: DefaultSettings(),
		state:    StateStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.sounds == nil {
		c.sounds = noSounds{}
	}
	c.settings = c.settings.withDefaults()
	c.layout = NewLayout(c.settings.Width, c.settings.Height)
	c.bindings = c.buildBindings()
	return c
}

func (c *Controller) buildBindings() map[State][]Binding {
	answers := make([]Binding, 0, len(question.Labels))
	for _, label := range question.Labels {
		answers = append(answers, Binding{
			Region: c.layout.Answers[label],
			Action: func() error { return c.Answer(label) },
		})
	}
	return map[State][]Binding{
		StateStart: {
			{Region: c.layout.Start, Action: func() error { return c.transition(StateQuestion) }},
		},
		StateQuestion: answers,
		StateResult: {
			{Region: c.layout.Restart, Action: func() error { return c.transition(StateStart) }},
		},
	}
}

// Reset discards the current session and samples a new one in StateStart
// On an empty bank the controller stays un-started and the error is returned
func (c *Controller) Reset() error {
	c.state = StateStart
	return c.enter(StateStart)
}

// Click dispatches a pointer press at canvas coordinates against the current state's bindings
func (c *Controller) Click(x, y float64) error {
	if c.session == nil {
		c.log.Error("click ignored", zap.Error(ErrNoSession), zap.Stringer("state", c.state))
		return ErrNoSession
	}
	_, err := dispatch(c.bindings[c.state], x, y)
	if err != nil {
		c.log.Error("click handling failed", zap.Error(err), zap.Stringer("state", c.state))
	}
	return err
}

// Hover records the latest pointer position for button highlighting
func (c *Controller) Hover(x, y float64) {
	c.pointerX, c.pointerY = x, y
	c.pointerSeen = true
}

// Hovered reports whether the pointer is over the region
func (c *Controller) Hovered(region core.Rect) bool {
	return c.pointerSeen && region.Contains(c.pointerX, c.pointerY)
}

// Answer submits a label for the current question
func (c *Controller) Answer(label question.Label) error {
	if c.state != StateQuestion {
		return fmt.Errorf("%w: answer in %s", ErrInvalidTransition, c.state)
	}
	if !label.Valid() {
		return fmt.Errorf("answer: %w: %s", question.ErrInvalidLabel, label)
	}
	if c.session == nil {
		return ErrNoSession
	}
	current, ok := c.session.Current()
	if !ok {
		return ErrSessionComplete
	}

	correct := current.IsCorrect(label)
	if correct {
		c.session.score++
		c.spawn(parameter.AnswerBursts,
			parameter.BurstMarginX, c.settings.Width-parameter.BurstMarginX,
			parameter.AnswerBurstMarginY, c.settings.Height-parameter.AnswerBurstMarginY)
		c.sounds.PlayCorrect()
	} else {
		c.sounds.PlayWrong()
	}
	c.feedback = newFeedback(correct, current.Correct, c.settings.FeedbackTicks)

	c.log.Debug("answer submitted",
		zap.Int("index", c.session.index),
		zap.Stringer("selected", label),
		zap.Stringer("correct", current.Correct),
		zap.Int("score", c.session.score))

	return c.transition(StateFeedback)
}

// Update advances one tick: the feedback countdown and the perfect-score celebration
func (c *Controller) Update() {
	switch c.state {
	case StateFeedback:
		if c.feedback == nil {
			return
		}
		c.feedback.Remaining--
		if c.feedback.Remaining <= 0 {
			c.advance()
		}
	case StateResult:
		c.resultTicks++
		if c.session != nil && c.session.Perfect() && c.resultTicks%c.settings.CelebrationInterval == 0 {
			c.spawn(parameter.CelebrationBursts, 0, c.settings.Width, 0, c.settings.Height/2)
		}
	}
}

// advance moves past the answered question, ending in StateResult after the last one
func (c *Controller) advance() {
	c.session.index++
	c.feedback = nil

	next := StateQuestion
	if c.session.Done() {
		next = StateResult
	}
	if err := c.transition(next); err != nil {
		c.log.Error("advance failed", zap.Error(err))
	}
}

// transition validates and applies a state change, then runs the target's entry action
func (c *Controller) transition(to State) error {
	if !CanTransition(c.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.state, to)
	}
	c.log.Debug("state transition", zap.Stringer("from", c.state), zap.Stringer("to", to))
	c.state = to
	return c.enter(to)
}

func (c *Controller) enter(s State) error {
	switch s {
	case StateStart:
		return c.startSession()
	case StateResult:
		c.enterResult()
	}
	return nil
}

func (c *Controller) startSession() error {
	c.effects.Clear()
	c.feedback = nil
	c.resultTicks = 0

	questions, err := c.bank.Sample(c.rng, c.settings.SessionSize)
	if err != nil {
		c.session = nil
		c.log.Error("cannot start session", zap.Error(err))
		return fmt.Errorf("start session: %w", err)
	}
	c.session = newSession(questions)
	c.log.Info("session started", zap.Int("questions", len(questions)), zap.Int("bank", c.bank.Len()))
	return nil
}

func (c *Controller) enterResult() {
	c.resultTicks = 0
	perfect := c.session.Perfect()
	if perfect {
		c.spawn(parameter.PerfectEntryBursts,
			parameter.BurstMarginX, c.settings.Width-parameter.BurstMarginX,
			parameter.EntryBurstTop, c.settings.Height/2)
		c.sounds.PlayFanfare()
	}
	c.log.Info("session finished",
		zap.Int("score", c.session.score),
		zap.Int("total", c.session.Len()),
		zap.Bool("perfect", perfect))
}

// spawn places n bursts uniformly in [x0, x1) x [y0, y1)
func (c *Controller) spawn(n int, x0, x1, y0, y1 float64) {
	for i := 0; i < n; i++ {
		x := x0 + c.rng.Float64()*(x1-x0)
		y := y0 + c.rng.Float64()*(y1-y0)
		c.effects.Burst(x, y)
	}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Session returns the active session, nil when un-started
func (c *Controller) Session() *Session {
	return c.session
}

// Feedback returns the live verdict while in StateFeedback
func (c *Controller) Feedback() (Feedback, bool) {
	if c.feedback == nil {
		return Feedback{}, false
	}
	return *c.feedback, true
}

// Outcome returns the result-screen message for the current session
func (c *Controller) Outcome() string {
	if c.session == nil {
		return ""
	}
	return OutcomeMessage(c.session.score, c.session.Len())
}

// Layout returns the button regions
func (c *Controller) Layout() Layout {
	return c.layout
}

// Settings returns the effective settings
func (c *Controller) Settings() Settings {
	return c.settings
}

// BankSize returns the number of records available for sampling
func (c *Controller) BankSize() int {
	return c.bank.Len()
}
