package render

import (
	"fmt"

	"github.com/lixenwraith/firework-quiz/core"
)

// CommandKind identifies a recorded draw command
type CommandKind int

const (
	CmdBackground CommandKind = iota
	CmdFillRect
	CmdRoundRect
	CmdEllipse
	CmdText
	CmdTextBox
)

func (k CommandKind) String() string {
	switch k {
	case CmdBackground:
		return "background"
	case CmdFillRect:
		return "fill_rect"
	case CmdRoundRect:
		return "round_rect"
	case CmdEllipse:
		return "ellipse"
	case CmdText:
		return "text"
	case CmdTextBox:
		return "text_box"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is one captured draw call; fields not used by its kind are zero
type Command struct {
	Kind   CommandKind
	Rect   core.Rect
	X, Y   float64
	Size   float64 // Ellipse diameter
	Radius float64 // RoundRect corner radius
	Color  core.RGB
	Alpha  float64
	Stroke *Stroke
	Text   string
	Style  TextStyle
}

// Recorder is a Canvas that captures commands instead of drawing them
type Recorder struct {
	Commands []Command
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops captured commands, keeping capacity
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func (r *Recorder) Background(c core.RGB) {
	r.Commands = append(r.Commands, Command{Kind: CmdBackground, Color: c, Alpha: Opaque})
}

func (r *Recorder) FillRect(rect core.Rect, c core.RGB, alpha float64) {
	r.Commands = append(r.Commands, Command{Kind: CmdFillRect, Rect: rect, Color: c, Alpha: alpha})
}

func (r *Recorder) RoundRect(rect core.Rect, radius float64, fill core.RGB, alpha float64, stroke *Stroke) {
	cmd := Command{Kind: CmdRoundRect, Rect: rect, Radius: radius, Color: fill, Alpha: alpha}
	if stroke != nil {
		s := *stroke
		cmd.Stroke = &s
	}
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) Ellipse(x, y, diameter float64, c core.RGB, alpha float64) {
	r.Commands = append(r.Commands, Command{Kind: CmdEllipse, X: x, Y: y, Size: diameter, Color: c, Alpha: alpha})
}

func (r *Recorder) Text(s string, x, y float64, style TextStyle) {
	r.Commands = append(r.Commands, Command{Kind: CmdText, X: x, Y: y, Text: s, Style: style, Color: style.Color, Alpha: style.opacity()})
}

func (r *Recorder) TextBox(s string, box core.Rect, style TextStyle) {
	r.Commands = append(r.Commands, Command{Kind: CmdTextBox, Rect: box, Text: s, Style: style, Color: style.Color, Alpha: style.opacity()})
}

// TextWidth approximates a monospace font: one column is half the font size
func (r *Recorder) TextWidth(s string, size float64) float64 {
	return float64(widths.StringWidth(s)) * size / 2
}

// Filter returns the commands of one kind in draw order
func (r *Recorder) Filter(kind CommandKind) []Command {
	var out []Command
	for _, cmd := range r.Commands {
		if cmd.Kind == kind {
			out = append(out, cmd)
		}
	}
	return out
}

// Count returns the number of commands of one kind
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, cmd := range r.Commands {
		if cmd.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings of every text and text box command
func (r *Recorder) Texts() []string {
	var out []string
	for _, cmd := range r.Commands {
		if cmd.Kind == CmdText || cmd.Kind == CmdTextBox {
			out = append(out, cmd.Text)
		}
	}
	return out
}

// FindText returns the first text or text box command with exactly s
func (r *Recorder) FindText(s string) (Command, bool) {
	for _, cmd := range r.Commands {
		if (cmd.Kind == CmdText || cmd.Kind == CmdTextBox) && cmd.Text == s {
			return cmd, true
		}
	}
	return Command{}, false
}
