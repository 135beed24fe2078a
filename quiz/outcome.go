package quiz

import (
	"fmt"

	"github.com/lixenwraith/firework-quiz/core"
	"github.com/lixenwraith/firework-quiz/parameter/visual"
	"github.com/lixenwraith/firework-quiz/question"
)

// Result messages for a five-question session, indexed by score
var fiveQuestionOutcomes = [6]string{
	"你太爛了請讀書",
	"你其實蠻爛的需要檢討",
	"有讀書但讀的不多 快去複習",
	"已經答對一半的題目了 繼續加油",
	"加油 差一題就全對了",
	"你超強",
}

// Result messages when fewer than five questions were available
const (
	OutcomePerfectShort = "你超強 (全對)"
	OutcomeZero         = "你太爛了請讀書"
	OutcomePartialShort = "繼續加油"
)

// Feedback messages
const (
	FeedbackCorrectText = "答對了！"
	feedbackWrongFormat = "答錯了... 正確答案是 %s"
)

// OutcomeMessage maps a final score to the result-screen message
// Only a five-question session has a per-score table; other sizes use three coarse buckets
func OutcomeMessage(score, total int) string {
	if total == 5 && score >= 0 && score <= 5 {
		return fiveQuestionOutcomes[score]
	}
	switch {
	case total > 0 && score == total:
		return OutcomePerfectShort
	case score == 0:
		return OutcomeZero
	default:
		return OutcomePartialShort
	}
}

// Feedback is the transient verdict shown between questions
type Feedback struct {
	Correct   bool
	Message   string
	Color     core.RGB
	Remaining int // ticks until the overlay closes
}

func newFeedback(correct bool, answer question.Label, ticks int) *Feedback {
	if correct {
		return &Feedback{
			Correct:   true,
			Message:   FeedbackCorrectText,
			Color:     visual.RgbCorrect,
			Remaining: ticks,
		}
	}
	return &Feedback{
		Message:   fmt.Sprintf(feedbackWrongFormat, answer),
		Color:     visual.RgbWrong,
		Remaining: ticks,
	}
}
