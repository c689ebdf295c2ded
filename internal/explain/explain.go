// Package explain turns an answer record plus its question into per-option
// display state and explanation text for review.
package explain

import (
	"strings"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/session"
)

// OptionState is how a single option should be presented once answered.
type OptionState int

const (
	StateIdle    OptionState = iota // not selected, not the answer key
	StateCorrect                    // the answer key, always highlighted
	StateWrong                      // the user's incorrect selection
)

// Verdict tags an explanation by which side of the answer key it argues.
type Verdict string

const (
	WhyCorrect Verdict = "why-correct"
	WhyWrong   Verdict = "why-wrong"
)

// Explanation is one option's explanation, ready for display.
type Explanation struct {
	Letter  string
	Verdict Verdict
	Text    string
}

// StateFor determines the display state for one option given the answer
// record. With no record every option is idle.
func StateFor(opt *deck.Option, rec *session.AnswerRecord) OptionState {
	if rec == nil {
		return StateIdle
	}
	if opt.Letter == rec.CorrectLetter {
		return StateCorrect
	}
	if opt.Letter == rec.SelectedLetter && !rec.Correct {
		return StateWrong
	}
	return StateIdle
}

// Build resolves explanation text for an answered question. With explainAll
// set, every option contributes an explanation tagged why-correct or
// why-wrong by comparison with the correct letter. Otherwise only the
// selected option is explained — plus the correct option when the selection
// was wrong. Returns nil for an unanswered question.
func Build(q *deck.Question, rec *session.AnswerRecord, explainAll bool) []Explanation {
	if rec == nil {
		return nil
	}

	if explainAll {
		out := make([]Explanation, 0, len(q.Options))
		for i := range q.Options {
			opt := &q.Options[i]
			out = append(out, explanationFor(opt, rec.CorrectLetter))
		}
		return out
	}

	var out []Explanation
	if sel := q.OptionByLetter(rec.SelectedLetter); sel != nil {
		out = append(out, explanationFor(sel, rec.CorrectLetter))
	}
	if !rec.Correct {
		if correct := q.OptionByLetter(rec.CorrectLetter); correct != nil {
			out = append(out, explanationFor(correct, rec.CorrectLetter))
		}
	}
	return out
}

func explanationFor(opt *deck.Option, correctLetter string) Explanation {
	verdict := WhyWrong
	if opt.Letter == correctLetter {
		verdict = WhyCorrect
	}
	return Explanation{
		Letter:  opt.Letter,
		Verdict: verdict,
		Text:    stripEcho(opt.Text, opt.Explanation),
	}
}

// stripEcho removes a verbatim leading echo of the option's own text from
// its explanation. Generated content tends to restate the option before
// explaining it.
func stripEcho(optionText, explanation string) string {
	e := strings.TrimSpace(explanation)
	o := strings.TrimSpace(optionText)
	if o == "" || len(e) < len(o) {
		return e
	}
	if !strings.EqualFold(e[:len(o)], o) {
		return e
	}
	rest := strings.TrimSpace(e[len(o):])
	rest = strings.TrimLeft(rest, ":;,.–—-")
	return strings.TrimSpace(rest)
}
