package deck

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Letters are the valid option letters, in display order.
var Letters = []string{"A", "B", "C", "D", "E"}

// Option is one answer choice with its grading metadata.
type Option struct {
	Letter      string
	Text        string
	Correct     bool
	Explanation string
}

// SourceRef attributes a question to its origin document.
type SourceRef struct {
	DocumentID string
	Title      string
	Pages      []int
}

// PriorAnswer is a previously submitted answer carried inline on review
// question lists.
type PriorAnswer struct {
	Letter     string
	Text       string
	Correct    bool
	ElapsedSec int
}

// Question is a single multiple-choice question. Immutable once loaded into
// a session; owned by the repository, referenced by the engine.
type Question struct {
	ID            string
	Prompt        string
	Choices       []string // display texts, in presentation order
	Options       []Option // enriched metadata, keyed by letter not position
	CorrectLetter string
	Source        *SourceRef

	// Prior is non-nil only on questions returned by a review-scope query.
	Prior *PriorAnswer
}

// MatchOption resolves a selected display text to its enriched option.
// Matching is by normalized text rather than array position, so grading is
// independent of display ordering. Returns nil when no option matches.
func (q *Question) MatchOption(selected string) *Option {
	want := NormalizeText(selected)
	for i := range q.Options {
		if NormalizeText(q.Options[i].Text) == want {
			return &q.Options[i]
		}
	}
	return nil
}

// OptionByLetter returns the option with the given letter, or nil.
func (q *Question) OptionByLetter(letter string) *Option {
	for i := range q.Options {
		if q.Options[i].Letter == letter {
			return &q.Options[i]
		}
	}
	return nil
}

// CorrectOption returns the option flagged correct, or nil if the payload
// violated the answer-key invariant.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].Correct {
			return &q.Options[i]
		}
	}
	return nil
}

// NormalizeText canonicalizes a display string for comparison: NFC form,
// leading/trailing space trimmed, internal whitespace runs collapsed to a
// single space.
func NormalizeText(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
