package explain

import (
	"testing"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/session"
)

func answeredQuestion() (*deck.Question, *session.AnswerRecord) {
	q := &deck.Question{
		ID:     "q1",
		Prompt: "Which gas do plants absorb?",
		Options: []deck.Option{
			{Letter: "A", Text: "Oxygen", Explanation: "Oxygen is released, not absorbed."},
			{Letter: "B", Text: "Carbon dioxide", Correct: true, Explanation: "Used in photosynthesis."},
			{Letter: "C", Text: "Nitrogen", Explanation: "Taken from soil, not air, by most plants."},
		},
		CorrectLetter: "B",
	}
	rec := &session.AnswerRecord{
		QuestionID:     "q1",
		SelectedLetter: "A",
		SelectedText:   "Oxygen",
		Correct:        false,
		CorrectLetter:  "B",
	}
	return q, rec
}

func TestStateFor(t *testing.T) {
	q, rec := answeredQuestion()

	tests := []struct {
		letter string
		want   OptionState
	}{
		{"A", StateWrong},   // the user's incorrect pick
		{"B", StateCorrect}, // the answer key
		{"C", StateIdle},
	}
	for _, tt := range tests {
		opt := q.OptionByLetter(tt.letter)
		if got := StateFor(opt, rec); got != tt.want {
			t.Errorf("StateFor(%s) = %d, want %d", tt.letter, got, tt.want)
		}
	}
}

func TestStateFor_CorrectSelection(t *testing.T) {
	q, _ := answeredQuestion()
	rec := &session.AnswerRecord{
		SelectedLetter: "B",
		Correct:        true,
		CorrectLetter:  "B",
	}
	if got := StateFor(q.OptionByLetter("B"), rec); got != StateCorrect {
		t.Errorf("selected correct option state = %d, want StateCorrect", got)
	}
	if got := StateFor(q.OptionByLetter("A"), rec); got != StateIdle {
		t.Errorf("unselected option state = %d, want StateIdle", got)
	}
}

func TestStateFor_Unanswered(t *testing.T) {
	q, _ := answeredQuestion()
	if got := StateFor(q.OptionByLetter("B"), nil); got != StateIdle {
		t.Errorf("unanswered state = %d, want StateIdle", got)
	}
}

func TestBuild_DefaultScope_WrongSelection(t *testing.T) {
	q, rec := answeredQuestion()

	exps := Build(q, rec, false)
	if len(exps) != 2 {
		t.Fatalf("got %d explanations, want 2 (selected + correct)", len(exps))
	}
	if exps[0].Letter != "A" || exps[0].Verdict != WhyWrong {
		t.Errorf("first = %+v, want A/why-wrong", exps[0])
	}
	if exps[1].Letter != "B" || exps[1].Verdict != WhyCorrect {
		t.Errorf("second = %+v, want B/why-correct", exps[1])
	}
}

func TestBuild_DefaultScope_CorrectSelection(t *testing.T) {
	q, _ := answeredQuestion()
	rec := &session.AnswerRecord{
		SelectedLetter: "B",
		Correct:        true,
		CorrectLetter:  "B",
	}
	exps := Build(q, rec, false)
	if len(exps) != 1 {
		t.Fatalf("got %d explanations, want 1", len(exps))
	}
	if exps[0].Letter != "B" || exps[0].Verdict != WhyCorrect {
		t.Errorf("got %+v, want B/why-correct", exps[0])
	}
}

func TestBuild_ExplainAll(t *testing.T) {
	q, rec := answeredQuestion()

	exps := Build(q, rec, true)
	if len(exps) != len(q.Options) {
		t.Fatalf("got %d explanations, want one per option", len(exps))
	}

	whyCorrect := 0
	for _, e := range exps {
		if e.Verdict == WhyCorrect {
			whyCorrect++
			if e.Letter != "B" {
				t.Errorf("why-correct on letter %s, want B", e.Letter)
			}
		}
	}
	if whyCorrect != 1 {
		t.Errorf("%d why-correct verdicts, want exactly 1", whyCorrect)
	}
}

func TestBuild_Unanswered(t *testing.T) {
	q, _ := answeredQuestion()
	if got := Build(q, nil, true); got != nil {
		t.Errorf("Build with nil record = %v, want nil", got)
	}
}

func TestStripEcho(t *testing.T) {
	tests := []struct {
		name        string
		option      string
		explanation string
		want        string
	}{
		{"plain echo", "Oxygen", "Oxygen: released during photosynthesis.", "released during photosynthesis."},
		{"case differs", "oxygen", "Oxygen — released, not absorbed.", "released, not absorbed."},
		{"no echo", "Oxygen", "Plants release this gas.", "Plants release this gas."},
		{"echo only", "Oxygen", "Oxygen", ""},
		{"empty option", "", "Some text.", "Some text."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripEcho(tt.option, tt.explanation); got != tt.want {
				t.Errorf("stripEcho = %q, want %q", got, tt.want)
			}
		})
	}
}
