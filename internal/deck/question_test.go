package deck

import "testing"

func sampleQuestion() *Question {
	return &Question{
		ID:     "q1",
		Prompt: "Which planet is largest?",
		Choices: []string{
			"Jupiter", "Saturn", "Earth", "Mars",
		},
		Options: []Option{
			{Letter: "A", Text: "Jupiter", Correct: true, Explanation: "Largest by mass and volume."},
			{Letter: "B", Text: "Saturn", Explanation: "Second largest."},
			{Letter: "C", Text: "Earth", Explanation: "Much smaller."},
			{Letter: "D", Text: "Mars", Explanation: "Smaller than Earth."},
		},
		CorrectLetter: "A",
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Jupiter  ", "Jupiter"},
		{"Jupiter\t is  big", "Jupiter is big"},
		{"Jupiter\nis big", "Jupiter is big"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchOption(t *testing.T) {
	q := sampleQuestion()

	opt := q.MatchOption("  Saturn ")
	if opt == nil {
		t.Fatal("expected a match for padded text")
	}
	if opt.Letter != "B" {
		t.Errorf("Letter = %q, want B", opt.Letter)
	}

	if q.MatchOption("Neptune") != nil {
		t.Error("expected nil for text not present in options")
	}
}

func TestMatchOption_IndependentOfDisplayOrder(t *testing.T) {
	q := sampleQuestion()
	// Shuffle the display list; matching must still resolve by text.
	q.Choices = []string{"Mars", "Earth", "Saturn", "Jupiter"}

	opt := q.MatchOption("Jupiter")
	if opt == nil || !opt.Correct {
		t.Fatal("expected the correct option regardless of display order")
	}
}

func TestCorrectOption(t *testing.T) {
	q := sampleQuestion()
	opt := q.CorrectOption()
	if opt == nil || opt.Letter != "A" {
		t.Fatalf("CorrectOption = %+v, want letter A", opt)
	}
}

func TestParseStatus_Unrecognized(t *testing.T) {
	if got := ParseStatus("archived"); got != StatusUnknown {
		t.Errorf("ParseStatus(archived) = %q, want unknown", got)
	}
	if got := ParseStatus("ready"); got != StatusReady {
		t.Errorf("ParseStatus(ready) = %q, want ready", got)
	}
}

func TestParseProgressStatus_FailsOpen(t *testing.T) {
	if got := ParseProgressStatus("paused"); got != ProgressUnknown {
		t.Errorf("ParseProgressStatus(paused) = %q, want unknown", got)
	}
	p := &Progress{Status: ProgressUnknown}
	if p.NeedsEntryDecision() {
		t.Error("unknown status must not force an entry decision")
	}
}
