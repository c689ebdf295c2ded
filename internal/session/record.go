package session

// AnswerRecord is the local source of truth for one answered question.
// It is written synchronously at submit time and never touched by the
// background sync, so a failed or slow sync can't change what the player
// already saw.
type AnswerRecord struct {
	QuestionID     string
	SelectedText   string
	SelectedLetter string
	Correct        bool
	CorrectLetter  string
	Explanation    string
	ElapsedMs      int
	ExplainAll     bool
}

// Seconds returns the answering time in whole seconds.
func (r *AnswerRecord) Seconds() int {
	return r.ElapsedMs / 1000
}
