package deck

// ProgressStatus is the server-reported attempt status for a deck.
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not-started"
	ProgressInProgress ProgressStatus = "in-progress"
	ProgressCompleted  ProgressStatus = "completed"
	ProgressUnknown    ProgressStatus = "unknown"
)

// ParseProgressStatus maps a server string to a ProgressStatus. An
// unrecognized value maps to ProgressUnknown; callers treat that as
// "proceed without a decision prompt".
func ParseProgressStatus(s string) ProgressStatus {
	switch ProgressStatus(s) {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted:
		return ProgressStatus(s)
	}
	return ProgressUnknown
}

// RunMode distinguishes a full run from a retake over prior mistakes.
type RunMode string

const (
	ModeFull   RunMode = "full"
	ModeRetake RunMode = "retake-subset"
)

// ReviewScope selects which answered questions a review replays.
type ReviewScope string

const (
	ScopeWrong ReviewScope = "wrong"
	ScopeAll   ReviewScope = "all"
)

// Progress is the server-persisted attempt record for a deck. The server is
// authoritative for these counters; the client caches them for display and
// overwrites the cache from every successful submission response.
type Progress struct {
	Status            ProgressStatus
	LastAnsweredIndex int
	Answered          int
	Correct           int
	Incorrect         int
	Attempts          int
	Mode              RunMode
}

// NeedsEntryDecision reports whether opening a deck with this progress must
// defer to an explicit user choice instead of loading questions.
func (p *Progress) NeedsEntryDecision() bool {
	return p.Status == ProgressInProgress || p.Status == ProgressCompleted
}
