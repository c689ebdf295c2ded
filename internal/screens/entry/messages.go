package entry

import (
	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/session"
)

// openDoneMsg is sent when the controller has resolved the entry state.
type openDoneMsg struct {
	State session.EntryState
	Err   error
}

// resolveDoneMsg is sent when an entry choice has been applied.
type resolveDoneMsg struct {
	Choice session.EntryChoice
	Err    error
}

// deckUpdateMsg carries a fresh deck record from the status poller. A nil
// deck means the poller channel closed.
type deckUpdateMsg struct {
	Deck *deck.Deck
}
