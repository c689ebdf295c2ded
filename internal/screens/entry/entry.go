package entry

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/deckapi"
	"github.com/deckplay/deckplay/internal/router"
	"github.com/deckplay/deckplay/internal/screen"
	"github.com/deckplay/deckplay/internal/screens/quiz"
	"github.com/deckplay/deckplay/internal/session"
	"github.com/deckplay/deckplay/internal/store"
	"github.com/deckplay/deckplay/internal/ui/components"
	"github.com/deckplay/deckplay/internal/ui/layout"
)

// EntryScreen opens a deck and routes the player into a session. Fresh
// decks go straight to the quiz; decks with prior progress show a decision
// menu; still-generating decks wait on the status poller.
type EntryScreen struct {
	repo      deck.Repository
	ctrl      *session.Controller
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	menu    components.Menu
	hasMenu bool
	loading bool
	spin    components.Spinner
	errMsg  string
	poller  *deckapi.Poller
	genDeck *deck.Deck
}

var _ screen.Screen = (*EntryScreen)(nil)
var _ screen.KeyHintProvider = (*EntryScreen)(nil)

// New creates an EntryScreen for one deck.
func New(repo deck.Repository, deckID string, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *EntryScreen {
	return &EntryScreen{
		repo:      repo,
		ctrl:      session.NewController(repo, deckID),
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		loading:   true,
		spin:      components.NewSpinner(),
	}
}

func (e *EntryScreen) Init() tea.Cmd {
	return tea.Batch(e.openCmd(), e.spin.Init())
}

func (e *EntryScreen) Title() string {
	if d := e.ctrl.Deck(); d != nil {
		return d.Title
	}
	return "Opening deck"
}

func (e *EntryScreen) KeyHints() []layout.KeyHint {
	if e.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Quit"}}
	}
	if e.hasMenu {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
}

func (e *EntryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case openDoneMsg:
		return e.handleOpenDone(msg)

	case resolveDoneMsg:
		return e.handleResolveDone(msg)

	case deckUpdateMsg:
		return e.handleDeckUpdate(msg)

	case tea.KeyMsg:
		if e.errMsg != "" {
			return e, tea.Quit
		}
		if msg.String() == "esc" {
			e.stopPoller()
			return e, tea.Quit
		}
		if e.hasMenu {
			var cmd tea.Cmd
			e.menu, cmd = e.menu.Update(msg)
			return e, cmd
		}

	default:
		if e.loading || e.poller != nil {
			var cmd tea.Cmd
			e.spin, cmd = e.spin.Update(msg)
			return e, cmd
		}
	}
	return e, nil
}

// openCmd resolves entry state off the Update loop.
func (e *EntryScreen) openCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := e.ctrl.Open(context.Background())
		return openDoneMsg{State: state, Err: err}
	}
}

func (e *EntryScreen) handleOpenDone(msg openDoneMsg) (screen.Screen, tea.Cmd) {
	e.loading = false

	if msg.Err != nil {
		e.errMsg = msg.Err.Error()
		return e, nil
	}

	d := e.ctrl.Deck()
	if d != nil && d.Status == deck.StatusGenerating {
		return e.startPolling(d)
	}
	if d != nil && !d.Ready() {
		e.errMsg = fmt.Sprintf("deck %s is not playable (status %s)", d.ID, d.Status)
		return e, nil
	}

	e.saveSnapshot()

	if msg.State == session.EntryFresh {
		return e.enterQuiz("start")
	}

	e.buildMenu()
	return e, nil
}

// startPolling watches a generating deck until it becomes playable.
func (e *EntryScreen) startPolling(d *deck.Deck) (screen.Screen, tea.Cmd) {
	e.genDeck = d
	e.poller = deckapi.NewPoller(e.repo, d.ID, 3*time.Second)
	e.poller.Start(context.Background())
	return e, waitForUpdate(e.poller.Updates())
}

// waitForUpdate blocks on the poller channel and re-arms after each message.
func waitForUpdate(ch <-chan *deck.Deck) tea.Cmd {
	return func() tea.Msg {
		d, ok := <-ch
		if !ok {
			return deckUpdateMsg{}
		}
		return deckUpdateMsg{Deck: d}
	}
}

func (e *EntryScreen) handleDeckUpdate(msg deckUpdateMsg) (screen.Screen, tea.Cmd) {
	if msg.Deck == nil {
		// Channel closed; the poller saw a terminal status.
		if e.genDeck != nil && e.genDeck.Ready() {
			e.poller = nil
			e.loading = true
			return e, e.openCmd()
		}
		if e.genDeck != nil && e.genDeck.Status == deck.StatusFailed {
			e.errMsg = "deck generation failed"
		}
		e.poller = nil
		return e, nil
	}

	e.genDeck = msg.Deck
	if msg.Deck.Ready() || msg.Deck.Status == deck.StatusFailed {
		e.stopPoller()
	}
	return e, waitForUpdate(e.poller.Updates())
}

func (e *EntryScreen) stopPoller() {
	if e.poller != nil {
		e.poller.Stop()
	}
}

// buildMenu offers the choices valid for the cached progress status.
func (e *EntryScreen) buildMenu() {
	p := e.ctrl.Progress()
	var items []components.MenuItem

	if p != nil && p.Status == deck.ProgressInProgress {
		items = []components.MenuItem{
			{
				Label:  "Continue",
				Detail: fmt.Sprintf("Pick up at question %d", p.LastAnsweredIndex+2),
				Action: e.resolveAction(session.ChoiceContinue),
			},
			{
				Label:  "Start over",
				Detail: "Discard this attempt and begin again",
				Action: e.resolveAction(session.ChoiceStartOver),
			},
		}
	} else {
		detail := ""
		if p != nil {
			detail = fmt.Sprintf("Last run: %d/%d correct", p.Correct, p.Answered)
		}
		items = []components.MenuItem{
			{
				Label:  "Review wrong answers",
				Detail: detail,
				Action: e.resolveAction(session.ChoiceReviewWrong),
			},
			{
				Label:  "Review all questions",
				Action: e.resolveAction(session.ChoiceReviewAll),
			},
			{
				Label:    "Retake wrong answers",
				Action:   e.resolveAction(session.ChoiceRetakeWrong),
				Disabled: p != nil && p.Incorrect == 0 && p.Answered > 0 && p.Correct == p.Answered,
			},
			{
				Label:  "Restart deck",
				Detail: "Fresh attempt over the full deck",
				Action: e.resolveAction(session.ChoiceRestart),
			},
		}
	}

	e.menu = components.NewMenu(items)
	e.hasMenu = true
}

func (e *EntryScreen) resolveAction(choice session.EntryChoice) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			_, err := e.ctrl.Resolve(context.Background(), choice)
			return resolveDoneMsg{Choice: choice, Err: err}
		}
	}
}

func (e *EntryScreen) handleResolveDone(msg resolveDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		e.errMsg = msg.Err.Error()
		return e, nil
	}

	action := "start"
	switch msg.Choice {
	case session.ChoiceContinue:
		action = "resume"
	case session.ChoiceReviewWrong, session.ChoiceReviewAll:
		action = "review"
	}
	return e.enterQuiz(action)
}

// enterQuiz logs the lifecycle event and swaps in the quiz screen.
func (e *EntryScreen) enterQuiz(action string) (screen.Screen, tea.Cmd) {
	s := e.ctrl.Session()
	if s == nil {
		e.errMsg = "no session loaded"
		return e, nil
	}

	if e.eventRepo != nil {
		data := store.SessionEventData{
			SessionID: s.ID,
			DeckID:    s.Deck.ID,
			Action:    action,
			Mode:      string(s.Mode),
		}
		if s.Review {
			data.Scope = string(s.Scope)
		}
		_ = e.eventRepo.AppendSessionEvent(context.Background(), data)
	}

	q := quiz.New(e.ctrl, e.eventRepo)
	return e, func() tea.Msg { return router.ReplaceScreenMsg{Screen: q} }
}

// saveSnapshot caches the freshly fetched progress for the stats command.
func (e *EntryScreen) saveSnapshot() {
	p := e.ctrl.Progress()
	d := e.ctrl.Deck()
	if e.snapRepo == nil || p == nil || d == nil {
		return
	}
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.ProgressSnapshot{
			DeckID:            d.ID,
			Status:            string(p.Status),
			LastAnsweredIndex: p.LastAnsweredIndex,
			Answered:          p.Answered,
			Correct:           p.Correct,
			Attempts:          p.Attempts,
			FetchedAt:         time.Now().UTC(),
		},
	}
	_ = e.snapRepo.Save(context.Background(), snap)
}
