package deckapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

func TestPoller_StopsWhenDeckBecomesReady(t *testing.T) {
	statuses := make(chan deck.Status, 3)
	statuses <- deck.StatusGenerating
	statuses <- deck.StatusGenerating
	statuses <- deck.StatusReady

	mock := &Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return &deck.Deck{ID: deckID, Status: <-statuses}, nil
		},
	}

	p := NewPoller(mock, "d1", 5*time.Millisecond)
	p.Start(context.Background())

	var got []deck.Status
	for d := range p.Updates() {
		got = append(got, d.Status)
	}

	if len(got) != 3 {
		t.Fatalf("updates = %d, want 3", len(got))
	}
	if got[2] != deck.StatusReady {
		t.Errorf("final status = %s, want ready", got[2])
	}

	// Stop after the loop ended on its own must not hang or panic.
	p.Stop()
}

func TestPoller_StopTerminatesLoop(t *testing.T) {
	mock := &Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return &deck.Deck{ID: deckID, Status: deck.StatusGenerating}, nil
		},
	}

	p := NewPoller(mock, "d1", 5*time.Millisecond)
	p.Start(context.Background())

	// Let at least one poll land.
	select {
	case <-p.Updates():
	case <-time.After(time.Second):
		t.Fatal("no update before timeout")
	}

	p.Stop()
	p.Stop() // idempotent

	// Channel must be closed once the loop exits; drain any buffered update.
	for range p.Updates() {
	}
}

func TestPoller_FetchErrorsAreSkipped(t *testing.T) {
	calls := 0
	mock := &Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("transient")
			}
			return &deck.Deck{ID: deckID, Status: deck.StatusReady}, nil
		},
	}

	p := NewPoller(mock, "d1", 5*time.Millisecond)
	p.Start(context.Background())

	var got []*deck.Deck
	for d := range p.Updates() {
		got = append(got, d)
	}

	if len(got) != 1 {
		t.Fatalf("updates = %d, want 1 (error poll dropped)", len(got))
	}
	if got[0].Status != deck.StatusReady {
		t.Errorf("status = %s, want ready", got[0].Status)
	}
	p.Stop()
}

func TestPoller_ContextCancelStopsLoop(t *testing.T) {
	mock := &Mock{
		GetDeckFunc: func(ctx context.Context, deckID string) (*deck.Deck, error) {
			return &deck.Deck{ID: deckID, Status: deck.StatusGenerating}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller(mock, "d1", 5*time.Millisecond)
	p.Start(ctx)
	cancel()

	closed := make(chan struct{})
	go func() {
		for range p.Updates() {
		}
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("updates channel not closed after context cancel")
	}
}

func TestPoller_ZeroIntervalDefaults(t *testing.T) {
	p := NewPoller(&Mock{}, "d1", 0)
	if p.interval != 3*time.Second {
		t.Errorf("interval = %s, want 3s", p.interval)
	}
}
