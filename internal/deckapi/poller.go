package deckapi

import (
	"context"
	"sync"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

// Poller re-fetches deck metadata at a fixed interval while a deck is still
// generating. It is the only place a polling loop lives; its lifetime is
// explicit — Start once, Stop exactly once, never a freestanding interval.
type Poller struct {
	repo     deck.Repository
	deckID   string
	interval time.Duration

	updates  chan *deck.Deck
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	started  bool
}

// NewPoller creates a poller for one deck. A zero interval defaults to 3s.
func NewPoller(repo deck.Repository, deckID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Poller{
		repo:     repo,
		deckID:   deckID,
		interval: interval,
		updates:  make(chan *deck.Deck, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Updates delivers each successful re-fetch. The channel closes when the
// poller stops — either via Stop or once the deck leaves the generating
// state.
func (p *Poller) Updates() <-chan *deck.Deck {
	return p.updates
}

// Start launches the poll loop. Calling Start twice is a no-op.
func (p *Poller) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	go func() {
		defer close(p.done)
		defer close(p.updates)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				d, err := p.repo.GetDeck(ctx, p.deckID)
				if err != nil {
					// Transient fetch failures just wait for the next tick.
					continue
				}
				select {
				case p.updates <- d:
				case <-p.stop:
					return
				case <-ctx.Done():
					return
				}
				if d.Status != deck.StatusGenerating {
					return
				}
			}
		}
	}()
}

// Stop terminates the loop and waits for it to exit. Safe to call after the
// loop has already finished on its own.
func (p *Poller) Stop() {
	if !p.started {
		return
	}
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}
