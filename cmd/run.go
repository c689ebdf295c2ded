package cmd

import (
	"fmt"

	"github.com/deckplay/deckplay/internal/app"
	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/deckapi"
	"github.com/deckplay/deckplay/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the repository chain, and launches the TUI.
func runApp(cmd *cobra.Command, deckID string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	repo, err := buildRepository(eventRepo)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Repo:      repo,
		DeckID:    deckID,
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
	})
}

// buildRepository wires the API client with retry and sync logging.
func buildRepository(events store.EventRepo) (deck.Repository, error) {
	cfg, err := deckapi.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	var repo deck.Repository = deckapi.NewClient(cfg)
	repo = deckapi.WithRetry(repo, deckapi.DefaultRetryConfig())
	repo = deckapi.WithLogging(repo, events)
	return repo, nil
}
