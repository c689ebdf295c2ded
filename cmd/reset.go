package cmd

import (
	"context"
	"fmt"

	"github.com/deckplay/deckplay/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <deck-id>",
	Short: "Reset server progress for a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := buildRepository(st.EventRepo())
		if err != nil {
			return err
		}

		if err := repo.ResetProgress(context.Background(), deckID); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Printf("Progress for deck %s has been reset.\n", deckID)
		return nil
	},
}
