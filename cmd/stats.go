package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/deckplay/deckplay/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-deck answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.EventRepo().StatsByDeck(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No decks played yet.")
			return nil
		}

		fmt.Printf("%-36s  %8s  %8s  %8s  %8s  %8s  %-19s\n",
			"Deck", "Attempts", "Answered", "Correct", "Accuracy", "Avg Ms", "Last Played")
		fmt.Println(strings.Repeat("─", 108))

		for _, ds := range stats {
			last := "-"
			if !ds.LastPlayed.IsZero() {
				last = ds.LastPlayed.Local().Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-36s  %8d  %8d  %8d  %7.0f%%  %8d  %-19s\n",
				truncate(ds.DeckID, 36), ds.Attempts, ds.Answered, ds.Correct,
				ds.Accuracy()*100, ds.AvgTimeMs, last)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
