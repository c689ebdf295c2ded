package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/deckplay/deckplay/internal/store"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inspect server sync events",
}

var syncListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sync events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		deckID, _ := cmd.Flags().GetString("deck")
		failedOnly, _ := cmd.Flags().GetBool("failed")

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
		events, err := s.EventRepo().QuerySyncEvents(ctx, store.QueryOpts{Limit: limit, DeckID: deckID})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No sync events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-24s  %-20s  %7s  %-2s  %s\n",
			"Seq", "Timestamp", "Deck", "Op", "Ms", "OK", "Error")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if failedOnly && e.Success {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-6d  %-19s  %-24s  %-20s  %7d  %-2s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.DeckID, 24),
				e.Op,
				e.LatencyMs,
				ok,
				e.ErrorMessage,
			)
		}
		return nil
	},
}

func init() {
	syncListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	syncListCmd.Flags().StringP("deck", "d", "", "Filter by deck ID")
	syncListCmd.Flags().Bool("failed", false, "Show only failed syncs")

	syncCmd.AddCommand(syncListCmd)
}
