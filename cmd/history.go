package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdutta/revq/internal/store"
)

var (
	historyLimit int
	historyBanks bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent answer events from the history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer st.Close()

		if historyBanks {
			counts, err := st.Answers().CountByBank(cmd.Context())
			if err != nil {
				return fmt.Errorf("aggregate history: %w", err)
			}
			if len(counts) == 0 {
				cmd.Println("No answer history recorded yet.")
				return nil
			}
			for _, c := range counts {
				cmd.Printf("%-30s %d/%d correct\n", c.BankKey, c.Correct, c.Answered)
			}
			return nil
		}

		events, err := st.Answers().Recent(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(events) == 0 {
			cmd.Println("No answer history recorded yet.")
			return nil
		}

		for _, ev := range events {
			mark := "✗"
			if ev.Accepted {
				mark = "✓"
			}
			cmd.Printf("%s %s  %-20s [%s] %s\n",
				ev.CreatedAt.Format("2006-01-02 15:04"), mark, ev.BankKey, ev.Rule, ev.Prompt)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "Maximum number of events to print")
	historyCmd.Flags().BoolVar(&historyBanks, "banks", false, "Print per-bank totals instead of individual events")
}
