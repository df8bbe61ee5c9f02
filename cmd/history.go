package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"prehrajto/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously resolved streams",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := history.Load()
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(os.Stderr, "No history.")
			return nil
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		for _, e := range entries {
			when := time.Unix(e.ResolvedAt, 0).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s  %s\n", when, e.Title, e.Video)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := history.Load()
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		for _, e := range entries {
			if err := history.Remove(e.ID); err != nil {
				return fmt.Errorf("removing %q: %w", e.ID, err)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}
