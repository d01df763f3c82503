package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/meera/courseforge/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <course-id>",
	Short: "List build-state transitions recorded for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		records, err := s.EventRepo().TransitionHistory(context.Background(), args[0], store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No transitions recorded for this course.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-24s  %-10s  %-10s  %s\n",
			"Seq", "Timestamp", "Activity", "From", "To", "Trigger")
		fmt.Println(strings.Repeat("─", 88))

		for _, r := range records {
			activity := r.ActivityID
			if len(activity) > 24 {
				activity = activity[:24]
			}
			fmt.Printf("%-6d  %-19s  %-24s  %-10s  %-10s  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				activity,
				r.FromState,
				r.ToState,
				r.Trigger,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 50, "Maximum number of transitions to show")
}
