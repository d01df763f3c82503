package cmd

import (
	"fmt"

	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/ui/review"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <course.json>",
	Short: "Review generated activities interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, err := coursetree.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		snapshotCourse(cmd.Context(), s.SnapshotRepo(), course, "manual")

		if err := review.Run(course, s.EventRepo()); err != nil {
			return err
		}

		if err := coursetree.SaveFile(course, args[0]); err != nil {
			return fmt.Errorf("save course: %w", err)
		}
		return nil
	},
}
