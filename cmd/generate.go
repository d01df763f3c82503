package cmd

import (
	"fmt"

	"github.com/meera/courseforge/internal/contentgen"
	"github.com/meera/courseforge/internal/coursetree"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <course.json>",
	Short: "Generate content for draft activities with the configured LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activityID, _ := cmd.Flags().GetString("activity")

		course, err := coursetree.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, err := newLLMProvider(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		snapshotCourse(ctx, s.SnapshotRepo(), course, "manual")

		gen := contentgen.New(provider, contentgen.DefaultConfig())
		svc := contentgen.NewService(gen, s.EventRepo())

		if activityID != "" {
			if err := svc.GenerateActivity(ctx, course, activityID); err != nil {
				return err
			}
			fmt.Printf("Generated content for activity %s\n", activityID)
		} else {
			count, errs := svc.GenerateDrafts(ctx, course)
			for _, genErr := range errs {
				fmt.Println("error:", genErr)
			}
			fmt.Printf("Generated content for %d activities (%d failed)\n", count, len(errs))
		}

		if err := coursetree.SaveFile(course, args[0]); err != nil {
			return fmt.Errorf("save course: %w", err)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("activity", "", "Generate a single activity by ID instead of all drafts")
}
