package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/report"
	"github.com/meera/courseforge/internal/store"
	"github.com/meera/courseforge/internal/validate"
	"github.com/spf13/cobra"
)

var errNotPublishable = errors.New("course is not publishable")

var validateCmd = &cobra.Command{
	Use:   "validate <course.json>",
	Short: "Run the validation suite over a course file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, err := coursetree.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		runner := validate.NewRunner()
		results := runner.ValidateCourse(course)

		fmt.Print(report.Render(course.Title, results))

		recordValidationRuns(cmd, course.ID, results)

		if !runner.IsPublishable(course) {
			return errNotPublishable
		}
		return nil
	},
}

// recordValidationRuns appends one event per validator. The store is
// optional for a read-only command, so failures only warn.
func recordValidationRuns(cmd *cobra.Command, courseID string, results map[string]*validate.Result) {
	s, err := openStore(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open store: %v\n", err)
		return
	}
	defer s.Close()

	ctx := context.Background()
	for name, r := range results {
		err := s.EventRepo().AppendValidationRun(ctx, store.ValidationRunData{
			CourseID:        courseID,
			Validator:       name,
			IsValid:         r.IsValid,
			ErrorCount:      len(r.Errors),
			WarningCount:    len(r.Warnings),
			SuggestionCount: len(r.Suggestions),
			Metrics:         r.Metrics,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log validation run: %v\n", err)
		}
	}
}
