package cmd

import (
	"fmt"

	"github.com/meera/courseforge/internal/buildstate"
	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/report"
	"github.com/meera/courseforge/internal/store"
	"github.com/meera/courseforge/internal/validate"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <course.json>",
	Short: "Publish a course after validation and approval checks pass",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, err := coursetree.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		runner := validate.NewRunner()
		results := runner.ValidateCourse(course)
		recordValidationRuns(cmd, course.ID, results)

		if !runner.IsPublishable(course) {
			fmt.Print(report.Render(course.Title, results))
			return errNotPublishable
		}

		// The validators gate content quality; the state machine gates the
		// workflow. Every activity must have cleared review.
		var unapproved []string
		for _, a := range coursetree.Flatten(course) {
			if a.BuildState != coursetree.StateApproved && a.BuildState != coursetree.StatePublished {
				unapproved = append(unapproved, fmt.Sprintf("%s (%s)", a.Title, a.BuildState))
			}
		}
		if len(unapproved) > 0 {
			for _, u := range unapproved {
				fmt.Println("not approved:", u)
			}
			return fmt.Errorf("%d activities are not approved", len(unapproved))
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		snapshotCourse(ctx, s.SnapshotRepo(), course, "publish")

		published := 0
		for _, a := range coursetree.Flatten(course) {
			if a.BuildState != coursetree.StateApproved {
				continue
			}
			if _, err := buildstate.Transition(a, coursetree.StatePublished); err != nil {
				return fmt.Errorf("publish %s: %w", a.ID, err)
			}
			recordTransitionEvent(ctx, s.EventRepo(), store.TransitionEventData{
				CourseID:   course.ID,
				ActivityID: a.ID,
				FromState:  string(coursetree.StateApproved),
				ToState:    string(coursetree.StatePublished),
				Trigger:    "publish",
			})
			published++
		}

		if err := coursetree.SaveFile(course, args[0]); err != nil {
			return fmt.Errorf("save course: %w", err)
		}

		fmt.Printf("Published %q: %d activities moved to published\n", course.Title, published)
		return nil
	},
}
