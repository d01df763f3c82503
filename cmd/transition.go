package cmd

import (
	"fmt"

	"github.com/meera/courseforge/internal/buildstate"
	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/store"
	"github.com/spf13/cobra"
)

var transitionCmd = &cobra.Command{
	Use:   "transition <course.json> <activity-id> <state>",
	Short: "Move an activity to a new build state",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := coursetree.BuildState(args[2])
		if !target.Valid() {
			return fmt.Errorf("unknown build state %q (valid: %v)", args[2], coursetree.AllBuildStates())
		}
		return mutateActivity(cmd, args[0], args[1], func(a *coursetree.Activity) error {
			_, err := buildstate.Transition(a, target)
			return err
		})
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve <course.json> <activity-id>",
	Short: "Approve a reviewed activity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateActivity(cmd, args[0], args[1], func(a *coursetree.Activity) error {
			_, err := buildstate.Approve(a)
			return err
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <course.json> <activity-id>",
	Short: "Reset an activity back to draft",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateActivity(cmd, args[0], args[1], func(a *coursetree.Activity) error {
			buildstate.Reset(a)
			return nil
		})
	},
}

// mutateActivity loads the course, applies one state change to the named
// activity, records it, and saves the file back.
func mutateActivity(cmd *cobra.Command, path, activityID string, fn func(*coursetree.Activity) error) error {
	course, err := coursetree.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load course: %w", err)
	}

	a := coursetree.BuildIndex(course).Lookup(activityID)
	if a == nil {
		return fmt.Errorf("activity %q not found in course %q", activityID, course.ID)
	}

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	snapshotCourse(ctx, s.SnapshotRepo(), course, "manual")

	from := a.BuildState
	if err := fn(a); err != nil {
		return err
	}
	if a.BuildState == from {
		fmt.Printf("%s: already %s\n", a.Title, from)
		return nil
	}

	recordTransitionEvent(ctx, s.EventRepo(), store.TransitionEventData{
		CourseID:   course.ID,
		ActivityID: a.ID,
		FromState:  string(from),
		ToState:    string(a.BuildState),
		Trigger:    "cli",
	})

	if err := coursetree.SaveFile(course, path); err != nil {
		return fmt.Errorf("save course: %w", err)
	}

	fmt.Printf("%s: %s → %s\n", a.Title, from, a.BuildState)
	return nil
}
