package contentgen

import (
	"context"
	"fmt"
	"os"

	"github.com/meera/courseforge/internal/buildstate"
	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/store"
)

// Service generates content for course activities and drives their
// build states through draft → generating → generated. A failed
// generation resets the activity to draft so it can be retried.
type Service struct {
	gen    Generator
	events store.EventRepo
}

// NewService creates a Service. events may be nil, in which case no
// transition events are recorded.
func NewService(gen Generator, events store.EventRepo) *Service {
	return &Service{gen: gen, events: events}
}

// GenerateActivity generates content for one activity by id. The
// activity must be in the draft state.
func (s *Service) GenerateActivity(ctx context.Context, c *coursetree.Course, activityID string) error {
	a, moduleTitle, lessonTitle := locate(c, activityID)
	if a == nil {
		return fmt.Errorf("activity %q not found in course %q", activityID, c.Title)
	}

	if _, err := buildstate.Transition(a, coursetree.StateGenerating); err != nil {
		return fmt.Errorf("start generation: %w", err)
	}
	s.recordTransition(ctx, c, a, coursetree.StateDraft, coursetree.StateGenerating)

	input := GenerateInput{
		CourseTitle: c.Title,
		ModuleTitle: moduleTitle,
		LessonTitle: lessonTitle,
		Activity:    a,
		Outcomes:    mappedOutcomes(c, activityID),
	}

	content, err := s.gen.Generate(ctx, input)
	if err != nil {
		buildstate.Reset(a)
		s.recordTransition(ctx, c, a, coursetree.StateGenerating, coursetree.StateDraft)
		return fmt.Errorf("generate %q: %w", a.Title, err)
	}

	a.Content = content
	a.WordCount = WordCount(content)
	if _, err := buildstate.Transition(a, coursetree.StateGenerated); err != nil {
		return fmt.Errorf("finish generation: %w", err)
	}
	s.recordTransition(ctx, c, a, coursetree.StateGenerating, coursetree.StateGenerated)
	return nil
}

// GenerateDrafts generates content for every draft activity in the
// course, in document order. It keeps going past individual failures
// and returns the number generated along with the errors encountered.
func (s *Service) GenerateDrafts(ctx context.Context, c *coursetree.Course) (int, []error) {
	var errs []error
	generated := 0

	for _, a := range coursetree.Flatten(c) {
		if a.BuildState != coursetree.StateDraft {
			continue
		}
		if err := s.GenerateActivity(ctx, c, a.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		generated++
	}
	return generated, errs
}

func (s *Service) recordTransition(ctx context.Context, c *coursetree.Course, a *coursetree.Activity, from, to coursetree.BuildState) {
	if s.events == nil {
		return
	}
	err := s.events.AppendTransition(ctx, store.TransitionEventData{
		CourseID:   c.ID,
		ActivityID: a.ID,
		FromState:  string(from),
		ToState:    string(to),
		Trigger:    "generate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log transition event: %v\n", err)
	}
}

// locate finds an activity and its enclosing module and lesson titles.
func locate(c *coursetree.Course, activityID string) (*coursetree.Activity, string, string) {
	for mi := range c.Modules {
		m := &c.Modules[mi]
		for li := range m.Lessons {
			l := &m.Lessons[li]
			for ai := range l.Activities {
				if l.Activities[ai].ID == activityID {
					return &l.Activities[ai], m.Title, l.Title
				}
			}
		}
	}
	return nil, "", ""
}

// mappedOutcomes collects the outcomes whose mappings include the
// activity, in declaration order.
func mappedOutcomes(c *coursetree.Course, activityID string) []coursetree.LearningOutcome {
	var out []coursetree.LearningOutcome
	for _, o := range c.Outcomes {
		for _, id := range o.MappedActivityIDs {
			if id == activityID {
				out = append(out, o)
				break
			}
		}
	}
	return out
}
