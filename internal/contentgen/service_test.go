package contentgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/llm"
)

func serviceCourse() *coursetree.Course {
	return &coursetree.Course{
		ID:    "course-1",
		Title: "Concurrency in Go",
		Outcomes: []coursetree.LearningOutcome{
			{ID: "o1", Behavior: "use channels", MappedActivityIDs: []string{"a1"}},
			{ID: "o2", Behavior: "detect races", MappedActivityIDs: []string{"a1", "a2"}},
		},
		Modules: []coursetree.Module{
			{ID: "m1", Title: "Channels", Lessons: []coursetree.Lesson{
				{ID: "l1", Title: "Basics", Activities: []coursetree.Activity{
					{ID: "a1", Title: "Channel Reading", Type: coursetree.TypeReading, BuildState: coursetree.StateDraft},
					{ID: "a2", Title: "Channels Quiz", Type: coursetree.TypeQuiz, BuildState: coursetree.StateDraft},
				}},
			}},
		},
	}
}

func TestGenerateActivity_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"content":"Channels carry values between goroutines safely."}`)},
	)
	svc := NewService(New(mock, DefaultConfig()), nil)
	c := serviceCourse()

	if err := svc.GenerateActivity(context.Background(), c, "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := coursetree.BuildIndex(c).Lookup("a1")
	if a.BuildState != coursetree.StateGenerated {
		t.Errorf("state = %s, want generated", a.BuildState)
	}
	if a.Content == "" {
		t.Error("expected content to be set")
	}
	if a.WordCount != 6 {
		t.Errorf("word count = %d, want 6", a.WordCount)
	}
}

func TestGenerateActivity_FailureResetsToDraft(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	svc := NewService(New(mock, DefaultConfig()), nil)
	c := serviceCourse()

	if err := svc.GenerateActivity(context.Background(), c, "a1"); err == nil {
		t.Fatal("expected error")
	}

	a := coursetree.BuildIndex(c).Lookup("a1")
	if a.BuildState != coursetree.StateDraft {
		t.Errorf("state after failure = %s, want draft", a.BuildState)
	}
	if a.Content != "" {
		t.Error("failed generation must not store content")
	}
}

func TestGenerateActivity_UnknownID(t *testing.T) {
	svc := NewService(New(llm.NewMockProvider(), DefaultConfig()), nil)
	if err := svc.GenerateActivity(context.Background(), serviceCourse(), "missing"); err == nil {
		t.Fatal("expected error for unknown activity")
	}
}

func TestGenerateActivity_RejectsNonDraft(t *testing.T) {
	svc := NewService(New(llm.NewMockProvider(), DefaultConfig()), nil)
	c := serviceCourse()
	c.Modules[0].Lessons[0].Activities[0].BuildState = coursetree.StateGenerated

	if err := svc.GenerateActivity(context.Background(), c, "a1"); err == nil {
		t.Fatal("expected error: only draft activities can start generating")
	}
}

func TestGenerateDrafts_ContinuesPastFailures(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"content":"A reading about channels."}`)},
		// Second call (the quiz) gets nothing: provider unavailable.
	)
	svc := NewService(New(mock, DefaultConfig()), nil)
	c := serviceCourse()

	generated, errs := svc.GenerateDrafts(context.Background(), c)
	if generated != 1 {
		t.Errorf("generated = %d, want 1", generated)
	}
	if len(errs) != 1 {
		t.Errorf("errors = %v, want 1", errs)
	}

	idx := coursetree.BuildIndex(c)
	if idx.Lookup("a1").BuildState != coursetree.StateGenerated {
		t.Error("a1 should be generated")
	}
	if idx.Lookup("a2").BuildState != coursetree.StateDraft {
		t.Error("a2 should be back in draft")
	}
}

func TestMappedOutcomes_FiltersAndOrders(t *testing.T) {
	c := serviceCourse()

	outcomes := mappedOutcomes(c, "a1")
	if len(outcomes) != 2 || outcomes[0].ID != "o1" || outcomes[1].ID != "o2" {
		t.Errorf("outcomes for a1 = %v", outcomes)
	}

	outcomes = mappedOutcomes(c, "a2")
	if len(outcomes) != 1 || outcomes[0].ID != "o2" {
		t.Errorf("outcomes for a2 = %v", outcomes)
	}
}
