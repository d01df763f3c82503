package validate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/meera/courseforge/internal/coursetree"
)

// coverageCourse builds a course with activities a1..aN in one lesson.
func coverageCourse(activityIDs []string, outcomes ...coursetree.LearningOutcome) *coursetree.Course {
	acts := make([]coursetree.Activity, len(activityIDs))
	for i, id := range activityIDs {
		acts[i] = coursetree.Activity{ID: id, Title: id, Type: coursetree.TypeReading}
	}
	return &coursetree.Course{
		ID:       "course-1",
		Title:    "Coverage Course",
		Outcomes: outcomes,
		Modules: []coursetree.Module{
			{ID: "m1", Title: "M1", Lessons: []coursetree.Lesson{
				{ID: "l1", Title: "L1", Activities: acts},
			}},
		},
	}
}

func outcome(id, behavior string, mapped ...string) coursetree.LearningOutcome {
	return coursetree.LearningOutcome{
		ID:                id,
		Audience:          "learners",
		Behavior:          behavior,
		MappedActivityIDs: mapped,
	}
}

func TestCoverage_NoOutcomes(t *testing.T) {
	r := NewOutcomeCoverageValidator().Validate(coverageCourse([]string{"a1", "a2"}))

	if !r.IsValid {
		t.Error("missing outcomes is a warning, not an error")
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "no learning outcomes defined" {
		t.Errorf("warnings = %v", r.Warnings)
	}
	if r.Metrics["coverage_score"] != 0.0 {
		t.Errorf("coverage_score = %v", r.Metrics["coverage_score"])
	}
	if r.Metrics["unmapped_activities"] != 2 {
		t.Errorf("unmapped_activities = %v", r.Metrics["unmapped_activities"])
	}
}

func TestCoverage_UnmappedOutcome(t *testing.T) {
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1"},
		outcome("o1", "explain goroutine scheduling"),
	))

	if r.IsValid {
		t.Error("unmapped outcome must be an error")
	}
	if len(r.Errors) != 1 || r.Errors[0] != "Unmapped outcome: explain goroutine scheduling" {
		t.Errorf("errors = %v", r.Errors)
	}
	if r.Metrics["unmapped_outcomes"] != 1 {
		t.Errorf("unmapped_outcomes = %v", r.Metrics["unmapped_outcomes"])
	}
}

func TestCoverage_StaleMappingsOnly(t *testing.T) {
	// Every mapped id points at a removed activity: treated the same as
	// having no mappings at all.
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1"},
		outcome("o1", "use channels", "gone-1", "gone-2"),
	))

	if r.IsValid {
		t.Error("outcome with only stale mappings must be an error")
	}
	if len(r.Errors) != 1 || !strings.HasPrefix(r.Errors[0], "Unmapped outcome:") {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestCoverage_BehaviorTruncation(t *testing.T) {
	long := strings.Repeat("x", 60)
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1"},
		outcome("o1", long),
	))

	want := "Unmapped outcome: " + strings.Repeat("x", 50) + "..."
	if len(r.Errors) != 1 || r.Errors[0] != want {
		t.Errorf("errors = %v", r.Errors)
	}

	exact := strings.Repeat("y", 50)
	r = NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1"},
		outcome("o1", exact),
	))
	if len(r.Errors) != 1 || strings.HasSuffix(r.Errors[0], "...") {
		t.Errorf("50-char behavior must not be truncated: %v", r.Errors)
	}
}

func TestCoverage_BehaviorTruncationKeepsRunesWhole(t *testing.T) {
	// 60 multi-byte runes: truncation must cut on a rune boundary, not a
	// byte offset inside one.
	long := strings.Repeat("é", 60)
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1"},
		outcome("o1", long),
	))

	want := "Unmapped outcome: " + strings.Repeat("é", 50) + "..."
	if len(r.Errors) != 1 || r.Errors[0] != want {
		t.Errorf("errors = %v", r.Errors)
	}
	if !utf8.ValidString(r.Errors[0]) {
		t.Errorf("error message is not valid UTF-8: %q", r.Errors[0])
	}
}

func TestCoverage_LowCoverageWarning(t *testing.T) {
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1", "a2"},
		outcome("o1", "read stack traces", "a1"),
	))

	if !r.IsValid {
		t.Error("low coverage is a warning, not an error")
	}
	if len(r.Warnings) == 0 || !strings.Contains(r.Warnings[0], "only 1 activity") {
		t.Errorf("warnings = %v", r.Warnings)
	}
	if r.Metrics["coverage_score"] != 1.0 {
		t.Errorf("coverage_score = %v", r.Metrics["coverage_score"])
	}
	if r.Metrics["low_coverage_outcomes"] != 1 {
		t.Errorf("low_coverage_outcomes = %v", r.Metrics["low_coverage_outcomes"])
	}
}

func TestCoverage_UnmappedActivitiesAggregateWarning(t *testing.T) {
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1", "a2", "a3"},
		outcome("o1", "trace a request", "a1", "a1"),
	))

	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "2 activities are not mapped") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected aggregate unmapped-activities warning, got %v", r.Warnings)
	}
	if r.Metrics["unmapped_activities"] != 2 {
		t.Errorf("unmapped_activities = %v", r.Metrics["unmapped_activities"])
	}
}

func TestCoverage_FullCoverage(t *testing.T) {
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1", "a2", "a3", "a4"},
		outcome("o1", "write table tests", "a1", "a2"),
		outcome("o2", "profile allocations", "a3", "a4"),
	))

	if !r.IsValid || len(r.Warnings) != 0 {
		t.Errorf("expected clean result, got errors=%v warnings=%v", r.Errors, r.Warnings)
	}
	if r.Metrics["coverage_score"] != 1.0 {
		t.Errorf("coverage_score = %v", r.Metrics["coverage_score"])
	}
	if r.Metrics["avg_activities_per_outcome"] != 2.0 {
		t.Errorf("avg_activities_per_outcome = %v", r.Metrics["avg_activities_per_outcome"])
	}
}

func TestCoverage_MixedOutcomesScore(t *testing.T) {
	// 2 of 3 outcomes covered: 0.67 after rounding.
	r := NewOutcomeCoverageValidator().Validate(coverageCourse(
		[]string{"a1", "a2", "a3"},
		outcome("o1", "first", "a1", "a2"),
		outcome("o2", "second", "a3"),
		outcome("o3", "third"),
	))

	if r.Metrics["coverage_score"] != 0.67 {
		t.Errorf("coverage_score = %v", r.Metrics["coverage_score"])
	}
	if r.Metrics["avg_activities_per_outcome"] != 1.0 {
		t.Errorf("avg_activities_per_outcome = %v", r.Metrics["avg_activities_per_outcome"])
	}
}
