package validate

import (
	"testing"

	"github.com/meera/courseforge/internal/coursetree"
)

func courseWith(modules ...coursetree.Module) *coursetree.Course {
	return &coursetree.Course{
		ID:      "course-1",
		Title:   "Test Course",
		Modules: modules,
	}
}

func TestStructural_NoModules(t *testing.T) {
	r := NewStructuralValidator().Validate(courseWith())

	if r.IsValid {
		t.Error("expected invalid result")
	}
	if len(r.Errors) != 1 || r.Errors[0] != "Course has no modules" {
		t.Errorf("errors = %v", r.Errors)
	}
	if r.Metrics["total_modules"] != 0 {
		t.Errorf("total_modules = %v", r.Metrics["total_modules"])
	}
}

func TestStructural_ModuleWithNoLessons(t *testing.T) {
	r := NewStructuralValidator().Validate(courseWith(
		coursetree.Module{ID: "m1", Title: "Orphan Module"},
	))

	if !r.IsValid {
		t.Error("empty module is a warning, not an error")
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != `Module "Orphan Module" has no lessons` {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestStructural_ValidCourse(t *testing.T) {
	r := NewStructuralValidator().Validate(courseWith(
		coursetree.Module{
			ID:    "m1",
			Title: "Basics",
			Lessons: []coursetree.Lesson{
				{ID: "l1", Title: "Syntax", Activities: []coursetree.Activity{
					{ID: "a1", Title: "Watch", Type: coursetree.TypeVideo},
					{ID: "a2", Title: "Read", Type: coursetree.TypeReading},
				}},
			},
		},
	))

	if !r.IsValid || len(r.Errors) != 0 || len(r.Warnings) != 0 {
		t.Errorf("expected clean result, got %+v", r)
	}
	if r.Metrics["total_modules"] != 1 || r.Metrics["total_activities"] != 2 {
		t.Errorf("metrics = %v", r.Metrics)
	}
}

func TestStructural_MultipleEmptyModules(t *testing.T) {
	r := NewStructuralValidator().Validate(courseWith(
		coursetree.Module{ID: "m1", Title: "One"},
		coursetree.Module{ID: "m2", Title: "Two"},
	))

	if len(r.Warnings) != 2 {
		t.Errorf("expected a warning per empty module, got %v", r.Warnings)
	}
}
