package validate

import (
	"strings"
	"testing"

	"github.com/meera/courseforge/internal/coursetree"
)

// bloomCourse builds a single-lesson course whose activities carry the
// given Bloom's levels ("" means unset).
func bloomCourse(levels ...coursetree.BloomLevel) *coursetree.Course {
	acts := make([]coursetree.Activity, len(levels))
	for i, l := range levels {
		acts[i] = coursetree.Activity{
			ID:    "a" + string(rune('1'+i)),
			Title: "Activity",
			Type:  coursetree.TypeReading,
			Bloom: l,
		}
	}
	return &coursetree.Course{
		ID:    "course-1",
		Title: "Bloom Course",
		Modules: []coursetree.Module{
			{ID: "m1", Title: "M1", Lessons: []coursetree.Lesson{
				{ID: "l1", Title: "L1", Activities: acts},
			}},
		},
	}
}

func TestBloom_NoLevelsSet(t *testing.T) {
	r := NewBloomDiversityValidator().Validate(bloomCourse("", ""))

	if !r.IsValid || len(r.Errors) != 0 || len(r.Warnings) != 0 {
		t.Errorf("unlevelled course must pass quietly: %+v", r)
	}
	if len(r.Suggestions) != 1 || !strings.Contains(r.Suggestions[0], "enable diversity analysis") {
		t.Errorf("suggestions = %v", r.Suggestions)
	}
	if r.Metrics["unique_levels"] != 0 {
		t.Errorf("unique_levels = %v", r.Metrics["unique_levels"])
	}
	if r.Metrics["total_activities"] != 0 {
		t.Errorf("total_activities = %v", r.Metrics["total_activities"])
	}
	if r.Metrics["dominant_level"] != nil {
		t.Errorf("dominant_level = %v", r.Metrics["dominant_level"])
	}
}

func TestBloom_SingleLevelError(t *testing.T) {
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomRemember, coursetree.BloomRemember,
	))

	if r.IsValid {
		t.Error("single-level course must fail")
	}
	want := "Only 1 Bloom's level(s) used (minimum 2 for diverse learning)"
	if len(r.Errors) != 1 || r.Errors[0] != want {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestBloom_DominanceWarning(t *testing.T) {
	// 5 of 6 at apply: 83% > 80%.
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomApply, coursetree.BloomApply, coursetree.BloomApply,
		coursetree.BloomApply, coursetree.BloomApply, coursetree.BloomRemember,
	))

	if len(r.Warnings) != 1 {
		t.Fatalf("warnings = %v", r.Warnings)
	}
	w := r.Warnings[0]
	if !strings.Contains(w, `"apply"`) || !strings.Contains(w, "83%") || !strings.Contains(w, "(5/6)") {
		t.Errorf("warning = %q", w)
	}
}

func TestBloom_NoDominanceAtEightyPercent(t *testing.T) {
	// 4 of 5 is exactly 80%: not strictly above the threshold.
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomApply, coursetree.BloomApply,
		coursetree.BloomApply, coursetree.BloomApply,
		coursetree.BloomRemember,
	))

	if len(r.Warnings) != 0 {
		t.Errorf("80%% exactly must not warn: %v", r.Warnings)
	}
}

func TestBloom_HigherOrderSuggestion(t *testing.T) {
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomRemember, coursetree.BloomUnderstand,
	))

	if len(r.Suggestions) != 1 || !strings.Contains(r.Suggestions[0], "higher-order-thinking") {
		t.Errorf("suggestions = %v", r.Suggestions)
	}
}

func TestBloom_NoSuggestionWhenHigherOrderPresent(t *testing.T) {
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomRemember, coursetree.BloomAnalyze,
	))

	if len(r.Suggestions) != 0 {
		t.Errorf("suggestions = %v", r.Suggestions)
	}
}

func TestBloom_DominantTieBrokenByTaxonomyOrder(t *testing.T) {
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomCreate, coursetree.BloomUnderstand,
	))

	if r.Metrics["dominant_level"] != "understand" {
		t.Errorf("dominant_level = %v, want understand (lower taxonomy level wins ties)",
			r.Metrics["dominant_level"])
	}
}

func TestBloom_Distribution(t *testing.T) {
	r := NewBloomDiversityValidator().Validate(bloomCourse(
		coursetree.BloomApply, coursetree.BloomApply, coursetree.BloomEvaluate,
	))

	dist, ok := r.Metrics["distribution"].(map[string]float64)
	if !ok {
		t.Fatalf("distribution has type %T", r.Metrics["distribution"])
	}
	if dist["apply"] != 0.67 || dist["evaluate"] != 0.33 {
		t.Errorf("distribution = %v", dist)
	}
	if r.Metrics["total_activities"] != 3 {
		t.Errorf("total_activities = %v", r.Metrics["total_activities"])
	}
}
