package report

import (
	"strings"
	"testing"

	"github.com/meera/courseforge/internal/validate"
)

func passingResults() map[string]*validate.Result {
	out := map[string]*validate.Result{}
	for _, name := range validatorOrder {
		out[name] = validate.NewResult()
	}
	return out
}

func TestRender_Publishable(t *testing.T) {
	got := Render("Concurrency in Go", passingResults())

	if !strings.Contains(got, "Validation Report: Concurrency in Go") {
		t.Errorf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "Course is publishable") {
		t.Errorf("missing publishable verdict:\n%s", got)
	}
	for _, label := range []string{"Structure", "Outcome Coverage", "Bloom's Diversity", "Distractor Quality"} {
		if !strings.Contains(got, label) {
			t.Errorf("missing section %q:\n%s", label, got)
		}
	}
}

func TestRender_NotPublishable(t *testing.T) {
	results := passingResults()
	results["outcome_coverage"].Error("Unmapped outcome: explain goroutine scheduling")
	results["outcome_coverage"].Warn("3 activities are not mapped to any learning outcome")

	got := Render("Concurrency in Go", results)

	if !strings.Contains(got, "not publishable") {
		t.Errorf("missing failure verdict:\n%s", got)
	}
	if !strings.Contains(got, "error: Unmapped outcome: explain goroutine scheduling") {
		t.Errorf("missing error line:\n%s", got)
	}
	if !strings.Contains(got, "warning: 3 activities are not mapped") {
		t.Errorf("missing warning line:\n%s", got)
	}
}

func TestRender_SectionOrder(t *testing.T) {
	got := Render("C", passingResults())

	posStructure := strings.Index(got, "Structure")
	posDistractor := strings.Index(got, "Distractor Quality")
	if posStructure < 0 || posDistractor < 0 || posStructure > posDistractor {
		t.Errorf("sections out of order:\n%s", got)
	}
}

func TestMetricsLine_SortedScalarsOnly(t *testing.T) {
	line := metricsLine(map[string]any{
		"coverage_score": 0.67,
		"total_outcomes": 3,
		"distribution":   map[string]float64{"apply": 1.0},
		"dominant_level": "apply",
	})

	if !strings.Contains(line, "coverage_score=0.67") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "total_outcomes=3") {
		t.Errorf("line = %q", line)
	}
	if strings.Contains(line, "distribution") {
		t.Errorf("nested metrics must be skipped: %q", line)
	}
	if strings.Index(line, "coverage_score") > strings.Index(line, "total_outcomes") {
		t.Errorf("keys not sorted: %q", line)
	}
}

func TestMetricsLine_Empty(t *testing.T) {
	if line := metricsLine(map[string]any{}); line != "" {
		t.Errorf("line = %q", line)
	}
}
