package validate

import "github.com/meera/courseforge/internal/coursetree"

const (
	// minRobustCoverage is the number of mapped activities below which
	// an outcome's coverage is considered fragile.
	minRobustCoverage = 2

	// behaviorLabelMax bounds outcome-behavior text in findings.
	behaviorLabelMax = 50
)

// OutcomeCoverageValidator checks that every learning outcome is
// exercised by activities and that every activity serves some outcome.
// Stale mappings (ids no longer in the tree) are ignored, not errors.
type OutcomeCoverageValidator struct{}

func NewOutcomeCoverageValidator() *OutcomeCoverageValidator { return &OutcomeCoverageValidator{} }

func (v *OutcomeCoverageValidator) Name() string { return "outcome_coverage" }

func (v *OutcomeCoverageValidator) Validate(c *coursetree.Course) *Result {
	r := NewResult()
	idx := coursetree.BuildIndex(c)
	totalActivities := idx.Len()

	if len(c.Outcomes) == 0 {
		r.Warn("no learning outcomes defined")
		r.Metrics["coverage_score"] = 0.0
		r.Metrics["unmapped_outcomes"] = 0
		r.Metrics["low_coverage_outcomes"] = 0
		r.Metrics["unmapped_activities"] = totalActivities
		r.Metrics["avg_activities_per_outcome"] = 0.0
		r.Metrics["total_outcomes"] = 0
		r.Metrics["total_activities"] = totalActivities
		return r
	}

	covered := 0
	lowCoverage := 0
	unmappedOutcomes := 0
	totalMappings := 0
	mappedActivityIDs := map[string]bool{}

	for _, o := range c.Outcomes {
		// Count only mappings that resolve to a live activity.
		live := 0
		for _, id := range o.MappedActivityIDs {
			if idx.Has(id) {
				live++
				mappedActivityIDs[id] = true
			}
		}
		totalMappings += live
		label := truncateLabel(o.Behavior, behaviorLabelMax)

		switch {
		case live == 0:
			unmappedOutcomes++
			r.Error("Unmapped outcome: %s", label)
		case live < minRobustCoverage:
			lowCoverage++
			r.Warn("Low coverage: outcome %q is mapped to only %d activity (recommend at least %d)",
				label, live, minRobustCoverage)
			covered++
		default:
			covered++
		}
	}

	unmappedActivities := 0
	for _, a := range idx.Activities() {
		if !mappedActivityIDs[a.ID] {
			unmappedActivities++
		}
	}
	if unmappedActivities > 0 {
		r.Warn("%d activities are not mapped to any learning outcome", unmappedActivities)
	}

	r.Metrics["coverage_score"] = round2(float64(covered) / float64(len(c.Outcomes)))
	r.Metrics["unmapped_outcomes"] = unmappedOutcomes
	r.Metrics["low_coverage_outcomes"] = lowCoverage
	r.Metrics["unmapped_activities"] = unmappedActivities
	r.Metrics["avg_activities_per_outcome"] = round1(float64(totalMappings) / float64(len(c.Outcomes)))
	r.Metrics["total_outcomes"] = len(c.Outcomes)
	r.Metrics["total_activities"] = totalActivities
	return r
}
