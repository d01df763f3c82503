package validate

import "github.com/meera/courseforge/internal/coursetree"

// Runner executes the full validator suite over a course.
type Runner struct {
	structural *StructuralValidator
	coverage   *OutcomeCoverageValidator
	blooms     *BloomDiversityValidator
	distractor *DistractorQualityValidator
}

func NewRunner() *Runner {
	return &Runner{
		structural: NewStructuralValidator(),
		coverage:   NewOutcomeCoverageValidator(),
		blooms:     NewBloomDiversityValidator(),
		distractor: NewDistractorQualityValidator(),
	}
}

// Validators returns the suite in report order.
func (r *Runner) Validators() []CourseValidator {
	return []CourseValidator{r.structural, r.coverage, r.blooms, r.distractor}
}

// ValidateCourse runs every validator and returns results keyed by
// validator name. All validators always run; an early failure does not
// hide later findings.
func (r *Runner) ValidateCourse(c *coursetree.Course) map[string]*Result {
	out := make(map[string]*Result, 4)
	for _, v := range r.Validators() {
		out[v.Name()] = v.Validate(c)
	}
	return out
}

// IsPublishable reports whether every validator passed.
func (r *Runner) IsPublishable(c *coursetree.Course) bool {
	for _, res := range r.ValidateCourse(c) {
		if !res.IsValid {
			return false
		}
	}
	return true
}
