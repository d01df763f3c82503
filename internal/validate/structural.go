package validate

import "github.com/meera/courseforge/internal/coursetree"

// StructuralValidator checks the basic shape of the course tree: a
// publishable course needs at least one module, and empty modules are
// flagged as likely authoring leftovers.
type StructuralValidator struct{}

func NewStructuralValidator() *StructuralValidator { return &StructuralValidator{} }

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *coursetree.Course) *Result {
	r := NewResult()

	if len(c.Modules) == 0 {
		r.Error("Course has no modules")
	}
	for _, m := range c.Modules {
		if len(m.Lessons) == 0 {
			r.Warn("Module %q has no lessons", m.Title)
		}
	}

	r.Metrics["total_modules"] = len(c.Modules)
	r.Metrics["total_activities"] = len(coursetree.Flatten(c))
	return r
}
