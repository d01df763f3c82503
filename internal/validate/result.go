// Package validate implements course-quality validators: structural
// integrity, learning-outcome coverage, Bloom's-taxonomy diversity, and
// quiz distractor quality. Validators are read-only over the course tree
// and report through a shared Result shape.
package validate

import (
	"fmt"
	"math"

	"github.com/meera/courseforge/internal/coursetree"
)

// Result is the outcome of running one validator. Errors block
// publication; warnings and suggestions do not. Slices are always
// non-nil so a serialized result reads as [] rather than null.
type Result struct {
	IsValid     bool           `json:"is_valid"`
	Errors      []string       `json:"errors"`
	Warnings    []string       `json:"warnings"`
	Suggestions []string       `json:"suggestions"`
	Metrics     map[string]any `json:"metrics"`
}

// NewResult returns an empty passing result.
func NewResult() *Result {
	return &Result{
		IsValid:     true,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
		Metrics:     map[string]any{},
	}
}

// Error records a blocking finding and marks the result invalid.
func (r *Result) Error(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.IsValid = false
}

// Warn records a non-blocking finding.
func (r *Result) Warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Suggest records an improvement hint.
func (r *Result) Suggest(format string, args ...any) {
	r.Suggestions = append(r.Suggestions, fmt.Sprintf(format, args...))
}

// CourseValidator is one quality check over a whole course.
type CourseValidator interface {
	Name() string
	Validate(c *coursetree.Course) *Result
}

// truncateLabel shortens long free-text labels for findings so one
// verbose outcome does not swamp a report. Counted in runes so
// non-ASCII labels are never cut mid-character.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

func round1(f float64) float64 { return math.Round(f*10) / 10 }
