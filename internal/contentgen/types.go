// Package contentgen produces draft course content with an LLM and
// drives activities through the generating stage of their lifecycle.
package contentgen

import "github.com/meera/courseforge/internal/coursetree"

// GenerateInput is the context handed to the generator for one activity.
type GenerateInput struct {
	// CourseTitle, ModuleTitle and LessonTitle situate the activity in
	// the course so generated content stays on topic.
	CourseTitle string
	ModuleTitle string
	LessonTitle string

	// Activity is the target. Its Type selects the content shape and
	// its Bloom level steers the cognitive demand of the content.
	Activity *coursetree.Activity

	// Outcomes are the learning outcomes mapped to this activity.
	Outcomes []coursetree.LearningOutcome
}
