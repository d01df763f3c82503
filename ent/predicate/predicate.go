// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CourseSnapshot is the predicate function for coursesnapshot builders.
type CourseSnapshot func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// TransitionEvent is the predicate function for transitionevent builders.
type TransitionEvent func(*sql.Selector)

// ValidationRun is the predicate function for validationrun builders.
type ValidationRun func(*sql.Selector)
