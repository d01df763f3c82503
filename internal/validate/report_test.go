package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/courseforge/internal/coursetree"
)

// publishableCourse assembles a course that passes every validator:
// two outcomes each mapped to two activities, two Bloom's levels with
// no dominance, and one well-formed quiz.
func publishableCourse() *coursetree.Course {
	quizContent := `{"questions":[{"question_text":"Which primitive blocks until ready?","options":[{"text":"an unbuffered channel send","is_correct":true},{"text":"a mutex lock acquisition","is_correct":false},{"text":"an atomic store operation","is_correct":false}]}]}`
	return &coursetree.Course{
		ID:    "course-1",
		Title: "Concurrency in Go",
		Outcomes: []coursetree.LearningOutcome{
			{ID: "o1", Behavior: "use channels to coordinate goroutines", MappedActivityIDs: []string{"a1", "a2"}},
			{ID: "o2", Behavior: "detect and fix data races", MappedActivityIDs: []string{"a3", "a4"}},
		},
		Modules: []coursetree.Module{
			{ID: "m1", Title: "Channels", Lessons: []coursetree.Lesson{
				{ID: "l1", Title: "Basics", Activities: []coursetree.Activity{
					{ID: "a1", Title: "Channel Intro", Type: coursetree.TypeVideo, Bloom: coursetree.BloomUnderstand},
					{ID: "a2", Title: "Channel Patterns", Type: coursetree.TypeReading, Bloom: coursetree.BloomApply},
				}},
			}},
			{ID: "m2", Title: "Races", Lessons: []coursetree.Lesson{
				{ID: "l2", Title: "Detection", Activities: []coursetree.Activity{
					{ID: "a3", Title: "Race Lab", Type: coursetree.TypeLab, Bloom: coursetree.BloomAnalyze},
					{ID: "a4", Title: "Channels Quiz", Type: coursetree.TypeQuiz, Bloom: coursetree.BloomApply, Content: quizContent},
				}},
			}},
		},
	}
}

func TestRunner_ValidateCourseKeys(t *testing.T) {
	results := NewRunner().ValidateCourse(publishableCourse())

	require.Len(t, results, 4)
	for _, name := range []string{"structural", "outcome_coverage", "bloom_diversity", "distractor_quality"} {
		require.Contains(t, results, name)
	}
}

func TestRunner_IsPublishable(t *testing.T) {
	c := publishableCourse()
	results := NewRunner().ValidateCourse(c)
	for name, r := range results {
		assert.True(t, r.IsValid, "%s: errors=%v", name, r.Errors)
	}
	assert.True(t, NewRunner().IsPublishable(c))
}

func TestRunner_NotPublishableOnAnyError(t *testing.T) {
	c := publishableCourse()
	c.Outcomes = append(c.Outcomes, coursetree.LearningOutcome{
		ID: "o3", Behavior: "an outcome nothing teaches",
	})

	assert.False(t, NewRunner().IsPublishable(c))
}

func TestRunner_DistractorMergePrefixesQuizTitle(t *testing.T) {
	c := publishableCourse()
	c.Modules[1].Lessons[0].Activities[1].Content = `{"questions":[{"question_text":"q?","options":[{"text":"first correct option","is_correct":true},{"text":"second correct option","is_correct":true}]}]}`

	r := NewRunner().ValidateCourse(c)["distractor_quality"]
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "[Channels Quiz] Q1: Multiple correct answers (found 2)", r.Errors[0])
	assert.Equal(t, 1, r.Metrics["flagged_quizzes"])
	assert.Equal(t, 0.0, r.Metrics["overall_quality_score"])
}

func TestRunner_NoQuizzes(t *testing.T) {
	c := publishableCourse()
	c.Modules[1].Lessons[0].Activities[1].Type = coursetree.TypeReading
	c.Modules[1].Lessons[0].Activities[1].Content = "plain reading text"

	r := NewRunner().ValidateCourse(c)["distractor_quality"]
	assert.True(t, r.IsValid)
	require.Len(t, r.Suggestions, 1)
	assert.Equal(t, "no quiz activities to validate", r.Suggestions[0])
	assert.Equal(t, 1.0, r.Metrics["overall_quality_score"])
}

func TestRunner_Idempotent(t *testing.T) {
	c := publishableCourse()
	runner := NewRunner()

	first, err := json.Marshal(runner.ValidateCourse(c))
	require.NoError(t, err)
	second, err := json.Marshal(runner.ValidateCourse(c))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
