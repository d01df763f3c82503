package contentgen

import (
	"fmt"
	"strings"

	"github.com/meera/courseforge/internal/coursetree"
)

const readingSystemPrompt = `You are an instructional designer writing course content for adult professional learners.

Rules:
- Write a single self-contained reading for the given activity, grounded in its course, module, and lesson context.
- Target the stated Bloom's taxonomy level: lower levels explain and illustrate, higher levels pose analysis and open problems.
- Address every listed learning outcome; do not introduce material unrelated to them.
- Use plain prose paragraphs. No markdown headings, bullet lists, or code fences unless the topic demands a short code example.
- Aim for 400-800 words.`

const quizSystemPrompt = `You are an assessment designer writing multiple-choice quizzes for adult professional learners.

Rules:
- Write questions that assess the listed learning outcomes at the stated Bloom's taxonomy level.
- Every question has 3-4 options with exactly one marked correct.
- Distractors must be plausible mistakes a learner would actually make, never throwaway options. Each distractor is at least 5 characters and clearly distinct in wording from the correct answer.
- Question stems are self-contained; avoid "all of the above" and negated stems.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits. The same message body serves both content shapes; the
// system prompt carries the shape-specific rules.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Course: %s\n", input.CourseTitle)
	if input.ModuleTitle != "" {
		fmt.Fprintf(&b, "Module: %s\n", input.ModuleTitle)
	}
	if input.LessonTitle != "" {
		fmt.Fprintf(&b, "Lesson: %s\n", input.LessonTitle)
	}
	fmt.Fprintf(&b, "Activity: %s\n", input.Activity.Title)
	fmt.Fprintf(&b, "Activity type: %s\n", input.Activity.Type)

	if input.Activity.Bloom != "" {
		fmt.Fprintf(&b, "Bloom's level: %s\n", input.Activity.Bloom)
	}

	if input.Activity.Type == coursetree.TypeQuiz {
		fmt.Fprintf(&b, "Question count: %d\n", cfg.QuizQuestionCount)
	}

	b.WriteString("\nLearning outcomes to cover:\n")
	b.WriteString(buildOutcomes(input.Outcomes, cfg.MaxOutcomes))

	return b.String()
}

// buildOutcomes formats the mapped outcomes for the prompt, respecting
// the max limit.
func buildOutcomes(outcomes []coursetree.LearningOutcome, max int) string {
	if len(outcomes) == 0 {
		return "None listed; infer the intent from the activity title."
	}

	if max > 0 && len(outcomes) > max {
		outcomes = outcomes[:max]
	}

	var b strings.Builder
	for i, o := range outcomes {
		fmt.Fprintf(&b, "%d. %s", i+1, o.Behavior)
		if o.Condition != "" {
			fmt.Fprintf(&b, " (%s)", o.Condition)
		}
		if o.Degree != "" {
			fmt.Fprintf(&b, " to the standard: %s", o.Degree)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
