package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/meera/courseforge/internal/coursetree"
)

const (
	// similarityThreshold is the normalized Levenshtein similarity above
	// which a distractor is too close to the correct answer. Exactly at
	// the threshold passes.
	similarityThreshold = 0.85

	// minDistractorLen is the shortest plausible distractor text.
	minDistractorLen = 5

	recommendedDistractors = 2
)

// DistractorQualityValidator checks the answer options of quiz
// activities: each question needs exactly one correct answer, and its
// distractors must be plausible (long enough, not near-duplicates of
// the answer).
type DistractorQualityValidator struct{}

func NewDistractorQualityValidator() *DistractorQualityValidator {
	return &DistractorQualityValidator{}
}

func (v *DistractorQualityValidator) Name() string { return "distractor_quality" }

// ValidateQuiz checks a single quiz payload. CLI callers use it to vet
// freshly generated quiz content before it lands on an activity.
func (v *DistractorQualityValidator) ValidateQuiz(content string) *Result {
	r := NewResult()

	quiz, err := coursetree.ParseQuiz(content)
	if err != nil {
		if errors.Is(err, coursetree.ErrQuizNoQuestions) {
			r.Error("Invalid quiz content: missing 'questions' field")
		} else {
			r.Error("Invalid quiz content: malformed JSON")
		}
		r.Metrics["total_questions"] = 0
		r.Metrics["flagged_questions"] = 0
		r.Metrics["distractor_quality_score"] = 0
		return r
	}

	flagged := 0
	for i, q := range quiz.Questions {
		label := fmt.Sprintf("Q%d", i+1)
		issuesBefore := len(r.Errors) + len(r.Warnings)

		distractors := q.Distractors()

		switch n := q.CorrectCount(); {
		case n > 1:
			r.Error("%s: Multiple correct answers (found %d)", label, n)
		case n == 0:
			r.Error("%s: No correct answer", label)
		default:
			var answer string
			for _, o := range q.Options {
				if o.IsCorrect {
					answer = o.Text
					break
				}
			}
			for _, d := range distractors {
				if tooSimilar(d.Text, answer) {
					r.Error("%s: Distractor %q is too similar to the correct answer", label, d.Text)
				}
				if len(d.Text) < minDistractorLen {
					r.Error("%s: Distractor %q is implausibly short (under %d characters)",
						label, d.Text, minDistractorLen)
				}
			}
		}

		// Independent of the correct-answer count.
		if len(distractors) == 1 {
			r.Warn("%s: Only 1 distractor (recommend %d-3)", label, recommendedDistractors)
		}

		if len(r.Errors)+len(r.Warnings) > issuesBefore {
			flagged++
		}
	}

	total := len(quiz.Questions)
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(total-flagged) / float64(total)))
	}
	r.Metrics["total_questions"] = total
	r.Metrics["flagged_questions"] = flagged
	r.Metrics["distractor_quality_score"] = score
	return r
}

// Validate runs ValidateQuiz over every quiz activity in the course and
// merges the findings, prefixing each with the quiz title.
func (v *DistractorQualityValidator) Validate(c *coursetree.Course) *Result {
	r := NewResult()

	totalQuizzes := 0
	flaggedQuizzes := 0
	for _, a := range coursetree.Flatten(c) {
		if a.Type != coursetree.TypeQuiz {
			continue
		}
		totalQuizzes++
		qr := v.ValidateQuiz(a.Content)
		prefix := fmt.Sprintf("[%s] ", a.Title)
		for _, e := range qr.Errors {
			r.Error("%s", prefix+e)
		}
		for _, w := range qr.Warnings {
			r.Warn("%s", prefix+w)
		}
		if len(qr.Errors) > 0 || len(qr.Warnings) > 0 {
			flaggedQuizzes++
		}
	}

	if totalQuizzes == 0 {
		r.Suggest("no quiz activities to validate")
		r.Metrics["total_quizzes"] = 0
		r.Metrics["flagged_quizzes"] = 0
		r.Metrics["overall_quality_score"] = 1.0
		return r
	}

	r.Metrics["total_quizzes"] = totalQuizzes
	r.Metrics["flagged_quizzes"] = flaggedQuizzes
	r.Metrics["overall_quality_score"] = round2(1 - float64(flaggedQuizzes)/float64(totalQuizzes))
	return r
}

// tooSimilar compares case-insensitively; at exactly the threshold the
// distractor passes.
func tooSimilar(distractor, answer string) bool {
	sim := levenshtein.Similarity(strings.ToLower(distractor), strings.ToLower(answer), nil)
	return sim > similarityThreshold
}
