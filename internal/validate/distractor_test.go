package validate

import (
	"fmt"
	"strings"
	"testing"
)

func quizJSON(questions ...string) string {
	return fmt.Sprintf(`{"questions":[%s]}`, strings.Join(questions, ","))
}

// question builds a question JSON object; the first option is the
// correct answer unless correctCount overrides it.
func question(answer string, distractors ...string) string {
	opts := []string{fmt.Sprintf(`{"text":%q,"is_correct":true}`, answer)}
	for _, d := range distractors {
		opts = append(opts, fmt.Sprintf(`{"text":%q,"is_correct":false}`, d))
	}
	return fmt.Sprintf(`{"question_text":"q?","options":[%s]}`, strings.Join(opts, ","))
}

func TestDistractor_MalformedJSON(t *testing.T) {
	r := NewDistractorQualityValidator().ValidateQuiz(`{not json`)

	if r.IsValid {
		t.Error("expected invalid result")
	}
	if len(r.Errors) != 1 || r.Errors[0] != "Invalid quiz content: malformed JSON" {
		t.Errorf("errors = %v", r.Errors)
	}
	if r.Metrics["distractor_quality_score"] != 0 {
		t.Errorf("distractor_quality_score = %v", r.Metrics["distractor_quality_score"])
	}
}

func TestDistractor_MissingQuestionsField(t *testing.T) {
	r := NewDistractorQualityValidator().ValidateQuiz(`{"items":[]}`)

	if len(r.Errors) != 1 || r.Errors[0] != "Invalid quiz content: missing 'questions' field" {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestDistractor_MultipleCorrectAnswers(t *testing.T) {
	q := `{"question_text":"q?","options":[
		{"text":"first right answer","is_correct":true},
		{"text":"second right answer","is_correct":true},
		{"text":"wrong answer text","is_correct":false}]}`
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(q))

	if len(r.Errors) != 1 || r.Errors[0] != "Q1: Multiple correct answers (found 2)" {
		t.Errorf("errors = %v", r.Errors)
	}
	if r.Metrics["flagged_questions"] != 1 {
		t.Errorf("flagged_questions = %v", r.Metrics["flagged_questions"])
	}
}

func TestDistractor_NoCorrectAnswer(t *testing.T) {
	q := `{"question_text":"q?","options":[
		{"text":"not this option","is_correct":false},
		{"text":"nor this option","is_correct":false}]}`
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(q))

	if len(r.Errors) != 1 || r.Errors[0] != "Q1: No correct answer" {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestDistractor_SingleDistractorWarning(t *testing.T) {
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(
		question("the correct answer", "a plausible wrong one"),
	))

	if !r.IsValid {
		t.Errorf("single distractor is a warning, not an error: %v", r.Errors)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "Q1: Only 1 distractor (recommend 2-3)" {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestDistractor_SingleDistractorWarningWithBrokenCorrectness(t *testing.T) {
	// The distractor-count check is independent of the correct-answer
	// checks: a question with two correct answers and one distractor
	// reports both findings.
	q := `{"question_text":"q?","options":[
		{"text":"first right answer","is_correct":true},
		{"text":"second right answer","is_correct":true},
		{"text":"the lone wrong option","is_correct":false}]}`
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(q))

	if len(r.Errors) != 1 || r.Errors[0] != "Q1: Multiple correct answers (found 2)" {
		t.Errorf("errors = %v", r.Errors)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "Q1: Only 1 distractor (recommend 2-3)" {
		t.Errorf("warnings = %v", r.Warnings)
	}

	// Same for zero correct answers.
	q = `{"question_text":"q?","options":[
		{"text":"not this option","is_correct":false}]}`
	r = NewDistractorQualityValidator().ValidateQuiz(quizJSON(q))

	if len(r.Errors) != 1 || r.Errors[0] != "Q1: No correct answer" {
		t.Errorf("errors = %v", r.Errors)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "Q1: Only 1 distractor (recommend 2-3)" {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestDistractor_SimilarityBoundary(t *testing.T) {
	answer := strings.Repeat("a", 20)

	// 3 substitutions in 20 chars: similarity 0.85, exactly at the
	// threshold, so it passes.
	atThreshold := "bbb" + strings.Repeat("a", 17)
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(
		question(answer, atThreshold, "completely different option"),
	))
	if len(r.Errors) != 0 {
		t.Errorf("similarity exactly at threshold must pass: %v", r.Errors)
	}

	// 2 substitutions in 20 chars: similarity 0.90, flagged.
	aboveThreshold := "bb" + strings.Repeat("a", 18)
	r = NewDistractorQualityValidator().ValidateQuiz(quizJSON(
		question(answer, aboveThreshold, "completely different option"),
	))
	if len(r.Errors) != 1 || !strings.Contains(r.Errors[0], "too similar to the correct answer") {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestDistractor_SimilarityIsCaseInsensitive(t *testing.T) {
	answer := strings.Repeat("a", 20)
	shouted := strings.ToUpper(answer)
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(
		question(answer, shouted, "completely different option"),
	))

	if len(r.Errors) != 1 || !strings.Contains(r.Errors[0], "too similar") {
		t.Errorf("case-changed duplicate must be flagged: %v", r.Errors)
	}
}

func TestDistractor_LengthBoundary(t *testing.T) {
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(
		question("the correct answer", "fives", "another wrong option"),
	))
	if len(r.Errors) != 0 {
		t.Errorf("5-char distractor must pass: %v", r.Errors)
	}

	r = NewDistractorQualityValidator().ValidateQuiz(quizJSON(
		question("the correct answer", "four", "another wrong option"),
	))
	if len(r.Errors) != 1 || r.Errors[0] != `Q1: Distractor "four" is implausibly short (under 5 characters)` {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestDistractor_QualityScore(t *testing.T) {
	good := question("the correct answer", "a plausible wrong one", "another wrong option")
	bad := question("the correct answer", "zap", "another wrong option")
	r := NewDistractorQualityValidator().ValidateQuiz(quizJSON(good, good, bad))

	if r.Metrics["total_questions"] != 3 {
		t.Errorf("total_questions = %v", r.Metrics["total_questions"])
	}
	if r.Metrics["flagged_questions"] != 1 {
		t.Errorf("flagged_questions = %v", r.Metrics["flagged_questions"])
	}
	// 2 of 3 clean: 67 after rounding.
	if r.Metrics["distractor_quality_score"] != 67 {
		t.Errorf("distractor_quality_score = %v", r.Metrics["distractor_quality_score"])
	}
}

func TestDistractor_EmptyQuestionList(t *testing.T) {
	r := NewDistractorQualityValidator().ValidateQuiz(`{"questions":[]}`)

	if !r.IsValid {
		t.Errorf("empty question list must pass: %v", r.Errors)
	}
	if r.Metrics["distractor_quality_score"] != 0 {
		t.Errorf("distractor_quality_score = %v", r.Metrics["distractor_quality_score"])
	}
}
