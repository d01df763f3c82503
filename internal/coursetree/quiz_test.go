package coursetree

import (
	"errors"
	"testing"
)

func TestParseQuiz_Valid(t *testing.T) {
	q, err := ParseQuiz(`{"questions":[{"question_text":"2+2?","options":[{"text":"4","is_correct":true},{"text":"5","is_correct":false}]}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(q.Questions))
	}
	if q.Questions[0].CorrectCount() != 1 {
		t.Errorf("correct count = %d", q.Questions[0].CorrectCount())
	}
	d := q.Questions[0].Distractors()
	if len(d) != 1 || d[0].Text != "5" {
		t.Errorf("distractors = %v", d)
	}
}

func TestParseQuiz_MalformedJSON(t *testing.T) {
	_, err := ParseQuiz(`{not json`)
	if !errors.Is(err, ErrQuizJSON) {
		t.Fatalf("expected ErrQuizJSON, got %v", err)
	}
}

func TestParseQuiz_MissingQuestions(t *testing.T) {
	_, err := ParseQuiz(`{"items":[]}`)
	if !errors.Is(err, ErrQuizNoQuestions) {
		t.Fatalf("expected ErrQuizNoQuestions, got %v", err)
	}
}

func TestParseQuiz_EmptyQuestions(t *testing.T) {
	q, err := ParseQuiz(`{"questions":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Questions) != 0 {
		t.Errorf("expected 0 questions, got %d", len(q.Questions))
	}
}
