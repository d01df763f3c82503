package coursetree

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Quiz parse failures. Consumers surface these as validation errors, not
// exceptions; use errors.Is to distinguish the two cases.
var (
	ErrQuizJSON        = errors.New("malformed JSON")
	ErrQuizNoQuestions = errors.New("missing 'questions' field")
)

// Quiz is the structured payload embedded in a quiz activity's Content.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	QuestionText string       `json:"question_text"`
	Options      []QuizOption `json:"options"`
}

// QuizOption is one answer option. Options with IsCorrect false are
// distractors.
type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// CorrectCount returns the number of options marked correct.
func (q QuizQuestion) CorrectCount() int {
	n := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}

// Distractors returns the options not marked correct, in order.
func (q QuizQuestion) Distractors() []QuizOption {
	var out []QuizOption
	for _, o := range q.Options {
		if !o.IsCorrect {
			out = append(out, o)
		}
	}
	return out
}

// ParseQuiz decodes a quiz activity's content payload. It returns
// ErrQuizJSON if the payload is not valid JSON and ErrQuizNoQuestions if
// the top-level object lacks a "questions" array.
func ParseQuiz(content string) (*Quiz, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuizJSON, err)
	}
	raw, ok := probe["questions"]
	if !ok {
		return nil, ErrQuizNoQuestions
	}
	var questions []QuizQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuizJSON, err)
	}
	return &Quiz{Questions: questions}, nil
}
