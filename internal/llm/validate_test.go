package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name:        "quiz-option",
		Description: "A single quiz answer option",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":       map[string]any{"type": "string"},
				"is_correct": map[string]any{"type": "boolean"},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"text", "is_correct"},
		},
	}
}

func assertBadOutput(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got: %T", err)
	}
	if reqErr.Kind != KindBadOutput {
		t.Fatalf("expected bad-output kind, got: %v", reqErr.Kind)
	}
}

func TestCheckOutput_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"text":"a buffered channel","is_correct":false,"difficulty":"medium"}`)
	if err := checkOutput(quizSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckOutput_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"text":"a mutex","is_correct":true}`)
	if err := checkOutput(quizSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestCheckOutput_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"a waitgroup"}`)
	assertBadOutput(t, checkOutput(quizSchema(), raw))
}

func TestCheckOutput_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"a mutex","is_correct":"yes"}`)
	assertBadOutput(t, checkOutput(quizSchema(), raw))
}

func TestCheckOutput_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"text":"a mutex","is_correct":true,"difficulty":"brutal"}`)
	assertBadOutput(t, checkOutput(quizSchema(), raw))
}

func TestCheckOutput_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	assertBadOutput(t, checkOutput(quizSchema(), raw))
}

func TestCheckOutput_CachesPerSchemaInstance(t *testing.T) {
	schema := quizSchema()
	raw := json.RawMessage(`{"text":"a mutex","is_correct":true}`)
	for i := 0; i < 3; i++ {
		if err := checkOutput(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
}
