package contentgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/llm"
)

func readingInput() GenerateInput {
	return GenerateInput{
		CourseTitle: "Concurrency in Go",
		ModuleTitle: "Channels",
		LessonTitle: "Basics",
		Activity: &coursetree.Activity{
			ID:    "a1",
			Title: "Channel Fundamentals",
			Type:  coursetree.TypeReading,
			Bloom: coursetree.BloomUnderstand,
		},
		Outcomes: []coursetree.LearningOutcome{
			{ID: "o1", Behavior: "use channels to coordinate goroutines", Condition: "given a worker pool"},
		},
	}
}

func quizInput() GenerateInput {
	in := readingInput()
	in.Activity = &coursetree.Activity{
		ID:    "a2",
		Title: "Channels Quiz",
		Type:  coursetree.TypeQuiz,
		Bloom: coursetree.BloomApply,
	}
	return in
}

const goodQuizJSON = `{"questions":[{"question_text":"Which primitive blocks until a receiver is ready?","options":[{"text":"an unbuffered channel send","is_correct":true},{"text":"a mutex lock acquisition","is_correct":false},{"text":"an atomic store operation","is_correct":false}]}]}`

func TestGenerate_Reading(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"content":"Channels carry values between goroutines."}`)},
	)
	g := New(mock, DefaultConfig())

	content, err := g.Generate(context.Background(), readingInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "Channels carry values between goroutines." {
		t.Errorf("content = %q", content)
	}

	call := mock.Calls[0]
	if call.Purpose != llm.PurposeReadingGen {
		t.Errorf("purpose = %q", call.Purpose)
	}
	req := call.Request
	if req.Schema != ReadingSchema {
		t.Error("expected reading schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Course: Concurrency in Go") {
		t.Errorf("prompt missing course context:\n%s", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "use channels to coordinate goroutines") {
		t.Errorf("prompt missing outcome:\n%s", req.Messages[0].Content)
	}
}

func TestGenerate_EmptyReadingRejected(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"content":"   "}`)},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), readingInput()); err == nil {
		t.Fatal("expected error for blank content")
	}
}

func TestGenerate_QuizPassesGate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(goodQuizJSON)},
	)
	g := New(mock, DefaultConfig())

	content, err := g.Generate(context.Background(), quizInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	quiz, err := coursetree.ParseQuiz(content)
	if err != nil {
		t.Fatalf("stored quiz content must parse: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Errorf("questions = %d", len(quiz.Questions))
	}
	if mock.Calls[0].Purpose != llm.PurposeQuizGen {
		t.Errorf("purpose = %q", mock.Calls[0].Purpose)
	}
	if mock.Calls[0].Request.Schema != QuizSchema {
		t.Error("expected quiz schema on the request")
	}
}

func TestGenerate_QuizFailsGate(t *testing.T) {
	// Two correct answers: the distractor gate must reject it.
	bad := `{"questions":[{"question_text":"q?","options":[{"text":"first correct option","is_correct":true},{"text":"second correct option","is_correct":true}]}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), quizInput())
	if err == nil {
		t.Fatal("expected gate failure")
	}
	if !strings.Contains(err.Error(), "Multiple correct answers") {
		t.Errorf("error should carry the gate findings: %v", err)
	}
}

func TestBuildUserMessage_QuizIncludesQuestionCount(t *testing.T) {
	msg := buildUserMessage(quizInput(), DefaultConfig())
	if !strings.Contains(msg, "Question count: 5") {
		t.Errorf("message missing question count:\n%s", msg)
	}
	if !strings.Contains(msg, "Bloom's level: apply") {
		t.Errorf("message missing Bloom's level:\n%s", msg)
	}
}

func TestBuildOutcomes_EmptyAndCapped(t *testing.T) {
	if got := buildOutcomes(nil, 3); !strings.Contains(got, "None listed") {
		t.Errorf("empty outcomes = %q", got)
	}

	outcomes := []coursetree.LearningOutcome{
		{Behavior: "first"}, {Behavior: "second"}, {Behavior: "third"},
	}
	got := buildOutcomes(outcomes, 2)
	if strings.Contains(got, "third") {
		t.Errorf("expected cap at 2 outcomes, got:\n%s", got)
	}
}

func TestWordCount(t *testing.T) {
	if n := WordCount("one two  three\nfour"); n != 4 {
		t.Errorf("word count = %d", n)
	}
	if n := WordCount(""); n != 0 {
		t.Errorf("word count of empty = %d", n)
	}
}
