package contentgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/llm"
	"github.com/meera/courseforge/internal/validate"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider   llm.Provider
	config     Config
	distractor *validate.DistractorQualityValidator
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider:   provider,
		config:     cfg,
		distractor: validate.NewDistractorQualityValidator(),
	}
}

// readingOutput is the raw LLM response for reading content.
type readingOutput struct {
	Content string `json:"content"`
}

// Generate produces content for the input's activity.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (string, error) {
	if input.Activity.Type == coursetree.TypeQuiz {
		return g.generateQuiz(ctx, input)
	}
	return g.generateReading(ctx, input)
}

func (g *LLMGenerator) generateReading(ctx context.Context, input GenerateInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeReadingGen)

	req := llm.Request{
		System: readingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      ReadingSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw readingOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if strings.TrimSpace(raw.Content) == "" {
		return "", fmt.Errorf("LLM returned empty reading content")
	}

	return raw.Content, nil
}

// generateQuiz produces a quiz payload and gates it through the
// distractor-quality validator. A quiz that fails the gate is never
// stored on the activity; the author re-runs generation instead of
// reviewing broken questions.
func (g *LLMGenerator) generateQuiz(ctx context.Context, input GenerateInput) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	content := string(resp.Content)
	if result := g.distractor.ValidateQuiz(content); !result.IsValid {
		return "", fmt.Errorf("generated quiz failed quality checks: %s",
			strings.Join(result.Errors, "; "))
	}

	return content, nil
}

// WordCount counts whitespace-separated words in generated content, for
// the activity's word_count field.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
