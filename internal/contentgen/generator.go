package contentgen

import "context"

// Generator produces activity content using an LLM provider.
type Generator interface {
	// Generate produces content for the input's activity. The returned
	// string is ready to store as the activity's Content: plain text for
	// readings, a quiz JSON payload for quizzes. Quiz output has already
	// passed the distractor-quality gate.
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
