package contentgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// QuizQuestionCount is how many questions a generated quiz carries.
	QuizQuestionCount int

	// MaxOutcomes caps how many mapped outcomes go into the prompt.
	MaxOutcomes int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         2048,
		Temperature:       0.7,
		QuizQuestionCount: 5,
		MaxOutcomes:       6,
	}
}
