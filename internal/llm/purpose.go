package llm

import "context"

// Purpose labels what a request generates. It travels on the context so
// middleware can tag events and providers can pick generation defaults
// without threading another parameter through every call.
type Purpose string

const (
	PurposeReadingGen Purpose = "reading-gen"
	PurposeQuizGen    Purpose = "quiz-gen"
	PurposeUnknown    Purpose = "unknown"
)

// GenProfile is the default request shape for one purpose.
type GenProfile struct {
	Temperature float64
	MaxTokens   int
}

// Profile returns the generation defaults for the purpose. Quiz
// generation runs cooler than prose: option wording has to stay precise
// for the distractor checks, while readings benefit from variety.
func (p Purpose) Profile() GenProfile {
	switch p {
	case PurposeReadingGen:
		return GenProfile{Temperature: 0.7, MaxTokens: 2048}
	case PurposeQuizGen:
		return GenProfile{Temperature: 0.3, MaxTokens: 2048}
	default:
		return GenProfile{Temperature: 0.5, MaxTokens: 1024}
	}
}

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose attaches the purpose to the context.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, p)
}

// PurposeFrom extracts the purpose, defaulting to PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
