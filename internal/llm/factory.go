package llm

import (
	"context"
	"fmt"

	"github.com/meera/courseforge/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and audit middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		// OpenRouter is wire-compatible with OpenAI.
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller, then retry, then audit, then the base
	// provider, so each retry attempt is recorded as its own event.
	audited := WithAudit(base, cfg.Provider, eventRepo)
	return WithRetry(audited, cfg.Retry), nil
}
