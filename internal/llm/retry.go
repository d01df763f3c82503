package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryingProvider retries transient failures. Generation runs in
// batches over whole courses, so the policy leans conservative: rate
// limits and transport failures back off and retry, a schema-failing
// output gets one regeneration, and truncation fails fast because only
// a bigger token budget fixes it.
type retryingProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with the retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryingProvider{inner: p, config: cfg}
}

func (r *retryingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	regenerated := false
	base := r.config.InitialWait

	var lastErr error
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt >= r.config.MaxAttempts || !r.retryable(err, &regenerated) {
			return nil, lastErr
		}

		if err := sleep(ctx, r.delay(err, base)); err != nil {
			return nil, err
		}
		base = min(time.Duration(float64(base)*r.config.Multiplier), r.config.MaxWait)
	}
}

func (r *retryingProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *retryingProvider) retryable(err error, regenerated *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	switch KindOf(err) {
	case KindTruncated:
		return false
	case KindBadOutput:
		// One regeneration; a model that failed the schema twice will not
		// pass on the third run.
		if *regenerated {
			return false
		}
		*regenerated = true
		return true
	default:
		// Rate limits, transport failures, and unclassified errors.
		return true
	}
}

// delay picks the next wait. The provider's retry-after hint wins;
// otherwise full jitter over the current backoff window, which spreads
// batch-generation workers apart instead of letting them re-collide.
func (r *retryingProvider) delay(err error, base time.Duration) time.Duration {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.RetryAfter > 0 {
		return reqErr.RetryAfter
	}
	if base <= 0 {
		return 0
	}
	return base/2 + rand.N(base/2+1)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
