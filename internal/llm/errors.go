package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies a failed request for retry decisions and error
// reporting.
type ErrorKind int

const (
	// KindTransport covers network failures, 5xx responses, and anything
	// the provider SDK surfaces that we cannot classify further.
	KindTransport ErrorKind = iota

	// KindRateLimit is a 429; RetryAfter may carry the provider's hint.
	KindRateLimit

	// KindBadOutput means the model answered but the content failed the
	// requested schema (or was empty).
	KindBadOutput

	// KindTruncated means the response hit the token budget. Retrying
	// does not help; a bigger budget does.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimit:
		return "rate_limit"
	case KindBadOutput:
		return "bad_output"
	case KindTruncated:
		return "truncated"
	default:
		return "transport"
	}
}

// RequestError is the one error type that crosses the provider
// boundary. Output holds the offending content when the model produced
// any.
type RequestError struct {
	Kind       ErrorKind
	RetryAfter time.Duration
	Output     json.RawMessage
	Err        error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindRateLimit:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
		}
		return fmt.Sprintf("rate limited: %v", e.Err)
	case KindBadOutput:
		return fmt.Sprintf("model output rejected: %v", e.Err)
	case KindTruncated:
		return "model output truncated at the token budget"
	default:
		if e.Err != nil {
			return fmt.Sprintf("provider request failed: %v", e.Err)
		}
		return "provider request failed"
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

func transportErr(err error) *RequestError {
	return &RequestError{Kind: KindTransport, Err: err}
}

func rateLimitErr(err error, after time.Duration) *RequestError {
	return &RequestError{Kind: KindRateLimit, RetryAfter: after, Err: err}
}

func badOutputErr(output json.RawMessage, err error) *RequestError {
	return &RequestError{Kind: KindBadOutput, Output: output, Err: err}
}

func truncatedErr(output json.RawMessage) *RequestError {
	return &RequestError{Kind: KindTruncated, Output: output}
}

// KindOf classifies any error. Errors that did not originate in this
// package count as transport failures, which keeps them retryable.
func KindOf(err error) ErrorKind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindTransport
}
