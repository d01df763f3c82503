package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/meera/courseforge/internal/store"
)

// maxTranscriptBytes caps stored request/response bodies. Courses with
// long readings would otherwise bloat the event table for no audit
// value beyond the head of the text.
const maxTranscriptBytes = 16 * 1024

// auditProvider records every request as an event in the store, tagged
// with the purpose from the context.
type auditProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
}

// WithAudit wraps a Provider with event recording. providerName is the
// configured provider ("anthropic", "openai", ...), kept separate from
// the model so usage can be grouped either way.
func WithAudit(p Provider, providerName string, events store.EventRepo) Provider {
	return &auditProvider{inner: p, provider: providerName, events: events}
}

func (a *auditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := a.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    a.provider,
		Model:       a.inner.ModelID(),
		Purpose:     string(PurposeFrom(ctx)),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: clip(transcript(req)),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = clip(string(resp.Content))
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Recording must never fail the generation itself.
	if logErr := a.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (a *auditProvider) ModelID() string {
	return a.inner.ModelID()
}

// transcript renders the request as readable sections for the event log.
func transcript(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "system> %s\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "%s> %s\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "schema %s> %s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}

func clip(s string) string {
	if len(s) <= maxTranscriptBytes {
		return s
	}
	return s[:maxTranscriptBytes] + "\n[clipped]"
}
