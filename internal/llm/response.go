package llm

import (
	"bytes"
	"encoding/json"
)

// finish turns a provider's raw output into a Response. All providers
// funnel through here: fence-wrapped JSON is unwrapped, a truncated
// response becomes a typed error instead of silently clipped content,
// and schema'd requests get their output checked.
func finish(req Request, content json.RawMessage, usage Usage, model, stopReason string) (*Response, error) {
	content = stripFences(content)

	if stopReason == "max_tokens" {
		return nil, truncatedErr(content)
	}

	if req.Schema != nil {
		if err := checkOutput(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stopReason,
	}, nil
}

// stripFences removes a markdown code fence around the payload. Models
// behind OpenAI-compatible gateways sometimes wrap their JSON in
// ```json fences even when a schema was requested.
func stripFences(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return raw
	}

	// Drop the opening fence line (``` or ```json).
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		trimmed = trimmed[i+1:]
	} else {
		return raw
	}

	trimmed = bytes.TrimSpace(trimmed)
	trimmed = bytes.TrimSuffix(trimmed, []byte("```"))
	return bytes.TrimSpace(trimmed)
}
