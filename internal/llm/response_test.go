package llm

import (
	"encoding/json"
	"testing"
)

func TestFinish_Truncation(t *testing.T) {
	_, err := finish(Request{}, json.RawMessage(`{"partial":`), Usage{}, "m", "max_tokens")
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindTruncated {
		t.Fatalf("expected truncation kind, got: %v", KindOf(err))
	}
}

func TestFinish_NilSchemaPassesRawText(t *testing.T) {
	resp, err := finish(Request{}, json.RawMessage(`anything goes`), Usage{}, "m", "end")
	if err != nil {
		t.Fatalf("nil schema must skip the output check, got: %v", err)
	}
	if string(resp.Content) != `anything goes` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestFinish_SchemaViolationRejected(t *testing.T) {
	req := Request{Schema: quizSchema()}
	_, err := finish(req, json.RawMessage(`{"text":"a mutex"}`), Usage{}, "m", "end")
	assertBadOutput(t, err)
}

func TestFinish_FencedJSONUnwrapped(t *testing.T) {
	fenced := json.RawMessage("```json\n{\"text\":\"a mutex\",\"is_correct\":true}\n```")
	req := Request{Schema: quizSchema()}
	resp, err := finish(req, fenced, Usage{}, "m", "end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"text":"a mutex","is_correct":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestStripFences_PlainJSONUntouched(t *testing.T) {
	raw := json.RawMessage(`{"ok":true}`)
	if got := stripFences(raw); string(got) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", got)
	}
}

func TestStripFences_BareFence(t *testing.T) {
	raw := json.RawMessage("```\n[1,2]\n```")
	if got := stripFences(raw); string(got) != `[1,2]` {
		t.Fatalf("unexpected content: %s", got)
	}
}
