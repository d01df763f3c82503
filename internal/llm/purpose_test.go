package llm

import (
	"context"
	"testing"
)

func TestPurposeFrom_DefaultsToUnknown(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != PurposeUnknown {
		t.Fatalf("expected unknown purpose, got %q", got)
	}
}

func TestPurposeFrom_RoundTrip(t *testing.T) {
	ctx := WithPurpose(context.Background(), PurposeQuizGen)
	if got := PurposeFrom(ctx); got != PurposeQuizGen {
		t.Fatalf("expected quiz purpose, got %q", got)
	}
}

func TestProfile_QuizRunsCoolerThanReading(t *testing.T) {
	quiz := PurposeQuizGen.Profile()
	reading := PurposeReadingGen.Profile()
	if quiz.Temperature >= reading.Temperature {
		t.Fatalf("quiz temperature %v should be below reading %v", quiz.Temperature, reading.Temperature)
	}
}

func TestNormalize_FillsDefaults(t *testing.T) {
	req := Request{}.normalize(PurposeReadingGen)
	prof := PurposeReadingGen.Profile()
	if req.MaxTokens != prof.MaxTokens {
		t.Fatalf("expected max tokens %d, got %d", prof.MaxTokens, req.MaxTokens)
	}
	if req.Temperature != prof.Temperature {
		t.Fatalf("expected temperature %v, got %v", prof.Temperature, req.Temperature)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	req := Request{MaxTokens: 4096, Temperature: 0.9}.normalize(PurposeQuizGen)
	if req.MaxTokens != 4096 || req.Temperature != 0.9 {
		t.Fatalf("explicit values must survive: %+v", req)
	}
}

func TestMock_ScriptedByPurpose(t *testing.T) {
	mock := NewMockProvider()
	mock.Script(PurposeQuizGen, MockResponse{Content: []byte(`{"quiz":true}`)})
	mock.Script(PurposeReadingGen, MockResponse{Content: []byte(`{"reading":true}`)})

	ctx := WithPurpose(context.Background(), PurposeReadingGen)
	resp, err := mock.Generate(ctx, Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"reading":true}` {
		t.Fatalf("expected the reading script, got: %s", resp.Content)
	}
	if mock.Calls[0].Purpose != PurposeReadingGen {
		t.Fatalf("call should record its purpose, got %q", mock.Calls[0].Purpose)
	}
}

func TestMock_EmptyQueueFails(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from an unscripted call")
	}
	if KindOf(err) != KindTransport {
		t.Fatalf("expected transport kind, got: %v", KindOf(err))
	}
}
