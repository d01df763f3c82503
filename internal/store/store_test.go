package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestTransitionHistoryOrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	transitions := []TransitionEventData{
		{CourseID: "c1", ActivityID: "a1", FromState: "draft", ToState: "generating", Trigger: "generate"},
		{CourseID: "c1", ActivityID: "a1", FromState: "generating", ToState: "generated", Trigger: "generate"},
		{CourseID: "c2", ActivityID: "b1", FromState: "draft", ToState: "generating", Trigger: "cli"},
		{CourseID: "c1", ActivityID: "a1", FromState: "generated", ToState: "reviewed", Trigger: "review"},
	}
	for i, data := range transitions {
		if err := repo.AppendTransition(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := repo.TransitionHistory(ctx, "c1", QueryOpts{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 events for c1, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Sequence <= history[i-1].Sequence {
			t.Errorf("history not ordered: seq[%d]=%d seq[%d]=%d",
				i-1, history[i-1].Sequence, i, history[i].Sequence)
		}
	}
	if history[2].ToState != "reviewed" {
		t.Errorf("last transition = %q, want reviewed", history[2].ToState)
	}
}

func TestTransitionHistoryLimitAndAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendTransition(ctx, TransitionEventData{
			CourseID: "c1", ActivityID: "a1",
			FromState: "draft", ToState: "generating", Trigger: "cli",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	limited, err := repo.TransitionHistory(ctx, "c1", QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited history length = %d, want 2", len(limited))
	}

	after, err := repo.TransitionHistory(ctx, "c1", QueryOpts{After: limited[1].Sequence})
	if err != nil {
		t.Fatalf("history after: %v", err)
	}
	if len(after) != 3 {
		t.Errorf("after history length = %d, want 3", len(after))
	}
}

func TestValidationRunAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendValidationRun(ctx, ValidationRunData{
		CourseID:     "c1",
		Validator:    "outcome_coverage",
		IsValid:      false,
		ErrorCount:   2,
		WarningCount: 1,
		Metrics:      map[string]any{"coverage_score": 0.5},
	})
	if err != nil {
		t.Fatalf("append validation run: %v", err)
	}

	count, err := s.Client().ValidationRun.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("validation runs = %d, want 1", count)
	}
}

func TestLLMRequestAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz-gen",
		InputTokens:  10,
		OutputTokens: 20,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("LLM request events = %d, want 1", count)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "c1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &CourseSnapshot{
		CourseID:  "c1",
		Timestamp: now,
		Label:     "publish",
		Data:      map[string]any{"title": "Concurrency in Go"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "c1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence == 0 {
		t.Error("expected assigned sequence")
	}
	if snap.Label != "publish" {
		t.Errorf("label = %q", snap.Label)
	}
	if snap.Data["title"] != "Concurrency in Go" {
		t.Errorf("data = %v", snap.Data)
	}
}

func TestSnapshotLatestIsPerCourse(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for _, courseID := range []string{"c1", "c2", "c1"} {
		err := repo.Save(ctx, &CourseSnapshot{
			CourseID:  courseID,
			Timestamp: now,
			Data:      map[string]any{"course": courseID},
		})
		if err != nil {
			t.Fatalf("save %s: %v", courseID, err)
		}
	}

	snap, err := repo.Latest(ctx, "c2")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Data["course"] != "c2" {
		t.Errorf("latest for c2 = %v", snap)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &CourseSnapshot{
			CourseID:  "c1",
			Timestamp: now.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"n": i},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "c1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().CourseSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &CourseSnapshot{
			CourseID:  "c1",
			Timestamp: now,
			Data:      map[string]any{},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "c1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().CourseSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
