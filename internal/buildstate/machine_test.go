package buildstate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/meera/courseforge/internal/coursetree"
)

func draftActivity() *coursetree.Activity {
	return &coursetree.Activity{
		ID:         "act-1",
		Title:      "Intro video",
		Type:       coursetree.TypeVideo,
		BuildState: coursetree.StateDraft,
	}
}

func activityIn(s coursetree.BuildState) *coursetree.Activity {
	a := draftActivity()
	a.BuildState = s
	return a
}

func TestTransition_FullForwardPath(t *testing.T) {
	a := draftActivity()
	path := []coursetree.BuildState{
		coursetree.StateGenerating,
		coursetree.StateGenerated,
		coursetree.StateReviewed,
		coursetree.StateApproved,
		coursetree.StatePublished,
	}
	for _, target := range path {
		if _, err := Transition(a, target); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
		if a.BuildState != target {
			t.Fatalf("expected state %s, got %s", target, a.BuildState)
		}
	}
}

func TestTransition_ExhaustiveTable(t *testing.T) {
	legal := map[[2]coursetree.BuildState]bool{
		{coursetree.StateDraft, coursetree.StateGenerating}:     true,
		{coursetree.StateGenerating, coursetree.StateGenerated}: true,
		{coursetree.StateGenerating, coursetree.StateDraft}:     true,
		{coursetree.StateGenerated, coursetree.StateReviewed}:   true,
		{coursetree.StateGenerated, coursetree.StateDraft}:      true,
		{coursetree.StateReviewed, coursetree.StateApproved}:    true,
		{coursetree.StateReviewed, coursetree.StateDraft}:       true,
		{coursetree.StateApproved, coursetree.StatePublished}:   true,
		{coursetree.StateApproved, coursetree.StateDraft}:       true,
		{coursetree.StatePublished, coursetree.StateDraft}:      true,
	}

	for _, from := range coursetree.AllBuildStates() {
		for _, to := range coursetree.AllBuildStates() {
			a := activityIn(from)
			_, err := Transition(a, to)
			want := legal[[2]coursetree.BuildState{from, to}]
			if want && err != nil {
				t.Errorf("%s → %s: expected success, got %v", from, to, err)
			}
			if !want && err == nil {
				t.Errorf("%s → %s: expected InvalidTransition", from, to)
			}
		}
	}
}

func TestTransition_GeneratedBackToGeneratingRejected(t *testing.T) {
	a := activityIn(coursetree.StateGenerated)
	_, err := Transition(a, coursetree.StateGenerating)
	if err == nil {
		t.Fatal("expected error: regeneration must go through draft")
	}
}

func TestTransition_ErrorNamesStatesAndLegalEdges(t *testing.T) {
	a := draftActivity()
	_, err := Transition(a, coursetree.StateApproved)
	if err == nil {
		t.Fatal("expected error for draft → approved")
	}

	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("expected InvalidTransitionError, got %T", err)
	}
	if ite.From != coursetree.StateDraft || ite.To != coursetree.StateApproved {
		t.Errorf("error states = %s → %s", ite.From, ite.To)
	}
	if len(ite.Allowed) != 1 || ite.Allowed[0] != coursetree.StateGenerating {
		t.Errorf("allowed from draft = %v, want {generating}", ite.Allowed)
	}
	msg := err.Error()
	for _, want := range []string{"draft", "approved", "generating"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestTransition_RefreshesUpdatedAt(t *testing.T) {
	a := draftActivity()
	a.UpdatedAt = time.Now().Add(-time.Hour)
	before := a.UpdatedAt

	if _, err := Transition(a, coursetree.StateGenerating); err != nil {
		t.Fatal(err)
	}
	if !a.UpdatedAt.After(before) {
		t.Error("expected UpdatedAt to be refreshed")
	}
}

func TestTransition_FailureLeavesActivityUntouched(t *testing.T) {
	a := draftActivity()
	before := a.UpdatedAt
	if _, err := Transition(a, coursetree.StatePublished); err == nil {
		t.Fatal("expected error")
	}
	if a.BuildState != coursetree.StateDraft || a.UpdatedAt != before {
		t.Error("failed transition mutated the activity")
	}
}

func TestApprove_RequiresReviewed(t *testing.T) {
	for _, s := range coursetree.AllBuildStates() {
		a := activityIn(s)
		_, err := Approve(a)
		if s == coursetree.StateReviewed {
			if err != nil {
				t.Errorf("approve from reviewed failed: %v", err)
			}
			if a.BuildState != coursetree.StateApproved {
				t.Errorf("state after approve = %s", a.BuildState)
			}
			continue
		}
		if err == nil {
			t.Errorf("approve from %s: expected error", s)
			continue
		}
		if !strings.Contains(err.Error(), string(coursetree.StateReviewed)) {
			t.Errorf("approve error %q does not name the required state", err)
		}
	}
}

func TestReset_FromEveryState(t *testing.T) {
	for _, s := range coursetree.AllBuildStates() {
		a := activityIn(s)
		Reset(a)
		if a.BuildState != coursetree.StateDraft {
			t.Errorf("reset from %s left state %s", s, a.BuildState)
		}
	}
}

func TestAllowedFrom_Stable(t *testing.T) {
	got := AllowedFrom(coursetree.StateGenerating)
	if len(got) != 2 {
		t.Fatalf("expected 2 targets from generating, got %v", got)
	}
	// Sorted lexically: draft before generated.
	if got[0] != coursetree.StateDraft || got[1] != coursetree.StateGenerated {
		t.Errorf("targets = %v", got)
	}
}
