// Package buildstate governs how an activity moves through its
// authoring/publication lifecycle. It is the only package that mutates
// an activity's build state; validators treat the tree as read-only.
package buildstate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/meera/courseforge/internal/coursetree"
)

// legalEdges is the consolidated transition table. Any (from, to) pair
// not present here is rejected. Reverting to draft is an explicit author
// reset and is allowed from every later state; forward edges never skip
// the review or approval step.
var legalEdges = map[coursetree.BuildState][]coursetree.BuildState{
	coursetree.StateDraft:      {coursetree.StateGenerating},
	coursetree.StateGenerating: {coursetree.StateGenerated, coursetree.StateDraft},
	coursetree.StateGenerated:  {coursetree.StateReviewed, coursetree.StateDraft},
	coursetree.StateReviewed:   {coursetree.StateApproved, coursetree.StateDraft},
	coursetree.StateApproved:   {coursetree.StatePublished, coursetree.StateDraft},
	coursetree.StatePublished:  {coursetree.StateDraft},
}

// InvalidTransitionError reports a rejected build-state transition.
type InvalidTransitionError struct {
	From    coursetree.BuildState
	To      coursetree.BuildState
	Allowed []coursetree.BuildState
	Reason  string // non-empty for precondition failures (e.g. Approve)
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = string(s)
	}
	return fmt.Sprintf("invalid transition %s → %s: legal transitions from %s are {%s}",
		e.From, e.To, e.From, strings.Join(names, ", "))
}

// AllowedFrom returns the legal target states from the given state, in a
// stable order.
func AllowedFrom(from coursetree.BuildState) []coursetree.BuildState {
	targets := legalEdges[from]
	out := make([]coursetree.BuildState, len(targets))
	copy(out, targets)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CanTransition reports whether the (from, to) edge is legal.
func CanTransition(from, to coursetree.BuildState) bool {
	for _, t := range legalEdges[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition moves the activity to target if the edge is legal, refreshes
// its updated timestamp, and returns the mutated activity. The state and
// timestamp fields are the only observable side effects. The write is not
// synchronized; callers must not transition the same activity from
// multiple goroutines.
func Transition(a *coursetree.Activity, target coursetree.BuildState) (*coursetree.Activity, error) {
	if !CanTransition(a.BuildState, target) {
		return nil, &InvalidTransitionError{
			From:    a.BuildState,
			To:      target,
			Allowed: AllowedFrom(a.BuildState),
		}
	}
	a.BuildState = target
	a.UpdatedAt = time.Now().UTC()
	return a, nil
}

// Approve is sugar for Transition(a, StateApproved) with a stricter
// precondition: the activity must be exactly in the reviewed state. The
// separate check catches state-skipping bugs with a clearer message than
// the general edge table produces.
func Approve(a *coursetree.Activity) (*coursetree.Activity, error) {
	if a.BuildState != coursetree.StateReviewed {
		return nil, &InvalidTransitionError{
			From:   a.BuildState,
			To:     coursetree.StateApproved,
			Reason: fmt.Sprintf("cannot approve activity in state %s: approval requires state %s", a.BuildState, coursetree.StateReviewed),
		}
	}
	return Transition(a, coursetree.StateApproved)
}

// Reset reverts the activity to draft from any state. Draft → draft is
// not an edge in the table, so resetting an already-draft activity is a
// no-op rather than an error.
func Reset(a *coursetree.Activity) *coursetree.Activity {
	if a.BuildState == coursetree.StateDraft {
		return a
	}
	a.BuildState = coursetree.StateDraft
	a.UpdatedAt = time.Now().UTC()
	return a
}
