package store

import (
	"context"
	"fmt"

	"github.com/meera/courseforge/ent"
	"github.com/meera/courseforge/ent/transitionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTransition(ctx context.Context, data TransitionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TransitionEvent.Create().
		SetSequence(seqNum).
		SetCourseID(data.CourseID).
		SetActivityID(data.ActivityID).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save transition event: %w", err)
	}
	return nil
}

func (r *eventRepo) TransitionHistory(ctx context.Context, courseID string, opts QueryOpts) ([]TransitionRecord, error) {
	q := r.client.TransitionEvent.Query().
		Where(transitionevent.CourseID(courseID))

	if opts.After > 0 {
		q = q.Where(transitionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(transitionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(transitionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(transitionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.Order(ent.Asc(transitionevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transition history: %w", err)
	}

	out := make([]TransitionRecord, len(events))
	for i, e := range events {
		out[i] = TransitionRecord{
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
			ActivityID: e.ActivityID,
			FromState:  e.FromState,
			ToState:    e.ToState,
			Trigger:    e.Trigger,
		}
	}
	return out, nil
}
