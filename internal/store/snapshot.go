package store

import (
	"context"
	"fmt"

	"github.com/meera/courseforge/ent"
	"github.com/meera/courseforge/ent/coursesnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *CourseSnapshot) error {
	if snap.Sequence == 0 {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		snap.Sequence = seqNum
	}

	created, err := r.client.CourseSnapshot.Create().
		SetCourseID(snap.CourseID).
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetLabel(snap.Label).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = created.ID
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, courseID string) (*CourseSnapshot, error) {
	s, err := r.client.CourseSnapshot.Query().
		Where(coursesnapshot.CourseID(courseID)).
		Order(ent.Desc(coursesnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &CourseSnapshot{
		ID:        s.ID,
		CourseID:  s.CourseID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Label:     s.Label,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, courseID string, keep int) error {
	// Find the Nth most recent snapshot; everything at or below its
	// sequence goes.
	snapshots, err := r.client.CourseSnapshot.Query().
		Where(coursesnapshot.CourseID(courseID)).
		Order(ent.Desc(coursesnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.CourseSnapshot.Delete().
		Where(
			coursesnapshot.CourseID(courseID),
			coursesnapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
