package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendValidationRun(ctx context.Context, data ValidationRunData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ValidationRun.Create().
		SetSequence(seqNum).
		SetCourseID(data.CourseID).
		SetValidator(data.Validator).
		SetIsValid(data.IsValid).
		SetErrorCount(data.ErrorCount).
		SetWarningCount(data.WarningCount).
		SetSuggestionCount(data.SuggestionCount)

	if data.Metrics != nil {
		builder = builder.SetMetrics(data.Metrics)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save validation run: %w", err)
	}
	return nil
}
