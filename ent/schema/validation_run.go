package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationRun records the outcome of one validator over a course.
// A full suite run produces one row per validator.
type ValidationRun struct {
	ent.Schema
}

func (ValidationRun) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ValidationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("validator").
			NotEmpty().
			Comment("Validator name: structural, outcome_coverage, bloom_diversity, distractor_quality"),
		field.Bool("is_valid"),
		field.Int("error_count").Default(0),
		field.Int("warning_count").Default(0),
		field.Int("suggestion_count").Default(0),
		field.JSON("metrics", map[string]any{}).
			Optional().
			Comment("Validator metrics as reported"),
	}
}

func (ValidationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("validator"),
		index.Fields("is_valid"),
	}
}
