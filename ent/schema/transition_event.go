package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TransitionEvent records every build-state change of an activity, so
// the lifecycle history of a course can be audited after the fact.
type TransitionEvent struct {
	ent.Schema
}

func (TransitionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TransitionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("activity_id").NotEmpty(),
		field.String("from_state").NotEmpty(),
		field.String("to_state").NotEmpty(),
		field.String("trigger").
			NotEmpty().
			Comment("What caused the transition: cli, generate, review, publish"),
	}
}

func (TransitionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("activity_id"),
	}
}
