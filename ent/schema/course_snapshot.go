package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseSnapshot captures a full course document at a point in time.
// Publishing writes a snapshot so the published version can always be
// recovered even after further edits.
type CourseSnapshot struct {
	ent.Schema
}

func (CourseSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.Int64("sequence").
			Comment("Event sequence number at the time of the snapshot"),
		field.Time("timestamp").
			Default(time.Now),
		field.String("label").
			Default("").
			Comment("Why the snapshot was taken: publish, manual"),
		field.JSON("data", map[string]any{}).
			Comment("Full course document as JSON"),
	}
}

func (CourseSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
