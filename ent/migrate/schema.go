// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CourseSnapshotsColumns holds the columns for the "course_snapshots" table.
	CourseSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "label", Type: field.TypeString, Default: ""},
		{Name: "data", Type: field.TypeJSON},
	}
	// CourseSnapshotsTable holds the schema information for the "course_snapshots" table.
	CourseSnapshotsTable = &schema.Table{
		Name:       "course_snapshots",
		Columns:    CourseSnapshotsColumns,
		PrimaryKey: []*schema.Column{CourseSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coursesnapshot_course_id",
				Unique:  false,
				Columns: []*schema.Column{CourseSnapshotsColumns[1]},
			},
			{
				Name:    "coursesnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{CourseSnapshotsColumns[2]},
			},
			{
				Name:    "coursesnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CourseSnapshotsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// TransitionEventsColumns holds the columns for the "transition_events" table.
	TransitionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
	}
	// TransitionEventsTable holds the schema information for the "transition_events" table.
	TransitionEventsTable = &schema.Table{
		Name:       "transition_events",
		Columns:    TransitionEventsColumns,
		PrimaryKey: []*schema.Column{TransitionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transitionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[1]},
			},
			{
				Name:    "transitionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[2]},
			},
			{
				Name:    "transitionevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[3]},
			},
			{
				Name:    "transitionevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{TransitionEventsColumns[4]},
			},
		},
	}
	// ValidationRunsColumns holds the columns for the "validation_runs" table.
	ValidationRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "validator", Type: field.TypeString},
		{Name: "is_valid", Type: field.TypeBool},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "warning_count", Type: field.TypeInt, Default: 0},
		{Name: "suggestion_count", Type: field.TypeInt, Default: 0},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
	}
	// ValidationRunsTable holds the schema information for the "validation_runs" table.
	ValidationRunsTable = &schema.Table{
		Name:       "validation_runs",
		Columns:    ValidationRunsColumns,
		PrimaryKey: []*schema.Column{ValidationRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationrun_sequence",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[1]},
			},
			{
				Name:    "validationrun_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[2]},
			},
			{
				Name:    "validationrun_course_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[3]},
			},
			{
				Name:    "validationrun_validator",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[4]},
			},
			{
				Name:    "validationrun_is_valid",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CourseSnapshotsTable,
		LlmRequestEventsTable,
		TransitionEventsTable,
		ValidationRunsTable,
	}
)

func init() {
}
