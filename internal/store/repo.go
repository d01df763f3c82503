package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// TransitionEventData captures one build-state change of an activity.
type TransitionEventData struct {
	CourseID   string
	ActivityID string
	FromState  string
	ToState    string
	Trigger    string
}

// TransitionRecord is a stored transition event read back for history.
type TransitionRecord struct {
	Sequence   int64
	Timestamp  time.Time
	ActivityID string
	FromState  string
	ToState    string
	Trigger    string
}

// ValidationRunData captures one validator's outcome over a course.
type ValidationRunData struct {
	CourseID        string
	Validator       string
	IsValid         bool
	ErrorCount      int
	WarningCount    int
	SuggestionCount int
	Metrics         map[string]any
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendTransition records a build-state transition.
	AppendTransition(ctx context.Context, data TransitionEventData) error

	// AppendValidationRun records one validator's result.
	AppendValidationRun(ctx context.Context, data ValidationRunData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TransitionHistory returns a course's transition events in sequence
	// order, oldest first.
	TransitionHistory(ctx context.Context, courseID string, opts QueryOpts) ([]TransitionRecord, error)
}

// CourseSnapshot is a point-in-time capture of a full course document.
type CourseSnapshot struct {
	ID        int
	CourseID  string
	Sequence  int64
	Timestamp time.Time
	Label     string
	Data      map[string]any
}

// SnapshotRepo manages course snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, assigning it the next event sequence.
	Save(ctx context.Context, snap *CourseSnapshot) error

	// Latest returns the most recent snapshot for a course, or nil if
	// none exist.
	Latest(ctx context.Context, courseID string) (*CourseSnapshot, error)

	// Prune deletes all but the N most recent snapshots of a course.
	Prune(ctx context.Context, courseID string, keep int) error
}
