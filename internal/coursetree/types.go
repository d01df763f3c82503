package coursetree

import (
	"time"

	"github.com/google/uuid"
)

// Course is the root aggregate of the content tree. It owns all
// descendants; nothing outside a Course references into it except by id.
type Course struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Outcomes []LearningOutcome `json:"outcomes"`
	Modules  []Module          `json:"modules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Module is an ordered child of a Course.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is an ordered child of a Module.
type Lesson struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Activity is the leaf content unit.
//
// Content is opaque to the validators: plain text for most types, an
// embedded quiz JSON blob (see ParseQuiz) for quizzes.
type Activity struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Type    ContentType `json:"type"`
	Content string      `json:"content,omitempty"`

	// BuildState tracks the activity's authoring/publication lifecycle.
	// Mutated only by the buildstate package.
	BuildState BuildState `json:"build_state"`

	// Bloom is the activity's Bloom's-taxonomy level, or "" if unset.
	Bloom BloomLevel `json:"bloom_level,omitempty"`

	WordCount int       `json:"word_count,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LearningOutcome describes an intended competency using the ABCD
// (Audience/Behavior/Condition/Degree) model.
//
// MappedActivityIDs is a weak many-to-many edge: it may reference
// activity ids that no longer exist in the tree (a stale mapping), and
// consumers must resolve ids via an activity index rather than assume
// referential integrity. Activities carry no back-pointer.
type LearningOutcome struct {
	ID        string     `json:"id"`
	Audience  string     `json:"audience"`
	Behavior  string     `json:"behavior"`
	Condition string     `json:"condition"`
	Degree    string     `json:"degree"`
	Bloom     BloomLevel `json:"bloom_level"`

	MappedActivityIDs []string `json:"mapped_activity_ids"`
}

// NewCourse creates an empty course with a fresh id.
func NewCourse(title string) *Course {
	now := time.Now().UTC()
	return &Course{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewActivity creates a draft activity with a fresh id.
func NewActivity(title string, typ ContentType) Activity {
	return Activity{
		ID:         uuid.NewString(),
		Title:      title,
		Type:       typ,
		BuildState: StateDraft,
		UpdatedAt:  time.Now().UTC(),
	}
}
