package coursetree

// ContentType classifies what kind of learning activity an Activity is.
type ContentType string

const (
	TypeVideo      ContentType = "video"
	TypeReading    ContentType = "reading"
	TypeQuiz       ContentType = "quiz"
	TypeHandsOnLab ContentType = "hands_on_lab"
	TypeCoach      ContentType = "coach"
	TypeLab        ContentType = "lab"
	TypeDiscussion ContentType = "discussion"
	TypeAssignment ContentType = "assignment"
	TypeProject    ContentType = "project"
	TypeRubric     ContentType = "rubric"
)

// AllContentTypes returns every content type in declaration order.
func AllContentTypes() []ContentType {
	return []ContentType{
		TypeVideo, TypeReading, TypeQuiz, TypeHandsOnLab, TypeCoach,
		TypeLab, TypeDiscussion, TypeAssignment, TypeProject, TypeRubric,
	}
}

// Valid reports whether t is one of the declared content types.
func (t ContentType) Valid() bool {
	for _, ct := range AllContentTypes() {
		if t == ct {
			return true
		}
	}
	return false
}

// BuildState represents an Activity's position in the authoring lifecycle.
type BuildState string

const (
	StateDraft      BuildState = "draft"
	StateGenerating BuildState = "generating"
	StateGenerated  BuildState = "generated"
	StateReviewed   BuildState = "reviewed"
	StateApproved   BuildState = "approved"
	StatePublished  BuildState = "published"
)

// AllBuildStates returns every build state in readiness order
// (draft first, published last).
func AllBuildStates() []BuildState {
	return []BuildState{
		StateDraft, StateGenerating, StateGenerated,
		StateReviewed, StateApproved, StatePublished,
	}
}

// Valid reports whether s is one of the declared build states.
func (s BuildState) Valid() bool {
	for _, bs := range AllBuildStates() {
		if s == bs {
			return true
		}
	}
	return false
}

// BloomLevel is a level of Bloom's taxonomy, from lower-order (remember)
// to higher-order (create) cognitive skills. The empty string means no
// level has been assigned.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "remember"
	BloomUnderstand BloomLevel = "understand"
	BloomApply      BloomLevel = "apply"
	BloomAnalyze    BloomLevel = "analyze"
	BloomEvaluate   BloomLevel = "evaluate"
	BloomCreate     BloomLevel = "create"
)

// AllBloomLevels returns the six levels in taxonomy order.
// This order is also the tie-break order for dominant-level computation.
func AllBloomLevels() []BloomLevel {
	return []BloomLevel{
		BloomRemember, BloomUnderstand, BloomApply,
		BloomAnalyze, BloomEvaluate, BloomCreate,
	}
}

// Order returns the position of l in taxonomy order (0-5), or -1 for an
// unset or unknown level.
func (l BloomLevel) Order() int {
	for i, bl := range AllBloomLevels() {
		if l == bl {
			return i
		}
	}
	return -1
}

// HigherOrder reports whether l is one of the three higher-order-thinking
// levels (analyze, evaluate, create).
func (l BloomLevel) HigherOrder() bool {
	return l == BloomAnalyze || l == BloomEvaluate || l == BloomCreate
}
