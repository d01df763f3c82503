// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/meera/courseforge/ent/coursesnapshot"
	"github.com/meera/courseforge/ent/llmrequestevent"
	"github.com/meera/courseforge/ent/schema"
	"github.com/meera/courseforge/ent/transitionevent"
	"github.com/meera/courseforge/ent/validationrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	coursesnapshotFields := schema.CourseSnapshot{}.Fields()
	_ = coursesnapshotFields
	// coursesnapshotDescCourseID is the schema descriptor for course_id field.
	coursesnapshotDescCourseID := coursesnapshotFields[0].Descriptor()
	// coursesnapshot.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	coursesnapshot.CourseIDValidator = coursesnapshotDescCourseID.Validators[0].(func(string) error)
	// coursesnapshotDescTimestamp is the schema descriptor for timestamp field.
	coursesnapshotDescTimestamp := coursesnapshotFields[2].Descriptor()
	// coursesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	coursesnapshot.DefaultTimestamp = coursesnapshotDescTimestamp.Default.(func() time.Time)
	// coursesnapshotDescLabel is the schema descriptor for label field.
	coursesnapshotDescLabel := coursesnapshotFields[3].Descriptor()
	// coursesnapshot.DefaultLabel holds the default value on creation for the label field.
	coursesnapshot.DefaultLabel = coursesnapshotDescLabel.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	transitioneventMixin := schema.TransitionEvent{}.Mixin()
	transitioneventMixinFields0 := transitioneventMixin[0].Fields()
	_ = transitioneventMixinFields0
	transitioneventFields := schema.TransitionEvent{}.Fields()
	_ = transitioneventFields
	// transitioneventDescTimestamp is the schema descriptor for timestamp field.
	transitioneventDescTimestamp := transitioneventMixinFields0[1].Descriptor()
	// transitionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	transitionevent.DefaultTimestamp = transitioneventDescTimestamp.Default.(func() time.Time)
	// transitioneventDescCourseID is the schema descriptor for course_id field.
	transitioneventDescCourseID := transitioneventFields[0].Descriptor()
	// transitionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	transitionevent.CourseIDValidator = transitioneventDescCourseID.Validators[0].(func(string) error)
	// transitioneventDescActivityID is the schema descriptor for activity_id field.
	transitioneventDescActivityID := transitioneventFields[1].Descriptor()
	// transitionevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	transitionevent.ActivityIDValidator = transitioneventDescActivityID.Validators[0].(func(string) error)
	// transitioneventDescFromState is the schema descriptor for from_state field.
	transitioneventDescFromState := transitioneventFields[2].Descriptor()
	// transitionevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	transitionevent.FromStateValidator = transitioneventDescFromState.Validators[0].(func(string) error)
	// transitioneventDescToState is the schema descriptor for to_state field.
	transitioneventDescToState := transitioneventFields[3].Descriptor()
	// transitionevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	transitionevent.ToStateValidator = transitioneventDescToState.Validators[0].(func(string) error)
	// transitioneventDescTrigger is the schema descriptor for trigger field.
	transitioneventDescTrigger := transitioneventFields[4].Descriptor()
	// transitionevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	transitionevent.TriggerValidator = transitioneventDescTrigger.Validators[0].(func(string) error)
	validationrunMixin := schema.ValidationRun{}.Mixin()
	validationrunMixinFields0 := validationrunMixin[0].Fields()
	_ = validationrunMixinFields0
	validationrunFields := schema.ValidationRun{}.Fields()
	_ = validationrunFields
	// validationrunDescTimestamp is the schema descriptor for timestamp field.
	validationrunDescTimestamp := validationrunMixinFields0[1].Descriptor()
	// validationrun.DefaultTimestamp holds the default value on creation for the timestamp field.
	validationrun.DefaultTimestamp = validationrunDescTimestamp.Default.(func() time.Time)
	// validationrunDescCourseID is the schema descriptor for course_id field.
	validationrunDescCourseID := validationrunFields[0].Descriptor()
	// validationrun.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	validationrun.CourseIDValidator = validationrunDescCourseID.Validators[0].(func(string) error)
	// validationrunDescValidator is the schema descriptor for validator field.
	validationrunDescValidator := validationrunFields[1].Descriptor()
	// validationrun.ValidatorValidator is a validator for the "validator" field. It is called by the builders before save.
	validationrun.ValidatorValidator = validationrunDescValidator.Validators[0].(func(string) error)
	// validationrunDescErrorCount is the schema descriptor for error_count field.
	validationrunDescErrorCount := validationrunFields[3].Descriptor()
	// validationrun.DefaultErrorCount holds the default value on creation for the error_count field.
	validationrun.DefaultErrorCount = validationrunDescErrorCount.Default.(int)
	// validationrunDescWarningCount is the schema descriptor for warning_count field.
	validationrunDescWarningCount := validationrunFields[4].Descriptor()
	// validationrun.DefaultWarningCount holds the default value on creation for the warning_count field.
	validationrun.DefaultWarningCount = validationrunDescWarningCount.Default.(int)
	// validationrunDescSuggestionCount is the schema descriptor for suggestion_count field.
	validationrunDescSuggestionCount := validationrunFields[5].Descriptor()
	// validationrun.DefaultSuggestionCount holds the default value on creation for the suggestion_count field.
	validationrun.DefaultSuggestionCount = validationrunDescSuggestionCount.Default.(int)
}
