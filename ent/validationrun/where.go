// Code generated by ent, DO NOT EDIT.

package validationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/meera/courseforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldTimestamp, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldCourseID, v))
}

// Validator applies equality check predicate on the "validator" field. It's identical to ValidatorEQ.
func Validator(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldValidator, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldIsValid, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldErrorCount, v))
}

// WarningCount applies equality check predicate on the "warning_count" field. It's identical to WarningCountEQ.
func WarningCount(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldWarningCount, v))
}

// SuggestionCount applies equality check predicate on the "suggestion_count" field. It's identical to SuggestionCountEQ.
func SuggestionCount(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldSuggestionCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldTimestamp, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldCourseID, v))
}

// ValidatorEQ applies the EQ predicate on the "validator" field.
func ValidatorEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldValidator, v))
}

// ValidatorNEQ applies the NEQ predicate on the "validator" field.
func ValidatorNEQ(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldValidator, v))
}

// ValidatorIn applies the In predicate on the "validator" field.
func ValidatorIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldValidator, vs...))
}

// ValidatorNotIn applies the NotIn predicate on the "validator" field.
func ValidatorNotIn(vs ...string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldValidator, vs...))
}

// ValidatorGT applies the GT predicate on the "validator" field.
func ValidatorGT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldValidator, v))
}

// ValidatorGTE applies the GTE predicate on the "validator" field.
func ValidatorGTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldValidator, v))
}

// ValidatorLT applies the LT predicate on the "validator" field.
func ValidatorLT(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldValidator, v))
}

// ValidatorLTE applies the LTE predicate on the "validator" field.
func ValidatorLTE(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldValidator, v))
}

// ValidatorContains applies the Contains predicate on the "validator" field.
func ValidatorContains(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContains(FieldValidator, v))
}

// ValidatorHasPrefix applies the HasPrefix predicate on the "validator" field.
func ValidatorHasPrefix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasPrefix(FieldValidator, v))
}

// ValidatorHasSuffix applies the HasSuffix predicate on the "validator" field.
func ValidatorHasSuffix(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldHasSuffix(FieldValidator, v))
}

// ValidatorEqualFold applies the EqualFold predicate on the "validator" field.
func ValidatorEqualFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEqualFold(FieldValidator, v))
}

// ValidatorContainsFold applies the ContainsFold predicate on the "validator" field.
func ValidatorContainsFold(v string) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldContainsFold(FieldValidator, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldIsValid, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldErrorCount, v))
}

// WarningCountEQ applies the EQ predicate on the "warning_count" field.
func WarningCountEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldWarningCount, v))
}

// WarningCountNEQ applies the NEQ predicate on the "warning_count" field.
func WarningCountNEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldWarningCount, v))
}

// WarningCountIn applies the In predicate on the "warning_count" field.
func WarningCountIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldWarningCount, vs...))
}

// WarningCountNotIn applies the NotIn predicate on the "warning_count" field.
func WarningCountNotIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldWarningCount, vs...))
}

// WarningCountGT applies the GT predicate on the "warning_count" field.
func WarningCountGT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldWarningCount, v))
}

// WarningCountGTE applies the GTE predicate on the "warning_count" field.
func WarningCountGTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldWarningCount, v))
}

// WarningCountLT applies the LT predicate on the "warning_count" field.
func WarningCountLT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldWarningCount, v))
}

// WarningCountLTE applies the LTE predicate on the "warning_count" field.
func WarningCountLTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldWarningCount, v))
}

// SuggestionCountEQ applies the EQ predicate on the "suggestion_count" field.
func SuggestionCountEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldEQ(FieldSuggestionCount, v))
}

// SuggestionCountNEQ applies the NEQ predicate on the "suggestion_count" field.
func SuggestionCountNEQ(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNEQ(FieldSuggestionCount, v))
}

// SuggestionCountIn applies the In predicate on the "suggestion_count" field.
func SuggestionCountIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIn(FieldSuggestionCount, vs...))
}

// SuggestionCountNotIn applies the NotIn predicate on the "suggestion_count" field.
func SuggestionCountNotIn(vs ...int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotIn(FieldSuggestionCount, vs...))
}

// SuggestionCountGT applies the GT predicate on the "suggestion_count" field.
func SuggestionCountGT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGT(FieldSuggestionCount, v))
}

// SuggestionCountGTE applies the GTE predicate on the "suggestion_count" field.
func SuggestionCountGTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldGTE(FieldSuggestionCount, v))
}

// SuggestionCountLT applies the LT predicate on the "suggestion_count" field.
func SuggestionCountLT(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLT(FieldSuggestionCount, v))
}

// SuggestionCountLTE applies the LTE predicate on the "suggestion_count" field.
func SuggestionCountLTE(v int) predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldLTE(FieldSuggestionCount, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.ValidationRun {
	return predicate.ValidationRun(sql.FieldNotNull(FieldMetrics))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationRun) predicate.ValidationRun {
	return predicate.ValidationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationRun) predicate.ValidationRun {
	return predicate.ValidationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationRun) predicate.ValidationRun {
	return predicate.ValidationRun(sql.NotPredicates(p))
}
