// Code generated by ent, DO NOT EDIT.

package lifecycleevent

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-bot/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSessionID, v))
}

// StageExecutionID applies equality check predicate on the "stage_execution_id" field. It's identical to StageExecutionIDEQ.
func StageExecutionID(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldStageExecutionID, v))
}

// TimestampUs applies equality check predicate on the "timestamp_us" field. It's identical to TimestampUsEQ.
func TimestampUs(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldTimestampUs, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldEventType, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldStageName, v))
}

// StageIndex applies equality check predicate on the "stage_index" field. It's identical to StageIndexEQ.
func StageIndex(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldStageIndex, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldDetail, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StageExecutionIDEQ applies the EQ predicate on the "stage_execution_id" field.
func StageExecutionIDEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldStageExecutionID, v))
}

// StageExecutionIDNEQ applies the NEQ predicate on the "stage_execution_id" field.
func StageExecutionIDNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldStageExecutionID, v))
}

// StageExecutionIDIn applies the In predicate on the "stage_execution_id" field.
func StageExecutionIDIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldStageExecutionID, vs...))
}

// StageExecutionIDNotIn applies the NotIn predicate on the "stage_execution_id" field.
func StageExecutionIDNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldStageExecutionID, vs...))
}

// StageExecutionIDGT applies the GT predicate on the "stage_execution_id" field.
func StageExecutionIDGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldStageExecutionID, v))
}

// StageExecutionIDGTE applies the GTE predicate on the "stage_execution_id" field.
func StageExecutionIDGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldStageExecutionID, v))
}

// StageExecutionIDLT applies the LT predicate on the "stage_execution_id" field.
func StageExecutionIDLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldStageExecutionID, v))
}

// StageExecutionIDLTE applies the LTE predicate on the "stage_execution_id" field.
func StageExecutionIDLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldStageExecutionID, v))
}

// StageExecutionIDContains applies the Contains predicate on the "stage_execution_id" field.
func StageExecutionIDContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldStageExecutionID, v))
}

// StageExecutionIDHasPrefix applies the HasPrefix predicate on the "stage_execution_id" field.
func StageExecutionIDHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldStageExecutionID, v))
}

// StageExecutionIDHasSuffix applies the HasSuffix predicate on the "stage_execution_id" field.
func StageExecutionIDHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldStageExecutionID, v))
}

// StageExecutionIDIsNil applies the IsNil predicate on the "stage_execution_id" field.
func StageExecutionIDIsNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIsNull(FieldStageExecutionID))
}

// StageExecutionIDNotNil applies the NotNil predicate on the "stage_execution_id" field.
func StageExecutionIDNotNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotNull(FieldStageExecutionID))
}

// StageExecutionIDEqualFold applies the EqualFold predicate on the "stage_execution_id" field.
func StageExecutionIDEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldStageExecutionID, v))
}

// StageExecutionIDContainsFold applies the ContainsFold predicate on the "stage_execution_id" field.
func StageExecutionIDContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldStageExecutionID, v))
}

// TimestampUsEQ applies the EQ predicate on the "timestamp_us" field.
func TimestampUsEQ(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldTimestampUs, v))
}

// TimestampUsNEQ applies the NEQ predicate on the "timestamp_us" field.
func TimestampUsNEQ(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldTimestampUs, v))
}

// TimestampUsIn applies the In predicate on the "timestamp_us" field.
func TimestampUsIn(vs ...int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldTimestampUs, vs...))
}

// TimestampUsNotIn applies the NotIn predicate on the "timestamp_us" field.
func TimestampUsNotIn(vs ...int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldTimestampUs, vs...))
}

// TimestampUsGT applies the GT predicate on the "timestamp_us" field.
func TimestampUsGT(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldTimestampUs, v))
}

// TimestampUsGTE applies the GTE predicate on the "timestamp_us" field.
func TimestampUsGTE(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldTimestampUs, v))
}

// TimestampUsLT applies the LT predicate on the "timestamp_us" field.
func TimestampUsLT(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldTimestampUs, v))
}

// TimestampUsLTE applies the LTE predicate on the "timestamp_us" field.
func TimestampUsLTE(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldTimestampUs, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldEventType, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameIsNil applies the IsNil predicate on the "stage_name" field.
func StageNameIsNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIsNull(FieldStageName))
}

// StageNameNotNil applies the NotNil predicate on the "stage_name" field.
func StageNameNotNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotNull(FieldStageName))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldStageName, v))
}

// StageIndexEQ applies the EQ predicate on the "stage_index" field.
func StageIndexEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldStageIndex, v))
}

// StageIndexNEQ applies the NEQ predicate on the "stage_index" field.
func StageIndexNEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldStageIndex, v))
}

// StageIndexIn applies the In predicate on the "stage_index" field.
func StageIndexIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldStageIndex, vs...))
}

// StageIndexNotIn applies the NotIn predicate on the "stage_index" field.
func StageIndexNotIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldStageIndex, vs...))
}

// StageIndexGT applies the GT predicate on the "stage_index" field.
func StageIndexGT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldStageIndex, v))
}

// StageIndexGTE applies the GTE predicate on the "stage_index" field.
func StageIndexGTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldStageIndex, v))
}

// StageIndexLT applies the LT predicate on the "stage_index" field.
func StageIndexLT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldStageIndex, v))
}

// StageIndexLTE applies the LTE predicate on the "stage_index" field.
func StageIndexLTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldStageIndex, v))
}

// StageIndexIsNil applies the IsNil predicate on the "stage_index" field.
func StageIndexIsNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIsNull(FieldStageIndex))
}

// StageIndexNotNil applies the NotNil predicate on the "stage_index" field.
func StageIndexNotNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotNull(FieldStageIndex))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldDetail, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.LifecycleEvent {
	return predicate.LifecycleEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AlertSession) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LifecycleEvent) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LifecycleEvent) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LifecycleEvent) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.NotPredicates(p))
}
