// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-bot/tarsy/ent/lifecycleevent"
	"github.com/tarsy-bot/tarsy/ent/predicate"
)

// LifecycleEventUpdate is the builder for updating LifecycleEvent entities.
type LifecycleEventUpdate struct {
	config
	hooks    []Hook
	mutation *LifecycleEventMutation
}

// Where appends a list predicates to the LifecycleEventUpdate builder.
func (_u *LifecycleEventUpdate) Where(ps ...predicate.LifecycleEvent) *LifecycleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *LifecycleEventUpdate) SetEventType(v string) *LifecycleEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LifecycleEventUpdate) SetNillableEventType(v *string) *LifecycleEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *LifecycleEventUpdate) SetStageName(v string) *LifecycleEventUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *LifecycleEventUpdate) SetNillableStageName(v *string) *LifecycleEventUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// ClearStageName clears the value of the "stage_name" field.
func (_u *LifecycleEventUpdate) ClearStageName() *LifecycleEventUpdate {
	_u.mutation.ClearStageName()
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *LifecycleEventUpdate) SetStageIndex(v int) *LifecycleEventUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *LifecycleEventUpdate) SetNillableStageIndex(v *int) *LifecycleEventUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *LifecycleEventUpdate) AddStageIndex(v int) *LifecycleEventUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// ClearStageIndex clears the value of the "stage_index" field.
func (_u *LifecycleEventUpdate) ClearStageIndex() *LifecycleEventUpdate {
	_u.mutation.ClearStageIndex()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *LifecycleEventUpdate) SetDetail(v string) *LifecycleEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *LifecycleEventUpdate) SetNillableDetail(v *string) *LifecycleEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *LifecycleEventUpdate) ClearDetail() *LifecycleEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the LifecycleEventMutation object of the builder.
func (_u *LifecycleEventUpdate) Mutation() *LifecycleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LifecycleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifecycleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LifecycleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifecycleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LifecycleEventUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LifecycleEvent.session"`)
	}
	return nil
}

func (_u *LifecycleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lifecycleevent.Table, lifecycleevent.Columns, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageExecutionIDCleared() {
		_spec.ClearField(lifecycleevent.FieldStageExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(lifecycleevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(lifecycleevent.FieldStageName, field.TypeString, value)
	}
	if _u.mutation.StageNameCleared() {
		_spec.ClearField(lifecycleevent.FieldStageName, field.TypeString)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(lifecycleevent.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(lifecycleevent.FieldStageIndex, field.TypeInt, value)
	}
	if _u.mutation.StageIndexCleared() {
		_spec.ClearField(lifecycleevent.FieldStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(lifecycleevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(lifecycleevent.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifecycleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LifecycleEventUpdateOne is the builder for updating a single LifecycleEvent entity.
type LifecycleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LifecycleEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *LifecycleEventUpdateOne) SetEventType(v string) *LifecycleEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LifecycleEventUpdateOne) SetNillableEventType(v *string) *LifecycleEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *LifecycleEventUpdateOne) SetStageName(v string) *LifecycleEventUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *LifecycleEventUpdateOne) SetNillableStageName(v *string) *LifecycleEventUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// ClearStageName clears the value of the "stage_name" field.
func (_u *LifecycleEventUpdateOne) ClearStageName() *LifecycleEventUpdateOne {
	_u.mutation.ClearStageName()
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *LifecycleEventUpdateOne) SetStageIndex(v int) *LifecycleEventUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *LifecycleEventUpdateOne) SetNillableStageIndex(v *int) *LifecycleEventUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *LifecycleEventUpdateOne) AddStageIndex(v int) *LifecycleEventUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// ClearStageIndex clears the value of the "stage_index" field.
func (_u *LifecycleEventUpdateOne) ClearStageIndex() *LifecycleEventUpdateOne {
	_u.mutation.ClearStageIndex()
	return _u
}

// SetDetail sets the "detail" field.
func (_u *LifecycleEventUpdateOne) SetDetail(v string) *LifecycleEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *LifecycleEventUpdateOne) SetNillableDetail(v *string) *LifecycleEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *LifecycleEventUpdateOne) ClearDetail() *LifecycleEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the LifecycleEventMutation object of the builder.
func (_u *LifecycleEventUpdateOne) Mutation() *LifecycleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LifecycleEventUpdate builder.
func (_u *LifecycleEventUpdateOne) Where(ps ...predicate.LifecycleEvent) *LifecycleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LifecycleEventUpdateOne) Select(field string, fields ...string) *LifecycleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LifecycleEvent entity.
func (_u *LifecycleEventUpdateOne) Save(ctx context.Context) (*LifecycleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LifecycleEventUpdateOne) SaveX(ctx context.Context) *LifecycleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LifecycleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LifecycleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LifecycleEventUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LifecycleEvent.session"`)
	}
	return nil
}

func (_u *LifecycleEventUpdateOne) sqlSave(ctx context.Context) (_node *LifecycleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lifecycleevent.Table, lifecycleevent.Columns, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LifecycleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lifecycleevent.FieldID)
		for _, f := range fields {
			if !lifecycleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lifecycleevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageExecutionIDCleared() {
		_spec.ClearField(lifecycleevent.FieldStageExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(lifecycleevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(lifecycleevent.FieldStageName, field.TypeString, value)
	}
	if _u.mutation.StageNameCleared() {
		_spec.ClearField(lifecycleevent.FieldStageName, field.TypeString)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(lifecycleevent.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(lifecycleevent.FieldStageIndex, field.TypeInt, value)
	}
	if _u.mutation.StageIndexCleared() {
		_spec.ClearField(lifecycleevent.FieldStageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(lifecycleevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(lifecycleevent.FieldDetail, field.TypeString)
	}
	_node = &LifecycleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifecycleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
