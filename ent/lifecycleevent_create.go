// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-bot/tarsy/ent/alertsession"
	"github.com/tarsy-bot/tarsy/ent/lifecycleevent"
)

// LifecycleEventCreate is the builder for creating a LifecycleEvent entity.
type LifecycleEventCreate struct {
	config
	mutation *LifecycleEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LifecycleEventCreate) SetSessionID(v string) *LifecycleEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStageExecutionID sets the "stage_execution_id" field.
func (_c *LifecycleEventCreate) SetStageExecutionID(v string) *LifecycleEventCreate {
	_c.mutation.SetStageExecutionID(v)
	return _c
}

// SetNillableStageExecutionID sets the "stage_execution_id" field if the given value is not nil.
func (_c *LifecycleEventCreate) SetNillableStageExecutionID(v *string) *LifecycleEventCreate {
	if v != nil {
		_c.SetStageExecutionID(*v)
	}
	return _c
}

// SetTimestampUs sets the "timestamp_us" field.
func (_c *LifecycleEventCreate) SetTimestampUs(v int64) *LifecycleEventCreate {
	_c.mutation.SetTimestampUs(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *LifecycleEventCreate) SetEventType(v string) *LifecycleEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *LifecycleEventCreate) SetStageName(v string) *LifecycleEventCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_c *LifecycleEventCreate) SetNillableStageName(v *string) *LifecycleEventCreate {
	if v != nil {
		_c.SetStageName(*v)
	}
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *LifecycleEventCreate) SetStageIndex(v int) *LifecycleEventCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_c *LifecycleEventCreate) SetNillableStageIndex(v *int) *LifecycleEventCreate {
	if v != nil {
		_c.SetStageIndex(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *LifecycleEventCreate) SetDetail(v string) *LifecycleEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *LifecycleEventCreate) SetNillableDetail(v *string) *LifecycleEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LifecycleEventCreate) SetID(v string) *LifecycleEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AlertSession entity.
func (_c *LifecycleEventCreate) SetSession(v *AlertSession) *LifecycleEventCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the LifecycleEventMutation object of the builder.
func (_c *LifecycleEventCreate) Mutation() *LifecycleEventMutation {
	return _c.mutation
}

// Save creates the LifecycleEvent in the database.
func (_c *LifecycleEventCreate) Save(ctx context.Context) (*LifecycleEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LifecycleEventCreate) SaveX(ctx context.Context) *LifecycleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifecycleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifecycleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LifecycleEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LifecycleEvent.session_id"`)}
	}
	if _, ok := _c.mutation.TimestampUs(); !ok {
		return &ValidationError{Name: "timestamp_us", err: errors.New(`ent: missing required field "LifecycleEvent.timestamp_us"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "LifecycleEvent.event_type"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "LifecycleEvent.session"`)}
	}
	return nil
}

func (_c *LifecycleEventCreate) sqlSave(ctx context.Context) (*LifecycleEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LifecycleEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LifecycleEventCreate) createSpec() (*LifecycleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LifecycleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lifecycleevent.Table, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageExecutionID(); ok {
		_spec.SetField(lifecycleevent.FieldStageExecutionID, field.TypeString, value)
		_node.StageExecutionID = &value
	}
	if value, ok := _c.mutation.TimestampUs(); ok {
		_spec.SetField(lifecycleevent.FieldTimestampUs, field.TypeInt64, value)
		_node.TimestampUs = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(lifecycleevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(lifecycleevent.FieldStageName, field.TypeString, value)
		_node.StageName = &value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(lifecycleevent.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = &value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(lifecycleevent.FieldDetail, field.TypeString, value)
		_node.Detail = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lifecycleevent.SessionTable,
			Columns: []string{lifecycleevent.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LifecycleEventCreateBulk is the builder for creating many LifecycleEvent entities in bulk.
type LifecycleEventCreateBulk struct {
	config
	err      error
	builders []*LifecycleEventCreate
}

// Save creates the LifecycleEvent entities in the database.
func (_c *LifecycleEventCreateBulk) Save(ctx context.Context) ([]*LifecycleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LifecycleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LifecycleEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LifecycleEventCreateBulk) SaveX(ctx context.Context) []*LifecycleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LifecycleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LifecycleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
