// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nikverma/physlab/ent/phaseevent"
	"github.com/nikverma/physlab/ent/predicate"
)

// PhaseEventUpdate is the builder for updating PhaseEvent entities.
type PhaseEventUpdate struct {
	config
	hooks    []Hook
	mutation *PhaseEventMutation
}

// Where appends a list predicates to the PhaseEventUpdate builder.
func (_u *PhaseEventUpdate) Where(ps ...predicate.PhaseEvent) *PhaseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PhaseEventUpdate) SetSessionID(v string) *PhaseEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PhaseEventUpdate) SetNillableSessionID(v *string) *PhaseEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *PhaseEventUpdate) SetGameID(v string) *PhaseEventUpdate {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *PhaseEventUpdate) SetNillableGameID(v *string) *PhaseEventUpdate {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetFromPhase sets the "from_phase" field.
func (_u *PhaseEventUpdate) SetFromPhase(v string) *PhaseEventUpdate {
	_u.mutation.SetFromPhase(v)
	return _u
}

// SetNillableFromPhase sets the "from_phase" field if the given value is not nil.
func (_u *PhaseEventUpdate) SetNillableFromPhase(v *string) *PhaseEventUpdate {
	if v != nil {
		_u.SetFromPhase(*v)
	}
	return _u
}

// SetToPhase sets the "to_phase" field.
func (_u *PhaseEventUpdate) SetToPhase(v string) *PhaseEventUpdate {
	_u.mutation.SetToPhase(v)
	return _u
}

// SetNillableToPhase sets the "to_phase" field if the given value is not nil.
func (_u *PhaseEventUpdate) SetNillableToPhase(v *string) *PhaseEventUpdate {
	if v != nil {
		_u.SetToPhase(*v)
	}
	return _u
}

// SetMsInPhase sets the "ms_in_phase" field.
func (_u *PhaseEventUpdate) SetMsInPhase(v int64) *PhaseEventUpdate {
	_u.mutation.ResetMsInPhase()
	_u.mutation.SetMsInPhase(v)
	return _u
}

// SetNillableMsInPhase sets the "ms_in_phase" field if the given value is not nil.
func (_u *PhaseEventUpdate) SetNillableMsInPhase(v *int64) *PhaseEventUpdate {
	if v != nil {
		_u.SetMsInPhase(*v)
	}
	return _u
}

// AddMsInPhase adds value to the "ms_in_phase" field.
func (_u *PhaseEventUpdate) AddMsInPhase(v int64) *PhaseEventUpdate {
	_u.mutation.AddMsInPhase(v)
	return _u
}

// Mutation returns the PhaseEventMutation object of the builder.
func (_u *PhaseEventUpdate) Mutation() *PhaseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhaseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhaseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := phaseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameID(); ok {
		if err := phaseevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromPhase(); ok {
		if err := phaseevent.FromPhaseValidator(v); err != nil {
			return &ValidationError{Name: "from_phase", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.from_phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToPhase(); ok {
		if err := phaseevent.ToPhaseValidator(v); err != nil {
			return &ValidationError{Name: "to_phase", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.to_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PhaseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaseevent.Table, phaseevent.Columns, sqlgraph.NewFieldSpec(phaseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(phaseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(phaseevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromPhase(); ok {
		_spec.SetField(phaseevent.FieldFromPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToPhase(); ok {
		_spec.SetField(phaseevent.FieldToPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.MsInPhase(); ok {
		_spec.SetField(phaseevent.FieldMsInPhase, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMsInPhase(); ok {
		_spec.AddField(phaseevent.FieldMsInPhase, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhaseEventUpdateOne is the builder for updating a single PhaseEvent entity.
type PhaseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhaseEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PhaseEventUpdateOne) SetSessionID(v string) *PhaseEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PhaseEventUpdateOne) SetNillableSessionID(v *string) *PhaseEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *PhaseEventUpdateOne) SetGameID(v string) *PhaseEventUpdateOne {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *PhaseEventUpdateOne) SetNillableGameID(v *string) *PhaseEventUpdateOne {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetFromPhase sets the "from_phase" field.
func (_u *PhaseEventUpdateOne) SetFromPhase(v string) *PhaseEventUpdateOne {
	_u.mutation.SetFromPhase(v)
	return _u
}

// SetNillableFromPhase sets the "from_phase" field if the given value is not nil.
func (_u *PhaseEventUpdateOne) SetNillableFromPhase(v *string) *PhaseEventUpdateOne {
	if v != nil {
		_u.SetFromPhase(*v)
	}
	return _u
}

// SetToPhase sets the "to_phase" field.
func (_u *PhaseEventUpdateOne) SetToPhase(v string) *PhaseEventUpdateOne {
	_u.mutation.SetToPhase(v)
	return _u
}

// SetNillableToPhase sets the "to_phase" field if the given value is not nil.
func (_u *PhaseEventUpdateOne) SetNillableToPhase(v *string) *PhaseEventUpdateOne {
	if v != nil {
		_u.SetToPhase(*v)
	}
	return _u
}

// SetMsInPhase sets the "ms_in_phase" field.
func (_u *PhaseEventUpdateOne) SetMsInPhase(v int64) *PhaseEventUpdateOne {
	_u.mutation.ResetMsInPhase()
	_u.mutation.SetMsInPhase(v)
	return _u
}

// SetNillableMsInPhase sets the "ms_in_phase" field if the given value is not nil.
func (_u *PhaseEventUpdateOne) SetNillableMsInPhase(v *int64) *PhaseEventUpdateOne {
	if v != nil {
		_u.SetMsInPhase(*v)
	}
	return _u
}

// AddMsInPhase adds value to the "ms_in_phase" field.
func (_u *PhaseEventUpdateOne) AddMsInPhase(v int64) *PhaseEventUpdateOne {
	_u.mutation.AddMsInPhase(v)
	return _u
}

// Mutation returns the PhaseEventMutation object of the builder.
func (_u *PhaseEventUpdateOne) Mutation() *PhaseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PhaseEventUpdate builder.
func (_u *PhaseEventUpdateOne) Where(ps ...predicate.PhaseEvent) *PhaseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhaseEventUpdateOne) Select(field string, fields ...string) *PhaseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhaseEvent entity.
func (_u *PhaseEventUpdateOne) Save(ctx context.Context) (*PhaseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseEventUpdateOne) SaveX(ctx context.Context) *PhaseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhaseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := phaseevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameID(); ok {
		if err := phaseevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromPhase(); ok {
		if err := phaseevent.FromPhaseValidator(v); err != nil {
			return &ValidationError{Name: "from_phase", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.from_phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToPhase(); ok {
		if err := phaseevent.ToPhaseValidator(v); err != nil {
			return &ValidationError{Name: "to_phase", err: fmt.Errorf(`ent: validator failed for field "PhaseEvent.to_phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PhaseEventUpdateOne) sqlSave(ctx context.Context) (_node *PhaseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaseevent.Table, phaseevent.Columns, sqlgraph.NewFieldSpec(phaseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhaseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phaseevent.FieldID)
		for _, f := range fields {
			if !phaseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phaseevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(phaseevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(phaseevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromPhase(); ok {
		_spec.SetField(phaseevent.FieldFromPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToPhase(); ok {
		_spec.SetField(phaseevent.FieldToPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.MsInPhase(); ok {
		_spec.SetField(phaseevent.FieldMsInPhase, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMsInPhase(); ok {
		_spec.AddField(phaseevent.FieldMsInPhase, field.TypeInt64, value)
	}
	_node = &PhaseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
