// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nikverma/physlab/ent/answerevent"
	"github.com/nikverma/physlab/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *AnswerEventUpdate) SetGameID(v string) *AnswerEventUpdate {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGameID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AnswerEventUpdate) SetPhase(v string) *AnswerEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePhase(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AnswerEventUpdate) SetQuestion(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestion(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSelected sets the "selected" field.
func (_u *AnswerEventUpdate) SetSelected(v int) *AnswerEventUpdate {
	_u.mutation.ResetSelected()
	_u.mutation.SetSelected(v)
	return _u
}

// SetNillableSelected sets the "selected" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSelected(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSelected(*v)
	}
	return _u
}

// AddSelected adds value to the "selected" field.
func (_u *AnswerEventUpdate) AddSelected(v int) *AnswerEventUpdate {
	_u.mutation.AddSelected(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMsToAnswer sets the "ms_to_answer" field.
func (_u *AnswerEventUpdate) SetMsToAnswer(v int64) *AnswerEventUpdate {
	_u.mutation.ResetMsToAnswer()
	_u.mutation.SetMsToAnswer(v)
	return _u
}

// SetNillableMsToAnswer sets the "ms_to_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMsToAnswer(v *int64) *AnswerEventUpdate {
	if v != nil {
		_u.SetMsToAnswer(*v)
	}
	return _u
}

// AddMsToAnswer adds value to the "ms_to_answer" field.
func (_u *AnswerEventUpdate) AddMsToAnswer(v int64) *AnswerEventUpdate {
	_u.mutation.AddMsToAnswer(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameID(); ok {
		if err := answerevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := answerevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := answerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(answerevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(answerevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(answerevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(answerevent.FieldSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelected(); ok {
		_spec.AddField(answerevent.FieldSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MsToAnswer(); ok {
		_spec.SetField(answerevent.FieldMsToAnswer, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMsToAnswer(); ok {
		_spec.AddField(answerevent.FieldMsToAnswer, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *AnswerEventUpdateOne) SetGameID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGameID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AnswerEventUpdateOne) SetPhase(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePhase(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AnswerEventUpdateOne) SetQuestion(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestion(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSelected sets the "selected" field.
func (_u *AnswerEventUpdateOne) SetSelected(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSelected()
	_u.mutation.SetSelected(v)
	return _u
}

// SetNillableSelected sets the "selected" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSelected(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSelected(*v)
	}
	return _u
}

// AddSelected adds value to the "selected" field.
func (_u *AnswerEventUpdateOne) AddSelected(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSelected(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMsToAnswer sets the "ms_to_answer" field.
func (_u *AnswerEventUpdateOne) SetMsToAnswer(v int64) *AnswerEventUpdateOne {
	_u.mutation.ResetMsToAnswer()
	_u.mutation.SetMsToAnswer(v)
	return _u
}

// SetNillableMsToAnswer sets the "ms_to_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMsToAnswer(v *int64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMsToAnswer(*v)
	}
	return _u
}

// AddMsToAnswer adds value to the "ms_to_answer" field.
func (_u *AnswerEventUpdateOne) AddMsToAnswer(v int64) *AnswerEventUpdateOne {
	_u.mutation.AddMsToAnswer(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameID(); ok {
		if err := answerevent.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.game_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := answerevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := answerevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(answerevent.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(answerevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(answerevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Selected(); ok {
		_spec.SetField(answerevent.FieldSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelected(); ok {
		_spec.AddField(answerevent.FieldSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MsToAnswer(); ok {
		_spec.SetField(answerevent.FieldMsToAnswer, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMsToAnswer(); ok {
		_spec.AddField(answerevent.FieldMsToAnswer, field.TypeInt64, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
