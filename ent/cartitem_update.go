// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/predicate"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CartItemUpdate is the builder for updating CartItem entities.
type CartItemUpdate struct {
	config
	hooks    []Hook
	mutation *CartItemMutation
}

// Where appends a list predicates to the CartItemUpdate builder.
func (_u *CartItemUpdate) Where(ps ...predicate.CartItem) *CartItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CartItemUpdate) SetUserID(v int) *CartItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CartItemUpdate) SetNillableUserID(v *int) *CartItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRecipeID sets the "recipe_id" field.
func (_u *CartItemUpdate) SetRecipeID(v int) *CartItemUpdate {
	_u.mutation.SetRecipeID(v)
	return _u
}

// SetNillableRecipeID sets the "recipe_id" field if the given value is not nil.
func (_u *CartItemUpdate) SetNillableRecipeID(v *int) *CartItemUpdate {
	if v != nil {
		_u.SetRecipeID(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CartItemUpdate) SetUser(v *User) *CartItemUpdate {
	return _u.SetUserID(v.ID)
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *CartItemUpdate) SetRecipe(v *Recipe) *CartItemUpdate {
	return _u.SetRecipeID(v.ID)
}

// Mutation returns the CartItemMutation object of the builder.
func (_u *CartItemUpdate) Mutation() *CartItemMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CartItemUpdate) ClearUser() *CartItemUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *CartItemUpdate) ClearRecipe() *CartItemUpdate {
	_u.mutation.ClearRecipe()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CartItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CartItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CartItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CartItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CartItemUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CartItem.user"`)
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CartItem.recipe"`)
	}
	return nil
}

func (_u *CartItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cartitem.Table, cartitem.Columns, sqlgraph.NewFieldSpec(cartitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.UserTable,
			Columns: []string{cartitem.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.UserTable,
			Columns: []string{cartitem.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecipeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.RecipeTable,
			Columns: []string{cartitem.RecipeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.RecipeTable,
			Columns: []string{cartitem.RecipeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cartitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CartItemUpdateOne is the builder for updating a single CartItem entity.
type CartItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CartItemMutation
}

// SetUserID sets the "user_id" field.
func (_u *CartItemUpdateOne) SetUserID(v int) *CartItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CartItemUpdateOne) SetNillableUserID(v *int) *CartItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRecipeID sets the "recipe_id" field.
func (_u *CartItemUpdateOne) SetRecipeID(v int) *CartItemUpdateOne {
	_u.mutation.SetRecipeID(v)
	return _u
}

// SetNillableRecipeID sets the "recipe_id" field if the given value is not nil.
func (_u *CartItemUpdateOne) SetNillableRecipeID(v *int) *CartItemUpdateOne {
	if v != nil {
		_u.SetRecipeID(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *CartItemUpdateOne) SetUser(v *User) *CartItemUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *CartItemUpdateOne) SetRecipe(v *Recipe) *CartItemUpdateOne {
	return _u.SetRecipeID(v.ID)
}

// Mutation returns the CartItemMutation object of the builder.
func (_u *CartItemUpdateOne) Mutation() *CartItemMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *CartItemUpdateOne) ClearUser() *CartItemUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *CartItemUpdateOne) ClearRecipe() *CartItemUpdateOne {
	_u.mutation.ClearRecipe()
	return _u
}

// Where appends a list predicates to the CartItemUpdate builder.
func (_u *CartItemUpdateOne) Where(ps ...predicate.CartItem) *CartItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CartItemUpdateOne) Select(field string, fields ...string) *CartItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CartItem entity.
func (_u *CartItemUpdateOne) Save(ctx context.Context) (*CartItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CartItemUpdateOne) SaveX(ctx context.Context) *CartItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CartItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CartItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CartItemUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CartItem.user"`)
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CartItem.recipe"`)
	}
	return nil
}

func (_u *CartItemUpdateOne) sqlSave(ctx context.Context) (_node *CartItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cartitem.Table, cartitem.Columns, sqlgraph.NewFieldSpec(cartitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CartItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cartitem.FieldID)
		for _, f := range fields {
			if !cartitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cartitem.FieldID {
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
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.UserTable,
			Columns: []string{cartitem.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.UserTable,
			Columns: []string{cartitem.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecipeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.RecipeTable,
			Columns: []string{cartitem.RecipeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cartitem.RecipeTable,
			Columns: []string{cartitem.RecipeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CartItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cartitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
