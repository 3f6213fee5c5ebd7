// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foodgram-api/ent/ingredient"
	"foodgram-api/ent/predicate"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecipeIngredientUpdate is the builder for updating RecipeIngredient entities.
type RecipeIngredientUpdate struct {
	config
	hooks    []Hook
	mutation *RecipeIngredientMutation
}

// Where appends a list predicates to the RecipeIngredientUpdate builder.
func (_u *RecipeIngredientUpdate) Where(ps ...predicate.RecipeIngredient) *RecipeIngredientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecipeID sets the "recipe_id" field.
func (_u *RecipeIngredientUpdate) SetRecipeID(v int) *RecipeIngredientUpdate {
	_u.mutation.SetRecipeID(v)
	return _u
}

// SetNillableRecipeID sets the "recipe_id" field if the given value is not nil.
func (_u *RecipeIngredientUpdate) SetNillableRecipeID(v *int) *RecipeIngredientUpdate {
	if v != nil {
		_u.SetRecipeID(*v)
	}
	return _u
}

// SetIngredientID sets the "ingredient_id" field.
func (_u *RecipeIngredientUpdate) SetIngredientID(v int) *RecipeIngredientUpdate {
	_u.mutation.SetIngredientID(v)
	return _u
}

// SetNillableIngredientID sets the "ingredient_id" field if the given value is not nil.
func (_u *RecipeIngredientUpdate) SetNillableIngredientID(v *int) *RecipeIngredientUpdate {
	if v != nil {
		_u.SetIngredientID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *RecipeIngredientUpdate) SetAmount(v int) *RecipeIngredientUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *RecipeIngredientUpdate) SetNillableAmount(v *int) *RecipeIngredientUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *RecipeIngredientUpdate) AddAmount(v int) *RecipeIngredientUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *RecipeIngredientUpdate) SetRecipe(v *Recipe) *RecipeIngredientUpdate {
	return _u.SetRecipeID(v.ID)
}

// SetIngredient sets the "ingredient" edge to the Ingredient entity.
func (_u *RecipeIngredientUpdate) SetIngredient(v *Ingredient) *RecipeIngredientUpdate {
	return _u.SetIngredientID(v.ID)
}

// Mutation returns the RecipeIngredientMutation object of the builder.
func (_u *RecipeIngredientUpdate) Mutation() *RecipeIngredientMutation {
	return _u.mutation
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *RecipeIngredientUpdate) ClearRecipe() *RecipeIngredientUpdate {
	_u.mutation.ClearRecipe()
	return _u
}

// ClearIngredient clears the "ingredient" edge to the Ingredient entity.
func (_u *RecipeIngredientUpdate) ClearIngredient() *RecipeIngredientUpdate {
	_u.mutation.ClearIngredient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecipeIngredientUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeIngredientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecipeIngredientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeIngredientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeIngredientUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := recipeingredient.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "RecipeIngredient.amount": %w`, err)}
		}
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecipeIngredient.recipe"`)
	}
	if _u.mutation.IngredientCleared() && len(_u.mutation.IngredientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecipeIngredient.ingredient"`)
	}
	return nil
}

func (_u *RecipeIngredientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipeingredient.Table, recipeingredient.Columns, sqlgraph.NewFieldSpec(recipeingredient.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(recipeingredient.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(recipeingredient.FieldAmount, field.TypeInt, value)
	}
	if _u.mutation.RecipeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipeingredient.RecipeTable,
			Columns: []string{recipeingredient.RecipeColumn},
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
			Table:   recipeingredient.RecipeTable,
			Columns: []string{recipeingredient.RecipeColumn},
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
	if _u.mutation.IngredientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipeingredient.IngredientTable,
			Columns: []string{recipeingredient.IngredientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IngredientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipeingredient.IngredientTable,
			Columns: []string{recipeingredient.IngredientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipeingredient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecipeIngredientUpdateOne is the builder for updating a single RecipeIngredient entity.
type RecipeIngredientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecipeIngredientMutation
}

// SetRecipeID sets the "recipe_id" field.
func (_u *RecipeIngredientUpdateOne) SetRecipeID(v int) *RecipeIngredientUpdateOne {
	_u.mutation.SetRecipeID(v)
	return _u
}

// SetNillableRecipeID sets the "recipe_id" field if the given value is not nil.
func (_u *RecipeIngredientUpdateOne) SetNillableRecipeID(v *int) *RecipeIngredientUpdateOne {
	if v != nil {
		_u.SetRecipeID(*v)
	}
	return _u
}

// SetIngredientID sets the "ingredient_id" field.
func (_u *RecipeIngredientUpdateOne) SetIngredientID(v int) *RecipeIngredientUpdateOne {
	_u.mutation.SetIngredientID(v)
	return _u
}

// SetNillableIngredientID sets the "ingredient_id" field if the given value is not nil.
func (_u *RecipeIngredientUpdateOne) SetNillableIngredientID(v *int) *RecipeIngredientUpdateOne {
	if v != nil {
		_u.SetIngredientID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *RecipeIngredientUpdateOne) SetAmount(v int) *RecipeIngredientUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *RecipeIngredientUpdateOne) SetNillableAmount(v *int) *RecipeIngredientUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *RecipeIngredientUpdateOne) AddAmount(v int) *RecipeIngredientUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_u *RecipeIngredientUpdateOne) SetRecipe(v *Recipe) *RecipeIngredientUpdateOne {
	return _u.SetRecipeID(v.ID)
}

// SetIngredient sets the "ingredient" edge to the Ingredient entity.
func (_u *RecipeIngredientUpdateOne) SetIngredient(v *Ingredient) *RecipeIngredientUpdateOne {
	return _u.SetIngredientID(v.ID)
}

// Mutation returns the RecipeIngredientMutation object of the builder.
func (_u *RecipeIngredientUpdateOne) Mutation() *RecipeIngredientMutation {
	return _u.mutation
}

// ClearRecipe clears the "recipe" edge to the Recipe entity.
func (_u *RecipeIngredientUpdateOne) ClearRecipe() *RecipeIngredientUpdateOne {
	_u.mutation.ClearRecipe()
	return _u
}

// ClearIngredient clears the "ingredient" edge to the Ingredient entity.
func (_u *RecipeIngredientUpdateOne) ClearIngredient() *RecipeIngredientUpdateOne {
	_u.mutation.ClearIngredient()
	return _u
}

// Where appends a list predicates to the RecipeIngredientUpdate builder.
func (_u *RecipeIngredientUpdateOne) Where(ps ...predicate.RecipeIngredient) *RecipeIngredientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecipeIngredientUpdateOne) Select(field string, fields ...string) *RecipeIngredientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecipeIngredient entity.
func (_u *RecipeIngredientUpdateOne) Save(ctx context.Context) (*RecipeIngredient, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeIngredientUpdateOne) SaveX(ctx context.Context) *RecipeIngredient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecipeIngredientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeIngredientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeIngredientUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := recipeingredient.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "RecipeIngredient.amount": %w`, err)}
		}
	}
	if _u.mutation.RecipeCleared() && len(_u.mutation.RecipeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecipeIngredient.recipe"`)
	}
	if _u.mutation.IngredientCleared() && len(_u.mutation.IngredientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecipeIngredient.ingredient"`)
	}
	return nil
}

func (_u *RecipeIngredientUpdateOne) sqlSave(ctx context.Context) (_node *RecipeIngredient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipeingredient.Table, recipeingredient.Columns, sqlgraph.NewFieldSpec(recipeingredient.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecipeIngredient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipeingredient.FieldID)
		for _, f := range fields {
			if !recipeingredient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recipeingredient.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(recipeingredient.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(recipeingredient.FieldAmount, field.TypeInt, value)
	}
	if _u.mutation.RecipeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipeingredient.RecipeTable,
			Columns: []string{recipeingredient.RecipeColumn},
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
			Table:   recipeingredient.RecipeTable,
			Columns: []string{recipeingredient.RecipeColumn},
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
	if _u.mutation.IngredientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipeingredient.IngredientTable,
			Columns: []string{recipeingredient.IngredientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IngredientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipeingredient.IngredientTable,
			Columns: []string{recipeingredient.IngredientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingredient.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecipeIngredient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipeingredient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
