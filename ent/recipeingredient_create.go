// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foodgram-api/ent/ingredient"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecipeIngredientCreate is the builder for creating a RecipeIngredient entity.
type RecipeIngredientCreate struct {
	config
	mutation *RecipeIngredientMutation
	hooks    []Hook
}

// SetRecipeID sets the "recipe_id" field.
func (_c *RecipeIngredientCreate) SetRecipeID(v int) *RecipeIngredientCreate {
	_c.mutation.SetRecipeID(v)
	return _c
}

// SetIngredientID sets the "ingredient_id" field.
func (_c *RecipeIngredientCreate) SetIngredientID(v int) *RecipeIngredientCreate {
	_c.mutation.SetIngredientID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *RecipeIngredientCreate) SetAmount(v int) *RecipeIngredientCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetRecipe sets the "recipe" edge to the Recipe entity.
func (_c *RecipeIngredientCreate) SetRecipe(v *Recipe) *RecipeIngredientCreate {
	return _c.SetRecipeID(v.ID)
}

// SetIngredient sets the "ingredient" edge to the Ingredient entity.
func (_c *RecipeIngredientCreate) SetIngredient(v *Ingredient) *RecipeIngredientCreate {
	return _c.SetIngredientID(v.ID)
}

// Mutation returns the RecipeIngredientMutation object of the builder.
func (_c *RecipeIngredientCreate) Mutation() *RecipeIngredientMutation {
	return _c.mutation
}

// Save creates the RecipeIngredient in the database.
func (_c *RecipeIngredientCreate) Save(ctx context.Context) (*RecipeIngredient, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecipeIngredientCreate) SaveX(ctx context.Context) *RecipeIngredient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeIngredientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeIngredientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecipeIngredientCreate) check() error {
	if _, ok := _c.mutation.RecipeID(); !ok {
		return &ValidationError{Name: "recipe_id", err: errors.New(`ent: missing required field "RecipeIngredient.recipe_id"`)}
	}
	if _, ok := _c.mutation.IngredientID(); !ok {
		return &ValidationError{Name: "ingredient_id", err: errors.New(`ent: missing required field "RecipeIngredient.ingredient_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "RecipeIngredient.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := recipeingredient.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "RecipeIngredient.amount": %w`, err)}
		}
	}
	if len(_c.mutation.RecipeIDs()) == 0 {
		return &ValidationError{Name: "recipe", err: errors.New(`ent: missing required edge "RecipeIngredient.recipe"`)}
	}
	if len(_c.mutation.IngredientIDs()) == 0 {
		return &ValidationError{Name: "ingredient", err: errors.New(`ent: missing required edge "RecipeIngredient.ingredient"`)}
	}
	return nil
}

func (_c *RecipeIngredientCreate) sqlSave(ctx context.Context) (*RecipeIngredient, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecipeIngredientCreate) createSpec() (*RecipeIngredient, *sqlgraph.CreateSpec) {
	var (
		_node = &RecipeIngredient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recipeingredient.Table, sqlgraph.NewFieldSpec(recipeingredient.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(recipeingredient.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if nodes := _c.mutation.RecipeIDs(); len(nodes) > 0 {
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
		_node.RecipeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IngredientIDs(); len(nodes) > 0 {
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
		_node.IngredientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecipeIngredientCreateBulk is the builder for creating many RecipeIngredient entities in bulk.
type RecipeIngredientCreateBulk struct {
	config
	err      error
	builders []*RecipeIngredientCreate
}

// Save creates the RecipeIngredient entities in the database.
func (_c *RecipeIngredientCreateBulk) Save(ctx context.Context) ([]*RecipeIngredient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecipeIngredient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecipeIngredientMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *RecipeIngredientCreateBulk) SaveX(ctx context.Context) []*RecipeIngredient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeIngredientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeIngredientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
