// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
	"foodgram-api/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecipeCreate is the builder for creating a Recipe entity.
type RecipeCreate struct {
	config
	mutation *RecipeMutation
	hooks    []Hook
}

// SetAuthorID sets the "author_id" field.
func (_c *RecipeCreate) SetAuthorID(v int) *RecipeCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RecipeCreate) SetName(v string) *RecipeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetImage sets the "image" field.
func (_c *RecipeCreate) SetImage(v string) *RecipeCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableImage(v *string) *RecipeCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *RecipeCreate) SetText(v string) *RecipeCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *RecipeCreate) SetNillableText(v *string) *RecipeCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetCookingTime sets the "cooking_time" field.
func (_c *RecipeCreate) SetCookingTime(v int) *RecipeCreate {
	_c.mutation.SetCookingTime(v)
	return _c
}

// SetPubDate sets the "pub_date" field.
func (_c *RecipeCreate) SetPubDate(v time.Time) *RecipeCreate {
	_c.mutation.SetPubDate(v)
	return _c
}

// SetNillablePubDate sets the "pub_date" field if the given value is not nil.
func (_c *RecipeCreate) SetNillablePubDate(v *time.Time) *RecipeCreate {
	if v != nil {
		_c.SetPubDate(*v)
	}
	return _c
}

// SetShortLink sets the "short_link" field.
func (_c *RecipeCreate) SetShortLink(v string) *RecipeCreate {
	_c.mutation.SetShortLink(v)
	return _c
}

// SetAuthor sets the "author" edge to the User entity.
func (_c *RecipeCreate) SetAuthor(v *User) *RecipeCreate {
	return _c.SetAuthorID(v.ID)
}

// AddRecipeIngredientIDs adds the "recipe_ingredients" edge to the RecipeIngredient entity by IDs.
func (_c *RecipeCreate) AddRecipeIngredientIDs(ids ...int) *RecipeCreate {
	_c.mutation.AddRecipeIngredientIDs(ids...)
	return _c
}

// AddRecipeIngredients adds the "recipe_ingredients" edges to the RecipeIngredient entity.
func (_c *RecipeCreate) AddRecipeIngredients(v ...*RecipeIngredient) *RecipeCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecipeIngredientIDs(ids...)
}

// AddFavoritedByIDs adds the "favorited_by" edge to the Favorite entity by IDs.
func (_c *RecipeCreate) AddFavoritedByIDs(ids ...int) *RecipeCreate {
	_c.mutation.AddFavoritedByIDs(ids...)
	return _c
}

// AddFavoritedBy adds the "favorited_by" edges to the Favorite entity.
func (_c *RecipeCreate) AddFavoritedBy(v ...*Favorite) *RecipeCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFavoritedByIDs(ids...)
}

// AddInCartIDs adds the "in_carts" edge to the CartItem entity by IDs.
func (_c *RecipeCreate) AddInCartIDs(ids ...int) *RecipeCreate {
	_c.mutation.AddInCartIDs(ids...)
	return _c
}

// AddInCarts adds the "in_carts" edges to the CartItem entity.
func (_c *RecipeCreate) AddInCarts(v ...*CartItem) *RecipeCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInCartIDs(ids...)
}

// Mutation returns the RecipeMutation object of the builder.
func (_c *RecipeCreate) Mutation() *RecipeMutation {
	return _c.mutation
}

// Save creates the Recipe in the database.
func (_c *RecipeCreate) Save(ctx context.Context) (*Recipe, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecipeCreate) SaveX(ctx context.Context) *Recipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecipeCreate) defaults() {
	if _, ok := _c.mutation.Image(); !ok {
		v := recipe.DefaultImage
		_c.mutation.SetImage(v)
	}
	if _, ok := _c.mutation.Text(); !ok {
		v := recipe.DefaultText
		_c.mutation.SetText(v)
	}
	if _, ok := _c.mutation.PubDate(); !ok {
		v := recipe.DefaultPubDate()
		_c.mutation.SetPubDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecipeCreate) check() error {
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Recipe.author_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Recipe.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := recipe.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Recipe.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Image(); !ok {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required field "Recipe.image"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Recipe.text"`)}
	}
	if _, ok := _c.mutation.CookingTime(); !ok {
		return &ValidationError{Name: "cooking_time", err: errors.New(`ent: missing required field "Recipe.cooking_time"`)}
	}
	if v, ok := _c.mutation.CookingTime(); ok {
		if err := recipe.CookingTimeValidator(v); err != nil {
			return &ValidationError{Name: "cooking_time", err: fmt.Errorf(`ent: validator failed for field "Recipe.cooking_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PubDate(); !ok {
		return &ValidationError{Name: "pub_date", err: errors.New(`ent: missing required field "Recipe.pub_date"`)}
	}
	if _, ok := _c.mutation.ShortLink(); !ok {
		return &ValidationError{Name: "short_link", err: errors.New(`ent: missing required field "Recipe.short_link"`)}
	}
	if v, ok := _c.mutation.ShortLink(); ok {
		if err := recipe.ShortLinkValidator(v); err != nil {
			return &ValidationError{Name: "short_link", err: fmt.Errorf(`ent: validator failed for field "Recipe.short_link": %w`, err)}
		}
	}
	if len(_c.mutation.AuthorIDs()) == 0 {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required edge "Recipe.author"`)}
	}
	return nil
}

func (_c *RecipeCreate) sqlSave(ctx context.Context) (*Recipe, error) {
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

func (_c *RecipeCreate) createSpec() (*Recipe, *sqlgraph.CreateSpec) {
	var (
		_node = &Recipe{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recipe.Table, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recipe.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(recipe.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(recipe.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.CookingTime(); ok {
		_spec.SetField(recipe.FieldCookingTime, field.TypeInt, value)
		_node.CookingTime = value
	}
	if value, ok := _c.mutation.PubDate(); ok {
		_spec.SetField(recipe.FieldPubDate, field.TypeTime, value)
		_node.PubDate = value
	}
	if value, ok := _c.mutation.ShortLink(); ok {
		_spec.SetField(recipe.FieldShortLink, field.TypeString, value)
		_node.ShortLink = value
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recipe.AuthorTable,
			Columns: []string{recipe.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuthorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecipeIngredientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.RecipeIngredientsTable,
			Columns: []string{recipe.RecipeIngredientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recipeingredient.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FavoritedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.FavoritedByTable,
			Columns: []string{recipe.FavoritedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(favorite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InCartsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recipe.InCartsTable,
			Columns: []string{recipe.InCartsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cartitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecipeCreateBulk is the builder for creating many Recipe entities in bulk.
type RecipeCreateBulk struct {
	config
	err      error
	builders []*RecipeCreate
}

// Save creates the Recipe entities in the database.
func (_c *RecipeCreateBulk) Save(ctx context.Context) ([]*Recipe, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recipe, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecipeMutation)
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
func (_c *RecipeCreateBulk) SaveX(ctx context.Context) []*Recipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
