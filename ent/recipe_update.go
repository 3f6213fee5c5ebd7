// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
	"foodgram-api/ent/predicate"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
	"foodgram-api/ent/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecipeUpdate is the builder for updating Recipe entities.
type RecipeUpdate struct {
	config
	hooks    []Hook
	mutation *RecipeMutation
}

// Where appends a list predicates to the RecipeUpdate builder.
func (_u *RecipeUpdate) Where(ps ...predicate.Recipe) *RecipeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *RecipeUpdate) SetAuthorID(v int) *RecipeUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableAuthorID(v *int) *RecipeUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecipeUpdate) SetName(v string) *RecipeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableName(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *RecipeUpdate) SetImage(v string) *RecipeUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableImage(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *RecipeUpdate) SetText(v string) *RecipeUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableText(v *string) *RecipeUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCookingTime sets the "cooking_time" field.
func (_u *RecipeUpdate) SetCookingTime(v int) *RecipeUpdate {
	_u.mutation.ResetCookingTime()
	_u.mutation.SetCookingTime(v)
	return _u
}

// SetNillableCookingTime sets the "cooking_time" field if the given value is not nil.
func (_u *RecipeUpdate) SetNillableCookingTime(v *int) *RecipeUpdate {
	if v != nil {
		_u.SetCookingTime(*v)
	}
	return _u
}

// AddCookingTime adds value to the "cooking_time" field.
func (_u *RecipeUpdate) AddCookingTime(v int) *RecipeUpdate {
	_u.mutation.AddCookingTime(v)
	return _u
}

// SetAuthor sets the "author" edge to the User entity.
func (_u *RecipeUpdate) SetAuthor(v *User) *RecipeUpdate {
	return _u.SetAuthorID(v.ID)
}

// AddRecipeIngredientIDs adds the "recipe_ingredients" edge to the RecipeIngredient entity by IDs.
func (_u *RecipeUpdate) AddRecipeIngredientIDs(ids ...int) *RecipeUpdate {
	_u.mutation.AddRecipeIngredientIDs(ids...)
	return _u
}

// AddRecipeIngredients adds the "recipe_ingredients" edges to the RecipeIngredient entity.
func (_u *RecipeUpdate) AddRecipeIngredients(v ...*RecipeIngredient) *RecipeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecipeIngredientIDs(ids...)
}

// AddFavoritedByIDs adds the "favorited_by" edge to the Favorite entity by IDs.
func (_u *RecipeUpdate) AddFavoritedByIDs(ids ...int) *RecipeUpdate {
	_u.mutation.AddFavoritedByIDs(ids...)
	return _u
}

// AddFavoritedBy adds the "favorited_by" edges to the Favorite entity.
func (_u *RecipeUpdate) AddFavoritedBy(v ...*Favorite) *RecipeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFavoritedByIDs(ids...)
}

// AddInCartIDs adds the "in_carts" edge to the CartItem entity by IDs.
func (_u *RecipeUpdate) AddInCartIDs(ids ...int) *RecipeUpdate {
	_u.mutation.AddInCartIDs(ids...)
	return _u
}

// AddInCarts adds the "in_carts" edges to the CartItem entity.
func (_u *RecipeUpdate) AddInCarts(v ...*CartItem) *RecipeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInCartIDs(ids...)
}

// Mutation returns the RecipeMutation object of the builder.
func (_u *RecipeUpdate) Mutation() *RecipeMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the User entity.
func (_u *RecipeUpdate) ClearAuthor() *RecipeUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearRecipeIngredients clears all "recipe_ingredients" edges to the RecipeIngredient entity.
func (_u *RecipeUpdate) ClearRecipeIngredients() *RecipeUpdate {
	_u.mutation.ClearRecipeIngredients()
	return _u
}

// RemoveRecipeIngredientIDs removes the "recipe_ingredients" edge to RecipeIngredient entities by IDs.
func (_u *RecipeUpdate) RemoveRecipeIngredientIDs(ids ...int) *RecipeUpdate {
	_u.mutation.RemoveRecipeIngredientIDs(ids...)
	return _u
}

// RemoveRecipeIngredients removes "recipe_ingredients" edges to RecipeIngredient entities.
func (_u *RecipeUpdate) RemoveRecipeIngredients(v ...*RecipeIngredient) *RecipeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecipeIngredientIDs(ids...)
}

// ClearFavoritedBy clears all "favorited_by" edges to the Favorite entity.
func (_u *RecipeUpdate) ClearFavoritedBy() *RecipeUpdate {
	_u.mutation.ClearFavoritedBy()
	return _u
}

// RemoveFavoritedByIDs removes the "favorited_by" edge to Favorite entities by IDs.
func (_u *RecipeUpdate) RemoveFavoritedByIDs(ids ...int) *RecipeUpdate {
	_u.mutation.RemoveFavoritedByIDs(ids...)
	return _u
}

// RemoveFavoritedBy removes "favorited_by" edges to Favorite entities.
func (_u *RecipeUpdate) RemoveFavoritedBy(v ...*Favorite) *RecipeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFavoritedByIDs(ids...)
}

// ClearInCarts clears all "in_carts" edges to the CartItem entity.
func (_u *RecipeUpdate) ClearInCarts() *RecipeUpdate {
	_u.mutation.ClearInCarts()
	return _u
}

// RemoveInCartIDs removes the "in_carts" edge to CartItem entities by IDs.
func (_u *RecipeUpdate) RemoveInCartIDs(ids ...int) *RecipeUpdate {
	_u.mutation.RemoveInCartIDs(ids...)
	return _u
}

// RemoveInCarts removes "in_carts" edges to CartItem entities.
func (_u *RecipeUpdate) RemoveInCarts(v ...*CartItem) *RecipeUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInCartIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecipeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecipeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := recipe.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Recipe.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CookingTime(); ok {
		if err := recipe.CookingTimeValidator(v); err != nil {
			return &ValidationError{Name: "cooking_time", err: fmt.Errorf(`ent: validator failed for field "Recipe.cooking_time": %w`, err)}
		}
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recipe.author"`)
	}
	return nil
}

func (_u *RecipeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipe.Table, recipe.Columns, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recipe.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(recipe.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(recipe.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CookingTime(); ok {
		_spec.SetField(recipe.FieldCookingTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCookingTime(); ok {
		_spec.AddField(recipe.FieldCookingTime, field.TypeInt, value)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecipeIngredientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecipeIngredientsIDs(); len(nodes) > 0 && !_u.mutation.RecipeIngredientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIngredientsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FavoritedByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFavoritedByIDs(); len(nodes) > 0 && !_u.mutation.FavoritedByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FavoritedByIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InCartsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInCartsIDs(); len(nodes) > 0 && !_u.mutation.InCartsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InCartsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecipeUpdateOne is the builder for updating a single Recipe entity.
type RecipeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecipeMutation
}

// SetAuthorID sets the "author_id" field.
func (_u *RecipeUpdateOne) SetAuthorID(v int) *RecipeUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableAuthorID(v *int) *RecipeUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecipeUpdateOne) SetName(v string) *RecipeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableName(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *RecipeUpdateOne) SetImage(v string) *RecipeUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableImage(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *RecipeUpdateOne) SetText(v string) *RecipeUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableText(v *string) *RecipeUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCookingTime sets the "cooking_time" field.
func (_u *RecipeUpdateOne) SetCookingTime(v int) *RecipeUpdateOne {
	_u.mutation.ResetCookingTime()
	_u.mutation.SetCookingTime(v)
	return _u
}

// SetNillableCookingTime sets the "cooking_time" field if the given value is not nil.
func (_u *RecipeUpdateOne) SetNillableCookingTime(v *int) *RecipeUpdateOne {
	if v != nil {
		_u.SetCookingTime(*v)
	}
	return _u
}

// AddCookingTime adds value to the "cooking_time" field.
func (_u *RecipeUpdateOne) AddCookingTime(v int) *RecipeUpdateOne {
	_u.mutation.AddCookingTime(v)
	return _u
}

// SetAuthor sets the "author" edge to the User entity.
func (_u *RecipeUpdateOne) SetAuthor(v *User) *RecipeUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// AddRecipeIngredientIDs adds the "recipe_ingredients" edge to the RecipeIngredient entity by IDs.
func (_u *RecipeUpdateOne) AddRecipeIngredientIDs(ids ...int) *RecipeUpdateOne {
	_u.mutation.AddRecipeIngredientIDs(ids...)
	return _u
}

// AddRecipeIngredients adds the "recipe_ingredients" edges to the RecipeIngredient entity.
func (_u *RecipeUpdateOne) AddRecipeIngredients(v ...*RecipeIngredient) *RecipeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecipeIngredientIDs(ids...)
}

// AddFavoritedByIDs adds the "favorited_by" edge to the Favorite entity by IDs.
func (_u *RecipeUpdateOne) AddFavoritedByIDs(ids ...int) *RecipeUpdateOne {
	_u.mutation.AddFavoritedByIDs(ids...)
	return _u
}

// AddFavoritedBy adds the "favorited_by" edges to the Favorite entity.
func (_u *RecipeUpdateOne) AddFavoritedBy(v ...*Favorite) *RecipeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFavoritedByIDs(ids...)
}

// AddInCartIDs adds the "in_carts" edge to the CartItem entity by IDs.
func (_u *RecipeUpdateOne) AddInCartIDs(ids ...int) *RecipeUpdateOne {
	_u.mutation.AddInCartIDs(ids...)
	return _u
}

// AddInCarts adds the "in_carts" edges to the CartItem entity.
func (_u *RecipeUpdateOne) AddInCarts(v ...*CartItem) *RecipeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInCartIDs(ids...)
}

// Mutation returns the RecipeMutation object of the builder.
func (_u *RecipeUpdateOne) Mutation() *RecipeMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the User entity.
func (_u *RecipeUpdateOne) ClearAuthor() *RecipeUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearRecipeIngredients clears all "recipe_ingredients" edges to the RecipeIngredient entity.
func (_u *RecipeUpdateOne) ClearRecipeIngredients() *RecipeUpdateOne {
	_u.mutation.ClearRecipeIngredients()
	return _u
}

// RemoveRecipeIngredientIDs removes the "recipe_ingredients" edge to RecipeIngredient entities by IDs.
func (_u *RecipeUpdateOne) RemoveRecipeIngredientIDs(ids ...int) *RecipeUpdateOne {
	_u.mutation.RemoveRecipeIngredientIDs(ids...)
	return _u
}

// RemoveRecipeIngredients removes "recipe_ingredients" edges to RecipeIngredient entities.
func (_u *RecipeUpdateOne) RemoveRecipeIngredients(v ...*RecipeIngredient) *RecipeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecipeIngredientIDs(ids...)
}

// ClearFavoritedBy clears all "favorited_by" edges to the Favorite entity.
func (_u *RecipeUpdateOne) ClearFavoritedBy() *RecipeUpdateOne {
	_u.mutation.ClearFavoritedBy()
	return _u
}

// RemoveFavoritedByIDs removes the "favorited_by" edge to Favorite entities by IDs.
func (_u *RecipeUpdateOne) RemoveFavoritedByIDs(ids ...int) *RecipeUpdateOne {
	_u.mutation.RemoveFavoritedByIDs(ids...)
	return _u
}

// RemoveFavoritedBy removes "favorited_by" edges to Favorite entities.
func (_u *RecipeUpdateOne) RemoveFavoritedBy(v ...*Favorite) *RecipeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFavoritedByIDs(ids...)
}

// ClearInCarts clears all "in_carts" edges to the CartItem entity.
func (_u *RecipeUpdateOne) ClearInCarts() *RecipeUpdateOne {
	_u.mutation.ClearInCarts()
	return _u
}

// RemoveInCartIDs removes the "in_carts" edge to CartItem entities by IDs.
func (_u *RecipeUpdateOne) RemoveInCartIDs(ids ...int) *RecipeUpdateOne {
	_u.mutation.RemoveInCartIDs(ids...)
	return _u
}

// RemoveInCarts removes "in_carts" edges to CartItem entities.
func (_u *RecipeUpdateOne) RemoveInCarts(v ...*CartItem) *RecipeUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInCartIDs(ids...)
}

// Where appends a list predicates to the RecipeUpdate builder.
func (_u *RecipeUpdateOne) Where(ps ...predicate.Recipe) *RecipeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecipeUpdateOne) Select(field string, fields ...string) *RecipeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recipe entity.
func (_u *RecipeUpdateOne) Save(ctx context.Context) (*Recipe, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipeUpdateOne) SaveX(ctx context.Context) *Recipe {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecipeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := recipe.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Recipe.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CookingTime(); ok {
		if err := recipe.CookingTimeValidator(v); err != nil {
			return &ValidationError{Name: "cooking_time", err: fmt.Errorf(`ent: validator failed for field "Recipe.cooking_time": %w`, err)}
		}
	}
	if _u.mutation.AuthorCleared() && len(_u.mutation.AuthorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recipe.author"`)
	}
	return nil
}

func (_u *RecipeUpdateOne) sqlSave(ctx context.Context) (_node *Recipe, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipe.Table, recipe.Columns, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recipe.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipe.FieldID)
		for _, f := range fields {
			if !recipe.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recipe.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recipe.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(recipe.FieldImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(recipe.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CookingTime(); ok {
		_spec.SetField(recipe.FieldCookingTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCookingTime(); ok {
		_spec.AddField(recipe.FieldCookingTime, field.TypeInt, value)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecipeIngredientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecipeIngredientsIDs(); len(nodes) > 0 && !_u.mutation.RecipeIngredientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecipeIngredientsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FavoritedByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFavoritedByIDs(); len(nodes) > 0 && !_u.mutation.FavoritedByCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FavoritedByIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InCartsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInCartsIDs(); len(nodes) > 0 && !_u.mutation.InCartsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InCartsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recipe{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
