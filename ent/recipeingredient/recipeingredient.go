// Code generated by ent, DO NOT EDIT.

package recipeingredient

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recipeingredient type in the database.
	Label = "recipe_ingredient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecipeID holds the string denoting the recipe_id field in the database.
	FieldRecipeID = "recipe_id"
	// FieldIngredientID holds the string denoting the ingredient_id field in the database.
	FieldIngredientID = "ingredient_id"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// EdgeRecipe holds the string denoting the recipe edge name in mutations.
	EdgeRecipe = "recipe"
	// EdgeIngredient holds the string denoting the ingredient edge name in mutations.
	EdgeIngredient = "ingredient"
	// Table holds the table name of the recipeingredient in the database.
	Table = "recipe_ingredients"
	// RecipeTable is the table that holds the recipe relation/edge.
	RecipeTable = "recipe_ingredients"
	// RecipeInverseTable is the table name for the Recipe entity.
	// It exists in this package in order to avoid circular dependency with the "recipe" package.
	RecipeInverseTable = "recipes"
	// RecipeColumn is the table column denoting the recipe relation/edge.
	RecipeColumn = "recipe_id"
	// IngredientTable is the table that holds the ingredient relation/edge.
	IngredientTable = "recipe_ingredients"
	// IngredientInverseTable is the table name for the Ingredient entity.
	// It exists in this package in order to avoid circular dependency with the "ingredient" package.
	IngredientInverseTable = "ingredients"
	// IngredientColumn is the table column denoting the ingredient relation/edge.
	IngredientColumn = "ingredient_id"
)

// Columns holds all SQL columns for recipeingredient fields.
var Columns = []string{
	FieldID,
	FieldRecipeID,
	FieldIngredientID,
	FieldAmount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	AmountValidator func(int) error
)

// OrderOption defines the ordering options for the RecipeIngredient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecipeID orders the results by the recipe_id field.
func ByRecipeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipeID, opts...).ToFunc()
}

// ByIngredientID orders the results by the ingredient_id field.
func ByIngredientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngredientID, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByRecipeField orders the results by recipe field.
func ByRecipeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipeStep(), sql.OrderByField(field, opts...))
	}
}

// ByIngredientField orders the results by ingredient field.
func ByIngredientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIngredientStep(), sql.OrderByField(field, opts...))
	}
}
func newRecipeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecipeTable, RecipeColumn),
	)
}
func newIngredientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IngredientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IngredientTable, IngredientColumn),
	)
}
