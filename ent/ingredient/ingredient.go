// Code generated by ent, DO NOT EDIT.

package ingredient

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ingredient type in the database.
	Label = "ingredient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMeasurementUnit holds the string denoting the measurement_unit field in the database.
	FieldMeasurementUnit = "measurement_unit"
	// EdgeRecipeIngredients holds the string denoting the recipe_ingredients edge name in mutations.
	EdgeRecipeIngredients = "recipe_ingredients"
	// Table holds the table name of the ingredient in the database.
	Table = "ingredients"
	// RecipeIngredientsTable is the table that holds the recipe_ingredients relation/edge.
	RecipeIngredientsTable = "recipe_ingredients"
	// RecipeIngredientsInverseTable is the table name for the RecipeIngredient entity.
	// It exists in this package in order to avoid circular dependency with the "recipeingredient" package.
	RecipeIngredientsInverseTable = "recipe_ingredients"
	// RecipeIngredientsColumn is the table column denoting the recipe_ingredients relation/edge.
	RecipeIngredientsColumn = "ingredient_id"
)

// Columns holds all SQL columns for ingredient fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldMeasurementUnit,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// MeasurementUnitValidator is a validator for the "measurement_unit" field. It is called by the builders before save.
	MeasurementUnitValidator func(string) error
)

// OrderOption defines the ordering options for the Ingredient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMeasurementUnit orders the results by the measurement_unit field.
func ByMeasurementUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeasurementUnit, opts...).ToFunc()
}

// ByRecipeIngredientsCount orders the results by recipe_ingredients count.
func ByRecipeIngredientsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecipeIngredientsStep(), opts...)
	}
}

// ByRecipeIngredients orders the results by recipe_ingredients terms.
func ByRecipeIngredients(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipeIngredientsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecipeIngredientsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipeIngredientsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecipeIngredientsTable, RecipeIngredientsColumn),
	)
}
