// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"foodgram-api/ent/ingredient"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// RecipeIngredient is the model entity for the RecipeIngredient schema.
type RecipeIngredient struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RecipeID holds the value of the "recipe_id" field.
	RecipeID int `json:"recipe_id,omitempty"`
	// IngredientID holds the value of the "ingredient_id" field.
	IngredientID int `json:"ingredient_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount int `json:"amount,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecipeIngredientQuery when eager-loading is set.
	Edges        RecipeIngredientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecipeIngredientEdges holds the relations/edges for other nodes in the graph.
type RecipeIngredientEdges struct {
	// Recipe holds the value of the recipe edge.
	Recipe *Recipe `json:"recipe,omitempty"`
	// Ingredient holds the value of the ingredient edge.
	Ingredient *Ingredient `json:"ingredient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RecipeOrErr returns the Recipe value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecipeIngredientEdges) RecipeOrErr() (*Recipe, error) {
	if e.Recipe != nil {
		return e.Recipe, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recipe.Label}
	}
	return nil, &NotLoadedError{edge: "recipe"}
}

// IngredientOrErr returns the Ingredient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecipeIngredientEdges) IngredientOrErr() (*Ingredient, error) {
	if e.Ingredient != nil {
		return e.Ingredient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: ingredient.Label}
	}
	return nil, &NotLoadedError{edge: "ingredient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecipeIngredient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recipeingredient.FieldID, recipeingredient.FieldRecipeID, recipeingredient.FieldIngredientID, recipeingredient.FieldAmount:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecipeIngredient fields.
func (_m *RecipeIngredient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recipeingredient.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recipeingredient.FieldRecipeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recipe_id", values[i])
			} else if value.Valid {
				_m.RecipeID = int(value.Int64)
			}
		case recipeingredient.FieldIngredientID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ingredient_id", values[i])
			} else if value.Valid {
				_m.IngredientID = int(value.Int64)
			}
		case recipeingredient.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecipeIngredient.
// This includes values selected through modifiers, order, etc.
func (_m *RecipeIngredient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecipe queries the "recipe" edge of the RecipeIngredient entity.
func (_m *RecipeIngredient) QueryRecipe() *RecipeQuery {
	return NewRecipeIngredientClient(_m.config).QueryRecipe(_m)
}

// QueryIngredient queries the "ingredient" edge of the RecipeIngredient entity.
func (_m *RecipeIngredient) QueryIngredient() *IngredientQuery {
	return NewRecipeIngredientClient(_m.config).QueryIngredient(_m)
}

// Update returns a builder for updating this RecipeIngredient.
// Note that you need to call RecipeIngredient.Unwrap() before calling this method if this RecipeIngredient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecipeIngredient) Update() *RecipeIngredientUpdateOne {
	return NewRecipeIngredientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecipeIngredient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecipeIngredient) Unwrap() *RecipeIngredient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecipeIngredient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecipeIngredient) String() string {
	var builder strings.Builder
	builder.WriteString("RecipeIngredient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recipe_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecipeID))
	builder.WriteString(", ")
	builder.WriteString("ingredient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IngredientID))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteByte(')')
	return builder.String()
}

// RecipeIngredients is a parsable slice of RecipeIngredient.
type RecipeIngredients []*RecipeIngredient
