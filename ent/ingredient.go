// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"foodgram-api/ent/ingredient"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Ingredient is the model entity for the Ingredient schema.
type Ingredient struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MeasurementUnit holds the value of the "measurement_unit" field.
	MeasurementUnit string `json:"measurement_unit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IngredientQuery when eager-loading is set.
	Edges        IngredientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IngredientEdges holds the relations/edges for other nodes in the graph.
type IngredientEdges struct {
	// RecipeIngredients holds the value of the recipe_ingredients edge.
	RecipeIngredients []*RecipeIngredient `json:"recipe_ingredients,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecipeIngredientsOrErr returns the RecipeIngredients value or an error if the edge
// was not loaded in eager-loading.
func (e IngredientEdges) RecipeIngredientsOrErr() ([]*RecipeIngredient, error) {
	if e.loadedTypes[0] {
		return e.RecipeIngredients, nil
	}
	return nil, &NotLoadedError{edge: "recipe_ingredients"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ingredient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingredient.FieldID:
			values[i] = new(sql.NullInt64)
		case ingredient.FieldName, ingredient.FieldMeasurementUnit:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ingredient fields.
func (_m *Ingredient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingredient.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ingredient.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case ingredient.FieldMeasurementUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field measurement_unit", values[i])
			} else if value.Valid {
				_m.MeasurementUnit = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ingredient.
// This includes values selected through modifiers, order, etc.
func (_m *Ingredient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecipeIngredients queries the "recipe_ingredients" edge of the Ingredient entity.
func (_m *Ingredient) QueryRecipeIngredients() *RecipeIngredientQuery {
	return NewIngredientClient(_m.config).QueryRecipeIngredients(_m)
}

// Update returns a builder for updating this Ingredient.
// Note that you need to call Ingredient.Unwrap() before calling this method if this Ingredient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Ingredient) Update() *IngredientUpdateOne {
	return NewIngredientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Ingredient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Ingredient) Unwrap() *Ingredient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ingredient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Ingredient) String() string {
	var builder strings.Builder
	builder.WriteString("Ingredient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("measurement_unit=")
	builder.WriteString(_m.MeasurementUnit)
	builder.WriteByte(')')
	return builder.String()
}

// Ingredients is a parsable slice of Ingredient.
type Ingredients []*Ingredient
