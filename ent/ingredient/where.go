// Code generated by ent, DO NOT EDIT.

package ingredient

import (
	"foodgram-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEQ(FieldName, v))
}

// MeasurementUnit applies equality check predicate on the "measurement_unit" field. It's identical to MeasurementUnitEQ.
func MeasurementUnit(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEQ(FieldMeasurementUnit, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldContainsFold(FieldName, v))
}

// MeasurementUnitEQ applies the EQ predicate on the "measurement_unit" field.
func MeasurementUnitEQ(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEQ(FieldMeasurementUnit, v))
}

// MeasurementUnitNEQ applies the NEQ predicate on the "measurement_unit" field.
func MeasurementUnitNEQ(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldNEQ(FieldMeasurementUnit, v))
}

// MeasurementUnitIn applies the In predicate on the "measurement_unit" field.
func MeasurementUnitIn(vs ...string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldIn(FieldMeasurementUnit, vs...))
}

// MeasurementUnitNotIn applies the NotIn predicate on the "measurement_unit" field.
func MeasurementUnitNotIn(vs ...string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldNotIn(FieldMeasurementUnit, vs...))
}

// MeasurementUnitGT applies the GT predicate on the "measurement_unit" field.
func MeasurementUnitGT(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldGT(FieldMeasurementUnit, v))
}

// MeasurementUnitGTE applies the GTE predicate on the "measurement_unit" field.
func MeasurementUnitGTE(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldGTE(FieldMeasurementUnit, v))
}

// MeasurementUnitLT applies the LT predicate on the "measurement_unit" field.
func MeasurementUnitLT(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldLT(FieldMeasurementUnit, v))
}

// MeasurementUnitLTE applies the LTE predicate on the "measurement_unit" field.
func MeasurementUnitLTE(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldLTE(FieldMeasurementUnit, v))
}

// MeasurementUnitContains applies the Contains predicate on the "measurement_unit" field.
func MeasurementUnitContains(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldContains(FieldMeasurementUnit, v))
}

// MeasurementUnitHasPrefix applies the HasPrefix predicate on the "measurement_unit" field.
func MeasurementUnitHasPrefix(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldHasPrefix(FieldMeasurementUnit, v))
}

// MeasurementUnitHasSuffix applies the HasSuffix predicate on the "measurement_unit" field.
func MeasurementUnitHasSuffix(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldHasSuffix(FieldMeasurementUnit, v))
}

// MeasurementUnitEqualFold applies the EqualFold predicate on the "measurement_unit" field.
func MeasurementUnitEqualFold(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldEqualFold(FieldMeasurementUnit, v))
}

// MeasurementUnitContainsFold applies the ContainsFold predicate on the "measurement_unit" field.
func MeasurementUnitContainsFold(v string) predicate.Ingredient {
	return predicate.Ingredient(sql.FieldContainsFold(FieldMeasurementUnit, v))
}

// HasRecipeIngredients applies the HasEdge predicate on the "recipe_ingredients" edge.
func HasRecipeIngredients() predicate.Ingredient {
	return predicate.Ingredient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecipeIngredientsTable, RecipeIngredientsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipeIngredientsWith applies the HasEdge predicate on the "recipe_ingredients" edge with a given conditions (other predicates).
func HasRecipeIngredientsWith(preds ...predicate.RecipeIngredient) predicate.Ingredient {
	return predicate.Ingredient(func(s *sql.Selector) {
		step := newRecipeIngredientsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ingredient) predicate.Ingredient {
	return predicate.Ingredient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ingredient) predicate.Ingredient {
	return predicate.Ingredient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ingredient) predicate.Ingredient {
	return predicate.Ingredient(sql.NotPredicates(p))
}
