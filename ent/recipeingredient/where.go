// Code generated by ent, DO NOT EDIT.

package recipeingredient

import (
	"foodgram-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldLTE(FieldID, id))
}

// RecipeID applies equality check predicate on the "recipe_id" field. It's identical to RecipeIDEQ.
func RecipeID(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldRecipeID, v))
}

// IngredientID applies equality check predicate on the "ingredient_id" field. It's identical to IngredientIDEQ.
func IngredientID(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldIngredientID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldAmount, v))
}

// RecipeIDEQ applies the EQ predicate on the "recipe_id" field.
func RecipeIDEQ(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldRecipeID, v))
}

// RecipeIDNEQ applies the NEQ predicate on the "recipe_id" field.
func RecipeIDNEQ(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNEQ(FieldRecipeID, v))
}

// RecipeIDIn applies the In predicate on the "recipe_id" field.
func RecipeIDIn(vs ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldIn(FieldRecipeID, vs...))
}

// RecipeIDNotIn applies the NotIn predicate on the "recipe_id" field.
func RecipeIDNotIn(vs ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNotIn(FieldRecipeID, vs...))
}

// IngredientIDEQ applies the EQ predicate on the "ingredient_id" field.
func IngredientIDEQ(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldIngredientID, v))
}

// IngredientIDNEQ applies the NEQ predicate on the "ingredient_id" field.
func IngredientIDNEQ(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNEQ(FieldIngredientID, v))
}

// IngredientIDIn applies the In predicate on the "ingredient_id" field.
func IngredientIDIn(vs ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldIn(FieldIngredientID, vs...))
}

// IngredientIDNotIn applies the NotIn predicate on the "ingredient_id" field.
func IngredientIDNotIn(vs ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNotIn(FieldIngredientID, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.FieldLTE(FieldAmount, v))
}

// HasRecipe applies the HasEdge predicate on the "recipe" edge.
func HasRecipe() predicate.RecipeIngredient {
	return predicate.RecipeIngredient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecipeTable, RecipeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipeWith applies the HasEdge predicate on the "recipe" edge with a given conditions (other predicates).
func HasRecipeWith(preds ...predicate.Recipe) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(func(s *sql.Selector) {
		step := newRecipeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIngredient applies the HasEdge predicate on the "ingredient" edge.
func HasIngredient() predicate.RecipeIngredient {
	return predicate.RecipeIngredient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IngredientTable, IngredientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIngredientWith applies the HasEdge predicate on the "ingredient" edge with a given conditions (other predicates).
func HasIngredientWith(preds ...predicate.Ingredient) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(func(s *sql.Selector) {
		step := newIngredientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecipeIngredient) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecipeIngredient) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecipeIngredient) predicate.RecipeIngredient {
	return predicate.RecipeIngredient(sql.NotPredicates(p))
}
