package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecipeIngredient is one line item of a recipe's composition. At most one
// line item exists per (recipe, ingredient) pair.
type RecipeIngredient struct{ ent.Schema }

// Fields of the RecipeIngredient.
func (RecipeIngredient) Fields() []ent.Field {
	return []ent.Field{
		field.Int("recipe_id"),
		field.Int("ingredient_id"),
		field.Int("amount").Positive(),
	}
}

// Edges of the RecipeIngredient.
func (RecipeIngredient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipe", Recipe.Type).
			Ref("recipe_ingredients").
			Field("recipe_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("ingredient", Ingredient.Type).
			Ref("recipe_ingredients").
			Field("ingredient_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RecipeIngredient.
func (RecipeIngredient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipe_id", "ingredient_id").Unique(),
	}
}
