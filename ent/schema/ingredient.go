package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ingredient is a row of the global ingredient catalog; it is not owned by
// any recipe.
type Ingredient struct{ ent.Schema }

// Fields of the Ingredient.
func (Ingredient) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty().MaxLen(128),
		field.String("measurement_unit").NotEmpty().MaxLen(64),
	}
}

// Edges of the Ingredient.
func (Ingredient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("recipe_ingredients", RecipeIngredient.Type),
	}
}

// Indexes of the Ingredient.
func (Ingredient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
