package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Recipe holds the schema definition for the Recipe entity. A recipe is
// owned by its author; pub_date and short_link are set at creation and never
// change.
type Recipe struct{ ent.Schema }

// Fields of the Recipe.
func (Recipe) Fields() []ent.Field {
	return []ent.Field{
		field.Int("author_id"),
		field.String("name").NotEmpty().MaxLen(256),
		field.String("image").Default("").Comment("stored image reference"),
		field.Text("text").Default(""),
		field.Int("cooking_time").Positive().Comment("minutes"),
		field.Time("pub_date").Default(time.Now).Immutable(),
		field.String("short_link").Unique().Immutable().MaxLen(8),
	}
}

// Edges of the Recipe.
func (Recipe) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", User.Type).
			Ref("recipes").
			Field("author_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("recipe_ingredients", RecipeIngredient.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("favorited_by", Favorite.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("in_carts", CartItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
