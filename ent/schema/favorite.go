package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Favorite is a directed unique edge user -> recipe. Uniqueness of the pair
// is enforced by the database index, not by application checks.
type Favorite struct{ ent.Schema }

// Fields of the Favorite.
func (Favorite) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id"),
		field.Int("recipe_id"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Favorite.
func (Favorite) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("favorites").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("recipe", Recipe.Type).
			Ref("favorited_by").
			Field("recipe_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Favorite.
func (Favorite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "recipe_id").Unique(),
	}
}
