// Package schema contains ent entity schema definitions
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct{ ent.Schema }

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").NotEmpty().Unique().MaxLen(254),
		field.String("username").NotEmpty().Unique().MaxLen(150),
		field.String("first_name").Default("").MaxLen(150),
		field.String("last_name").Default("").MaxLen(150),
		field.String("avatar").Default("").Comment("stored image reference"),
		field.String("password_hash").Sensitive(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("recipes", Recipe.Type),
		edge.To("favorites", Favorite.Type),
		edge.To("cart_items", CartItem.Type),
		edge.To("subscriptions", Subscription.Type),
		edge.To("subscribers", Subscription.Type),
	}
}
