// Code generated by ent, DO NOT EDIT.

package recipe

import (
	"foodgram-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldID, id))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldAuthorID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldName, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldImage, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldText, v))
}

// CookingTime applies equality check predicate on the "cooking_time" field. It's identical to CookingTimeEQ.
func CookingTime(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCookingTime, v))
}

// PubDate applies equality check predicate on the "pub_date" field. It's identical to PubDateEQ.
func PubDate(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldPubDate, v))
}

// ShortLink applies equality check predicate on the "short_link" field. It's identical to ShortLinkEQ.
func ShortLink(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldShortLink, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldAuthorID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldName, v))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldImage, v))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldImage, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldText, v))
}

// CookingTimeEQ applies the EQ predicate on the "cooking_time" field.
func CookingTimeEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldCookingTime, v))
}

// CookingTimeNEQ applies the NEQ predicate on the "cooking_time" field.
func CookingTimeNEQ(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldCookingTime, v))
}

// CookingTimeIn applies the In predicate on the "cooking_time" field.
func CookingTimeIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldCookingTime, vs...))
}

// CookingTimeNotIn applies the NotIn predicate on the "cooking_time" field.
func CookingTimeNotIn(vs ...int) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldCookingTime, vs...))
}

// CookingTimeGT applies the GT predicate on the "cooking_time" field.
func CookingTimeGT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldCookingTime, v))
}

// CookingTimeGTE applies the GTE predicate on the "cooking_time" field.
func CookingTimeGTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldCookingTime, v))
}

// CookingTimeLT applies the LT predicate on the "cooking_time" field.
func CookingTimeLT(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldCookingTime, v))
}

// CookingTimeLTE applies the LTE predicate on the "cooking_time" field.
func CookingTimeLTE(v int) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldCookingTime, v))
}

// PubDateEQ applies the EQ predicate on the "pub_date" field.
func PubDateEQ(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldPubDate, v))
}

// PubDateNEQ applies the NEQ predicate on the "pub_date" field.
func PubDateNEQ(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldPubDate, v))
}

// PubDateIn applies the In predicate on the "pub_date" field.
func PubDateIn(vs ...time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldPubDate, vs...))
}

// PubDateNotIn applies the NotIn predicate on the "pub_date" field.
func PubDateNotIn(vs ...time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldPubDate, vs...))
}

// PubDateGT applies the GT predicate on the "pub_date" field.
func PubDateGT(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldPubDate, v))
}

// PubDateGTE applies the GTE predicate on the "pub_date" field.
func PubDateGTE(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldPubDate, v))
}

// PubDateLT applies the LT predicate on the "pub_date" field.
func PubDateLT(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldPubDate, v))
}

// PubDateLTE applies the LTE predicate on the "pub_date" field.
func PubDateLTE(v time.Time) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldPubDate, v))
}

// ShortLinkEQ applies the EQ predicate on the "short_link" field.
func ShortLinkEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEQ(FieldShortLink, v))
}

// ShortLinkNEQ applies the NEQ predicate on the "short_link" field.
func ShortLinkNEQ(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNEQ(FieldShortLink, v))
}

// ShortLinkIn applies the In predicate on the "short_link" field.
func ShortLinkIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldIn(FieldShortLink, vs...))
}

// ShortLinkNotIn applies the NotIn predicate on the "short_link" field.
func ShortLinkNotIn(vs ...string) predicate.Recipe {
	return predicate.Recipe(sql.FieldNotIn(FieldShortLink, vs...))
}

// ShortLinkGT applies the GT predicate on the "short_link" field.
func ShortLinkGT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGT(FieldShortLink, v))
}

// ShortLinkGTE applies the GTE predicate on the "short_link" field.
func ShortLinkGTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldGTE(FieldShortLink, v))
}

// ShortLinkLT applies the LT predicate on the "short_link" field.
func ShortLinkLT(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLT(FieldShortLink, v))
}

// ShortLinkLTE applies the LTE predicate on the "short_link" field.
func ShortLinkLTE(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldLTE(FieldShortLink, v))
}

// ShortLinkContains applies the Contains predicate on the "short_link" field.
func ShortLinkContains(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContains(FieldShortLink, v))
}

// ShortLinkHasPrefix applies the HasPrefix predicate on the "short_link" field.
func ShortLinkHasPrefix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasPrefix(FieldShortLink, v))
}

// ShortLinkHasSuffix applies the HasSuffix predicate on the "short_link" field.
func ShortLinkHasSuffix(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldHasSuffix(FieldShortLink, v))
}

// ShortLinkEqualFold applies the EqualFold predicate on the "short_link" field.
func ShortLinkEqualFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldEqualFold(FieldShortLink, v))
}

// ShortLinkContainsFold applies the ContainsFold predicate on the "short_link" field.
func ShortLinkContainsFold(v string) predicate.Recipe {
	return predicate.Recipe(sql.FieldContainsFold(FieldShortLink, v))
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.User) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecipeIngredients applies the HasEdge predicate on the "recipe_ingredients" edge.
func HasRecipeIngredients() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecipeIngredientsTable, RecipeIngredientsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipeIngredientsWith applies the HasEdge predicate on the "recipe_ingredients" edge with a given conditions (other predicates).
func HasRecipeIngredientsWith(preds ...predicate.RecipeIngredient) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newRecipeIngredientsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFavoritedBy applies the HasEdge predicate on the "favorited_by" edge.
func HasFavoritedBy() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FavoritedByTable, FavoritedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFavoritedByWith applies the HasEdge predicate on the "favorited_by" edge with a given conditions (other predicates).
func HasFavoritedByWith(preds ...predicate.Favorite) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newFavoritedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInCarts applies the HasEdge predicate on the "in_carts" edge.
func HasInCarts() predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InCartsTable, InCartsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInCartsWith applies the HasEdge predicate on the "in_carts" edge with a given conditions (other predicates).
func HasInCartsWith(preds ...predicate.CartItem) predicate.Recipe {
	return predicate.Recipe(func(s *sql.Selector) {
		step := newInCartsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recipe) predicate.Recipe {
	return predicate.Recipe(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recipe) predicate.Recipe {
	return predicate.Recipe(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recipe) predicate.Recipe {
	return predicate.Recipe(sql.NotPredicates(p))
}
