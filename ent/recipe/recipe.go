// Code generated by ent, DO NOT EDIT.

package recipe

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recipe type in the database.
	Label = "recipe"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldImage holds the string denoting the image field in the database.
	FieldImage = "image"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldCookingTime holds the string denoting the cooking_time field in the database.
	FieldCookingTime = "cooking_time"
	// FieldPubDate holds the string denoting the pub_date field in the database.
	FieldPubDate = "pub_date"
	// FieldShortLink holds the string denoting the short_link field in the database.
	FieldShortLink = "short_link"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// EdgeRecipeIngredients holds the string denoting the recipe_ingredients edge name in mutations.
	EdgeRecipeIngredients = "recipe_ingredients"
	// EdgeFavoritedBy holds the string denoting the favorited_by edge name in mutations.
	EdgeFavoritedBy = "favorited_by"
	// EdgeInCarts holds the string denoting the in_carts edge name in mutations.
	EdgeInCarts = "in_carts"
	// Table holds the table name of the recipe in the database.
	Table = "recipes"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "recipes"
	// AuthorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	AuthorInverseTable = "users"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
	// RecipeIngredientsTable is the table that holds the recipe_ingredients relation/edge.
	RecipeIngredientsTable = "recipe_ingredients"
	// RecipeIngredientsInverseTable is the table name for the RecipeIngredient entity.
	// It exists in this package in order to avoid circular dependency with the "recipeingredient" package.
	RecipeIngredientsInverseTable = "recipe_ingredients"
	// RecipeIngredientsColumn is the table column denoting the recipe_ingredients relation/edge.
	RecipeIngredientsColumn = "recipe_id"
	// FavoritedByTable is the table that holds the favorited_by relation/edge.
	FavoritedByTable = "favorites"
	// FavoritedByInverseTable is the table name for the Favorite entity.
	// It exists in this package in order to avoid circular dependency with the "favorite" package.
	FavoritedByInverseTable = "favorites"
	// FavoritedByColumn is the table column denoting the favorited_by relation/edge.
	FavoritedByColumn = "recipe_id"
	// InCartsTable is the table that holds the in_carts relation/edge.
	InCartsTable = "cart_items"
	// InCartsInverseTable is the table name for the CartItem entity.
	// It exists in this package in order to avoid circular dependency with the "cartitem" package.
	InCartsInverseTable = "cart_items"
	// InCartsColumn is the table column denoting the in_carts relation/edge.
	InCartsColumn = "recipe_id"
)

// Columns holds all SQL columns for recipe fields.
var Columns = []string{
	FieldID,
	FieldAuthorID,
	FieldName,
	FieldImage,
	FieldText,
	FieldCookingTime,
	FieldPubDate,
	FieldShortLink,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultImage holds the default value on creation for the "image" field.
	DefaultImage string
	// DefaultText holds the default value on creation for the "text" field.
	DefaultText string
	// CookingTimeValidator is a validator for the "cooking_time" field. It is called by the builders before save.
	CookingTimeValidator func(int) error
	// DefaultPubDate holds the default value on creation for the "pub_date" field.
	DefaultPubDate func() time.Time
	// ShortLinkValidator is a validator for the "short_link" field. It is called by the builders before save.
	ShortLinkValidator func(string) error
)

// OrderOption defines the ordering options for the Recipe queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByImage orders the results by the image field.
func ByImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImage, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByCookingTime orders the results by the cooking_time field.
func ByCookingTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCookingTime, opts...).ToFunc()
}

// ByPubDate orders the results by the pub_date field.
func ByPubDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPubDate, opts...).ToFunc()
}

// ByShortLink orders the results by the short_link field.
func ByShortLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortLink, opts...).ToFunc()
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}

// ByRecipeIngredientsCount orders the results by recipe_ingredients count.
func ByRecipeIngredientsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecipeIngredientsStep(), opts...)
	}
}

// ByRecipeIngredients orders the results by recipe_ingredients terms.
func ByRecipeIngredients(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecipeIngredientsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFavoritedByCount orders the results by favorited_by count.
func ByFavoritedByCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFavoritedByStep(), opts...)
	}
}

// ByFavoritedBy orders the results by favorited_by terms.
func ByFavoritedBy(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFavoritedByStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInCartsCount orders the results by in_carts count.
func ByInCartsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInCartsStep(), opts...)
	}
}

// ByInCarts orders the results by in_carts terms.
func ByInCarts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInCartsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
	)
}
func newRecipeIngredientsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecipeIngredientsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecipeIngredientsTable, RecipeIngredientsColumn),
	)
}
func newFavoritedByStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FavoritedByInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FavoritedByTable, FavoritedByColumn),
	)
}
func newInCartsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InCartsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InCartsTable, InCartsColumn),
	)
}
