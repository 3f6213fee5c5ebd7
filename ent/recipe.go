// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Recipe is the model entity for the Recipe schema.
type Recipe struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID int `json:"author_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// stored image reference
	Image string `json:"image,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// minutes
	CookingTime int `json:"cooking_time,omitempty"`
	// PubDate holds the value of the "pub_date" field.
	PubDate time.Time `json:"pub_date,omitempty"`
	// ShortLink holds the value of the "short_link" field.
	ShortLink string `json:"short_link,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecipeQuery when eager-loading is set.
	Edges        RecipeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecipeEdges holds the relations/edges for other nodes in the graph.
type RecipeEdges struct {
	// Author holds the value of the author edge.
	Author *User `json:"author,omitempty"`
	// RecipeIngredients holds the value of the recipe_ingredients edge.
	RecipeIngredients []*RecipeIngredient `json:"recipe_ingredients,omitempty"`
	// FavoritedBy holds the value of the favorited_by edge.
	FavoritedBy []*Favorite `json:"favorited_by,omitempty"`
	// InCarts holds the value of the in_carts edge.
	InCarts []*CartItem `json:"in_carts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecipeEdges) AuthorOrErr() (*User, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// RecipeIngredientsOrErr returns the RecipeIngredients value or an error if the edge
// was not loaded in eager-loading.
func (e RecipeEdges) RecipeIngredientsOrErr() ([]*RecipeIngredient, error) {
	if e.loadedTypes[1] {
		return e.RecipeIngredients, nil
	}
	return nil, &NotLoadedError{edge: "recipe_ingredients"}
}

// FavoritedByOrErr returns the FavoritedBy value or an error if the edge
// was not loaded in eager-loading.
func (e RecipeEdges) FavoritedByOrErr() ([]*Favorite, error) {
	if e.loadedTypes[2] {
		return e.FavoritedBy, nil
	}
	return nil, &NotLoadedError{edge: "favorited_by"}
}

// InCartsOrErr returns the InCarts value or an error if the edge
// was not loaded in eager-loading.
func (e RecipeEdges) InCartsOrErr() ([]*CartItem, error) {
	if e.loadedTypes[3] {
		return e.InCarts, nil
	}
	return nil, &NotLoadedError{edge: "in_carts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recipe) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recipe.FieldID, recipe.FieldAuthorID, recipe.FieldCookingTime:
			values[i] = new(sql.NullInt64)
		case recipe.FieldName, recipe.FieldImage, recipe.FieldText, recipe.FieldShortLink:
			values[i] = new(sql.NullString)
		case recipe.FieldPubDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recipe fields.
func (_m *Recipe) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recipe.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recipe.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = int(value.Int64)
			}
		case recipe.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case recipe.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = value.String
			}
		case recipe.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case recipe.FieldCookingTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cooking_time", values[i])
			} else if value.Valid {
				_m.CookingTime = int(value.Int64)
			}
		case recipe.FieldPubDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pub_date", values[i])
			} else if value.Valid {
				_m.PubDate = value.Time
			}
		case recipe.FieldShortLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field short_link", values[i])
			} else if value.Valid {
				_m.ShortLink = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recipe.
// This includes values selected through modifiers, order, etc.
func (_m *Recipe) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuthor queries the "author" edge of the Recipe entity.
func (_m *Recipe) QueryAuthor() *UserQuery {
	return NewRecipeClient(_m.config).QueryAuthor(_m)
}

// QueryRecipeIngredients queries the "recipe_ingredients" edge of the Recipe entity.
func (_m *Recipe) QueryRecipeIngredients() *RecipeIngredientQuery {
	return NewRecipeClient(_m.config).QueryRecipeIngredients(_m)
}

// QueryFavoritedBy queries the "favorited_by" edge of the Recipe entity.
func (_m *Recipe) QueryFavoritedBy() *FavoriteQuery {
	return NewRecipeClient(_m.config).QueryFavoritedBy(_m)
}

// QueryInCarts queries the "in_carts" edge of the Recipe entity.
func (_m *Recipe) QueryInCarts() *CartItemQuery {
	return NewRecipeClient(_m.config).QueryInCarts(_m)
}

// Update returns a builder for updating this Recipe.
// Note that you need to call Recipe.Unwrap() before calling this method if this Recipe
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recipe) Update() *RecipeUpdateOne {
	return NewRecipeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recipe entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recipe) Unwrap() *Recipe {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Recipe is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recipe) String() string {
	var builder strings.Builder
	builder.WriteString("Recipe(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("image=")
	builder.WriteString(_m.Image)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("cooking_time=")
	builder.WriteString(fmt.Sprintf("%v", _m.CookingTime))
	builder.WriteString(", ")
	builder.WriteString("pub_date=")
	builder.WriteString(_m.PubDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("short_link=")
	builder.WriteString(_m.ShortLink)
	builder.WriteByte(')')
	return builder.String()
}

// Recipes is a parsable slice of Recipe.
type Recipes []*Recipe
