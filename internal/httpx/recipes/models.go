package recipes

// IngredientLineRequest is one (ingredient, amount) pair of a submitted recipe.
// swagger:model IngredientLineRequest
type IngredientLineRequest struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// RecipeRequest is the create/update payload.
// swagger:model RecipeRequest
type RecipeRequest struct {
	Ingredients []IngredientLineRequest `json:"ingredients"`
	Image       string                  `json:"image"` // base64 data URL; empty keeps current on update
	Name        string                  `json:"name"`
	Text        string                  `json:"text"`
	CookingTime int                     `json:"cooking_time"`
}

// IngredientLineView is one resolved line of a recipe.
// swagger:model IngredientLineView
type IngredientLineView struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// AuthorView is the embedded author block of a recipe.
// swagger:model AuthorView
type AuthorView struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

// RecipeView is the full recipe representation.
// swagger:model RecipeView
type RecipeView struct {
	ID               int                  `json:"id"`
	Author           AuthorView           `json:"author"`
	Ingredients      []IngredientLineView `json:"ingredients"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
	PubDate          string               `json:"pub_date"`
}

// RecipeBrief is the short form used by favorite/cart responses.
// swagger:model RecipeBrief
type RecipeBrief struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// ShortLinkResponse carries the public short link of a recipe.
// swagger:model ShortLinkResponse
type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}
