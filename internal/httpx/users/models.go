package users

// UserView is the public representation of a user.
// swagger:model UserView
type UserView struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar,omitempty"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeBrief is the short recipe form embedded in subscription listings.
// swagger:model RecipeBrief
type RecipeBrief struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// UserWithRecipes extends UserView with the author's recipes.
// swagger:model UserWithRecipes
type UserWithRecipes struct {
	UserView
	Recipes      []RecipeBrief `json:"recipes"`
	RecipesCount int           `json:"recipes_count"`
}

// SetPasswordRequest is the change-password request body.
// swagger:model SetPasswordRequest
type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// SetAvatarRequest carries a base64 data URL image.
// swagger:model SetAvatarRequest
type SetAvatarRequest struct {
	Avatar string `json:"avatar"`
}
