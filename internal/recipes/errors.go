package recipes

import "errors"

// Validation errors, raised before any write.
var (
	ErrEmptyIngredients    = errors.New("recipe needs at least one ingredient")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in recipe")
	ErrAmountOutOfRange    = errors.New("ingredient amount out of range")
	ErrTimeOutOfRange      = errors.New("cooking time out of range")
)

var (
	// ErrNotFound is returned when the requested recipe does not exist.
	ErrNotFound = errors.New("recipe not found")
	// ErrNotOwner is returned when the acting user does not own the recipe.
	ErrNotOwner = errors.New("recipe not owned by acting user")
)
