package recipes

// Bounds for recipe line-item amounts and cooking time (minutes).
const (
	MinAmount      = 1
	MaxAmount      = 32000
	MinCookingTime = 1
	MaxCookingTime = 32000
)
