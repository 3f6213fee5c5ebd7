package recipes

import (
	"context"

	"foodgram-api/ent"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
)

// Flags are the per-recipe membership booleans for one requesting user.
type Flags struct {
	IsFavorited      bool `json:"is_favorited"`
	IsInShoppingCart bool `json:"is_in_shopping_cart"`
}

// AnnotateFlags computes the flag pair for a page of recipe ids with one
// batched query per flag, independent of page size. userID 0 means
// anonymous: every flag is false and no lookup is performed.
func AnnotateFlags(ctx context.Context, client *ent.Client, userID int, recipeIDs []int) (map[int]Flags, error) {
	out := make(map[int]Flags, len(recipeIDs))
	for _, id := range recipeIDs {
		out[id] = Flags{}
	}
	if userID == 0 || len(recipeIDs) == 0 {
		return out, nil
	}

	favs, err := client.Favorite.Query().
		Where(favorite.UserID(userID), favorite.RecipeIDIn(recipeIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range favs {
		fl := out[f.RecipeID]
		fl.IsFavorited = true
		out[f.RecipeID] = fl
	}

	carts, err := client.CartItem.Query().
		Where(cartitem.UserID(userID), cartitem.RecipeIDIn(recipeIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, ci := range carts {
		fl := out[ci.RecipeID]
		fl.IsInShoppingCart = true
		out[ci.RecipeID] = fl
	}
	return out, nil
}
