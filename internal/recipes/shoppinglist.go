package recipes

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"foodgram-api/ent"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
)

// ShoppingListFilename is the attachment name of the downloaded document.
const ShoppingListFilename = "shopping_list.txt"

const shoppingListHeader = "Shopping list:"

// ListItem is one aggregated output row of the shopping list.
type ListItem struct {
	IngredientID int
	Name         string
	Unit         string
	Amount       int64
}

// AggregateCart resolves the line items of every recipe in the user's cart,
// groups them by ingredient id and sums the amounts. The result is sorted
// by ingredient name ascending, case-insensitively.
func AggregateCart(ctx context.Context, client *ent.Client, userID int) ([]ListItem, error) {
	rows, err := client.RecipeIngredient.Query().
		Where(recipeingredient.HasRecipeWith(
			recipe.HasInCartsWith(cartitem.UserID(userID)),
		)).
		WithIngredient().
		All(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]*ListItem, len(rows))
	for _, row := range rows {
		item, ok := totals[row.IngredientID]
		if !ok {
			item = &ListItem{
				IngredientID: row.IngredientID,
				Name:         row.Edges.Ingredient.Name,
				Unit:         row.Edges.Ingredient.MeasurementUnit,
			}
			totals[row.IngredientID] = item
		}
		item.Amount += int64(row.Amount)
	}

	items := make([]ListItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if a != b {
			return a < b
		}
		return items[i].IngredientID < items[j].IngredientID
	})
	return items, nil
}

// RenderShoppingList produces the plain-text document: a fixed header, a
// blank line, then one "<name> - <amount> <unit>" row per item. An empty
// cart yields just the header.
func RenderShoppingList(items []ListItem) string {
	var b strings.Builder
	b.WriteString(shoppingListHeader)
	b.WriteString("\n\n")
	for _, item := range items {
		b.WriteString(item.Name)
		b.WriteString(" - ")
		b.WriteString(strconv.FormatInt(item.Amount, 10))
		b.WriteString(" ")
		b.WriteString(item.Unit)
		b.WriteString("\n")
	}
	return b.String()
}
