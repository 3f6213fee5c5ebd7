package recipes

import (
	"context"
	"strings"
	"testing"
)

func TestAggregateCart_SumsAndSorts(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "agg@example.com", "agg")
	buyer := seedUser(t, client, "buy@example.com", "buy")
	flour := seedIngredient(t, client, "flour", "g")
	banana := seedIngredient(t, client, "Banana", "pc")
	milk := seedIngredient(t, client, "milk", "ml")

	r1, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "bread", Image: "b.png", Text: "bake", CookingTime: 60,
		Lines: []Line{{flour, 500}, {milk, 200}},
	})
	if err != nil {
		t.Fatalf("create r1: %v", err)
	}
	r2, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "smoothie", Image: "s.png", Text: "blend", CookingTime: 5,
		Lines: []Line{{banana, 2}, {milk, 300}},
	})
	if err != nil {
		t.Fatalf("create r2: %v", err)
	}
	// A recipe outside the cart must not contribute.
	if _, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "extra", Image: "e.png", Text: "x", CookingTime: 5,
		Lines: []Line{{flour, 9999}},
	}); err != nil {
		t.Fatalf("create extra: %v", err)
	}

	for _, rid := range []int{r1.ID, r2.ID} {
		if err := client.CartItem.Create().SetUserID(buyer).SetRecipeID(rid).Exec(ctx); err != nil {
			t.Fatalf("cart add: %v", err)
		}
	}

	items, err := AggregateCart(ctx, client, buyer)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %d: %+v", len(items), items)
	}
	// Case-insensitive name order: Banana, flour, milk.
	if items[0].Name != "Banana" || items[1].Name != "flour" || items[2].Name != "milk" {
		t.Fatalf("wrong order: %+v", items)
	}
	if items[2].Amount != 500 {
		t.Fatalf("milk sum: want 500, got %d", items[2].Amount)
	}
	if items[1].Amount != 500 {
		t.Fatalf("flour: want 500, got %d", items[1].Amount)
	}
}

func TestAggregateCart_EmptyCart(t *testing.T) {
	_, client := newTestStore(t)
	ctx := context.Background()
	buyer := seedUser(t, client, "empty@example.com", "empty")

	items, err := AggregateCart(ctx, client, buyer)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("want empty, got %+v", items)
	}
}

func TestRenderShoppingList(t *testing.T) {
	out := RenderShoppingList([]ListItem{
		{Name: "flour", Unit: "g", Amount: 500},
		{Name: "milk", Unit: "ml", Amount: 300},
	})
	want := "Shopping list:\n\nflour - 500 g\nmilk - 300 ml\n"
	if out != want {
		t.Fatalf("rendered %q, want %q", out, want)
	}

	empty := RenderShoppingList(nil)
	if !strings.HasPrefix(empty, "Shopping list:") {
		t.Fatalf("empty list must keep header, got %q", empty)
	}
	if strings.Count(empty, "\n") != 2 {
		t.Fatalf("empty list body must be header and blank line only, got %q", empty)
	}
}
