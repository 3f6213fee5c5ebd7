package recipes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"foodgram-api/ent"
)

// countingDriver counts read queries passing through the ent client.
type countingDriver struct {
	dialect.Driver
	queries int
}

func (d *countingDriver) Query(ctx context.Context, query string, args, v any) error {
	d.queries++
	return d.Driver.Query(ctx, query, args, v)
}

func newCountingClient(t *testing.T) (*ent.Client, *countingDriver) {
	t.Helper()
	dsn := "file:annotatecount?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	drv := &countingDriver{Driver: entsql.OpenDB(dialect.SQLite, db)}
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, drv
}

func TestAnnotateFlags(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "an@example.com", "an")
	viewer := seedUser(t, client, "vw@example.com", "vw")
	ing := seedIngredient(t, client, "tea", "g")

	mk := func(name string) int {
		r, err := store.Create(ctx, CreateParams{
			AuthorID: author, Name: name, Image: name + ".png", Text: "t", CookingTime: 5,
			Lines: []Line{{ing, 10}},
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return r.ID
	}
	r1, r2, r3 := mk("one"), mk("two"), mk("three")

	if err := client.Favorite.Create().SetUserID(viewer).SetRecipeID(r1).Exec(ctx); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if err := client.CartItem.Create().SetUserID(viewer).SetRecipeID(r1).Exec(ctx); err != nil {
		t.Fatalf("cart: %v", err)
	}
	if err := client.CartItem.Create().SetUserID(viewer).SetRecipeID(r2).Exec(ctx); err != nil {
		t.Fatalf("cart: %v", err)
	}

	flags, err := AnnotateFlags(ctx, client, viewer, []int{r1, r2, r3})
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	if f := flags[r1]; !f.IsFavorited || !f.IsInShoppingCart {
		t.Fatalf("r1 flags: %+v", f)
	}
	if f := flags[r2]; f.IsFavorited || !f.IsInShoppingCart {
		t.Fatalf("r2 flags: %+v", f)
	}
	if f := flags[r3]; f.IsFavorited || f.IsInShoppingCart {
		t.Fatalf("r3 flags: %+v", f)
	}
}

func TestAnnotateFlags_Anonymous(t *testing.T) {
	_, client := newTestStore(t)
	ctx := context.Background()

	flags, err := AnnotateFlags(ctx, client, 0, []int{1, 2})
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	for id, f := range flags {
		if f.IsFavorited || f.IsInShoppingCart {
			t.Fatalf("anonymous flags for %d must be false: %+v", id, f)
		}
	}
	if len(flags) != 2 {
		t.Fatalf("want entries for every id, got %d", len(flags))
	}
}

func TestAnnotateFlags_QueryCount(t *testing.T) {
	client, drv := newCountingClient(t)
	store := NewStore(client, NewShortLinks(client))
	ctx := context.Background()
	author := seedUser(t, client, "qc@example.com", "qc")
	viewer := seedUser(t, client, "qv@example.com", "qv")
	ing := seedIngredient(t, client, "oats", "g")

	ids := make([]int, 0, 6)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		r, err := store.Create(ctx, CreateParams{
			AuthorID: author, Name: name, Image: name + ".png", Text: "t", CookingTime: 5,
			Lines: []Line{{ing, 10}},
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		ids = append(ids, r.ID)
	}
	if err := client.Favorite.Create().SetUserID(viewer).SetRecipeID(ids[0]).Exec(ctx); err != nil {
		t.Fatalf("favorite: %v", err)
	}

	// One query per flag, no matter the page size.
	for _, page := range [][]int{ids[:2], ids} {
		drv.queries = 0
		if _, err := AnnotateFlags(ctx, client, viewer, page); err != nil {
			t.Fatalf("annotate %d ids: %v", len(page), err)
		}
		if drv.queries != 2 {
			t.Fatalf("annotate %d ids: %d queries, want 2", len(page), drv.queries)
		}
	}

	// Anonymous viewers and empty pages hit the database not at all.
	drv.queries = 0
	if _, err := AnnotateFlags(ctx, client, 0, ids); err != nil {
		t.Fatalf("annotate anonymous: %v", err)
	}
	if _, err := AnnotateFlags(ctx, client, viewer, nil); err != nil {
		t.Fatalf("annotate empty: %v", err)
	}
	if drv.queries != 0 {
		t.Fatalf("anonymous and empty pages: %d queries, want 0", drv.queries)
	}
}

func TestAnnotateFlags_EmptyPage(t *testing.T) {
	_, client := newTestStore(t)
	flags, err := AnnotateFlags(context.Background(), client, 1, nil)
	if err != nil {
		t.Fatalf("annotate: %v", err)
	}
	if len(flags) != 0 {
		t.Fatalf("want empty map, got %+v", flags)
	}
}
