package recipes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"foodgram-api/ent"
	"foodgram-api/ent/recipeingredient"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:recipes?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestStore(t *testing.T) (*Store, *ent.Client) {
	t.Helper()
	client := newTestClient(t)
	return NewStore(client, NewShortLinks(client)), client
}

func seedUser(t *testing.T, client *ent.Client, email, username string) int {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).SetUsername(username).
		SetFirstName("F").SetLastName("L").SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func seedIngredient(t *testing.T, client *ent.Client, name, unit string) int {
	t.Helper()
	i, err := client.Ingredient.Create().SetName(name).SetMeasurementUnit(unit).Save(context.Background())
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	return i.ID
}

func TestStore_CreateAndLines(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "cook@example.com", "cook")
	flour := seedIngredient(t, client, "flour", "g")
	milk := seedIngredient(t, client, "milk", "ml")

	rec, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "pancakes", Image: "p.png", Text: "mix and fry",
		CookingTime: 20,
		Lines:       []Line{{flour, 200}, {milk, 300}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(rec.ShortLink) != CodeLength {
		t.Fatalf("short link %q: want %d chars", rec.ShortLink, CodeLength)
	}

	lines, err := store.Lines(ctx, rec.ID)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	for _, ln := range lines {
		if ln.Edges.Ingredient == nil {
			t.Fatalf("line %d: ingredient not loaded", ln.ID)
		}
	}
}

func TestStore_CreateValidation(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "v@example.com", "v")
	ing := seedIngredient(t, client, "salt", "g")

	base := CreateParams{AuthorID: author, Name: "x", Image: "x.png", Text: "x", CookingTime: 5}

	p := base
	p.Lines = nil
	if _, err := store.Create(ctx, p); !errors.Is(err, ErrEmptyIngredients) {
		t.Fatalf("empty lines: want ErrEmptyIngredients, got %v", err)
	}

	p = base
	p.Lines = []Line{{ing, 1}, {ing, 2}}
	if _, err := store.Create(ctx, p); !errors.Is(err, ErrDuplicateIngredient) {
		t.Fatalf("duplicate: want ErrDuplicateIngredient, got %v", err)
	}

	p = base
	p.Lines = []Line{{ing, 0}}
	if _, err := store.Create(ctx, p); !errors.Is(err, ErrAmountOutOfRange) {
		t.Fatalf("amount 0: want ErrAmountOutOfRange, got %v", err)
	}
	p.Lines = []Line{{ing, MaxAmount + 1}}
	if _, err := store.Create(ctx, p); !errors.Is(err, ErrAmountOutOfRange) {
		t.Fatalf("amount max+1: want ErrAmountOutOfRange, got %v", err)
	}

	p = base
	p.Lines = []Line{{ing, 1}}
	p.CookingTime = 0
	if _, err := store.Create(ctx, p); !errors.Is(err, ErrTimeOutOfRange) {
		t.Fatalf("time 0: want ErrTimeOutOfRange, got %v", err)
	}

	// Validation failures must leave nothing behind.
	n, err := client.Recipe.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("want 0 recipes after failed creates, got %d", n)
	}
}

func TestStore_CreateAtomicOnBadLine(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "at@example.com", "at")
	ing := seedIngredient(t, client, "rice", "g")

	// Second line references a missing ingredient; the FK fails inside the tx.
	_, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "bad", Image: "b.png", Text: "b", CookingTime: 5,
		Lines: []Line{{ing, 10}, {ing + 999, 10}},
	})
	if err == nil {
		t.Fatalf("want error for missing ingredient")
	}

	n, _ := client.Recipe.Query().Count(ctx)
	if n != 0 {
		t.Fatalf("recipe row leaked from failed create: %d", n)
	}
	m, _ := client.RecipeIngredient.Query().Count(ctx)
	if m != 0 {
		t.Fatalf("line rows leaked from failed create: %d", m)
	}
}

func TestStore_UpdateOwnershipAndReplace(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "own@example.com", "own")
	other := seedUser(t, client, "oth@example.com", "oth")
	a := seedIngredient(t, client, "apple", "pc")
	b := seedIngredient(t, client, "sugar", "g")
	c := seedIngredient(t, client, "water", "ml")

	rec, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "jam", Image: "j.png", Text: "boil", CookingTime: 60,
		Lines: []Line{{a, 5}, {b, 100}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := store.Update(ctx, rec.ID, other, UpdateParams{
		Name: "stolen", Text: "no", CookingTime: 1, Lines: []Line{{a, 1}},
	}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("update by non-owner: want ErrNotOwner, got %v", err)
	}

	upd, err := store.Update(ctx, rec.ID, author, UpdateParams{
		Name: "jam v2", Text: "boil longer", CookingTime: 90,
		Lines: []Line{{c, 500}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Name != "jam v2" || upd.CookingTime != 90 {
		t.Fatalf("fields not updated: %+v", upd)
	}
	if upd.Image != "j.png" {
		t.Fatalf("empty image must keep current, got %q", upd.Image)
	}

	lines, err := store.Lines(ctx, rec.ID)
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if len(lines) != 1 || lines[0].IngredientID != c {
		t.Fatalf("lines not replaced: %+v", lines)
	}

	if _, err := store.Update(ctx, rec.ID+999, author, UpdateParams{
		Name: "x", Text: "x", CookingTime: 1, Lines: []Line{{a, 1}},
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: want ErrNotFound, got %v", err)
	}
}

func TestStore_DeleteCascades(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "del@example.com", "del")
	fan := seedUser(t, client, "fan@example.com", "fan")
	ing := seedIngredient(t, client, "egg", "pc")

	rec, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "omelette", Image: "o.png", Text: "whisk", CookingTime: 10,
		Lines: []Line{{ing, 3}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := client.Favorite.Create().SetUserID(fan).SetRecipeID(rec.ID).Exec(ctx); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if err := client.CartItem.Create().SetUserID(fan).SetRecipeID(rec.ID).Exec(ctx); err != nil {
		t.Fatalf("cart: %v", err)
	}

	if err := store.Delete(ctx, rec.ID, fan); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete by non-owner: want ErrNotOwner, got %v", err)
	}
	if err := store.Delete(ctx, rec.ID, author); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, rec.ID, author); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete again: want ErrNotFound, got %v", err)
	}

	if n, _ := client.RecipeIngredient.Query().Where(recipeingredient.RecipeID(rec.ID)).Count(ctx); n != 0 {
		t.Fatalf("lines survived delete: %d", n)
	}
	if n, _ := client.Favorite.Query().Count(ctx); n != 0 {
		t.Fatalf("favorites survived delete: %d", n)
	}
	if n, _ := client.CartItem.Query().Count(ctx); n != 0 {
		t.Fatalf("cart items survived delete: %d", n)
	}
}
