package recipes

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestShortLinks_NewCode(t *testing.T) {
	client := newTestClient(t)
	links := NewShortLinks(client)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := links.NewCode(ctx)
		if err != nil {
			t.Fatalf("new code: %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("code %q: want %d chars", code, CodeLength)
		}
		for _, ch := range code {
			if !strings.ContainsRune(codeAlphabet, ch) {
				t.Fatalf("code %q contains %q outside alphabet", code, ch)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate code %q in 20 draws", code)
		}
		seen[code] = true
	}
}

func TestShortLinks_Resolve(t *testing.T) {
	client := newTestClient(t)
	links := NewShortLinks(client)
	store := NewStore(client, links)
	ctx := context.Background()
	author := seedUser(t, client, "sl@example.com", "sl")
	ing := seedIngredient(t, client, "cocoa", "g")

	rec, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "cake", Image: "c.png", Text: "bake", CookingTime: 45,
		Lines: []Line{{ing, 30}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	id, err := links.Resolve(ctx, rec.ShortLink)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != rec.ID {
		t.Fatalf("resolved %d, want %d", id, rec.ID)
	}
	// Second resolve comes from the cache.
	id, err = links.Resolve(ctx, rec.ShortLink)
	if err != nil || id != rec.ID {
		t.Fatalf("cached resolve: id=%d err=%v", id, err)
	}

	if _, err := links.Resolve(ctx, "zzzzzzzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown code: want ErrNotFound, got %v", err)
	}
}

func TestShortLinks_ResolveAfterDelete(t *testing.T) {
	client := newTestClient(t)
	links := NewShortLinks(client)
	store := NewStore(client, links)
	ctx := context.Background()
	author := seedUser(t, client, "rd@example.com", "rd")
	ing := seedIngredient(t, client, "mint", "g")

	rec, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "mojito", Image: "m.png", Text: "muddle", CookingTime: 5,
		Lines: []Line{{ing, 10}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Warm the cache, then delete the recipe.
	if _, err := links.Resolve(ctx, rec.ShortLink); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := store.Delete(ctx, rec.ID, author); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := links.Resolve(ctx, rec.ShortLink); !errors.Is(err, ErrNotFound) {
		t.Fatalf("resolve after delete: want ErrNotFound, got %v", err)
	}
}

func TestStore_ByShortLink(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	author := seedUser(t, client, "bs@example.com", "bs")
	ing := seedIngredient(t, client, "basil", "g")

	rec, err := store.Create(ctx, CreateParams{
		AuthorID: author, Name: "pesto", Image: "p.png", Text: "grind", CookingTime: 15,
		Lines: []Line{{ing, 50}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := store.ByShortLink(ctx, rec.ShortLink)
	if err != nil {
		t.Fatalf("by short link: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("got %d, want %d", got.ID, rec.ID)
	}
	if _, err := store.ByShortLink(ctx, "nope0000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: want ErrNotFound, got %v", err)
	}
}
