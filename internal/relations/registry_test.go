package relations

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
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:relations?mode=memory&cache=shared&_pragma=foreign_keys(1)"
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

func seedUserAndRecipe(t *testing.T, client *ent.Client) (int, int, int) {
	t.Helper()
	ctx := context.Background()
	u1, err := client.User.Create().
		SetEmail("a@example.com").SetUsername("a").
		SetFirstName("A").SetLastName("A").SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	u2, err := client.User.Create().
		SetEmail("b@example.com").SetUsername("b").
		SetFirstName("B").SetLastName("B").SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	r, err := client.Recipe.Create().
		SetAuthorID(u2.ID).SetName("soup").SetImage("i.png").
		SetText("hot").SetCookingTime(10).SetShortLink("aaaa0001").
		Save(ctx)
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	return u1.ID, u2.ID, r.ID
}

func TestRegistry_AddRemoveExists(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()
	uid, _, rid := seedUserAndRecipe(t, client)

	for _, kind := range []Kind{KindFavorite, KindCart} {
		if err := reg.Add(ctx, kind, uid, rid); err != nil {
			t.Fatalf("%s add: %v", kind, err)
		}
		ok, err := reg.Exists(ctx, kind, uid, rid)
		if err != nil || !ok {
			t.Fatalf("%s exists: ok=%v err=%v", kind, ok, err)
		}
		if err := reg.Add(ctx, kind, uid, rid); !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("%s duplicate add: want ErrAlreadyExists, got %v", kind, err)
		}
		if err := reg.Remove(ctx, kind, uid, rid); err != nil {
			t.Fatalf("%s remove: %v", kind, err)
		}
		if err := reg.Remove(ctx, kind, uid, rid); !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s remove missing: want ErrNotFound, got %v", kind, err)
		}
	}
}

func TestRegistry_Subscription(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()
	uid, author, _ := seedUserAndRecipe(t, client)

	if err := reg.Add(ctx, KindSubscription, uid, uid); !errors.Is(err, ErrSelfRelation) {
		t.Fatalf("self subscribe: want ErrSelfRelation, got %v", err)
	}
	if err := reg.Add(ctx, KindSubscription, uid, author); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := reg.Add(ctx, KindSubscription, uid, author); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate subscribe: want ErrAlreadyExists, got %v", err)
	}
	// The reverse direction is a distinct edge.
	if err := reg.Add(ctx, KindSubscription, author, uid); err != nil {
		t.Fatalf("reverse subscribe: %v", err)
	}
	if err := reg.Remove(ctx, KindSubscription, uid, author); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	ok, err := reg.Exists(ctx, KindSubscription, author, uid)
	if err != nil || !ok {
		t.Fatalf("reverse edge must survive: ok=%v err=%v", ok, err)
	}
}

func TestRegistry_UnknownKind(t *testing.T) {
	client := newTestClient(t)
	reg := NewRegistry(client)
	ctx := context.Background()

	if err := reg.Add(ctx, Kind("bogus"), 1, 2); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("want ErrUnknownKind, got %v", err)
	}
	if err := reg.Remove(ctx, Kind("bogus"), 1, 2); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("want ErrUnknownKind, got %v", err)
	}
	if _, err := reg.Exists(ctx, Kind("bogus"), 1, 2); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("want ErrUnknownKind, got %v", err)
	}
}
