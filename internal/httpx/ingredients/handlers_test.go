package ingredients

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"foodgram-api/ent"
	"foodgram-api/internal/httpx/kit/testutil"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:ingredients?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
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

func listNames(t *testing.T, app *fiber.App, path string) []string {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", res.StatusCode)
	}
	var envelope struct {
		Data []IngredientView `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	names := make([]string, 0, len(envelope.Data))
	for _, v := range envelope.Data {
		names = append(names, v.Name)
	}
	return names
}

func TestListNameFilterIgnoresCase(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	for _, name := range []string{"Salt", "salmon", "pepper"} {
		if _, err := client.Ingredient.Create().SetName(name).SetMeasurementUnit("g").Save(ctx); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/ingredients", ListHandler(client))
	})

	got := listNames(t, app, "/ingredients?name=sal")
	if len(got) != 2 {
		t.Fatalf("prefix sal: %v", got)
	}
	for _, n := range got {
		if n != "Salt" && n != "salmon" {
			t.Fatalf("unexpected match %q", n)
		}
	}

	// Uppercase query matches the same rows.
	if got := listNames(t, app, "/ingredients?name=SAL"); len(got) != 2 {
		t.Fatalf("prefix SAL: %v", got)
	}
	// Prefix only: "alt" must not match "Salt".
	if got := listNames(t, app, "/ingredients?name=alt"); len(got) != 0 {
		t.Fatalf("prefix alt: %v", got)
	}
	if got := listNames(t, app, "/ingredients"); len(got) != 3 {
		t.Fatalf("unfiltered: %v", got)
	}
}

func TestGetMissingIngredient(t *testing.T) {
	client := newTestClient(t)
	app := testutil.NewApp(func(app *fiber.App) {
		app.Get("/ingredients/:id", GetHandler(client))
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/ingredients/999", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing ingredient status %d", res.StatusCode)
	}
}
