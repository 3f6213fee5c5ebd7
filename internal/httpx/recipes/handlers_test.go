package recipes

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"foodgram-api/ent"
	"foodgram-api/internal/config"
	"foodgram-api/internal/httpx/kit/testutil"
	"foodgram-api/internal/httpx/mw"
	"foodgram-api/internal/relations"
	recipestore "foodgram-api/internal/recipes"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:recipesapi?mode=memory&cache=shared&_pragma=foreign_keys(1)"
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

// memStore keeps saved media in memory for tests.
type memStore struct {
	saved map[string][]byte
}

func (m *memStore) Save(_ context.Context, key, _ string, data []byte) (string, error) {
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[key] = data
	return "/media/" + key, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.saved, key)
	return nil
}

func newTestDeps(t *testing.T) (Deps, *ent.Client) {
	t.Helper()
	client := newTestClient(t)
	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://test.local"
	links := recipestore.NewShortLinks(client)
	return Deps{
		Cfg:    cfg,
		Client: client,
		Store:  recipestore.NewStore(client, links),
		Links:  links,
		Reg:    relations.NewRegistry(client),
		Media:  &memStore{},
	}, client
}

func seedUser(t *testing.T, client *ent.Client, email, username string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).SetUsername(username).
		SetFirstName("F").SetLastName("L").SetPasswordHash("x").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedIngredient(t *testing.T, client *ent.Client, name, unit string) int {
	t.Helper()
	i, err := client.Ingredient.Create().SetName(name).SetMeasurementUnit(unit).Save(context.Background())
	if err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	return i.ID
}

func asUser(id int) func(*fiber.App) {
	return func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{UserID: id, Subject: "user:" + strconv.Itoa(id)})
			return c.Next()
		})
	}
}

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return res
}

func decodeRecipe(t *testing.T, res *http.Response) RecipeView {
	t.Helper()
	var envelope struct {
		Data RecipeView `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return envelope.Data
}

func TestRecipeCreateGetUpdateDelete(t *testing.T) {
	deps, client := newTestDeps(t)
	author := seedUser(t, client, "c@example.com", "chef")
	flour := seedIngredient(t, client, "flour", "g")
	milk := seedIngredient(t, client, "milk", "ml")

	app := testutil.NewApp(
		asUser(author.ID),
		func(app *fiber.App) {
			app.Post("/recipes", mw.RequireUser(), CreateHandler(deps))
			app.Get("/recipes/:id", GetHandler(deps))
			app.Patch("/recipes/:id", mw.RequireUser(), UpdateHandler(deps))
			app.Delete("/recipes/:id", mw.RequireUser(), DeleteHandler(deps))
		},
	)

	res := doJSON(t, app, http.MethodPost, "/recipes", RecipeRequest{
		Ingredients: []IngredientLineRequest{{ID: flour, Amount: 200}, {ID: milk, Amount: 300}},
		Image:       pngDataURL(),
		Name:        "pancakes",
		Text:        "mix and fry",
		CookingTime: 20,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d", res.StatusCode)
	}
	created := decodeRecipe(t, res)
	if created.Author.ID != author.ID || len(created.Ingredients) != 2 {
		t.Fatalf("created view %+v", created)
	}
	if !strings.HasPrefix(created.Image, "/media/recipes/") {
		t.Fatalf("image url %q", created.Image)
	}

	res = doJSON(t, app, http.MethodGet, "/recipes/"+strconv.Itoa(created.ID), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status %d", res.StatusCode)
	}

	// Duplicate ingredient rejected.
	res = doJSON(t, app, http.MethodPost, "/recipes", RecipeRequest{
		Ingredients: []IngredientLineRequest{{ID: flour, Amount: 1}, {ID: flour, Amount: 2}},
		Image:       pngDataURL(), Name: "dup", Text: "x", CookingTime: 5,
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate ingredient status %d", res.StatusCode)
	}

	// Update replaces the ingredient set.
	res = doJSON(t, app, http.MethodPatch, "/recipes/"+strconv.Itoa(created.ID), RecipeRequest{
		Ingredients: []IngredientLineRequest{{ID: milk, Amount: 500}},
		Name:        "pancakes v2", Text: "fry well", CookingTime: 25,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("update status %d", res.StatusCode)
	}
	updated := decodeRecipe(t, res)
	if len(updated.Ingredients) != 1 || updated.Ingredients[0].ID != milk {
		t.Fatalf("update did not replace lines: %+v", updated.Ingredients)
	}
	if updated.Image != created.Image {
		t.Fatalf("empty image must keep current, got %q", updated.Image)
	}

	res = doJSON(t, app, http.MethodDelete, "/recipes/"+strconv.Itoa(created.ID), nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", res.StatusCode)
	}
	res = doJSON(t, app, http.MethodGet, "/recipes/"+strconv.Itoa(created.ID), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status %d", res.StatusCode)
	}
}

func TestRecipeOwnershipEnforced(t *testing.T) {
	deps, client := newTestDeps(t)
	author := seedUser(t, client, "o1@example.com", "owner1")
	intruder := seedUser(t, client, "o2@example.com", "intruder")
	ing := seedIngredient(t, client, "salt", "g")

	rec, err := deps.Store.Create(context.Background(), recipestore.CreateParams{
		AuthorID: author.ID, Name: "mine", Image: "m.png", Text: "x", CookingTime: 5,
		Lines: []recipestore.Line{{IngredientID: ing, Amount: 1}},
	})
	if err != nil {
		t.Fatalf("seed recipe: %v", err)
	}

	app := testutil.NewApp(
		asUser(intruder.ID),
		func(app *fiber.App) {
			app.Patch("/recipes/:id", mw.RequireUser(), UpdateHandler(deps))
			app.Delete("/recipes/:id", mw.RequireUser(), DeleteHandler(deps))
		},
	)

	res := doJSON(t, app, http.MethodPatch, "/recipes/"+strconv.Itoa(rec.ID), RecipeRequest{
		Ingredients: []IngredientLineRequest{{ID: ing, Amount: 2}},
		Name:        "hacked", Text: "x", CookingTime: 5,
	})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign update status %d", res.StatusCode)
	}
	res = doJSON(t, app, http.MethodDelete, "/recipes/"+strconv.Itoa(rec.ID), nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign delete status %d", res.StatusCode)
	}
}

func TestFavoriteAndCartEndpoints(t *testing.T) {
	deps, client := newTestDeps(t)
	author := seedUser(t, client, "fa@example.com", "fauthor")
	fan := seedUser(t, client, "ff@example.com", "ffan")
	ing := seedIngredient(t, client, "tea", "g")

	rec, err := deps.Store.Create(context.Background(), recipestore.CreateParams{
		AuthorID: author.ID, Name: "chai", Image: "c.png", Text: "brew", CookingTime: 7,
		Lines: []recipestore.Line{{IngredientID: ing, Amount: 5}},
	})
	if err != nil {
		t.Fatalf("seed recipe: %v", err)
	}

	app := testutil.NewApp(
		asUser(fan.ID),
		func(app *fiber.App) {
			app.Post("/recipes/:id/favorite", mw.RequireUser(), FavoriteHandler(deps))
			app.Delete("/recipes/:id/favorite", mw.RequireUser(), UnfavoriteHandler(deps))
			app.Post("/recipes/:id/shopping_cart", mw.RequireUser(), CartHandler(deps))
			app.Delete("/recipes/:id/shopping_cart", mw.RequireUser(), UncartHandler(deps))
			app.Get("/recipes", ListHandler(deps))
		},
	)

	base := "/recipes/" + strconv.Itoa(rec.ID)
	for _, suffix := range []string{"/favorite", "/shopping_cart"} {
		if res := doJSON(t, app, http.MethodPost, base+suffix, nil); res.StatusCode != http.StatusCreated {
			t.Fatalf("%s add status %d", suffix, res.StatusCode)
		}
		if res := doJSON(t, app, http.MethodPost, base+suffix, nil); res.StatusCode != http.StatusConflict {
			t.Fatalf("%s duplicate status %d", suffix, res.StatusCode)
		}
	}

	// Flags appear in the listing for this viewer.
	res := doJSON(t, app, http.MethodGet, "/recipes", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", res.StatusCode)
	}
	var envelope struct {
		Data []RecipeView `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 || !envelope.Data[0].IsFavorited || !envelope.Data[0].IsInShoppingCart {
		t.Fatalf("flags missing in listing: %+v", envelope.Data)
	}

	for _, suffix := range []string{"/favorite", "/shopping_cart"} {
		if res := doJSON(t, app, http.MethodDelete, base+suffix, nil); res.StatusCode != http.StatusNoContent {
			t.Fatalf("%s remove status %d", suffix, res.StatusCode)
		}
		if res := doJSON(t, app, http.MethodDelete, base+suffix, nil); res.StatusCode != http.StatusNotFound {
			t.Fatalf("%s remove again status %d", suffix, res.StatusCode)
		}
	}

	if res := doJSON(t, app, http.MethodPost, "/recipes/99999/favorite", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("favorite missing recipe status %d", res.StatusCode)
	}
}

func TestDownloadShoppingCart(t *testing.T) {
	deps, client := newTestDeps(t)
	author := seedUser(t, client, "dl@example.com", "dlauthor")
	buyer := seedUser(t, client, "db@example.com", "dlbuyer")
	flour := seedIngredient(t, client, "flour", "g")
	milk := seedIngredient(t, client, "milk", "ml")

	ctx := context.Background()
	r1, err := deps.Store.Create(ctx, recipestore.CreateParams{
		AuthorID: author.ID, Name: "bread", Image: "b.png", Text: "bake", CookingTime: 60,
		Lines: []recipestore.Line{{IngredientID: flour, Amount: 500}, {IngredientID: milk, Amount: 100}},
	})
	if err != nil {
		t.Fatalf("seed r1: %v", err)
	}
	r2, err := deps.Store.Create(ctx, recipestore.CreateParams{
		AuthorID: author.ID, Name: "shake", Image: "s.png", Text: "mix", CookingTime: 3,
		Lines: []recipestore.Line{{IngredientID: milk, Amount: 250}},
	})
	if err != nil {
		t.Fatalf("seed r2: %v", err)
	}
	for _, rid := range []int{r1.ID, r2.ID} {
		if err := client.CartItem.Create().SetUserID(buyer.ID).SetRecipeID(rid).Exec(ctx); err != nil {
			t.Fatalf("seed cart: %v", err)
		}
	}

	app := testutil.NewApp(
		asUser(buyer.ID),
		func(app *fiber.App) {
			app.Get("/recipes/download_shopping_cart", mw.RequireUser(), DownloadCartHandler(deps))
		},
	)
	res := doJSON(t, app, http.MethodGet, "/recipes/download_shopping_cart", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("download status %d", res.StatusCode)
	}
	if cd := res.Header.Get("Content-Disposition"); !strings.Contains(cd, "shopping_list.txt") {
		t.Fatalf("content disposition %q", cd)
	}
	body, _ := io.ReadAll(res.Body)
	text := string(body)
	if !strings.HasPrefix(text, "Shopping list:") {
		t.Fatalf("missing header: %q", text)
	}
	if !strings.Contains(text, "flour - 500 g") || !strings.Contains(text, "milk - 350 ml") {
		t.Fatalf("bad aggregation: %q", text)
	}
	if strings.Index(text, "flour") > strings.Index(text, "milk") {
		t.Fatalf("rows not sorted by name: %q", text)
	}
}

func TestShortLinkEndpoints(t *testing.T) {
	deps, client := newTestDeps(t)
	author := seedUser(t, client, "sle@example.com", "sleauthor")
	ing := seedIngredient(t, client, "cocoa", "g")

	rec, err := deps.Store.Create(context.Background(), recipestore.CreateParams{
		AuthorID: author.ID, Name: "cake", Image: "c.png", Text: "bake", CookingTime: 45,
		Lines: []recipestore.Line{{IngredientID: ing, Amount: 30}},
	})
	if err != nil {
		t.Fatalf("seed recipe: %v", err)
	}

	app := testutil.NewApp(
		func(app *fiber.App) {
			app.Get("/recipes/:id/get-link", GetLinkHandler(deps))
			app.Get("/s/:code", ResolveShortLinkHandler(deps))
		},
	)

	res := doJSON(t, app, http.MethodGet, "/recipes/"+strconv.Itoa(rec.ID)+"/get-link", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get-link status %d", res.StatusCode)
	}
	var envelope struct {
		Data ShortLinkResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := "http://test.local/s/" + rec.ShortLink
	if envelope.Data.ShortLink != want {
		t.Fatalf("short link %q, want %q", envelope.Data.ShortLink, want)
	}

	res = doJSON(t, app, http.MethodGet, "/s/"+rec.ShortLink, nil)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("redirect status %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/api/v1/recipes/"+strconv.Itoa(rec.ID) {
		t.Fatalf("redirect location %q", loc)
	}

	res = doJSON(t, app, http.MethodGet, "/s/zzzzzzzz", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown code status %d", res.StatusCode)
	}
	res = doJSON(t, app, http.MethodGet, "/s/tooshort", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("bad length status %d", res.StatusCode)
	}
}

func TestListFilters(t *testing.T) {
	deps, client := newTestDeps(t)
	a1 := seedUser(t, client, "f1@example.com", "fauthor1")
	a2 := seedUser(t, client, "f2@example.com", "fauthor2")
	ing := seedIngredient(t, client, "rice", "g")

	ctx := context.Background()
	mk := func(author int, name string) int {
		r, err := deps.Store.Create(ctx, recipestore.CreateParams{
			AuthorID: author, Name: name, Image: name + ".png", Text: "x", CookingTime: 5,
			Lines: []recipestore.Line{{IngredientID: ing, Amount: 10}},
		})
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		return r.ID
	}
	r1 := mk(a1.ID, "one")
	mk(a2.ID, "two")

	if err := client.Favorite.Create().SetUserID(a2.ID).SetRecipeID(r1).Exec(ctx); err != nil {
		t.Fatalf("seed favorite: %v", err)
	}

	app := testutil.NewApp(
		asUser(a2.ID),
		func(app *fiber.App) { app.Get("/recipes", ListHandler(deps)) },
	)
	list := func(query string) []RecipeView {
		res := doJSON(t, app, http.MethodGet, "/recipes"+query, nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("list %s status %d", query, res.StatusCode)
		}
		var envelope struct {
			Data []RecipeView `json:"data"`
		}
		if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return envelope.Data
	}

	if got := list("?author=" + strconv.Itoa(a1.ID)); len(got) != 1 || got[0].Author.ID != a1.ID {
		t.Fatalf("author filter: %+v", got)
	}
	if got := list("?is_favorited=true"); len(got) != 1 || got[0].ID != r1 {
		t.Fatalf("favorited filter: %+v", got)
	}
	if got := list("?is_in_shopping_cart=true"); len(got) != 0 {
		t.Fatalf("cart filter: %+v", got)
	}
	if got := list(""); len(got) != 2 {
		t.Fatalf("unfiltered: %+v", got)
	}
	if res := doJSON(t, app, http.MethodGet, "/recipes?sort=bogus:asc", nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad sort status %d", res.StatusCode)
	}
}
