package httpx_test

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
	"foodgram-api/internal/httpx"
	"foodgram-api/internal/httpx/kit/testutil"
	"foodgram-api/internal/storagex"
)

func newE2EApp(t *testing.T) (*fiber.App, *ent.Client) {
	t.Helper()

	dsn := "file:e2e?mode=memory&cache=shared&_pragma=foreign_keys(1)"
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

	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://e2e.local"
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "e2e-secret"
	cfg.JWT.Issuer = "e2e"
	cfg.JWT.Audience = "e2e"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	cfg.RateLimit.WindowSec = 60
	cfg.RateLimit.Max = 10000
	cfg.Media.Dir = t.TempDir()
	cfg.Media.PublicPrefix = "/media"

	media, err := storagex.New(cfg)
	if err != nil {
		t.Fatalf("media store: %v", err)
	}

	app := testutil.NewApp(func(app *fiber.App) {
		httpx.Register(app, cfg, client, media)
	})
	return app, client
}

type e2eClient struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func (c *e2eClient) do(method, path string, body any) *http.Response {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	res, err := c.app.Test(req, -1)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	return res
}

func (c *e2eClient) decode(res *http.Response, out any) {
	c.t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		c.t.Fatalf("decode envelope: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			c.t.Fatalf("decode data: %v", err)
		}
	}
}

func (c *e2eClient) signup(email, username, password string) {
	c.t.Helper()
	res := c.do(http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"email": email, "username": username,
		"first_name": "E", "last_name": "Two", "password": password,
	})
	if res.StatusCode != http.StatusCreated {
		c.t.Fatalf("register %s status %d", email, res.StatusCode)
	}
	res = c.do(http.MethodPost, "/api/v1/auth/login", fiber.Map{"email": email, "password": password})
	if res.StatusCode != http.StatusOK {
		c.t.Fatalf("login %s status %d", email, res.StatusCode)
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	c.decode(res, &tok)
	if tok.AccessToken == "" {
		c.t.Fatalf("login %s returned no token", email)
	}
	c.token = tok.AccessToken
}

func TestEndToEndRecipeFlow(t *testing.T) {
	app, client := newE2EApp(t)
	ctx := context.Background()

	flour, err := client.Ingredient.Create().SetName("flour").SetMeasurementUnit("g").Save(ctx)
	if err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	sugar, err := client.Ingredient.Create().SetName("sugar").SetMeasurementUnit("g").Save(ctx)
	if err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}

	chef := &e2eClient{t: t, app: app}
	chef.signup("chef@example.com", "chef", "chefpassword")

	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47})
	res := chef.do(http.MethodPost, "/api/v1/recipes", fiber.Map{
		"ingredients":  []fiber.Map{{"id": flour.ID, "amount": 300}, {"id": sugar.ID, "amount": 50}},
		"image":        image,
		"name":         "cookies",
		"text":         "mix, shape, bake",
		"cooking_time": 25,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create recipe status %d", res.StatusCode)
	}
	var created struct {
		ID int `json:"id"`
	}
	chef.decode(res, &created)
	if created.ID == 0 {
		t.Fatalf("recipe id missing")
	}

	// A second account interacts with the recipe.
	fan := &e2eClient{t: t, app: app}
	fan.signup("fan@example.com", "fan", "fanpassword")

	recipePath := "/api/v1/recipes/" + strconv.Itoa(created.ID)

	if res := fan.do(http.MethodPost, recipePath+"/favorite", nil); res.StatusCode != http.StatusCreated {
		t.Fatalf("favorite status %d", res.StatusCode)
	}
	if res := fan.do(http.MethodPost, recipePath+"/shopping_cart", nil); res.StatusCode != http.StatusCreated {
		t.Fatalf("cart status %d", res.StatusCode)
	}
	if res := fan.do(http.MethodPost, recipePath+"/shopping_cart", nil); res.StatusCode != http.StatusConflict {
		t.Fatalf("cart duplicate status %d", res.StatusCode)
	}

	// Viewer flags show up on reads for the fan.
	res = fan.do(http.MethodGet, recipePath, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get recipe status %d", res.StatusCode)
	}
	var view struct {
		IsFavorited      bool `json:"is_favorited"`
		IsInShoppingCart bool `json:"is_in_shopping_cart"`
	}
	fan.decode(res, &view)
	if !view.IsFavorited || !view.IsInShoppingCart {
		t.Fatalf("viewer flags %+v", view)
	}

	// Download aggregates everything in the cart.
	res = fan.do(http.MethodGet, "/api/v1/recipes/download_shopping_cart", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("download status %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	text := string(body)
	if !strings.HasPrefix(text, "Shopping list:") ||
		!strings.Contains(text, "flour - 300 g") ||
		!strings.Contains(text, "sugar - 50 g") {
		t.Fatalf("shopping list body %q", text)
	}

	// Short link: fetch it, then follow it anonymously.
	res = fan.do(http.MethodGet, recipePath+"/get-link", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get-link status %d", res.StatusCode)
	}
	var link struct {
		ShortLink string `json:"short-link"`
	}
	fan.decode(res, &link)
	const prefix = "http://e2e.local/s/"
	if !strings.HasPrefix(link.ShortLink, prefix) {
		t.Fatalf("short link %q", link.ShortLink)
	}
	code := strings.TrimPrefix(link.ShortLink, prefix)

	anon := &e2eClient{t: t, app: app}
	res = anon.do(http.MethodGet, "/s/"+code, nil)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("short link redirect status %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != recipePath {
		t.Fatalf("redirect location %q, want %q", loc, recipePath)
	}

	// The fan follows the chef and sees them in subscriptions.
	var me struct {
		ID int `json:"id"`
	}
	res = chef.do(http.MethodGet, "/api/v1/users/me", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me status %d", res.StatusCode)
	}
	chef.decode(res, &me)

	if res := fan.do(http.MethodPost, "/api/v1/users/"+strconv.Itoa(me.ID)+"/subscribe", nil); res.StatusCode != http.StatusCreated {
		t.Fatalf("subscribe status %d", res.StatusCode)
	}
	res = fan.do(http.MethodGet, "/api/v1/users/subscriptions", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("subscriptions status %d", res.StatusCode)
	}
	var subs []struct {
		ID           int  `json:"id"`
		RecipesCount int  `json:"recipes_count"`
		IsSubscribed bool `json:"is_subscribed"`
	}
	fan.decode(res, &subs)
	if len(subs) != 1 || subs[0].ID != me.ID || subs[0].RecipesCount != 1 {
		t.Fatalf("subscriptions %+v", subs)
	}

	// Protected routes reject anonymous callers.
	if res := anon.do(http.MethodPost, recipePath+"/favorite", nil); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous favorite status %d", res.StatusCode)
	}
	if res := anon.do(http.MethodGet, "/api/v1/recipes/download_shopping_cart", nil); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous download status %d", res.StatusCode)
	}

	// The chef deletes the recipe; relations disappear with it.
	if res := fan.do(http.MethodDelete, recipePath, nil); res.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign delete status %d", res.StatusCode)
	}
	if res := chef.do(http.MethodDelete, recipePath, nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status %d", res.StatusCode)
	}
	if res := fan.do(http.MethodGet, recipePath, nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted status %d", res.StatusCode)
	}
	n, err := client.CartItem.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count cart: %v", err)
	}
	if n != 0 {
		t.Fatalf("cart rows must cascade, got %d", n)
	}
}

func TestHealthAndAnonymousListing(t *testing.T) {
	app, client := newE2EApp(t)
	ctx := context.Background()

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health status %d", res.StatusCode)
	}

	if _, err := client.Ingredient.Create().SetName("salt").SetMeasurementUnit("g").Save(ctx); err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/ingredients/?name=sal", nil))
	if err != nil {
		t.Fatalf("ingredients: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("ingredients status %d", res.StatusCode)
	}
	var envelope struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "salt" {
		t.Fatalf("ingredient search %+v", envelope.Data)
	}

	// Anonymous flag filters return an empty page instead of an error.
	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/?is_favorited=true", nil))
	if err != nil {
		t.Fatalf("recipes: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("anonymous filtered list status %d", res.StatusCode)
	}
	var listEnvelope struct {
		Data []any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&listEnvelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listEnvelope.Data) != 0 {
		t.Fatalf("anonymous filtered list must be empty, got %d", len(listEnvelope.Data))
	}
}
