package users

import (
	"context"
	"database/sql"
	"encoding/json"
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
	"foodgram-api/internal/httpx/auth"
	"foodgram-api/internal/httpx/kit/testutil"
	"foodgram-api/internal/httpx/mw"
	"foodgram-api/internal/relations"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return h
}

func newReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:users?mode=memory&cache=shared&_pragma=foreign_keys(1)"
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

func asUser(id int) func(*fiber.App) {
	return func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{UserID: id, Subject: "user:" + strconv.Itoa(id)})
			return c.Next()
		})
	}
}

func TestSubscribeFlow(t *testing.T) {
	client := newTestClient(t)
	reg := relations.NewRegistry(client)
	viewer := seedUser(t, client, "v@example.com", "viewer")
	author := seedUser(t, client, "a@example.com", "author")

	app := testutil.NewApp(
		asUser(viewer.ID),
		func(app *fiber.App) {
			app.Post("/users/:id/subscribe", mw.RequireUser(), SubscribeHandler(client, reg))
			app.Delete("/users/:id/subscribe", mw.RequireUser(), UnsubscribeHandler(reg))
		},
	)

	do := func(method, path string) *http.Response {
		req := httptest.NewRequest(method, path, nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return res
	}

	authorPath := "/users/" + strconv.Itoa(author.ID) + "/subscribe"

	if res := do(http.MethodPost, authorPath); res.StatusCode != http.StatusCreated {
		t.Fatalf("subscribe status %d", res.StatusCode)
	}
	if res := do(http.MethodPost, authorPath); res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate subscribe status %d", res.StatusCode)
	}
	selfPath := "/users/" + strconv.Itoa(viewer.ID) + "/subscribe"
	res := do(http.MethodPost, selfPath)
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("self subscribe status %d", res.StatusCode)
	}
	var body struct {
		Code string `json:"code"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Code != "E_SELF_RELATION" {
		t.Fatalf("self subscribe code %q", body.Code)
	}

	if res := do(http.MethodPost, "/users/99999/subscribe"); res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing target status %d", res.StatusCode)
	}

	if res := do(http.MethodDelete, authorPath); res.StatusCode != http.StatusNoContent {
		t.Fatalf("unsubscribe status %d", res.StatusCode)
	}
	if res := do(http.MethodDelete, authorPath); res.StatusCode != http.StatusNotFound {
		t.Fatalf("unsubscribe again status %d", res.StatusCode)
	}
}

func TestListUsersAnnotatesSubscription(t *testing.T) {
	client := newTestClient(t)
	viewer := seedUser(t, client, "lv@example.com", "lviewer")
	followed := seedUser(t, client, "lf@example.com", "lfollowed")
	other := seedUser(t, client, "lo@example.com", "lother")

	if err := client.Subscription.Create().
		SetSenderID(viewer.ID).SetTargetID(followed.ID).
		Exec(context.Background()); err != nil {
		t.Fatalf("seed subscription: %v", err)
	}

	app := testutil.NewApp(
		asUser(viewer.ID),
		func(app *fiber.App) { app.Get("/users", ListHandler(client)) },
	)
	req := httptest.NewRequest(http.MethodGet, "/users?limit=50", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("list status %d", res.StatusCode)
	}
	var envelope struct {
		Data []UserView `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	byID := map[int]UserView{}
	for _, v := range envelope.Data {
		byID[v.ID] = v
	}
	if !byID[followed.ID].IsSubscribed {
		t.Fatalf("followed user must be annotated subscribed")
	}
	if byID[other.ID].IsSubscribed || byID[viewer.ID].IsSubscribed {
		t.Fatalf("unrelated users must not be annotated")
	}
}

func TestSetPassword(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Seed with a real hash so the current-password check can pass.
	hash := mustHash(t, "oldpassword")
	u, err := client.User.Create().
		SetEmail("pw@example.com").SetUsername("pw").
		SetFirstName("P").SetLastName("W").SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	app := testutil.NewApp(
		asUser(u.ID),
		func(app *fiber.App) { app.Post("/password", mw.RequireUser(), SetPasswordHandler(client)) },
	)
	do := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/password", newReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return res
	}

	if res := do(`{"current_password":"wrong","new_password":"newpassword"}`); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong current status %d", res.StatusCode)
	}
	if res := do(`{"current_password":"oldpassword","new_password":"newpassword"}`); res.StatusCode != http.StatusNoContent {
		t.Fatalf("change status %d", res.StatusCode)
	}
}
