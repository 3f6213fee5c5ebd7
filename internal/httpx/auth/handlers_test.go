package auth

import (
	"bytes"
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
	"foodgram-api/internal/config"
	"foodgram-api/internal/httpx/kit/testutil"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:auth?mode=memory&cache=shared&_pragma=foreign_keys(1)"
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

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "test"
	cfg.JWT.Audience = "test"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 7
	return cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return res
}

func TestRegisterLoginFlow(t *testing.T) {
	client := newTestClient(t)
	cfg := testConfig()
	app := testutil.NewApp(func(app *fiber.App) {
		app.Post("/register", RegisterHandler(cfg, client))
		app.Post("/login", LoginHandler(cfg, client))
	})

	res := postJSON(t, app, "/register", RegisterRequest{
		Email: "alice@example.com", Username: "alice",
		FirstName: "Alice", LastName: "L", Password: "longenough",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d", res.StatusCode)
	}

	// Duplicate email conflicts.
	res = postJSON(t, app, "/register", RegisterRequest{
		Email: "alice@example.com", Username: "alice2",
		FirstName: "A", LastName: "L", Password: "longenough",
	})
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status %d", res.StatusCode)
	}

	// Bad password length.
	res = postJSON(t, app, "/register", RegisterRequest{
		Email: "bob@example.com", Username: "bob",
		FirstName: "B", LastName: "L", Password: "short",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("short password status %d", res.StatusCode)
	}

	res = postJSON(t, app, "/login", LoginRequest{Email: "alice@example.com", Password: "longenough"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", res.StatusCode)
	}
	var envelope struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.AccessToken == "" || envelope.Data.TokenType != "Bearer" {
		t.Fatalf("token response %+v", envelope.Data)
	}

	uid, err := ParseAndValidate(cfg, envelope.Data.AccessToken)
	if err != nil || uid <= 0 {
		t.Fatalf("issued token invalid: uid=%d err=%v", uid, err)
	}

	res = postJSON(t, app, "/login", LoginRequest{Email: "alice@example.com", Password: "wrongpass"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password status %d", res.StatusCode)
	}
}

func TestPasswordHashRoundtrip(t *testing.T) {
	h, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("s3cret-pass", h) {
		t.Fatalf("verify must accept correct password")
	}
	if VerifyPassword("other", h) {
		t.Fatalf("verify must reject wrong password")
	}
	if VerifyPassword("s3cret-pass", "not-a-hash") {
		t.Fatalf("verify must reject malformed hash")
	}
}

func TestTokenValidation(t *testing.T) {
	cfg := testConfig()
	tok, _, err := SignAccess(cfg, 42)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	uid, err := ParseAndValidate(cfg, tok)
	if err != nil || uid != 42 {
		t.Fatalf("parse: uid=%d err=%v", uid, err)
	}

	other := testConfig()
	other.JWT.HSSecret = "different"
	if _, err := ParseAndValidate(other, tok); err == nil {
		t.Fatalf("token signed with another secret must fail")
	}
	if _, err := ParseAndValidate(cfg, "garbage.token.here"); err == nil {
		t.Fatalf("garbage token must fail")
	}
}
