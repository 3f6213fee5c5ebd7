package auth

import (
	"context"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"

	"foodgram-api/ent"
	"foodgram-api/ent/user"
	"foodgram-api/internal/config"
	"foodgram-api/internal/httpx/kit"
)

// RegisterHandler creates a new user account.
//
//	@Summary      Register
//	@Description  Create a user with email, username and password
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.RegisterRequest  true  "register"
//	@Success      201   {object}  auth.RegisterResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      409   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Email == "" || req.Username == "" || req.Password == "" {
			return kit.BadRequest("email, username and password required", nil)
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return kit.BadRequest("invalid email", req.Email)
		}
		if len(req.Password) < 8 {
			return kit.BadRequest("password too short", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}

		u, err := client.User.Create().
			SetEmail(req.Email).
			SetUsername(req.Username).
			SetFirstName(req.FirstName).
			SetLastName(req.LastName).
			SetPasswordHash(hash).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.Conflict("E_CONFLICT", "email or username already taken")
			}
			return kit.InternalError("create user failed", err.Error())
		}

		return kit.Created(c, RegisterResponse{
			ID: u.ID, Email: u.Email, Username: u.Username,
			FirstName: u.FirstName, LastName: u.LastName,
		})
	}
}

// LoginHandler authenticates by email/password and issues tokens.
//
//	@Summary      Login
//	@Description  Authenticate by email and password, issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
			return kit.BadRequest("email and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		u, err := client.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if !VerifyPassword(req.Password, u.PasswordHash) {
			return fiber.ErrUnauthorized
		}

		access, _, err := SignAccess(cfg, u.ID)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		refresh, _, err := SignRefresh(cfg, u.ID)
		if err != nil {
			return kit.InternalError("sign refresh failed", err.Error())
		}
		SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// RefreshHandler issues a new access token using the refresh cookie.
//
//	@Summary      Refresh Access Token
//	@Tags         auth
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		uid, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		access, _, err := SignAccess(cfg, uid)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary      Logout
//	@Description  Clear refresh cookie; access tokens expire naturally
//	@Tags         auth
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}
