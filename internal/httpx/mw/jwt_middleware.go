// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthContext holds authentication details extracted from JWT.
type AuthContext struct {
	UserID  int
	Subject string // user:<id>
}

// TokenParser parses a token string and returns the user id.
type TokenParser func(token string) (int, error)

// JWTMiddlewareDynamic attaches auth context parsed by the given token parser.
// Requests without a bearer token pass through anonymously.
func JWTMiddlewareDynamic(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		uid, err := parse(token)
		if err == nil && uid > 0 {
			c.Locals("auth", &AuthContext{UserID: uid, Subject: "user:" + strconv.Itoa(uid)})
		}
		return c.Next()
	}
}

// RequireUser enforces an authenticated user.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.UserID <= 0 {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// CurrentUserID returns the authenticated user id, 0 when anonymous.
func CurrentUserID(c *fiber.Ctx) int {
	ac, _ := c.Locals("auth").(*AuthContext)
	if ac == nil {
		return 0
	}
	return ac.UserID
}
