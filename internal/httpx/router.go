package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"foodgram-api/ent"
	"foodgram-api/internal/config"
	"foodgram-api/internal/esx"
	"foodgram-api/internal/httpx/auth"
	"foodgram-api/internal/httpx/ingredients"
	"foodgram-api/internal/httpx/kit"
	"foodgram-api/internal/httpx/mw"
	recipesapi "foodgram-api/internal/httpx/recipes"
	"foodgram-api/internal/httpx/users"
	"foodgram-api/internal/mqx"
	"foodgram-api/internal/redisx"
	"foodgram-api/internal/relations"
	"foodgram-api/internal/recipes"
	"foodgram-api/internal/storagex"
)

// Providers carries the optional backing services handlers may use.
type Providers struct {
	MQ  mqx.Publisher
	ES  *esx.Client
	RDB *redisx.Client
}

// Register mounts all routes on the app.
func Register(app *fiber.App, cfg *config.Config, client *ent.Client, media storagex.Store, providers ...*Providers) {
	var p Providers
	if len(providers) > 0 && providers[0] != nil {
		p = *providers[0]
	}

	links := recipes.NewShortLinks(client)
	store := recipes.NewStore(client, links)
	reg := relations.NewRegistry(client)
	deps := recipesapi.Deps{
		Cfg: cfg, Client: client, Store: store, Links: links,
		Reg: reg, Media: media, MQ: p.MQ, ES: p.ES,
	}

	// Parse bearer tokens everywhere; individual routes decide if auth is required.
	app.Use(mw.JWTMiddlewareDynamic(func(token string) (int, error) {
		return auth.ParseAndValidate(cfg, token)
	}))
	app.Use(mw.RateLimitDefault(p.RDB, cfg.RateLimit.WindowSec, cfg.RateLimit.Max))

	app.Get("/health", func(c *fiber.Ctx) error { return kit.OK(c, fiber.Map{"status": "ok"}) })
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Short links live outside the API prefix.
	app.Get("/s/:code", recipesapi.ResolveShortLinkHandler(deps))

	api := app.Group("/api/v1")

	ag := api.Group("/auth")
	ag.Post("/register", auth.RegisterHandler(cfg, client))
	ag.Post("/login", auth.LoginHandler(cfg, client))
	ag.Post("/refresh", auth.RefreshHandler(cfg))
	ag.Post("/logout", auth.LogoutHandler())

	ug := api.Group("/users")
	ug.Get("/", users.ListHandler(client))
	ug.Get("/me", mw.RequireUser(), users.MeHandler(client))
	ug.Put("/me/avatar", mw.RequireUser(), users.SetAvatarHandler(client, media))
	ug.Delete("/me/avatar", mw.RequireUser(), users.DeleteAvatarHandler(client))
	ug.Post("/set_password", mw.RequireUser(), users.SetPasswordHandler(client))
	ug.Get("/subscriptions", mw.RequireUser(), users.SubscriptionsHandler(client))
	ug.Get("/:id", users.GetHandler(client))
	ug.Post("/:id/subscribe", mw.RequireUser(), users.SubscribeHandler(client, reg))
	ug.Delete("/:id/subscribe", mw.RequireUser(), users.UnsubscribeHandler(reg))

	ig := api.Group("/ingredients")
	ig.Get("/", ingredients.ListHandler(client))
	ig.Get("/:id", ingredients.GetHandler(client))

	rg := api.Group("/recipes")
	rg.Get("/", recipesapi.ListHandler(deps))
	rg.Get("/download_shopping_cart", mw.RequireUser(), recipesapi.DownloadCartHandler(deps))
	rg.Post("/", mw.RequireUser(), recipesapi.CreateHandler(deps))
	rg.Get("/:id", recipesapi.GetHandler(deps))
	rg.Patch("/:id", mw.RequireUser(), recipesapi.UpdateHandler(deps))
	rg.Delete("/:id", mw.RequireUser(), recipesapi.DeleteHandler(deps))
	rg.Get("/:id/get-link", recipesapi.GetLinkHandler(deps))
	rg.Post("/:id/favorite", mw.RequireUser(), recipesapi.FavoriteHandler(deps))
	rg.Delete("/:id/favorite", mw.RequireUser(), recipesapi.UnfavoriteHandler(deps))
	rg.Post("/:id/shopping_cart", mw.RequireUser(), recipesapi.CartHandler(deps))
	rg.Delete("/:id/shopping_cart", mw.RequireUser(), recipesapi.UncartHandler(deps))

	api.Get("/search/recipes", recipesapi.SearchHandler(deps))
}
