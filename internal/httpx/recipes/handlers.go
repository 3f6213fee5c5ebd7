// Package recipes exposes the recipe HTTP surface: CRUD, favorites, the
// shopping cart with its downloadable list, short links and search.
package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"foodgram-api/ent"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
	"foodgram-api/ent/recipe"
	"foodgram-api/internal/config"
	"foodgram-api/internal/esx"
	"foodgram-api/internal/httpx/kit"
	"foodgram-api/internal/httpx/mw"
	"foodgram-api/internal/logx"
	"foodgram-api/internal/mqx"
	"foodgram-api/internal/relations"
	recipestore "foodgram-api/internal/recipes"
	"foodgram-api/internal/storagex"
)

var recipesLogger = logx.GetScope("recipes.http")

// Deps bundles the collaborators the recipe handlers need.
type Deps struct {
	Cfg    *config.Config
	Client *ent.Client
	Store  *recipestore.Store
	Links  *recipestore.ShortLinks
	Reg    *relations.Registry
	Media  storagex.Store
	MQ     mqx.Publisher
	ES     *esx.Client
}

func toBrief(r *ent.Recipe) RecipeBrief {
	return RecipeBrief{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, recipestore.ErrEmptyIngredients):
		return kit.BadRequest("at least one ingredient required", nil)
	case errors.Is(err, recipestore.ErrDuplicateIngredient):
		return kit.BadRequest("duplicate ingredient in recipe", nil)
	case errors.Is(err, recipestore.ErrAmountOutOfRange):
		return kit.BadRequest("ingredient amount out of range", fiber.Map{
			"min": recipestore.MinAmount, "max": recipestore.MaxAmount,
		})
	case errors.Is(err, recipestore.ErrTimeOutOfRange):
		return kit.BadRequest("cooking time out of range", fiber.Map{
			"min": recipestore.MinCookingTime, "max": recipestore.MaxCookingTime,
		})
	case errors.Is(err, recipestore.ErrNotFound):
		return kit.NotFound("recipe not found")
	case errors.Is(err, recipestore.ErrNotOwner):
		return kit.Forbidden("only the author may modify this recipe")
	default:
		return kit.InternalError("recipe operation failed", err.Error())
	}
}

func toLines(req []IngredientLineRequest) []recipestore.Line {
	return lo.Map(req, func(l IngredientLineRequest, _ int) recipestore.Line {
		return recipestore.Line{IngredientID: l.ID, Amount: l.Amount}
	})
}

// buildView assembles the full recipe view for one recipe.
func buildView(ctx context.Context, d Deps, r *ent.Recipe, flags recipestore.Flags) (RecipeView, error) {
	author, err := d.Client.User.Get(ctx, r.AuthorID)
	if err != nil {
		return RecipeView{}, err
	}
	lines, err := d.Store.Lines(ctx, r.ID)
	if err != nil {
		return RecipeView{}, err
	}
	return RecipeView{
		ID: r.ID,
		Author: AuthorView{
			ID: author.ID, Username: author.Username,
			FirstName: author.FirstName, LastName: author.LastName, Avatar: author.Avatar,
		},
		Ingredients: lo.Map(lines, func(ri *ent.RecipeIngredient, _ int) IngredientLineView {
			return IngredientLineView{
				ID:              ri.IngredientID,
				Name:            ri.Edges.Ingredient.Name,
				MeasurementUnit: ri.Edges.Ingredient.MeasurementUnit,
				Amount:          ri.Amount,
			}
		}),
		IsFavorited:      flags.IsFavorited,
		IsInShoppingCart: flags.IsInShoppingCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		PubDate:          r.PubDate.UTC().Format(time.RFC3339),
	}, nil
}

func publishEvent(d Deps, key string, r *ent.Recipe) {
	if d.MQ == nil {
		return
	}
	body, _ := json.Marshal(fiber.Map{"id": r.ID, "name": r.Name, "author_id": r.AuthorID})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.MQ.Publish(ctx, key, body); err != nil {
		recipesLogger.Sugar().Warnf("publish %s: %v", key, err)
	}
}

func indexRecipe(d Deps, r *ent.Recipe) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	doc := esx.RecipeDoc{
		ID: r.ID, Name: r.Name, Text: r.Text,
		AuthorID: r.AuthorID, PubDate: r.PubDate.UTC().Format(time.RFC3339),
	}
	if err := esx.IndexRecipe(ctx, d.ES, esx.RecipeIndex, doc); err != nil {
		recipesLogger.Sugar().Warnf("index recipe %d: %v", r.ID, err)
	}
}

// ListHandler returns a filtered, sorted page of recipes with viewer flags.
//
//	@Summary      List recipes
//	@Tags         recipes
//	@Produce      json
//	@Param        page                 query  int     false  "page"
//	@Param        limit                query  int     false  "page size"
//	@Param        author               query  int     false  "filter by author id"
//	@Param        is_favorited         query  bool    false  "only viewer's favorites"
//	@Param        is_in_shopping_cart  query  bool    false  "only viewer's cart"
//	@Param        sort                 query  string  false  "field:asc|desc"
//	@Success      200  {array}  recipes.RecipeView
//	@Router       /api/v1/recipes [get]
func ListHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		viewer := mw.CurrentUserID(c)
		q := d.Client.Recipe.Query()
		if authorID := c.QueryInt("author", 0); authorID > 0 {
			q = q.Where(recipe.AuthorID(authorID))
		}
		if c.QueryBool("is_favorited", false) {
			if viewer == 0 {
				return kit.List(c, []RecipeView{}, p.Meta(0, 0))
			}
			q = q.Where(recipe.HasFavoritedByWith(favorite.UserID(viewer)))
		}
		if c.QueryBool("is_in_shopping_cart", false) {
			if viewer == 0 {
				return kit.List(c, []RecipeView{}, p.Meta(0, 0))
			}
			q = q.Where(recipe.HasInCartsWith(cartitem.UserID(viewer)))
		}
		q, err = kit.ApplyRecipeSort(q, c.Query("sort", ""))
		if err != nil {
			return err
		}

		total, err := q.Clone().Count(ctx)
		if err != nil {
			return kit.InternalError("count recipes failed", err.Error())
		}
		list, err := q.Offset(p.Offset()).Limit(p.Limit).All(ctx)
		if err != nil {
			return kit.InternalError("list recipes failed", err.Error())
		}

		ids := lo.Map(list, func(r *ent.Recipe, _ int) int { return r.ID })
		flags, err := recipestore.AnnotateFlags(ctx, d.Client, viewer, ids)
		if err != nil {
			return kit.InternalError("annotate recipes failed", err.Error())
		}

		views := make([]RecipeView, 0, len(list))
		for _, r := range list {
			v, err := buildView(ctx, d, r, flags[r.ID])
			if err != nil {
				return kit.InternalError("build recipe view failed", err.Error())
			}
			views = append(views, v)
		}
		return kit.List(c, views, p.Meta(len(views), total))
	}
}

// GetHandler returns one recipe with viewer flags.
//
//	@Summary      Get recipe
//	@Tags         recipes
//	@Produce      json
//	@Param        id  path  int  true  "recipe id"
//	@Success      200  {object}  recipes.RecipeView
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id} [get]
func GetHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid recipe id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		r, err := d.Client.Recipe.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("recipe not found")
			}
			return kit.InternalError("get recipe failed", err.Error())
		}
		viewer := mw.CurrentUserID(c)
		flags, err := recipestore.AnnotateFlags(ctx, d.Client, viewer, []int{r.ID})
		if err != nil {
			return kit.InternalError("annotate recipe failed", err.Error())
		}
		v, err := buildView(ctx, d, r, flags[r.ID])
		if err != nil {
			return kit.InternalError("build recipe view failed", err.Error())
		}
		return kit.OK(c, v)
	}
}

// CreateHandler publishes a new recipe.
//
//	@Summary      Create recipe
//	@Tags         recipes
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  recipes.RecipeRequest  true  "recipe"
//	@Success      201  {object}  recipes.RecipeView
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/recipes [post]
func CreateHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RecipeRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Name == "" || req.Text == "" || req.Image == "" {
			return kit.BadRequest("name, text and image required", nil)
		}
		img, err := storagex.DecodeDataURL("recipes", req.Image)
		if err != nil {
			return kit.BadRequest("invalid recipe image", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		url, err := d.Media.Save(ctx, img.Key, img.ContentType, img.Data)
		if err != nil {
			return kit.InternalError("store image failed", err.Error())
		}

		uid := mw.CurrentUserID(c)
		rec, err := d.Store.Create(ctx, recipestore.CreateParams{
			AuthorID:    uid,
			Name:        req.Name,
			Image:       url,
			Text:        req.Text,
			CookingTime: req.CookingTime,
			Lines:       toLines(req.Ingredients),
		})
		if err != nil {
			return mapDomainErr(err)
		}

		publishEvent(d, "recipe.created", rec)
		indexRecipe(d, rec)

		v, err := buildView(ctx, d, rec, recipestore.Flags{})
		if err != nil {
			return kit.InternalError("build recipe view failed", err.Error())
		}
		return kit.Created(c, v)
	}
}

// UpdateHandler replaces a recipe's fields and entire ingredient set.
//
//	@Summary      Update recipe
//	@Tags         recipes
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  int                   true  "recipe id"
//	@Param        body  body  recipes.RecipeRequest true  "recipe"
//	@Success      200  {object}  recipes.RecipeView
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id} [patch]
func UpdateHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid recipe id", c.Params("id"))
		}
		var req RecipeRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", nil)
		}
		if req.Name == "" || req.Text == "" {
			return kit.BadRequest("name and text required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()

		imageURL := ""
		if req.Image != "" {
			img, err := storagex.DecodeDataURL("recipes", req.Image)
			if err != nil {
				return kit.BadRequest("invalid recipe image", err.Error())
			}
			imageURL, err = d.Media.Save(ctx, img.Key, img.ContentType, img.Data)
			if err != nil {
				return kit.InternalError("store image failed", err.Error())
			}
		}

		uid := mw.CurrentUserID(c)
		rec, err := d.Store.Update(ctx, id, uid, recipestore.UpdateParams{
			Name:        req.Name,
			Image:       imageURL,
			Text:        req.Text,
			CookingTime: req.CookingTime,
			Lines:       toLines(req.Ingredients),
		})
		if err != nil {
			return mapDomainErr(err)
		}

		publishEvent(d, "recipe.updated", rec)
		indexRecipe(d, rec)

		viewer := mw.CurrentUserID(c)
		flags, err := recipestore.AnnotateFlags(ctx, d.Client, viewer, []int{rec.ID})
		if err != nil {
			return kit.InternalError("annotate recipe failed", err.Error())
		}
		v, err := buildView(ctx, d, rec, flags[rec.ID])
		if err != nil {
			return kit.InternalError("build recipe view failed", err.Error())
		}
		return kit.OK(c, v)
	}
}

// DeleteHandler removes a recipe with everything attached to it.
//
//	@Summary      Delete recipe
//	@Tags         recipes
//	@Security     BearerAuth
//	@Param        id  path  int  true  "recipe id"
//	@Success      204  {string}  string  "no content"
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id} [delete]
func DeleteHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid recipe id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		uid := mw.CurrentUserID(c)
		rec, err := d.Client.Recipe.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("recipe not found")
			}
			return kit.InternalError("get recipe failed", err.Error())
		}
		if err := d.Store.Delete(ctx, id, uid); err != nil {
			return mapDomainErr(err)
		}

		publishEvent(d, "recipe.deleted", rec)
		go func(recipeID int) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := esx.DeleteRecipe(ctx, d.ES, esx.RecipeIndex, recipeID); err != nil {
				recipesLogger.Sugar().Warnf("deindex recipe %d: %v", recipeID, err)
			}
		}(id)

		return kit.NoContent(c)
	}
}

func addRelationHandler(d Deps, kind relations.Kind, existsMsg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid recipe id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		r, err := d.Client.Recipe.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("recipe not found")
			}
			return kit.InternalError("get recipe failed", err.Error())
		}
		uid := mw.CurrentUserID(c)
		if err := d.Reg.Add(ctx, kind, uid, id); err != nil {
			if errors.Is(err, relations.ErrAlreadyExists) {
				return kit.Conflict("E_ALREADY_EXISTS", existsMsg)
			}
			return kit.InternalError("add relation failed", err.Error())
		}
		return kit.Created(c, toBrief(r))
	}
}

func removeRelationHandler(d Deps, kind relations.Kind, missingMsg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid recipe id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		uid := mw.CurrentUserID(c)
		if err := d.Reg.Remove(ctx, kind, uid, id); err != nil {
			if errors.Is(err, relations.ErrNotFound) {
				return kit.NotFound(missingMsg)
			}
			return kit.InternalError("remove relation failed", err.Error())
		}
		return kit.NoContent(c)
	}
}

// FavoriteHandler marks a recipe as the viewer's favorite.
//
//	@Summary      Favorite recipe
//	@Tags         recipes
//	@Security     BearerAuth
//	@Param        id  path  int  true  "recipe id"
//	@Success      201  {object}  recipes.RecipeBrief
//	@Failure      409  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id}/favorite [post]
func FavoriteHandler(d Deps) fiber.Handler {
	return addRelationHandler(d, relations.KindFavorite, "recipe already in favorites")
}

// UnfavoriteHandler removes the favorite mark.
//
//	@Summary      Unfavorite recipe
//	@Tags         recipes
//	@Security     BearerAuth
//	@Param        id  path  int  true  "recipe id"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id}/favorite [delete]
func UnfavoriteHandler(d Deps) fiber.Handler {
	return removeRelationHandler(d, relations.KindFavorite, "recipe not in favorites")
}

// CartHandler puts a recipe into the viewer's shopping cart.
//
//	@Summary      Add recipe to cart
//	@Tags         recipes
//	@Security     BearerAuth
//	@Param        id  path  int  true  "recipe id"
//	@Success      201  {object}  recipes.RecipeBrief
//	@Failure      409  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id}/shopping_cart [post]
func CartHandler(d Deps) fiber.Handler {
	return addRelationHandler(d, relations.KindCart, "recipe already in shopping cart")
}

// UncartHandler removes a recipe from the viewer's shopping cart.
//
//	@Summary      Remove recipe from cart
//	@Tags         recipes
//	@Security     BearerAuth
//	@Param        id  path  int  true  "recipe id"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id}/shopping_cart [delete]
func UncartHandler(d Deps) fiber.Handler {
	return removeRelationHandler(d, relations.KindCart, "recipe not in shopping cart")
}

// DownloadCartHandler renders the aggregated shopping list as a text file.
//
//	@Summary      Download shopping list
//	@Tags         recipes
//	@Produce      plain
//	@Security     BearerAuth
//	@Success      200  {string}  string  "plain text list"
//	@Router       /api/v1/recipes/download_shopping_cart [get]
func DownloadCartHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		uid := mw.CurrentUserID(c)
		items, err := recipestore.AggregateCart(ctx, d.Client, uid)
		if err != nil {
			return kit.InternalError("aggregate cart failed", err.Error())
		}
		body := recipestore.RenderShoppingList(items)
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+recipestore.ShoppingListFilename+`"`)
		return c.SendString(body)
	}
}

// GetLinkHandler returns the public short link of a recipe.
//
//	@Summary      Get recipe short link
//	@Tags         recipes
//	@Produce      json
//	@Param        id  path  int  true  "recipe id"
//	@Success      200  {object}  recipes.ShortLinkResponse
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/recipes/{id}/get-link [get]
func GetLinkHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid recipe id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		r, err := d.Client.Recipe.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("recipe not found")
			}
			return kit.InternalError("get recipe failed", err.Error())
		}
		base := d.Cfg.Server.BaseURL
		return kit.OK(c, ShortLinkResponse{ShortLink: base + "/s/" + r.ShortLink})
	}
}

// ResolveShortLinkHandler redirects a short code to the recipe page.
//
//	@Summary      Resolve short link
//	@Tags         recipes
//	@Param        code  path  string  true  "short link code"
//	@Success      302  {string}  string  "redirect"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /s/{code} [get]
func ResolveShortLinkHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")
		if len(code) != recipestore.CodeLength {
			return kit.NotFound("unknown short link")
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		id, err := d.Links.Resolve(ctx, code)
		if err != nil {
			if errors.Is(err, recipestore.ErrNotFound) {
				return kit.NotFound("unknown short link")
			}
			return kit.InternalError("resolve short link failed", err.Error())
		}
		return c.Redirect("/api/v1/recipes/"+strconv.Itoa(id), fiber.StatusFound)
	}
}

// SearchHandler runs a full-text recipe search against Elasticsearch.
//
//	@Summary      Search recipes
//	@Tags         recipes
//	@Produce      json
//	@Param        q      query  string  true   "query text"
//	@Param        page   query  int     false  "page"
//	@Param        limit  query  int     false  "page size"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/search/recipes [get]
func SearchHandler(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q", "")
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		p, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		out, err := esx.SearchRecipes(ctx, d.ES, esx.RecipeIndex, q, p.Offset(), p.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}
