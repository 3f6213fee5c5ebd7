// Package users exposes user profiles, avatars and subscription management.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"foodgram-api/ent"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/subscription"
	"foodgram-api/ent/user"
	"foodgram-api/internal/httpx/auth"
	"foodgram-api/internal/httpx/kit"
	"foodgram-api/internal/httpx/mw"
	"foodgram-api/internal/relations"
	"foodgram-api/internal/storagex"
)

func toView(u *ent.User, subscribed bool) UserView {
	return UserView{
		ID: u.ID, Email: u.Email, Username: u.Username,
		FirstName: u.FirstName, LastName: u.LastName,
		Avatar: u.Avatar, IsSubscribed: subscribed,
	}
}

// subscribedSet returns the subset of targetIDs the viewer subscribes to,
// with a single batched query. Anonymous viewers get an empty set.
func subscribedSet(ctx context.Context, client *ent.Client, viewerID int, targetIDs []int) (map[int]bool, error) {
	out := map[int]bool{}
	if viewerID == 0 || len(targetIDs) == 0 {
		return out, nil
	}
	subs, err := client.Subscription.Query().
		Where(subscription.SenderID(viewerID), subscription.TargetIDIn(targetIDs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range subs {
		out[s.TargetID] = true
	}
	return out, nil
}

// ListHandler returns a page of users.
//
//	@Summary      List users
//	@Tags         users
//	@Produce      json
//	@Param        page   query  int  false  "page"
//	@Param        limit  query  int  false  "page size"
//	@Success      200  {array}  users.UserView
//	@Router       /api/v1/users [get]
func ListHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.User.Query().Order(ent.Asc(user.FieldID))
		total, err := q.Clone().Count(ctx)
		if err != nil {
			return kit.InternalError("count users failed", err.Error())
		}
		list, err := q.Offset(p.Offset()).Limit(p.Limit).All(ctx)
		if err != nil {
			return kit.InternalError("list users failed", err.Error())
		}

		viewer := mw.CurrentUserID(c)
		subs, err := subscribedSet(ctx, client, viewer, lo.Map(list, func(u *ent.User, _ int) int { return u.ID }))
		if err != nil {
			return kit.InternalError("annotate users failed", err.Error())
		}
		views := lo.Map(list, func(u *ent.User, _ int) UserView { return toView(u, subs[u.ID]) })
		return kit.List(c, views, p.Meta(len(views), total))
	}
}

// GetHandler returns one user profile.
//
//	@Summary      Get user
//	@Tags         users
//	@Produce      json
//	@Param        id  path  int  true  "user id"
//	@Success      200  {object}  users.UserView
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/users/{id} [get]
func GetHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid user id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		u, err := client.User.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("user not found")
			}
			return kit.InternalError("get user failed", err.Error())
		}
		viewer := mw.CurrentUserID(c)
		subs, err := subscribedSet(ctx, client, viewer, []int{u.ID})
		if err != nil {
			return kit.InternalError("annotate user failed", err.Error())
		}
		return kit.OK(c, toView(u, subs[u.ID]))
	}
}

// MeHandler returns the authenticated user's own profile.
//
//	@Summary      Current user
//	@Tags         users
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  users.UserView
//	@Failure      401  {object}  map[string]interface{}
//	@Router       /api/v1/users/me [get]
func MeHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := mw.CurrentUserID(c)
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		u, err := client.User.Get(ctx, uid)
		if err != nil {
			return kit.InternalError("get user failed", err.Error())
		}
		return kit.OK(c, toView(u, false))
	}
}

// SetAvatarHandler stores a base64 avatar image and saves its public URL.
//
//	@Summary      Set avatar
//	@Tags         users
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        body  body  users.SetAvatarRequest  true  "avatar payload"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/users/me/avatar [put]
func SetAvatarHandler(client *ent.Client, store storagex.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SetAvatarRequest
		if err := c.BodyParser(&req); err != nil || req.Avatar == "" {
			return kit.BadRequest("avatar required", nil)
		}
		img, err := storagex.DecodeDataURL("avatars", req.Avatar)
		if err != nil {
			return kit.BadRequest("invalid avatar image", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		url, err := store.Save(ctx, img.Key, img.ContentType, img.Data)
		if err != nil {
			return kit.InternalError("store avatar failed", err.Error())
		}
		uid := mw.CurrentUserID(c)
		if err := client.User.UpdateOneID(uid).SetAvatar(url).Exec(ctx); err != nil {
			return kit.InternalError("update avatar failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"avatar": url})
	}
}

// DeleteAvatarHandler clears the stored avatar reference.
//
//	@Summary      Delete avatar
//	@Tags         users
//	@Security     BearerAuth
//	@Success      204  {string}  string  "no content"
//	@Router       /api/v1/users/me/avatar [delete]
func DeleteAvatarHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		uid := mw.CurrentUserID(c)
		if err := client.User.UpdateOneID(uid).SetAvatar("").Exec(ctx); err != nil {
			return kit.InternalError("clear avatar failed", err.Error())
		}
		return kit.NoContent(c)
	}
}

// SetPasswordHandler changes the password after verifying the current one.
//
//	@Summary      Change password
//	@Tags         users
//	@Accept       json
//	@Security     BearerAuth
//	@Param        body  body  users.SetPasswordRequest  true  "password change"
//	@Success      204  {string}  string  "no content"
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/users/set_password [post]
func SetPasswordHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SetPasswordRequest
		if err := c.BodyParser(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
			return kit.BadRequest("current_password and new_password required", nil)
		}
		if len(req.NewPassword) < 8 {
			return kit.BadRequest("password too short", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		uid := mw.CurrentUserID(c)
		u, err := client.User.Get(ctx, uid)
		if err != nil {
			return kit.InternalError("get user failed", err.Error())
		}
		if !auth.VerifyPassword(req.CurrentPassword, u.PasswordHash) {
			return kit.BadRequest("current password does not match", nil)
		}
		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}
		if err := client.User.UpdateOneID(uid).SetPasswordHash(hash).Exec(ctx); err != nil {
			return kit.InternalError("update password failed", err.Error())
		}
		return kit.NoContent(c)
	}
}

// SubscriptionsHandler lists the authors the viewer subscribes to, each with
// a bounded preview of their recipes.
//
//	@Summary      My subscriptions
//	@Tags         users
//	@Produce      json
//	@Security     BearerAuth
//	@Param        recipes_limit  query  int  false  "max recipes per author"
//	@Success      200  {array}  users.UserWithRecipes
//	@Router       /api/v1/users/subscriptions [get]
func SubscriptionsHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		recipesLimit := lo.Clamp(c.QueryInt("recipes_limit", 3), 1, 50)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		uid := mw.CurrentUserID(c)
		q := client.Subscription.Query().
			Where(subscription.SenderID(uid)).
			Order(ent.Desc(subscription.FieldCreatedAt))
		total, err := q.Clone().Count(ctx)
		if err != nil {
			return kit.InternalError("count subscriptions failed", err.Error())
		}
		subs, err := q.Offset(p.Offset()).Limit(p.Limit).All(ctx)
		if err != nil {
			return kit.InternalError("list subscriptions failed", err.Error())
		}

		views := make([]UserWithRecipes, 0, len(subs))
		for _, s := range subs {
			author, err := client.User.Get(ctx, s.TargetID)
			if err != nil {
				return kit.InternalError("get author failed", err.Error())
			}
			rq := client.Recipe.Query().Where(recipe.AuthorID(author.ID))
			count, err := rq.Clone().Count(ctx)
			if err != nil {
				return kit.InternalError("count recipes failed", err.Error())
			}
			rs, err := rq.Order(ent.Desc(recipe.FieldPubDate)).Limit(recipesLimit).All(ctx)
			if err != nil {
				return kit.InternalError("list recipes failed", err.Error())
			}
			views = append(views, UserWithRecipes{
				UserView: toView(author, true),
				Recipes: lo.Map(rs, func(r *ent.Recipe, _ int) RecipeBrief {
					return RecipeBrief{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
				}),
				RecipesCount: count,
			})
		}
		return kit.List(c, views, p.Meta(len(views), total))
	}
}

// SubscribeHandler subscribes the viewer to an author.
//
//	@Summary      Subscribe to author
//	@Tags         users
//	@Security     BearerAuth
//	@Param        id  path  int  true  "author id"
//	@Success      201  {object}  users.UserView
//	@Failure      404  {object}  map[string]interface{}
//	@Failure      409  {object}  map[string]interface{}
//	@Router       /api/v1/users/{id}/subscribe [post]
func SubscribeHandler(client *ent.Client, reg *relations.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid user id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		target, err := client.User.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("user not found")
			}
			return kit.InternalError("get user failed", err.Error())
		}

		uid := mw.CurrentUserID(c)
		if err := reg.Add(ctx, relations.KindSubscription, uid, id); err != nil {
			switch {
			case errors.Is(err, relations.ErrSelfRelation):
				return kit.Conflict("E_SELF_RELATION", "cannot subscribe to yourself")
			case errors.Is(err, relations.ErrAlreadyExists):
				return kit.Conflict("E_ALREADY_EXISTS", "already subscribed")
			default:
				return kit.InternalError("subscribe failed", err.Error())
			}
		}
		return kit.Created(c, toView(target, true))
	}
}

// UnsubscribeHandler removes the viewer's subscription to an author.
//
//	@Summary      Unsubscribe from author
//	@Tags         users
//	@Security     BearerAuth
//	@Param        id  path  int  true  "author id"
//	@Success      204  {string}  string  "no content"
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/users/{id}/subscribe [delete]
func UnsubscribeHandler(reg *relations.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid user id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		uid := mw.CurrentUserID(c)
		if err := reg.Remove(ctx, relations.KindSubscription, uid, id); err != nil {
			if errors.Is(err, relations.ErrNotFound) {
				return kit.NotFound("subscription not found")
			}
			return kit.InternalError("unsubscribe failed", err.Error())
		}
		return kit.NoContent(c)
	}
}
