// Package relations implements the directed unique edges between users and
// recipes (favorite, shopping cart) and between users (subscription). All
// three kinds share one shape: a (from, to) pair that exists at most once.
package relations

import (
	"context"
	"errors"

	"foodgram-api/ent"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
	"foodgram-api/ent/subscription"
)

// Kind selects one of the three edge kinds.
type Kind string

const (
	KindFavorite     Kind = "favorite"
	KindCart         Kind = "cart"
	KindSubscription Kind = "subscription"
)

var (
	// ErrAlreadyExists is returned by Add when the pair already exists.
	ErrAlreadyExists = errors.New("relation already exists")
	// ErrNotFound is returned by Remove when the pair does not exist.
	ErrNotFound = errors.New("relation not found")
	// ErrSelfRelation is returned by Add for a subscription where from == to.
	ErrSelfRelation = errors.New("self relation not allowed")
	// ErrUnknownKind is returned for a kind the registry does not know.
	ErrUnknownKind = errors.New("unknown relation kind")
)

// edgeOps binds a Kind to its concrete ent operations. Uniqueness is never
// checked application-side on insert; the unique index decides, so under a
// concurrent Add for the same pair exactly one insert wins.
type edgeOps struct {
	insert func(ctx context.Context, c *ent.Client, from, to int) error
	delete func(ctx context.Context, c *ent.Client, from, to int) (int, error)
	exists func(ctx context.Context, c *ent.Client, from, to int) (bool, error)
}

var ops = map[Kind]edgeOps{
	KindFavorite: {
		insert: func(ctx context.Context, c *ent.Client, from, to int) error {
			return c.Favorite.Create().SetUserID(from).SetRecipeID(to).Exec(ctx)
		},
		delete: func(ctx context.Context, c *ent.Client, from, to int) (int, error) {
			return c.Favorite.Delete().
				Where(favorite.UserID(from), favorite.RecipeID(to)).
				Exec(ctx)
		},
		exists: func(ctx context.Context, c *ent.Client, from, to int) (bool, error) {
			return c.Favorite.Query().
				Where(favorite.UserID(from), favorite.RecipeID(to)).
				Exist(ctx)
		},
	},
	KindCart: {
		insert: func(ctx context.Context, c *ent.Client, from, to int) error {
			return c.CartItem.Create().SetUserID(from).SetRecipeID(to).Exec(ctx)
		},
		delete: func(ctx context.Context, c *ent.Client, from, to int) (int, error) {
			return c.CartItem.Delete().
				Where(cartitem.UserID(from), cartitem.RecipeID(to)).
				Exec(ctx)
		},
		exists: func(ctx context.Context, c *ent.Client, from, to int) (bool, error) {
			return c.CartItem.Query().
				Where(cartitem.UserID(from), cartitem.RecipeID(to)).
				Exist(ctx)
		},
	},
	KindSubscription: {
		insert: func(ctx context.Context, c *ent.Client, from, to int) error {
			return c.Subscription.Create().SetSenderID(from).SetTargetID(to).Exec(ctx)
		},
		delete: func(ctx context.Context, c *ent.Client, from, to int) (int, error) {
			return c.Subscription.Delete().
				Where(subscription.SenderID(from), subscription.TargetID(to)).
				Exec(ctx)
		},
		exists: func(ctx context.Context, c *ent.Client, from, to int) (bool, error) {
			return c.Subscription.Query().
				Where(subscription.SenderID(from), subscription.TargetID(to)).
				Exist(ctx)
		},
	},
}

// Registry adds, removes and checks relation edges of all kinds.
type Registry struct {
	client *ent.Client
}

// NewRegistry returns a registry over the given ent client.
func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client}
}

// Add inserts the (from, to) edge of the given kind. It fails with
// ErrSelfRelation for a subscription to oneself and with ErrAlreadyExists
// when the pair is already present.
func (r *Registry) Add(ctx context.Context, kind Kind, from, to int) error {
	if kind == KindSubscription && from == to {
		return ErrSelfRelation
	}
	op, ok := ops[kind]
	if !ok {
		return ErrUnknownKind
	}
	if err := op.insert(ctx, r.client, from, to); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Remove deletes the (from, to) edge of the given kind. The affected-row
// count of the single delete distinguishes "removed" from "was not present";
// the latter fails with ErrNotFound.
func (r *Registry) Remove(ctx context.Context, kind Kind, from, to int) error {
	op, ok := ops[kind]
	if !ok {
		return ErrUnknownKind
	}
	n, err := op.delete(ctx, r.client, from, to)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether the (from, to) edge of the given kind is present.
func (r *Registry) Exists(ctx context.Context, kind Kind, from, to int) (bool, error) {
	op, ok := ops[kind]
	if !ok {
		return false, ErrUnknownKind
	}
	return op.exists(ctx, r.client, from, to)
}
