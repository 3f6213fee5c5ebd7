// Package recipes implements the recipe composition engine: atomic
// create/replace of a recipe's ingredient lines, shopping-list aggregation,
// per-page flag annotation and short-link codes.
package recipes

import (
	"context"

	"foodgram-api/ent"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
)

// Line is one (ingredient, amount) entry of a recipe's composition.
type Line struct {
	IngredientID int
	Amount       int
}

// CreateParams carries everything needed to publish a recipe. The image is
// an opaque stored reference produced by the calling layer.
type CreateParams struct {
	AuthorID    int
	Name        string
	Image       string
	Text        string
	CookingTime int
	Lines       []Line
}

// UpdateParams is the full replacement payload for an update. Lines always
// replace the existing set; there is no partial patch.
type UpdateParams struct {
	Name        string
	Image       string // empty keeps the current image
	Text        string
	CookingTime int
	Lines       []Line
}

// Store owns recipes and their line items.
type Store struct {
	client *ent.Client
	links  *ShortLinks
}

// NewStore returns a store over the given ent client.
func NewStore(client *ent.Client, links *ShortLinks) *Store {
	return &Store{client: client, links: links}
}

// validateLines checks the composition before anything is written: at least
// one line, no duplicate ingredient, each amount within bounds.
func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyIngredients
	}
	seen := make(map[int]struct{}, len(lines))
	for _, ln := range lines {
		if _, dup := seen[ln.IngredientID]; dup {
			return ErrDuplicateIngredient
		}
		seen[ln.IngredientID] = struct{}{}
		if ln.Amount < MinAmount || ln.Amount > MaxAmount {
			return ErrAmountOutOfRange
		}
	}
	return nil
}

func validateCookingTime(minutes int) error {
	if minutes < MinCookingTime || minutes > MaxCookingTime {
		return ErrTimeOutOfRange
	}
	return nil
}

// Create persists the recipe row and all line items as one atomic unit. A
// failure on any line leaves nothing visible.
func (s *Store) Create(ctx context.Context, p CreateParams) (*ent.Recipe, error) {
	if err := validateCookingTime(p.CookingTime); err != nil {
		return nil, err
	}
	if err := validateLines(p.Lines); err != nil {
		return nil, err
	}
	code, err := s.links.NewCode(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := tx.Recipe.Create().
		SetAuthorID(p.AuthorID).
		SetName(p.Name).
		SetImage(p.Image).
		SetText(p.Text).
		SetCookingTime(p.CookingTime).
		SetShortLink(code).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := insertLines(ctx, tx, rec.ID, p.Lines); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update replaces the recipe's fields and its entire line-item set in one
// transaction. Only the author may update.
func (s *Store) Update(ctx context.Context, recipeID, actorID int, p UpdateParams) (*ent.Recipe, error) {
	if err := validateCookingTime(p.CookingTime); err != nil {
		return nil, err
	}
	if err := validateLines(p.Lines); err != nil {
		return nil, err
	}
	cur, err := s.client.Recipe.Get(ctx, recipeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cur.AuthorID != actorID {
		return nil, ErrNotOwner
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	upd := tx.Recipe.UpdateOneID(recipeID).
		SetName(p.Name).
		SetText(p.Text).
		SetCookingTime(p.CookingTime)
	if p.Image != "" {
		upd = upd.SetImage(p.Image)
	}
	rec, err := upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	if err := replaceLines(ctx, tx, recipeID, p.Lines); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ReplaceLines swaps the recipe's full line-item set atomically without
// touching the recipe row. Submitting fewer ingredients than currently
// exist removes the rest.
func (s *Store) ReplaceLines(ctx context.Context, recipeID int, lines []Line) error {
	if err := validateLines(lines); err != nil {
		return err
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if err := replaceLines(ctx, tx, recipeID, lines); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the recipe. Line items and favorite/cart edges go with it
// through the schema's cascading foreign keys, in the same atomic unit.
func (s *Store) Delete(ctx context.Context, recipeID, actorID int) error {
	cur, err := s.client.Recipe.Get(ctx, recipeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	if cur.AuthorID != actorID {
		return ErrNotOwner
	}
	if err := s.client.Recipe.DeleteOneID(recipeID).Exec(ctx); err != nil {
		return err
	}
	s.links.Forget(cur.ShortLink)
	return nil
}

// Lines returns the recipe's current line items with their ingredients.
func (s *Store) Lines(ctx context.Context, recipeID int) ([]*ent.RecipeIngredient, error) {
	return s.client.RecipeIngredient.Query().
		Where(recipeingredient.RecipeID(recipeID)).
		WithIngredient().
		All(ctx)
}

// ByShortLink returns the recipe carrying the given code.
func (s *Store) ByShortLink(ctx context.Context, code string) (*ent.Recipe, error) {
	rec, err := s.client.Recipe.Query().Where(recipe.ShortLink(code)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func replaceLines(ctx context.Context, tx *ent.Tx, recipeID int, lines []Line) error {
	if _, err := tx.RecipeIngredient.Delete().
		Where(recipeingredient.RecipeID(recipeID)).
		Exec(ctx); err != nil {
		return err
	}
	return insertLines(ctx, tx, recipeID, lines)
}

func insertLines(ctx context.Context, tx *ent.Tx, recipeID int, lines []Line) error {
	builders := make([]*ent.RecipeIngredientCreate, len(lines))
	for i, ln := range lines {
		builders[i] = tx.RecipeIngredient.Create().
			SetRecipeID(recipeID).
			SetIngredientID(ln.IngredientID).
			SetAmount(ln.Amount)
	}
	_, err := tx.RecipeIngredient.CreateBulk(builders...).Save(ctx)
	return err
}
