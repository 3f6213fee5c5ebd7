// Package ingredients serves the read-only ingredient catalog.
package ingredients

import (
	"context"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"foodgram-api/ent"
	"foodgram-api/ent/ingredient"
	"foodgram-api/ent/predicate"
	"foodgram-api/internal/httpx/kit"
)

// IngredientView is the public representation of a catalog entry.
// swagger:model IngredientView
type IngredientView struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func toView(i *ent.Ingredient) IngredientView {
	return IngredientView{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

// ListHandler returns ingredients, optionally filtered by a name prefix.
//
//	@Summary      List ingredients
//	@Tags         ingredients
//	@Produce      json
//	@Param        name  query  string  false  "name prefix filter"
//	@Success      200  {array}  ingredients.IngredientView
//	@Router       /api/v1/ingredients [get]
func ListHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		q := client.Ingredient.Query().Order(ent.Asc(ingredient.FieldName))
		if name := c.Query("name", ""); name != "" {
			// Prefix match, case-insensitive.
			pattern := strings.ToLower(name) + "%"
			q = q.Where(predicate.Ingredient(func(s *entsql.Selector) {
				s.Where(entsql.Like(entsql.Lower(s.C(ingredient.FieldName)), pattern))
			}))
		}
		list, err := q.All(ctx)
		if err != nil {
			return kit.InternalError("list ingredients failed", err.Error())
		}
		return kit.OK(c, lo.Map(list, func(i *ent.Ingredient, _ int) IngredientView { return toView(i) }))
	}
}

// GetHandler returns one ingredient by id.
//
//	@Summary      Get ingredient
//	@Tags         ingredients
//	@Produce      json
//	@Param        id  path  int  true  "ingredient id"
//	@Success      200  {object}  ingredients.IngredientView
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/ingredients/{id} [get]
func GetHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid ingredient id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		i, err := client.Ingredient.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return kit.NotFound("ingredient not found")
			}
			return kit.InternalError("get ingredient failed", err.Error())
		}
		return kit.OK(c, toView(i))
	}
}
