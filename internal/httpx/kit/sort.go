package kit

import (
	"strings"

	"foodgram-api/ent"
	"foodgram-api/ent/recipe"

	"github.com/samber/lo"
)

type recipeSortApplier struct {
	Asc  func(*ent.RecipeQuery) *ent.RecipeQuery
	Desc func(*ent.RecipeQuery) *ent.RecipeQuery
}

// RecipeSortWhitelist defines allowed sort fields and their query modifiers for recipes
var RecipeSortWhitelist = map[string]recipeSortApplier{
	"pub_date":     {Asc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Asc(recipe.FieldPubDate)) }, Desc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Desc(recipe.FieldPubDate)) }},
	"name":         {Asc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Asc(recipe.FieldName)) }, Desc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Desc(recipe.FieldName)) }},
	"cooking_time": {Asc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Asc(recipe.FieldCookingTime)) }, Desc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Desc(recipe.FieldCookingTime)) }},
	"id":           {Asc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Asc(recipe.FieldID)) }, Desc: func(q *ent.RecipeQuery) *ent.RecipeQuery { return q.Order(ent.Desc(recipe.FieldID)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyRecipeSort applies a validated sort spec to an ent RecipeQuery.
// An empty spec defaults to newest first.
func ApplyRecipeSort(q *ent.RecipeQuery, s string) (*ent.RecipeQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q.Order(ent.Desc(recipe.FieldPubDate), ent.Desc(recipe.FieldID)), nil
	}
	ap, ok := RecipeSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
