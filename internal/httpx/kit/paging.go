package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains page-number pagination parameters from HTTP request
type PagingParams struct {
	Page  int
	Limit int
}

// ParsePaging reads page and limit query params with sane bounds.
func ParsePaging(c *fiber.Ctx) (PagingParams, error) {
	p := PagingParams{
		Page:  c.QueryInt("page", 1),
		Limit: lo.Clamp(c.QueryInt("limit", 6), 1, 100),
	}
	if p.Page < 1 {
		return p, BadRequest("invalid page", p.Page)
	}
	return p, nil
}

// Offset converts page/limit to a query offset.
func (p PagingParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta builds the response metadata for a page of count items out of total.
func (p PagingParams) Meta(count, total int) PageMeta {
	meta := PageMeta{Limit: p.Limit, Page: p.Page, Count: count, Total: lo.ToPtr(total)}
	if p.Offset()+count < total {
		meta.HasMore = true
		meta.NextPage = lo.ToPtr(p.Page + 1)
	}
	return meta
}
