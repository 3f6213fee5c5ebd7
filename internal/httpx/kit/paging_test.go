package kit

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParsePaging(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	var got PagingParams
	app.Get("/x", func(c *fiber.Ctx) error {
		p, err := ParsePaging(c)
		if err != nil {
			return err
		}
		got = p
		return OK(c, nil)
	})

	req := httptest.NewRequest("GET", "/x?page=3&limit=10", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if got.Page != 3 || got.Limit != 10 {
		t.Fatalf("parsed %+v", got)
	}
	if got.Offset() != 20 {
		t.Fatalf("offset %d", got.Offset())
	}

	req = httptest.NewRequest("GET", "/x?page=0", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 for page=0, got %d", resp.StatusCode)
	}
}

func TestPagingMeta(t *testing.T) {
	p := PagingParams{Page: 2, Limit: 5}
	meta := p.Meta(5, 12)
	if !meta.HasMore || meta.NextPage == nil || *meta.NextPage != 3 {
		t.Fatalf("meta %+v", meta)
	}
	last := PagingParams{Page: 3, Limit: 5}
	meta = last.Meta(2, 12)
	if meta.HasMore || meta.NextPage != nil {
		t.Fatalf("last page meta %+v", meta)
	}
}
