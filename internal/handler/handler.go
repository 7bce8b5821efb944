package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

// pagination reads page/limit query params (1-indexed page).
func pagination(c *fiber.Ctx) repository.Pagination {
	p := repository.Pagination{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	p.Normalize()
	return p
}

func paginated(items interface{}, p repository.Pagination, total int64) response.Paginated {
	return response.Paginated{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: p.TotalPages(total),
	}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid id, expected a UUID")
	}
	return id, nil
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.Validation(name + " must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
