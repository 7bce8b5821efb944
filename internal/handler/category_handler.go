package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	created, err := h.service.Create(&category)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, created, "category created")
}

func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	p := pagination(c)
	categories, total, err := h.service.GetAll(p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(categories, p, total))
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	category, err := h.service.GetByID(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	updated, err := h.service.Update(id, &category)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, updated, "category updated")
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, nil, "category deleted")
}
