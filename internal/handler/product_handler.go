package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	created, err := h.service.Create(&product)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, created, "product created")
}

func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	p := pagination(c)
	products, total, err := h.service.GetAll(p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(products, p, total))
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

// Search handles GET /products/search?q=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	p := pagination(c)
	products, total, err := h.service.Search(c.Query("q"), p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(products, p, total))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	updated, err := h.service.Update(id, &product)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, updated, "product updated")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, nil, "product deleted")
}
