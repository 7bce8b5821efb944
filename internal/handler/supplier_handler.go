package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	created, err := h.service.Create(&supplier)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, created, "supplier created")
}

func (h *SupplierHandler) GetAll(c *fiber.Ctx) error {
	p := pagination(c)
	suppliers, total, err := h.service.GetAll(p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(suppliers, p, total))
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	supplier, err := h.service.GetByID(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	updated, err := h.service.Update(id, &supplier)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, updated, "supplier updated")
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, nil, "supplier deleted")
}
