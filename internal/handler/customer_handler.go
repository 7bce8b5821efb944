package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	created, err := h.service.Create(&customer)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, created, "customer created")
}

func (h *CustomerHandler) GetAll(c *fiber.Ctx) error {
	p := pagination(c)
	customers, total, err := h.service.GetAll(p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(customers, p, total))
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	customer, err := h.service.GetByID(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	updated, err := h.service.Update(id, &customer)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, updated, "customer updated")
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, nil, "customer deleted")
}
