package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/middleware"
	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var transaction model.Transaction
	if err := c.BodyParser(&transaction); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	created, err := h.service.Create(&transaction, middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, created, "transaction recorded")
}

func (h *TransactionHandler) GetAll(c *fiber.Ctx) error {
	p := pagination(c)
	transactions, total, err := h.service.GetAll(p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(transactions, p, total))
}

func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	transaction, err := h.service.GetByID(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, transaction)
}

// Refund handles DELETE /transactions/:id. Sales are never removed; a
// delete reverses the sale and restores stock.
func (h *TransactionHandler) Refund(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	refunded, err := h.service.Refund(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, refunded, "transaction refunded")
}
