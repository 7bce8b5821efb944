package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/middleware"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// Adjust handles POST /inventory/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var req service.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	entry, err := h.service.Adjust(&req, middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, entry, "stock adjusted")
}

// GetLogs handles GET /inventory/logs
func (h *InventoryHandler) GetLogs(c *fiber.Ctx) error {
	p := pagination(c)
	logs, total, err := h.service.GetLogs(p)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, paginated(logs, p, total))
}

// GetLog handles GET /inventory/logs/:id
func (h *InventoryHandler) GetLog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	entry, err := h.service.GetLog(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, entry)
}
