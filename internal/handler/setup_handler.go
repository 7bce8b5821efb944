package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type SetupHandler struct {
	service service.SetupService
}

func NewSetupHandler(s service.SetupService) *SetupHandler {
	return &SetupHandler{service: s}
}

// Status handles GET /setup/status
func (h *SetupHandler) Status(c *fiber.Ctx) error {
	status, err := h.service.Status()
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, status)
}

// Initialize handles POST /setup
func (h *SetupHandler) Initialize(c *fiber.Ctx) error {
	var req service.SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	admin, err := h.service.Initialize(&req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, admin, "setup completed")
}
