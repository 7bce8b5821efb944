package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	result, err := h.service.Login(&req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, result, "login successful")
}
