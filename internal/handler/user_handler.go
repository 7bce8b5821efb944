package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	user, err := h.service.Create(&req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user.ToResponse(), "user created")
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	p := pagination(c)
	users, total, err := h.service.GetAll(p)
	if err != nil {
		return response.Error(c, err)
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return response.OK(c, paginated(responses, p, total))
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.service.GetByID(id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user.ToResponse())
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, apperror.Validation("invalid JSON body"))
	}

	user, err := h.service.Update(id, &req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, user.ToResponse(), "user updated")
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return response.Error(c, err)
	}
	return response.OKMessage(c, nil, "user deleted")
}
