package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/jwt"
	"github.com/gems2004/Stocky-sub001/pkg/response"
)

// RequireAuth validates the Bearer token and puts the authenticated identity
// in request locals. The user row is re-checked so deactivated accounts lose
// access immediately.
func RequireAuth(tokens *jwt.Manager, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, apperror.Unauthorized("missing authorization token"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return response.Error(c, apperror.Unauthorized("invalid authorization format, use: Bearer <token>"))
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return response.Error(c, apperror.Unauthorized("invalid or expired token"))
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return response.Error(c, apperror.Unauthorized("user not found"))
		}
		if !user.IsActive {
			return response.Error(c, apperror.Unauthorized("account is deactivated"))
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		c.Locals("role", user.Role)
		return c.Next()
	}
}

// RequireAdmin gates mutating routes to ADMIN users. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Error(c, apperror.Forbidden("no role found"))
		}
		if role != model.RoleAdmin {
			return response.Error(c, apperror.Forbidden("requires ADMIN role"))
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's id from locals, nil when absent.
func UserID(c *fiber.Ctx) *uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return &id
	}
	return nil
}
