package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

// Envelope is the uniform success wrapper on every API response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Message          string `json:"message"`
	Code             string `json:"code"`
	TechnicalDetails string `json:"technicalDetails,omitempty"`
	Timestamp        string `json:"timestamp"`
	RequestID        string `json:"requestId,omitempty"`
}

// Paginated wraps a page of items with its pagination metadata.
type Paginated struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
}

func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

func OKMessage(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(Envelope{Success: true, Data: data, Message: message})
}

func Created(c *fiber.Ctx, data interface{}, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data, Message: message})
}

// Error renders err in the uniform error envelope, normalizing unknown
// errors to INTERNAL_ERROR.
func Error(c *fiber.Ctx, err error) error {
	ae := apperror.From(err)
	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return c.Status(ae.Status).JSON(Envelope{
		Success: false,
		Error: &ErrorBody{
			Message:          ae.Message,
			Code:             ae.Code,
			TechnicalDetails: ae.Details,
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			RequestID:        rid,
		},
	})
}
