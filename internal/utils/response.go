package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
)

// ErrorResponse sends an error body matching the public wire format:
// a bare message, nothing else.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse sends a 400 with the per-field validation errors.
func ValidationErrorResponse(c *fiber.Ctx, message string, errs []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"errors":  errs,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Message string `json:"message"`
}

// ValidationErrorResponseStruct defines the schema for 400 validation responses
type ValidationErrorResponseStruct struct {
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors"`
}
