// feedback.go
//
// Feedback routes. Creation persists first, then notifies asynchronously;
// notification failure never changes the client response.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/notify"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/utils"
)

// FeedbackHandler handles feedback routes
type FeedbackHandler struct {
	Store    store.Store
	Notifier notify.Notifier
}

// CreateFeedback handles POST /api/feedback
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body models.FeedbackInput true "Feedback"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} utils.ValidationErrorResponseStruct
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var in models.FeedbackInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid feedback data", []models.FieldError{
			{Field: "body", Message: err.Error()},
		})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, "Invalid feedback data", errs)
	}

	feedback := h.Store.CreateFeedback(in.Feedback())

	if h.Notifier != nil {
		go h.Notifier.NotifyFeedback(feedback)
	}

	return c.Status(fiber.StatusOK).JSON(feedback)
}

// ListFeedback handles GET /api/feedback
// @Summary List feedback
// @Tags Feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.Feedback())
}
