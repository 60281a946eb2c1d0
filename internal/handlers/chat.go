// chat.go
//
// Chat history and assistant reply routes.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/utils"
)

// ChatHandler handles chat message routes
type ChatHandler struct {
	Store     store.Store
	Responder *services.Responder
}

// ListMessages handles GET /api/chat/messages
// @Summary List chat messages
// @Description Get chat history, optionally filtered to one user
// @Tags Chat
// @Produce json
// @Param userId query int false "Filter by user id"
// @Success 200 {array} models.ChatMessage
// @Router /chat/messages [get]
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	userID := c.QueryInt("userId", 0)
	return c.Status(fiber.StatusOK).JSON(h.Store.ChatMessages(userID))
}

// CreateMessage handles POST /api/chat/messages
// @Summary Create a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body models.ChatMessageInput true "Message"
// @Success 200 {object} models.ChatMessage
// @Failure 400 {object} utils.ValidationErrorResponseStruct
// @Router /chat/messages [post]
func (h *ChatHandler) CreateMessage(c *fiber.Ctx) error {
	var in models.ChatMessageInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid message data", []models.FieldError{
			{Field: "body", Message: err.Error()},
		})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, "Invalid message data", errs)
	}

	msg := h.Store.CreateChatMessage(in.Message())
	return c.Status(fiber.StatusOK).JSON(msg)
}

// AIResponse handles POST /api/chat/ai-response
// @Summary Get an assistant reply
// @Description Produce a canned assistant reply for the given message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body handlers.AIRequest true "User message"
// @Success 200 {object} handlers.AIReply
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /chat/ai-response [post]
func (h *ChatHandler) AIResponse(c *fiber.Ctx) error {
	var req AIRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Message is required")
	}

	reply, err := h.Responder.Reply(c.Context(), req.Message)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process AI response")
	}

	return c.Status(fiber.StatusOK).JSON(AIReply{Response: reply})
}

// AIRequest is the body of POST /api/chat/ai-response.
type AIRequest struct {
	Message string `json:"message"`
}

// AIReply is the response of POST /api/chat/ai-response.
type AIReply struct {
	Response string `json:"response"`
}
