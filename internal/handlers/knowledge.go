// knowledge.go
//
// Knowledge base article routes. The only fully mutable resource.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/utils"
)

// KnowledgeHandler handles knowledge base routes
type KnowledgeHandler struct {
	Store store.Store
}

// ListArticles handles GET /api/knowledge
// @Summary List knowledge articles
// @Tags Knowledge
// @Produce json
// @Success 200 {array} models.KnowledgeArticle
// @Router /knowledge [get]
func (h *KnowledgeHandler) ListArticles(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.KnowledgeArticles())
}

// GetArticle handles GET /api/knowledge/:id
// @Summary Get one knowledge article
// @Tags Knowledge
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} models.KnowledgeArticle
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /knowledge/{id} [get]
func (h *KnowledgeHandler) GetArticle(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Article not found")
	}
	article, found := h.Store.KnowledgeArticle(id)
	if !found {
		return utils.NotFoundResponse(c, "Article not found")
	}
	return c.Status(fiber.StatusOK).JSON(article)
}

// CreateArticle handles POST /api/knowledge
// @Summary Create a knowledge article
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param article body models.KnowledgeArticleInput true "Article"
// @Success 200 {object} models.KnowledgeArticle
// @Failure 400 {object} utils.ValidationErrorResponseStruct
// @Router /knowledge [post]
func (h *KnowledgeHandler) CreateArticle(c *fiber.Ctx) error {
	var in models.KnowledgeArticleInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid article data", []models.FieldError{
			{Field: "body", Message: err.Error()},
		})
	}
	if errs := in.Validate(); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, "Invalid article data", errs)
	}

	article := h.Store.CreateKnowledgeArticle(in.Article())
	return c.Status(fiber.StatusOK).JSON(article)
}

// UpdateArticle handles PUT /api/knowledge/:id
// @Summary Update a knowledge article
// @Description Shallow partial update: absent fields keep their value
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param id path int true "Article id"
// @Param article body models.KnowledgeArticleUpdate true "Fields to update"
// @Success 200 {object} models.KnowledgeArticle
// @Failure 400 {object} utils.ValidationErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /knowledge/{id} [put]
func (h *KnowledgeHandler) UpdateArticle(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Article not found")
	}

	var upd models.KnowledgeArticleUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid article data", []models.FieldError{
			{Field: "body", Message: err.Error()},
		})
	}

	article, found := h.Store.UpdateKnowledgeArticle(id, upd)
	if !found {
		return utils.NotFoundResponse(c, "Article not found")
	}
	return c.Status(fiber.StatusOK).JSON(article)
}

// DeleteArticle handles DELETE /api/knowledge/:id
// @Summary Delete a knowledge article
// @Tags Knowledge
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /knowledge/{id} [delete]
func (h *KnowledgeHandler) DeleteArticle(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Article not found")
	}
	if !h.Store.DeleteKnowledgeArticle(id) {
		return utils.NotFoundResponse(c, "Article not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article deleted successfully",
	})
}
