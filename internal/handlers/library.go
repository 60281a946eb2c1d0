// library.go
//
// Read-only legal reference routes: templates, case law, state law guides.

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/utils"
)

// LibraryHandler handles the seeded reference catalog routes
type LibraryHandler struct {
	Store store.Store
}

// ListTemplates handles GET /api/templates
// @Summary List legal templates
// @Tags Library
// @Produce json
// @Param category query string false "Filter by exact category"
// @Success 200 {array} models.LegalTemplate
// @Router /templates [get]
func (h *LibraryHandler) ListTemplates(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.Status(fiber.StatusOK).JSON(h.Store.LegalTemplatesByCategory(category))
	}
	return c.Status(fiber.StatusOK).JSON(h.Store.LegalTemplates())
}

// GetTemplate handles GET /api/templates/:id
// @Summary Get one legal template
// @Tags Library
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} models.LegalTemplate
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /templates/{id} [get]
func (h *LibraryHandler) GetTemplate(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Template not found")
	}
	template, found := h.Store.LegalTemplate(id)
	if !found {
		return utils.NotFoundResponse(c, "Template not found")
	}
	return c.Status(fiber.StatusOK).JSON(template)
}

// ListCases handles GET /api/cases
// @Summary List case law
// @Description search takes precedence over category; filters never combine
// @Tags Library
// @Produce json
// @Param search query string false "Case-insensitive substring search"
// @Param category query string false "Filter by exact category"
// @Success 200 {array} models.CaseLaw
// @Router /cases [get]
func (h *LibraryHandler) ListCases(c *fiber.Ctx) error {
	if search := c.Query("search"); search != "" {
		return c.Status(fiber.StatusOK).JSON(h.Store.SearchCaseLaw(search))
	}
	if category := c.Query("category"); category != "" {
		return c.Status(fiber.StatusOK).JSON(h.Store.CaseLawByCategory(category))
	}
	return c.Status(fiber.StatusOK).JSON(h.Store.CaseLaw())
}

// ListGuides handles GET /api/guides
// @Summary List state law guides
// @Description state takes precedence over category; filters never combine
// @Tags Library
// @Produce json
// @Param state query string false "Filter by exact state"
// @Param category query string false "Filter by exact category"
// @Success 200 {array} models.StateLawGuide
// @Router /guides [get]
func (h *LibraryHandler) ListGuides(c *fiber.Ctx) error {
	if state := c.Query("state"); state != "" {
		return c.Status(fiber.StatusOK).JSON(h.Store.StateLawGuidesByState(state))
	}
	if category := c.Query("category"); category != "" {
		return c.Status(fiber.StatusOK).JSON(h.Store.StateLawGuidesByCategory(category))
	}
	return c.Status(fiber.StatusOK).JSON(h.Store.StateLawGuides())
}
