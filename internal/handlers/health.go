package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

// HealthHandler handles the health endpoint
type HealthHandler struct {
	Config *config.Config
	Store  store.Store
}

// Health handles GET /api/health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.Store)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
