// gateway.go
//
// Reduced mock API surface for static deployments, mounted under the
// function-gateway path prefix. Serves demo responses only; the full
// service lives in cmd/server.

package gateway

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

// Prefix is the path prefix the gateway serves under.
const Prefix = "/.netlify/functions/api"

// New builds the gateway app. s needs only the knowledge catalog seeded.
func New(s store.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	api := app.Group(Prefix)

	api.Post("/chat", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"response":  "I'm your AI legal assistant. This is a demo response. For full functionality, please connect to your backend service.",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.Get("/knowledge", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(s.KnowledgeArticles())
	})

	api.Post("/consultations", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"id":      time.Now().UnixMilli(),
			"status":  "booked",
			"message": "Consultation booked successfully. You will receive a confirmation email shortly.",
		})
	})

	api.Post("/feedback", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Feedback received successfully. Thank you for your input!",
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API endpoint not found",
		})
	})

	return app
}
