package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/handlers"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/middleware"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/notify"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"

	_ "github.com/pocketlawyer/pocket-lawyer-api/docs/api" // Swagger docs
)

// @title Pocket Lawyer API
// @version 1.0.0
// @description Legal assistance data service: chat, knowledge base, document analysis, legal reference catalogs, feedback
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/pocketlawyer/pocket-lawyer-api

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg := config.Load()

	// Create and seed the in-memory store
	memStore := store.NewMemStore()
	if err := store.Seed(memStore); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("pocketlawyer")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	chatHandler := &handlers.ChatHandler{
		Store:     memStore,
		Responder: services.NewResponder(cfg.ChatDelayBase, cfg.ChatDelayJitter),
	}
	knowledgeHandler := &handlers.KnowledgeHandler{Store: memStore}
	documentHandler := &handlers.DocumentHandler{
		Store:    memStore,
		Analyzer: services.NewAnalyzer(cfg.AnalysisDelay),
	}
	libraryHandler := &handlers.LibraryHandler{Store: memStore}
	feedbackHandler := &handlers.FeedbackHandler{
		Store:    memStore,
		Notifier: notify.NewService(cfg),
	}
	healthHandler := &handlers.HealthHandler{Config: cfg, Store: memStore}

	// Chat routes
	api.Get("/chat/messages", chatHandler.ListMessages)
	api.Post("/chat/messages", chatHandler.CreateMessage)
	api.Post("/chat/ai-response", chatHandler.AIResponse)

	// Knowledge base routes
	api.Get("/knowledge", knowledgeHandler.ListArticles)
	api.Get("/knowledge/:id", knowledgeHandler.GetArticle)
	api.Post("/knowledge", knowledgeHandler.CreateArticle)
	api.Put("/knowledge/:id", knowledgeHandler.UpdateArticle)
	api.Delete("/knowledge/:id", knowledgeHandler.DeleteArticle)

	// Document analysis routes
	api.Get("/documents", documentHandler.ListAnalyses)
	api.Post("/documents/analyze", documentHandler.Analyze)

	// Legal reference routes
	api.Get("/templates", libraryHandler.ListTemplates)
	api.Get("/templates/:id", libraryHandler.GetTemplate)
	api.Get("/cases", libraryHandler.ListCases)
	api.Get("/guides", libraryHandler.ListGuides)

	// Feedback routes
	api.Post("/feedback", feedbackHandler.CreateFeedback)
	api.Get("/feedback", feedbackHandler.ListFeedback)

	// Health route
	api.Get("/health", healthHandler.Health)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
