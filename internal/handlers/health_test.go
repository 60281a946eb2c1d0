package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/handlers"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

// TestHealthSeeded tests the healthy response for a seeded store
func TestHealthSeeded(t *testing.T) {
	s := store.NewMemStore()
	if err := store.Seed(s); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	app := fiber.New()
	handler := &handlers.HealthHandler{Config: &config.Config{}, Store: s}
	app.Get("/api/health", handler.Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["status"] != "healthy" || result["store"] != "ok" {
		t.Errorf("Expected healthy status, got %v", result)
	}
	records, ok := result["records"].(map[string]interface{})
	if !ok || records["knowledgeArticles"] != float64(50) {
		t.Errorf("Expected record counts in response, got %v", result["records"])
	}
}

// TestHealthUnseeded tests the 503 response for an empty store
func TestHealthUnseeded(t *testing.T) {
	app := fiber.New()
	handler := &handlers.HealthHandler{Config: &config.Config{}, Store: store.NewMemStore()}
	app.Get("/api/health", handler.Health)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Errorf("Expected status 503, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["status"] != "unhealthy" || result["store"] != "unseeded" {
		t.Errorf("Expected unhealthy status, got %v", result)
	}
}
