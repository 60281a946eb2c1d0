package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/handlers"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/models"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

// newKnowledgeApp wires the knowledge base routes
func newKnowledgeApp(s store.Store) *fiber.App {
	app := fiber.New()
	handler := &handlers.KnowledgeHandler{Store: s}
	app.Get("/api/knowledge", handler.ListArticles)
	app.Get("/api/knowledge/:id", handler.GetArticle)
	app.Post("/api/knowledge", handler.CreateArticle)
	app.Put("/api/knowledge/:id", handler.UpdateArticle)
	app.Delete("/api/knowledge/:id", handler.DeleteArticle)
	return app
}

// TestKnowledgeCRUD tests the full article lifecycle through the API
func TestKnowledgeCRUD(t *testing.T) {
	app := newKnowledgeApp(store.NewMemStore())

	// Create
	req := httptest.NewRequest("POST", "/api/knowledge", strings.NewReader(
		`{"title": "Bail Basics", "content": "Bail is...", "category": "Criminal Law", "tags": ["bail", "arrest"]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200 on create, got %d", resp.StatusCode)
	}
	var created map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created["id"] != float64(1) {
		t.Errorf("Expected id 1, got %v", created["id"])
	}
	if created["isPublished"] != true {
		t.Errorf("Expected isPublished to default true, got %v", created["isPublished"])
	}

	// Read back
	resp, err = app.Test(httptest.NewRequest("GET", "/api/knowledge/1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 on get, got %d", resp.StatusCode)
	}

	// Partial update: only the title
	req = httptest.NewRequest("PUT", "/api/knowledge/1", strings.NewReader(`{"title": "Bail Explained"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var updated map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if updated["title"] != "Bail Explained" {
		t.Errorf("Expected updated title, got %v", updated["title"])
	}
	if updated["category"] != "Criminal Law" {
		t.Errorf("Expected category preserved, got %v", updated["category"])
	}

	// Delete
	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/knowledge/1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 on delete, got %d", resp.StatusCode)
	}
	var deleted map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&deleted); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if deleted["message"] != "Article deleted successfully" {
		t.Errorf("Expected delete confirmation, got %v", deleted["message"])
	}

	// Gone now
	resp, err = app.Test(httptest.NewRequest("GET", "/api/knowledge/1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404 after delete, got %d", resp.StatusCode)
	}
}

// TestKnowledgeNotFound tests the 404 message for all id routes
func TestKnowledgeNotFound(t *testing.T) {
	app := newKnowledgeApp(store.NewMemStore())

	for _, tc := range []struct {
		method string
		target string
	}{
		{"GET", "/api/knowledge/99"},
		{"PUT", "/api/knowledge/99"},
		{"DELETE", "/api/knowledge/99"},
		{"GET", "/api/knowledge/abc"},
	} {
		r := httptest.NewRequest(tc.method, tc.target, strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(r)
		if err != nil {
			t.Fatalf("%s %s: failed to execute request: %v", tc.method, tc.target, err)
		}
		if resp.StatusCode != 404 {
			t.Errorf("%s %s: expected status 404, got %d", tc.method, tc.target, resp.StatusCode)
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("%s %s: failed to decode response: %v", tc.method, tc.target, err)
		}
		if result["message"] != "Article not found" {
			t.Errorf("%s %s: expected 'Article not found', got %v", tc.method, tc.target, result["message"])
		}
	}
}

// TestCreateArticleValidation tests the create 400 response
func TestCreateArticleValidation(t *testing.T) {
	app := newKnowledgeApp(store.NewMemStore())

	req := httptest.NewRequest("POST", "/api/knowledge", strings.NewReader(`{"title": "no body"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "Invalid article data" {
		t.Errorf("Expected 'Invalid article data', got %v", result["message"])
	}
}

// TestCreateArticleSingleTag tests that a bare string tag becomes a one-item list
func TestCreateArticleSingleTag(t *testing.T) {
	s := store.NewMemStore()
	app := newKnowledgeApp(s)

	req := httptest.NewRequest("POST", "/api/knowledge", strings.NewReader(
		`{"title": "t", "content": "c", "category": "x", "tags": "solo"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	article, ok := s.KnowledgeArticle(1)
	if !ok {
		t.Fatal("Expected article stored")
	}
	if len(article.Tags) != 1 || article.Tags[0] != "solo" {
		t.Errorf("Expected single-item tags, got %v", article.Tags)
	}
}

// TestListArticlesSeeded tests listing against the seeded catalog
func TestListArticlesSeeded(t *testing.T) {
	s := store.NewMemStore()
	if err := store.SeedKnowledge(s); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	app := newKnowledgeApp(s)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/knowledge", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var articles []models.KnowledgeArticle
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(articles) != 50 {
		t.Errorf("Expected 50 seeded articles, got %d", len(articles))
	}
}
