package services_test

import (
	"testing"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

// TestHealthCheckSeeded tests the healthy result for a seeded store
func TestHealthCheckSeeded(t *testing.T) {
	s := store.NewMemStore()
	if err := store.Seed(s); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	result := services.HealthCheck(&config.Config{}, s)
	if result.Status != "healthy" {
		t.Errorf("Expected healthy, got %q", result.Status)
	}
	if result.Store != "ok" {
		t.Errorf("Expected store ok, got %q", result.Store)
	}
	if result.Records["knowledgeArticles"] != 50 {
		t.Errorf("Expected 50 knowledge articles, got %d", result.Records["knowledgeArticles"])
	}
	// No webhook configured, so no webhook field
	if result.Webhook != "" {
		t.Errorf("Expected empty webhook status, got %q", result.Webhook)
	}
}

// TestHealthCheckUnseeded tests the unhealthy result for an empty store
func TestHealthCheckUnseeded(t *testing.T) {
	result := services.HealthCheck(&config.Config{}, store.NewMemStore())
	if result.Status != "unhealthy" {
		t.Errorf("Expected unhealthy, got %q", result.Status)
	}
	if result.Store != "unseeded" {
		t.Errorf("Expected unseeded store status, got %q", result.Store)
	}
	if result.ErrorMessage == "" {
		t.Error("Expected an error message")
	}
}
