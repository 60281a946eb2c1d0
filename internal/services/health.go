package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/utils"
)

const pingTimeout = 1500 * time.Millisecond

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string         `json:"status"`
	Store        string         `json:"store"`
	Webhook      string         `json:"webhook,omitempty"`
	Records      map[string]int `json:"records"`
	ErrorMessage string         `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, s store.Store) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Store:   "ok",
		Records: s.Counts(),
	}

	// An empty knowledge base means seeding never ran.
	if result.Records["knowledgeArticles"] == 0 {
		result.Status = "unhealthy"
		result.Store = "unseeded"
		result.ErrorMessage = "knowledge base is empty"
		log.Println("Health check failed - store not seeded")
	}

	// Check the feedback webhook endpoint when one is configured.
	if cfg.FeedbackWebhookURL != "" {
		if err := utils.PingService(cfg.FeedbackWebhookURL, pingTimeout); err != nil {
			result.Webhook = "unreachable"
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Webhook ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; Webhook ping failed: %v", err)
			}
			log.Printf("Health check warning - webhook ping: %v", err)
		} else {
			result.Webhook = "ok"
		}
	}

	return result
}
