// main.go
//
// Standalone health probe. Builds and seeds a store the same way the
// server does, runs the health check, prints the result and exits
// non-zero when unhealthy. Suitable as a container HEALTHCHECK command.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/services"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Create and seed the in-memory store
	memStore := store.NewMemStore()
	if err := store.Seed(memStore); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	// Perform health check
	result := services.HealthCheck(cfg, memStore)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
