// main.go
//
// Serverless-style gateway entrypoint. Serves the reduced mock API under
// the function prefix with only the knowledge catalog seeded.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketlawyer/pocket-lawyer-api/internal/config"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/gateway"
	"github.com/pocketlawyer/pocket-lawyer-api/internal/store"
)

func main() {
	cfg := config.Load()

	memStore := store.NewMemStore()
	if err := store.SeedKnowledge(memStore); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	app := gateway.New(memStore)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting gateway on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start gateway: %v", err)
	}

	log.Println("Gateway stopped")
}
