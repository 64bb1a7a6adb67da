package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"medicab-server/internal/auth"
	"medicab-server/internal/bootstrap"
	"medicab-server/internal/config"
	"medicab-server/internal/routes"
	"medicab-server/internal/storage"
)

func main() {
	seedOnly := flag.Bool("seed", false, "seed the demo data into the configured storage and exit")
	resetOnly := flag.Bool("reset", false, "delete every application key from the configured storage and exit")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage backend
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	backend, err := storage.Open(ctx, cfg.Storage)
	cancel()
	if err != nil {
		log.Fatalf("Error opening %s storage: %v", cfg.Storage.Backend, err)
	}
	defer backend.Close()

	store := storage.New(backend, storage.OptionsFrom(cfg.Storage))

	switch {
	case *resetOnly:
		if !bootstrap.Reset(context.Background(), store) {
			log.Fatal("Reset did not remove every key")
		}
		log.Println("All application keys removed.")
		return
	case *seedOnly:
		bootstrap.InitializeDemoData(context.Background(), store)
		return
	}

	if cfg.Storage.Backend == config.BackendRemote {
		log.Fatal("The remote backend cannot be served; choose memory, mysql, redis or mongo")
	}

	if cfg.SeedDemoData {
		bootstrap.InitializeDemoData(context.Background(), store)
	}

	router := routes.NewRouter(backend, auth.NewService(store), cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server running on port %s with %s storage", cfg.Port, cfg.Storage.Backend)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
