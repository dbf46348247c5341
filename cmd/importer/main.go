package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cozinhapro/backoffice/internal/config"
	"github.com/cozinhapro/backoffice/internal/ingest"
	"github.com/cozinhapro/backoffice/internal/repository/postgres"
	"github.com/cozinhapro/backoffice/internal/storage"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize object storage
	objectStorage, err := storage.NewMinioClient(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize Database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Repositories and Services
	inventoryRepo := postgres.NewInventoryRepository(db.DB)
	ingestService := ingest.NewService(objectStorage, inventoryRepo, cfg.App.ImportPrefix)

	// Create router and register routes
	r := mux.NewRouter()
	ingestHandler := ingest.NewHandler(ingestService)
	ingestHandler.RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Importer starting on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
