package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hilinkr/backend/config"
	httpDelivery "github.com/hilinkr/backend/internal/delivery/http"
	"github.com/hilinkr/backend/internal/domain"
	"github.com/hilinkr/backend/internal/infrastructure/firecrawl"
	"github.com/hilinkr/backend/internal/infrastructure/page"
	"github.com/hilinkr/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Hilinkr Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Firecrawl is optional: without a key the pipeline runs on the
	// direct-fetch fallback alone.
	var scraper domain.ContentScraper
	if cfg.Firecrawl.APIKey != "" {
		scraper = firecrawl.NewClient(cfg.Firecrawl.APIKey, cfg.Firecrawl.BaseURL, cfg.Firecrawl.WaitFor, cfg.Firecrawl.Timeout)
		log.Printf("Firecrawl configured: %s (key: %s...)", cfg.Firecrawl.BaseURL, cfg.Firecrawl.APIKey[:min(8, len(cfg.Firecrawl.APIKey))])
	} else {
		log.Printf("Firecrawl not configured - using direct fetch only")
	}

	fetcher := page.NewFetcher(cfg.Fetcher.Timeout, cfg.Fetcher.UserAgent)

	// Initialize usecase layer
	scrapeService := usecase.NewScrapeService(scraper, fetcher)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scrapeService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
