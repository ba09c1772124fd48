package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/furnishly/backend/config"
	httpDelivery "github.com/furnishly/backend/internal/delivery/http"
	"github.com/furnishly/backend/internal/infrastructure/cache"
	"github.com/furnishly/backend/internal/infrastructure/postgres"
	"github.com/furnishly/backend/internal/matching"
	"github.com/furnishly/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Furnishly Query Parser v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Infrastructure: TTL cache and catalog repository
	memoryCache := cache.NewMemory()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catalog := postgres.NewCatalog(connectCtx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Name:         cfg.Database.Name,
		BrandTable:   cfg.Database.BrandTable,
		ProductTable: cfg.Database.ProductTable,
		PoolMinConns: cfg.Database.PoolMinConns,
		PoolMaxConns: cfg.Database.PoolMaxConns,
	}, memoryCache, cfg.Cache.TTL)
	cancel()
	defer catalog.Close()

	// The lexicon is built once and shared read-only by every request
	lexicon := matching.NewLexicon()
	log.Printf("Lexicon loaded: %d canonical features", lexicon.Size())

	debug := cfg.Matching.EnableDebugLogging
	extractor := matching.NewFeatureExtractor(lexicon, matching.Config{
		FuzzyThreshold:       cfg.Matching.FuzzyThreshold,
		StrictFuzzyThreshold: cfg.Matching.StrictFuzzyThreshold,
		MinFuzzyPhraseLen:    cfg.Matching.MinFuzzyPhraseLen,
		EnableDebugLogging:   debug,
	})

	log.Printf("Matching: fuzzy=%.2f strict=%.2f min_len=%d debug=%v",
		cfg.Matching.FuzzyThreshold,
		cfg.Matching.StrictFuzzyThreshold,
		cfg.Matching.MinFuzzyPhraseLen,
		debug)

	// Usecase layer
	parserService := usecase.NewParserService(
		usecase.NewProductTypeService(debug),
		extractor,
		usecase.NewClassificationService(),
		usecase.NewPriceService(),
		debug,
	)
	suggestionService := usecase.NewSuggestionService(catalog, debug)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(parserService, suggestionService)

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
