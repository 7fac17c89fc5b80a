package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"minhsangitdev/beerpriceworker/config"
	"minhsangitdev/beerpriceworker/internal/extract"
	"minhsangitdev/beerpriceworker/internal/feed"
	"minhsangitdev/beerpriceworker/logger"
	"minhsangitdev/beerpriceworker/services/cache"
	"minhsangitdev/beerpriceworker/services/exporter"
	"minhsangitdev/beerpriceworker/services/publisher"
	"minhsangitdev/beerpriceworker/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Extend the built-in brand vocabulary if a file is configured
	if cfg.BrandVocabPath != "" {
		added, err := extract.LoadBrandVocabulary(cfg.BrandVocabPath)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to load brand vocabulary file")
		} else {
			log.Info().
				Int("added", added).
				Str("path", cfg.BrandVocabPath).
				Msg("Brand vocabulary extended")
		}
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("crawl_interval", cfg.CrawlInterval).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, &cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	// Create feed sources
	sources := feed.CreateSources(&cfg)
	if len(sources) == 0 {
		log.Fatal().Msg("No feed sources were created")
	}

	log.Info().
		Int("source_count", len(sources)).
		Msg("Created feed sources")

	// Create and start worker
	w := worker.NewWorker(
		ctx,
		sources,
		services.Publisher,
		services.Cache,
		services.Exporter,
		cfg.CrawlInterval,
		cfg.DedupeTTL,
	)

	// Start worker in a goroutine
	workerDone := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting beer price worker")
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	case err := <-workerDone:
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Exporter  exporter.Exporter
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	// Initialize cache service for the dedupe window
	cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
	if cacheService == nil {
		return nil, fmt.Errorf("failed to create cache service")
	}
	services.Cache = cacheService

	logger.Infof("Connected to Memcache at %s", cfg.MemcacheAddr)

	// Initialize publisher
	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	if redisPublisher == nil {
		return nil, fmt.Errorf("failed to create redis publisher")
	}
	services.Publisher = redisPublisher

	logger.Infof("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	// Initialize CSV exporter
	services.Exporter = exporter.NewCSVExporter(cfg.OutputDir)

	return services, nil
}
