package config

import (
	"os"
	"strconv"
	"time"

	perrors "minhsangitdev/beerpriceworker/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string
	DedupeTTL    time.Duration

	// Worker configuration
	CrawlInterval time.Duration

	// Feed files dropped by the collaborator crawlers
	FeedDir          string
	BHXFeedFile      string
	BHXEnabled       bool
	MegaFeedFile     string
	MegaEnabled      bool
	LotteFeedFile    string
	LotteEnabled     bool
	KingfoodFeedFile string
	KingfoodEnabled  bool
	CoopFeedFile     string
	CoopEnabled      bool

	// CSV export
	OutputDir string

	// Optional YAML file extending the built-in brand vocabulary
	BrandVocabPath string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	crawlInterval, _ := strconv.Atoi(getEnv("CRAWL_INTERVAL_SECONDS", "300"))
	dedupeTTL, _ := strconv.Atoi(getEnv("DEDUPE_TTL_SECONDS", "86400"))

	return Config{
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "beerprices"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLength,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		DedupeTTL:            time.Duration(dedupeTTL) * time.Second,
		CrawlInterval:        time.Duration(crawlInterval) * time.Second,
		FeedDir:              getEnv("FEED_DIR", "./feeds"),
		BHXFeedFile:          getEnv("BHX_FEED_FILE", "bachhoaxanh.jsonl"),
		BHXEnabled:           getEnvBool("BHX_ENABLED", true),
		MegaFeedFile:         getEnv("MEGA_FEED_FILE", "megamarket.jsonl"),
		MegaEnabled:          getEnvBool("MEGA_ENABLED", true),
		LotteFeedFile:        getEnv("LOTTE_FEED_FILE", "lottemart.jsonl"),
		LotteEnabled:         getEnvBool("LOTTE_ENABLED", true),
		KingfoodFeedFile:     getEnv("KINGFOOD_FEED_FILE", "kingfoodmart.jsonl"),
		KingfoodEnabled:      getEnvBool("KINGFOOD_ENABLED", true),
		CoopFeedFile:         getEnv("COOP_FEED_FILE", "cooponline.jsonl"),
		CoopEnabled:          getEnvBool("COOP_ENABLED", true),
		OutputDir:            getEnv("OUTPUT_DIR", "./output"),
		BrandVocabPath:       getEnv("BRAND_VOCAB_PATH", ""),
		Environment:          getEnv("BEERWORKER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the worker cannot run with
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return perrors.NewConfiguration("redis address is required", nil)
	}
	if c.MemcacheAddr == "" {
		return perrors.NewConfiguration("memcache address is required", nil)
	}
	if c.FeedDir == "" {
		return perrors.NewConfiguration("feed directory is required", nil)
	}
	if c.OutputDir == "" {
		return perrors.NewConfiguration("output directory is required", nil)
	}
	if c.CrawlInterval <= 0 {
		return perrors.NewConfiguration("crawl interval must be positive", nil)
	}
	if c.RedisStreamCount < 1 {
		return perrors.NewConfiguration("redis stream count must be at least 1", nil)
	}
	if c.RedisStreamMaxLength < 1 {
		return perrors.NewConfiguration("redis stream max length must be at least 1", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
