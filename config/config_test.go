package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "localhost:6379", config.RedisAddr)
	assert.Equal(t, 0, config.RedisDB)
	assert.Equal(t, "beerprices", config.RedisStream)
	assert.Equal(t, 1, config.RedisStreamCount)
	assert.Equal(t, "localhost:11211", config.MemcacheAddr)
	assert.Equal(t, 300*time.Second, config.CrawlInterval)
	assert.Equal(t, 24*time.Hour, config.DedupeTTL)
	assert.Equal(t, "./feeds", config.FeedDir)
	assert.Equal(t, "bachhoaxanh.jsonl", config.BHXFeedFile)
	assert.True(t, config.CoopEnabled)

	// Test with environment variables
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")
	os.Setenv("REDIS_DB", "1")
	os.Setenv("REDIS_STREAM_COUNT", "4")
	os.Setenv("MEMCACHE_ADDR", "memcache.example.com:11211")
	os.Setenv("CRAWL_INTERVAL_SECONDS", "30")
	os.Setenv("FEED_DIR", "/var/feeds")
	os.Setenv("MEGA_ENABLED", "false")

	config = LoadConfig()
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)
	assert.Equal(t, 1, config.RedisDB)
	assert.Equal(t, 4, config.RedisStreamCount)
	assert.Equal(t, "memcache.example.com:11211", config.MemcacheAddr)
	assert.Equal(t, 30*time.Second, config.CrawlInterval)
	assert.Equal(t, "/var/feeds", config.FeedDir)
	assert.False(t, config.MegaEnabled)

	// Clean up
	os.Unsetenv("REDIS_ADDR")
	os.Unsetenv("REDIS_DB")
	os.Unsetenv("REDIS_STREAM_COUNT")
	os.Unsetenv("MEMCACHE_ADDR")
	os.Unsetenv("CRAWL_INTERVAL_SECONDS")
	os.Unsetenv("FEED_DIR")
	os.Unsetenv("MEGA_ENABLED")
}

func TestValidate(t *testing.T) {
	config := LoadConfig()
	assert.NoError(t, config.Validate())

	broken := config
	broken.RedisAddr = ""
	assert.Error(t, broken.Validate())

	broken = config
	broken.CrawlInterval = 0
	assert.Error(t, broken.Validate())

	broken = config
	broken.RedisStreamCount = 0
	assert.Error(t, broken.Validate())

	broken = config
	broken.OutputDir = ""
	assert.Error(t, broken.Validate())
}
