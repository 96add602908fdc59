// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, scraping, and AI

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains persistence configuration
	Storage StorageConfig

	// Scrape contains scraping configuration
	Scrape ScrapeConfig

	// AI contains summary generation configuration
	AI AIConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	// SQLitePath is the path to the saved items database file
	SQLitePath string
}

// ScrapeConfig holds scraping configuration
type ScrapeConfig struct {
	// Timeout is the per-request scrape timeout in seconds
	Timeout int

	// SearchAPIURL is the endpoint of the external web search API
	SearchAPIURL string

	// SearchAPIKey authenticates against the web search API
	SearchAPIKey string

	// MaxMapResults caps the number of URLs returned by site mapping
	MaxMapResults int
}

// AIConfig holds summary generation configuration
type AIConfig struct {
	// Provider selects the generation backend (openai/anthropic)
	Provider string

	// Model is the model identifier to request
	Model string

	// APIKey authenticates against the provider
	APIKey string

	// BaseURL overrides the provider endpoint (e.g. an OpenRouter URL)
	BaseURL string

	// MaxTokens bounds the generated summary length
	MaxTokens int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "stash.db"),
		},
		Scrape: ScrapeConfig{
			Timeout:       getEnvAsIntOrDefault("SCRAPE_TIMEOUT", 30),
			SearchAPIURL:  getEnvOrDefault("SEARCH_API_URL", ""),
			SearchAPIKey:  getEnvOrDefault("SEARCH_API_KEY", ""),
			MaxMapResults: getEnvAsIntOrDefault("MAP_MAX_RESULTS", 100),
		},
		AI: AIConfig{
			Provider:  getEnvOrDefault("AI_PROVIDER", "openai"),
			Model:     getEnvOrDefault("AI_MODEL", ""),
			APIKey:    getEnvOrDefault("AI_API_KEY", ""),
			BaseURL:   getEnvOrDefault("AI_BASE_URL", ""),
			MaxTokens: getEnvAsIntOrDefault("AI_MAX_TOKENS", 1024),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty")
	}

	if c.Scrape.Timeout < 1 {
		return errors.New("scrape timeout must be at least 1 second")
	}

	if c.AI.Provider != "openai" && c.AI.Provider != "anthropic" {
		return errors.New("ai provider must be 'openai' or 'anthropic'")
	}

	return nil
}
