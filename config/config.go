package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds catalog database configuration
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	BrandTable   string `mapstructure:"brand_table"`
	ProductTable string `mapstructure:"product_table"`
	PoolMinConns int32  `mapstructure:"pool_min_conns"`
	PoolMaxConns int32  `mapstructure:"pool_max_conns"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds the empirically tuned feature-matching constants.
// Kept as configuration so they can be recalibrated without touching
// matcher logic.
type MatchingConfig struct {
	FuzzyThreshold       float64 `mapstructure:"fuzzy_threshold"`
	StrictFuzzyThreshold float64 `mapstructure:"strict_fuzzy_threshold"`
	MinFuzzyPhraseLen    int     `mapstructure:"min_fuzzy_phrase_len"`
	EnableDebugLogging   bool    `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/furnishly/")

	// Environment variable settings
	v.SetEnvPrefix("FURNISHLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8432")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.brand_table", "brands")
	v.SetDefault("database.product_table", "products")
	v.SetDefault("database.pool_min_conns", 2)
	v.SetDefault("database.pool_max_conns", 10)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Matching defaults (empirically calibrated)
	v.SetDefault("matching.fuzzy_threshold", 0.93)
	v.SetDefault("matching.strict_fuzzy_threshold", 0.96)
	v.SetDefault("matching.min_fuzzy_phrase_len", 6)
	v.SetDefault("matching.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	m := config.Matching
	if m.FuzzyThreshold <= 0 || m.FuzzyThreshold > 1 {
		return fmt.Errorf("matching.fuzzy_threshold must be in (0, 1], got: %v", m.FuzzyThreshold)
	}
	if m.StrictFuzzyThreshold <= 0 || m.StrictFuzzyThreshold > 1 {
		return fmt.Errorf("matching.strict_fuzzy_threshold must be in (0, 1], got: %v", m.StrictFuzzyThreshold)
	}
	if m.StrictFuzzyThreshold < m.FuzzyThreshold {
		return fmt.Errorf("matching.strict_fuzzy_threshold must be >= matching.fuzzy_threshold")
	}
	if m.MinFuzzyPhraseLen < 0 {
		return fmt.Errorf("matching.min_fuzzy_phrase_len must be >= 0, got: %d", m.MinFuzzyPhraseLen)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got: %v", config.Cache.TTL)
	}

	if config.Database.PoolMinConns > config.Database.PoolMaxConns {
		return fmt.Errorf("database.pool_min_conns must be <= database.pool_max_conns")
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
