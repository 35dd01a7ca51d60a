package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultConfigName = "config"

// Config holds service configuration.
type Config struct {
	Port     int
	LogLevel string

	// Colors switches replies to mIRC text attributes.
	Colors bool

	APIBaseURL  string
	HTTPTimeout time.Duration

	// CacheBackend selects where HTTP responses are cached:
	// "memory" or "redis".
	CacheBackend string
	RedisURL     string
	RedisTTL     time.Duration
}

// Load reads configuration from config.yaml (optional) and NBASTATS_*
// environment variables, then validates it.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetEnvPrefix("NBASTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8095)
	v.SetDefault("log.level", "info")
	v.SetDefault("reply.colors", false)
	v.SetDefault("api.base_url", "https://data.nba.net")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redis_url", "redis://localhost:6379")
	v.SetDefault("cache.redis_ttl", "15m")

	// Config file is optional; env-only is fine.
	_ = v.ReadInConfig()

	cfg := Config{
		Port:         v.GetInt("server.port"),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		Colors:       v.GetBool("reply.colors"),
		APIBaseURL:   strings.TrimRight(v.GetString("api.base_url"), "/"),
		HTTPTimeout:  v.GetDuration("api.timeout"),
		CacheBackend: strings.ToLower(v.GetString("cache.backend")),
		RedisURL:     v.GetString("cache.redis_url"),
		RedisTTL:     v.GetDuration("cache.redis_ttl"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid server.port %d", cfg.Port)
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api.base_url must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid api.timeout %v", cfg.HTTPTimeout)
	}
	if cfg.CacheBackend != "memory" && cfg.CacheBackend != "redis" {
		return Config{}, fmt.Errorf("invalid cache.backend %q (want memory or redis)", cfg.CacheBackend)
	}
	if cfg.CacheBackend == "redis" && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("cache.redis_url must not be empty")
	}
	if cfg.RedisTTL <= 0 {
		return Config{}, fmt.Errorf("invalid cache.redis_ttl %v", cfg.RedisTTL)
	}

	return cfg, nil
}
