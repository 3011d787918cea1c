package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port               string
	AllowedOrigin      string
	UpstreamBaseURL    string
	UpstreamToken      string
	UpstreamTimeout    time.Duration
	SearchDebounce     time.Duration
	JWTSecret          string
	JWTTTL             time.Duration
	DatabaseDSN        string
	GeminiAPIKey       string
	GeminiModel        string
	NotificationBuffer int
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	StorefrontCacheTTL time.Duration
}

// Load reads configuration from the environment. Only JWT_SECRET is required.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		UpstreamBaseURL:    strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:3000/api"), "/"),
		UpstreamToken:      strings.TrimSpace(os.Getenv("UPSTREAM_API_TOKEN")),
		UpstreamTimeout:    time.Duration(getInt("UPSTREAM_TIMEOUT_SECONDS", 15, 1)) * time.Second,
		SearchDebounce:     time.Duration(getInt("SEARCH_DEBOUNCE_MS", 300, 0)) * time.Millisecond,
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTTTL:             time.Duration(getInt("JWT_TTL_HOURS", 72, 1)) * time.Hour,
		DatabaseDSN:        strings.TrimSpace(os.Getenv("DB_DSN_PRIMARY")),
		GeminiAPIKey:       strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		NotificationBuffer: getInt("NOTIFICATION_BUFFER", 100, 1),
		RedisAddr:          strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getInt("REDIS_DB", 0, 0),
		StorefrontCacheTTL: time.Duration(getInt("STOREFRONT_CACHE_SECONDS", 60, 0)) * time.Second,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return Config{}, errors.New("JWT_SECRET must be at least 32 characters")
	}
	return cfg, nil
}

// Address returns the host:port pair for the HTTP server to bind to.
func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

// getInt parses key, using fallback when it is unset, malformed or below min.
func getInt(key string, fallback, min int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || n < min {
		return fallback
	}
	return n
}
