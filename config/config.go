package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Session Configuration
	SessionSecret string
	SessionTTL    time.Duration
	SessionStore  string // "memory" or "redis"
	CookieSecure  bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Resume Flow
	ResumeAnalysisDelay time.Duration
	MaxUploadMB         int
	// Content catalog override directory (empty = embedded content)
	ContentDir string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	AllowedOrigins           []string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development)
	_ = godotenv.Load()

	ginMode := getEnv("GIN_MODE", "debug")

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  ginMode,
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		// Session Configuration
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL", 2*time.Hour),
		SessionStore:  strings.ToLower(getEnv("SESSION_STORE", "memory")),
		CookieSecure:  getEnvBool("COOKIE_SECURE", ginMode == "release"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Resume Flow
		ResumeAnalysisDelay: getEnvDuration("RESUME_ANALYSIS_DELAY", 3*time.Second),
		MaxUploadMB:         getEnvInt("MAX_UPLOAD_MB", 10),
		ContentDir:          getEnv("CONTENT_DIR", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 20),
		AllowedOrigins:           getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:8080", "http://127.0.0.1:8080"}),
	}

	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is missing. Using an insecure development secret.")
		cfg.SessionSecret = "careerai-dev-session-secret"
	}

	if cfg.SessionStore == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: SESSION_STORE=redis but REDIS_URL not configured. Falling back to in-memory sessions.")
		cfg.SessionStore = "memory"
	}

	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 10
	}

	return cfg, nil
}

// MaxUploadBytes is the request body ceiling for resume uploads.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

// RateLimitWindow returns the rate limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("3s", "2h") or whole seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
