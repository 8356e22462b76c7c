// Package config provides centralized configuration for the promptfoundry server.
// All configurable values are loaded from environment variables with sensible defaults.
package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all server configuration values.
type Config struct {
	// Port is the HTTP server listen port.
	Port string

	// Env is the deployment environment: "production" or "development".
	Env string

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string

	// CORSOrigin is the allowed CORS origin. Defaults to "*".
	CORSOrigin string

	// CatalogPath points to a YAML catalog replacing the embedded one.
	CatalogPath string

	// ExportBaseURL is the base of the links synthesized by the export stub.
	ExportBaseURL string

	// MaxBodyBytes is the maximum accepted request body size.
	MaxBodyBytes int64

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ReviewParallelism bounds concurrent work of a batch review.
	ReviewParallelism int
}

// Load reads configuration from environment variables, applying defaults.
// Values from a .env.local file in the working directory are applied first
// without overriding the real environment.
func Load() Config {
	loadEnvFile(".env.local")
	return Config{
		Port:              envOr("PORT", "8080"),
		Env:               envOr("APP_ENV", "production"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		CORSOrigin:        envOr("CORS_ORIGIN", "*"),
		CatalogPath:       os.Getenv("CATALOG_PATH"),
		ExportBaseURL:     envOr("EXPORT_BASE_URL", "https://api.promptfoundry.dev/export"),
		MaxBodyBytes:      int64(envInt("MAX_BODY_BYTES", 1<<20)),
		ShutdownTimeout:   envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReviewParallelism: envInt("REVIEW_PARALLELISM", 4),
	}
}

// Development reports whether the server runs in development mode.
func (c Config) Development() bool {
	return c.Env == "development"
}

// loadEnvFile sets KEY=VALUE pairs from path for keys not already set.
// Blank lines, comments and lines without '=' are skipped. A missing file is ignored.
func loadEnvFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = unquote(strings.TrimSpace(val))
		if _, set := os.LookupEnv(key); set {
			continue
		}
		os.Setenv(key, val)
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
