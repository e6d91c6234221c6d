package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"go-radiology-assistant/pkg/models"
)

// Provider names accepted for MODEL_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderStub   = "stub"
)

type Config struct {
	Host string
	Port string

	// GoogleAPIKey is the Gemini credential. It may be empty: the server
	// still starts and the analysis path short-circuits with a
	// configuration-error report.
	GoogleAPIKey string
	GeminiModel  string

	// ModelProvider selects the report generator backend (gemini | stub).
	ModelProvider string

	RequestTimeout    time.Duration
	ModelTimeout      time.Duration
	ImageFetchTimeout time.Duration

	MaxUploadSize int64

	// AppendDisclaimer controls whether the medical disclaimer block is
	// appended to successful reports.
	AppendDisclaimer bool
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:              getEnvOrDefault("HOST", "0.0.0.0"),
		Port:              getEnvOrDefault("PORT", "8080"),
		GoogleAPIKey:      strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		ModelProvider:     getEnvOrDefault("MODEL_PROVIDER", ProviderGemini),
		RequestTimeout:    parseDurationOrDefault("REQUEST_TIMEOUT", 90*time.Second),
		ModelTimeout:      parseDurationOrDefault("MODEL_TIMEOUT", 60*time.Second),
		ImageFetchTimeout: parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		MaxUploadSize:     parseIntOrDefault("MAX_UPLOAD_SIZE", models.MaxUploadSize),
		AppendDisclaimer:  parseBoolOrDefault("APPEND_DISCLAIMER", true),
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.ModelProvider != ProviderGemini && cfg.ModelProvider != ProviderStub {
		return nil, fmt.Errorf("invalid MODEL_PROVIDER: %q (want %q or %q)",
			cfg.ModelProvider, ProviderGemini, ProviderStub)
	}
	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be > 0 (got %d)", cfg.MaxUploadSize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ModelTimeout <= 0 || cfg.ImageFetchTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, model=%s, fetch=%s)",
			cfg.RequestTimeout, cfg.ModelTimeout, cfg.ImageFetchTimeout)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
