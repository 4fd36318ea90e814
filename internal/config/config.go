// Package config loads TripMate's runtime settings from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings of one server process.
// Nothing is required; every field has a default.
type Config struct {
	// Port is the TCP port the HTTP server listens on. PORT, default "8080".
	Port string

	// LogLevel is one of debug, info, warn, error. LOG_LEVEL, default "info".
	LogLevel string

	// CORSOrigins lists the origins allowed to call the API.
	// CORS_ORIGINS, comma-separated, default the Vite dev server.
	CORSOrigins []string

	// SeedFile is a YAML dataset loaded at startup. SEED_FILE; when empty
	// the demo trip is created instead.
	SeedFile string

	// ChatReplyDelay is how long the assistant waits before answering.
	// CHAT_REPLY_DELAY as a Go duration, default 1s.
	ChatReplyDelay time.Duration

	// MaxBodyBytes caps request bodies. MAX_BODY_BYTES, default 1 MiB.
	MaxBodyBytes int64
}

// Load reads the environment and returns a Config.
// The error names every variable that is set but cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		SeedFile:    os.Getenv("SEED_FILE"),
	}

	var invalid []string

	if _, err := cfg.SlogLevel(); err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}

	delay, err := time.ParseDuration(getEnv("CHAT_REPLY_DELAY", "1s"))
	if err != nil || delay < 0 {
		invalid = append(invalid, "CHAT_REPLY_DELAY")
	}
	cfg.ChatReplyDelay = delay

	limit, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || limit <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = limit

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
