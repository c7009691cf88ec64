// Package config centralises configuration parsing for the activity signup service.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the activity signup service.
type Config struct {
	HTTPAddress         string
	SeedFile            string // Optional YAML catalog; the embedded catalog is used when empty.
	StaticDir           string // Optional directory served under /static/.
	CORSOrigin          string
	LogLevel            slog.Level
	KafkaBrokers        []string // Roster events are disabled when empty.
	RosterTopic         string
	OutboxBuffer        int
	OutboxBatchSize     int
	OutboxFlushInterval time.Duration
	ConsumerGroup       string
	MetricsAddress      string // Listen address of the roster audit consumer's metrics endpoint.
	ShutdownTimeout     time.Duration
}

// EventsEnabled reports whether roster events should be published to Kafka.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:         getEnv("HTTP_ADDRESS", ":8080"),
		SeedFile:            getEnv("SEED_FILE", ""),
		StaticDir:           getEnv("STATIC_DIR", ""),
		CORSOrigin:          getEnv("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:            getLevelEnv("LOG_LEVEL", slog.LevelInfo),
		KafkaBrokers:        splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		RosterTopic:         getEnv("ROSTER_TOPIC", "activity_roster_events"),
		OutboxBuffer:        getIntEnv("OUTBOX_BUFFER", 256),
		OutboxBatchSize:     getIntEnv("OUTBOX_BATCH_SIZE", 25),
		OutboxFlushInterval: getDurationEnv("OUTBOX_FLUSH_INTERVAL", 2*time.Second),
		ConsumerGroup:       getEnv("CONSUMER_GROUP_ID", "roster-audit"),
		MetricsAddress:      getEnv("METRICS_ADDRESS", ":9195"),
		ShutdownTimeout:     getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return fallback
}
