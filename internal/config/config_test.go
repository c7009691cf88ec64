package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "KAFKA_BROKERS", "LOG_LEVEL", "OUTBOX_BATCH_SIZE", "OUTBOX_FLUSH_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Empty(t, cfg.KafkaBrokers)
	require.False(t, cfg.EventsEnabled())
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, 25, cfg.OutboxBatchSize)
	require.Equal(t, 2*time.Second, cfg.OutboxFlushInterval)
	require.Equal(t, "activity_roster_events", cfg.RosterTopic)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OUTBOX_BATCH_SIZE", "10")
	t.Setenv("OUTBOX_FLUSH_INTERVAL", "500ms")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()
	require.Equal(t, ":9000", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.True(t, cfg.EventsEnabled())
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, 10, cfg.OutboxBatchSize)
	require.Equal(t, 500*time.Millisecond, cfg.OutboxFlushInterval)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}
