// Package config reads the process configuration from environment
// variables, with local-dev defaults so a bare `go run` works.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is the full runtime configuration of the server binary.
type Config struct {
	HTTPAddr    string
	DBPath      string
	ServiceName string

	// RedisAddr enables the Redis idempotency cache when non-empty.
	// Empty falls back to the in-process cache.
	RedisAddr string

	// EventSink selects the event transport: "bus" (in-process, default)
	// or "kafka".
	EventSink    string
	KafkaBrokers []string
	KafkaTopic   string

	EventBusWorkers int
	EventBusBuffer  int
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		HTTPAddr:        ":" + getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./data/commerce.db"),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "modular-commerce"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		EventSink:       getEnv("EVENT_SINK", "bus"),
		KafkaBrokers:    splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "commerce.events"),
		EventBusWorkers: getEnvInt("EVENT_BUS_WORKERS", 4),
		EventBusBuffer:  getEnvInt("EVENT_BUS_BUFFER", 256),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
