package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Webhook   WebhookConfig
	WebSocket WebSocketConfig
	CORS      CORSConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type WebhookConfig struct {
	// URL of the external workflow endpoint. May be empty: generate calls
	// fail with a configuration error before any network I/O, everything
	// else keeps working.
	URL string
	// AuthHeader is one optional "Name: Value" string, split on the first
	// colon.
	AuthHeader string
	// Timeout is the ceiling for the blocking generate call. Slow
	// workflows are the norm, hence the generous default.
	Timeout time.Duration
}

type WebSocketConfig struct {
	ReadBufferSize    int
	WriteBufferSize   int
	WriteWait         time.Duration
	PongWait          time.Duration
	PingPeriod        time.Duration
	MaxConnPerSession int
}

type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	webhookTimeout, err := time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "180s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_TIMEOUT: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Webhook: WebhookConfig{
			URL:        getEnv("WEBHOOK_URL", ""),
			AuthHeader: getEnv("WEBHOOK_AUTH_HEADER", ""),
			Timeout:    webhookTimeout,
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:    getEnvAsInt("WS_READ_BUFFER_SIZE", 1024),
			WriteBufferSize:   getEnvAsInt("WS_WRITE_BUFFER_SIZE", 1024),
			WriteWait:         10 * time.Second,
			PongWait:          60 * time.Second,
			PingPeriod:        54 * time.Second,
			MaxConnPerSession: getEnvAsInt("WS_MAX_CONN_PER_SESSION", 5),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
