package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Queue    QueueConfig
	Mail     MailConfig
	Logging  LoggingConfig
}

type HTTPConfig struct {
	Port              int
	AllowedOriginsCSV string
}

type DatabaseConfig struct {
	URL            string
	MigrationsPath string
}

type QueueConfig struct {
	User string
	Pass string
	Host string
	Port string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultPort           = 8080
	defaultLoggingLevel   = "info"
	defaultLoggingFormat  = "text"
	defaultMigrationsPath = "migrations"
	defaultSMTPPort       = 587
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			AllowedOriginsCSV: valueOrDefault("ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			URL:            os.Getenv("DATABASE_URL"),
			MigrationsPath: valueOrDefault("MIGRATIONS_PATH", defaultMigrationsPath),
		},
		Queue: QueueConfig{
			User: valueOrDefault("RABBITMQ_USER", "guest"),
			Pass: valueOrDefault("RABBITMQ_PASS", "guest"),
			Host: valueOrDefault("RABBITMQ_HOST", "localhost"),
			Port: valueOrDefault("RABBITMQ_PORT", "5672"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     parseIntWithDefault("MAIL_PORT", defaultSMTPPort),
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     valueOrDefault("MAIL_FROM", "no-reply@reboundcg.com"),
			NotifyTo: os.Getenv("MAIL_NOTIFY_TO"),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	cfg.HTTP.Port = parseIntWithDefault("SERVER_PORT", defaultPort)
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return Config{}, fmt.Errorf("SERVER_PORT out of range: %d", cfg.HTTP.Port)
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
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
