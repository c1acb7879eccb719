package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Word sources
const (
	SourceFile     = "file"
	SourceURL      = "url"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Env      string
	BotToken string
	HTTPAddr string
	Words    WordsConfig
	Database DatabaseConfig
	Sessions SessionConfig
	CORS     []string
}

// WordsConfig selects where the word dataset comes from
type WordsConfig struct {
	Source string
	Path   string
	URL    string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// SessionConfig controls eviction of idle quiz sessions
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "production"),
		BotToken: os.Getenv("BOT_TOKEN"),
		HTTPAddr: os.Getenv("HTTP_ADDR"),
		Words: WordsConfig{
			Source: strings.ToLower(getEnv("WORDS_SOURCE", SourceFile)),
			Path:   getEnv("WORDS_PATH", "words.json"),
			URL:    os.Getenv("WORDS_URL"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabquiz"),
			User:     getEnv("DB_USER", "vocabquiz"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		CORS: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	// HTTP_ADDR set to an empty value disables the HTTP API
	if _, set := os.LookupEnv("HTTP_ADDR"); !set {
		cfg.HTTPAddr = ":8080"
	}

	var err error
	if cfg.Sessions.IdleTTL, err = getDuration("SESSION_IDLE_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Sessions.SweepInterval, err = getDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute); err != nil {
		return nil, err
	}

	// Validate required fields
	switch cfg.Words.Source {
	case SourceFile:
		if cfg.Words.Path == "" {
			return nil, fmt.Errorf("WORDS_PATH is required")
		}
	case SourceURL:
		if cfg.Words.URL == "" {
			return nil, fmt.Errorf("WORDS_URL is required when WORDS_SOURCE=url")
		}
	case SourcePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required when WORDS_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("WORDS_SOURCE must be one of file, url, postgres, got %q", cfg.Words.Source)
	}

	if cfg.BotToken == "" && cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("BOT_TOKEN or HTTP_ADDR is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// Development reports whether APP_ENV asks for development logging
func (c *Config) Development() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, value)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
