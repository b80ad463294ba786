package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPosterAPIURL  = "https://jisshuapis.vercel.app/api.php"
	DefaultSearchTimeout = 6 * time.Second
	DefaultFetchTimeout  = 8 * time.Second
	DefaultMaxPosters    = 10
	DefaultHealthAddr    = ":5000"
)

var ErrConfigurationError = errors.New("configuration error")

type Config struct {
	BotToken         string
	PosterAPIURL     string
	SearchTimeout    time.Duration
	FetchTimeout     time.Duration
	MaxPosters       int
	HealthListenAddr string
	LogLevel         string
	Lang             string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func NewConfig() (*Config, error) {
	config := &Config{
		BotToken:         getEnv("BOT_TOKEN", ""),
		PosterAPIURL:     getEnv("POSTER_API_URL", DefaultPosterAPIURL),
		SearchTimeout:    getEnvDuration("POSTER_SEARCH_TIMEOUT", DefaultSearchTimeout),
		FetchTimeout:     getEnvDuration("POSTER_FETCH_TIMEOUT", DefaultFetchTimeout),
		MaxPosters:       getEnvInt("MAX_POSTERS", DefaultMaxPosters),
		HealthListenAddr: getEnv("HEALTH_LISTEN_ADDR", DefaultHealthAddr),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Lang:             getEnv("BOT_LANG", "en"),
	}

	if err := config.validate(); err != nil {
		log.Printf("Configuration validation failed: %v", err)
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := c.validateRequiredFields(); err != nil {
		return err
	}

	if err := c.validatePosterSettings(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateRequiredFields() error {
	if c.BotToken == "" {
		return fmt.Errorf("%w: missing required environment variable BOT_TOKEN", ErrConfigurationError)
	}
	return nil
}

func (c *Config) validatePosterSettings() error {
	if c.PosterAPIURL == "" {
		return fmt.Errorf("%w: POSTER_API_URL must not be empty", ErrConfigurationError)
	}
	if c.MaxPosters <= 0 {
		return fmt.Errorf("%w: MAX_POSTERS must be positive", ErrConfigurationError)
	}
	if c.SearchTimeout <= 0 || c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: poster timeouts must be positive", ErrConfigurationError)
	}
	return nil
}
