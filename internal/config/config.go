package config

import (
	"fmt"
	"os"
)

type Config struct {
	// EasyBargain conversion provider
	EasyBargainAPIKey  string
	EasyBargainBaseURL string

	// Dropbox file host
	DropboxToken          string
	DropboxAPIBaseURL     string
	DropboxContentBaseURL string

	// Record store collections
	SheetUsersURL  string
	SheetOrdersURL string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		EasyBargainAPIKey:  getEnv("EASYBARGAIN_API_KEY", ""),
		EasyBargainBaseURL: getEnv("EASYBARGAIN_BASE_URL", "https://easybargainloader.xyz/api"),

		DropboxToken:          getEnv("DROPBOX_TOKEN", ""),
		DropboxAPIBaseURL:     getEnv("DROPBOX_API_BASE_URL", "https://api.dropboxapi.com"),
		DropboxContentBaseURL: getEnv("DROPBOX_CONTENT_BASE_URL", "https://content.dropboxapi.com"),

		SheetUsersURL:  getEnv("SHEET_USERS", ""),
		SheetOrdersURL: getEnv("SHEET_ORDERS", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.EasyBargainAPIKey == "" {
		return fmt.Errorf("EASYBARGAIN_API_KEY is required")
	}
	if c.DropboxToken == "" {
		return fmt.Errorf("DROPBOX_TOKEN is required")
	}
	if c.SheetUsersURL == "" {
		return fmt.Errorf("SHEET_USERS is required")
	}
	if c.SheetOrdersURL == "" {
		return fmt.Errorf("SHEET_ORDERS is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
