package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"fbs-backend/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("EASYBARGAIN_API_KEY", "test-key")
	t.Setenv("DROPBOX_TOKEN", "test-token")
	t.Setenv("SHEET_USERS", "https://store.example.com/users")
	t.Setenv("SHEET_ORDERS", "https://store.example.com/orders")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "https://easybargainloader.xyz/api", cfg.EasyBargainBaseURL)
	assert.Equal(t, "https://api.dropboxapi.com", cfg.DropboxAPIBaseURL)
	assert.Equal(t, "https://content.dropboxapi.com", cfg.DropboxContentBaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("EASYBARGAIN_BASE_URL", "http://localhost:9999/api")
	t.Setenv("PORT", "3000")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api", cfg.EasyBargainBaseURL)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("EASYBARGAIN_API_KEY", "")

	_, err := config.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EASYBARGAIN_API_KEY is required")
}

func TestLoad_MissingSheetURLs(t *testing.T) {
	setRequired(t)
	t.Setenv("SHEET_ORDERS", "")

	_, err := config.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SHEET_ORDERS is required")
}
