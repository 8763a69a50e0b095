package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CARDAPIO_API_BASE_URL", "")
	t.Setenv("BULK_CONCURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 8, cfg.Bulk.Concurrency)
	assert.Equal(t, []string{"grupoideiaum.com.br"}, cfg.Images.LegacyHosts)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CARDAPIO_API_BASE_URL", "https://api.example.com")
	t.Setenv("CARDAPIO_API_TIMEOUT_SECONDS", "5")
	t.Setenv("IMAGE_TRUSTED_HOSTS", "cdn.example.com, storage.example.com ,")
	t.Setenv("BULK_CONCURRENCY", "0")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, []string{"cdn.example.com", "storage.example.com"}, cfg.Images.TrustedHosts)
	assert.Equal(t, 1, cfg.Bulk.Concurrency)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.GetDSN())
}
