package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresAPIKey(t *testing.T) {
	viper.Reset()
	t.Setenv("CURRENCY_API_KEY", "")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("CURRENCY_API_KEY", "test-key")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.CurrencyAPIKey)
	assert.Equal(t, "https://api.freecurrencyapi.com/v1", cfg.CurrencyAPIURL)
	assert.Equal(t, 10*time.Second, cfg.CurrencyAPITimeout)
	assert.Equal(t, 1000, cfg.RateCacheMaxEntries)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.False(t, cfg.GoogleEnabled())
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("CURRENCY_API_KEY", "test-key")
	t.Setenv("CURRENCY_API_TIMEOUT", "soon")
	t.Setenv("JWT_EXPIRY_DURATION", "90m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.CurrencyAPITimeout)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiryDuration)
}

func TestLoadConfig_DatabaseURLFallback(t *testing.T) {
	viper.Reset()
	t.Setenv("CURRENCY_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PGSQL_URL", "postgres://localhost/legacy")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/legacy", cfg.DatabaseURL)
}
