package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0.15, cfg.VATRate)
	assert.Equal(t, 90, cfg.DefaultWarrantyDays)
	assert.Equal(t, 90, cfg.DefaultGuaranteeDays)
	assert.Equal(t, 50.0, cfg.InitialPaymentPct)
	assert.False(t, cfg.AllowCancelCompleted)
	assert.Equal(t, 5*time.Second, cfg.LookupTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VAT_RATE", "0.19")
	t.Setenv("ALLOW_CANCEL_COMPLETED", "true")
	t.Setenv("LOOKUP_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 0.19, cfg.VATRate)
	assert.True(t, cfg.AllowCancelCompleted)
	assert.Equal(t, 250*time.Millisecond, cfg.LookupTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("vat rate out of range", func(t *testing.T) {
		t.Setenv("VAT_RATE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative warranty days", func(t *testing.T) {
		t.Setenv("DEFAULT_WARRANTY_DAYS", "-1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("initial payment percentage out of range", func(t *testing.T) {
		t.Setenv("INITIAL_PAYMENT_PERCENTAGE", "120")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Setenv("VAT_RATE", "abc")
		t.Setenv("DEFAULT_WARRANTY_DAYS", "ninety")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 0.15, cfg.VATRate)
		assert.Equal(t, 90, cfg.DefaultWarrantyDays)
	})
}
