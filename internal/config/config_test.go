package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "SESSION_TTL", "AUTH_RATE_PER_MINUTE", "STRIPE_SECRET_KEY", "SEED_ADMIN_EMAIL", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30, cfg.AuthRatePerMinute)
	assert.Equal(t, "admin@vetstock.com", cfg.SeedAdminEmail)
	assert.False(t, cfg.StripeEnabled())
	assert.Empty(t, cfg.DBDSN)
	assert.False(t, cfg.TrustProxy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("AUTH_RATE_PER_MINUTE", "not-a-number")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.StripeEnabled())
	assert.Equal(t, 30, cfg.AuthRatePerMinute)
	assert.True(t, cfg.TrustProxy)
}
